package domain

// Default configuration values
const (
	// DefaultHourlyRate ставка за час аренды терминала по умолчанию, в рупиях
	DefaultHourlyRate = 10000
)

// Business validation constants
const (
	// MinWindowSlots минимальный размер окна бронирования
	MinWindowSlots = 1

	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
