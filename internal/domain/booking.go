package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GameNet-ReservationService/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Valid возвращает true для известного статуса бронирования
func (s BookingStatus) Valid() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Booking подтвержденное бронирование терминала на непрерывное окно слотов
// Создается только успешным коммитом; единственная допустимая мутация
// после создания - переход confirmed -> cancelled
type Booking struct {
	ID         uuid.UUID
	TerminalID int64
	CustomerID uuid.UUID

	// Окно бронирования: упорядоченный список слотов и его границы
	SlotIDs       []int64
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours int

	HourlyRate int64 // ставка за час, в рупиях
	TotalCost  int64 // DurationHours * HourlyRate

	Status             BookingStatus
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed возвращает true для действующего бронирования
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CustomerBookingsFilter фильтр для выборки бронирований клиента
type CustomerBookingsFilter struct {
	CustomerID uuid.UUID      // Обязательный параметр
	Status     *BookingStatus // Фильтр по статусу (опционально)
}
