package events

import (
	"time"

	"github.com/google/uuid"
)

// Routing keys исходящих событий
const (
	KeyBookingCreated   = "booking.created"
	KeyBookingCancelled = "booking.cancelled"
	KeyScheduleUpdated  = "terminal.schedule_updated"
)

// BookingCreated событие успешного подтверждения бронирования
// Потребители: история бронирований, отчеты кассы
type BookingCreated struct {
	BookingID     uuid.UUID `json:"bookingId"`
	TerminalID    int64     `json:"terminalId"`
	CustomerID    uuid.UUID `json:"customerId"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	DurationHours int       `json:"durationHours"`
	TotalCost     int64     `json:"totalCost"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BookingCancelled событие отмены бронирования
type BookingCancelled struct {
	BookingID   uuid.UUID `json:"bookingId"`
	TerminalID  int64     `json:"terminalId"`
	CustomerID  uuid.UUID `json:"customerId"`
	CancelledAt time.Time `json:"cancelledAt"`
}

// ScheduleUpdated сигнал обновления расписания терминала
// Слушатели витрины доступности перечитывают каталог по этому событию
type ScheduleUpdated struct {
	TerminalID int64     `json:"terminalId"`
	SlotIDs    []int64   `json:"slotIds"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
