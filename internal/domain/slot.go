package domain

import (
	"time"

	"github.com/m04kA/GameNet-ReservationService/pkg/types"
)

// SlotStatus статус слота расписания терминала
// Закрытое множество значений: недопустимые статусы отсекаются на границах
type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotBooked      SlotStatus = "booked"
	SlotUnavailable SlotStatus = "unavailable"
)

// Valid возвращает true для известного статуса слота
func (s SlotStatus) Valid() bool {
	switch s {
	case SlotAvailable, SlotBooked, SlotUnavailable:
		return true
	default:
		return false
	}
}

// TimeSlot слот дневного расписания
// Шаблон слотов общий для всех терминалов: фиксированная длина,
// без пересечений, упорядочены по времени начала
type TimeSlot struct {
	ID        int64
	StartTime types.TimeString
	EndTime   types.TimeString
}

// AdjacentTo возвращает true, если next начинается ровно там, где
// заканчивается текущий слот
func (s TimeSlot) AdjacentTo(next TimeSlot) bool {
	return s.EndTime.Equal(next.StartTime)
}

// SlotAssignment привязка слота к терминалу с текущим статусом
// Единственная изменяемая сущность ядра: одна запись на пару (терминал, слот)
type SlotAssignment struct {
	TerminalID int64
	Slot       TimeSlot
	Status     SlotStatus
	UpdatedAt  time.Time
}

// IsAvailable возвращает true, если слот доступен для бронирования
func (a *SlotAssignment) IsAvailable() bool {
	return a.Status == SlotAvailable
}
