package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GameNet-ReservationService/internal/domain"
	"github.com/m04kA/GameNet-ReservationService/pkg/types"
)

// BookingResponse модель бронирования для внешних потребителей
type BookingResponse struct {
	ID            uuid.UUID
	TerminalID    int64
	CustomerID    uuid.UUID
	SlotIDs       []int64
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours int
	HourlyRate    int64
	TotalCost     int64
	Status        string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
}

// GetCustomerBookingsRequest запрос истории бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerID uuid.UUID
	Status     *string // Опциональный фильтр по статусу
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CustomerID         uuid.UUID
	CancellationReason string
}

// FromDomainBooking конвертирует доменное бронирование в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		TerminalID:         b.TerminalID,
		CustomerID:         b.CustomerID,
		SlotIDs:            b.SlotIDs,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		DurationHours:      b.DurationHours,
		HourlyRate:         b.HourlyRate,
		TotalCost:          b.TotalCost,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: out}
}

// ToDomainBookingStatus конвертирует строку в статус бронирования
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return status, nil
}
