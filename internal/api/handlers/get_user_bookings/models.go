package get_user_bookings

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GameNet-ReservationService/internal/service/bookings/models"
)

// BookingResponse HTTP модель бронирования в истории
type BookingResponse struct {
	ID                 uuid.UUID `json:"id"`
	TerminalID         int64     `json:"terminalId"`
	SlotIDs            []int64   `json:"slotIds"`
	StartTime          string    `json:"startTime"`
	EndTime            string    `json:"endTime"`
	DurationHours      int       `json:"durationHours"`
	HourlyRate         int64     `json:"hourlyRate"`
	TotalCost          int64     `json:"totalCost"`
	Status             string    `json:"status"`
	CancellationReason *string   `json:"cancellationReason,omitempty"`
	CancelledAt        *string   `json:"cancelledAt,omitempty"`
	CreatedAt          string    `json:"createdAt"`
}

// BookingListResponse HTTP модель истории бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	bookings := make([]*BookingResponse, len(resp.Bookings))
	for i, b := range resp.Bookings {
		var cancelledAt *string
		if b.CancelledAt != nil {
			formatted := b.CancelledAt.Format(time.RFC3339)
			cancelledAt = &formatted
		}

		bookings[i] = &BookingResponse{
			ID:                 b.ID,
			TerminalID:         b.TerminalID,
			SlotIDs:            b.SlotIDs,
			StartTime:          b.StartTime.String(),
			EndTime:            b.EndTime.String(),
			DurationHours:      b.DurationHours,
			HourlyRate:         b.HourlyRate,
			TotalCost:          b.TotalCost,
			Status:             b.Status,
			CancellationReason: b.CancellationReason,
			CancelledAt:        cancelledAt,
			CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		}
	}
	return &BookingListResponse{Bookings: bookings}
}
