package get_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GameNet-ReservationService/internal/service/bookings/models"
)

// BookingResponse HTTP модель бронирования
type BookingResponse struct {
	ID                 uuid.UUID `json:"id"`
	TerminalID         int64     `json:"terminalId"`
	CustomerID         uuid.UUID `json:"customerId"`
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
	UpdatedAt          string    `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	var cancelledAt *string
	if resp.CancelledAt != nil {
		formatted := resp.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &BookingResponse{
		ID:                 resp.ID,
		TerminalID:         resp.TerminalID,
		CustomerID:         resp.CustomerID,
		SlotIDs:            resp.SlotIDs,
		StartTime:          resp.StartTime.String(),
		EndTime:            resp.EndTime.String(),
		DurationHours:      resp.DurationHours,
		HourlyRate:         resp.HourlyRate,
		TotalCost:          resp.TotalCost,
		Status:             resp.Status,
		CancellationReason: resp.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
