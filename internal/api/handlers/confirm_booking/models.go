package confirm_booking

import (
	"time"

	"github.com/google/uuid"

	confirmBooking "github.com/m04kA/GameNet-ReservationService/internal/usecase/confirm_booking"
)

// BookingResponse HTTP модель подтвержденного бронирования
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	TerminalID    int64     `json:"terminalId"`
	CustomerID    uuid.UUID `json:"customerId"`
	SlotIDs       []int64   `json:"slotIds"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	DurationHours int       `json:"durationHours"`
	HourlyRate    int64     `json:"hourlyRate"`
	TotalCost     int64     `json:"totalCost"`
	Status        string    `json:"status"`
	CreatedAt     string    `json:"createdAt"`
}

// ConflictResponse HTTP модель конфликта коммита со спорными слотами
type ConflictResponse struct {
	Error   string  `json:"error"`
	SlotIDs []int64 `json:"slotIds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		TerminalID:    resp.TerminalID,
		CustomerID:    resp.CustomerID,
		SlotIDs:       resp.SlotIDs,
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		DurationHours: resp.DurationHours,
		HourlyRate:    resp.HourlyRate,
		TotalCost:     resp.TotalCost,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
