package cancel_booking

import (
	"github.com/google/uuid"

	"github.com/m04kA/GameNet-ReservationService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(customerID uuid.UUID) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		CustomerID:         customerID,
		CancellationReason: r.CancellationReason,
	}
}
