package confirm_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GameNet-ReservationService/internal/service/selection/models"
	confirmBooking "github.com/m04kA/GameNet-ReservationService/internal/usecase/confirm_booking"
)

type ConfirmBookingUseCase interface {
	Execute(ctx context.Context, req *confirmBooking.Request) (*confirmBooking.Response, error)
}

type SelectionService interface {
	Get(ctx context.Context, customerID uuid.UUID) (*models.SelectionResponse, error)
	Clear(ctx context.Context, customerID uuid.UUID)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
