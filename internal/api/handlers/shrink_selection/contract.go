package shrink_selection

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GameNet-ReservationService/internal/service/selection/models"
)

type SelectionService interface {
	Shrink(ctx context.Context, customerID uuid.UUID) (*models.SelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
