package clear_selection

import (
	"context"

	"github.com/google/uuid"
)

type SelectionService interface {
	Clear(ctx context.Context, customerID uuid.UUID)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
