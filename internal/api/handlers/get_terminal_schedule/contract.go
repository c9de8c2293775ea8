package get_terminal_schedule

import (
	"context"

	"github.com/m04kA/GameNet-ReservationService/internal/service/terminals/models"
)

type TerminalService interface {
	GetDaySchedule(ctx context.Context, terminalID int64) (*models.DayScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
