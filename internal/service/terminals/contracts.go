package terminals

import (
	"context"
	"time"

	"github.com/m04kA/GameNet-ReservationService/internal/domain"
	"github.com/m04kA/GameNet-ReservationService/pkg/types"
)

// TerminalRepository интерфейс справочника терминалов
type TerminalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Terminal, error)
	ListWithCurrentStatus(ctx context.Context, at types.TimeString) ([]domain.TerminalWithStatus, error)
}

// ScheduleRepository интерфейс каталога расписания
type ScheduleRepository interface {
	GetAssignments(ctx context.Context, terminalID int64) ([]domain.SlotAssignment, error)
}

// TimeProvider источник текущего времени, подменяемый в тестах
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
