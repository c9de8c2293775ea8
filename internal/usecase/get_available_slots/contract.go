package get_available_slots

import (
	"context"

	"github.com/m04kA/GameNet-ReservationService/internal/domain"
)

// ScheduleRepository интерфейс репозитория каталога расписания
type ScheduleRepository interface {
	GetAssignments(ctx context.Context, terminalID int64) ([]domain.SlotAssignment, error)
}

// TerminalRepository интерфейс справочника терминалов
type TerminalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Terminal, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
