package confirm_booking

import (
	"context"

	"github.com/m04kA/GameNet-ReservationService/internal/domain"
)

// ScheduleCatalog интерфейс каталога расписания
// CompareAndSetStatus - единственный разрешенный путь мутации статуса слота
type ScheduleCatalog interface {
	GetAssignments(ctx context.Context, terminalID int64) ([]domain.SlotAssignment, error)
	CompareAndSetStatus(ctx context.Context, terminalID, slotID int64, expected, newStatus domain.SlotStatus) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TerminalRepository интерфейс справочника терминалов
type TerminalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Terminal, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации исходящих событий
type EventPublisher interface {
	Publish(ctx context.Context, key string, event interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
