package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GameNet-ReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetByCustomerWithFilter(ctx context.Context, filter domain.CustomerBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) error
}

// ScheduleCatalog интерфейс каталога расписания
type ScheduleCatalog interface {
	CompareAndSetStatus(ctx context.Context, terminalID, slotID int64, expected, newStatus domain.SlotStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
