package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/GameNet-ReservationService/internal/domain"
	"github.com/m04kA/GameNet-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/GameNet-ReservationService/pkg/psqlbuilder"
)

// bookingColumns колонки бронирования вместе с агрегированным списком слотов
var bookingColumns = []string{
	"b.id",
	"b.terminal_id",
	"b.customer_id",
	"b.start_time",
	"b.end_time",
	"b.duration_hours",
	"b.hourly_rate",
	"b.total_cost",
	"b.status",
	"b.cancellation_reason",
	"b.cancelled_at",
	"b.created_at",
	"b.updated_at",
	"COALESCE(array_agg(bs.slot_id ORDER BY bs.position) FILTER (WHERE bs.slot_id IS NOT NULL), '{}') AS slot_ids",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе со связками на слоты окна
// Вызывается коммитером внутри транзакции (через executor в контексте):
// строка bookings и строки booking_slots становятся видимыми атомарно
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"terminal_id",
			"customer_id",
			"start_time",
			"end_time",
			"duration_hours",
			"hourly_rate",
			"total_cost",
			"status",
		).
		Values(
			booking.TerminalID,
			booking.CustomerID,
			booking.StartTime,
			booking.EndTime,
			booking.DurationHours,
			booking.HourlyRate,
			booking.TotalCost,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	// Связки бронирование -> слоты, с сохранением порядка окна
	if len(booking.SlotIDs) > 0 {
		insertSlots := psqlbuilder.Insert("booking_slots").
			Columns("booking_id", "slot_id", "position")
		for i, slotID := range booking.SlotIDs {
			insertSlots = insertSlots.Values(booking.ID, slotID, i)
		}

		query, args, err = insertSlots.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build slots insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - execute slots insert: %v", ErrExecQuery, err)
		}
	}

	return booking, nil
}

// GetByID получает бронирование по ID вместе со списком слотов окна
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("booking_slots bs ON bs.booking_id = b.id").
		Where(squirrel.Eq{"b.id": id}).
		GroupBy("b.id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByCustomerWithFilter получает бронирования клиента
// Опционально фильтрует по статусу; сортировка - сначала новые
func (r *Repository) GetByCustomerWithFilter(ctx context.Context, filter domain.CustomerBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("booking_slots bs ON bs.booking_id = b.id").
		Where(squirrel.Eq{"b.customer_id": filter.CustomerID}).
		GroupBy("b.id").
		OrderBy("b.created_at DESC")

	// Фильтрация по статусу, если указан
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCustomerWithFilter - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerWithFilter - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Cancel переводит бронирование в статус cancelled с указанием причины
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.StatusConfirmed,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует строку результата в бронирование
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime
	var slotIDs pq.Int64Array

	err := row.Scan(
		&booking.ID,
		&booking.TerminalID,
		&booking.CustomerID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.DurationHours,
		&booking.HourlyRate,
		&booking.TotalCost,
		&booking.Status,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
		&slotIDs,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	booking.SlotIDs = []int64(slotIDs)

	return &booking, nil
}
