package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GameNet-ReservationService/internal/domain"
	"github.com/m04kA/GameNet-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/GameNet-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий каталога расписания
// Единственный владелец записей terminal_schedule: любые изменения статуса
// слота проходят через CompareAndSetStatus
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAssignments получает все слоты терминала с их текущими статусами,
// отсортированные по времени начала слота
func (r *Repository) GetAssignments(ctx context.Context, terminalID int64) ([]domain.SlotAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"ts.terminal_id",
		"s.id",
		"s.start_time",
		"s.end_time",
		"ts.status",
		"ts.updated_at",
	).
		From("terminal_schedule ts").
		Join("time_slots s ON s.id = ts.slot_id").
		Where(squirrel.Eq{"ts.terminal_id": terminalID}).
		OrderBy("s.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAssignments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAssignments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	assignments := make([]domain.SlotAssignment, 0)
	for rows.Next() {
		var a domain.SlotAssignment
		var updatedAt sql.NullTime

		err := rows.Scan(
			&a.TerminalID,
			&a.Slot.ID,
			&a.Slot.StartTime,
			&a.Slot.EndTime,
			&a.Status,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAssignments - scan row: %v", ErrScanRow, err)
		}

		a.UpdatedAt = updatedAt.Time
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAssignments - rows error: %v", ErrScanRow, err)
	}

	return assignments, nil
}

// CompareAndSetStatus атомарно переводит слот терминала из expected в newStatus
// Единственная точка мутации статуса. Условие по текущему статусу входит
// в сам UPDATE: слепая перезапись чужого статуса невозможна.
//
// Возвращает ErrStatusConflict, если статус слота уже не равен expected,
// и ErrAssignmentNotFound, если пары (терминал, слот) не существует.
func (r *Repository) CompareAndSetStatus(
	ctx context.Context,
	terminalID int64,
	slotID int64,
	expected domain.SlotStatus,
	newStatus domain.SlotStatus,
) error {
	if !expected.Valid() || !newStatus.Valid() {
		return fmt.Errorf("%w: CompareAndSetStatus - expected=%q new=%q", ErrInvalidStatus, expected, newStatus)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("terminal_schedule").
		Set("status", newStatus).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"terminal_id": terminalID,
			"slot_id":     slotID,
			"status":      expected,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CompareAndSetStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CompareAndSetStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CompareAndSetStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected > 0 {
		return nil
	}

	// 0 строк: либо записи нет, либо статус уже изменился
	// Дочитываем текущий статус, чтобы отличить конфликт от отсутствия записи
	current, err := r.getStatus(ctx, executor, terminalID, slotID)
	if err != nil {
		return err
	}

	return fmt.Errorf("%w: terminal=%d slot=%d expected=%s actual=%s",
		ErrStatusConflict, terminalID, slotID, expected, current)
}

// getStatus читает текущий статус пары (терминал, слот)
func (r *Repository) getStatus(ctx context.Context, executor DBExecutor, terminalID, slotID int64) (domain.SlotStatus, error) {
	query, args, err := psqlbuilder.Select("status").
		From("terminal_schedule").
		Where(squirrel.Eq{
			"terminal_id": terminalID,
			"slot_id":     slotID,
		}).
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: getStatus - build select query: %v", ErrBuildQuery, err)
	}

	var status domain.SlotStatus
	err = executor.QueryRowContext(ctx, query, args...).Scan(&status)
	if err == sql.ErrNoRows {
		return "", ErrAssignmentNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: getStatus - scan status: %v", ErrScanRow, err)
	}

	return status, nil
}
