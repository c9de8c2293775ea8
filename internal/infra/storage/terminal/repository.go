package terminal

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GameNet-ReservationService/internal/domain"
	"github.com/m04kA/GameNet-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/GameNet-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/GameNet-ReservationService/pkg/types"
)

// Repository репозиторий справочника терминалов
// Терминалы и их характеристики для ядра неизменяемы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория терминалов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает терминал по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Terminal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"table_location",
		"brand",
		"cpu",
		"graphics_card",
		"ram",
		"storage",
	).
		From("terminals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Terminal
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.TableLocation,
		&t.Spec.Brand,
		&t.Spec.CPU,
		&t.Spec.GraphicsCard,
		&t.Spec.RAM,
		&t.Spec.Storage,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTerminalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan terminal: %v", ErrScanRow, err)
	}

	return &t, nil
}

// ListWithCurrentStatus получает все терминалы вместе со статусом слота,
// покрывающего момент at. Терминалы без покрывающего слота (вне часов
// работы зала) показываются как unavailable.
func (r *Repository) ListWithCurrentStatus(ctx context.Context, at types.TimeString) ([]domain.TerminalWithStatus, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"t.id",
		"t.table_location",
		"t.brand",
		"t.cpu",
		"t.graphics_card",
		"t.ram",
		"t.storage",
		"ts.status",
	).
		From("terminals t").
		LeftJoin("time_slots s ON s.start_time <= ? AND s.end_time > ?", at, at).
		LeftJoin("terminal_schedule ts ON ts.terminal_id = t.id AND ts.slot_id = s.id").
		OrderBy("t.table_location ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWithCurrentStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithCurrentStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	terminals := make([]domain.TerminalWithStatus, 0)
	for rows.Next() {
		var tw domain.TerminalWithStatus
		var status sql.NullString

		err := rows.Scan(
			&tw.Terminal.ID,
			&tw.Terminal.TableLocation,
			&tw.Terminal.Spec.Brand,
			&tw.Terminal.Spec.CPU,
			&tw.Terminal.Spec.GraphicsCard,
			&tw.Terminal.Spec.RAM,
			&tw.Terminal.Spec.Storage,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithCurrentStatus - scan row: %v", ErrScanRow, err)
		}

		if status.Valid {
			tw.CurrentStatus = domain.SlotStatus(status.String)
		} else {
			tw.CurrentStatus = domain.SlotUnavailable
		}

		terminals = append(terminals, tw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithCurrentStatus - rows error: %v", ErrScanRow, err)
	}

	return terminals, nil
}
