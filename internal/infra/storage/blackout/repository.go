package blackout

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MRV-PricingService/internal/domain"
	"github.com/m04kA/MRV-PricingService/pkg/dbmetrics"
	"github.com/m04kA/MRV-PricingService/pkg/psqlbuilder"
	"github.com/m04kA/MRV-PricingService/pkg/types"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий периодов недоступности площадки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория периодов недоступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает период недоступности
func (r *Repository) Create(ctx context.Context, period *domain.BlackoutPeriod) (*domain.BlackoutPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blackout_periods").
		Columns("room_id", "start_date", "end_date", "reason").
		Values(period.RoomID, period.StartDate.String(), period.EndDate.String(), period.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&period.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	period.CreatedAt = createdAt.Time

	return period, nil
}

// List получает все периоды недоступности
func (r *Repository) List(ctx context.Context) ([]*domain.BlackoutPeriod, error) {
	return r.list(ctx, nil)
}

// ListForDate получает периоды, покрывающие указанную дату для комнаты
// Учитываются и периоды всей площадки (room_id IS NULL)
func (r *Repository) ListForDate(ctx context.Context, roomID string, date types.DateString) ([]*domain.BlackoutPeriod, error) {
	return r.list(ctx, squirrel.And{
		squirrel.Or{
			squirrel.Eq{"room_id": nil},
			squirrel.Eq{"room_id": roomID},
		},
		squirrel.LtOrEq{"start_date": date.String()},
		squirrel.GtOrEq{"end_date": date.String()},
	})
}

// Delete удаляет период недоступности
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blackout_periods").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlackoutNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.BlackoutPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id", "room_id", "start_date", "end_date", "reason", "created_at").
		From("blackout_periods").
		OrderBy("start_date ASC, id ASC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]*domain.BlackoutPeriod, 0)

	for rows.Next() {
		var period domain.BlackoutPeriod
		var roomID sql.NullString
		var startDate, endDate time.Time
		var createdAt sql.NullTime

		err := rows.Scan(&period.ID, &roomID, &startDate, &endDate, &period.Reason, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}

		if roomID.Valid {
			period.RoomID = &roomID.String
		}
		period.StartDate = types.NewDateString(startDate)
		period.EndDate = types.NewDateString(endDate)
		period.CreatedAt = createdAt.Time

		periods = append(periods, &period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return periods, nil
}
