package addon

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MRV-PricingService/internal/domain"
	"github.com/m04kA/MRV-PricingService/pkg/dbmetrics"
	"github.com/m04kA/MRV-PricingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий каталога add-on'ов
//
// Запись хранится целиком в JSONB - включая legacy-поля ценообразования
// из старых экспортов. Хранилище не нормализует формы записи: этим владеет
// internal/pricing при вычислении цен
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или обновляет запись каталога
func (r *Repository) Upsert(ctx context.Context, addOn *domain.AddOn) (*domain.AddOn, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	record, err := json.Marshal(addOn)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert: %v", ErrMarshalRecord, err)
	}

	query, args, err := psqlbuilder.Insert("add_ons").
		Columns("id", "record").
		Values(addOn.ID, record).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			record = EXCLUDED.record,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	addOn.CreatedAt = createdAt.Time
	addOn.UpdatedAt = updatedAt.Time

	return addOn, nil
}

// GetByID получает запись каталога по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.AddOn, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "record", "created_at", "updated_at").
		From("add_ons").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	addOn, err := scanAddOn(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAddOnNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan add-on: %v", ErrScanRow, err)
	}

	return addOn, nil
}

// List получает все записи каталога
func (r *Repository) List(ctx context.Context) ([]*domain.AddOn, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "record", "created_at", "updated_at").
		From("add_ons").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	addOns := make([]*domain.AddOn, 0)
	for rows.Next() {
		addOn, err := scanAddOn(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		addOns = append(addOns, addOn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return addOns, nil
}

// Delete удаляет запись каталога
// Привязки комнат к удаленному ID остаются и молча отбрасываются движком цен
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("add_ons").
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
		return ErrAddOnNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAddOn(row rowScanner) (*domain.AddOn, error) {
	var id string
	var record []byte
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(&id, &record, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var addOn domain.AddOn
	if err := json.Unmarshal(record, &addOn); err != nil {
		return nil, err
	}

	// ID колонки - источник истины
	addOn.ID = id
	addOn.CreatedAt = createdAt.Time
	addOn.UpdatedAt = updatedAt.Time

	return &addOn, nil
}
