package room

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

// Виды привязки add-on'а к комнате
const (
	kindIncluded = "included"
	kindOptional = "optional"
)

// Repository репозиторий для работы с комнатами
//
// Pricing хранится в JSONB как есть - включая legacy-формы из старых
// экспортов. Интерпретацией документа владеет internal/pricing, хранилище
// его не нормализует
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или обновляет комнату вместе с привязками add-on'ов
// Должен вызываться внутри транзакции: строка комнаты и ее привязки
// обновляются несколькими запросами
func (r *Repository) Upsert(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	pricingDoc, err := marshalPricing(room.Pricing)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert: %v", ErrMarshalPricing, err)
	}

	query, args, err := psqlbuilder.Insert("rooms").
		Columns("id", "name", "capacity", "vat_class", "pricing").
		Values(room.ID, room.Name, room.Capacity, room.VATClass, pricingDoc).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			capacity = EXCLUDED.capacity,
			vat_class = EXCLUDED.vat_class,
			pricing = EXCLUDED.pricing,
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

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	// Привязки add-on'ов перезаписываются целиком
	if err := r.replaceAddOnLinks(ctx, executor, room); err != nil {
		return nil, err
	}

	return room, nil
}

// GetByID получает комнату по ID вместе с привязками add-on'ов
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "capacity", "vat_class", "pricing", "created_at", "updated_at").
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	if err := r.loadAddOnLinks(ctx, executor, map[string]*domain.Room{room.ID: room}); err != nil {
		return nil, err
	}

	return room, nil
}

// List получает все комнаты площадки вместе с привязками add-on'ов
func (r *Repository) List(ctx context.Context) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "capacity", "vat_class", "pricing", "created_at", "updated_at").
		From("rooms").
		OrderBy("name ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	byID := make(map[string]*domain.Room)

	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
		byID[room.ID] = room
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	if len(byID) > 0 {
		if err := r.loadAddOnLinks(ctx, executor, byID); err != nil {
			return nil, err
		}
	}

	return rooms, nil
}

// Delete удаляет комнату; привязки add-on'ов удаляются каскадно
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rooms").
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
		return ErrRoomNotFound
	}

	return nil
}

// replaceAddOnLinks перезаписывает привязки add-on'ов комнаты
// Позиция сохраняется, чтобы раскладка цен шла в настроенном порядке
func (r *Repository) replaceAddOnLinks(ctx context.Context, executor DBExecutor, room *domain.Room) error {
	query, args, err := psqlbuilder.Delete("room_add_ons").
		Where(squirrel.Eq{"room_id": room.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceAddOnLinks - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceAddOnLinks - execute delete: %v", ErrExecQuery, err)
	}

	if len(room.IncludedAddOns) == 0 && len(room.OptionalAddOns) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("room_add_ons").
		Columns("room_id", "add_on_id", "kind", "position")
	for i, addOnID := range room.IncludedAddOns {
		insert = insert.Values(room.ID, addOnID, kindIncluded, i)
	}
	for i, addOnID := range room.OptionalAddOns {
		insert = insert.Values(room.ID, addOnID, kindOptional, i)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceAddOnLinks - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceAddOnLinks - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// loadAddOnLinks загружает привязки add-on'ов для набора комнат
func (r *Repository) loadAddOnLinks(ctx context.Context, executor DBExecutor, byID map[string]*domain.Room) error {
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	query, args, err := psqlbuilder.Select("room_id", "add_on_id", "kind").
		From("room_add_ons").
		Where(squirrel.Eq{"room_id": ids}).
		OrderBy("room_id ASC, kind ASC, position ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadAddOnLinks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadAddOnLinks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var roomID, addOnID, kind string
		if err := rows.Scan(&roomID, &addOnID, &kind); err != nil {
			return fmt.Errorf("%w: loadAddOnLinks - scan row: %v", ErrScanRow, err)
		}

		room, ok := byID[roomID]
		if !ok {
			continue
		}
		switch kind {
		case kindIncluded:
			room.IncludedAddOns = append(room.IncludedAddOns, addOnID)
		case kindOptional:
			room.OptionalAddOns = append(room.OptionalAddOns, addOnID)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadAddOnLinks - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	var pricingDoc []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.VATClass,
		&pricingDoc,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(pricingDoc) > 0 {
		var pricing domain.RoomPricing
		if err := json.Unmarshal(pricingDoc, &pricing); err != nil {
			return nil, err
		}
		room.Pricing = &pricing
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

func marshalPricing(pricing *domain.RoomPricing) (interface{}, error) {
	if pricing == nil {
		return nil, nil
	}
	doc, err := json.Marshal(pricing)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
