package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/MRV-PricingService/internal/domain"
	addonRepo "github.com/m04kA/MRV-PricingService/internal/infra/storage/addon"
	roomRepo "github.com/m04kA/MRV-PricingService/internal/infra/storage/room"
	"github.com/m04kA/MRV-PricingService/internal/service/catalog/models"
)

// Service сервис каталога конфигурации площадки: комнаты и add-on'ы
//
// Реализует контракт ConfigSource quote use case'ов поверх локальной базы.
// Валидация здесь защищает данные, которыми управляет администратор площадки;
// legacy-записи из внешнего Config Provider'а через этот сервис не проходят
type Service struct {
	roomRepo  RoomRepository
	addOnRepo AddOnRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	roomRepo RoomRepository,
	addOnRepo AddOnRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:  roomRepo,
		addOnRepo: addOnRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// UpsertRoom создает или обновляет комнату
// Доступно только администраторам площадки
func (s *Service) UpsertRoom(ctx context.Context, roomID string, req *models.UpsertRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("UpsertRoom: upserting room id=%s", roomID)

	// 1. Валидируем входные данные
	if err := s.validateRoom(roomID, req); err != nil {
		s.logger.Warn("UpsertRoom: validation failed for room id=%s: %v", roomID, err)
		return nil, err
	}

	// 2. Пишем комнату и ее привязки add-on'ов в одной транзакции
	var saved *domain.Room
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		var txErr error
		saved, txErr = s.roomRepo.Upsert(ctx, req.ToDomainRoom(roomID))
		return txErr
	})
	if err != nil {
		s.logger.Error("UpsertRoom: repository error for room id=%s: %v", roomID, err)
		return nil, fmt.Errorf("%w: UpsertRoom - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertRoom: successfully upserted room id=%s", saved.ID)
	return models.FromDomainRoom(saved), nil
}

// GetRoom получает комнату по ID
// Публичный метод - доступен всем
func (s *Service) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetRoom: room id=%s not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoom: repository error for room id=%s: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetRoom - repository error: %v", ErrInternal, err)
	}

	return room, nil
}

// ListRooms получает список всех комнат площадки
// Публичный метод - доступен всем
func (s *Service) ListRooms(ctx context.Context) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomList(rooms), nil
}

// DeleteRoom удаляет комнату
// Доступно только администраторам площадки
func (s *Service) DeleteRoom(ctx context.Context, roomID string) error {
	s.logger.Info("DeleteRoom: deleting room id=%s", roomID)

	err := s.roomRepo.Delete(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("DeleteRoom: room id=%s not found", roomID)
			return ErrRoomNotFound
		}
		s.logger.Error("DeleteRoom: repository error for room id=%s: %v", roomID, err)
		return fmt.Errorf("%w: DeleteRoom - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRoom: successfully deleted room id=%s", roomID)
	return nil
}

// UpsertAddOn создает или обновляет запись каталога add-on'ов
// Доступно только администраторам площадки
func (s *Service) UpsertAddOn(ctx context.Context, addOnID string, req *models.UpsertAddOnRequest) (*models.AddOnResponse, error) {
	s.logger.Info("UpsertAddOn: upserting add-on id=%s", addOnID)

	// 1. Валидируем входные данные
	if err := s.validateAddOn(addOnID, req); err != nil {
		s.logger.Warn("UpsertAddOn: validation failed for add-on id=%s: %v", addOnID, err)
		return nil, err
	}

	// 2. Сохраняем запись как есть: движок цен сам разрешает канонические
	// и legacy-поля, каталог их не нормализует
	saved, err := s.addOnRepo.Upsert(ctx, req.ToDomainAddOn(addOnID))
	if err != nil {
		s.logger.Error("UpsertAddOn: repository error for add-on id=%s: %v", addOnID, err)
		return nil, fmt.Errorf("%w: UpsertAddOn - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertAddOn: successfully upserted add-on id=%s", saved.ID)
	return models.FromDomainAddOn(saved), nil
}

// GetAddOn получает запись каталога по ID
// Публичный метод - доступен всем
func (s *Service) GetAddOn(ctx context.Context, addOnID string) (*domain.AddOn, error) {
	addOn, err := s.addOnRepo.GetByID(ctx, addOnID)
	if err != nil {
		if errors.Is(err, addonRepo.ErrAddOnNotFound) {
			s.logger.Warn("GetAddOn: add-on id=%s not found", addOnID)
			return nil, ErrAddOnNotFound
		}
		s.logger.Error("GetAddOn: repository error for add-on id=%s: %v", addOnID, err)
		return nil, fmt.Errorf("%w: GetAddOn - repository error: %v", ErrInternal, err)
	}

	return addOn, nil
}

// ListAddOns получает каталог add-on'ов
// Публичный метод - доступен всем
func (s *Service) ListAddOns(ctx context.Context) ([]*domain.AddOn, error) {
	addOns, err := s.addOnRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListAddOns: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAddOns - repository error: %v", ErrInternal, err)
	}

	return addOns, nil
}

// DeleteAddOn удаляет запись каталога
// Доступно только администраторам площадки
//
// Ссылки на удаленный add-on могут оставаться в includedAddOns/optionalAddOns
// комнат - движок цен молча отбрасывает неизвестные ID при расчете
func (s *Service) DeleteAddOn(ctx context.Context, addOnID string) error {
	s.logger.Info("DeleteAddOn: deleting add-on id=%s", addOnID)

	err := s.addOnRepo.Delete(ctx, addOnID)
	if err != nil {
		if errors.Is(err, addonRepo.ErrAddOnNotFound) {
			s.logger.Warn("DeleteAddOn: add-on id=%s not found", addOnID)
			return ErrAddOnNotFound
		}
		s.logger.Error("DeleteAddOn: repository error for add-on id=%s: %v", addOnID, err)
		return fmt.Errorf("%w: DeleteAddOn - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteAddOn: successfully deleted add-on id=%s", addOnID)
	return nil
}

// GetVenueConfig собирает полный документ конфигурации площадки {rooms, addOns}
// Публичный метод - доступен всем
func (s *Service) GetVenueConfig(ctx context.Context) (*models.VenueConfigResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetVenueConfig: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: GetVenueConfig - failed to list rooms: %v", ErrInternal, err)
	}

	addOns, err := s.addOnRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetVenueConfig: failed to list add-ons: %v", err)
		return nil, fmt.Errorf("%w: GetVenueConfig - failed to list add-ons: %v", ErrInternal, err)
	}

	if rooms == nil {
		rooms = []*domain.Room{}
	}
	if addOns == nil {
		addOns = []*domain.AddOn{}
	}

	return &models.VenueConfigResponse{
		Rooms:  rooms,
		AddOns: addOns,
	}, nil
}

// validateRoom проверяет данные комнаты перед записью в каталог
func (s *Service) validateRoom(roomID string, req *models.UpsertRoomRequest) error {
	if strings.TrimSpace(roomID) == "" {
		return fmt.Errorf("%w: room id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: room name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: room name must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if req.Capacity < 0 || req.Capacity > domain.MaxCapacity {
		return fmt.Errorf("%w: capacity must be between 0 and %d", ErrInvalidInput, domain.MaxCapacity)
	}

	if req.Pricing != nil {
		if err := s.validateRoomPricing(req.Pricing); err != nil {
			return err
		}
	}

	// Один и тот же add-on не может быть одновременно включенным и опциональным
	included := make(map[string]struct{}, len(req.IncludedAddOns))
	for _, id := range req.IncludedAddOns {
		included[id] = struct{}{}
	}
	for _, id := range req.OptionalAddOns {
		if _, ok := included[id]; ok {
			return fmt.Errorf("%w: add-on %q is both included and optional", ErrInvalidInput, id)
		}
	}

	return nil
}

// validateRoomPricing проверяет ставки и правило выбора тарифа
// Ставки принимаются как JSON число или числовая строка - как в legacy-экспортах
func (s *Service) validateRoomPricing(pricing *domain.RoomPricing) error {
	if rate, ok, err := numericValue(pricing.PerPerson); err != nil {
		return fmt.Errorf("%w: perPerson rate must be numeric", ErrInvalidInput)
	} else if ok && rate < 0 {
		return fmt.Errorf("%w: perPerson rate must not be negative", ErrInvalidInput)
	}

	if rate, ok, err := numericValue(pricing.PerRoom); err != nil {
		return fmt.Errorf("%w: perRoom rate must be numeric", ErrInvalidInput)
	} else if ok && rate < 0 {
		return fmt.Errorf("%w: perRoom rate must not be negative", ErrInvalidInput)
	}

	switch strings.ToLower(pricing.Rule) {
	case "", domain.RuleHigher, domain.RuleLower:
		return nil
	default:
		return fmt.Errorf("%w: pricing rule must be %q or %q", ErrInvalidInput, domain.RuleHigher, domain.RuleLower)
	}
}

// validateAddOn проверяет запись каталога перед записью
// Ценовые поля не валидируются: legacy-формы принимаются как есть,
// их интерпретация - ответственность движка цен
func (s *Service) validateAddOn(addOnID string, req *models.UpsertAddOnRequest) error {
	if strings.TrimSpace(addOnID) == "" {
		return fmt.Errorf("%w: add-on id is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: add-on name must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	return nil
}

// numericValue извлекает число из слабо типизированного поля ставки
// Возвращает (значение, задано ли поле, ошибка формата)
func numericValue(v interface{}) (float64, bool, error) {
	switch value := v.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return value, true, nil
	case float32:
		return float64(value), true, nil
	case int:
		return float64(value), true, nil
	case int64:
		return float64(value), true, nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, true, fmt.Errorf("not a numeric string: %q", value)
		}
		return parsed, true, nil
	default:
		return 0, true, fmt.Errorf("unsupported rate type %T", v)
	}
}
