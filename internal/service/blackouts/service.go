package blackouts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/MRV-PricingService/internal/domain"
	blackoutRepo "github.com/m04kA/MRV-PricingService/internal/infra/storage/blackout"
	roomRepo "github.com/m04kA/MRV-PricingService/internal/infra/storage/room"
	"github.com/m04kA/MRV-PricingService/internal/service/blackouts/models"
	"github.com/m04kA/MRV-PricingService/pkg/types"
)

// Service сервис для работы с blackout-периодами площадки
type Service struct {
	blackoutRepo BlackoutRepository
	roomRepo     RoomRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса blackout-периодов
func NewService(blackoutRepo BlackoutRepository, roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		blackoutRepo: blackoutRepo,
		roomRepo:     roomRepo,
		logger:       logger,
	}
}

// Create создает новый blackout-период
// Доступно только администраторам площадки
func (s *Service) Create(ctx context.Context, req *models.CreateBlackoutRequest) (*models.BlackoutResponse, error) {
	s.logger.Info("Create: creating blackout period room=%v, start=%s, end=%s",
		req.RoomID, req.StartDate, req.EndDate)

	// 1. Валидируем входные данные
	if err := s.validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Если период привязан к комнате, проверяем ее существование
	if req.RoomID != nil {
		if _, err := s.roomRepo.GetByID(ctx, *req.RoomID); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				s.logger.Warn("Create: room id=%s not found", *req.RoomID)
				return nil, ErrRoomNotFound
			}
			s.logger.Error("Create: failed to check room id=%s: %v", *req.RoomID, err)
			return nil, fmt.Errorf("%w: failed to check room: %v", ErrInternal, err)
		}
	}

	// 3. Создаем период
	created, err := s.blackoutRepo.Create(ctx, req.ToDomainBlackout())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created blackout period id=%d", created.ID)
	return models.FromDomainBlackout(created), nil
}

// List получает список всех blackout-периодов площадки
// Публичный метод - доступен всем
func (s *Service) List(ctx context.Context) (*models.BlackoutListResponse, error) {
	blackouts, err := s.blackoutRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlackoutList(blackouts), nil
}

// ListForDate получает периоды, закрывающие комнату на заданную дату
// Учитываются и периоды комнаты, и общие периоды площадки (room_id IS NULL)
func (s *Service) ListForDate(ctx context.Context, roomID string, date types.DateString) ([]*domain.BlackoutPeriod, error) {
	blackouts, err := s.blackoutRepo.ListForDate(ctx, roomID, date)
	if err != nil {
		s.logger.Error("ListForDate: repository error for room=%s, date=%s: %v", roomID, date, err)
		return nil, fmt.Errorf("%w: ListForDate - repository error: %v", ErrInternal, err)
	}

	return blackouts, nil
}

// Delete удаляет blackout-период
// Доступно только администраторам площадки
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting blackout period id=%d", id)

	err := s.blackoutRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, blackoutRepo.ErrBlackoutNotFound) {
			s.logger.Warn("Delete: blackout period id=%d not found", id)
			return ErrBlackoutNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted blackout period id=%d", id)
	return nil
}

// validateCreate проверяет данные нового blackout-периода
func (s *Service) validateCreate(req *models.CreateBlackoutRequest) error {
	startDate, err := types.NewDateStringFromString(req.StartDate)
	if err != nil {
		return fmt.Errorf("%w: startDate must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	endDate, err := types.NewDateStringFromString(req.EndDate)
	if err != nil {
		return fmt.Errorf("%w: endDate must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if endDate.Before(startDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	if req.RoomID != nil && strings.TrimSpace(*req.RoomID) == "" {
		return fmt.Errorf("%w: roomId must not be empty when provided", ErrInvalidInput)
	}

	if len(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return nil
}
