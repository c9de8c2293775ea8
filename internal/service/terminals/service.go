package terminals

import (
	"context"
	"errors"
	"fmt"

	terminalRepo "github.com/m04kA/GameNet-ReservationService/internal/infra/storage/terminal"
	"github.com/m04kA/GameNet-ReservationService/internal/service/terminals/models"
	"github.com/m04kA/GameNet-ReservationService/pkg/types"
)

// Service сервис витрины терминалов
type Service struct {
	terminalRepo TerminalRepository
	scheduleRepo ScheduleRepository
	clock        TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса терминалов
func NewService(
	terminalRepo TerminalRepository,
	scheduleRepo ScheduleRepository,
	clock TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		terminalRepo: terminalRepo,
		scheduleRepo: scheduleRepo,
		clock:        clock,
		logger:       logger,
	}
}

// List получает все терминалы зала со статусом слота на текущий момент
func (s *Service) List(ctx context.Context) (*models.TerminalListResponse, error) {
	now := types.NewTimeString(s.clock.Now())

	terminals, err := s.terminalRepo.ListWithCurrentStatus(ctx, now)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d terminals at %s", len(terminals), now)
	return models.FromDomainTerminalList(terminals), nil
}

// GetDaySchedule получает полное дневное расписание терминала со статусами слотов
func (s *Service) GetDaySchedule(ctx context.Context, terminalID int64) (*models.DayScheduleResponse, error) {
	s.logger.Info("GetDaySchedule: fetching schedule for terminal=%d", terminalID)

	terminal, err := s.terminalRepo.GetByID(ctx, terminalID)
	if err != nil {
		if errors.Is(err, terminalRepo.ErrTerminalNotFound) {
			s.logger.Warn("GetDaySchedule: terminal=%d not found", terminalID)
			return nil, ErrTerminalNotFound
		}
		s.logger.Error("GetDaySchedule: repository error for terminal=%d: %v", terminalID, err)
		return nil, fmt.Errorf("%w: GetDaySchedule - repository error: %v", ErrInternal, err)
	}

	assignments, err := s.scheduleRepo.GetAssignments(ctx, terminalID)
	if err != nil {
		s.logger.Error("GetDaySchedule: schedule error for terminal=%d: %v", terminalID, err)
		return nil, fmt.Errorf("%w: GetDaySchedule - schedule error: %v", ErrInternal, err)
	}

	return models.FromDomainAssignments(terminal, assignments), nil
}
