package selection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/GameNet-ReservationService/internal/domain"
	terminalRepo "github.com/m04kA/GameNet-ReservationService/internal/infra/storage/terminal"
	"github.com/m04kA/GameNet-ReservationService/internal/service/selection/models"
)

// Service сервис сборки окна бронирования
//
// Держит по одному окну на клиента в памяти процесса. Выбор клиента не дает
// никакой эксклюзивности: каталог не мутируется до самого коммита, поэтому
// брошенный выбор (клиент ушел со страницы) просто очищается без следов.
//
// Start и Extend перечитывают витрину доступности на каждый вызов:
// устаревший список здесь означает лишь конфликт на коммите позже
type Service struct {
	scheduleRepo ScheduleRepository
	terminalRepo TerminalRepository
	hourlyRate   int64
	logger       Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

// session окно одного клиента со своей блокировкой
//
// Мутации окна не атомарны, поэтому каждая операция над выбором держит
// блокировку сессии целиком: два параллельных запроса одного клиента
// (двойной клик по "продлить") выполняются по очереди, не мешая
// сессиям других клиентов
type session struct {
	mu     sync.Mutex
	window *domain.BookingWindow
}

// NewService создает новый сервис выбора окна
func NewService(
	scheduleRepo ScheduleRepository,
	terminalRepo TerminalRepository,
	hourlyRate int64,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		terminalRepo: terminalRepo,
		hourlyRate:   hourlyRate,
		logger:       logger,
		sessions:     make(map[uuid.UUID]*session),
	}
}

// Start начинает новый выбор: окно из одного стартового слота
// Любой предыдущий выбор клиента отбрасывается
func (s *Service) Start(ctx context.Context, customerID uuid.UUID, terminalID, slotID int64) (*models.SelectionResponse, error) {
	s.logger.Info("Selection.Start: customer=%s, terminal=%d, slot=%d", customerID, terminalID, slotID)

	if terminalID <= 0 || slotID <= 0 {
		return nil, fmt.Errorf("%w: terminalID and slotID must be positive", ErrInvalidInput)
	}

	if _, err := s.terminalRepo.GetByID(ctx, terminalID); err != nil {
		if errors.Is(err, terminalRepo.ErrTerminalNotFound) {
			s.logger.Warn("Selection.Start: terminal id=%d not found", terminalID)
			return nil, ErrTerminalNotFound
		}
		s.logger.Error("Selection.Start: failed to get terminal id=%d: %v", terminalID, err)
		return nil, fmt.Errorf("%w: failed to get terminal: %v", ErrInternal, err)
	}

	assignments, err := s.scheduleRepo.GetAssignments(ctx, terminalID)
	if err != nil {
		s.logger.Error("Selection.Start: failed to get assignments for terminal id=%d: %v", terminalID, err)
		return nil, fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
	}

	window := domain.NewBookingWindow(terminalID, s.hourlyRate)
	if err := window.SelectStart(assignments, slotID); err != nil {
		s.logger.Warn("Selection.Start: slot %d on terminal %d is not selectable", slotID, terminalID)
		return nil, fmt.Errorf("%w: slot %d", ErrSlotNotAvailable, slotID)
	}

	// Ответ собирается до публикации окна в sessions: после этого
	// к окну могут прийти параллельные Extend/Shrink
	resp := models.FromWindow(window)

	s.mu.Lock()
	s.sessions[customerID] = &session{window: window}
	s.mu.Unlock()

	return resp, nil
}

// Extend продлевает окно клиента на следующий смежный слот
func (s *Service) Extend(ctx context.Context, customerID uuid.UUID) (*models.SelectionResponse, error) {
	sess, err := s.session(customerID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	window := sess.window

	// Свежая витрина на каждый вызов: слот, занятый после начала выбора,
	// уже не должен попасть в окно
	assignments, err := s.scheduleRepo.GetAssignments(ctx, window.TerminalID())
	if err != nil {
		s.logger.Error("Selection.Extend: failed to get assignments for terminal id=%d: %v", window.TerminalID(), err)
		return nil, fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
	}

	if err := window.Extend(assignments); err != nil {
		s.logger.Info("Selection.Extend: customer=%s has no further slots on terminal %d",
			customerID, window.TerminalID())
		return nil, ErrNoFurtherSlots
	}

	s.logger.Info("Selection.Extend: customer=%s window now %d hour(s)", customerID, window.Duration())
	return models.FromWindow(window), nil
}

// Shrink убирает последний слот окна клиента
func (s *Service) Shrink(_ context.Context, customerID uuid.UUID) (*models.SelectionResponse, error) {
	sess, err := s.session(customerID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.window.Shrink(); err != nil {
		return nil, ErrMinimumDuration
	}

	s.logger.Info("Selection.Shrink: customer=%s window now %d hour(s)", customerID, sess.window.Duration())
	return models.FromWindow(sess.window), nil
}

// Get возвращает текущее состояние выбора клиента
func (s *Service) Get(_ context.Context, customerID uuid.UUID) (*models.SelectionResponse, error) {
	sess, err := s.session(customerID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return models.FromWindow(sess.window), nil
}

// Clear отбрасывает выбор клиента
// Каталог при этом не трогается: до коммита ничего не было занято
func (s *Service) Clear(_ context.Context, customerID uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, customerID)
	s.mu.Unlock()

	s.logger.Info("Selection.Clear: customer=%s selection discarded", customerID)
}

// session возвращает активную сессию выбора клиента
func (s *Service) session(customerID uuid.UUID) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[customerID]
	if !ok {
		return nil, ErrNoSelection
	}
	return sess, nil
}
