package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	terminalRepo "github.com/m04kA/GameNet-ReservationService/internal/infra/storage/terminal"
)

// UseCase use case витрины доступности: упорядоченный список слотов
// терминала, доступных для бронирования прямо сейчас
//
// Результат считается заново на каждый запрос и нигде не кэшируется:
// устаревшая витрина приводит максимум к конфликту на коммите,
// но никогда - к двойному бронированию
type UseCase struct {
	scheduleRepo ScheduleRepository
	terminalRepo TerminalRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	terminalRepo TerminalRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		terminalRepo: terminalRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: terminal=%d", req.TerminalID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем терминал
	terminal, err := uc.terminalRepo.GetByID(ctx, req.TerminalID)
	if err != nil {
		if errors.Is(err, terminalRepo.ErrTerminalNotFound) {
			uc.logger.Warn("GetAvailableSlots: terminal id=%d not found", req.TerminalID)
			return nil, ErrTerminalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get terminal id=%d: %v", req.TerminalID, err)
		return nil, fmt.Errorf("%w: failed to get terminal: %v", ErrInternal, err)
	}

	// 3. Читаем каталог расписания (уже отсортирован по времени начала)
	assignments, err := uc.scheduleRepo.GetAssignments(ctx, req.TerminalID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get assignments for terminal id=%d: %v", req.TerminalID, err)
		return nil, fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
	}

	// 4. Оставляем только доступные слоты
	slots := make([]Slot, 0, len(assignments))
	for _, a := range assignments {
		if !a.IsAvailable() {
			continue
		}
		slots = append(slots, Slot{
			SlotID:    a.Slot.ID,
			StartTime: a.Slot.StartTime,
			EndTime:   a.Slot.EndTime,
		})
	}

	uc.logger.Info("GetAvailableSlots: terminal=%d, %d of %d slots available",
		req.TerminalID, len(slots), len(assignments))

	return &Response{
		TerminalID:    terminal.ID,
		TableLocation: terminal.TableLocation,
		Brand:         terminal.Spec.Brand,
		CPU:           terminal.Spec.CPU,
		GraphicsCard:  terminal.Spec.GraphicsCard,
		RAM:           terminal.Spec.RAM,
		Storage:       terminal.Spec.Storage,
		Slots:         slots,
	}, nil
}
