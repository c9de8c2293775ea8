package confirm_booking

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/GameNet-ReservationService/internal/domain"
	scheduleRepo "github.com/m04kA/GameNet-ReservationService/internal/infra/storage/schedule"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID == uuid.Nil {
		return fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	if req.TerminalID <= 0 {
		return fmt.Errorf("%w: terminalID must be positive", ErrInvalidInput)
	}

	if len(req.SlotIDs) == 0 {
		return ErrEmptySelection
	}

	if req.HourlyRate <= 0 {
		return fmt.Errorf("%w: hourlyRate must be positive", ErrInvalidInput)
	}

	// Дубликаты слотов в окне - ошибка клиента
	seen := make(map[int64]struct{}, len(req.SlotIDs))
	for _, id := range req.SlotIDs {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate slot %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// resolveWindow сопоставляет слоты окна с каталогом и проверяет,
// что они образуют непрерывную последовательность
// Доступность здесь не проверяется: это работа compare-and-set
func resolveWindow(assignments []domain.SlotAssignment, slotIDs []int64) ([]domain.TimeSlot, error) {
	byID := make(map[int64]domain.TimeSlot, len(assignments))
	for _, a := range assignments {
		byID[a.Slot.ID] = a.Slot
	}

	window := make([]domain.TimeSlot, 0, len(slotIDs))
	for _, id := range slotIDs {
		slot, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: slot %d", ErrSlotNotInCatalog, id)
		}
		window = append(window, slot)
	}

	for i := 1; i < len(window); i++ {
		if !window[i-1].AdjacentTo(window[i]) {
			return nil, fmt.Errorf("%w: gap between %s and %s",
				ErrNotContiguous, window[i-1].EndTime, window[i].StartTime)
		}
	}

	return window, nil
}

// isConflict проверяет, что ошибка каталога - конфликт compare-and-set
func isConflict(err error) bool {
	return errors.Is(err, scheduleRepo.ErrStatusConflict)
}

// isNotFound проверяет, что ошибка каталога - отсутствие пары (терминал, слот)
func isNotFound(err error) bool {
	return errors.Is(err, scheduleRepo.ErrAssignmentNotFound)
}
