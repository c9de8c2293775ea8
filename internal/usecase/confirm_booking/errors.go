package confirm_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySelection возвращается, когда окно бронирования пусто
	ErrEmptySelection = errors.New("confirm_booking: selection is empty")

	// ErrNotContiguous возвращается, когда слоты окна не образуют
	// непрерывную последовательность
	ErrNotContiguous = errors.New("confirm_booking: selected slots are not contiguous")

	// ErrSlotNotInCatalog возвращается, когда слот окна отсутствует
	// в расписании терминала
	ErrSlotNotInCatalog = errors.New("confirm_booking: slot is not in the terminal schedule")

	// ErrSlotConflict возвращается, когда слот окна успел занять другой
	// коммит между чтением витрины и подтверждением
	ErrSlotConflict = errors.New("confirm_booking: slot is no longer available")

	// ErrTerminalNotFound возвращается, когда терминал не найден
	ErrTerminalNotFound = errors.New("confirm_booking: terminal not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)

// SlotConflictError конфликт коммита с точным указанием спорных слотов,
// чтобы клиент мог обновить витрину и перевыбрать окно
type SlotConflictError struct {
	TerminalID int64
	SlotIDs    []int64
}

// Error реализует интерфейс error
func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("confirm_booking: slots %v on terminal %d are no longer available", e.SlotIDs, e.TerminalID)
}

// Is позволяет матчить конфликт через errors.Is(err, ErrSlotConflict)
func (e *SlotConflictError) Is(target error) bool {
	return target == ErrSlotConflict
}
