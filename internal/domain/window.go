package domain

import (
	"errors"

	"github.com/m04kA/GameNet-ReservationService/pkg/types"
)

var (
	// ErrSlotNotSelectable возвращается, когда выбранный стартовый слот
	// отсутствует в списке доступных
	ErrSlotNotSelectable = errors.New("domain: slot is not selectable")

	// ErrNoFurtherSlots возвращается, когда следующий смежный слот
	// недоступен или расписание закончилось
	ErrNoFurtherSlots = errors.New("domain: no further consecutive slots available")

	// ErrMinimumDuration возвращается при попытке сократить окно ниже одного слота
	ErrMinimumDuration = errors.New("domain: booking window must cover at least one slot")

	// ErrEmptyWindow возвращается при операциях над пустым окном
	ErrEmptyWindow = errors.New("domain: booking window is empty")
)

// BookingWindow накапливает непрерывное окно слотов, выбираемое клиентом
// перед подтверждением. Живет только в памяти, общего состояния не трогает
// и эксклюзивности не дает: доступность перепроверяется при коммите.
//
// Инвариант: слоты окна всегда смежны по времени, и каждый был доступен
// в момент добавления.
type BookingWindow struct {
	terminalID int64
	hourlyRate int64
	slots      []TimeSlot
}

// NewBookingWindow создает пустое окно для терминала с указанной ставкой
func NewBookingWindow(terminalID int64, hourlyRate int64) *BookingWindow {
	return &BookingWindow{
		terminalID: terminalID,
		hourlyRate: hourlyRate,
		slots:      make([]TimeSlot, 0),
	}
}

// SelectStart заменяет текущий выбор одним стартовым слотом
// Слот должен присутствовать в available со статусом available,
// иначе выбор не меняется
func (w *BookingWindow) SelectStart(available []SlotAssignment, slotID int64) error {
	for _, a := range available {
		if a.Slot.ID == slotID && a.IsAvailable() {
			w.slots = []TimeSlot{a.Slot}
			return nil
		}
	}
	return ErrSlotNotSelectable
}

// Extend добавляет в конец окна слот, начинающийся ровно в момент
// окончания последнего выбранного. Если такого слота нет среди доступных
// (конец дня или слот занят), выбор не меняется
func (w *BookingWindow) Extend(available []SlotAssignment) error {
	if len(w.slots) == 0 {
		return ErrEmptyWindow
	}

	last := w.slots[len(w.slots)-1]
	for _, a := range available {
		if !a.IsAvailable() {
			continue
		}
		if last.AdjacentTo(a.Slot) {
			w.slots = append(w.slots, a.Slot)
			return nil
		}
	}
	return ErrNoFurtherSlots
}

// Shrink убирает последний слот окна
// Окно не может стать короче одного слота: на одном слоте операция отклоняется
func (w *BookingWindow) Shrink() error {
	if len(w.slots) == 0 {
		return ErrEmptyWindow
	}
	if len(w.slots) <= MinWindowSlots {
		return ErrMinimumDuration
	}
	w.slots = w.slots[:len(w.slots)-1]
	return nil
}

// Price возвращает стоимость окна: количество слотов * ставка за час
func (w *BookingWindow) Price() int64 {
	return int64(len(w.slots)) * w.hourlyRate
}

// TimeRange возвращает границы окна (начало первого слота, конец последнего)
// ok == false для пустого окна
func (w *BookingWindow) TimeRange() (start, end types.TimeString, ok bool) {
	if len(w.slots) == 0 {
		return "", "", false
	}
	return w.slots[0].StartTime, w.slots[len(w.slots)-1].EndTime, true
}

// Slots возвращает копию выбранных слотов в хронологическом порядке
func (w *BookingWindow) Slots() []TimeSlot {
	out := make([]TimeSlot, len(w.slots))
	copy(out, w.slots)
	return out
}

// SlotIDs возвращает идентификаторы выбранных слотов в хронологическом порядке
func (w *BookingWindow) SlotIDs() []int64 {
	ids := make([]int64, len(w.slots))
	for i, s := range w.slots {
		ids[i] = s.ID
	}
	return ids
}

// Duration возвращает длительность окна в слотах (часах)
func (w *BookingWindow) Duration() int {
	return len(w.slots)
}

// TerminalID возвращает терминал, для которого собирается окно
func (w *BookingWindow) TerminalID() int64 {
	return w.terminalID
}

// HourlyRate возвращает ставку, зафиксированную при создании окна
func (w *BookingWindow) HourlyRate() int64 {
	return w.hourlyRate
}

// IsEmpty возвращает true, если ни один слот еще не выбран
func (w *BookingWindow) IsEmpty() bool {
	return len(w.slots) == 0
}
