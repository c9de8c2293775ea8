package models

import (
	"github.com/m04kA/GameNet-ReservationService/internal/domain"
	"github.com/m04kA/GameNet-ReservationService/pkg/types"
)

// SlotView слот выбранного окна
type SlotView struct {
	SlotID    int64
	StartTime types.TimeString
	EndTime   types.TimeString
}

// SelectionResponse текущее состояние окна бронирования клиента
type SelectionResponse struct {
	TerminalID    int64
	Slots         []SlotView
	SlotIDs       []int64
	StartTime     types.TimeString // Начало окна
	EndTime       types.TimeString // Конец окна
	DurationHours int
	HourlyRate    int64
	TotalPrice    int64 // DurationHours * HourlyRate, пересчитывается на каждую мутацию
}

// FromWindow собирает ответ из состояния окна
func FromWindow(w *domain.BookingWindow) *SelectionResponse {
	slots := w.Slots()
	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{
			SlotID:    s.ID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		}
	}

	start, end, _ := w.TimeRange()

	return &SelectionResponse{
		TerminalID:    w.TerminalID(),
		Slots:         views,
		SlotIDs:       w.SlotIDs(),
		StartTime:     start,
		EndTime:       end,
		DurationHours: w.Duration(),
		HourlyRate:    w.HourlyRate(),
		TotalPrice:    w.Price(),
	}
}
