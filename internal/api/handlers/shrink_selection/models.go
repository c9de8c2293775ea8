package shrink_selection

import (
	"github.com/m04kA/GameNet-ReservationService/internal/service/selection/models"
)

// SlotViewResponse слот выбранного окна
type SlotViewResponse struct {
	SlotID    int64  `json:"slotId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// SelectionResponse HTTP модель текущего окна бронирования
type SelectionResponse struct {
	TerminalID    int64               `json:"terminalId"`
	Slots         []*SlotViewResponse `json:"slots"`
	StartTime     string              `json:"startTime"`
	EndTime       string              `json:"endTime"`
	DurationHours int                 `json:"durationHours"`
	HourlyRate    int64               `json:"hourlyRate"`
	TotalPrice    int64               `json:"totalPrice"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SelectionResponse) *SelectionResponse {
	slots := make([]*SlotViewResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = &SlotViewResponse{
			SlotID:    s.SlotID,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		}
	}
	return &SelectionResponse{
		TerminalID:    resp.TerminalID,
		Slots:         slots,
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		DurationHours: resp.DurationHours,
		HourlyRate:    resp.HourlyRate,
		TotalPrice:    resp.TotalPrice,
	}
}
