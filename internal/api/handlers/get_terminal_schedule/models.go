package get_terminal_schedule

import (
	"github.com/m04kA/GameNet-ReservationService/internal/service/terminals/models"
)

// ScheduleSlotResponse HTTP модель слота дневного расписания
type ScheduleSlotResponse struct {
	SlotID    int64  `json:"slotId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// DayScheduleResponse HTTP модель дневного расписания терминала
type DayScheduleResponse struct {
	TerminalID    int64                   `json:"terminalId"`
	TableLocation string                  `json:"tableLocation"`
	Slots         []*ScheduleSlotResponse `json:"slots"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.DayScheduleResponse) *DayScheduleResponse {
	slots := make([]*ScheduleSlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = &ScheduleSlotResponse{
			SlotID:    s.SlotID,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Status:    s.Status,
		}
	}
	return &DayScheduleResponse{
		TerminalID:    resp.TerminalID,
		TableLocation: resp.TableLocation,
		Slots:         slots,
	}
}
