package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/GameNet-ReservationService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель доступного слота
type SlotResponse struct {
	SlotID    int64  `json:"slotId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailableSlotsResponse HTTP модель ответа со слотами терминала
type AvailableSlotsResponse struct {
	TerminalID    int64           `json:"terminalId"`
	TableLocation string          `json:"tableLocation"`
	Brand         *string         `json:"brand,omitempty"`
	CPU           *string         `json:"cpu,omitempty"`
	GraphicsCard  *string         `json:"graphicsCard,omitempty"`
	RAM           *string         `json:"ram,omitempty"`
	Storage       *string         `json:"storage,omitempty"`
	Slots         []*SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]*SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = &SlotResponse{
			SlotID:    s.SlotID,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		}
	}
	return &AvailableSlotsResponse{
		TerminalID:    resp.TerminalID,
		TableLocation: resp.TableLocation,
		Brand:         resp.Brand,
		CPU:           resp.CPU,
		GraphicsCard:  resp.GraphicsCard,
		RAM:           resp.RAM,
		Storage:       resp.Storage,
		Slots:         slots,
	}
}
