package list_terminals

import (
	"github.com/m04kA/GameNet-ReservationService/internal/service/terminals/models"
)

// TerminalResponse HTTP модель терминала с текущим статусом
type TerminalResponse struct {
	ID            int64   `json:"id"`
	TableLocation string  `json:"tableLocation"`
	Brand         *string `json:"brand,omitempty"`
	CPU           *string `json:"cpu,omitempty"`
	GraphicsCard  *string `json:"graphicsCard,omitempty"`
	RAM           *string `json:"ram,omitempty"`
	Storage       *string `json:"storage,omitempty"`
	CurrentStatus string  `json:"currentStatus"`
}

// TerminalListResponse HTTP модель списка терминалов
type TerminalListResponse struct {
	Terminals []*TerminalResponse `json:"terminals"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.TerminalListResponse) *TerminalListResponse {
	terminals := make([]*TerminalResponse, len(resp.Terminals))
	for i, t := range resp.Terminals {
		terminals[i] = &TerminalResponse{
			ID:            t.ID,
			TableLocation: t.TableLocation,
			Brand:         t.Brand,
			CPU:           t.CPU,
			GraphicsCard:  t.GraphicsCard,
			RAM:           t.RAM,
			Storage:       t.Storage,
			CurrentStatus: t.CurrentStatus,
		}
	}
	return &TerminalListResponse{Terminals: terminals}
}
