package models

import (
	"github.com/m04kA/GameNet-ReservationService/internal/domain"
	"github.com/m04kA/GameNet-ReservationService/pkg/types"
)

// TerminalResponse модель терминала с текущим статусом
type TerminalResponse struct {
	ID            int64
	TableLocation string
	Brand         *string
	CPU           *string
	GraphicsCard  *string
	RAM           *string
	Storage       *string
	CurrentStatus string
}

// TerminalListResponse список терминалов зала
type TerminalListResponse struct {
	Terminals []*TerminalResponse
}

// ScheduleSlot строка дневного расписания терминала
type ScheduleSlot struct {
	SlotID    int64
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    string
}

// DayScheduleResponse полное дневное расписание терминала
type DayScheduleResponse struct {
	TerminalID    int64
	TableLocation string
	Slots         []*ScheduleSlot
}

// FromDomainTerminalWithStatus конвертирует терминал со статусом в ответ сервиса
func FromDomainTerminalWithStatus(t *domain.TerminalWithStatus) *TerminalResponse {
	return &TerminalResponse{
		ID:            t.Terminal.ID,
		TableLocation: t.Terminal.TableLocation,
		Brand:         t.Terminal.Spec.Brand,
		CPU:           t.Terminal.Spec.CPU,
		GraphicsCard:  t.Terminal.Spec.GraphicsCard,
		RAM:           t.Terminal.Spec.RAM,
		Storage:       t.Terminal.Spec.Storage,
		CurrentStatus: string(t.CurrentStatus),
	}
}

// FromDomainTerminalList конвертирует список терминалов
func FromDomainTerminalList(terminals []domain.TerminalWithStatus) *TerminalListResponse {
	out := make([]*TerminalResponse, len(terminals))
	for i := range terminals {
		out[i] = FromDomainTerminalWithStatus(&terminals[i])
	}
	return &TerminalListResponse{Terminals: out}
}

// FromDomainAssignments собирает дневное расписание из назначений каталога
func FromDomainAssignments(terminal *domain.Terminal, assignments []domain.SlotAssignment) *DayScheduleResponse {
	slots := make([]*ScheduleSlot, len(assignments))
	for i, a := range assignments {
		slots[i] = &ScheduleSlot{
			SlotID:    a.Slot.ID,
			StartTime: a.Slot.StartTime,
			EndTime:   a.Slot.EndTime,
			Status:    string(a.Status),
		}
	}
	return &DayScheduleResponse{
		TerminalID:    terminal.ID,
		TableLocation: terminal.TableLocation,
		Slots:         slots,
	}
}
