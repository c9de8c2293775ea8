package terminals

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GameNet-ReservationService/internal/domain"
	terminalRepo "github.com/m04kA/GameNet-ReservationService/internal/infra/storage/terminal"
	"github.com/m04kA/GameNet-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time { return c.at }

type fakeTerminalRepo struct {
	terminals []domain.TerminalWithStatus
	terminal  *domain.Terminal
	lastAt    types.TimeString
	err       error
}

func (f *fakeTerminalRepo) GetByID(_ context.Context, _ int64) (*domain.Terminal, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.terminal, nil
}

func (f *fakeTerminalRepo) ListWithCurrentStatus(_ context.Context, at types.TimeString) ([]domain.TerminalWithStatus, error) {
	f.lastAt = at
	return f.terminals, nil
}

type fakeScheduleRepo struct {
	assignments []domain.SlotAssignment
}

func (f *fakeScheduleRepo) GetAssignments(_ context.Context, _ int64) ([]domain.SlotAssignment, error) {
	return f.assignments, nil
}

func TestList_PassesWallClockTime(t *testing.T) {
	repo := &fakeTerminalRepo{
		terminals: []domain.TerminalWithStatus{
			{
				Terminal:      domain.Terminal{ID: 1, TableLocation: "12A"},
				CurrentStatus: domain.SlotBooked,
			},
			{
				Terminal:      domain.Terminal{ID: 2, TableLocation: "12B"},
				CurrentStatus: domain.SlotUnavailable,
			},
		},
	}
	clock := fixedClock{at: time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)}
	svc := NewService(repo, &fakeScheduleRepo{}, clock, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("14:30"), repo.lastAt)
	require.Len(t, resp.Terminals, 2)
	assert.Equal(t, "booked", resp.Terminals[0].CurrentStatus)
	assert.Equal(t, "unavailable", resp.Terminals[1].CurrentStatus)
}

func TestGetDaySchedule(t *testing.T) {
	repo := &fakeTerminalRepo{terminal: &domain.Terminal{ID: 1, TableLocation: "12A"}}
	schedule := &fakeScheduleRepo{
		assignments: []domain.SlotAssignment{
			{
				TerminalID: 1,
				Slot:       domain.TimeSlot{ID: 1, StartTime: "10:00", EndTime: "11:00"},
				Status:     domain.SlotAvailable,
			},
			{
				TerminalID: 1,
				Slot:       domain.TimeSlot{ID: 2, StartTime: "11:00", EndTime: "12:00"},
				Status:     domain.SlotBooked,
			},
		},
	}
	svc := NewService(repo, schedule, fixedClock{}, nopLogger{})

	resp, err := svc.GetDaySchedule(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.TerminalID)
	assert.Equal(t, "12A", resp.TableLocation)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "available", resp.Slots[0].Status)
	assert.Equal(t, "booked", resp.Slots[1].Status)
}

func TestGetDaySchedule_TerminalNotFound(t *testing.T) {
	repo := &fakeTerminalRepo{err: terminalRepo.ErrTerminalNotFound}
	svc := NewService(repo, &fakeScheduleRepo{}, fixedClock{}, nopLogger{})

	_, err := svc.GetDaySchedule(context.Background(), 42)
	require.ErrorIs(t, err, ErrTerminalNotFound)
}
