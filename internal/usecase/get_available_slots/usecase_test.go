package get_available_slots

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GameNet-ReservationService/internal/domain"
	terminalRepo "github.com/m04kA/GameNet-ReservationService/internal/infra/storage/terminal"
	"github.com/m04kA/GameNet-ReservationService/pkg/ptr"
	"github.com/m04kA/GameNet-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeScheduleRepo struct {
	assignments []domain.SlotAssignment
	err         error
	calls       int
}

func (f *fakeScheduleRepo) GetAssignments(_ context.Context, _ int64) ([]domain.SlotAssignment, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.assignments, nil
}

type fakeTerminalRepo struct {
	terminal *domain.Terminal
	err      error
}

func (f *fakeTerminalRepo) GetByID(_ context.Context, _ int64) (*domain.Terminal, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.terminal, nil
}

func slotAssignment(id int64, start, end string, status domain.SlotStatus) domain.SlotAssignment {
	return domain.SlotAssignment{
		TerminalID: 1,
		Slot: domain.TimeSlot{
			ID:        id,
			StartTime: types.TimeString(start),
			EndTime:   types.TimeString(end),
		},
		Status: status,
	}
}

func testTerminal() *domain.Terminal {
	return &domain.Terminal{
		ID:            1,
		TableLocation: "12A",
		Spec: domain.TerminalSpec{
			Brand:   ptr.Ptr("MSI"),
			CPU:     ptr.Ptr("Ryzen 7 7700"),
			RAM:     ptr.Ptr("32GB"),
			Storage: ptr.Ptr("1TB NVMe"),
		},
	}
}

func TestExecute_FiltersUnavailableSlots(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{
		assignments: []domain.SlotAssignment{
			slotAssignment(1, "10:00", "11:00", domain.SlotAvailable),
			slotAssignment(2, "11:00", "12:00", domain.SlotBooked),
			slotAssignment(3, "12:00", "13:00", domain.SlotUnavailable),
			slotAssignment(4, "13:00", "14:00", domain.SlotAvailable),
		},
	}
	uc := NewUseCase(scheduleRepo, &fakeTerminalRepo{terminal: testTerminal()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{TerminalID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.TerminalID)
	assert.Equal(t, "12A", resp.TableLocation)
	require.NotNil(t, resp.Brand)
	assert.Equal(t, "MSI", *resp.Brand)
	require.NotNil(t, resp.Storage)
	assert.Equal(t, "1TB NVMe", *resp.Storage)

	// Остаются только available, в порядке времени начала
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, int64(1), resp.Slots[0].SlotID)
	assert.Equal(t, int64(4), resp.Slots[1].SlotID)
	assert.Equal(t, types.TimeString("13:00"), resp.Slots[1].StartTime)
}

func TestExecute_EmptyCatalog(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, &fakeTerminalRepo{terminal: testTerminal()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{TerminalID: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_RereadsCatalogEveryCall(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{
		assignments: []domain.SlotAssignment{
			slotAssignment(1, "10:00", "11:00", domain.SlotAvailable),
		},
	}
	uc := NewUseCase(scheduleRepo, &fakeTerminalRepo{terminal: testTerminal()}, nopLogger{})

	for i := 0; i < 3; i++ {
		_, err := uc.Execute(context.Background(), &Request{TerminalID: 1})
		require.NoError(t, err)
	}

	// Витрина никогда не кешируется
	assert.Equal(t, 3, scheduleRepo.calls)
}

func TestExecute_TerminalNotFound(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, &fakeTerminalRepo{err: terminalRepo.ErrTerminalNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TerminalID: 42})
	require.ErrorIs(t, err, ErrTerminalNotFound)
}

func TestExecute_InvalidTerminalID(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, &fakeTerminalRepo{terminal: testTerminal()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TerminalID: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ScheduleError(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{err: errors.New("connection refused")}
	uc := NewUseCase(scheduleRepo, &fakeTerminalRepo{terminal: testTerminal()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TerminalID: 1})
	require.ErrorIs(t, err, ErrInternal)
}
