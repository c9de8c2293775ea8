package selection

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
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

type fakeScheduleRepo struct {
	assignments []domain.SlotAssignment
}

func (f *fakeScheduleRepo) GetAssignments(_ context.Context, _ int64) ([]domain.SlotAssignment, error) {
	return f.assignments, nil
}

type fakeTerminalRepo struct {
	err error
}

func (f *fakeTerminalRepo) GetByID(_ context.Context, id int64) (*domain.Terminal, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Terminal{ID: id, TableLocation: "12A"}, nil
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

func newTestService(schedule *fakeScheduleRepo) *Service {
	return NewService(schedule, &fakeTerminalRepo{}, 10000, nopLogger{})
}

func fullyAvailableGrid() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		assignments: []domain.SlotAssignment{
			slotAssignment(1, "10:00", "11:00", domain.SlotAvailable),
			slotAssignment(2, "11:00", "12:00", domain.SlotAvailable),
			slotAssignment(3, "12:00", "13:00", domain.SlotAvailable),
		},
	}
}

func TestStart(t *testing.T) {
	svc := newTestService(fullyAvailableGrid())
	customerID := uuid.New()

	resp, err := svc.Start(context.Background(), customerID, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.TerminalID)
	assert.Equal(t, []int64{2}, resp.SlotIDs)
	assert.Equal(t, 1, resp.DurationHours)
	assert.Equal(t, int64(10000), resp.TotalPrice)
	assert.Equal(t, "11:00", resp.StartTime.String())
	assert.Equal(t, "12:00", resp.EndTime.String())
}

func TestStart_BookedSlotRejected(t *testing.T) {
	schedule := &fakeScheduleRepo{
		assignments: []domain.SlotAssignment{
			slotAssignment(1, "10:00", "11:00", domain.SlotBooked),
		},
	}
	svc := newTestService(schedule)

	_, err := svc.Start(context.Background(), uuid.New(), 1, 1)
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	// Неудавшийся старт не оставляет выбора
	_, err = svc.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNoSelection)
}

func TestStart_TerminalNotFound(t *testing.T) {
	svc := NewService(fullyAvailableGrid(), &fakeTerminalRepo{err: terminalRepo.ErrTerminalNotFound}, 10000, nopLogger{})

	_, err := svc.Start(context.Background(), uuid.New(), 42, 1)
	require.ErrorIs(t, err, ErrTerminalNotFound)
}

func TestExtendShrinkFlow(t *testing.T) {
	svc := newTestService(fullyAvailableGrid())
	customerID := uuid.New()

	_, err := svc.Start(context.Background(), customerID, 1, 1)
	require.NoError(t, err)

	resp, err := svc.Extend(context.Background(), customerID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, resp.SlotIDs)
	assert.Equal(t, int64(20000), resp.TotalPrice)

	resp, err = svc.Extend(context.Background(), customerID)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.DurationHours)
	assert.Equal(t, int64(30000), resp.TotalPrice)

	// Конец сетки
	_, err = svc.Extend(context.Background(), customerID)
	require.ErrorIs(t, err, ErrNoFurtherSlots)

	resp, err = svc.Shrink(context.Background(), customerID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, resp.SlotIDs)
	assert.Equal(t, int64(20000), resp.TotalPrice)
}

func TestExtend_SlotTakenAfterStart(t *testing.T) {
	schedule := fullyAvailableGrid()
	svc := newTestService(schedule)
	customerID := uuid.New()

	_, err := svc.Start(context.Background(), customerID, 1, 1)
	require.NoError(t, err)

	// Слот 11:00 занимают между вызовами
	schedule.assignments[1].Status = domain.SlotBooked

	_, err = svc.Extend(context.Background(), customerID)
	require.ErrorIs(t, err, ErrNoFurtherSlots)
}

func TestShrink_MinimumDuration(t *testing.T) {
	svc := newTestService(fullyAvailableGrid())
	customerID := uuid.New()

	_, err := svc.Start(context.Background(), customerID, 1, 1)
	require.NoError(t, err)

	_, err = svc.Shrink(context.Background(), customerID)
	require.ErrorIs(t, err, ErrMinimumDuration)
}

func TestStart_ReplacesPreviousSelection(t *testing.T) {
	svc := newTestService(fullyAvailableGrid())
	customerID := uuid.New()

	_, err := svc.Start(context.Background(), customerID, 1, 1)
	require.NoError(t, err)
	_, err = svc.Extend(context.Background(), customerID)
	require.NoError(t, err)

	resp, err := svc.Start(context.Background(), customerID, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, resp.SlotIDs)
}

func TestClear(t *testing.T) {
	svc := newTestService(fullyAvailableGrid())
	customerID := uuid.New()

	_, err := svc.Start(context.Background(), customerID, 1, 1)
	require.NoError(t, err)

	svc.Clear(context.Background(), customerID)

	_, err = svc.Get(context.Background(), customerID)
	require.ErrorIs(t, err, ErrNoSelection)

	// Повторный сброс безвреден
	svc.Clear(context.Background(), customerID)
}

func TestSelectionsAreIsolatedPerCustomer(t *testing.T) {
	svc := newTestService(fullyAvailableGrid())
	first := uuid.New()
	second := uuid.New()

	_, err := svc.Start(context.Background(), first, 1, 1)
	require.NoError(t, err)
	_, err = svc.Start(context.Background(), second, 1, 2)
	require.NoError(t, err)

	respFirst, err := svc.Get(context.Background(), first)
	require.NoError(t, err)
	respSecond, err := svc.Get(context.Background(), second)
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, respFirst.SlotIDs)
	assert.Equal(t, []int64{2}, respSecond.SlotIDs)
}

// Двойной клик по "продлить": параллельные запросы одного клиента
// выполняются по очереди и не рвут окно (проверяется под -race)
func TestConcurrentExtendsAreSerialized(t *testing.T) {
	assignments := make([]domain.SlotAssignment, 0, 12)
	for i := 0; i < 12; i++ {
		start := types.TimeString(fmt.Sprintf("%02d:00", 10+i))
		end := types.TimeString(fmt.Sprintf("%02d:00", 11+i))
		assignments = append(assignments, slotAssignment(int64(i+1), string(start), string(end), domain.SlotAvailable))
	}
	svc := newTestService(&fakeScheduleRepo{assignments: assignments})
	customerID := uuid.New()

	_, err := svc.Start(context.Background(), customerID, 1, 1)
	require.NoError(t, err)

	const workers = 8
	var wg sync.WaitGroup
	var extended int64
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Extend(context.Background(), customerID); err == nil {
				atomic.AddInt64(&extended, 1)
			}
		}()
	}
	wg.Wait()

	resp, err := svc.Get(context.Background(), customerID)
	require.NoError(t, err)

	// Каждое успешное продление добавило ровно один слот
	assert.Equal(t, int(extended)+1, resp.DurationHours)
	assert.Len(t, resp.SlotIDs, int(extended)+1)
	for i, slotID := range resp.SlotIDs {
		assert.Equal(t, int64(i+1), slotID)
	}
	assert.Equal(t, int64(resp.DurationHours)*10000, resp.TotalPrice)
}
