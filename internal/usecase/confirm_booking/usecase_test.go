package confirm_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GameNet-ReservationService/internal/domain"
	scheduleRepo "github.com/m04kA/GameNet-ReservationService/internal/infra/storage/schedule"
	terminalRepo "github.com/m04kA/GameNet-ReservationService/internal/infra/storage/terminal"
	"github.com/m04kA/GameNet-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// casCall одна операция compare-and-set над каталогом
type casCall struct {
	slotID   int64
	expected domain.SlotStatus
	next     domain.SlotStatus
}

type fakeCatalog struct {
	assignments []domain.SlotAssignment
	// casErr подставляет ошибку для конкретного слота при захвате
	casErr map[int64]error
	calls  []casCall
}

func (f *fakeCatalog) GetAssignments(_ context.Context, _ int64) ([]domain.SlotAssignment, error) {
	return f.assignments, nil
}

func (f *fakeCatalog) CompareAndSetStatus(_ context.Context, _ int64, slotID int64, expected, next domain.SlotStatus) error {
	f.calls = append(f.calls, casCall{slotID: slotID, expected: expected, next: next})
	if expected == domain.SlotAvailable {
		if err, ok := f.casErr[slotID]; ok {
			return err
		}
	}
	return nil
}

type fakeBookingRepo struct {
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.created = b
	return b, nil
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

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	err  error
	keys []string
}

func (f *fakePublisher) Publish(_ context.Context, key string, _ interface{}) error {
	f.keys = append(f.keys, key)
	return f.err
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

func testAssignments() []domain.SlotAssignment {
	return []domain.SlotAssignment{
		slotAssignment(1, "10:00", "11:00", domain.SlotAvailable),
		slotAssignment(2, "11:00", "12:00", domain.SlotAvailable),
		slotAssignment(3, "12:00", "13:00", domain.SlotAvailable),
		slotAssignment(4, "14:00", "15:00", domain.SlotAvailable),
	}
}

func validRequest(slotIDs ...int64) *Request {
	return &Request{
		CustomerID: uuid.New(),
		TerminalID: 1,
		SlotIDs:    slotIDs,
		HourlyRate: 10000,
	}
}

func newTestUseCase(catalog *fakeCatalog, bookingRepo *fakeBookingRepo, terminals *fakeTerminalRepo, publisher *fakePublisher) *UseCase {
	return NewUseCase(catalog, bookingRepo, terminals, fakeTxManager{}, publisher, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	catalog := &fakeCatalog{assignments: testAssignments()}
	bookingRepo := &fakeBookingRepo{}
	publisher := &fakePublisher{}
	uc := newTestUseCase(catalog, bookingRepo, &fakeTerminalRepo{}, publisher)

	req := validRequest(1, 2, 3)
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, req.CustomerID, resp.CustomerID)
	assert.Equal(t, []int64{1, 2, 3}, resp.SlotIDs)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("13:00"), resp.EndTime)
	assert.Equal(t, 3, resp.DurationHours)
	assert.Equal(t, int64(30000), resp.TotalCost)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	// Каждый слот окна захвачен ровно одним CAS available -> booked
	require.Len(t, catalog.calls, 3)
	for i, call := range catalog.calls {
		assert.Equal(t, int64(i+1), call.slotID)
		assert.Equal(t, domain.SlotAvailable, call.expected)
		assert.Equal(t, domain.SlotBooked, call.next)
	}

	require.NotNil(t, bookingRepo.created)
	assert.Equal(t, []string{"booking.created", "terminal.schedule_updated"}, publisher.keys)
}

func TestExecute_ConflictRollsBackClaimedSlots(t *testing.T) {
	// Слот 2 уводят между чтением витрины и коммитом
	catalog := &fakeCatalog{
		assignments: testAssignments(),
		casErr:      map[int64]error{2: scheduleRepo.ErrStatusConflict},
	}
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(catalog, bookingRepo, &fakeTerminalRepo{}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), validRequest(1, 2, 3))
	require.ErrorIs(t, err, ErrSlotConflict)

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []int64{2}, conflict.SlotIDs)

	// Захват слота 1, неудача на слоте 2, откат слота 1
	require.Len(t, catalog.calls, 3)
	assert.Equal(t, casCall{slotID: 1, expected: domain.SlotAvailable, next: domain.SlotBooked}, catalog.calls[0])
	assert.Equal(t, casCall{slotID: 2, expected: domain.SlotAvailable, next: domain.SlotBooked}, catalog.calls[1])
	assert.Equal(t, casCall{slotID: 1, expected: domain.SlotBooked, next: domain.SlotAvailable}, catalog.calls[2])

	// Бронирование не создано
	assert.Nil(t, bookingRepo.created)
}

func TestExecute_ConflictOnFirstSlot(t *testing.T) {
	catalog := &fakeCatalog{
		assignments: testAssignments(),
		casErr:      map[int64]error{1: scheduleRepo.ErrStatusConflict},
	}
	uc := newTestUseCase(catalog, &fakeBookingRepo{}, &fakeTerminalRepo{}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), validRequest(1, 2))
	require.ErrorIs(t, err, ErrSlotConflict)

	// Откатывать нечего: единственный CAS - неудавшийся захват
	require.Len(t, catalog.calls, 1)
}

func TestExecute_NotContiguous(t *testing.T) {
	catalog := &fakeCatalog{assignments: testAssignments()}
	uc := newTestUseCase(catalog, &fakeBookingRepo{}, &fakeTerminalRepo{}, &fakePublisher{})

	// Между 13:00 и 14:00 разрыв
	_, err := uc.Execute(context.Background(), validRequest(3, 4))
	require.ErrorIs(t, err, ErrNotContiguous)

	// До захвата дело не дошло
	assert.Empty(t, catalog.calls)
}

func TestExecute_SlotNotInCatalog(t *testing.T) {
	catalog := &fakeCatalog{assignments: testAssignments()}
	uc := newTestUseCase(catalog, &fakeBookingRepo{}, &fakeTerminalRepo{}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), validRequest(1, 99))
	require.ErrorIs(t, err, ErrSlotNotInCatalog)
	assert.Empty(t, catalog.calls)
}

func TestExecute_AssignmentDisappearedDuringClaim(t *testing.T) {
	catalog := &fakeCatalog{
		assignments: testAssignments(),
		casErr:      map[int64]error{2: scheduleRepo.ErrAssignmentNotFound},
	}
	uc := newTestUseCase(catalog, &fakeBookingRepo{}, &fakeTerminalRepo{}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), validRequest(1, 2))
	require.ErrorIs(t, err, ErrSlotNotInCatalog)

	// Захваченный слот 1 возвращен
	require.Len(t, catalog.calls, 3)
	assert.Equal(t, casCall{slotID: 1, expected: domain.SlotBooked, next: domain.SlotAvailable}, catalog.calls[2])
}

func TestExecute_CreateFailureReleasesSlots(t *testing.T) {
	catalog := &fakeCatalog{assignments: testAssignments()}
	bookingRepo := &fakeBookingRepo{createErr: errors.New("db is down")}
	uc := newTestUseCase(catalog, bookingRepo, &fakeTerminalRepo{}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), validRequest(1, 2))
	require.ErrorIs(t, err, ErrInternal)

	// Два захвата и два отката
	require.Len(t, catalog.calls, 4)
	assert.Equal(t, casCall{slotID: 1, expected: domain.SlotBooked, next: domain.SlotAvailable}, catalog.calls[2])
	assert.Equal(t, casCall{slotID: 2, expected: domain.SlotBooked, next: domain.SlotAvailable}, catalog.calls[3])
}

// cancellingCatalog уважает отмену контекста и обрывает запрос
// сразу после первого успешного захвата
type cancellingCatalog struct {
	statuses map[int64]domain.SlotStatus
	cancel   context.CancelFunc
}

func (f *cancellingCatalog) GetAssignments(_ context.Context, _ int64) ([]domain.SlotAssignment, error) {
	return testAssignments(), nil
}

func (f *cancellingCatalog) CompareAndSetStatus(ctx context.Context, _ int64, slotID int64, expected, next domain.SlotStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.statuses[slotID] != expected {
		return scheduleRepo.ErrStatusConflict
	}
	f.statuses[slotID] = next
	if expected == domain.SlotAvailable && f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	return nil
}

func TestExecute_ClientDisconnectDuringClaimReleasesSlots(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalog := &cancellingCatalog{
		statuses: map[int64]domain.SlotStatus{
			1: domain.SlotAvailable,
			2: domain.SlotAvailable,
			3: domain.SlotAvailable,
		},
		cancel: cancel,
	}
	bookingRepo := &fakeBookingRepo{}
	uc := NewUseCase(catalog, bookingRepo, &fakeTerminalRepo{}, fakeTxManager{}, &fakePublisher{}, nopLogger{})

	_, err := uc.Execute(ctx, validRequest(1, 2, 3))
	require.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, bookingRepo.created)

	// Захваченный слот откатился, хотя контекст запроса уже отменен:
	// booked-слотов без бронирования после неудачного коммита не остается
	assert.Equal(t, domain.SlotAvailable, catalog.statuses[1])
	assert.Equal(t, domain.SlotAvailable, catalog.statuses[2])
	assert.Equal(t, domain.SlotAvailable, catalog.statuses[3])
}

func TestExecute_TerminalNotFound(t *testing.T) {
	catalog := &fakeCatalog{assignments: testAssignments()}
	uc := newTestUseCase(catalog, &fakeBookingRepo{}, &fakeTerminalRepo{err: terminalRepo.ErrTerminalNotFound}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), validRequest(1))
	require.ErrorIs(t, err, ErrTerminalNotFound)
}

func TestExecute_PublisherFailureDoesNotFailBooking(t *testing.T) {
	catalog := &fakeCatalog{assignments: testAssignments()}
	publisher := &fakePublisher{err: errors.New("broker unavailable")}
	uc := newTestUseCase(catalog, &fakeBookingRepo{}, &fakeTerminalRepo{}, publisher)

	resp, err := uc.Execute(context.Background(), validRequest(1))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "empty selection",
			req:     &Request{CustomerID: uuid.New(), TerminalID: 1, HourlyRate: 10000},
			wantErr: ErrEmptySelection,
		},
		{
			name:    "missing customer",
			req:     &Request{TerminalID: 1, SlotIDs: []int64{1}, HourlyRate: 10000},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duplicate slots",
			req:     &Request{CustomerID: uuid.New(), TerminalID: 1, SlotIDs: []int64{1, 1}, HourlyRate: 10000},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "non-positive rate",
			req:     &Request{CustomerID: uuid.New(), TerminalID: 1, SlotIDs: []int64{1}},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &fakeCatalog{assignments: testAssignments()}
			uc := newTestUseCase(catalog, &fakeBookingRepo{}, &fakeTerminalRepo{}, &fakePublisher{})

			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, catalog.calls)
		})
	}
}
