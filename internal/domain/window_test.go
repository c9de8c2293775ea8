package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GameNet-ReservationService/pkg/types"
)

func slot(id int64, start, end string) TimeSlot {
	return TimeSlot{
		ID:        id,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func assignment(id int64, start, end string, status SlotStatus) SlotAssignment {
	return SlotAssignment{
		TerminalID: 1,
		Slot:       slot(id, start, end),
		Status:     status,
	}
}

// Дневная сетка 10:00-14:00 со слотом 12:00 занятым
func testCatalog() []SlotAssignment {
	return []SlotAssignment{
		assignment(1, "10:00", "11:00", SlotAvailable),
		assignment(2, "11:00", "12:00", SlotAvailable),
		assignment(3, "12:00", "13:00", SlotBooked),
		assignment(4, "13:00", "14:00", SlotAvailable),
	}
}

func TestBookingWindow_SelectStart(t *testing.T) {
	tests := []struct {
		name    string
		slotID  int64
		wantErr error
	}{
		{
			name:   "available slot selected",
			slotID: 2,
		},
		{
			name:    "booked slot rejected",
			slotID:  3,
			wantErr: ErrSlotNotSelectable,
		},
		{
			name:    "unknown slot rejected",
			slotID:  99,
			wantErr: ErrSlotNotSelectable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewBookingWindow(1, 10000)
			err := w.SelectStart(testCatalog(), tt.slotID)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, w.IsEmpty())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, []int64{tt.slotID}, w.SlotIDs())
			assert.Equal(t, 1, w.Duration())
		})
	}
}

func TestBookingWindow_SelectStart_ReplacesPreviousSelection(t *testing.T) {
	w := NewBookingWindow(1, 10000)
	catalog := testCatalog()

	require.NoError(t, w.SelectStart(catalog, 1))
	require.NoError(t, w.Extend(catalog))
	require.Equal(t, []int64{1, 2}, w.SlotIDs())

	// Повторный выбор начинает окно заново
	require.NoError(t, w.SelectStart(catalog, 4))
	assert.Equal(t, []int64{4}, w.SlotIDs())
	assert.Equal(t, int64(10000), w.Price())
}

func TestBookingWindow_Extend(t *testing.T) {
	w := NewBookingWindow(1, 10000)
	catalog := testCatalog()

	require.NoError(t, w.SelectStart(catalog, 1))
	require.NoError(t, w.Extend(catalog))
	assert.Equal(t, []int64{1, 2}, w.SlotIDs())

	// Слот 12:00 занят: окно дальше не растет
	err := w.Extend(catalog)
	require.ErrorIs(t, err, ErrNoFurtherSlots)
	assert.Equal(t, []int64{1, 2}, w.SlotIDs())
}

func TestBookingWindow_Extend_EndOfDay(t *testing.T) {
	w := NewBookingWindow(1, 10000)
	catalog := testCatalog()

	require.NoError(t, w.SelectStart(catalog, 4))

	// После последнего слота дня продлить нечем
	err := w.Extend(catalog)
	require.ErrorIs(t, err, ErrNoFurtherSlots)
	assert.Equal(t, 1, w.Duration())
}

func TestBookingWindow_Extend_EmptyWindow(t *testing.T) {
	w := NewBookingWindow(1, 10000)

	err := w.Extend(testCatalog())
	require.ErrorIs(t, err, ErrEmptyWindow)
}

func TestBookingWindow_Shrink(t *testing.T) {
	w := NewBookingWindow(1, 10000)
	catalog := testCatalog()

	require.NoError(t, w.SelectStart(catalog, 1))
	require.NoError(t, w.Extend(catalog))
	require.Equal(t, 2, w.Duration())

	require.NoError(t, w.Shrink())
	assert.Equal(t, []int64{1}, w.SlotIDs())

	// Окно не может стать короче одного слота
	err := w.Shrink()
	require.ErrorIs(t, err, ErrMinimumDuration)
	assert.Equal(t, 1, w.Duration())
}

func TestBookingWindow_Price_RecomputedOnEveryMutation(t *testing.T) {
	w := NewBookingWindow(1, 10000)
	catalog := testCatalog()

	require.NoError(t, w.SelectStart(catalog, 1))
	assert.Equal(t, int64(10000), w.Price())

	require.NoError(t, w.Extend(catalog))
	assert.Equal(t, int64(20000), w.Price())

	require.NoError(t, w.Shrink())
	assert.Equal(t, int64(10000), w.Price())
}

func TestBookingWindow_TimeRange(t *testing.T) {
	w := NewBookingWindow(1, 10000)
	catalog := testCatalog()

	_, _, ok := w.TimeRange()
	assert.False(t, ok)

	require.NoError(t, w.SelectStart(catalog, 1))
	require.NoError(t, w.Extend(catalog))

	start, end, ok := w.TimeRange()
	require.True(t, ok)
	assert.Equal(t, types.TimeString("10:00"), start)
	assert.Equal(t, types.TimeString("12:00"), end)
}

func TestTimeSlot_AdjacentTo(t *testing.T) {
	first := slot(1, "10:00", "11:00")

	assert.True(t, first.AdjacentTo(slot(2, "11:00", "12:00")))
	assert.False(t, first.AdjacentTo(slot(3, "12:00", "13:00")))
	assert.False(t, first.AdjacentTo(slot(4, "09:00", "10:00")))
}
