package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportivaid/arena-booking/internal/httperr"
)

func TestDayGrid(t *testing.T) {
	grid := DayGrid(7, 24)
	require.Len(t, grid, 17)
	assert.Equal(t, "07:00", grid[0])
	assert.Equal(t, "23:00", grid[len(grid)-1])
}

func TestDayGridInvalidHoursFallBackToDefault(t *testing.T) {
	assert.Equal(t, DayGrid(7, 24), DayGrid(-3, 2))
	assert.Equal(t, DayGrid(7, 24), DayGrid(10, 10))
}

func TestDayGridClampsCloseHour(t *testing.T) {
	grid := DayGrid(22, 30)
	assert.Equal(t, []string{"22:00", "23:00"}, grid)
}

func TestNormalizeSlots(t *testing.T) {
	slots, err := NormalizeSlots([]string{"19:00", "18:00", "19:00"})
	require.NoError(t, err)
	assert.Equal(t, []string{"18:00", "19:00"}, slots)
}

func TestNormalizeSlotsEmpty(t *testing.T) {
	_, err := NormalizeSlots(nil)
	require.Error(t, err)

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "empty_time_slots", code)
}

func TestNormalizeSlotsRejectsBadLabels(t *testing.T) {
	for _, bad := range []string{"18:30", "7:00", "24:00", "malam", ""} {
		_, err := NormalizeSlots([]string{bad})
		require.Error(t, err, bad)

		code, ok := httperr.BusinessCode(err)
		require.True(t, ok)
		assert.Equal(t, "invalid_time_slot", code)
	}
}

func TestHasOverlap(t *testing.T) {
	existing := []string{"18:00", "19:00"}

	assert.True(t, HasOverlap(existing, []string{"19:00", "20:00"}))
	assert.False(t, HasOverlap(existing, []string{"20:00", "21:00"}))
	assert.False(t, HasOverlap(existing, nil))
}

func TestUnion(t *testing.T) {
	got := Union(
		[]string{"19:00", "18:00"},
		[]string{"19:00", "21:00"},
	)
	assert.Equal(t, []string{"18:00", "19:00", "21:00"}, got)
}

func TestSubtract(t *testing.T) {
	grid := []string{"07:00", "08:00", "09:00"}
	free := Subtract(grid, []string{"08:00"})
	assert.Equal(t, []string{"07:00", "09:00"}, free)
}

func TestFilterByDayPart(t *testing.T) {
	slots := DayGrid(7, 24)

	assert.Equal(t,
		[]string{"15:00", "16:00", "17:00"},
		FilterByDayPart(slots, Afternoon),
	)
	assert.Equal(t,
		[]string{"18:00", "19:00", "20:00", "21:00", "22:00", "23:00"},
		FilterByDayPart(slots, Evening),
	)

	// Unknown preference leaves the input alone.
	assert.Equal(t, slots, FilterByDayPart(slots, DayPart("")))
	assert.Equal(t, slots, FilterByDayPart(slots, DayPart("midnight")))
}

func TestSlotHourAndLabel(t *testing.T) {
	assert.Equal(t, 18, SlotHour("18:00"))
	assert.Equal(t, 7, SlotHour("07:00"))
	assert.Equal(t, "09:00", SlotLabel(9))
}
