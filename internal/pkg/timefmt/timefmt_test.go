package timefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHHMM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"04:00", 240, false},
		{"23:59", 1439, false},
		{"26:05", 1565, false}, // totals can exceed one day
		{"172:30", 10350, false},
		{"8:00", 0, true},  // hours must be zero-padded
		{"08:0", 0, true},  // minutes must be two digits
		{"08:60", 0, true}, // minute out of range
		{"0800", 0, true},
		{"", 0, true},
		{"-1:00", 0, true},
	}

	for _, tc := range tests {
		d, err := ParseHHMM(tc.input)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, d.Minutes(), "input %q", tc.input)
	}
}

func TestDurationString_HourCarry(t *testing.T) {
	t.Parallel()

	a, err := ParseHHMM("01:45")
	require.NoError(t, err)
	b, err := ParseHHMM("00:30")
	require.NoError(t, err)
	c, err := ParseHHMM("23:50")
	require.NoError(t, err)

	// Carries past 24 hours instead of wrapping.
	assert.Equal(t, "26:05", Sum(a, b, c).String())
}

func TestDurationComparison_IsNumeric(t *testing.T) {
	t.Parallel()

	// Lexicographically "09:05" < "100:00", numerically it is also smaller;
	// the interesting case is the other direction.
	long, err := ParseHHMM("100:00")
	require.NoError(t, err)
	short, err := ParseHHMM("99:59")
	require.NoError(t, err)
	assert.Greater(t, long.Minutes(), short.Minutes())
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	m, err := ParseClock("14:00")
	require.NoError(t, err)
	assert.Equal(t, 840, m)

	_, err = ParseClock("24:00")
	assert.Error(t, err)
	_, err = ParseClock("26:05")
	assert.Error(t, err)
}

func TestParseClockEnd(t *testing.T) {
	t.Parallel()

	m, err := ParseClockEnd("24:00")
	require.NoError(t, err)
	assert.Equal(t, MinutesPerDay, m)

	m, err = ParseClockEnd("14:00")
	require.NoError(t, err)
	assert.Equal(t, 840, m)

	// Only the exact boundary is special; anything past it is rejected.
	_, err = ParseClockEnd("24:01")
	assert.Error(t, err)
	_, err = ParseClockEnd("25:30")
	assert.Error(t, err)
}

func TestFormatClock(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "13:00", FormatClock(780))
	assert.Equal(t, "23:59", FormatClock(1439))
	assert.Equal(t, "24:00", FormatClock(MinutesPerDay))
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Clamp(-50, 0, 1380))
	assert.Equal(t, 1380, Clamp(2000, 0, 1380))
	assert.Equal(t, 700, Clamp(700, 0, 1380))
}

func TestFloorTo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 840, FloorTo(844, 5))
	assert.Equal(t, 840, FloorTo(840, 5))
	assert.Equal(t, 0, FloorTo(4, 5))
}

func TestSnap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 840, Snap(843, 15))
	assert.Equal(t, 855, Snap(848, 15))
	assert.Equal(t, 855, Snap(852, 15))
	assert.Equal(t, 840, Snap(840, 15))
}
