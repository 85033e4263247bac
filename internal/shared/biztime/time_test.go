package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	MustInit("Europe/Rome")

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same business day despite different UTC dates",
			from: time.Date(2025, 6, 10, 22, 30, 0, 0, time.UTC), // 00:30 on the 11th in Rome
			to:   time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "across spring DST change",
			from: time.Date(2025, 3, 29, 12, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC),
			want: 2,
		},
		{
			name: "negative when target is earlier",
			from: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC),
			want: -5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.from, tt.to))
		})
	}
}

func TestParseDate(t *testing.T) {
	MustInit("Europe/Rome")

	d, err := ParseDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2025-02-28T23:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), d, "timestamp is read in the business timezone")

	for _, bad := range []string{"", "31/12/2025", "2025-02-30", "tomorrow"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestNextMidnightUTC(t *testing.T) {
	MustInit("Europe/Rome")

	now := time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC) // 22:00 in Rome
	assert.Equal(t, time.Date(2025, 6, 10, 22, 0, 0, 0, time.UTC), NextMidnightUTC(now))
}

func TestFormatDate(t *testing.T) {
	MustInit("Europe/Rome")
	assert.Equal(t, "2025-01-01", FormatDate(time.Date(2024, 12, 31, 23, 15, 0, 0, time.UTC)))
}
