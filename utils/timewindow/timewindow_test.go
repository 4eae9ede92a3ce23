package timewindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func seoul(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	return loc
}

func TestStartOfDay_CrossesUTCDate(t *testing.T) {
	loc := seoul(t)
	// 2026-03-10 23:30 UTC is already 2026-03-11 08:30 in Seoul.
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)

	got := StartOfDay(now, loc)

	require.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, loc), got)
}

func TestStartOfWeek_MondayStart(t *testing.T) {
	loc := seoul(t)
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "midweek",
			now:  time.Date(2026, 3, 12, 15, 0, 0, 0, loc), // Thursday
			want: time.Date(2026, 3, 9, 0, 0, 0, 0, loc),
		},
		{
			name: "monday maps to itself",
			now:  time.Date(2026, 3, 9, 0, 0, 1, 0, loc),
			want: time.Date(2026, 3, 9, 0, 0, 0, 0, loc),
		},
		{
			name: "sunday belongs to prior monday",
			now:  time.Date(2026, 3, 15, 23, 59, 0, 0, loc),
			want: time.Date(2026, 3, 9, 0, 0, 0, 0, loc),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StartOfWeek(tt.now, loc))
		})
	}
}

func TestBounds(t *testing.T) {
	loc := seoul(t)
	now := time.Date(2026, 3, 12, 15, 30, 0, 0, loc)

	start, end := Bounds(ModeDay, 0, now, loc)
	require.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, loc), start)
	require.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, loc), end)

	start, end = Bounds(ModeWeek, 0, now, loc)
	require.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, loc), start)
	require.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, loc), end)

	start, end = Bounds(ModeRolling, 7, now, loc)
	require.True(t, end.Equal(now))
	require.Equal(t, now.AddDate(0, 0, -7), start)

	// days clamps to 1
	start, end = Bounds(ModeRolling, 0, now, loc)
	require.Equal(t, now.AddDate(0, 0, -1), start)
}

func TestParseMode(t *testing.T) {
	require.Equal(t, ModeWeek, ParseMode("week", ModeDay))
	require.Equal(t, ModeDay, ParseMode("bogus", ModeDay))
	require.Equal(t, ModeRolling, ParseMode("", ModeRolling))
}

func TestCivilDate(t *testing.T) {
	loc := seoul(t)
	// Late UTC evening is the next civil day in Seoul.
	now := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	require.Equal(t, "2026-03-11", CivilDate(now, loc))
}
