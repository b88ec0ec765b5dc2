package rule

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const week = 7 * 24 * time.Hour

// mondayStart is a Monday.
var mondayStart = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func TestWeekly_All_FirstIsDTStart(t *testing.T) {
	w := mustWeekly(t, Options{DTStart: mondayStart, TZ: "UTC"})

	first := take(w.All(), 1)
	require.Len(t, first, 1)
	assert.True(t, first[0].Equal(mondayStart))
}

func TestWeekly_All_ConsecutiveWeeks(t *testing.T) {
	w := mustWeekly(t, Options{DTStart: mondayStart, TZ: "UTC"})

	got := take(w.All(), 3)
	require.Len(t, got, 3)
	assert.True(t, got[1].Equal(mondayStart.Add(week)))
	assert.True(t, got[2].Equal(mondayStart.Add(2*week)))
}

func TestWeekly_All_Interval(t *testing.T) {
	w := mustWeekly(t, Options{DTStart: mondayStart, TZ: "UTC", Interval: 4})

	got := take(w.All(), 2)
	require.Len(t, got, 2)
	assert.Equal(t, 4*week, got[1].Sub(got[0]))
}

func TestWeekly_All_Count(t *testing.T) {
	w := mustWeekly(t, Options{DTStart: mondayStart, TZ: "UTC", End: Count(2)})
	assert.Len(t, collect(w.All()), 2)
}

func TestWeekly_All_Until(t *testing.T) {
	until := mondayStart.Add(3*week + 24*time.Hour)
	w := mustWeekly(t, Options{DTStart: mondayStart, TZ: "UTC", End: Until(until)})
	assert.Len(t, collect(w.All()), 4)
}

func TestWeekly_FallBackGap(t *testing.T) {
	// The week containing the 2019-11-03 US Eastern fall-back is one
	// hour longer in real time.
	ny := loadLocation(t, "America/New_York")
	start := time.Date(2019, 11, 2, 23, 0, 0, 0, ny)

	w := mustWeekly(t, Options{DTStart: start, TZ: "America/New_York"})

	got := take(w.All(), 2)
	require.Len(t, got, 2)
	assert.Equal(t, week+time.Hour, got[1].Sub(got[0]))
	assert.Equal(t, 23, got[1].In(ny).Hour(), "local time of day is preserved")
}

func TestWeekly_After(t *testing.T) {
	tests := []struct {
		name     string
		interval int
		min      time.Time
		want     time.Time
	}{
		{
			name: "before dtstart is a no-op",
			min:  mondayStart.Add(-40 * time.Hour),
			want: mondayStart,
		},
		{
			name: "right after dtstart moves one week",
			min:  mondayStart.Add(time.Minute),
			want: mondayStart.Add(week),
		},
		{
			name: "weeks after dtstart aligns to the next weekday match",
			min:  mondayStart.Add(2*week + 24*time.Hour),
			want: mondayStart.Add(3 * week),
		},
		{
			name: "weekday wraparound from Wednesday to Monday",
			min:  time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), // Wednesday
			want: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), // next Monday
		},
		{
			name: "same weekday later time of day pushes a full week",
			min:  time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC), // Monday 10:00
			want: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "same weekday earlier time of day keeps the day",
			min:  time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC), // Monday 08:00
			want: time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "lands on the interval grid",
			interval: 2,
			min:      time.Date(2024, 1, 8, 9, 30, 0, 0, time.UTC), // week 1, off-grid
			want:     time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), // week 2
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := mustWeekly(t, Options{DTStart: mondayStart, TZ: "UTC", Interval: tt.interval})
			got := take(w.After(tt.min), 1)
			require.Len(t, got, 1)
			assert.True(t, got[0].Equal(tt.want), "got %v, want %v", got[0], tt.want)
		})
	}
}

func TestWeekly_After_CountCharged(t *testing.T) {
	w := mustWeekly(t, Options{DTStart: mondayStart, TZ: "UTC", End: Count(4)})

	assert.Len(t, collect(w.All()), 4)

	// Twelve days in, two of the four weekly occurrences remain.
	got := collect(w.After(mondayStart.Add(12 * 24 * time.Hour)))
	want := []time.Time{
		mondayStart.Add(2 * week),
		mondayStart.Add(3 * week),
	}
	assert.Empty(t, cmp.Diff(want, got, timeCmp))
}

func TestWeekly_After_TooLate(t *testing.T) {
	w := mustWeekly(t, Options{DTStart: mondayStart, TZ: "UTC", End: Count(1)})
	assert.Empty(t, collect(w.After(mondayStart.Add(12*24*time.Hour))))
}

func TestWeekly_After_IntervalGridCount(t *testing.T) {
	// Occurrences: Jan 1, Jan 15, Jan 29.
	w := mustWeekly(t, Options{DTStart: mondayStart, TZ: "UTC", Interval: 2, End: Count(3)})

	got := collect(w.After(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)))
	want := []time.Time{
		time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 29, 9, 0, 0, 0, time.UTC),
	}
	assert.Empty(t, cmp.Diff(want, got, timeCmp))
}

func TestWeekly_After_MatchesAllFiltered(t *testing.T) {
	start := time.Date(2024, 2, 6, 18, 15, 0, 0, time.UTC) // Tuesday

	rules := map[string]*Weekly{
		"utc interval 1": mustWeekly(t, Options{DTStart: start, TZ: "UTC", End: Count(12)}),
		"ny interval 3":  mustWeekly(t, Options{DTStart: start, TZ: "America/New_York", Interval: 3, End: Count(8)}),
	}
	mins := []time.Time{
		start.Add(-week),
		start,
		start.Add(26 * time.Hour),
		start.Add(5*week + 3*24*time.Hour),
		start.Add(40 * week),
	}

	for name, w := range rules {
		t.Run(name, func(t *testing.T) {
			for _, min := range mins {
				var want []time.Time
				for _, v := range collect(w.All()) {
					if !v.Before(min) {
						want = append(want, v)
					}
				}
				got := collect(w.After(min))
				assert.Empty(t, cmp.Diff(want, got, timeCmp), "min=%v", min)
			}
		})
	}
}
