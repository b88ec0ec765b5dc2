package rule

import (
	"iter"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// timeCmp lets go-cmp compare time.Time by instant.
var timeCmp = cmp.Comparer(time.Time.Equal)

func take(seq iter.Seq[time.Time], n int) []time.Time {
	out := make([]time.Time, 0, n)
	for t := range seq {
		out = append(out, t)
		if len(out) == n {
			break
		}
	}
	return out
}

func collect(seq iter.Seq[time.Time]) []time.Time {
	var out []time.Time
	for t := range seq {
		out = append(out, t)
	}
	return out
}

func loadLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func mustDaily(t *testing.T, opts Options) *Daily {
	t.Helper()
	d, err := NewDaily(opts)
	require.NoError(t, err)
	return d
}

func mustWeekly(t *testing.T, opts Options) *Weekly {
	t.Helper()
	w, err := NewWeekly(opts)
	require.NoError(t, err)
	return w
}
