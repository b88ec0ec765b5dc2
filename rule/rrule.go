package rule

import (
	"iter"
	"time"

	"github.com/samber/mo"
)

// freq tags the RRule union.
type freq int

const (
	freqDaily freq = iota
	freqWeekly
)

// RRule is a closed union over the supported frequencies, so that
// heterogeneous rules share one stream type. Construct it with
// DailyRule or WeeklyRule; the zero value is not usable.
type RRule struct {
	freq   freq
	daily  *Daily
	weekly *Weekly
}

// DailyRule wraps d.
func DailyRule(d *Daily) RRule { return RRule{freq: freqDaily, daily: d} }

// WeeklyRule wraps w.
func WeeklyRule(w *Weekly) RRule { return RRule{freq: freqWeekly, weekly: w} }

// ID returns the wrapped rule's identifier.
func (r RRule) ID() string {
	switch r.freq {
	case freqWeekly:
		return r.weekly.ID()
	default:
		return r.daily.ID()
	}
}

// All streams every occurrence of the wrapped rule.
func (r RRule) All() iter.Seq[time.Time] {
	switch r.freq {
	case freqWeekly:
		return r.weekly.All()
	default:
		return r.daily.All()
	}
}

// After streams the wrapped rule's occurrences at or after min.
func (r RRule) After(min time.Time) iter.Seq[time.Time] {
	switch r.freq {
	case freqWeekly:
		return r.weekly.After(min)
	default:
		return r.daily.After(min)
	}
}

// NextAfter returns the first occurrence at or after min, if any.
func (r RRule) NextAfter(min time.Time) mo.Option[time.Time] {
	for t := range r.After(min) {
		return mo.Some(t)
	}
	return mo.None[time.Time]()
}
