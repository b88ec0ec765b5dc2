package rule

import (
	"iter"
	"time"

	"github.com/cyp0633/librecur/internal/civil"
)

const daysPerWeek = 7

// Weekly repeats every Interval weeks on DTStart's weekday at its
// wall-clock time.
type Weekly struct {
	cfg config
}

// NewWeekly builds a Weekly rule from opts. It fails only when the
// zone cannot be resolved or the interval is negative.
func NewWeekly(opts Options) (*Weekly, error) {
	cfg, err := opts.build("weekly")
	if err != nil {
		return nil, err
	}
	return &Weekly{cfg: cfg}, nil
}

// ID returns the rule's identifier.
func (w *Weekly) ID() string { return w.cfg.id }

// All streams every occurrence from DTStart.
func (w *Weekly) All() iter.Seq[time.Time] {
	return stepper{cursor: w.cfg.dtstart, days: w.cfg.interval * daysPerWeek, end: w.cfg.end}.seq()
}

// After streams the occurrences at or after min, without stepping
// through the skipped ones. A Count policy is charged for the skipped
// occurrences, saturating at zero.
func (w *Weekly) After(min time.Time) iter.Seq[time.Time] {
	cursor, skipped := w.seek(min.In(w.cfg.loc))
	return stepper{cursor: cursor, days: w.cfg.interval * daysPerWeek, end: w.cfg.end.reduced(skipped)}.seq()
}

// seek returns the first weekday-aligned, on-grid cursor at or after
// min and the number of occurrences skipped to reach it. min must
// already be in the rule's zone.
func (w *Weekly) seek(min time.Time) (time.Time, int) {
	start := w.cfg.dtstart
	if !min.After(start) {
		return start, 0
	}

	diff := civil.WeekdayDistance(min.Weekday(), start.Weekday())
	if diff == 0 && civil.TimeOfDayAfter(min, start) {
		diff = daysPerWeek
	}

	// min's date plus diff shares start's weekday, so the day distance
	// is an exact number of weeks.
	weeks := (civil.DaysBetween(start, min) + diff) / daysPerWeek
	if rem := weeks % w.cfg.interval; rem != 0 {
		weeks += w.cfg.interval - rem
	}

	skipped := weeks / w.cfg.interval
	cursor := start.AddDate(0, 0, weeks*daysPerWeek)
	w.cfg.logger.Debug("seek",
		"rule_id", w.cfg.id,
		"freq", "weekly",
		"skipped", skipped,
		"cursor", cursor)
	return cursor, skipped
}
