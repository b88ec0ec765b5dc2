package rule

import (
	"iter"
	"time"

	"github.com/cyp0633/librecur/internal/civil"
)

// Daily repeats every Interval civil days at DTStart's wall-clock time.
type Daily struct {
	cfg config
}

// NewDaily builds a Daily rule from opts. It fails only when the zone
// cannot be resolved or the interval is negative.
func NewDaily(opts Options) (*Daily, error) {
	cfg, err := opts.build("daily")
	if err != nil {
		return nil, err
	}
	return &Daily{cfg: cfg}, nil
}

// ID returns the rule's identifier.
func (d *Daily) ID() string { return d.cfg.id }

// All streams every occurrence from DTStart.
func (d *Daily) All() iter.Seq[time.Time] {
	return stepper{cursor: d.cfg.dtstart, days: d.cfg.interval, end: d.cfg.end}.seq()
}

// After streams the occurrences at or after min, without stepping
// through the skipped ones. A Count policy is charged for the skipped
// occurrences, saturating at zero.
func (d *Daily) After(min time.Time) iter.Seq[time.Time] {
	cursor, skipped := d.seek(min.In(d.cfg.loc))
	return stepper{cursor: cursor, days: d.cfg.interval, end: d.cfg.end.reduced(skipped)}.seq()
}

// seek returns the first on-grid cursor at or after min and the number
// of occurrences skipped to reach it. min must already be in the
// rule's zone.
func (d *Daily) seek(min time.Time) (time.Time, int) {
	start := d.cfg.dtstart
	if !min.After(start) {
		return start, 0
	}

	days := civil.DaysBetween(start, min)
	if civil.TimeOfDayAfter(min, start) {
		days++
	}
	// Land on the start + k*interval grid.
	if rem := days % d.cfg.interval; rem != 0 {
		days += d.cfg.interval - rem
	}

	skipped := days / d.cfg.interval
	cursor := start.AddDate(0, 0, days)
	d.cfg.logger.Debug("seek",
		"rule_id", d.cfg.id,
		"freq", "daily",
		"skipped", skipped,
		"cursor", cursor)
	return cursor, skipped
}
