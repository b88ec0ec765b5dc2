package rule

import (
	"iter"
	"time"
)

// stepper drives one rule's occurrence stream: a cursor bound to the
// rule's zone, advanced by a fixed civil increment until the
// termination policy ends it. Each stream owns its own cursor; a fresh
// call to seq derives a fresh one.
type stepper struct {
	cursor time.Time
	days   int
	end    End
}

// seq returns the lazy occurrence stream. Every pull emits the current
// cursor, then advances it one increment. When the step crosses a zone
// offset change the new cursor is shifted back by the offset delta, so
// the local wall-clock time of day is preserved instead of the
// real-time gap.
func (s stepper) seq() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		cursor, end := s.cursor, s.end
		for {
			switch end.kind {
			case endCount:
				if end.count <= 0 {
					return
				}
				end.count--
			case endUntil:
				if cursor.After(end.until) {
					return
				}
			}

			next := cursor.Add(time.Duration(s.days) * 24 * time.Hour)
			_, curOffset := cursor.Zone()
			_, nextOffset := next.Zone()
			if nextOffset != curOffset {
				next = next.Add(-time.Duration(nextOffset-curOffset) * time.Second)
			}

			if !yield(cursor) {
				return
			}
			cursor = next
		}
	}
}
