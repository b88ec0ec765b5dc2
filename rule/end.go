package rule

import "time"

// endKind tags the End union.
type endKind int

const (
	endNever endKind = iota
	endUntil
	endCount
)

// End is the termination policy of a recurrence stream. The zero value
// is Never: the stream is unbounded.
type End struct {
	kind  endKind
	until time.Time
	count int
}

// Never leaves the stream unbounded.
var Never = End{}

// Until stops the stream once the cursor moves past t. An occurrence
// exactly equal to t is still emitted.
func Until(t time.Time) End { return End{kind: endUntil, until: t} }

// Count emits at most n occurrences. Count(0) emits none.
func Count(n int) End { return End{kind: endCount, count: n} }

// reduced charges skipped occurrences against a Count budget,
// saturating at zero. Other policies are unaffected.
func (e End) reduced(skipped int) End {
	if e.kind == endCount {
		e.count -= skipped
		if e.count < 0 {
			e.count = 0
		}
	}
	return e
}
