package rule

import (
	"container/heap"
	"iter"
	"time"

	"github.com/samber/mo"
)

// Set merges the occurrence streams of several rules into one globally
// non-decreasing stream with duplicate instants suppressed. Sub-streams
// are pulled lazily, only as far as the caller consumes.
type Set struct {
	rules []RRule
}

// NewSet returns an empty set.
func NewSet() *Set { return &Set{} }

// RRule adds r and returns the set for chaining.
func (s *Set) RRule(r RRule) *Set {
	s.rules = append(s.rules, r)
	return s
}

// All merges every rule's full stream.
func (s *Set) All() iter.Seq[time.Time] {
	return s.merge(RRule.All)
}

// After merges every rule's stream from the first occurrence at or
// after min.
func (s *Set) After(min time.Time) iter.Seq[time.Time] {
	return s.merge(func(r RRule) iter.Seq[time.Time] { return r.After(min) })
}

// NextAfter returns the earliest occurrence across all rules at or
// after min, if any.
func (s *Set) NextAfter(min time.Time) mo.Option[time.Time] {
	for t := range s.After(min) {
		return mo.Some(t)
	}
	return mo.None[time.Time]()
}

// iterHolder pairs a live sub-stream with the last value it produced.
// Each holder exclusively owns its stream; exhausted holders are
// stopped and dropped, never re-inserted.
type iterHolder struct {
	cursor time.Time
	next   func() (time.Time, bool)
	stop   func()
}

// holderHeap is a min-heap keyed by each holder's pending value.
type holderHeap []*iterHolder

func (h holderHeap) Len() int           { return len(h) }
func (h holderHeap) Less(i, j int) bool { return h[i].cursor.Before(h[j].cursor) }
func (h holderHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *holderHeap) Push(x any) { *h = append(*h, x.(*iterHolder)) }

func (h *holderHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// merge runs the lazy k-way merge: pop the smallest pending value,
// refill from the stream that produced it, and discard the popped value
// whenever the new minimum equals it, so a timestamp produced by
// several rules at once surfaces exactly once.
func (s *Set) merge(stream func(RRule) iter.Seq[time.Time]) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		h := make(holderHeap, 0, len(s.rules))
		defer func() {
			for _, it := range h {
				it.stop()
			}
		}()

		for _, r := range s.rules {
			next, stop := iter.Pull(stream(r))
			first, ok := next()
			if !ok {
				stop()
				continue
			}
			h = append(h, &iterHolder{cursor: first, next: next, stop: stop})
		}
		heap.Init(&h)

		for h.Len() > 0 {
			it := heap.Pop(&h).(*iterHolder)
			cursor := it.cursor

			if v, ok := it.next(); ok {
				it.cursor = v
				heap.Push(&h, it)
			} else {
				it.stop()
			}

			if h.Len() > 0 && h[0].cursor.Equal(cursor) {
				continue
			}
			if !yield(cursor) {
				return
			}
		}
	}
}
