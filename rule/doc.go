/*
Package rule generates the occurrence streams of recurrence rules,
correctly handling daylight-saving transitions.

A rule repeats every Interval civil days or weeks from DTStart, at
DTStart's wall-clock time of day in the rule's zone. Streams are lazy
iter.Seq values: nothing is computed until pulled, and an unbounded rule
produces an unbounded stream.

# Basic Usage

	daily, err := rule.NewDaily(rule.Options{
		DTStart: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		TZ:      "America/New_York",
		End:     rule.Count(10),
	})
	if err != nil {
		log.Fatal(err)
	}
	for t := range daily.All() {
		fmt.Println(t)
	}

Several rules merge into one ordered, duplicate-free stream:

	set := rule.NewSet().
		RRule(rule.DailyRule(daily)).
		RRule(rule.WeeklyRule(weekly))
	for t := range set.All() {
		fmt.Println(t)
	}

# Seeking

After(min) starts the stream at the first occurrence at or after min
without stepping through the skipped ones. A Count policy is charged for
the skipped occurrences, so After never yields more than All would have
from the same point.

# Daylight Saving Time

Steps preserve the local wall-clock time of day rather than the
real-time gap: crossing into daylight saving shortens one gap by the
transition magnitude, crossing out lengthens it. The Until bound is
inclusive: an occurrence exactly equal to the bound is still emitted.

Civil dates far enough in the future to exceed time.Time's range are a
limitation of the time package, not handled here.
*/
package rule
