// Command example demonstrates building recurrence rules, merging them
// into a set, and seeking into the merged stream.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/cyp0633/librecur/rule"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	start := time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC)

	standup, err := rule.NewDaily(rule.Options{
		DTStart: start,
		TZ:      "America/New_York",
		End:     rule.Count(5),
		ID:      "standup",
		Logger:  logger,
	})
	if err != nil {
		log.Fatal(err)
	}

	review, err := rule.NewWeekly(rule.Options{
		DTStart: start,
		TZ:      "America/New_York",
		End:     rule.Count(2),
		ID:      "review",
		Logger:  logger,
	})
	if err != nil {
		log.Fatal(err)
	}

	set := rule.NewSet().
		RRule(rule.DailyRule(standup)).
		RRule(rule.WeeklyRule(review))

	// The daily rule crosses the 2024-03-10 spring-forward; the local
	// time of day is preserved while one real-time gap shrinks to 23h.
	fmt.Println("merged occurrences:")
	for t := range set.All() {
		fmt.Println("  ", t)
	}

	if next, ok := set.NextAfter(start.Add(48 * time.Hour)).Get(); ok {
		fmt.Println("next after two days:", next)
	}
}
