package rule

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Clock supplies "now" and the host's local zone. Rules use SystemClock
// unless a test injects its own.
type Clock interface {
	Now() time.Time
	Local() *time.Location
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Local() *time.Location { return time.Local }

// SystemClock is the default Clock, backed by the time package.
var SystemClock Clock = systemClock{}

// ErrNoLocalZone is returned when no explicit zone was supplied and the
// clock cannot report a local one.
var ErrNoLocalZone = errors.New("no local time zone available")

// Options configures a Daily or Weekly rule. The zero value is valid:
// interval 1, starting now, in the host's local zone, never ending.
type Options struct {
	// Interval is the calendar increment in days (Daily) or weeks
	// (Weekly). Zero means 1; negative is a construction error.
	Interval int

	// DTStart is the first occurrence. The zero value means the
	// clock's current time.
	DTStart time.Time

	// TZ is an IANA zone identifier, resolved at construction time.
	// Empty means the host's local zone.
	TZ string

	// End is the termination policy. The zero value is Never.
	End End

	// ID names the rule in logs and lets callers correlate per-rule
	// streams. Empty means a fresh UUID.
	ID string

	// Clock overrides the time source. Nil means SystemClock.
	Clock Clock

	// Logger receives debug records for construction and seeks. Nil
	// discards them.
	Logger *slog.Logger
}

// config is the resolved, immutable form of Options shared by Daily
// and Weekly.
type config struct {
	interval int
	dtstart  time.Time
	loc      *time.Location
	end      End
	id       string
	logger   *slog.Logger
}

// build resolves defaults and validates. All construction errors
// surface here, before any iteration begins.
func (o Options) build(freq string) (config, error) {
	if o.Interval < 0 {
		return config{}, fmt.Errorf("interval must be positive, got %d", o.Interval)
	}

	clk := o.Clock
	if clk == nil {
		clk = SystemClock
	}

	loc := clk.Local()
	if o.TZ != "" {
		var err error
		loc, err = time.LoadLocation(o.TZ)
		if err != nil {
			return config{}, fmt.Errorf("failed to resolve time zone %q: %w", o.TZ, err)
		}
	}
	if loc == nil {
		return config{}, ErrNoLocalZone
	}

	interval := o.Interval
	if interval == 0 {
		interval = 1
	}

	start := o.DTStart
	if start.IsZero() {
		start = clk.Now()
	}

	id := o.ID
	if id == "" {
		id = uuid.NewString()
	}

	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	cfg := config{
		interval: interval,
		dtstart:  start.In(loc),
		loc:      loc,
		end:      o.End,
		id:       id,
		logger:   logger,
	}
	logger.Debug("rule configured",
		"rule_id", id,
		"freq", freq,
		"interval", interval,
		"tz", loc.String())
	return cfg, nil
}
