// Package progress is the pure calculation engine: the compounding formula,
// stop-loss evaluation and status classification. It touches no storage and
// no user-facing strings.
package progress

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"compounding-bot/internal/model"
)

// Status is the classification badge for a user's progress.
type Status string

const (
	StatusOnTrack        Status = "on_track"
	StatusBelowStoploss  Status = "below_stoploss"
	StatusNeedsAttention Status = "needs_attention"
)

// ErrNoTarget marks the recoverable "no target set" outcome. Callers render
// a friendly message instead of figures.
var ErrNoTarget = errors.New("no target set")

// FieldError reports a stored target field that cannot be used for
// calculation, so corrupted state never propagates into rendering.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid target field: %s", e.Field)
}

// Result holds the derived figures for one user.
type Result struct {
	DaysPassed      int
	ExpectedBalance float64
	TodayProfitGoal float64
	StoplossLevel   *float64
	CurrentBalance  float64
	Status          Status
}

// Compound evaluates the compounding formula. Periods are always elapsed
// days; monthly mode converts them with a fixed 30-day month, a defined
// approximation rather than calendar math.
func Compound(startAmount, rate float64, mode model.Mode, periods float64) float64 {
	var r, n float64
	if mode == model.ModeDaily {
		r = rate / 100 / 365
		n = periods
	} else {
		r = rate / 100 / 12
		n = periods / 30
	}
	return startAmount * math.Pow(1+r, n)
}

// Calculate derives the progress figures for a profile at the given moment.
// The moment's location defines the calendar-day boundary.
func Calculate(p model.Profile, now time.Time) (Result, error) {
	if !p.HasTarget() {
		return Result{Status: StatusNeedsAttention}, ErrNoTarget
	}

	start, rate, err := targetFigures(p.Target)
	if err != nil {
		return Result{Status: StatusNeedsAttention}, err
	}

	days, err := daysPassed(p.StartDate, now)
	if err != nil {
		return Result{Status: StatusNeedsAttention}, err
	}

	expected := Compound(start, rate, p.Target.Mode, float64(days))

	// Day zero projects one period forward instead of the day-over-day
	// delta, matching the established first-day behavior.
	var profitGoal float64
	if days == 0 {
		profitGoal = Compound(start, rate, p.Target.Mode, 1) - start
	} else {
		profitGoal = expected - Compound(start, rate, p.Target.Mode, float64(days-1))
	}

	current := start
	if len(p.History) > 0 {
		current = p.History[len(p.History)-1].Balance.InexactFloat64()
	}

	res := Result{
		DaysPassed:      days,
		ExpectedBalance: expected,
		TodayProfitGoal: profitGoal,
		CurrentBalance:  current,
	}
	if level, ok := stoplossLevel(p, start); ok {
		res.StoplossLevel = &level
	}
	res.Status = classify(current, expected, res.StoplossLevel)
	return res, nil
}

// BreachesStoploss reports whether recording candidate would land strictly
// below the stop-loss level. False when no stop-loss or no target is set.
func BreachesStoploss(p model.Profile, candidate decimal.Decimal) bool {
	if p.Stoploss == nil || !p.HasTarget() {
		return false
	}
	start := p.Target.StartAmount.InexactFloat64()
	if start <= 0 {
		return false
	}
	level, ok := stoplossLevel(p, start)
	if !ok {
		return false
	}
	return candidate.InexactFloat64() < level
}

func targetFigures(t *model.Target) (start, rate float64, err error) {
	start = t.StartAmount.InexactFloat64()
	if start <= 0 {
		return 0, 0, &FieldError{Field: "start_amount"}
	}
	if t.TargetAmount.InexactFloat64() <= 0 {
		return 0, 0, &FieldError{Field: "target_amount"}
	}
	rate = t.Rate.InexactFloat64()
	if rate <= 0 {
		return 0, 0, &FieldError{Field: "rate"}
	}
	if !t.Mode.Valid() {
		return 0, 0, &FieldError{Field: "mode"}
	}
	return start, rate, nil
}

// daysPassed counts whole days from the start date's midnight to now, in
// now's location, clamped to zero for future start dates.
func daysPassed(startDate string, now time.Time) (int, error) {
	if startDate == "" {
		return 0, nil
	}
	start, err := time.ParseInLocation(model.DateLayout, startDate, now.Location())
	if err != nil {
		return 0, &FieldError{Field: "start_date"}
	}
	days := int(now.Sub(start).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days, nil
}

func stoplossLevel(p model.Profile, start float64) (float64, bool) {
	if p.Stoploss == nil {
		return 0, false
	}
	return start * (1 - p.Stoploss.InexactFloat64()/100), true
}

// classify picks exactly one status, in priority order.
func classify(current, expected float64, stoploss *float64) Status {
	switch {
	case current >= expected:
		return StatusOnTrack
	case stoploss != nil && current < *stoploss:
		return StatusBelowStoploss
	default:
		return StatusNeedsAttention
	}
}
