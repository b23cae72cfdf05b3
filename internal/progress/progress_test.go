package progress

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compounding-bot/internal/model"
)

func newTarget(start, target, rate int64, mode model.Mode) *model.Target {
	return &model.Target{
		StartAmount:  decimal.NewFromInt(start),
		TargetAmount: decimal.NewFromInt(target),
		Rate:         decimal.NewFromInt(rate),
		Mode:         mode,
	}
}

func TestCompoundZeroPeriodsReturnsStart(t *testing.T) {
	assert.Equal(t, 1500.0, Compound(1500, 5, model.ModeDaily, 0))
	assert.Equal(t, 1500.0, Compound(1500, 5, model.ModeMonthly, 0))
}

func TestCompoundMonotonicInPeriods(t *testing.T) {
	prev := Compound(1000, 12, model.ModeDaily, 0)
	for periods := 1; periods <= 365; periods++ {
		cur := Compound(1000, 12, model.ModeDaily, float64(periods))
		require.GreaterOrEqual(t, cur, prev, "periods=%d", periods)
		prev = cur
	}
}

func TestCompoundMonthlyThirtyDayScenario(t *testing.T) {
	// 2000 at 10% monthly after 30 elapsed days is one month's accrual.
	got := Compound(2000, 10, model.ModeMonthly, 30)
	assert.InDelta(t, 2000*(1+0.10/12), got, 0.01)
}

func TestCalculateDayZeroRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	today := now.Format(model.DateLayout)

	p := model.DefaultProfile()
	p.Target = newTarget(1500, 10000, 5, model.ModeDaily)
	p.StartDate = today
	p.History = []model.HistoryEntry{{Date: today, Balance: decimal.NewFromInt(1500)}}

	res, err := Calculate(p, now)
	require.NoError(t, err)

	assert.Equal(t, 0, res.DaysPassed)
	assert.Equal(t, 1500.0, res.ExpectedBalance)
	assert.Equal(t, 1500.0, res.CurrentBalance)
	// Day zero projects one period forward instead of a day-over-day delta.
	assert.InDelta(t, Compound(1500, 5, model.ModeDaily, 1)-1500, res.TodayProfitGoal, 1e-9)
	assert.Equal(t, StatusOnTrack, res.Status)
}

func TestCalculateDaysPassed(t *testing.T) {
	now := time.Date(2026, 3, 31, 9, 30, 0, 0, time.UTC)

	p := model.DefaultProfile()
	p.Target = newTarget(2000, 5000, 10, model.ModeMonthly)
	p.StartDate = "2026-03-01"

	res, err := Calculate(p, now)
	require.NoError(t, err)
	assert.Equal(t, 30, res.DaysPassed)
	assert.InDelta(t, 2016.67, res.ExpectedBalance, 0.01)
}

func TestCalculateFutureStartDateClampsToZero(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	p := model.DefaultProfile()
	p.Target = newTarget(1000, 2000, 5, model.ModeDaily)
	p.StartDate = "2026-04-01"

	res, err := Calculate(p, now)
	require.NoError(t, err)
	assert.Equal(t, 0, res.DaysPassed)
}

func TestCalculateNoTarget(t *testing.T) {
	res, err := Calculate(model.DefaultProfile(), time.Now())
	assert.ErrorIs(t, err, ErrNoTarget)
	assert.Zero(t, res.ExpectedBalance)
	assert.Zero(t, res.CurrentBalance)
	assert.Nil(t, res.StoplossLevel)
}

func TestCalculateInvalidStoredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Target)
		field  string
	}{
		{"zero start", func(tg *model.Target) { tg.StartAmount = decimal.Zero }, "start_amount"},
		{"zero target", func(tg *model.Target) { tg.TargetAmount = decimal.Zero }, "target_amount"},
		{"zero rate", func(tg *model.Target) { tg.Rate = decimal.Zero }, "rate"},
		{"bad mode", func(tg *model.Target) { tg.Mode = "hourly" }, "mode"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := model.DefaultProfile()
			p.Target = newTarget(1000, 2000, 5, model.ModeDaily)
			p.StartDate = "2026-01-01"
			tc.mutate(p.Target)

			res, err := Calculate(p, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tc.field, fieldErr.Field)
			assert.Zero(t, res.ExpectedBalance)
		})
	}
}

func TestStatusClassificationExhaustive(t *testing.T) {
	level := 800.0
	cases := []struct {
		name     string
		current  float64
		expected float64
		stoploss *float64
		want     Status
	}{
		{"at expected", 1000, 1000, &level, StatusOnTrack},
		{"above expected", 1200, 1000, &level, StatusOnTrack},
		{"below stoploss", 750, 1000, &level, StatusBelowStoploss},
		{"between", 900, 1000, &level, StatusNeedsAttention},
		{"at stoploss level", 800, 1000, &level, StatusNeedsAttention},
		{"no stoploss lagging", 100, 1000, nil, StatusNeedsAttention},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classify(tc.current, tc.expected, tc.stoploss))
		})
	}
}

func TestCalculateStoplossLevel(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	sl := decimal.NewFromInt(20)

	p := model.DefaultProfile()
	p.Target = newTarget(1000, 2000, 5, model.ModeDaily)
	p.StartDate = "2026-03-10"
	p.Stoploss = &sl
	p.History = []model.HistoryEntry{{Date: "2026-03-10", Balance: decimal.NewFromInt(700)}}

	res, err := Calculate(p, now)
	require.NoError(t, err)
	require.NotNil(t, res.StoplossLevel)
	assert.InDelta(t, 800.0, *res.StoplossLevel, 1e-9)
	assert.Equal(t, StatusBelowStoploss, res.Status)
}

func TestBreachesStoploss(t *testing.T) {
	sl := decimal.NewFromInt(20)
	p := model.DefaultProfile()
	p.Target = newTarget(1000, 5000, 5, model.ModeDaily)
	p.Stoploss = &sl

	assert.True(t, BreachesStoploss(p, decimal.NewFromInt(750)))
	assert.False(t, BreachesStoploss(p, decimal.NewFromInt(850)))
	// The threshold itself is not a breach: it must be strictly below.
	assert.False(t, BreachesStoploss(p, decimal.NewFromInt(800)))
}

func TestBreachesStoplossRequiresTargetAndStoploss(t *testing.T) {
	p := model.DefaultProfile()
	assert.False(t, BreachesStoploss(p, decimal.NewFromInt(1)))

	sl := decimal.NewFromInt(50)
	p.Stoploss = &sl
	assert.False(t, BreachesStoploss(p, decimal.NewFromInt(1)))

	p.Target = newTarget(1000, 2000, 5, model.ModeDaily)
	assert.True(t, BreachesStoploss(p, decimal.NewFromInt(1)))
}
