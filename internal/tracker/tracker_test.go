package tracker

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compounding-bot/internal/model"
	"compounding-bot/internal/storage"
)

const userID int64 = 42

func newTestTracker(t *testing.T) (*Tracker, *storage.Storage) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := storage.NewStorage(filepath.Join(t.TempDir(), "user_data.json"), log)

	trk := New(store, time.UTC)
	trk.now = func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	return trk, store
}

func testTarget() model.Target {
	return model.Target{
		StartAmount:  decimal.NewFromInt(1500),
		TargetAmount: decimal.NewFromInt(10000),
		Rate:         decimal.NewFromInt(5),
		Mode:         model.ModeDaily,
	}
}

func TestSetTargetSeedsHistoryAndStartDate(t *testing.T) {
	trk, store := newTestTracker(t)

	require.NoError(t, trk.SetTarget(userID, testTarget()))

	p := store.GetUser(userID)
	require.True(t, p.HasTarget())
	assert.Equal(t, "2026-03-10", p.StartDate)
	require.Len(t, p.History, 1)
	assert.Equal(t, "2026-03-10", p.History[0].Date)
	assert.True(t, decimal.NewFromInt(1500).Equal(p.History[0].Balance))
	assert.Equal(t, model.AwaitingNone, p.Awaiting)
}

func TestSetTargetRejectedWhenOneExists(t *testing.T) {
	trk, store := newTestTracker(t)
	require.NoError(t, trk.SetTarget(userID, testTarget()))

	second := testTarget()
	second.StartAmount = decimal.NewFromInt(9999)
	err := trk.SetTarget(userID, second)
	assert.ErrorIs(t, err, ErrTargetExists)

	p := store.GetUser(userID)
	assert.True(t, decimal.NewFromInt(1500).Equal(p.Target.StartAmount), "existing target must stay unmodified")
}

func TestRecordClosingSameDayOverwrites(t *testing.T) {
	trk, store := newTestTracker(t)
	require.NoError(t, trk.SetTarget(userID, testTarget()))

	_, err := trk.RecordClosing(userID, decimal.NewFromInt(1600))
	require.NoError(t, err)
	_, err = trk.RecordClosing(userID, decimal.NewFromInt(1700))
	require.NoError(t, err)

	p := store.GetUser(userID)
	require.Len(t, p.History, 1, "same-day entries must collapse to one")
	assert.True(t, decimal.NewFromInt(1700).Equal(p.History[0].Balance))
}

func TestRecordClosingNewDayAppends(t *testing.T) {
	trk, store := newTestTracker(t)
	require.NoError(t, trk.SetTarget(userID, testTarget()))

	trk.now = func() time.Time {
		return time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	}
	_, err := trk.RecordClosing(userID, decimal.NewFromInt(1600))
	require.NoError(t, err)

	p := store.GetUser(userID)
	require.Len(t, p.History, 2)
	assert.Equal(t, "2026-03-11", p.History[1].Date)
}

func TestRecordClosingRequiresTarget(t *testing.T) {
	trk, store := newTestTracker(t)

	_, err := trk.RecordClosing(userID, decimal.NewFromInt(500))
	assert.ErrorIs(t, err, ErrNoTarget)
	assert.Empty(t, store.GetUser(userID).History, "no balance may be stored ahead of a target")

	// A later target seeds exactly its own start entry, so nothing recorded
	// earlier can be silently replaced.
	require.NoError(t, trk.SetTarget(userID, testTarget()))
	p := store.GetUser(userID)
	require.Len(t, p.History, 1)
	assert.True(t, decimal.NewFromInt(1500).Equal(p.History[0].Balance))
}

func TestRecordClosingStoplossHit(t *testing.T) {
	trk, _ := newTestTracker(t)

	target := testTarget()
	target.StartAmount = decimal.NewFromInt(1000)
	require.NoError(t, trk.SetTarget(userID, target))
	require.NoError(t, trk.SetStoploss(userID, decimal.NewFromInt(20)))

	res, err := trk.RecordClosing(userID, decimal.NewFromInt(750))
	require.NoError(t, err)
	assert.True(t, res.StoplossHit)

	res, err = trk.RecordClosing(userID, decimal.NewFromInt(850))
	require.NoError(t, err)
	assert.False(t, res.StoplossHit)
}

func TestRecordClosingTargetAchieved(t *testing.T) {
	trk, _ := newTestTracker(t)
	require.NoError(t, trk.SetTarget(userID, testTarget()))

	res, err := trk.RecordClosing(userID, decimal.NewFromInt(10000))
	require.NoError(t, err)
	assert.True(t, res.TargetAchieved)

	res, err = trk.RecordClosing(userID, decimal.NewFromInt(9999))
	require.NoError(t, err)
	assert.False(t, res.TargetAchieved)
}

func TestResetPreservesProfilePreferences(t *testing.T) {
	trk, store := newTestTracker(t)

	require.NoError(t, store.UpdateUser(userID, func(p *model.Profile) {
		p.Name = "Asha"
		p.Language = model.LanguageHI
		p.Currency = "$"
		p.Reminders = false
	}))
	require.NoError(t, trk.SetTarget(userID, testTarget()))
	require.NoError(t, trk.SetStoploss(userID, decimal.NewFromInt(10)))

	require.NoError(t, trk.Reset(userID))

	p := store.GetUser(userID)
	assert.False(t, p.HasTarget())
	assert.Nil(t, p.Stoploss)
	assert.Empty(t, p.History)
	assert.Empty(t, p.StartDate)

	assert.Equal(t, "Asha", p.Name)
	assert.Equal(t, model.LanguageHI, p.Language)
	assert.Equal(t, "$", p.Currency)
	assert.False(t, p.Reminders)
}

func TestSetRateModeRequiresTarget(t *testing.T) {
	trk, store := newTestTracker(t)

	err := trk.SetRateMode(userID, decimal.NewFromInt(7), model.ModeMonthly)
	assert.ErrorIs(t, err, ErrNoTarget)

	require.NoError(t, trk.SetTarget(userID, testTarget()))
	require.NoError(t, trk.SetRateMode(userID, decimal.NewFromInt(7), model.ModeMonthly))

	p := store.GetUser(userID)
	assert.True(t, decimal.NewFromInt(7).Equal(p.Target.Rate))
	assert.Equal(t, model.ModeMonthly, p.Target.Mode)
	// Rate/mode edits must not disturb the rest of the target.
	assert.True(t, decimal.NewFromInt(1500).Equal(p.Target.StartAmount))
}

func TestAwaitAndCancel(t *testing.T) {
	trk, store := newTestTracker(t)

	require.NoError(t, trk.Await(userID, model.AwaitingClosing))
	assert.Equal(t, model.AwaitingClosing, store.GetUser(userID).Awaiting)

	require.NoError(t, trk.Cancel(userID))
	assert.Equal(t, model.AwaitingNone, store.GetUser(userID).Awaiting)
}

func TestToggleReminders(t *testing.T) {
	trk, store := newTestTracker(t)

	enabled, err := trk.ToggleReminders(userID)
	require.NoError(t, err)
	assert.False(t, enabled, "defaults start enabled, first toggle disables")
	assert.False(t, store.GetUser(userID).Reminders)

	enabled, err = trk.ToggleReminders(userID)
	require.NoError(t, err)
	assert.True(t, enabled)
}
