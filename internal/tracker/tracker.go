// Package tracker applies conversation inputs to user profiles: target
// creation, closing balances, settings changes and reset. Parsing and
// validation live in parse.go so the bot layer only routes and speaks.
package tracker

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"compounding-bot/internal/model"
	"compounding-bot/internal/progress"
	"compounding-bot/internal/storage"
)

// ErrTargetExists rejects creating a second target; the existing one must
// be cleared via reset first.
var ErrTargetExists = errors.New("target already exists")

// ErrNoTarget rejects operations that need a target, re-exported so callers
// handle one sentinel for both layers.
var ErrNoTarget = progress.ErrNoTarget

type Tracker struct {
	store *storage.Storage
	loc   *time.Location
	now   func() time.Time
}

func New(store *storage.Storage, loc *time.Location) *Tracker {
	t := &Tracker{store: store, loc: loc}
	t.now = func() time.Time { return time.Now().In(loc) }
	return t
}

// Now is the tracker's clock in its configured zone.
func (t *Tracker) Now() time.Time {
	return t.now()
}

func (t *Tracker) today() string {
	return t.now().Format(model.DateLayout)
}

// Await persists the conversation state that gates the user's next
// free-text message.
func (t *Tracker) Await(userID int64, state model.Awaiting) error {
	return t.store.UpdateUser(userID, func(p *model.Profile) {
		p.Awaiting = state
	})
}

// Cancel clears any pending conversation state without applying a mutation.
func (t *Tracker) Cancel(userID int64) error {
	return t.Await(userID, model.AwaitingNone)
}

// SetTarget creates the target, stamps the start date and seeds history
// with one entry, all in a single persisted mutation. A present target is
// rejected untouched.
func (t *Tracker) SetTarget(userID int64, target model.Target) error {
	if t.store.GetUser(userID).HasTarget() {
		return ErrTargetExists
	}
	today := t.today()
	return t.store.UpdateUser(userID, func(p *model.Profile) {
		tg := target
		p.Target = &tg
		p.StartDate = today
		p.History = []model.HistoryEntry{{Date: today, Balance: target.StartAmount}}
		p.Awaiting = model.AwaitingNone
	})
}

// CloseResult reports what the recorded balance triggered.
type CloseResult struct {
	StoplossHit    bool
	TargetAchieved bool
}

// RecordClosing appends today's closing balance, overwriting an existing
// entry for the same calendar day. History exists only under a target, so a
// profile without one is rejected with ErrNoTarget. The stop-loss check runs
// against the profile as it was before this balance is persisted.
func (t *Tracker) RecordClosing(userID int64, balance decimal.Decimal) (CloseResult, error) {
	before := t.store.GetUser(userID)
	if !before.HasTarget() {
		return CloseResult{}, ErrNoTarget
	}

	res := CloseResult{
		StoplossHit: progress.BreachesStoploss(before, balance),
	}
	if balance.GreaterThanOrEqual(before.Target.TargetAmount) {
		res.TargetAchieved = true
	}

	today := t.today()
	err := t.store.UpdateUser(userID, func(p *model.Profile) {
		if n := len(p.History); n > 0 && p.History[n-1].Date == today {
			p.History[n-1].Balance = balance
		} else {
			p.History = append(p.History, model.HistoryEntry{Date: today, Balance: balance})
		}
		p.Awaiting = model.AwaitingNone
	})
	if err != nil {
		return CloseResult{}, err
	}
	return res, nil
}

func (t *Tracker) SetStoploss(userID int64, percent decimal.Decimal) error {
	return t.store.UpdateUser(userID, func(p *model.Profile) {
		p.Stoploss = &percent
		p.Awaiting = model.AwaitingNone
	})
}

func (t *Tracker) SetName(userID int64, name string) error {
	return t.store.UpdateUser(userID, func(p *model.Profile) {
		p.Name = name
		p.Awaiting = model.AwaitingNone
	})
}

func (t *Tracker) SetCurrency(userID int64, currency string) error {
	return t.store.UpdateUser(userID, func(p *model.Profile) {
		p.Currency = currency
		p.Awaiting = model.AwaitingNone
	})
}

func (t *Tracker) SetLanguage(userID int64, language string) error {
	return t.store.UpdateUser(userID, func(p *model.Profile) {
		p.Language = language
		p.Awaiting = model.AwaitingNone
	})
}

// SetRateMode mutates an existing target's rate and mode in place.
func (t *Tracker) SetRateMode(userID int64, rate decimal.Decimal, mode model.Mode) error {
	if !t.store.GetUser(userID).HasTarget() {
		return ErrNoTarget
	}
	return t.store.UpdateUser(userID, func(p *model.Profile) {
		if p.Target != nil {
			p.Target.Rate = rate
			p.Target.Mode = mode
		}
		p.Awaiting = model.AwaitingNone
	})
}

// ToggleReminders flips the reminder preference and returns the new value.
func (t *Tracker) ToggleReminders(userID int64) (bool, error) {
	enabled := false
	err := t.store.UpdateUser(userID, func(p *model.Profile) {
		p.Reminders = !p.Reminders
		enabled = p.Reminders
	})
	return enabled, err
}

// Reset wipes target, stop-loss, history and start date together. Name,
// language, currency and the reminder preference survive.
func (t *Tracker) Reset(userID int64) error {
	return t.store.UpdateUser(userID, func(p *model.Profile) {
		p.Target = nil
		p.Stoploss = nil
		p.History = nil
		p.StartDate = ""
		p.Awaiting = model.AwaitingNone
	})
}
