package model

import "github.com/shopspring/decimal"

const (
	LanguageEN = "en"
	LanguageHI = "hi"

	DefaultCurrency = "₹"

	// DateLayout is the calendar-day format used for start dates and
	// history entries.
	DateLayout = "2006-01-02"
)

// Mode is the compounding mode of a target.
type Mode string

const (
	ModeDaily   Mode = "daily"
	ModeMonthly Mode = "monthly"
)

func (m Mode) Valid() bool {
	return m == ModeDaily || m == ModeMonthly
}

// Awaiting names the conversation state currently expecting free-text
// input from the user. The zero value means idle.
type Awaiting string

const (
	AwaitingNone      Awaiting = ""
	AwaitingTarget    Awaiting = "target"
	AwaitingClosing   Awaiting = "closing"
	AwaitingStoploss  Awaiting = "stoploss"
	AwaitingName      Awaiting = "name"
	AwaitingRateMode  Awaiting = "rate_mode"
	AwaitingCurrency  Awaiting = "currency"
	AwaitingBroadcast Awaiting = "broadcast"
	AwaitingLanguage  Awaiting = "language"
)

// Target is a user's compounding goal.
type Target struct {
	StartAmount  decimal.Decimal `json:"start_amount"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Rate         decimal.Decimal `json:"rate"`
	Mode         Mode            `json:"mode"`
}

// HistoryEntry is one recorded closing balance. At most one entry exists
// per calendar day.
type HistoryEntry struct {
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// Profile holds everything persisted for a single user.
type Profile struct {
	Name      string           `json:"name"`
	Language  string           `json:"language"`
	Currency  string           `json:"currency"`
	Reminders bool             `json:"reminders"`
	Stoploss  *decimal.Decimal `json:"stoploss,omitempty"`
	Target    *Target          `json:"target,omitempty"`
	StartDate string           `json:"start_date,omitempty"`
	History   []HistoryEntry   `json:"history,omitempty"`
	Awaiting  Awaiting         `json:"awaiting,omitempty"`
}

// DefaultProfile is what an unknown user looks like on first contact.
func DefaultProfile() Profile {
	return Profile{
		Language:  LanguageEN,
		Currency:  DefaultCurrency,
		Reminders: true,
	}
}

func (p Profile) HasTarget() bool {
	return p.Target != nil
}

// Clone returns a deep copy so callers can hold a profile outside the
// store's lock without aliasing its history slice or target.
func (p *Profile) Clone() Profile {
	out := *p
	if p.Target != nil {
		t := *p.Target
		out.Target = &t
	}
	if p.Stoploss != nil {
		sl := *p.Stoploss
		out.Stoploss = &sl
	}
	if p.History != nil {
		out.History = make([]HistoryEntry, len(p.History))
		copy(out.History, p.History)
	}
	return out
}
