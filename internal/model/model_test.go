package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHasTarget(t *testing.T) {
	assert.False(t, DefaultProfile().HasTarget())

	p := DefaultProfile()
	p.Target = &Target{
		StartAmount:  decimal.NewFromInt(1000),
		TargetAmount: decimal.NewFromInt(2000),
		Rate:         decimal.NewFromInt(5),
		Mode:         ModeDaily,
	}
	assert.True(t, p.HasTarget())

	// Must be callable on a non-addressable value, such as a store lookup
	// used directly in a condition.
	get := func() Profile { return p }
	assert.True(t, get().HasTarget())
}

func TestCloneIsolatesPointersAndSlices(t *testing.T) {
	sl := decimal.NewFromInt(20)
	p := DefaultProfile()
	p.Stoploss = &sl
	p.Target = &Target{StartAmount: decimal.NewFromInt(100)}
	p.History = []HistoryEntry{{Date: "2026-03-10", Balance: decimal.NewFromInt(100)}}

	c := p.Clone()
	c.Target.StartAmount = decimal.NewFromInt(999)
	*c.Stoploss = decimal.NewFromInt(50)
	c.History[0].Balance = decimal.NewFromInt(999)

	assert.True(t, decimal.NewFromInt(100).Equal(p.Target.StartAmount))
	assert.True(t, decimal.NewFromInt(20).Equal(*p.Stoploss))
	assert.True(t, decimal.NewFromInt(100).Equal(p.History[0].Balance))
}
