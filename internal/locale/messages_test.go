package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compounding-bot/internal/model"
	"compounding-bot/internal/progress"
)

func TestHindiCoversEveryEnglishKey(t *testing.T) {
	en, ok := messages[model.LanguageEN]
	require.True(t, ok)
	hi, ok := messages[model.LanguageHI]
	require.True(t, ok)

	for key := range en {
		_, found := hi[key]
		assert.True(t, found, "missing hi translation for %q", key)
	}
	for key := range hi {
		_, found := en[key]
		assert.True(t, found, "hi has key %q with no en counterpart", key)
	}
}

func TestLookupFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, messages[model.LanguageEN]["welcome"], T("fr", "welcome"))
}

func TestLookupUnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no_such_key", T(model.LanguageEN, "no_such_key"))
}

func TestStatusBadges(t *testing.T) {
	assert.Equal(t, T(model.LanguageEN, "status_on_track"), Status(model.LanguageEN, progress.StatusOnTrack))
	assert.Equal(t, T(model.LanguageEN, "status_below_sl"), Status(model.LanguageEN, progress.StatusBelowStoploss))
	assert.Equal(t, T(model.LanguageEN, "status_attention"), Status(model.LanguageEN, progress.StatusNeedsAttention))
	assert.Equal(t, T(model.LanguageHI, "status_on_track"), Status(model.LanguageHI, progress.StatusOnTrack))
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0.00"},
		{1650.5, "₹1,650.50"},
		{999, "₹999.00"},
		{1000, "₹1,000.00"},
		{1234567.89, "₹1,234,567.89"},
		{-2500, "-₹2,500.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatMoney("₹", tc.amount))
	}

	assert.Equal(t, "$42.00", FormatMoney("$", 42))
}
