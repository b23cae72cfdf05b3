package tracker

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"compounding-bot/internal/model"
)

const (
	maxNameLength      = 50
	maxCurrencyLength  = 5
	maxBroadcastLength = 4096
)

// ParseTarget accepts "start, target, rate, mode": all numeric and
// positive, target strictly above start, mode daily or monthly.
func ParseTarget(text string) (model.Target, error) {
	parts := splitFields(text)
	if len(parts) != 4 {
		return model.Target{}, errors.New("expected 4 comma-separated values")
	}

	start, err := decimal.NewFromString(parts[0])
	if err != nil {
		return model.Target{}, errors.Wrap(err, "start amount")
	}
	target, err := decimal.NewFromString(parts[1])
	if err != nil {
		return model.Target{}, errors.Wrap(err, "target amount")
	}
	rate, err := decimal.NewFromString(parts[2])
	if err != nil {
		return model.Target{}, errors.Wrap(err, "rate")
	}

	if !start.IsPositive() || !target.IsPositive() || !rate.IsPositive() {
		return model.Target{}, errors.New("values must be positive")
	}
	if !target.GreaterThan(start) {
		return model.Target{}, errors.New("target amount must exceed start amount")
	}

	mode := model.Mode(strings.ToLower(parts[3]))
	if !mode.Valid() {
		return model.Target{}, errors.New("mode must be daily or monthly")
	}

	return model.Target{
		StartAmount:  start,
		TargetAmount: target,
		Rate:         rate,
		Mode:         mode,
	}, nil
}

// ParseRateMode accepts "rate, mode" with the same constraints as the
// target's rate and mode.
func ParseRateMode(text string) (decimal.Decimal, model.Mode, error) {
	parts := splitFields(text)
	if len(parts) != 2 {
		return decimal.Zero, "", errors.New("expected rate, mode")
	}
	rate, err := decimal.NewFromString(parts[0])
	if err != nil {
		return decimal.Zero, "", errors.Wrap(err, "rate")
	}
	if !rate.IsPositive() {
		return decimal.Zero, "", errors.New("rate must be positive")
	}
	mode := model.Mode(strings.ToLower(parts[1]))
	if !mode.Valid() {
		return decimal.Zero, "", errors.New("mode must be daily or monthly")
	}
	return rate, mode, nil
}

// ParseBalance accepts a single non-negative number.
func ParseBalance(text string) (decimal.Decimal, error) {
	balance, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "balance")
	}
	if balance.IsNegative() {
		return decimal.Zero, errors.New("balance must not be negative")
	}
	return balance, nil
}

// ParseStoploss accepts a percentage between 0 and 100 inclusive.
func ParseStoploss(text string) (decimal.Decimal, error) {
	percent, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "stop-loss")
	}
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, errors.New("stop-loss must be between 0 and 100")
	}
	return percent, nil
}

// ParseLanguage maps a fixed token set, case-insensitively, onto the
// supported language codes.
func ParseLanguage(text string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "en", "english":
		return model.LanguageEN, nil
	case "hi", "hindi":
		return model.LanguageHI, nil
	default:
		return "", errors.New("language must be en or hi")
	}
}

func ValidateName(text string) (string, error) {
	name := strings.TrimSpace(text)
	if name == "" || len([]rune(name)) > maxNameLength {
		return "", errors.Errorf("name must be 1-%d characters", maxNameLength)
	}
	return name, nil
}

func ValidateCurrency(text string) (string, error) {
	currency := strings.TrimSpace(text)
	if currency == "" || len([]rune(currency)) > maxCurrencyLength {
		return "", errors.Errorf("currency symbol must be 1-%d characters", maxCurrencyLength)
	}
	return currency, nil
}

func ValidateBroadcast(text string) (string, error) {
	message := strings.TrimSpace(text)
	if message == "" || len(message) > maxBroadcastLength {
		return "", errors.Errorf("message must be 1-%d characters", maxBroadcastLength)
	}
	return message, nil
}

func splitFields(text string) []string {
	parts := strings.Split(text, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
