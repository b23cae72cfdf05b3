package bot

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/telebot.v3"

	"compounding-bot/internal/locale"
	"compounding-bot/internal/model"
	"compounding-bot/internal/progress"
	"compounding-bot/internal/render"
)

func (h *messageHandler) reply(to telebot.Recipient, text string) error {
	_, err := h.b.Send(to, text, telebot.ModeMarkdown)
	return err
}

// sendCard sends the rendered progress card with the caption, degrading to
// a text-only reply when rendering fails.
func (h *messageHandler) sendCard(to *telebot.User, p model.Profile, caption string) error {
	// A calculation error (no target, bad stored fields) still renders the
	// placeholder card; the caption carries the explanation.
	res, _ := progress.Calculate(p, h.trk.Now())

	img, err := render.Card(p, res, h.profilePhoto(to))
	if err != nil {
		h.log.WithField("userId", to.ID).WithError(err).Warn("card rendering failed, sending text only")
		return h.reply(to, caption)
	}

	photo := &telebot.Photo{
		File:    telebot.FromReader(bytes.NewReader(img)),
		Caption: caption,
	}
	if _, err := h.b.Send(to, photo, telebot.ModeMarkdown); err != nil {
		return h.reply(to, caption)
	}
	return nil
}

// profilePhoto fetches the user's profile photo bytes, best-effort.
func (h *messageHandler) profilePhoto(user *telebot.User) []byte {
	photos, err := h.b.ProfilePhotosOf(user)
	if err != nil || len(photos) == 0 {
		if err != nil {
			h.log.WithField("userId", user.ID).WithError(err).Debug("could not fetch profile photo")
		}
		return nil
	}

	rc, err := h.b.File(&photos[0].File)
	if err != nil {
		h.log.WithField("userId", user.ID).WithError(err).Debug("could not download profile photo")
		return nil
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil
	}
	return raw
}

// statusText builds the textual progress summary, including the friendly
// no-target and data-error outcomes.
func (h *messageHandler) statusText(p model.Profile) string {
	lang := p.Language
	res, err := progress.Calculate(p, h.trk.Now())

	if errors.Is(err, progress.ErrNoTarget) {
		return locale.T(lang, "no_target")
	}
	var fieldErr *progress.FieldError
	if errors.As(err, &fieldErr) {
		return fmt.Sprintf(locale.T(lang, "data_error"), fieldErr.Field)
	}

	t := p.Target
	currency := p.Currency

	text := fmt.Sprintf("👤 %s: %s\n", locale.T(lang, "label_name"), orNotSet(lang, p.Name))
	text += fmt.Sprintf("📅 %s %d • %s %s\n", locale.T(lang, "label_day"), res.DaysPassed+1, locale.T(lang, "label_since"), p.StartDate)
	text += fmt.Sprintf("🎯 %s: %s\n", locale.T(lang, "label_target"), locale.FormatMoney(currency, t.TargetAmount.InexactFloat64()))
	text += fmt.Sprintf("💰 %s: %s\n", locale.T(lang, "label_start"), locale.FormatMoney(currency, t.StartAmount.InexactFloat64()))
	text += fmt.Sprintf("📈 %s: %s%% %s %s\n", locale.T(lang, "label_rate"), t.Rate.String(), locale.T(lang, "label_per"), t.Mode)
	text += fmt.Sprintf("🎯 %s: %s\n", locale.T(lang, "label_expected"), locale.FormatMoney(currency, res.ExpectedBalance))
	text += fmt.Sprintf("💵 %s: %s\n", locale.T(lang, "label_profit_goal"), locale.FormatMoney(currency, res.TodayProfitGoal))
	text += fmt.Sprintf("📉 %s: %s\n", locale.T(lang, "label_stoploss"), stoplossLevelLine(lang, currency, res))
	text += fmt.Sprintf("💼 %s: %s\n", locale.T(lang, "label_balance"), locale.FormatMoney(currency, res.CurrentBalance))
	text += fmt.Sprintf("✅ %s: %s\n", locale.T(lang, "label_status"), locale.Status(lang, res.Status))

	if res.CurrentBalance >= t.TargetAmount.InexactFloat64() {
		text += locale.T(lang, "target_achieved") + "\n"
	}
	return text
}

func (h *messageHandler) sendResetConfirmation(to telebot.Recipient, lang string) error {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(locale.T(lang, "btn_yes"), "confirm_reset")),
		markup.Row(markup.Data(locale.T(lang, "btn_no"), "cancel_reset")),
	)
	_, err := h.b.Send(to, locale.T(lang, "reset_prompt"), markup, telebot.ModeMarkdown)
	return err
}

func stoplossLevelLine(lang, currency string, res progress.Result) string {
	if res.StoplossLevel == nil {
		return locale.T(lang, "label_not_set")
	}
	return locale.FormatMoney(currency, *res.StoplossLevel)
}

func stoplossLine(lang string, p model.Profile) string {
	if p.Stoploss == nil {
		return locale.T(lang, "label_not_set")
	}
	return p.Stoploss.String() + "%"
}

func targetLine(p model.Profile) string {
	if !p.HasTarget() {
		return locale.T(p.Language, "label_not_set")
	}
	return locale.FormatMoney(p.Currency, p.Target.TargetAmount.InexactFloat64())
}

func orNotSet(lang, value string) string {
	if value == "" {
		return locale.T(lang, "label_not_set")
	}
	return value
}

func onOff(enabled bool) string {
	if enabled {
		return "✅"
	}
	return "❌"
}
