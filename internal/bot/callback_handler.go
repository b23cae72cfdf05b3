package bot

import (
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"compounding-bot/internal/locale"
	"compounding-bot/internal/model"
	"compounding-bot/internal/storage"
	"compounding-bot/internal/tracker"
)

type callbackHandler struct {
	b     *telebot.Bot
	store *storage.Storage
	trk   *tracker.Tracker
	msg   *messageHandler
	log   *logrus.Logger
}

func newCallbackHandler(b *telebot.Bot, storageInstance *storage.Storage, trk *tracker.Tracker, msg *messageHandler, log *logrus.Logger) *callbackHandler {
	return &callbackHandler{
		b:     b,
		store: storageInstance,
		trk:   trk,
		msg:   msg,
		log:   log,
	}
}

func (h *callbackHandler) handleCallback(c *telebot.Callback) error {
	_ = h.b.Respond(c)

	action := strings.TrimSpace(strings.ReplaceAll(c.Data, "\f", ""))
	if i := strings.IndexByte(action, '|'); i >= 0 {
		action = action[:i]
	}
	if action == "" {
		h.log.Warnf("empty callback from user %d", c.Sender.ID)
		return nil
	}

	userID := c.Sender.ID
	p := h.store.GetUser(userID)
	lang := p.Language
	h.log.WithField("userId", userID).Infof("settings callback: %s", action)

	switch action {
	case "edit_target":
		if p.HasTarget() {
			return h.msg.reply(c.Sender, locale.T(lang, "target_exists"))
		}
		return h.prompt(c.Sender, userID, model.AwaitingTarget, locale.T(lang, "target_prompt"))

	case "edit_stoploss":
		return h.prompt(c.Sender, userID, model.AwaitingStoploss, locale.T(lang, "stoploss_prompt"))

	case "edit_name":
		return h.prompt(c.Sender, userID, model.AwaitingName, locale.T(lang, "name_prompt"))

	case "edit_rate_mode":
		if !p.HasTarget() {
			return h.msg.reply(c.Sender, locale.T(lang, "no_target"))
		}
		return h.prompt(c.Sender, userID, model.AwaitingRateMode, locale.T(lang, "rate_mode_prompt"))

	case "edit_currency":
		return h.prompt(c.Sender, userID, model.AwaitingCurrency, locale.T(lang, "currency_prompt"))

	case "update_balance":
		return h.prompt(c.Sender, userID, model.AwaitingClosing, locale.T(lang, "close_prompt"))

	case "toggle_reminders":
		enabled, err := h.trk.ToggleReminders(userID)
		if err != nil {
			return err
		}
		key := "reminders_off"
		if enabled {
			key = "reminders_on"
		}
		return h.msg.reply(c.Sender, locale.T(lang, key))

	case "reset":
		return h.msg.sendResetConfirmation(c.Sender, lang)

	case "confirm_reset":
		if err := h.trk.Reset(userID); err != nil {
			return err
		}
		return h.msg.reply(c.Sender, locale.T(lang, "reset_done"))

	case "cancel_reset":
		return h.msg.reply(c.Sender, locale.T(lang, "reset_cancelled"))

	default:
		h.log.Warnf("unknown callback %q from user %d", action, userID)
		return h.msg.reply(c.Sender, locale.T(lang, "unknown_command"))
	}
}

// prompt persists the awaiting state and asks for the corresponding input.
func (h *callbackHandler) prompt(to telebot.Recipient, userID int64, state model.Awaiting, text string) error {
	if err := h.trk.Await(userID, state); err != nil {
		return err
	}
	return h.msg.reply(to, text)
}
