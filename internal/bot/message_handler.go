package bot

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"compounding-bot/internal/config"
	"compounding-bot/internal/export"
	"compounding-bot/internal/locale"
	"compounding-bot/internal/model"
	"compounding-bot/internal/storage"
	"compounding-bot/internal/tracker"
)

type messageHandler struct {
	b     *telebot.Bot
	store *storage.Storage
	trk   *tracker.Tracker
	cfg   *config.Config
	log   *logrus.Logger

	// consume routes a free-text message to the validator of the
	// conversation state currently awaiting input. Adding a flow is one
	// table entry.
	consume map[model.Awaiting]func(*telebot.Message, model.Profile) error
}

func newMessageHandler(b *telebot.Bot, storageInstance *storage.Storage, trk *tracker.Tracker, cfg *config.Config, log *logrus.Logger) *messageHandler {
	h := &messageHandler{b: b, store: storageInstance, trk: trk, cfg: cfg, log: log}
	h.consume = map[model.Awaiting]func(*telebot.Message, model.Profile) error{
		model.AwaitingTarget:    h.consumeTarget,
		model.AwaitingClosing:   h.consumeClosing,
		model.AwaitingStoploss:  h.consumeStoploss,
		model.AwaitingName:      h.consumeName,
		model.AwaitingRateMode:  h.consumeRateMode,
		model.AwaitingCurrency:  h.consumeCurrency,
		model.AwaitingBroadcast: h.consumeBroadcast,
		model.AwaitingLanguage:  h.consumeLanguage,
	}
	return h
}

// handleOnText routes by the persisted awaiting state; idle users get the
// unknown-input hint.
func (h *messageHandler) handleOnText(m *telebot.Message) error {
	p := h.store.GetUser(m.Sender.ID)
	fn, ok := h.consume[p.Awaiting]
	if !ok {
		return h.reply(m.Sender, locale.T(p.Language, "unknown_command"))
	}
	return fn(m, p)
}

func (h *messageHandler) handleStart(m *telebot.Message) error {
	firstName := m.Sender.FirstName
	err := h.store.UpdateUser(m.Sender.ID, func(p *model.Profile) {
		if p.Name == "" {
			p.Name = firstName
		}
	})
	if err != nil {
		return err
	}

	p := h.store.GetUser(m.Sender.ID)
	return h.sendCard(m.Sender, p, locale.T(p.Language, "welcome"))
}

func (h *messageHandler) handleHelp(m *telebot.Message) error {
	p := h.store.GetUser(m.Sender.ID)
	return h.reply(m.Sender, locale.T(p.Language, "help"))
}

func (h *messageHandler) handleStatus(m *telebot.Message) error {
	p := h.store.GetUser(m.Sender.ID)
	caption := locale.T(p.Language, "status_summary") + "\n\n" + h.statusText(p)
	return h.sendCard(m.Sender, p, caption)
}

func (h *messageHandler) handleTarget(m *telebot.Message) error {
	p := h.store.GetUser(m.Sender.ID)
	if p.HasTarget() {
		return h.reply(m.Sender, locale.T(p.Language, "target_exists"))
	}
	if err := h.trk.Await(m.Sender.ID, model.AwaitingTarget); err != nil {
		return err
	}
	return h.reply(m.Sender, locale.T(p.Language, "target_prompt"))
}

func (h *messageHandler) handleClose(m *telebot.Message) error {
	p := h.store.GetUser(m.Sender.ID)
	if !p.HasTarget() {
		return h.reply(m.Sender, locale.T(p.Language, "no_target"))
	}
	if err := h.trk.Await(m.Sender.ID, model.AwaitingClosing); err != nil {
		return err
	}
	return h.reply(m.Sender, locale.T(p.Language, "close_prompt"))
}

func (h *messageHandler) handleSettings(m *telebot.Message) error {
	p := h.store.GetUser(m.Sender.ID)
	lang := p.Language

	summary := fmt.Sprintf("⚙️ *%s*\n\n", locale.T(lang, "settings_prompt"))
	summary += fmt.Sprintf("👤 %s: %s\n", locale.T(lang, "label_name"), orNotSet(lang, p.Name))
	summary += fmt.Sprintf("💰 %s: %s\n", locale.T(lang, "label_target"), targetLine(p))
	summary += fmt.Sprintf("📉 %s: %s\n", locale.T(lang, "label_stoploss"), stoplossLine(lang, p))
	summary += fmt.Sprintf("⏰ %s: %s\n", locale.T(lang, "btn_toggle_reminders"), onOff(p.Reminders))

	markup := &telebot.ReplyMarkup{}
	rows := []telebot.Row{
		markup.Row(markup.Data(locale.T(lang, "btn_edit_target"), "edit_target")),
		markup.Row(markup.Data(locale.T(lang, "btn_edit_stoploss"), "edit_stoploss")),
		markup.Row(markup.Data(locale.T(lang, "btn_edit_name"), "edit_name")),
		markup.Row(markup.Data(locale.T(lang, "btn_edit_rate_mode"), "edit_rate_mode")),
		markup.Row(markup.Data(locale.T(lang, "btn_edit_currency"), "edit_currency")),
		markup.Row(markup.Data(locale.T(lang, "btn_update_balance"), "update_balance")),
		markup.Row(markup.Data(locale.T(lang, "btn_toggle_reminders"), "toggle_reminders")),
		markup.Row(markup.Data(locale.T(lang, "btn_reset"), "reset")),
	}
	markup.Inline(rows...)

	_, err := h.b.Send(m.Sender, summary, markup, telebot.ModeMarkdown)
	return err
}

func (h *messageHandler) handleReset(m *telebot.Message) error {
	p := h.store.GetUser(m.Sender.ID)
	return h.sendResetConfirmation(m.Sender, p.Language)
}

func (h *messageHandler) handleExport(m *telebot.Message) error {
	p := h.store.GetUser(m.Sender.ID)

	buf, err := export.Report(p)
	if err != nil {
		return errors.Wrap(err, "generating export")
	}
	if buf == nil {
		return h.reply(m.Sender, locale.T(p.Language, "no_history"))
	}

	doc := &telebot.Document{
		File:     telebot.FromReader(buf),
		FileName: "progress_report.xlsx",
		Caption:  locale.T(p.Language, "export_success"),
	}
	_, err = h.b.Send(m.Sender, doc)
	return err
}

func (h *messageHandler) handleLanguage(m *telebot.Message) error {
	p := h.store.GetUser(m.Sender.ID)
	if err := h.trk.Await(m.Sender.ID, model.AwaitingLanguage); err != nil {
		return err
	}
	return h.reply(m.Sender, locale.T(p.Language, "language_prompt"))
}

func (h *messageHandler) handleBroadcast(m *telebot.Message) error {
	p := h.store.GetUser(m.Sender.ID)
	if !h.isOwner(m.Sender.ID) {
		return h.reply(m.Sender, locale.T(p.Language, "owner_only"))
	}
	if err := h.trk.Await(m.Sender.ID, model.AwaitingBroadcast); err != nil {
		return err
	}
	return h.reply(m.Sender, locale.T(p.Language, "broadcast_prompt"))
}

func (h *messageHandler) handleCancel(m *telebot.Message) error {
	p := h.store.GetUser(m.Sender.ID)
	if err := h.trk.Cancel(m.Sender.ID); err != nil {
		return err
	}
	return h.reply(m.Sender, locale.T(p.Language, "cancel"))
}

func (h *messageHandler) consumeTarget(m *telebot.Message, p model.Profile) error {
	target, err := tracker.ParseTarget(m.Text)
	if err != nil {
		return h.reply(m.Sender, locale.T(p.Language, "target_invalid"))
	}
	if err := h.trk.SetTarget(m.Sender.ID, target); err != nil {
		if errors.Is(err, tracker.ErrTargetExists) {
			_ = h.trk.Cancel(m.Sender.ID)
			return h.reply(m.Sender, locale.T(p.Language, "target_exists"))
		}
		return err
	}
	return h.reply(m.Sender, locale.T(p.Language, "target_set"))
}

func (h *messageHandler) consumeClosing(m *telebot.Message, p model.Profile) error {
	balance, err := tracker.ParseBalance(m.Text)
	if err != nil {
		return h.reply(m.Sender, locale.T(p.Language, "close_invalid"))
	}

	res, err := h.trk.RecordClosing(m.Sender.ID, balance)
	if err != nil {
		if errors.Is(err, tracker.ErrNoTarget) {
			_ = h.trk.Cancel(m.Sender.ID)
			return h.reply(m.Sender, locale.T(p.Language, "no_target"))
		}
		return err
	}

	if res.StoplossHit {
		if err := h.reply(m.Sender, locale.T(p.Language, "stoploss_alert")); err != nil {
			return err
		}
	}
	if res.TargetAchieved {
		if err := h.reply(m.Sender, locale.T(p.Language, "target_achieved")); err != nil {
			return err
		}
	}
	return h.reply(m.Sender, locale.T(p.Language, "balance_recorded"))
}

func (h *messageHandler) consumeStoploss(m *telebot.Message, p model.Profile) error {
	percent, err := tracker.ParseStoploss(m.Text)
	if err != nil {
		return h.reply(m.Sender, locale.T(p.Language, "stoploss_invalid"))
	}
	if err := h.trk.SetStoploss(m.Sender.ID, percent); err != nil {
		return err
	}
	return h.reply(m.Sender, fmt.Sprintf(locale.T(p.Language, "stoploss_set"), percent.String()))
}

func (h *messageHandler) consumeName(m *telebot.Message, p model.Profile) error {
	name, err := tracker.ValidateName(m.Text)
	if err != nil {
		return h.reply(m.Sender, locale.T(p.Language, "name_invalid"))
	}
	if err := h.trk.SetName(m.Sender.ID, name); err != nil {
		return err
	}
	return h.reply(m.Sender, fmt.Sprintf(locale.T(p.Language, "name_set"), name))
}

func (h *messageHandler) consumeRateMode(m *telebot.Message, p model.Profile) error {
	rate, mode, err := tracker.ParseRateMode(m.Text)
	if err != nil {
		return h.reply(m.Sender, locale.T(p.Language, "rate_mode_invalid"))
	}
	if err := h.trk.SetRateMode(m.Sender.ID, rate, mode); err != nil {
		if errors.Is(err, tracker.ErrNoTarget) {
			_ = h.trk.Cancel(m.Sender.ID)
			return h.reply(m.Sender, locale.T(p.Language, "no_target"))
		}
		return err
	}
	return h.reply(m.Sender, fmt.Sprintf(locale.T(p.Language, "rate_mode_set"), rate.String(), mode))
}

func (h *messageHandler) consumeCurrency(m *telebot.Message, p model.Profile) error {
	currency, err := tracker.ValidateCurrency(m.Text)
	if err != nil {
		return h.reply(m.Sender, locale.T(p.Language, "currency_invalid"))
	}
	if err := h.trk.SetCurrency(m.Sender.ID, currency); err != nil {
		return err
	}
	return h.reply(m.Sender, fmt.Sprintf(locale.T(p.Language, "currency_set"), currency))
}

func (h *messageHandler) consumeLanguage(m *telebot.Message, p model.Profile) error {
	lang, err := tracker.ParseLanguage(m.Text)
	if err != nil {
		return h.reply(m.Sender, locale.T(p.Language, "language_invalid"))
	}
	if err := h.trk.SetLanguage(m.Sender.ID, lang); err != nil {
		return err
	}
	return h.reply(m.Sender, locale.T(lang, "language_set"))
}

func (h *messageHandler) consumeBroadcast(m *telebot.Message, p model.Profile) error {
	if !h.isOwner(m.Sender.ID) {
		_ = h.trk.Cancel(m.Sender.ID)
		return h.reply(m.Sender, locale.T(p.Language, "owner_only"))
	}

	message, err := tracker.ValidateBroadcast(m.Text)
	if err != nil {
		return h.reply(m.Sender, locale.T(p.Language, "broadcast_invalid"))
	}
	if err := h.trk.Cancel(m.Sender.ID); err != nil {
		return err
	}

	sent, failed := h.runBroadcast(message)
	return h.reply(m.Sender, fmt.Sprintf(locale.T(p.Language, "broadcast_done"), sent, failed))
}

func (h *messageHandler) isOwner(userID int64) bool {
	return h.cfg.OwnerID != 0 && userID == h.cfg.OwnerID
}
