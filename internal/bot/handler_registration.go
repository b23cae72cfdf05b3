package bot

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"compounding-bot/internal/config"
	"compounding-bot/internal/locale"
	"compounding-bot/internal/storage"
	"compounding-bot/internal/tracker"
)

// RegisterHandlers wires every command, the free-text dispatcher and the
// settings callbacks. Each handler is wrapped so a failure is logged and
// answered with a generic apology instead of reaching the poller.
func RegisterHandlers(b *telebot.Bot, storageInstance *storage.Storage, trk *tracker.Tracker, cfg *config.Config, log *logrus.Logger) {
	msgHandler := newMessageHandler(b, storageInstance, trk, cfg, log)
	cbHandler := newCallbackHandler(b, storageInstance, trk, msgHandler, log)

	commands := map[string]func(*telebot.Message) error{
		"/start":     msgHandler.handleStart,
		"/help":      msgHandler.handleHelp,
		"/status":    msgHandler.handleStatus,
		"/target":    msgHandler.handleTarget,
		"/close":     msgHandler.handleClose,
		"/settings":  msgHandler.handleSettings,
		"/reset":     msgHandler.handleReset,
		"/export":    msgHandler.handleExport,
		"/language":  msgHandler.handleLanguage,
		"/broadcast": msgHandler.handleBroadcast,
		"/cancel":    msgHandler.handleCancel,
	}
	for command, handler := range commands {
		command, handler := command, handler
		b.Handle(command, func(ctx telebot.Context) error {
			msgHandler.run(command, handler, ctx.Message())
			return nil
		})
	}

	b.Handle(telebot.OnText, func(ctx telebot.Context) error {
		msgHandler.run("text", msgHandler.handleOnText, ctx.Message())
		return nil
	})

	b.Handle(telebot.OnCallback, func(ctx telebot.Context) error {
		cb := ctx.Callback()
		if err := cbHandler.handleCallback(cb); err != nil {
			log.WithField("userId", cb.Sender.ID).WithError(err).Error("error handling callback")
			p := storageInstance.GetUser(cb.Sender.ID)
			_ = msgHandler.reply(cb.Sender, locale.T(p.Language, "generic_error"))
		}
		return nil
	})
}

// run executes a message handler and converts any returned error into a log
// line plus a generic user-facing failure message.
func (h *messageHandler) run(name string, fn func(*telebot.Message) error, m *telebot.Message) {
	if m == nil {
		return
	}
	if err := fn(m); err != nil {
		h.log.WithField("userId", m.Sender.ID).WithError(err).Errorf("error handling %s", name)
		p := h.store.GetUser(m.Sender.ID)
		_ = h.reply(m.Sender, locale.T(p.Language, "generic_error"))
	}
}
