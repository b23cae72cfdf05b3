// Package reminder fires the daily closing-balance reminder.
package reminder

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"compounding-bot/internal/locale"
	"compounding-bot/internal/storage"
)

// Scheduler runs one cron job at a fixed wall-clock time in a fixed zone
// and sends the reminder to every eligible user. Delivery is best-effort:
// a failed send is logged and the loop moves on.
type Scheduler struct {
	cron  *cron.Cron
	b     *telebot.Bot
	store *storage.Storage
	log   *logrus.Logger
	hour  int
	min   int
}

func NewScheduler(b *telebot.Bot, store *storage.Storage, log *logrus.Logger, loc *time.Location, hour, minute int) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithLocation(loc)),
		b:     b,
		store: store,
		log:   log,
		hour:  hour,
		min:   minute,
	}
}

func (s *Scheduler) Start() error {
	spec := fmt.Sprintf("%d %d * * *", s.min, s.hour)
	if _, err := s.cron.AddFunc(spec, s.sendReminders); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Infof("reminder scheduled daily at %02d:%02d", s.hour, s.min)
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// sendReminders notifies every user with reminders enabled and a target set.
func (s *Scheduler) sendReminders() {
	users := s.store.AllUsers()
	sent := 0
	for id, p := range users {
		if !p.Reminders || !p.HasTarget() {
			continue
		}
		text := locale.T(p.Language, "reminder_prompt")
		if _, err := s.b.Send(&telebot.User{ID: id}, text, telebot.ModeMarkdown); err != nil {
			s.log.WithField("userId", id).WithError(err).Warn("failed to send reminder")
			continue
		}
		sent++
	}
	s.log.WithField("sent", sent).Info("daily reminders dispatched")
}
