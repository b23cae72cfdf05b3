package bot

import (
	"sync"

	"gopkg.in/telebot.v3"
)

// broadcastWorkers caps the fan-out so one broadcast cannot saturate the
// transport.
const broadcastWorkers = 8

// runBroadcast delivers text to every known user, best-effort, and reports
// how many sends succeeded and failed. A failed recipient never aborts the
// rest.
func (h *messageHandler) runBroadcast(text string) (sent, failed int) {
	users := h.store.AllUsers()

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, broadcastWorkers)
	)

	for id := range users {
		id := id
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			_, err := h.b.Send(&telebot.User{ID: id}, text, telebot.ModeMarkdown)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				h.log.WithField("userId", id).WithError(err).Warn("broadcast delivery failed")
				return
			}
			sent++
		}()
	}
	wg.Wait()

	h.log.WithField("sent", sent).WithField("failed", failed).Info("broadcast finished")
	return sent, failed
}
