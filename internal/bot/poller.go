package bot

import (
	"context"
	"log"
	"time"
)

const (
	pollTimeoutSeconds = 30
	pollRetryDelay     = 5 * time.Second
)

// UpdateSource produces batches of incoming updates, usually via long
// polling.
type UpdateSource interface {
	GetUpdates(ctx context.Context, offset int64, timeoutSeconds int) ([]Update, error)
}

// Poller pulls updates from the Telegram API and feeds them into the
// dispatcher until its context is cancelled.
type Poller struct {
	source     UpdateSource
	dispatcher *Dispatcher
}

// NewPoller builds a poller for the given update source.
func NewPoller(source UpdateSource, dispatcher *Dispatcher) *Poller {
	return &Poller{source: source, dispatcher: dispatcher}
}

// Run blocks, polling for updates until ctx is done. Poll failures are
// logged and retried after a delay.
func (p *Poller) Run(ctx context.Context) error {
	var offset int64

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		updates, err := p.source.GetUpdates(ctx, offset, pollTimeoutSeconds)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Printf("bot: polling failed: %v", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(pollRetryDelay):
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			p.dispatcher.HandleUpdate(ctx, update)
		}
	}
}
