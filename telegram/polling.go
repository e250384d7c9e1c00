package telegram

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// errorBackoff is how long the poll loop sleeps after a failed getUpdates
// before trying again.
const errorBackoff = 3 * time.Second

// HandlerFunc processes one inbound update.
type HandlerFunc func(ctx context.Context, upd Update)

// Poller drives getUpdates long polling and dispatches each update to the
// handler on its own goroutine, so one slow handler never stalls the rest
// of the queue.
type Poller struct {
	client  *Client
	handler HandlerFunc
	log     zerolog.Logger
	offset  int64
}

func NewPoller(client *Client, handler HandlerFunc, log zerolog.Logger) *Poller {
	return &Poller{
		client:  client,
		handler: handler,
		log:     log.With().Str("component", "poller").Logger(),
	}
}

// Run polls until ctx is cancelled. The offset advances past every update
// that was dispatched, which acknowledges it to the Bot API; an update is
// therefore delivered to the handler at most once.
func (p *Poller) Run(ctx context.Context) error {
	p.log.Info().Msg("Starting long polling")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		updates, err := p.client.GetUpdates(ctx, p.offset)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.log.Error().Err(err).Msg("getUpdates failed")
			select {
			case <-time.After(errorBackoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		for _, upd := range updates {
			if upd.UpdateID >= p.offset {
				p.offset = upd.UpdateID + 1
			}
			go p.handler(ctx, upd)
		}
	}
}
