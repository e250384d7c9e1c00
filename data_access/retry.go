package data_access

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// RetryPolicy bounds how often a failing call is reattempted. The zero
// value is not useful; use DefaultRetryPolicy unless a test needs shorter
// delays.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultRetryPolicy matches the bot's historical behavior: three attempts
// with a fixed five second pause between them.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Delay: 5 * time.Second}
}

// Do runs fn until it succeeds or the attempt budget is spent. Each failed
// attempt is logged at warn level; the final failure is returned wrapped.
// The wait between attempts is cancellable through ctx.
func (p RetryPolicy) Do(ctx context.Context, log zerolog.Logger, op string, fn func() error) error {
	var err error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err = fn()
		if err == nil {
			return nil
		}

		log.Warn().
			Err(err).
			Str("operation", op).
			Int("attempt", attempt).
			Int("max_attempts", p.MaxAttempts).
			Msg("Attempt failed")

		if attempt < p.MaxAttempts {
			select {
			case <-time.After(p.Delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	log.Error().Err(err).Str("operation", op).Msg("Max retries reached")
	return fmt.Errorf("%s: max retry attempts reached: %w", op, err)
}
