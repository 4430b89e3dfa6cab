package market

import (
	"context"
	"time"
)

// withRetry reissues a fullnode call with exponential backoff until it
// succeeds or maxRetries additional attempts are spent. Only the bulk
// transaction query goes through this path; per-object follow-up lookups
// stay single-attempt so one slow node cannot multiply the feed's read cost.
func withRetry(ctx context.Context, maxRetries int, baseDelay time.Duration, call func(context.Context) error) error {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if baseDelay <= 0 {
		baseDelay = 100 * time.Millisecond
	}

	delay := baseDelay
	for attempt := 0; ; attempt++ {
		err := call(ctx)
		if err == nil {
			return nil
		}
		if attempt >= maxRetries {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
	}
}
