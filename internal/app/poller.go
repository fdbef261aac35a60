package app

import (
	"context"
	"errors"
	"time"

	"github.com/five82/liftlog/internal/logging"
	"github.com/five82/liftlog/internal/pages"
	"github.com/five82/liftlog/internal/routes"
	"github.com/five82/liftlog/internal/state"
)

const (
	defaultPollInterval = 15 * time.Second
	maxBackoff          = 30 * time.Second
)

// PageLoader loads the page for a resolved route.
type PageLoader interface {
	Load(ctx context.Context, m routes.Match) (pages.Page, error)
}

// StartPoller launches a background goroutine that reloads the store's
// current target at a fixed cadence, backing off after failures. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, loader PageLoader, interval time.Duration, logger logging.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = logging.Nop()
	}
	go func() {
		failures := 0
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			if err := refresh(ctx, store, loader); err != nil {
				if ctx.Err() != nil {
					return
				}
				failures++
				logger.Warn(ctx, "page poll failed", logging.Int("failures", failures), logging.Err(err))
			} else {
				failures = 0
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// refresh loads the store's current target once. Results for a target the
// user navigated away from meanwhile are dropped by the store.
func refresh(ctx context.Context, store *state.Store, loader PageLoader) error {
	target, gen, ok := store.Target()
	if !ok {
		return nil
	}
	page, err := loader.Load(ctx, target)
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return err
		}
		store.Update(gen, nil, err)
		return err
	}
	store.Update(gen, &page, nil)
	return nil
}

// calculateBackoff doubles base for each consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
