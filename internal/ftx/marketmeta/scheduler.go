package marketmeta

import (
	"context"
	"time"

	"ftxrest/internal/ftx/snapshot"

	"go.uber.org/zap"
)

// DailyRefresher re-runs a market load at startup, at the next UTC midnight
// and every 24 hours after that.
type DailyRefresher struct {
	Load   func(ctx context.Context) <-chan string
	Logger *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

func DefaultLoadFn(loader *snapshot.MarketLoader) func(ctx context.Context) <-chan string {
	return func(ctx context.Context) <-chan string {
		marketCh := make(chan string, 100)

		go func() {
			// the loader logs the failure and closes the channel
			_ = loader.LoadMarkets(ctx, marketCh)
		}()

		return marketCh
	}
}

// Start runs proc for every load until ctx is done. proc must drain the
// channel it is given.
func (r *DailyRefresher) Start(ctx context.Context, proc func(<-chan string)) {
	go r.run(ctx, proc)
}

func (r *DailyRefresher) run(ctx context.Context, proc func(<-chan string)) {
	r.runOnce(ctx, proc)

	timer := time.NewTimer(untilNextMidnight(r.now()))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		r.runOnce(ctx, proc)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (r *DailyRefresher) runOnce(ctx context.Context, proc func(<-chan string)) {
	if r.Logger != nil {
		r.Logger.Info("refreshing markets")
	}
	proc(r.Load(ctx))
}

func (r *DailyRefresher) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func untilNextMidnight(now time.Time) time.Duration {
	now = now.UTC()
	next := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
	return next.Sub(now)
}
