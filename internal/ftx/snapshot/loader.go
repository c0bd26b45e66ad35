package snapshot

import (
	"context"
	"time"

	"ftxrest/pkg/ftx"
	"ftxrest/pkg/ftx/endpoints"

	"go.uber.org/zap"
)

type MarketLoader struct {
	Client  *ftx.Client
	Timeout time.Duration
	// Type keeps only markets of this type when set.
	Type endpoints.MarketType
	// Allow keeps only the named markets when non-empty.
	Allow  []string
	Logger *zap.Logger
}

// LoadMarkets fetches the market list and streams the names of enabled
// markets that pass the filters into ch. ch is always closed.
func (l *MarketLoader) LoadMarkets(ctx context.Context, ch chan<- string) error {
	defer close(ch) // Ensure downstream consumers can exit cleanly

	markets, err := ftx.Fetch[[]endpoints.Market](ctx, l.Client, endpoints.GetMarkets{}, l.Timeout)
	if err != nil {
		l.logger().Error("failed to load markets", zap.Error(err))
		return err
	}

	selected := l.filter(markets)
	l.logger().Info("loaded markets", zap.Int("total", len(markets)), zap.Int("selected", len(selected)))

	for _, name := range selected {
		select {
		case ch <- name:
		case <-ctx.Done():
			l.logger().Warn("market streaming interrupted", zap.Error(ctx.Err()))
			return ctx.Err()
		}
	}
	return nil
}

func (l *MarketLoader) filter(markets []endpoints.Market) []string {
	var allow map[string]bool
	if len(l.Allow) > 0 {
		allow = make(map[string]bool, len(l.Allow))
		for _, m := range l.Allow {
			allow[m] = true
		}
	}

	out := make([]string, 0, len(markets))
	for _, m := range markets {
		if !m.Enabled {
			continue
		}
		if l.Type != "" && m.Type != l.Type {
			continue
		}
		if allow != nil && !allow[m.Name] {
			continue
		}
		out = append(out, m.Name)
	}
	return out
}

func (l *MarketLoader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}
