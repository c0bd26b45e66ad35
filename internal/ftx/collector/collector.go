package collector

import (
	"context"
	"sync/atomic"
	"time"

	"ftxrest/pkg/ftx"
	"ftxrest/pkg/ftx/endpoints"
	"ftxrest/pkg/storage/postgres"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Archive stores fills and funding payments. Inserts skip records that are
// already present and report the number of new rows.
type Archive interface {
	InsertFills(ctx context.Context, records []*postgres.FillRecord) (int64, error)
	LatestFillTime(ctx context.Context, account, market string) (time.Time, error)
	InsertFundingPayments(ctx context.Context, records []*postgres.FundingPaymentRecord) (int64, error)
	LatestFundingTime(ctx context.Context, account string) (time.Time, error)
}

type MarketSource interface {
	GetAll() []string
}

// Collector copies the account's fills and funding payments into an
// Archive. Request pacing happens here; the client never delays calls.
type Collector struct {
	Client  *ftx.Client
	Archive Archive
	Markets MarketSource
	// Account labels stored rows, usually the subaccount name or "main".
	Account     string
	Concurrency int
	Limiter     *rate.Limiter
	Timeout     time.Duration
	Logger      *zap.Logger

	// FillPageSize is the most fills the exchange returns per call; a full
	// page triggers a follow-up call. Defaults to DefaultFillPageSize.
	FillPageSize int
}

const DefaultFillPageSize = 5000

type SyncResult struct {
	Markets  int
	Fetched  int64
	Inserted int64
}

// SyncFills fetches fills per market starting at since, or at the newest
// archived fill of the market when that is later. Full pages are followed
// by another call starting at the last fill returned.
func (c *Collector) SyncFills(ctx context.Context, since time.Time) (SyncResult, error) {
	markets := c.Markets.GetAll()
	res := SyncResult{Markets: len(markets)}
	var fetched, inserted atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(c.concurrency())

	for _, market := range markets {
		market := market
		g.Go(func() error {
			f, n, err := c.syncMarketFills(ctx, market, since)
			fetched.Add(f)
			inserted.Add(n)
			if err != nil {
				c.logger().Warn("fill sync failed", zap.String("market", market), zap.Error(err))
				return err
			}
			c.logger().Info("fills synced", zap.String("market", market), zap.Int64("fetched", f), zap.Int64("inserted", n))
			return nil
		})
	}

	err := g.Wait()
	res.Fetched = fetched.Load()
	res.Inserted = inserted.Load()
	return res, err
}

func (c *Collector) syncMarketFills(ctx context.Context, market string, since time.Time) (int64, int64, error) {
	latest, err := c.Archive.LatestFillTime(ctx, c.Account, market)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "failed latest fill time %s", market)
	}
	start := since
	if latest.After(start) {
		start = latest
	}

	var fetched, inserted int64
	for {
		if err := c.wait(ctx); err != nil {
			return fetched, inserted, err
		}
		fills, err := ftx.Fetch[[]endpoints.Fill](ctx, c.Client, endpoints.GetFills{
			Market:    market,
			StartTime: start,
			Order:     endpoints.Ascending,
		}, c.Timeout)
		if err != nil {
			return fetched, inserted, errors.Wrapf(err, "failed get fills %s", market)
		}
		fetched += int64(len(fills))

		records := make([]*postgres.FillRecord, 0, len(fills))
		for _, f := range fills {
			records = append(records, postgres.ToFillRecord(c.Account, f))
		}
		n, err := c.Archive.InsertFills(ctx, records)
		if err != nil {
			return fetched, inserted, errors.Wrapf(err, "failed insert fills %s", market)
		}
		inserted += n

		if len(fills) < c.fillPageSize() {
			return fetched, inserted, nil
		}

		// start_time has second resolution and is inclusive, so the next
		// page repeats the last second; the archive drops the repeats
		next := fills[len(fills)-1].Time.Truncate(time.Second)
		if !next.After(start) {
			c.logger().Warn("full fill page within one second, remaining fills skipped",
				zap.String("market", market), zap.Time("start", start), zap.Int("page", len(fills)))
			return fetched, inserted, nil
		}
		start = next
	}
}

// SyncFundingPayments fetches the account's funding payments in one call.
func (c *Collector) SyncFundingPayments(ctx context.Context, since time.Time) (SyncResult, error) {
	var res SyncResult

	latest, err := c.Archive.LatestFundingTime(ctx, c.Account)
	if err != nil {
		return res, errors.Wrap(err, "failed latest funding time")
	}
	start := since
	if latest.After(start) {
		start = latest
	}

	if err := c.wait(ctx); err != nil {
		return res, err
	}
	payments, err := ftx.Fetch[[]endpoints.FundingPayment](ctx, c.Client, endpoints.GetFundingPayments{
		StartTime: start,
	}, c.Timeout)
	if err != nil {
		return res, errors.Wrap(err, "failed get funding payments")
	}
	res.Fetched = int64(len(payments))

	records := make([]*postgres.FundingPaymentRecord, 0, len(payments))
	for _, p := range payments {
		records = append(records, postgres.ToFundingPaymentRecord(c.Account, p))
	}
	res.Inserted, err = c.Archive.InsertFundingPayments(ctx, records)
	if err != nil {
		return res, errors.Wrap(err, "failed insert funding payments")
	}

	c.logger().Info("funding payments synced", zap.Int64("fetched", res.Fetched), zap.Int64("inserted", res.Inserted))
	return res, nil
}

func (c *Collector) wait(ctx context.Context) error {
	if c.Limiter == nil {
		return nil
	}
	return errors.Wrap(c.Limiter.Wait(ctx), "failed rate wait")
}

func (c *Collector) fillPageSize() int {
	if c.FillPageSize <= 0 {
		return DefaultFillPageSize
	}
	return c.FillPageSize
}

func (c *Collector) concurrency() int {
	if c.Concurrency <= 0 {
		return 1
	}
	return c.Concurrency
}

func (c *Collector) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
