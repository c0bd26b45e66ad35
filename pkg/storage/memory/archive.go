package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"ftxrest/pkg/storage/postgres"
)

type fillKey struct {
	account string
	id      int64
}

// Archive keeps fills and funding payments in memory with the same
// uniqueness rules as the postgres tables. Used by tests and dry runs.
type Archive struct {
	mu       sync.RWMutex
	fills    map[fillKey]postgres.FillRecord
	payments map[fillKey]postgres.FundingPaymentRecord
}

func NewArchive() *Archive {
	return &Archive{
		fills:    make(map[fillKey]postgres.FillRecord),
		payments: make(map[fillKey]postgres.FundingPaymentRecord),
	}
}

func (a *Archive) InsertFills(_ context.Context, records []*postgres.FillRecord) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var n int64
	for _, r := range records {
		k := fillKey{r.Account, r.FillID}
		if _, ok := a.fills[k]; ok {
			continue
		}
		a.fills[k] = *r
		n++
	}
	return n, nil
}

func (a *Archive) LatestFillTime(_ context.Context, account, market string) (time.Time, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var latest time.Time
	for k, r := range a.fills {
		if k.account == account && r.Market == market && r.Time.After(latest) {
			latest = r.Time
		}
	}
	return latest, nil
}

// Fills returns the stored fills of an account ordered by time.
func (a *Archive) Fills(account string) []postgres.FillRecord {
	a.mu.RLock()
	out := make([]postgres.FillRecord, 0)
	for k, r := range a.fills {
		if k.account == account {
			out = append(out, r)
		}
	}
	a.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Time.Equal(out[j].Time) {
			return out[i].FillID < out[j].FillID
		}
		return out[i].Time.Before(out[j].Time)
	})
	return out
}

func (a *Archive) InsertFundingPayments(_ context.Context, records []*postgres.FundingPaymentRecord) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var n int64
	for _, r := range records {
		k := fillKey{r.Account, r.PaymentID}
		if _, ok := a.payments[k]; ok {
			continue
		}
		a.payments[k] = *r
		n++
	}
	return n, nil
}

func (a *Archive) LatestFundingTime(_ context.Context, account string) (time.Time, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var latest time.Time
	for k, r := range a.payments {
		if k.account == account && r.Time.After(latest) {
			latest = r.Time
		}
	}
	return latest, nil
}

func (a *Archive) CountAll() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.fills) + len(a.payments)
}
