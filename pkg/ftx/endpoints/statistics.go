package endpoints

import (
	"net/url"

	"github.com/shopspring/decimal"

	"ftxrest/pkg/ftx"
)

type LatencyStatistics struct {
	Bursty       bool            `json:"bursty"`
	P50          decimal.Decimal `json:"p50"`
	RequestCount int64           `json:"requestCount"`
}

// GetLatencyStatistics reports order latency over the last Days days
// (exchange default when zero).
type GetLatencyStatistics struct {
	ftx.Returns[[]LatencyStatistics]
	privateGet

	Days               int    `url:"days,omitempty"`
	SubaccountNickname string `url:"subaccount_nickname,omitempty"`
}

func (GetLatencyStatistics) Path() string { return "/stats/latency_stats" }

func (r GetLatencyStatistics) Query() (url.Values, error) {
	if r.Days < 0 {
		return nil, invalid("days", "must not be negative")
	}
	return ftx.EncodeQuery(r)
}
