package endpoints

import (
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"ftxrest/pkg/ftx"
)

type Fill struct {
	ID            int64           `json:"id"`
	Market        string          `json:"market"`
	Future        string          `json:"future"`
	BaseCurrency  string          `json:"baseCurrency"`
	QuoteCurrency string          `json:"quoteCurrency"`
	Side          Side            `json:"side"`
	Price         decimal.Decimal `json:"price"`
	Size          decimal.Decimal `json:"size"`
	OrderID       int64           `json:"orderId"`
	TradeID       int64           `json:"tradeId"`
	Time          time.Time       `json:"time"`
	// Type is "order" or "otc".
	Type string `json:"type"`
	// Liquidity is "maker" or "taker".
	Liquidity   string          `json:"liquidity"`
	Fee         decimal.Decimal `json:"fee"`
	FeeCurrency string          `json:"feeCurrency"`
	FeeRate     decimal.Decimal `json:"feeRate"`
}

// GetFills lists the account's fills, newest first unless Order is
// Ascending.
type GetFills struct {
	ftx.Returns[[]Fill]
	privateGet

	Market    string    `url:"market,omitempty"`
	StartTime time.Time `url:"start_time,omitempty,unix"`
	EndTime   time.Time `url:"end_time,omitempty,unix"`
	OrderID   int64     `url:"orderId,omitempty"`
	Order     SortOrder `url:"-"`
}

func (GetFills) Path() string { return "/fills" }

func (r GetFills) Query() (url.Values, error) {
	if err := timeRange(r.StartTime, r.EndTime); err != nil {
		return nil, err
	}
	v, err := ftx.EncodeQuery(r)
	if err != nil {
		return nil, err
	}
	if r.Order == Ascending {
		if v == nil {
			v = url.Values{}
		}
		v.Set("order", "asc")
	}
	return v, nil
}
