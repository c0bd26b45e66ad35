package endpoints

import (
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"ftxrest/pkg/ftx"
)

type BorrowRate struct {
	Coin     string          `json:"coin"`
	Estimate decimal.Decimal `json:"estimate"`
	Previous decimal.Decimal `json:"previous"`
}

type BorrowAmount struct {
	Coin string          `json:"coin"`
	Size decimal.Decimal `json:"size"`
}

type BorrowMarket struct {
	Coin          string          `json:"coin"`
	Borrowed      decimal.Decimal `json:"borrowed"`
	Free          decimal.Decimal `json:"free"`
	EstimatedRate decimal.Decimal `json:"estimatedRate"`
	PreviousRate  decimal.Decimal `json:"previousRate"`
}

type BorrowPayment struct {
	Coin   string          `json:"coin"`
	Cost   decimal.Decimal `json:"cost"`
	FeeUsd decimal.Decimal `json:"feeUsd"`
	Rate   decimal.Decimal `json:"rate"`
	Size   decimal.Decimal `json:"size"`
	Time   time.Time       `json:"time"`
}

// GetBorrowRates returns the latest rates of every spot margin coin.
type GetBorrowRates struct {
	ftx.Returns[[]BorrowRate]
	privateGet
}

func (GetBorrowRates) Path() string { return "/spot_margin/borrow_rates" }

type GetDailyBorrowedAmounts struct {
	ftx.Returns[[]BorrowAmount]
	privateGet
}

func (GetDailyBorrowedAmounts) Path() string { return "/spot_margin/borrow_summary" }

// GetBorrowMarketInfo returns borrow figures for the base and quote coin of
// a spot market.
type GetBorrowMarketInfo struct {
	ftx.Returns[[]BorrowMarket]
	privateGet

	Market string `url:"market"`
}

func (GetBorrowMarketInfo) Path() string { return "/spot_margin/market_info" }

func (r GetBorrowMarketInfo) Query() (url.Values, error) {
	if r.Market == "" {
		return nil, invalid("market", "is empty")
	}
	return ftx.EncodeQuery(r)
}

type GetBorrowHistory struct {
	ftx.Returns[[]BorrowPayment]
	privateGet

	StartTime time.Time `url:"start_time,omitempty,unix"`
	EndTime   time.Time `url:"end_time,omitempty,unix"`
}

func (GetBorrowHistory) Path() string { return "/spot_margin/borrow_history" }

func (r GetBorrowHistory) Query() (url.Values, error) {
	if err := timeRange(r.StartTime, r.EndTime); err != nil {
		return nil, err
	}
	return ftx.EncodeQuery(r)
}
