package endpoints

import (
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"ftxrest/pkg/ftx"
)

type Market struct {
	Name                  string              `json:"name"`
	Type                  MarketType          `json:"type"`
	Underlying            string              `json:"underlying"`
	BaseCurrency          string              `json:"baseCurrency"`
	QuoteCurrency         string              `json:"quoteCurrency"`
	Enabled               bool                `json:"enabled"`
	Ask                   decimal.NullDecimal `json:"ask"`
	Bid                   decimal.NullDecimal `json:"bid"`
	Last                  decimal.NullDecimal `json:"last"`
	Price                 decimal.NullDecimal `json:"price"`
	PostOnly              bool                `json:"postOnly"`
	PriceIncrement        decimal.Decimal     `json:"priceIncrement"`
	SizeIncrement         decimal.Decimal     `json:"sizeIncrement"`
	MinProvideSize        decimal.Decimal     `json:"minProvideSize"`
	Restricted            bool                `json:"restricted"`
	TokenizedEquity       bool                `json:"tokenizedEquity"`
	HighLeverageFeeExempt bool                `json:"highLeverageFeeExempt"`
	PriceHigh24h          decimal.NullDecimal `json:"priceHigh24h"`
	PriceLow24h           decimal.NullDecimal `json:"priceLow24h"`
	Change1h              decimal.NullDecimal `json:"change1h"`
	Change24h             decimal.NullDecimal `json:"change24h"`
	ChangeBod             decimal.NullDecimal `json:"changeBod"`
	QuoteVolume24h        decimal.NullDecimal `json:"quoteVolume24h"`
	VolumeUsd24h          decimal.NullDecimal `json:"volumeUsd24h"`
	LargeOrderThreshold   decimal.Decimal     `json:"largeOrderThreshold"`
	IsEtfMarket           bool                `json:"isEtfMarket"`
}

// OrderBook levels are [price, size] pairs, best first.
type OrderBook struct {
	Asks [][2]decimal.Decimal `json:"asks"`
	Bids [][2]decimal.Decimal `json:"bids"`
}

type Trade struct {
	ID          int64           `json:"id"`
	Liquidation bool            `json:"liquidation"`
	Price       decimal.Decimal `json:"price"`
	Side        Side            `json:"side"`
	Size        decimal.Decimal `json:"size"`
	Time        time.Time       `json:"time"`
}

type Candle struct {
	Open      decimal.Decimal     `json:"open"`
	High      decimal.Decimal     `json:"high"`
	Low       decimal.Decimal     `json:"low"`
	Close     decimal.Decimal     `json:"close"`
	Volume    decimal.NullDecimal `json:"volume"`
	StartTime time.Time           `json:"startTime"`
	Time      UnixMillis          `json:"time"`
}

// GetMarkets lists every market.
type GetMarkets struct {
	ftx.Returns[[]Market]
	publicGet
}

func (GetMarkets) Path() string { return "/markets" }

type GetMarket struct {
	ftx.Returns[Market]
	publicGet
	path string
}

func NewGetMarket(market string) (*GetMarket, error) {
	path, err := ftx.ExpandPath("/markets/{market_name}", ftx.PathParam{Name: "market_name", Value: market})
	if err != nil {
		return nil, err
	}
	return &GetMarket{path: path}, nil
}

func (r *GetMarket) Path() string { return r.path }

// GetOrderBook returns an order book snapshot.
type GetOrderBook struct {
	ftx.Returns[OrderBook]
	publicGet
	path string

	// Depth is the number of levels per side, at most MaxBookDepth.
	// Zero leaves the exchange default.
	Depth int `url:"depth,omitempty"`
}

func NewGetOrderBook(market string, depth int) (*GetOrderBook, error) {
	path, err := ftx.ExpandPath("/markets/{market_name}/orderbook", ftx.PathParam{Name: "market_name", Value: market})
	if err != nil {
		return nil, err
	}
	r := &GetOrderBook{path: path, Depth: depth}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *GetOrderBook) validate() error {
	if r.Depth < 0 || r.Depth > MaxBookDepth {
		return invalid("depth", fmt.Sprintf("%d is outside 1..%d", r.Depth, MaxBookDepth))
	}
	return nil
}

func (r *GetOrderBook) Path() string { return r.path }

func (r *GetOrderBook) Query() (url.Values, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	return ftx.EncodeQuery(r)
}

// GetTrades returns trades of one market, optionally bounded in time.
type GetTrades struct {
	ftx.Returns[[]Trade]
	publicGet
	path string

	StartTime time.Time `url:"start_time,omitempty,unix"`
	EndTime   time.Time `url:"end_time,omitempty,unix"`
}

func NewGetTrades(market string) (*GetTrades, error) {
	path, err := ftx.ExpandPath("/markets/{market_name}/trades", ftx.PathParam{Name: "market_name", Value: market})
	if err != nil {
		return nil, err
	}
	return &GetTrades{path: path}, nil
}

func (r *GetTrades) Path() string { return r.path }

func (r *GetTrades) Query() (url.Values, error) {
	if err := timeRange(r.StartTime, r.EndTime); err != nil {
		return nil, err
	}
	return ftx.EncodeQuery(r)
}

// GetCandles returns historical prices of one market.
type GetCandles struct {
	ftx.Returns[[]Candle]
	publicGet
	path string

	Resolution Resolution `url:"resolution"`
	StartTime  time.Time  `url:"start_time,omitempty,unix"`
	EndTime    time.Time  `url:"end_time,omitempty,unix"`
}

func NewGetCandles(market string, resolution Resolution) (*GetCandles, error) {
	if err := resolution.validate(); err != nil {
		return nil, err
	}
	path, err := ftx.ExpandPath("/markets/{market_name}/candles", ftx.PathParam{Name: "market_name", Value: market})
	if err != nil {
		return nil, err
	}
	return &GetCandles{path: path, Resolution: resolution}, nil
}

func (r *GetCandles) Path() string { return r.path }

func (r *GetCandles) Query() (url.Values, error) {
	if err := r.Resolution.validate(); err != nil {
		return nil, err
	}
	if err := timeRange(r.StartTime, r.EndTime); err != nil {
		return nil, err
	}
	return ftx.EncodeQuery(r)
}
