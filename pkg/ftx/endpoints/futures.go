package endpoints

import (
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"ftxrest/pkg/ftx"
)

type Future struct {
	Name                  string              `json:"name"`
	Underlying            string              `json:"underlying"`
	Description           string              `json:"description"`
	UnderlyingDescription string              `json:"underlyingDescription"`
	ExpiryDescription     string              `json:"expiryDescription"`
	Type                  FutureType          `json:"type"`
	Group                 string              `json:"group"`
	Expiry                *time.Time          `json:"expiry"`
	Perpetual             bool                `json:"perpetual"`
	Expired               bool                `json:"expired"`
	Enabled               bool                `json:"enabled"`
	PostOnly              bool                `json:"postOnly"`
	PriceIncrement        decimal.Decimal     `json:"priceIncrement"`
	SizeIncrement         decimal.Decimal     `json:"sizeIncrement"`
	Last                  decimal.NullDecimal `json:"last"`
	Bid                   decimal.NullDecimal `json:"bid"`
	Ask                   decimal.NullDecimal `json:"ask"`
	Index                 decimal.NullDecimal `json:"index"`
	Mark                  decimal.NullDecimal `json:"mark"`
	ImfFactor             decimal.Decimal     `json:"imfFactor"`
	LowerBound            decimal.NullDecimal `json:"lowerBound"`
	UpperBound            decimal.NullDecimal `json:"upperBound"`
	MarginPrice           decimal.NullDecimal `json:"marginPrice"`
	PositionLimitWeight   decimal.Decimal     `json:"positionLimitWeight"`
	Change1h              decimal.NullDecimal `json:"change1h"`
	Change24h             decimal.NullDecimal `json:"change24h"`
	ChangeBod             decimal.NullDecimal `json:"changeBod"`
	VolumeUsd24h          decimal.NullDecimal `json:"volumeUsd24h"`
	Volume                decimal.NullDecimal `json:"volume"`
	OpenInterest          decimal.NullDecimal `json:"openInterest"`
	OpenInterestUsd       decimal.NullDecimal `json:"openInterestUsd"`
	MoveStart             *time.Time          `json:"moveStart"`
}

type FutureStats struct {
	Volume                   decimal.Decimal     `json:"volume"`
	NextFundingRate          decimal.NullDecimal `json:"nextFundingRate"`
	NextFundingTime          *time.Time          `json:"nextFundingTime"`
	ExpirationPrice          decimal.NullDecimal `json:"expirationPrice"`
	PredictedExpirationPrice decimal.NullDecimal `json:"predictedExpirationPrice"`
	StrikePrice              decimal.NullDecimal `json:"strikePrice"`
	OpenInterest             decimal.Decimal     `json:"openInterest"`
}

type FundingRate struct {
	Future string          `json:"future"`
	Rate   decimal.Decimal `json:"rate"`
	Time   time.Time       `json:"time"`
}

// GetFutures lists every future, expired ones excluded.
type GetFutures struct {
	ftx.Returns[[]Future]
	publicGet
}

func (GetFutures) Path() string { return "/futures" }

type GetFuture struct {
	ftx.Returns[Future]
	publicGet
	path string
}

func NewGetFuture(future string) (*GetFuture, error) {
	path, err := ftx.ExpandPath("/futures/{future_name}", ftx.PathParam{Name: "future_name", Value: future})
	if err != nil {
		return nil, err
	}
	return &GetFuture{path: path}, nil
}

func (r *GetFuture) Path() string { return r.path }

// GetFutureStats includes the predicted funding rate of perpetuals.
type GetFutureStats struct {
	ftx.Returns[FutureStats]
	publicGet
	path string
}

func NewGetFutureStats(future string) (*GetFutureStats, error) {
	path, err := ftx.ExpandPath("/futures/{future_name}/stats", ftx.PathParam{Name: "future_name", Value: future})
	if err != nil {
		return nil, err
	}
	return &GetFutureStats{path: path}, nil
}

func (r *GetFutureStats) Path() string { return r.path }

// GetFundingRates returns historical funding rates, optionally of a single
// perpetual.
type GetFundingRates struct {
	ftx.Returns[[]FundingRate]
	publicGet

	Future    string    `url:"future,omitempty"`
	StartTime time.Time `url:"start_time,omitempty,unix"`
	EndTime   time.Time `url:"end_time,omitempty,unix"`
}

func (GetFundingRates) Path() string { return "/funding_rates" }

func (r GetFundingRates) Query() (url.Values, error) {
	if err := timeRange(r.StartTime, r.EndTime); err != nil {
		return nil, err
	}
	return ftx.EncodeQuery(r)
}

type GetExpiredFutures struct {
	ftx.Returns[[]Future]
	publicGet
}

func (GetExpiredFutures) Path() string { return "/expired_futures" }
