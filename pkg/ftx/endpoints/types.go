package endpoints

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ftxrest/pkg/ftx"
)

// Side is the direction of an order or trade.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

func (s Side) valid() bool {
	return s == Buy || s == Sell
}

type OrderType string

const (
	LimitOrder  OrderType = "limit"
	MarketOrder OrderType = "market"
)

func (t OrderType) valid() bool {
	return t == LimitOrder || t == MarketOrder
}

type OrderStatus string

const (
	OrderNew    OrderStatus = "new"
	OrderOpen   OrderStatus = "open"
	OrderClosed OrderStatus = "closed"
)

type MarketType string

const (
	SpotMarket   MarketType = "spot"
	FutureMarket MarketType = "future"
)

type FutureType string

const (
	PerpetualFuture  FutureType = "perpetual"
	DatedFuture      FutureType = "future"
	MoveFuture       FutureType = "move"
	PredictionFuture FutureType = "prediction"
)

// SortOrder selects the ordering of history queries. The exchange returns
// newest first unless Ascending is requested.
type SortOrder int

const (
	Descending SortOrder = iota
	Ascending
)

// Resolution is a candle window length in seconds.
type Resolution int

const (
	Resolution15s Resolution = 15
	Resolution1m  Resolution = 60
	Resolution5m  Resolution = 300
	Resolution15m Resolution = 900
	Resolution1h  Resolution = 3600
	Resolution4h  Resolution = 14400
	Resolution1d  Resolution = 86400
)

// ResolutionDays returns a window of n days; the exchange accepts 1 to 30.
func ResolutionDays(n int) Resolution {
	return Resolution(n) * Resolution1d
}

func (r Resolution) Duration() time.Duration {
	return time.Duration(r) * time.Second
}

func (r Resolution) validate() error {
	switch r {
	case Resolution15s, Resolution1m, Resolution5m, Resolution15m, Resolution1h, Resolution4h:
		return nil
	}
	if r > 0 && r%Resolution1d == 0 && r/Resolution1d <= 30 {
		return nil
	}
	return invalid("resolution", fmt.Sprintf("unsupported window of %d seconds", int(r)))
}

// MaxBookDepth is the deepest order book the exchange returns.
const MaxBookDepth = 100

// AccountLeverage is one of the leverage levels the exchange allows.
type AccountLeverage int

var accountLeverages = map[AccountLeverage]struct{}{
	1: {}, 2: {}, 3: {}, 5: {}, 10: {}, 20: {},
}

func (l AccountLeverage) validate() error {
	if _, ok := accountLeverages[l]; !ok {
		return invalid("leverage", fmt.Sprintf("%d is not one of 1, 2, 3, 5, 10, 20", int(l)))
	}
	return nil
}

// UnmarshalJSON accepts the float form the exchange reports, e.g. 10.0.
func (l *AccountLeverage) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	if f != math.Trunc(f) {
		return fmt.Errorf("leverage %v is not a whole number", f)
	}
	*l = AccountLeverage(f)
	return nil
}

// UnixMillis is a millisecond timestamp the exchange sends as a float.
type UnixMillis int64

func (u *UnixMillis) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid unix timestamp %s: %w", b, err)
	}
	if f < 0 {
		return fmt.Errorf("invalid unix timestamp %s", b)
	}
	*u = UnixMillis(f)
	return nil
}

func (u UnixMillis) Time() time.Time {
	return time.UnixMilli(int64(u)).UTC()
}

// OrderID addresses an order either by the exchange id or by the client id
// given when it was placed.
type OrderID struct {
	id       int64
	clientID string
}

func ExchangeOrderID(id int64) OrderID {
	return OrderID{id: id}
}

func ClientOrderID(id string) OrderID {
	return OrderID{clientID: id}
}

func (o OrderID) String() string {
	if o.clientID != "" {
		return "client:" + o.clientID
	}
	return strconv.FormatInt(o.id, 10)
}

func (o OrderID) pathParam() (ftx.PathParam, error) {
	if o.clientID != "" {
		return ftx.PathParam{Name: "order_id", Value: "by_client_id/" + url.PathEscape(o.clientID), Raw: true}, nil
	}
	if o.id <= 0 {
		return ftx.PathParam{}, invalid("order id", "neither an exchange id nor a client id is set")
	}
	return ftx.PathParam{Name: "order_id", Value: strconv.FormatInt(o.id, 10)}, nil
}

// NewClientID returns a random client order id.
func NewClientID() string {
	return uuid.NewString()
}

func invalid(field, reason string) error {
	return &ftx.ConstructionError{Field: field, Reason: reason}
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func timeRange(start, end time.Time) error {
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return invalid("end_time", "before start_time")
	}
	return nil
}

// Shared method sets. A descriptor embeds one of these and overrides Query
// or Body where it has parameters.

type publicGet struct{}

func (publicGet) Method() string             { return http.MethodGet }
func (publicGet) Authenticated() bool        { return false }
func (publicGet) Query() (url.Values, error) { return nil, nil }
func (publicGet) Body() ([]byte, error)      { return nil, nil }

type privateGet struct{}

func (privateGet) Method() string             { return http.MethodGet }
func (privateGet) Authenticated() bool        { return true }
func (privateGet) Query() (url.Values, error) { return nil, nil }
func (privateGet) Body() ([]byte, error)      { return nil, nil }

type privatePost struct{}

func (privatePost) Method() string             { return http.MethodPost }
func (privatePost) Authenticated() bool        { return true }
func (privatePost) Query() (url.Values, error) { return nil, nil }

type privateDelete struct{}

func (privateDelete) Method() string             { return http.MethodDelete }
func (privateDelete) Authenticated() bool        { return true }
func (privateDelete) Query() (url.Values, error) { return nil, nil }
