package endpoints

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"ftxrest/pkg/ftx"
)

type Order struct {
	ID            int64               `json:"id"`
	ClientID      string              `json:"clientId"`
	Market        string              `json:"market"`
	Future        string              `json:"future"`
	Side          Side                `json:"side"`
	Type          OrderType           `json:"type"`
	Status        OrderStatus         `json:"status"`
	Price         decimal.NullDecimal `json:"price"`
	Size          decimal.Decimal     `json:"size"`
	AvgFillPrice  decimal.NullDecimal `json:"avgFillPrice"`
	FilledSize    decimal.Decimal     `json:"filledSize"`
	RemainingSize decimal.Decimal     `json:"remainingSize"`
	ReduceOnly    bool                `json:"reduceOnly"`
	Ioc           bool                `json:"ioc"`
	PostOnly      bool                `json:"postOnly"`
	Liquidation   bool                `json:"liquidation"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// GetOpenOrders lists open orders, optionally of a single market.
type GetOpenOrders struct {
	ftx.Returns[[]Order]
	privateGet

	Market string `url:"market,omitempty"`
}

func (GetOpenOrders) Path() string { return "/orders" }

func (r GetOpenOrders) Query() (url.Values, error) {
	return ftx.EncodeQuery(r)
}

type GetOrderHistory struct {
	ftx.Returns[[]Order]
	privateGet

	Market    string    `url:"market,omitempty"`
	Side      Side      `url:"side,omitempty"`
	OrderType OrderType `url:"orderType,omitempty"`
	StartTime time.Time `url:"start_time,omitempty,unix"`
	EndTime   time.Time `url:"end_time,omitempty,unix"`
}

func (GetOrderHistory) Path() string { return "/orders/history" }

func (r GetOrderHistory) Query() (url.Values, error) {
	if r.Side != "" && !r.Side.valid() {
		return nil, invalid("side", string(r.Side))
	}
	if r.OrderType != "" && !r.OrderType.valid() {
		return nil, invalid("orderType", string(r.OrderType))
	}
	if err := timeRange(r.StartTime, r.EndTime); err != nil {
		return nil, err
	}
	return ftx.EncodeQuery(r)
}

type GetOrderStatus struct {
	ftx.Returns[Order]
	privateGet
	path string
}

func NewGetOrderStatus(id OrderID) (*GetOrderStatus, error) {
	path, err := orderPath("/orders/{order_id}", id)
	if err != nil {
		return nil, err
	}
	return &GetOrderStatus{path: path}, nil
}

func (r *GetOrderStatus) Path() string { return r.path }

// PlaceOrder submits a new order. Limit orders need a price; market orders
// must leave it unset and are sent with a null price.
type PlaceOrder struct {
	ftx.Returns[Order]
	privatePost

	Market            string
	Side              Side
	Type              OrderType
	Price             decimal.NullDecimal
	Size              decimal.Decimal
	ReduceOnly        bool
	Ioc               bool
	PostOnly          bool
	ClientID          string
	RejectOnPriceBand bool
	// RejectAfter drops the order if the exchange receives it later.
	RejectAfter time.Time
}

type placeOrderPayload struct {
	Market            string       `json:"market"`
	Side              Side         `json:"side"`
	Price             *json.Number `json:"price"`
	Type              OrderType    `json:"type"`
	Size              json.Number  `json:"size"`
	ReduceOnly        bool         `json:"reduceOnly,omitempty"`
	Ioc               bool         `json:"ioc,omitempty"`
	PostOnly          bool         `json:"postOnly,omitempty"`
	ClientID          string       `json:"clientId,omitempty"`
	RejectOnPriceBand bool         `json:"rejectOnPriceBand,omitempty"`
	RejectAfterTs     int64        `json:"rejectAfterTs,omitempty"`
}

func (PlaceOrder) Path() string { return "/orders" }

func (r PlaceOrder) Body() ([]byte, error) {
	if r.Market == "" {
		return nil, invalid("market", "is empty")
	}
	if !r.Side.valid() {
		return nil, invalid("side", "must be buy or sell")
	}
	if !r.Type.valid() {
		return nil, invalid("type", "must be limit or market")
	}
	if !r.Size.IsPositive() {
		return nil, invalid("size", "must be positive")
	}

	p := placeOrderPayload{
		Market:            r.Market,
		Side:              r.Side,
		Type:              r.Type,
		Size:              number(r.Size),
		ReduceOnly:        r.ReduceOnly,
		Ioc:               r.Ioc,
		PostOnly:          r.PostOnly,
		ClientID:          r.ClientID,
		RejectOnPriceBand: r.RejectOnPriceBand,
	}

	switch r.Type {
	case LimitOrder:
		if !r.Price.Valid || !r.Price.Decimal.IsPositive() {
			return nil, invalid("price", "limit orders need a positive price")
		}
		price := number(r.Price.Decimal)
		p.Price = &price
	case MarketOrder:
		if r.Price.Valid {
			return nil, invalid("price", "market orders take no price")
		}
	}
	if !r.RejectAfter.IsZero() {
		p.RejectAfterTs = r.RejectAfter.Unix()
	}
	return ftx.EncodeBody(p)
}

// EditOrder replaces an order; the exchange cancels the old one and
// returns the new one.
type EditOrder struct {
	ftx.Returns[Order]
	privatePost
	path string

	Price    decimal.NullDecimal
	Size     decimal.NullDecimal
	ClientID string
}

type editOrderPayload struct {
	Price    *json.Number `json:"price,omitempty"`
	Size     *json.Number `json:"size,omitempty"`
	ClientID string       `json:"clientId,omitempty"`
}

func NewEditOrder(id OrderID) (*EditOrder, error) {
	path, err := orderPath("/orders/{order_id}/modify", id)
	if err != nil {
		return nil, err
	}
	return &EditOrder{path: path}, nil
}

func (r *EditOrder) Path() string { return r.path }

func (r *EditOrder) Body() ([]byte, error) {
	var p editOrderPayload
	if r.Price.Valid {
		if !r.Price.Decimal.IsPositive() {
			return nil, invalid("price", "must be positive")
		}
		price := number(r.Price.Decimal)
		p.Price = &price
	}
	if r.Size.Valid {
		if !r.Size.Decimal.IsPositive() {
			return nil, invalid("size", "must be positive")
		}
		size := number(r.Size.Decimal)
		p.Size = &size
	}
	if p.Price == nil && p.Size == nil {
		return nil, invalid("body", "edit needs a new price or size")
	}
	p.ClientID = r.ClientID
	return ftx.EncodeBody(p)
}

// CancelOrder queues one order for cancellation. The result is the
// exchange's acknowledgement text.
type CancelOrder struct {
	ftx.Returns[string]
	privateDelete
	path string
}

func NewCancelOrder(id OrderID) (*CancelOrder, error) {
	path, err := orderPath("/orders/{order_id}", id)
	if err != nil {
		return nil, err
	}
	return &CancelOrder{path: path}, nil
}

func (r *CancelOrder) Path() string { return r.path }

func (r *CancelOrder) Body() ([]byte, error) { return nil, nil }

// CancelAllOrders cancels every open order matching the filters.
type CancelAllOrders struct {
	ftx.Returns[string]
	privateDelete

	Market          string
	Side            Side
	LimitOrdersOnly bool
}

func (CancelAllOrders) Path() string { return "/orders" }

func (r CancelAllOrders) Body() ([]byte, error) {
	if r.Side != "" && !r.Side.valid() {
		return nil, invalid("side", string(r.Side))
	}
	return ftx.EncodeBody(struct {
		Market          string `json:"market,omitempty"`
		Side            Side   `json:"side,omitempty"`
		LimitOrdersOnly bool   `json:"limitOrdersOnly,omitempty"`
	}{r.Market, r.Side, r.LimitOrdersOnly})
}

func orderPath(template string, id OrderID) (string, error) {
	param, err := id.pathParam()
	if err != nil {
		return "", err
	}
	return ftx.ExpandPath(template, param)
}
