package endpoints

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftxrest/pkg/ftx"
)

func TestPathConstructors(t *testing.T) {
	m, err := NewGetMarket("BTC-PERP")
	require.NoError(t, err)
	assert.Equal(t, "/markets/BTC-PERP", m.Path())

	ob, err := NewGetOrderBook("BTC/USD", 20)
	require.NoError(t, err)
	assert.Equal(t, "/markets/BTC/USD/orderbook", ob.Path())

	bal, err := NewGetSubaccountBalances("my sub")
	require.NoError(t, err)
	assert.Equal(t, "/subaccounts/my%20sub/balances", bal.Path())

	status, err := NewGetOrderStatus(ClientOrderID("abc-123"))
	require.NoError(t, err)
	assert.Equal(t, "/orders/by_client_id/abc-123", status.Path())

	edit, err := NewEditOrder(ExchangeOrderID(9596912))
	require.NoError(t, err)
	assert.Equal(t, "/orders/9596912/modify", edit.Path())

	var ce *ftx.ConstructionError
	_, err = NewGetMarket("")
	require.ErrorAs(t, err, &ce)
	_, err = NewCancelOrder(OrderID{})
	require.ErrorAs(t, err, &ce)
	_, err = NewGetFuture("")
	require.ErrorAs(t, err, &ce)
}

func TestOrderBookDepth(t *testing.T) {
	var ce *ftx.ConstructionError

	_, err := NewGetOrderBook("BTC-PERP", MaxBookDepth+1)
	require.ErrorAs(t, err, &ce)

	ob, err := NewGetOrderBook("BTC-PERP", MaxBookDepth)
	require.NoError(t, err)
	q, err := ob.Query()
	require.NoError(t, err)
	assert.Equal(t, "depth=100", q.Encode())

	ob.Depth = 500
	_, err = ob.Query()
	require.ErrorAs(t, err, &ce)
}

func TestCandleResolution(t *testing.T) {
	var ce *ftx.ConstructionError

	_, err := NewGetCandles("BTC-PERP", Resolution(61))
	require.ErrorAs(t, err, &ce)
	_, err = NewGetIndexCandles("BTC", ResolutionDays(31))
	require.ErrorAs(t, err, &ce)

	c, err := NewGetCandles("BTC-PERP", ResolutionDays(7))
	require.NoError(t, err)
	c.StartTime = time.Unix(1559881511, 0)
	c.EndTime = time.Unix(1559885111, 0)

	q, err := c.Query()
	require.NoError(t, err)
	assert.Equal(t, "end_time=1559885111&resolution=604800&start_time=1559881511", q.Encode())

	c.EndTime = time.Unix(1, 0)
	_, err = c.Query()
	require.ErrorAs(t, err, &ce)
}

func TestFillsQueryRoundTrip(t *testing.T) {
	r := GetFills{
		Market:    "BTC-PERP",
		StartTime: time.Unix(1564146934, 0),
		EndTime:   time.Unix(1564233334, 0),
		OrderID:   50129784137,
		Order:     Ascending,
	}
	q, err := r.Query()
	require.NoError(t, err)

	decoded, err := url.ParseQuery(q.Encode())
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"market":     {"BTC-PERP"},
		"start_time": {"1564146934"},
		"end_time":   {"1564233334"},
		"orderId":    {"50129784137"},
		"order":      {"asc"},
	}, decoded)

	q, err = GetFills{}.Query()
	require.NoError(t, err)
	assert.Empty(t, q.Encode())
}

func TestPositionsQuery(t *testing.T) {
	q, err := GetPositions{}.Query()
	require.NoError(t, err)
	assert.Nil(t, q)

	show := false
	q, err = GetPositions{ShowAvgPrice: &show}.Query()
	require.NoError(t, err)
	assert.Equal(t, "showAvgPrice=false", q.Encode())
}

func TestPlaceOrderBody(t *testing.T) {
	r := PlaceOrder{
		Market: "BTC-PERP",
		Side:   Buy,
		Type:   LimitOrder,
		Price:  decimal.NewNullDecimal(decimal.NewFromInt(8500)),
		Size:   decimal.NewFromInt(1),
	}
	a, err := r.Body()
	require.NoError(t, err)
	b, err := r.Body()
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, `{"market":"BTC-PERP","side":"buy","price":8500,"type":"limit","size":1}`, string(a))

	r.ClientID = "my-order"
	r.PostOnly = true
	r.Size = decimal.RequireFromString("0.0001")
	body, err := r.Body()
	require.NoError(t, err)
	assert.Equal(t, `{"market":"BTC-PERP","side":"buy","price":8500,"type":"limit","size":0.0001,"postOnly":true,"clientId":"my-order"}`, string(body))
}

func TestPlaceOrderValidation(t *testing.T) {
	var ce *ftx.ConstructionError

	market := PlaceOrder{Market: "BTC-PERP", Side: Sell, Type: MarketOrder, Size: decimal.NewFromInt(2)}
	body, err := market.Body()
	require.NoError(t, err)
	assert.JSONEq(t, `{"market":"BTC-PERP","side":"sell","price":null,"type":"market","size":2}`, string(body))

	market.Price = decimal.NewNullDecimal(decimal.NewFromInt(1))
	_, err = market.Body()
	require.ErrorAs(t, err, &ce)

	limit := PlaceOrder{Market: "BTC-PERP", Side: Buy, Type: LimitOrder, Size: decimal.NewFromInt(1)}
	_, err = limit.Body()
	require.ErrorAs(t, err, &ce)

	_, err = PlaceOrder{Market: "BTC-PERP", Side: "long", Type: MarketOrder, Size: decimal.NewFromInt(1)}.Body()
	require.ErrorAs(t, err, &ce)

	_, err = PlaceOrder{Market: "BTC-PERP", Side: Buy, Type: MarketOrder}.Body()
	require.ErrorAs(t, err, &ce)
}

func TestEditOrderBody(t *testing.T) {
	r, err := NewEditOrder(ClientOrderID("a"))
	require.NoError(t, err)

	_, err = r.Body()
	var ce *ftx.ConstructionError
	require.ErrorAs(t, err, &ce)

	r.Size = decimal.NewNullDecimal(decimal.RequireFromString("31431"))
	body, err := r.Body()
	require.NoError(t, err)
	assert.Equal(t, `{"size":31431}`, string(body))
}

func TestOtherBodies(t *testing.T) {
	body, err := ChangeAccountLeverage{Leverage: 10}.Body()
	require.NoError(t, err)
	assert.Equal(t, `{"leverage":10}`, string(body))

	_, err = ChangeAccountLeverage{Leverage: 4}.Body()
	var ce *ftx.ConstructionError
	require.ErrorAs(t, err, &ce)

	body, err = TransferBetweenSubaccounts{Coin: "USD", Size: decimal.NewFromInt(10), Destination: "sub"}.Body()
	require.NoError(t, err)
	assert.Equal(t, `{"coin":"USD","size":10,"source":null,"destination":"sub"}`, string(body))

	body, err = CancelAllOrders{}.Body()
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(body))

	body, err = CancelAllOrders{Market: "BTC-PERP", LimitOrdersOnly: true}.Body()
	require.NoError(t, err)
	assert.Equal(t, `{"market":"BTC-PERP","limitOrdersOnly":true}`, string(body))

	_, err = GetBorrowMarketInfo{}.Query()
	require.ErrorAs(t, err, &ce)
}

func TestDescriptorAuth(t *testing.T) {
	ob, err := NewGetOrderBook("BTC-PERP", 0)
	require.NoError(t, err)

	public := []ftx.Endpoint{GetMarkets{}, ob, GetFutures{}, GetFundingRates{}, GetExpiredFutures{}}
	for _, ep := range public {
		assert.False(t, ep.Authenticated(), ep.Path())
		assert.Equal(t, http.MethodGet, ep.Method())
	}

	cancel, err := NewCancelOrder(ExchangeOrderID(1))
	require.NoError(t, err)
	private := []ftx.Endpoint{GetAccountInformation{}, GetBalances{}, GetFills{}, PlaceOrder{}, cancel, GetBorrowRates{}, DeleteSubaccount{}}
	for _, ep := range private {
		assert.True(t, ep.Authenticated(), ep.Path())
	}
	assert.Equal(t, http.MethodDelete, cancel.Method())
}

func TestDecodeMarket(t *testing.T) {
	body := []byte(`{
  "success": true,
  "result": {
      "name": "BTC-PERP",
      "baseCurrency": null,
      "quoteCurrency": null,
      "quoteVolume24h": 28914.76,
      "change1h": 0.012,
      "change24h": 0.0299,
      "changeBod": 0.0156,
      "highLeverageFeeExempt": false,
      "minProvideSize": 0.001,
      "type": "future",
      "underlying": "BTC",
      "enabled": true,
      "ask": 3949.25,
      "bid": 3949,
      "last": 10579.52,
      "postOnly": false,
      "price": null,
      "priceIncrement": 0.25,
      "sizeIncrement": 0.0001,
      "restricted": false,
      "volumeUsd24h": 28914.76,
      "largeOrderThreshold": 5000.0,
      "isEtfMarket": false
  }
}`)
	m, err := ftx.NewResponse[Market](http.StatusOK, nil, body).Deserialize()
	require.NoError(t, err)
	assert.Equal(t, "BTC-PERP", m.Name)
	assert.Equal(t, FutureMarket, m.Type)
	assert.True(t, m.Ask.Valid)
	assert.Equal(t, "3949.25", m.Ask.Decimal.String())
	assert.False(t, m.Price.Valid)
	assert.Equal(t, "0.0001", m.SizeIncrement.String())
}

func TestDecodeCandlesAndTrades(t *testing.T) {
	candles, err := ftx.NewResponse[[]Candle](http.StatusOK, nil, []byte(`{
  "success": true,
  "result": [
    {
      "close": 11055.25,
      "high": 11089.0,
      "low": 11043.5,
      "open": 11059.25,
      "startTime": "2019-06-24T17:15:00+00:00",
      "time": 1561396500000.0,
      "volume": 464193.95725
    }
  ]
}`)).Deserialize()
	require.NoError(t, err)
	require.Len(t, candles, 1)
	assert.Equal(t, time.Date(2019, 6, 24, 17, 15, 0, 0, time.UTC), candles[0].Time.Time())
	assert.True(t, candles[0].StartTime.Equal(candles[0].Time.Time()))

	trades, err := ftx.NewResponse[[]Trade](http.StatusOK, nil, []byte(`{
  "success": true,
  "result": [
    {"id": 3855995, "liquidation": false, "price": 3857.75, "side": "buy", "size": 0.111, "time": "2019-03-20T18:16:23.397991+00:00"}
  ]
}`)).Deserialize()
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, Buy, trades[0].Side)
	assert.Equal(t, "0.111", trades[0].Size.String())
}

func TestDecodeAccountAndConstituents(t *testing.T) {
	var acct AccountInformation
	require.NoError(t, json.Unmarshal([]byte(`{"username":"user@domain.com","leverage":10.0,"futuresLeverage":20,"collateral":3568181.02307093,"positions":[]}`), &acct))
	assert.Equal(t, AccountLeverage(10), acct.Leverage)
	assert.Equal(t, AccountLeverage(20), acct.FuturesLeverage)

	var lev AccountLeverage
	assert.Error(t, json.Unmarshal([]byte(`2.5`), &lev))

	parts, err := ftx.NewResponse[[]IndexConstituent](http.StatusOK, nil,
		[]byte(`{"success":true,"result":[["binance","BTC","USDT"],["coinbase","BTC","USD"]]}`)).Deserialize()
	require.NoError(t, err)
	assert.Equal(t, IndexConstituent{Exchange: "coinbase", BaseCurrency: "BTC", QuoteCurrency: "USD"}, parts[1])

	_, err = ftx.NewResponse[[]IndexConstituent](http.StatusOK, nil,
		[]byte(`{"success":true,"result":[["binance","BTC"]]}`)).Deserialize()
	var de *ftx.DecodeError
	require.ErrorAs(t, err, &de)
}

// go test -v --run TestNullResult
func TestNullResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"result":null}`)
	}))
	defer srv.Close()

	creds, err := ftx.NewCredentials("key", "secret", "")
	require.NoError(t, err)
	client, err := ftx.NewClient(creds, ftx.ClientConfig{BaseURL: srv.URL + "/api"})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = ftx.Fetch[ftx.Empty](ctx, client, DeleteSubaccount{Nickname: "sub1"}, time.Second)
	require.NoError(t, err)
	_, err = ftx.Fetch[ftx.Empty](ctx, client, ChangeSubaccountName{Nickname: "sub1", NewNickname: "sub2"}, time.Second)
	require.NoError(t, err)
	_, err = ftx.Fetch[ftx.Empty](ctx, client, ChangeAccountLeverage{Leverage: 10}, time.Second)
	require.NoError(t, err)

	// a null where data is expected is not an empty value
	var de *ftx.DecodeError
	_, err = ftx.Fetch[[]Order](ctx, client, GetOpenOrders{}, time.Second)
	require.ErrorAs(t, err, &de)
	_, err = ftx.Fetch[AccountInformation](ctx, client, GetAccountInformation{}, time.Second)
	require.ErrorAs(t, err, &de)
}

func TestFillsPartialDecode(t *testing.T) {
	// price arrives as a string; the typed decode fails, the other fields
	// stay readable
	body := []byte(`{"success":true,"result":[{"id":11215,"market":"BTC-PERP","side":"buy","price":"n/a","size":0.0001,"time":"2019-03-05T09:56:55.728933+00:00"}]}`)
	resp := ftx.NewResponse[[]Fill](http.StatusOK, nil, body)

	_, err := resp.Deserialize()
	var de *ftx.DecodeError
	require.ErrorAs(t, err, &de)

	fills, err := resp.DeserializePartials()
	require.NoError(t, err)
	require.Len(t, fills, 1)

	id, err := ftx.Field[int64](fills[0], "id")
	require.NoError(t, err)
	assert.Equal(t, int64(11215), id)

	side, err := ftx.Field[Side](fills[0], "side")
	require.NoError(t, err)
	assert.Equal(t, Buy, side)

	size, err := ftx.Field[decimal.Decimal](fills[0], "size")
	require.NoError(t, err)
	assert.Equal(t, "0.0001", size.String())

	_, err = ftx.Field[decimal.Decimal](fills[0], "price")
	require.ErrorAs(t, err, &de)

	_, ok, err := ftx.OptField[decimal.Decimal](fills[0], "fee")
	require.NoError(t, err)
	assert.False(t, ok)
}

// go test -v --run TestOrderBookThroughClient
func TestOrderBookThroughClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/markets/BTC/USD/orderbook", r.URL.Path)
		assert.Equal(t, "depth=2", r.URL.RawQuery)
		io.WriteString(w, `{"success":true,"result":{"asks":[[4114.25,6.263],[4114.5,1.2]],"bids":[[4112.25,49.29],[4112.0,0.5]]}}`)
	}))
	defer srv.Close()

	client, err := ftx.NewClient(nil, ftx.ClientConfig{BaseURL: srv.URL + "/api"})
	require.NoError(t, err)

	req, err := NewGetOrderBook("BTC/USD", 2)
	require.NoError(t, err)

	book, err := ftx.Fetch[OrderBook](context.Background(), client, req, time.Second)
	require.NoError(t, err)
	require.Len(t, book.Asks, 2)
	assert.Equal(t, "4114.25", book.Asks[0][0].String())
	assert.Equal(t, "49.29", book.Bids[0][1].String())
}

func TestNewClientID(t *testing.T) {
	a, b := NewClientID(), NewClientID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
