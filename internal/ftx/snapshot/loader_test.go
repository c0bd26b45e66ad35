package snapshot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftxrest/pkg/ftx"
	"ftxrest/pkg/ftx/endpoints"
)

const marketsBody = `{"success":true,"result":[
{"name":"BTC-PERP","type":"future","enabled":true,"priceIncrement":1,"sizeIncrement":0.0001,"minProvideSize":0.0001,"largeOrderThreshold":5000},
{"name":"BTC/USD","type":"spot","enabled":true,"priceIncrement":1,"sizeIncrement":0.0001,"minProvideSize":0.0001,"largeOrderThreshold":5000},
{"name":"LUNA-PERP","type":"future","enabled":false,"priceIncrement":1,"sizeIncrement":0.0001,"minProvideSize":0.0001,"largeOrderThreshold":5000},
{"name":"ETH-PERP","type":"future","enabled":true,"priceIncrement":0.1,"sizeIncrement":0.001,"minProvideSize":0.001,"largeOrderThreshold":5000}
]}`

func newTestClient(t *testing.T, status int, body string) *ftx.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/markets", r.URL.Path)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client, err := ftx.NewClient(nil, ftx.ClientConfig{BaseURL: srv.URL + "/api"})
	require.NoError(t, err)
	return client
}

func collect(ch <-chan string) []string {
	var out []string
	for m := range ch {
		out = append(out, m)
	}
	return out
}

// go test -v --run TestLoadMarkets
func TestLoadMarketsEnabledOnly(t *testing.T) {
	l := &MarketLoader{Client: newTestClient(t, http.StatusOK, marketsBody)}

	ch := make(chan string, 10)
	require.NoError(t, l.LoadMarkets(context.Background(), ch))
	assert.Equal(t, []string{"BTC-PERP", "BTC/USD", "ETH-PERP"}, collect(ch))
}

func TestLoadMarketsFilters(t *testing.T) {
	l := &MarketLoader{
		Client: newTestClient(t, http.StatusOK, marketsBody),
		Type:   endpoints.FutureMarket,
		Allow:  []string{"ETH-PERP", "BTC/USD", "LUNA-PERP"},
	}

	ch := make(chan string, 10)
	require.NoError(t, l.LoadMarkets(context.Background(), ch))
	assert.Equal(t, []string{"ETH-PERP"}, collect(ch))
}

func TestLoadMarketsExchangeError(t *testing.T) {
	l := &MarketLoader{Client: newTestClient(t, http.StatusServiceUnavailable, `{"success":false,"error":"Please retry request"}`)}

	ch := make(chan string, 10)
	err := l.LoadMarkets(context.Background(), ch)

	var exErr *ftx.ExchangeError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, "Please retry request", exErr.Message)
	assert.Empty(t, collect(ch))
}

func TestLoadMarketsCanceledWhileStreaming(t *testing.T) {
	l := &MarketLoader{Client: newTestClient(t, http.StatusOK, marketsBody)}

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan string) // unbuffered, nobody reads

	done := make(chan error, 1)
	go func() { done <- l.LoadMarkets(ctx, ch) }()
	cancel()

	err := <-done
	// the fetch itself may observe the cancellation first
	assert.Error(t, err)
	_, open := <-ch
	assert.False(t, open)
}
