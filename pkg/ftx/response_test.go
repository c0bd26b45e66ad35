package ftx

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMarket struct {
	Name string  `json:"name"`
	Last float64 `json:"last"`
}

func TestDeserializeSuccess(t *testing.T) {
	body := []byte(`{"success":true,"result":{"name":"BTC-PERP","last":8500.5}}`)
	resp := NewResponse[testMarket](http.StatusOK, nil, body)

	m, err := resp.Deserialize()
	require.NoError(t, err)
	assert.Equal(t, testMarket{Name: "BTC-PERP", Last: 8500.5}, m)

	// repeatable
	again, err := resp.Deserialize()
	require.NoError(t, err)
	assert.Equal(t, m, again)
	assert.Nil(t, resp.ExchangeError())
}

func TestDeserializeExchangeError(t *testing.T) {
	body := []byte(`{"success":false,"error":"Not logged in"}`)
	resp := NewResponse[testMarket](http.StatusUnauthorized, nil, body)

	_, err := resp.Deserialize()
	var ee *ExchangeError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "Not logged in", ee.Message)
	assert.Equal(t, http.StatusUnauthorized, ee.StatusCode)
	assert.False(t, ee.RateLimited())

	peek := resp.ExchangeError()
	require.NotNil(t, peek)
	assert.Equal(t, "Not logged in", peek.Message)
}

func TestDeserializeIgnoresStatusCode(t *testing.T) {
	// a 200 with success=false is still a rejection
	resp := NewResponse[testMarket](http.StatusOK, nil, []byte(`{"success":false,"error":"Invalid parameter"}`))
	_, err := resp.Deserialize()
	var ee *ExchangeError
	require.ErrorAs(t, err, &ee)

	resp = NewResponse[testMarket](http.StatusTooManyRequests, nil, []byte(`{"success":false,"error":"Do not send more than 30 requests per second"}`))
	_, err = resp.Deserialize()
	require.ErrorAs(t, err, &ee)
	assert.True(t, ee.RateLimited())
}

func TestDeserializeDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"success without result", `{"success":true}`},
		{"not json", `<html>bad gateway</html>`},
		{"no success field", `{"result":{}}`},
		{"type mismatch", `{"success":true,"result":[1,2,3]}`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewResponse[testMarket](http.StatusOK, nil, []byte(tt.body))
			_, err := resp.Deserialize()
			var de *DecodeError
			require.ErrorAs(t, err, &de)
		})
	}
}

func TestEnvelopeAndAs(t *testing.T) {
	body := []byte(`{"success":true,"result":{"name":"ETH-PERP","last":3000}}`)
	raw := NewResponse[json.RawMessage](http.StatusOK, http.Header{"X-Test": []string{"1"}}, body)

	env, err := raw.Envelope()
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"name":"ETH-PERP","last":3000}`, string(env.Result))

	typed := As[testMarket](raw)
	m, err := typed.Deserialize()
	require.NoError(t, err)
	assert.Equal(t, "ETH-PERP", m.Name)
	assert.Equal(t, "1", typed.Header().Get("X-Test"))

	// Body hands out copies
	b := raw.Body()
	b[0] = 'x'
	assert.Equal(t, body, raw.Body())
}

// go test -v --run TestDeserializeNullResult
func TestDeserializeNullResult(t *testing.T) {
	body := []byte(`{"success":true,"result":null}`)
	var de *DecodeError

	_, err := NewResponse[testMarket](http.StatusOK, nil, body).Deserialize()
	require.ErrorAs(t, err, &de)

	orders, err := NewResponse[[]testMarket](http.StatusOK, nil, body).Deserialize()
	require.ErrorAs(t, err, &de)
	assert.Nil(t, orders)

	_, err = NewResponse[map[string]float64](http.StatusOK, nil, body).Deserialize()
	require.ErrorAs(t, err, &de)

	_, err = NewResponse[Empty](http.StatusOK, nil, body).Deserialize()
	require.NoError(t, err)

	raw, err := NewResponse[json.RawMessage](http.StatusOK, nil, body).Deserialize()
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestDeserializeStrict(t *testing.T) {
	known := NewResponse[testMarket](http.StatusOK, nil, []byte(`{"success":true,"result":{"name":"BTC-PERP","last":1}}`))
	m, err := known.DeserializeStrict()
	require.NoError(t, err)
	assert.Equal(t, "BTC-PERP", m.Name)

	extra := NewResponse[testMarket](http.StatusOK, nil, []byte(`{"success":true,"result":{"name":"BTC-PERP","last":1,"mark":2}}`))
	_, err = extra.Deserialize()
	require.NoError(t, err)

	_, err = extra.DeserializeStrict()
	var de *DecodeError
	require.ErrorAs(t, err, &de)

	_, err = NewResponse[testMarket](http.StatusOK, nil, []byte(`{"success":false,"error":"Not logged in"}`)).DeserializeStrict()
	var ee *ExchangeError
	require.ErrorAs(t, err, &ee)
}

func TestDeserializePartial(t *testing.T) {
	// "last" changed type on the exchange side
	resp := NewResponse[testMarket](http.StatusOK, nil, []byte(`{"success":true,"result":{"name":"BTC-PERP","last":"8500.5","bid":null}}`))

	_, err := resp.Deserialize()
	var de *DecodeError
	require.ErrorAs(t, err, &de)

	p, err := resp.DeserializePartial()
	require.NoError(t, err)
	assert.Equal(t, []string{"bid", "last", "name"}, p.Keys())

	name, err := Field[string](p, "name")
	require.NoError(t, err)
	assert.Equal(t, "BTC-PERP", name)

	_, err = Field[float64](p, "last")
	require.ErrorAs(t, err, &de)
	last, err := Field[string](p, "last")
	require.NoError(t, err)
	assert.Equal(t, "8500.5", last)

	_, ok, err := OptField[float64](p, "bid")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, p.Has("bid"))

	_, err = Field[float64](p, "bid")
	require.ErrorAs(t, err, &de)
	_, err = Field[float64](p, "ask")
	require.ErrorAs(t, err, &de)

	raw, ok := p.Raw("last")
	require.True(t, ok)
	assert.Equal(t, `"8500.5"`, string(raw))
}

func TestDeserializePartialErrors(t *testing.T) {
	var de *DecodeError

	_, err := NewResponse[testMarket](http.StatusOK, nil, []byte(`{"success":true,"result":[1]}`)).DeserializePartial()
	require.ErrorAs(t, err, &de)

	_, err = NewResponse[testMarket](http.StatusOK, nil, []byte(`{"success":true,"result":null}`)).DeserializePartial()
	require.ErrorAs(t, err, &de)

	_, err = NewResponse[[]testMarket](http.StatusOK, nil, []byte(`{"success":true,"result":{"name":"x"}}`)).DeserializePartials()
	require.ErrorAs(t, err, &de)

	_, err = NewResponse[[]testMarket](http.StatusOK, nil, []byte(`{"success":true,"result":[{"name":"x"},3]}`)).DeserializePartials()
	require.ErrorAs(t, err, &de)

	var ee *ExchangeError
	_, err = NewResponse[[]testMarket](http.StatusOK, nil, []byte(`{"success":false,"error":"Not logged in"}`)).DeserializePartials()
	require.ErrorAs(t, err, &ee)

	empty, err := NewResponse[[]testMarket](http.StatusOK, nil, []byte(`{"success":true,"result":[]}`)).DeserializePartials()
	require.NoError(t, err)
	assert.Empty(t, empty)
}
