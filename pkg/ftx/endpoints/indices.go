package endpoints

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"ftxrest/pkg/ftx"
)

// IndexCandle has no volume; the exchange always sends null.
type IndexCandle struct {
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	StartTime time.Time       `json:"startTime"`
	Time      UnixMillis      `json:"time"`
}

// IndexConstituent is sent as an [exchange, base, quote] triple.
type IndexConstituent struct {
	Exchange      string
	BaseCurrency  string
	QuoteCurrency string
}

func (c *IndexConstituent) UnmarshalJSON(b []byte) error {
	var triple []string
	if err := json.Unmarshal(b, &triple); err != nil {
		return err
	}
	if len(triple) != 3 {
		return fmt.Errorf("index constituent has %d elements, want 3", len(triple))
	}
	c.Exchange, c.BaseCurrency, c.QuoteCurrency = triple[0], triple[1], triple[2]
	return nil
}

// GetIndexWeights returns the weight of each underlying in an index.
type GetIndexWeights struct {
	ftx.Returns[map[string]decimal.Decimal]
	publicGet
	path string
}

func NewGetIndexWeights(index string) (*GetIndexWeights, error) {
	path, err := ftx.ExpandPath("/indexes/{index_name}/weights", ftx.PathParam{Name: "index_name", Value: index})
	if err != nil {
		return nil, err
	}
	return &GetIndexWeights{path: path}, nil
}

func (r *GetIndexWeights) Path() string { return r.path }

type GetIndexCandles struct {
	ftx.Returns[[]IndexCandle]
	publicGet
	path string

	Resolution Resolution `url:"resolution"`
	StartTime  time.Time  `url:"start_time,omitempty,unix"`
	EndTime    time.Time  `url:"end_time,omitempty,unix"`
}

func NewGetIndexCandles(index string, resolution Resolution) (*GetIndexCandles, error) {
	if err := resolution.validate(); err != nil {
		return nil, err
	}
	path, err := ftx.ExpandPath("/indexes/{index_name}/candles", ftx.PathParam{Name: "index_name", Value: index})
	if err != nil {
		return nil, err
	}
	return &GetIndexCandles{path: path, Resolution: resolution}, nil
}

func (r *GetIndexCandles) Path() string { return r.path }

func (r *GetIndexCandles) Query() (url.Values, error) {
	if err := r.Resolution.validate(); err != nil {
		return nil, err
	}
	if err := timeRange(r.StartTime, r.EndTime); err != nil {
		return nil, err
	}
	return ftx.EncodeQuery(r)
}

type GetIndexConstituents struct {
	ftx.Returns[[]IndexConstituent]
	publicGet
	path string
}

func NewGetIndexConstituents(underlying string) (*GetIndexConstituents, error) {
	path, err := ftx.ExpandPath("/index_constituents/{underlying}", ftx.PathParam{Name: "underlying", Value: underlying})
	if err != nil {
		return nil, err
	}
	return &GetIndexConstituents{path: path}, nil
}

func (r *GetIndexConstituents) Path() string { return r.path }
