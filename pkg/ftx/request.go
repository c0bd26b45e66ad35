package ftx

import (
	"encoding/json"
	"net/url"

	"github.com/google/go-querystring/query"
)

// Endpoint describes one API call. Implementations are data-only values;
// every method must be deterministic so the bytes that are signed are the
// bytes that are sent.
type Endpoint interface {
	// Method is the HTTP method, e.g. http.MethodGet.
	Method() string
	// Path is the fully substituted path relative to the API root,
	// e.g. "/markets/BTC-PERP".
	Path() string
	// Query returns the query parameters, or nil for none.
	Query() (url.Values, error)
	// Body returns the serialized request body, or nil for none.
	Body() ([]byte, error)
	// Authenticated reports whether the call must be signed.
	Authenticated() bool
}

// Request is an Endpoint whose successful result decodes into T.
type Request[T any] interface {
	Endpoint
	result() *T
}

// Returns declares the result type of an endpoint descriptor. Embed it:
//
//	type GetMarket struct {
//		ftx.Returns[Market]
//		...
//	}
type Returns[T any] struct{}

func (Returns[T]) result() *T { return nil }

// EncodeQuery encodes a struct tagged for go-querystring. A nil params value
// produces no query.
func EncodeQuery(params interface{}) (url.Values, error) {
	if params == nil {
		return nil, nil
	}
	v, err := query.Values(params)
	if err != nil {
		return nil, constructionErr("query", "cannot encode parameters", err)
	}
	if len(v) == 0 {
		return nil, nil
	}
	return v, nil
}

// EncodeBody marshals a request payload. Struct field order fixes the key
// order, so equal payloads always produce equal bytes.
func EncodeBody(payload interface{}) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, constructionErr("body", "cannot encode payload", err)
	}
	return b, nil
}
