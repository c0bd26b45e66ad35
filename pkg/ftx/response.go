package ftx

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/tidwall/gjson"
)

// Envelope is the wrapper the exchange puts around every payload.
type Envelope struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Error   string          `json:"error"`
}

// envelope keeps presence information that Envelope drops.
type envelope struct {
	Success *bool           `json:"success"`
	Result  json.RawMessage `json:"result"`
	Error   *string         `json:"error"`
}

// Response holds the status and full body of one call. Decoding is lazy,
// side-effect free and repeatable.
type Response[T any] struct {
	statusCode int
	header     http.Header
	body       []byte
}

// RawResponse is returned by dynamic dispatch, where the result type is not
// known statically.
type RawResponse = Response[json.RawMessage]

// NewResponse wraps a status code and body; useful for replaying recorded
// payloads.
func NewResponse[T any](statusCode int, header http.Header, body []byte) *Response[T] {
	return &Response[T]{
		statusCode: statusCode,
		header:     header,
		body:       body,
	}
}

// As re-types a response for a known result type.
func As[T any](r *RawResponse) *Response[T] {
	return &Response[T]{
		statusCode: r.statusCode,
		header:     r.header,
		body:       r.body,
	}
}

func (r *Response[T]) StatusCode() int {
	return r.statusCode
}

func (r *Response[T]) Header() http.Header {
	return r.header.Clone()
}

// Body returns a copy of the raw body.
func (r *Response[T]) Body() []byte {
	return bytes.Clone(r.body)
}

func (r *Response[T]) decodeEnvelope() (envelope, error) {
	var env envelope
	if err := json.Unmarshal(r.body, &env); err != nil {
		return env, &DecodeError{Reason: "body is not a valid envelope", Err: err}
	}
	if env.Success == nil {
		return env, &DecodeError{Reason: `envelope has no "success" field`}
	}
	return env, nil
}

// Envelope decodes the generic wrapper without touching the result.
func (r *Response[T]) Envelope() (Envelope, error) {
	env, err := r.decodeEnvelope()
	if err != nil {
		return Envelope{}, err
	}
	out := Envelope{Success: *env.Success, Result: env.Result}
	if env.Error != nil {
		out.Error = *env.Error
	}
	return out, nil
}

// Deserialize unwraps the envelope and decodes the result into T. The
// envelope's success flag is authoritative; the status code is not consulted.
func (r *Response[T]) Deserialize() (T, error) {
	var out T

	result, err := r.successResult()
	if err != nil {
		return out, err
	}
	if isNull(result) {
		// only result types that opt in, such as Empty, accept null
		u, ok := any(&out).(json.Unmarshaler)
		if !ok {
			return out, &DecodeError{Reason: `envelope reports success but "result" is null`}
		}
		if err := u.UnmarshalJSON(result); err != nil {
			return out, &DecodeError{Reason: "result does not match the expected type", Err: err}
		}
		return out, nil
	}
	if err := json.Unmarshal(result, &out); err != nil {
		return out, &DecodeError{Reason: "result does not match the expected type", Err: err}
	}
	return out, nil
}

// DeserializeStrict is Deserialize but also rejects result fields that T
// does not declare. Use it to detect new fields added by the exchange.
func (r *Response[T]) DeserializeStrict() (T, error) {
	out, err := r.Deserialize()
	if err != nil {
		return out, err
	}

	result, _ := r.successResult()
	if isNull(result) {
		return out, nil
	}
	var strict T
	dec := json.NewDecoder(bytes.NewReader(result))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&strict); err != nil {
		return strict, &DecodeError{Reason: "result has fields the expected type does not declare", Err: err}
	}
	return strict, nil
}

// successResult returns the raw result of a successful envelope, or the
// exchange or decode error.
func (r *Response[T]) successResult() (json.RawMessage, error) {
	env, err := r.decodeEnvelope()
	if err != nil {
		return nil, err
	}
	if !*env.Success {
		e := &ExchangeError{StatusCode: r.statusCode}
		if env.Error != nil {
			e.Message = *env.Error
		}
		return nil, e
	}
	if len(env.Result) == 0 {
		return nil, &DecodeError{Reason: `envelope reports success but has no "result"`}
	}
	return env.Result, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// ExchangeError peeks at the envelope and returns the exchange-reported error,
// or nil when the body is not a rejection.
func (r *Response[T]) ExchangeError() *ExchangeError {
	success := gjson.GetBytes(r.body, "success")
	if !success.Exists() || success.Type != gjson.False {
		return nil
	}
	return &ExchangeError{
		Message:    gjson.GetBytes(r.body, "error").String(),
		StatusCode: r.statusCode,
	}
}
