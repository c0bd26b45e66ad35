package ftx

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Empty is the result of endpoints that answer {"success":true,"result":null}.
// Whatever the result holds is discarded.
type Empty struct{}

func (*Empty) UnmarshalJSON([]byte) error {
	return nil
}

// Partial is a result object decoded only down to its top-level fields.
// Each field is decoded on access, so one field changing type on the
// exchange side does not break the others.
type Partial struct {
	fields map[string]json.RawMessage
}

// DeserializePartial unwraps the envelope and splits an object result into
// lazily decoded fields.
func (r *Response[T]) DeserializePartial() (Partial, error) {
	result, err := r.successResult()
	if err != nil {
		return Partial{}, err
	}
	return newPartial(result)
}

// DeserializePartials is DeserializePartial for list results.
func (r *Response[T]) DeserializePartials() ([]Partial, error) {
	result, err := r.successResult()
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(result, &items); err != nil || items == nil {
		return nil, &DecodeError{Reason: "result is not a list", Err: err}
	}
	out := make([]Partial, 0, len(items))
	for _, item := range items {
		p, err := newPartial(item)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func newPartial(raw json.RawMessage) (Partial, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Partial{}, &DecodeError{Reason: "result is not an object", Err: err}
	}
	return Partial{fields: fields}, nil
}

// Has reports whether the field is present, null or not.
func (p Partial) Has(name string) bool {
	_, ok := p.fields[name]
	return ok
}

// Raw returns the undecoded field.
func (p Partial) Raw(name string) (json.RawMessage, bool) {
	raw, ok := p.fields[name]
	return raw, ok
}

// Keys returns the field names, sorted.
func (p Partial) Keys() []string {
	keys := make([]string, 0, len(p.fields))
	for k := range p.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Field decodes one required field. A missing or null field is a
// DecodeError.
func Field[V any](p Partial, name string) (V, error) {
	v, ok, err := OptField[V](p, name)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, &DecodeError{Reason: "field " + name + " is missing or null"}
	}
	return v, nil
}

// OptField decodes an optional field. ok is false when the field is missing
// or null.
func OptField[V any](p Partial, name string) (v V, ok bool, err error) {
	raw, present := p.fields[name]
	if !present || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return v, false, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, &DecodeError{Reason: "field " + name + " does not match the expected type", Err: err}
	}
	return v, true, nil
}
