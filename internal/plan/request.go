// Package plan holds the planning request and the service response types.
package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Well-known form fields understood by the planning service.
const (
	FieldArea         = "area"
	FieldFloors       = "floors"
	FieldTimeline     = "timeline"
	FieldLocation     = "location"
	FieldTimelineDays = "timeline_days"
)

// Field is a single named form value.
type Field struct {
	Name  string
	Value string
}

// Request is the form data collected at submit time.
// Fields keep the order they were added in and are serialized as a JSON object
// in that order. A Request is never mutated once built; With returns a copy.
type Request struct {
	fields []Field
}

// NewRequest builds a request from the given fields. Later duplicates replace
// earlier values but keep the original position.
func NewRequest(fields ...Field) Request {
	var r Request
	for _, f := range fields {
		r = r.With(f.Name, f.Value)
	}
	return r
}

// ParseField parses a "name=value" pair.
func ParseField(s string) (Field, error) {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Field{}, fmt.Errorf("invalid field %q (expected name=value)", s)
	}
	return Field{Name: name, Value: value}, nil
}

// With returns a copy of the request with name set to value.
func (r Request) With(name, value string) Request {
	fields := make([]Field, len(r.fields), len(r.fields)+1)
	copy(fields, r.fields)
	for i := range fields {
		if fields[i].Name == name {
			fields[i].Value = value
			return Request{fields: fields}
		}
	}
	return Request{fields: append(fields, Field{Name: name, Value: value})}
}

// Get returns the value for name and whether it was set.
func (r Request) Get(name string) (string, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Fields returns a copy of the request fields in order.
func (r Request) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Len returns the number of fields.
func (r Request) Len() int {
	return len(r.fields)
}

// MarshalJSON writes the fields as a JSON object, preserving order.
func (r Request) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a flat JSON object. Non-string scalars are kept as their
// literal text so numeric form values survive a round trip.
func (r *Request) UnmarshalJSON(data []byte) error {
	var pairs Pairs
	if err := json.Unmarshal(data, &pairs); err != nil {
		return err
	}
	fields := make([]Field, 0, len(pairs))
	for _, p := range pairs {
		fields = append(fields, Field{Name: p.Key, Value: p.Value.String()})
	}
	*r = NewRequest(fields...)
	return nil
}
