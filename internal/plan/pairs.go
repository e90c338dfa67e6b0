package plan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Text is a JSON scalar kept as display text. Strings are unquoted; numbers
// and booleans keep their literal form; null becomes the empty string.
// Model output is loose about "5" versus 5, so both decode the same way.
type Text string

// String returns the text value.
func (t Text) String() string {
	return string(t)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty JSON value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[':
		return fmt.Errorf("expected scalar, got %s", describeJSON(data[0]))
	default:
		if bytes.Equal(data, []byte("null")) {
			*t = ""
			return nil
		}
		if !json.Valid(data) {
			return fmt.Errorf("invalid JSON scalar %q", data)
		}
		*t = Text(data)
	}
	return nil
}

// Pair is one key/value entry of a JSON object.
type Pair struct {
	Key   string
	Value Text
}

// Pairs is a JSON object decoded in the order its keys appear on the wire.
type Pairs []Pair

// UnmarshalJSON implements json.Unmarshaler.
func (p *Pairs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	out := Pairs{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("value for %q: %w", key, err)
		}
		var value Text
		if err := value.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("value for %q: %w", key, err)
		}
		out = append(out, Pair{Key: key, Value: value})
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	*p = out
	return nil
}

// Get returns the value for key and whether it was present.
func (p Pairs) Get(key string) (Text, bool) {
	for _, pair := range p {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return "", false
}

// MarshalJSON writes the pairs as a JSON object in order.
func (p Pairs) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(pair.Value.String())
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

func describeJSON(b byte) string {
	if b == '{' {
		return "object"
	}
	return "array"
}
