package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"unicode/utf16"

	"github.com/cockroachdb/apd/v3"
)

// Node is a sealed interface over JSON document nodes.
// Only Null, Bool, Number, String, Array and Object implement it.
type Node interface {
	jsonNode()
}

// Null is the JSON null literal.
type Null struct{}

func (Null) jsonNode() {}

// Bool is a JSON boolean.
type Bool bool

func (Bool) jsonNode() {}

// Number is a JSON number held exactly as a decimal.
// Integers and fractions share one representation so 1 and 1.0 are equal.
type Number struct {
	D apd.Decimal
}

func (*Number) jsonNode() {}

// String is a JSON string.
type String string

func (String) jsonNode() {}

// Array is an ordered list of nodes.
type Array []Node

func (Array) jsonNode() {}

// Object maps keys to nodes. Use SortedKeys for deterministic iteration.
type Object map[string]Node

func (Object) jsonNode() {}

// NewNumber parses s into a Number node.
func NewNumber(s string) (*Number, error) {
	n := &Number{}
	if _, _, err := n.D.SetString(s); err != nil {
		return nil, fmt.Errorf("invalid JSON number %q: %w", s, err)
	}
	return n, nil
}

// Int builds a Number node from an integer.
func Int(v int64) *Number {
	n := &Number{}
	n.D.SetInt64(v)
	return n
}

// SortedKeys returns keys in RFC 8785 order (UTF-16 code units).
func (obj Object) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)
	return keys
}

// compareKeys orders strings by UTF-16 code units as RFC 8785 requires.
// Go's native string order is by UTF-8 bytes, which differs above U+FFFF.
func compareKeys(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	n := min(len(a16), len(b16))
	for i := 0; i < n; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(a16) < len(b16):
		return -1
	case len(a16) > len(b16):
		return 1
	}
	return 0
}

// Parse decodes a single JSON value into a node tree.
// Trailing data after the value is an error.
func Parse(data []byte) (Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("malformed JSON document: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("malformed JSON document: trailing data")
	}
	return toNode(raw)
}

// toNode converts a decoded Go value into a Node.
func toNode(v any) (Node, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case json.Number:
		return NewNumber(val.String())
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			n, err := toNode(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr[i] = n
		}
		return arr, nil
	case map[string]any:
		obj := make(Object, len(val))
		for k, elem := range val {
			n, err := toNode(elem)
			if err != nil {
				return nil, fmt.Errorf("[%q]: %w", k, err)
			}
			obj[k] = n
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported JSON value: %T", v)
	}
}
