package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/objcmp/internal/decimal"
)

// Canonical renders the document in a deterministic form suitable for logs,
// golden files and equality checks:
//   - object keys sorted by UTF-16 code units
//   - strings NFC normalized, without HTML escaping
//   - numbers in reduced decimal form (1.50 renders as 1.5)
//
// Documents that compare equal share a canonical form.
func (d *Document) Canonical() ([]byte, error) {
	if !d.ready {
		if err := d.ResetIter(); err != nil {
			return nil, err
		}
	}
	var buf bytes.Buffer
	if err := writeCanonical(&buf, d.root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCanonical(buf *bytes.Buffer, n Node) error {
	switch v := n.(type) {
	case Null:
		buf.WriteString("null")
	case Bool:
		if v {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case *Number:
		buf.WriteString(decimal.Canonical(&v.D))
	case String:
		return writeString(buf, string(v))
	case Array:
		buf.WriteByte('[')
		for i, elem := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, elem); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for i, k := range v.SortedKeys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeCanonical(buf, v[k]); err != nil {
				return fmt.Errorf("[%q]: %w", k, err)
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("jsondoc: unsupported node %T", n)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(norm.NFC.String(s)); err != nil {
		return err
	}
	// Encode appends a newline.
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
