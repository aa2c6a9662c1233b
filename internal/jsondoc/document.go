// Package jsondoc is the JSON document model used when two JSON column values
// are compared.
//
// A Document wraps the raw encoded bytes of one JSON value. It is decoded
// lazily by ResetIter, which must be called before Compare. Documents are
// cheap to build and are not shared between goroutines: callers open a fresh
// Document per comparison.
//
// Ordering follows MySQL JSON comparison precedence, lowest first:
//
//	null < number < string < object < array < boolean
//
// Within a kind:
//   - numbers compare exactly as decimals
//   - strings compare by UTF-8 bytes after NFC normalization
//   - arrays compare element-wise, then by length
//   - objects compare by member count, then by sorted keys, then by values
//   - false < true
package jsondoc

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// ErrNotReset is returned by Compare when ResetIter was not called first.
var ErrNotReset = errors.New("jsondoc: iterator not reset")

// Document is one JSON value awaiting comparison.
type Document struct {
	raw   []byte
	root  Node
	ready bool
}

// Open wraps raw without decoding it.
func Open(raw []byte) *Document {
	return &Document{raw: raw}
}

// FromNode wraps an already built node tree.
func FromNode(n Node) *Document {
	return &Document{root: n, ready: true}
}

// Raw returns the encoded bytes the document was opened with.
func (d *Document) Raw() []byte {
	return d.raw
}

// ResetIter decodes the document if needed and positions it at the root.
func (d *Document) ResetIter() error {
	if d.root != nil {
		d.ready = true
		return nil
	}
	n, err := Parse(d.raw)
	if err != nil {
		return err
	}
	d.root = n
	d.ready = true
	return nil
}

// Root returns the decoded root node, or nil before ResetIter.
func (d *Document) Root() Node {
	if !d.ready {
		return nil
	}
	return d.root
}

// Compare orders d against other. The result is -1, 0 or 1.
func (d *Document) Compare(other *Document) (int, error) {
	if !d.ready || !other.ready {
		return 0, ErrNotReset
	}
	return CompareNodes(d.root, other.root)
}

// kind ranks node kinds by comparison precedence.
type kind uint8

const (
	kindNull kind = iota
	kindNumber
	kindString
	kindObject
	kindArray
	kindBool
)

func kindOf(n Node) (kind, error) {
	switch n.(type) {
	case Null:
		return kindNull, nil
	case *Number:
		return kindNumber, nil
	case String:
		return kindString, nil
	case Object:
		return kindObject, nil
	case Array:
		return kindArray, nil
	case Bool:
		return kindBool, nil
	}
	return 0, fmt.Errorf("jsondoc: unsupported node %T", n)
}

// CompareNodes orders two node trees.
func CompareNodes(a, b Node) (int, error) {
	ka, err := kindOf(a)
	if err != nil {
		return 0, err
	}
	kb, err := kindOf(b)
	if err != nil {
		return 0, err
	}
	if ka != kb {
		if ka < kb {
			return -1, nil
		}
		return 1, nil
	}

	switch av := a.(type) {
	case Null:
		return 0, nil
	case *Number:
		return av.D.Cmp(&b.(*Number).D), nil
	case String:
		return bytes.Compare(norm.NFC.Bytes([]byte(av)), norm.NFC.Bytes([]byte(b.(String)))), nil
	case Bool:
		bv := b.(Bool)
		switch {
		case av == bv:
			return 0, nil
		case !bool(av):
			return -1, nil
		}
		return 1, nil
	case Array:
		return compareArrays(av, b.(Array))
	case Object:
		return compareObjects(av, b.(Object))
	}
	return 0, fmt.Errorf("jsondoc: unsupported node %T", a)
}

func compareArrays(a, b Array) (int, error) {
	for i := 0; i < len(a) && i < len(b); i++ {
		r, err := CompareNodes(a[i], b[i])
		if err != nil {
			return 0, fmt.Errorf("[%d]: %w", i, err)
		}
		if r != 0 {
			return r, nil
		}
	}
	return cmpInt(len(a), len(b)), nil
}

func compareObjects(a, b Object) (int, error) {
	if r := cmpInt(len(a), len(b)); r != 0 {
		return r, nil
	}
	ak, bk := a.SortedKeys(), b.SortedKeys()
	for i := range ak {
		if r := compareKeys(ak[i], bk[i]); r != 0 {
			return r, nil
		}
	}
	for _, k := range ak {
		r, err := CompareNodes(a[k], b[k])
		if err != nil {
			return 0, fmt.Errorf("[%q]: %w", k, err)
		}
		if r != 0 {
			return r, nil
		}
	}
	return 0, nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
