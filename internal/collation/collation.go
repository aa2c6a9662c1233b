// Package collation implements the collation-aware byte-sequence comparator
// used for character data.
//
// Character payloads are UTF-8 whatever charset the collation is named
// after. The charset decides the ordering, not the input encoding.
//
// Ordering rules:
//   - binary orders raw bytes with NO PAD semantics
//   - utf8mb4_bin orders UTF-8 bytes with PAD SPACE semantics
//   - utf16_bin and gbk_bin re-encode both operands into UTF-16BE or GBK and
//     order the encoded bytes, with PAD SPACE semantics; a rune GBK cannot
//     represent is an error
//   - *_ci collations order through golang.org/x/text/collate with PAD SPACE
//     semantics and case (and accent) folding
//
// PAD SPACE means trailing spaces are ignored: "abc" equals "abc  ". Callers
// switch this off per call with endSpace, which makes trailing spaces
// significant for every collation.
//
// x/text collators keep per-instance buffers and are not safe for concurrent
// use, so each collation owns a sync.Pool of collators.
package collation

import (
	"bytes"
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"

	"github.com/roach88/objcmp/internal/types"
)

// collatorPools holds one pool per case-insensitive collation.
var collatorPools = map[types.Collation]*sync.Pool{
	types.CollationUTF8MB4GeneralCI: newPool(language.Und, collate.IgnoreCase, collate.IgnoreDiacritics),
	types.CollationUTF8MB4UnicodeCI: newPool(language.Und, collate.IgnoreCase, collate.IgnoreDiacritics, collate.IgnoreWidth),
	types.CollationUTF16GeneralCI:   newPool(language.Und, collate.IgnoreCase, collate.IgnoreDiacritics),
	types.CollationGBKChineseCI:     newPool(language.SimplifiedChinese, collate.IgnoreCase),
}

// binEncodings maps a *_bin collation to the charset whose encoded bytes it
// orders by. Big-endian UTF-16 bytes order the same as UTF-16 code units.
var binEncodings = map[types.Collation]encoding.Encoding{
	types.CollationUTF16Bin: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	types.CollationGBKBin:   simplifiedchinese.GBK,
}

func newPool(tag language.Tag, opts ...collate.Option) *sync.Pool {
	return &sync.Pool{
		New: func() any {
			return collate.New(tag, opts...)
		},
	}
}

// Compare orders a and b under coll and returns -1, 0 or 1.
// An invalid collation is an error; the caller decides what that means.
func Compare(coll types.Collation, a, b []byte, endSpace bool) (int, error) {
	if !coll.IsValid() {
		return 0, fmt.Errorf("collation: cannot compare under %s", coll)
	}

	if coll == types.CollationBinary {
		return bytes.Compare(a, b), nil
	}

	if !endSpace {
		a = trimTrailingSpace(a)
		b = trimTrailingSpace(b)
	}

	if coll.IsBinary() {
		if enc, ok := binEncodings[coll]; ok {
			var err error
			if a, err = enc.NewEncoder().Bytes(a); err != nil {
				return 0, fmt.Errorf("collation: %s cannot encode left operand: %w", coll, err)
			}
			if b, err = enc.NewEncoder().Bytes(b); err != nil {
				return 0, fmt.Errorf("collation: %s cannot encode right operand: %w", coll, err)
			}
		}
		return bytes.Compare(a, b), nil
	}

	pool, ok := collatorPools[coll]
	if !ok {
		return 0, fmt.Errorf("collation: no collator registered for %s", coll)
	}
	c := pool.Get().(*collate.Collator)
	defer pool.Put(c)

	r := c.Compare(a, b)
	if r == 0 && endSpace {
		// Folding can hide a length difference that endSpace asked to see.
		return compareLengths(a, b), nil
	}
	return r, nil
}

// MustCompare is like Compare but panics on an invalid collation.
// Use only in tests or when coll is known to be valid.
func MustCompare(coll types.Collation, a, b []byte, endSpace bool) int {
	r, err := Compare(coll, a, b, endSpace)
	if err != nil {
		panic(err)
	}
	return r
}

// Equal reports whether a and b are equivalent under coll.
func Equal(coll types.Collation, a, b []byte, endSpace bool) (bool, error) {
	r, err := Compare(coll, a, b, endSpace)
	if err != nil {
		return false, err
	}
	return r == 0, nil
}

func trimTrailingSpace(s []byte) []byte {
	return bytes.TrimRight(s, " ")
}

// compareLengths breaks ties between collation-equal strings that differ only
// in trailing spaces.
func compareLengths(a, b []byte) int {
	ta, tb := len(a)-len(trimTrailingSpace(a)), len(b)-len(trimTrailingSpace(b))
	switch {
	case ta < tb:
		return -1
	case ta > tb:
		return 1
	}
	return 0
}
