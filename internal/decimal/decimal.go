// Package decimal adapts github.com/cockroachdb/apd/v3 to the two operations
// the comparison engine needs from an arbitrary-precision number library:
// three-way ordering and equality.
//
// Integers are lifted into the decimal domain exactly. No operation here
// rounds, so comparing math.MaxUint64 against the decimal built from the same
// integer is always equal.
package decimal

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Parse builds a decimal from its textual form.
// NaN and infinities are rejected because SQL decimals are finite.
func Parse(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("invalid decimal %q: not finite", s)
	}
	return d, nil
}

// MustParse is like Parse but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustParse(s string) *apd.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromInt64 lifts v exactly.
func FromInt64(v int64) *apd.Decimal {
	return apd.New(v, 0)
}

// FromUint64 lifts v exactly, including values above math.MaxInt64.
func FromUint64(v uint64) *apd.Decimal {
	var coeff apd.BigInt
	coeff.SetUint64(v)
	return apd.NewWithBigInt(&coeff, 0)
}

// Compare returns -1, 0 or 1.
func Compare(a, b *apd.Decimal) int {
	return a.Cmp(b)
}

// IsEqual reports numeric equality, ignoring representation.
// 1.50 and 1.5 are equal.
func IsEqual(a, b *apd.Decimal) bool {
	if a.Negative != b.Negative && !(a.IsZero() && b.IsZero()) {
		return false
	}
	return a.Cmp(b) == 0
}

// CompareInt64 orders d against an integer.
func CompareInt64(d *apd.Decimal, v int64) int {
	if s := d.Sign(); s < 0 && v >= 0 {
		return -1
	} else if s > 0 && v <= 0 {
		return 1
	}
	return d.Cmp(FromInt64(v))
}

// CompareUint64 orders d against an unsigned integer.
func CompareUint64(d *apd.Decimal, v uint64) int {
	if d.Sign() < 0 {
		return -1
	}
	return d.Cmp(FromUint64(v))
}

// IsEqualInt64 reports whether d is numerically v.
func IsEqualInt64(d *apd.Decimal, v int64) bool {
	if (d.Sign() < 0) != (v < 0) {
		return false
	}
	return CompareInt64(d, v) == 0
}

// IsEqualUint64 reports whether d is numerically v.
func IsEqualUint64(d *apd.Decimal, v uint64) bool {
	if d.Sign() < 0 {
		return false
	}
	return CompareUint64(d, v) == 0
}

// Canonical returns the reduced textual form: trailing zeros stripped.
// Numerically equal decimals share a canonical form.
func Canonical(d *apd.Decimal) string {
	var r apd.Decimal
	r.Reduce(d)
	if r.IsZero() {
		r.Negative = false
		r.Exponent = 0
	}
	return r.String()
}
