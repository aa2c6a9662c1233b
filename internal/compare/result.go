package compare

import "fmt"

// Result is the outcome of a single comparison.
//
// Three-way comparators yield Less, Equal or Greater. Operator comparators
// yield False or True. Either kind may yield Null (SQL NULL propagation) or
// Incomparable (the operands cannot be ordered under the requested rules).
type Result int8

const (
	Less    Result = -1
	Equal   Result = 0
	Greater Result = 1

	False Result = 0
	True  Result = 1

	// Null means at least one operand was NULL outside null-safe mode.
	Null Result = -2

	// Incomparable means a comparator exists but could not order the values.
	Incomparable Result = -3
)

// String names r as a three-way result. Use BoolString for predicate results.
func (r Result) String() string {
	switch r {
	case Less:
		return "lt"
	case Equal:
		return "eq"
	case Greater:
		return "gt"
	case Null:
		return "null"
	case Incomparable:
		return "incomparable"
	}
	return fmt.Sprintf("result(%d)", int8(r))
}

// BoolString names r as a predicate result.
func (r Result) BoolString() string {
	switch r {
	case False:
		return "false"
	case True:
		return "true"
	}
	return r.String()
}

// Negate mirrors a three-way result: Less and Greater swap, everything else
// is unchanged.
func (r Result) Negate() Result {
	switch r {
	case Less:
		return Greater
	case Greater:
		return Less
	}
	return r
}

// IsOrdering reports whether r is Less, Equal or Greater.
func (r Result) IsOrdering() bool {
	return r >= Less && r <= Greater
}

func boolResult(b bool) Result {
	if b {
		return True
	}
	return False
}

// orderOf turns any signed comparison into a three-way Result. Libraries that
// return arbitrary magnitudes are normalized here.
func orderOf(c int) Result {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	}
	return Equal
}

func cmpInt64(a, b int64) Result {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}

func cmpUint64(a, b uint64) Result {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}

// cmpFloat64 orders two floats. NaN is neither less nor greater than
// anything, so it compares Equal.
func cmpFloat64(a, b float64) Result {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}

func cmpFloat32(a, b float32) Result {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}
