package compare

import (
	"github.com/roach88/objcmp/internal/decimal"
	"github.com/roach88/objcmp/internal/types"
)

// Numeric comparators. Three operand shapes cover every numeric class:
//
//	signed     Int
//	unsigned   UInt, EnumSet, EnumSetInner (via its numeric member)
//	real       Float, Double (Float widened to float64)
//
// Number compares exactly against integers through the decimal adapter.

// unsignedOf reads the unsigned view of a UInt, EnumSet or EnumSetInner
// value. A malformed EnumSetInner has none.
func unsignedOf(v types.Value) (uint64, bool) {
	if v.Class() == types.ClassEnumSetInner {
		inner := v.Inner()
		if inner == nil {
			return 0, false
		}
		return inner.Numeric, true
	}
	return v.Uint(), true
}

func malformedInner(a, b types.Value) Result {
	return incomparable(a, b, "enum/set member is not resolved")
}

func intVsInt(a, b types.Value, _ Context) Result {
	return cmpInt64(a.Int(), b.Int())
}

func intVsReal(a, b types.Value, _ Context) Result {
	return cmpFloat64(float64(a.Int()), b.Double())
}

func intVsNumber(a, b types.Value, _ Context) Result {
	return orderOf(-decimal.CompareInt64(b.Decimal(), a.Int()))
}

func intEqNumber(a, b types.Value) Result {
	return boolResult(decimal.IsEqualInt64(b.Decimal(), a.Int()))
}

// unsignedVsInt: every unsigned value is greater than a negative signed one.
func unsignedVsInt(a, b types.Value, _ Context) Result {
	u, ok := unsignedOf(a)
	if !ok {
		return malformedInner(a, b)
	}
	if b.Int() < 0 {
		return Greater
	}
	return cmpUint64(u, uint64(b.Int()))
}

func unsignedVsUnsigned(a, b types.Value, _ Context) Result {
	ua, ok := unsignedOf(a)
	if !ok {
		return malformedInner(a, b)
	}
	ub, ok := unsignedOf(b)
	if !ok {
		return malformedInner(a, b)
	}
	return cmpUint64(ua, ub)
}

func unsignedVsReal(a, b types.Value, _ Context) Result {
	u, ok := unsignedOf(a)
	if !ok {
		return malformedInner(a, b)
	}
	return cmpFloat64(float64(u), b.Double())
}

func unsignedVsNumber(a, b types.Value, _ Context) Result {
	u, ok := unsignedOf(a)
	if !ok {
		return malformedInner(a, b)
	}
	return orderOf(-decimal.CompareUint64(b.Decimal(), u))
}

func unsignedEqNumber(a, b types.Value) Result {
	u, ok := unsignedOf(a)
	if !ok {
		return malformedInner(a, b)
	}
	return boolResult(decimal.IsEqualUint64(b.Decimal(), u))
}

func floatVsFloat(a, b types.Value, _ Context) Result {
	return cmpFloat32(a.Float(), b.Float())
}

func realVsReal(a, b types.Value, _ Context) Result {
	return cmpFloat64(a.Double(), b.Double())
}

func numberVsNumber(a, b types.Value, _ Context) Result {
	return orderOf(decimal.Compare(a.Decimal(), b.Decimal()))
}

func numberEqNumber(a, b types.Value) Result {
	return boolResult(decimal.IsEqual(a.Decimal(), b.Decimal()))
}
