package compare

import "github.com/roach88/objcmp/internal/types"

// threeWayFunc orders a against b. Operand classes are fixed by the table
// entry the function is stored in.
type threeWayFunc func(a, b types.Value, ctx Context) Result

// predicateFunc answers op for a and b.
type predicateFunc func(a, b types.Value, ctx Context, op Operator) Result

// mirrorThreeWay derives the B-vs-A comparator from an A-vs-B one.
func mirrorThreeWay(f threeWayFunc) threeWayFunc {
	return func(a, b types.Value, ctx Context) Result {
		return f(b, a, ctx).Negate()
	}
}

// mirrorPredicate derives the B-vs-A predicate from an A-vs-B one.
func mirrorPredicate(f predicateFunc) predicateFunc {
	return func(a, b types.Value, ctx Context, op Operator) Result {
		return f(b, a, ctx, op.Mirror())
	}
}

// predicateOf answers every operator through a three-way comparison.
func predicateOf(f threeWayFunc) predicateFunc {
	return func(a, b types.Value, ctx Context, op Operator) Result {
		return op.apply(f(a, b, ctx))
	}
}

// withEquality routes EQ and NE through eq, a dedicated equality test that
// returns True, False or Incomparable, and every other operator through the
// three-way comparison.
func withEquality(f threeWayFunc, eq func(a, b types.Value) Result) predicateFunc {
	return func(a, b types.Value, ctx Context, op Operator) Result {
		switch op {
		case EQ:
			return eq(a, b)
		case NE:
			switch r := eq(a, b); r {
			case True:
				return False
			case False:
				return True
			default:
				return r
			}
		}
		return op.apply(f(a, b, ctx))
	}
}
