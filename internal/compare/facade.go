package compare

import "github.com/roach88/objcmp/internal/types"

// CanCompare reports whether values of types l and r can be compared under op
// without a cast, and returns the comparator if so. It never fails: invalid
// types and operators simply report false.
func CanCompare(l, r types.ObjType, op Operator) (Comparator, bool) {
	if !l.Valid() || !r.Valid() {
		return Comparator{}, false
	}
	return Lookup(l.Class(), r.Class(), op)
}

// dispatch is the shared body of the error-returning entry points.
func dispatch(l, r types.Value, ctx Context, op Operator) (Result, error) {
	lt, rt := l.Type(), r.Type()
	if !lt.Valid() || !rt.Valid() {
		return Incomparable, newInvariantViolation(lt, rt, op, "invalid type tag: left=%s right=%s", lt, rt)
	}
	if !op.Valid() {
		return Incomparable, newInvariantViolation(lt, rt, op, "invalid operator %s", op)
	}
	c, ok := Lookup(lt.Class(), rt.Class(), op)
	if !ok {
		return Incomparable, newUnsupportedPairError(lt, rt, op)
	}
	res := c.Compare(l, r, ctx)
	if res == Incomparable {
		return Incomparable, newIncomparableError(lt, rt, op)
	}
	return res, nil
}

// ComparePredicate answers l op r. The result is True, False or Null.
//
// op must be one of the six relational operators; CMP is rejected as an
// InvariantViolation. Use CompareThreeWay for orderings.
func ComparePredicate(l, r types.Value, ctx Context, op Operator) (Result, error) {
	if op.Valid() && !op.IsPredicate() {
		return Incomparable, newInvariantViolation(l.Type(), r.Type(), op, "operator %s is not a predicate", op)
	}
	return dispatch(l, r, ctx, op)
}

// CompareThreeWay orders l against r. The result is Less, Equal, Greater or
// Null (the last only outside null-safe mode).
func CompareThreeWay(l, r types.Value, ctx Context) (Result, error) {
	return dispatch(l, r, ctx, CMP)
}

// CompareNullSafe orders l against r with NULL placed by pos. It is meant for
// sort and merge paths that have already checked support with
// NullSafeSupported; any failure panics with *InvariantViolation.
func CompareNullSafe(l, r types.Value, coll types.Collation, pos NullPos) Result {
	res, err := CompareNullSafeChecked(l, r, coll, pos)
	if err != nil {
		panic(err)
	}
	return res
}

// CompareNullSafeChecked is CompareNullSafe returning the *InvariantViolation
// instead of panicking.
func CompareNullSafeChecked(l, r types.Value, coll types.Collation, pos NullPos) (Result, error) {
	lt, rt := l.Type(), r.Type()
	if !lt.Valid() || !rt.Valid() {
		return Incomparable, newInvariantViolation(lt, rt, CMP, "invalid type tag: left=%s right=%s", lt, rt)
	}
	f, ok := NullSafeLookup(lt.Class(), rt.Class())
	if !ok {
		return Incomparable, newInvariantViolation(lt, rt, CMP,
			"no null-safe comparator for %s and %s", lt.Class(), rt.Class())
	}
	res := f(l, r, coll, pos)
	if !res.IsOrdering() {
		return Incomparable, newInvariantViolation(lt, rt, CMP,
			"null-safe comparison of %s and %s produced %s", lt, rt, res)
	}
	return res, nil
}

// CompareWithCollation is the collation-only entry point: null-safe, no
// timezone offset, and NULL placed by the mode's default order. Unlike the
// null-safe table it honors the mode's end-space rule.
func CompareWithCollation(l, r types.Value, coll types.Collation, mode CompatMode) (Result, error) {
	ctx := NewContext(coll, InvalidTZOffset, mode.DefaultNullPos(), true, mode)
	return dispatch(l, r, ctx, CMP)
}
