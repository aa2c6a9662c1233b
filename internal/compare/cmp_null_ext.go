package compare

import "github.com/roach88/objcmp/internal/types"

// nullVsNull: two NULLs are equal only in null-safe mode.
func nullVsNull(_, _ types.Value, ctx Context) Result {
	if !ctx.NullSafe {
		return Null
	}
	return Equal
}

// nullVsAny orders NULL against a non-NULL, non-Extend value by NullPos.
func nullVsAny(_, _ types.Value, ctx Context) Result {
	if !ctx.NullSafe {
		return Null
	}
	if ctx.NullPos == NullsLast {
		return Greater
	}
	return Less
}

// nullVsExtend: MIN sorts below NULL and MAX above it, whatever NullPos says.
func nullVsExtend(a, b types.Value, ctx Context) Result {
	if !ctx.NullSafe {
		return Null
	}
	switch b.Extend() {
	case types.ExtendMin:
		return Greater
	case types.ExtendMax:
		return Less
	}
	return incomparable(a, b, "extend value is neither min nor max", "extend", b.Extend().String())
}

// extendVsAny orders MIN and MAX against any non-NULL value of another class.
func extendVsAny(a, b types.Value, _ Context) Result {
	switch a.Extend() {
	case types.ExtendMin:
		return Less
	case types.ExtendMax:
		return Greater
	}
	return incomparable(a, b, "extend value is neither min nor max", "extend", a.Extend().String())
}

func extendVsExtend(a, b types.Value, _ Context) Result {
	ea, eb := a.Extend(), b.Extend()
	if !isMinOrMax(ea) || !isMinOrMax(eb) {
		return incomparable(a, b, "extend value is neither min nor max",
			"left_extend", ea.String(), "right_extend", eb.String())
	}
	switch {
	case ea == eb:
		return Equal
	case ea == types.ExtendMin:
		return Less
	}
	return Greater
}

func isMinOrMax(e types.Extend) bool {
	return e == types.ExtendMin || e == types.ExtendMax
}
