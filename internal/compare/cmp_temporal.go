package compare

import "github.com/roach88/objcmp/internal/types"

// Stored forms:
//
//	datetime        local wall clock
//	timestamp       UTC
//	timestamp_nano  local wall clock
//	timestamp_tz    UTC + zone
//	timestamp_ltz   UTC + zone
//
// Mixing a local and a UTC operand requires the session offset, which is
// subtracted from the local side.

func missingTZ(a, b types.Value) Result {
	return incomparable(a, b, "timezone offset required")
}

func dateTimeVsDateTime(a, b types.Value, ctx Context) Result {
	x, y := a.Int(), b.Int()
	if a.Type() != b.Type() {
		if !ctx.HasTZOffset() {
			return missingTZ(a, b)
		}
		if a.Type() == types.TypeDateTime {
			x -= ctx.TZOffset
		} else {
			y -= ctx.TZOffset
		}
	}
	return cmpInt64(x, y)
}

func cmpOTimestamp(x, y types.OTimestampData) Result {
	if r := cmpInt64(x.Micros, y.Micros); r != Equal {
		return r
	}
	return cmpUint64(uint64(x.TailNanos), uint64(y.TailNanos))
}

// dateTimeVsOTimestamp treats the datetime as local time unless the
// otimestamp is also local (timestamp_nano).
func dateTimeVsOTimestamp(a, b types.Value, ctx Context) Result {
	x := types.OTimestampData{Micros: a.Int()}
	y := b.OTimestamp()
	if !b.Type().IsTimestampNano() {
		if !ctx.HasTZOffset() {
			return missingTZ(a, b)
		}
		x.Micros -= ctx.TZOffset
	}
	return cmpOTimestamp(x, y)
}

func oTimestampVsOTimestamp(a, b types.Value, ctx Context) Result {
	x, y := a.OTimestamp(), b.OTimestamp()
	if a.Type().IsTimestampNano() != b.Type().IsTimestampNano() {
		if !ctx.HasTZOffset() {
			return missingTZ(a, b)
		}
		if a.Type().IsTimestampNano() {
			x.Micros -= ctx.TZOffset
		} else {
			y.Micros -= ctx.TZOffset
		}
	}
	return cmpOTimestamp(x, y)
}
