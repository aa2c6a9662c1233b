package compare

import (
	"github.com/roach88/objcmp/internal/jsondoc"
	"github.com/roach88/objcmp/internal/rowid"
	"github.com/roach88/objcmp/internal/types"
)

// signedPayloads serves Date, Time and Unknown.
func signedPayloads(a, b types.Value, _ Context) Result {
	return cmpInt64(a.Int(), b.Int())
}

// unsignedPayloads serves Year and Bit.
func unsignedPayloads(a, b types.Value, _ Context) Result {
	return cmpUint64(a.Uint(), b.Uint())
}

// intervalVsInterval refuses to order a year-month against a day-second
// interval.
func intervalVsInterval(a, b types.Value, _ Context) Result {
	if a.Type() != b.Type() {
		return incomparable(a, b, "interval subtypes differ")
	}
	if a.Type().IsIntervalYM() {
		return cmpInt64(a.Months(), b.Months())
	}
	x, y := a.DayToSecond(), b.DayToSecond()
	if r := cmpInt64(x.Seconds, y.Seconds); r != Equal {
		return r
	}
	return cmpInt64(int64(x.FracNanos), int64(y.FracNanos))
}

// rowIDVsRowID orders universal rowids only.
func rowIDVsRowID(a, b types.Value, _ Context) Result {
	if a.Type() != types.TypeURowID || b.Type() != types.TypeURowID {
		return incomparable(a, b, "only universal rowids are ordered")
	}
	r, err := rowid.CompareRaw(a.Bytes(), b.Bytes())
	if err != nil {
		return incomparable(a, b, "rowid is not a universal rowid", "error", err)
	}
	return orderOf(r)
}

// jsonVsJSON opens a fresh document per operand, so no decoder state is
// shared between calls. The document result is normalized to Less, Equal or
// Greater on every path.
func jsonVsJSON(a, b types.Value, _ Context) Result {
	x, y := jsondoc.Open(a.Bytes()), jsondoc.Open(b.Bytes())
	if err := x.ResetIter(); err != nil {
		return incomparable(a, b, "left json document malformed", "error", err)
	}
	if err := y.ResetIter(); err != nil {
		return incomparable(a, b, "right json document malformed", "error", err)
	}
	r, err := x.Compare(y)
	if err != nil {
		return incomparable(a, b, "json compare failed", "error", err)
	}
	return orderOf(r)
}
