package compare

import (
	"github.com/roach88/objcmp/internal/collation"
	"github.com/roach88/objcmp/internal/types"
)

// resolveCollation picks the collation for a character comparison: the
// context collation when set, otherwise the one both operands agree on.
func resolveCollation(a, b types.Value, ctx Context) (types.Collation, bool) {
	if ctx.Collation.IsValid() {
		return ctx.Collation, true
	}
	if a.Collation() != b.Collation() || !a.Collation().IsValid() {
		return types.CollationInvalid, false
	}
	return a.Collation(), true
}

// withEndSpace reports whether trailing spaces are significant for this
// pair. Computed once per call and handed to the byte comparator.
func withEndSpace(a, b types.Value, ctx Context) bool {
	return ctx.Mode == Oracle &&
		(a.Type().KeepsEndSpace(a.Collation()) || b.Type().KeepsEndSpace(b.Collation()))
}

func compareBytes(a, b types.Value, x, y []byte, ctx Context) Result {
	coll, ok := resolveCollation(a, b, ctx)
	if !ok {
		return incomparable(a, b, "no common collation",
			"left_collation", a.Collation().Name(), "right_collation", b.Collation().Name())
	}
	r, err := collation.Compare(coll, x, y, withEndSpace(a, b, ctx))
	if err != nil {
		return incomparable(a, b, "collation compare failed", "error", err)
	}
	return orderOf(r)
}

// stringVsString covers String and Text in any combination.
func stringVsString(a, b types.Value, ctx Context) Result {
	return compareBytes(a, b, a.Bytes(), b.Bytes(), ctx)
}

// rawVsRaw requires both operands to carry the binary collation and always
// orders them byte-wise; the context collation does not apply to RAW.
func rawVsRaw(a, b types.Value, ctx Context) Result {
	if a.Collation() != types.CollationBinary || b.Collation() != types.CollationBinary {
		return incomparable(a, b, "raw values must use the binary collation",
			"left_collation", a.Collation().Name(), "right_collation", b.Collation().Name())
	}
	r, err := collation.Compare(types.CollationBinary, a.Bytes(), b.Bytes(), withEndSpace(a, b, ctx))
	if err != nil {
		return incomparable(a, b, "collation compare failed", "error", err)
	}
	return orderOf(r)
}

// lobVsLob fetches both payloads through their locators before comparing.
func lobVsLob(a, b types.Value, ctx Context) Result {
	if _, ok := resolveCollation(a, b, ctx); !ok {
		return incomparable(a, b, "no common collation",
			"left_collation", a.Collation().Name(), "right_collation", b.Collation().Name())
	}
	if a.Locator() == nil || b.Locator() == nil {
		return incomparable(a, b, "lob has no locator")
	}
	x, err := a.Locator().Payload()
	if err != nil {
		return incomparable(a, b, "left lob payload unavailable", "error", err)
	}
	y, err := b.Locator().Payload()
	if err != nil {
		return incomparable(a, b, "right lob payload unavailable", "error", err)
	}
	return compareBytes(a, b, x, y, ctx)
}
