package compare

import "github.com/roach88/objcmp/internal/types"

// NullSafeFunc orders a against b with NULL treated as an ordinary value
// placed by pos. The table coordinates are the declared column classes, so
// either operand may still be a NULL value at run time.
type NullSafeFunc func(a, b types.Value, coll types.Collation, pos NullPos) Result

// nullSafeTable is derived from opTable. Written only by init.
var nullSafeTable [types.ClassMax][types.ClassMax]NullSafeFunc

func buildNullSafeTable() {
	for _, l := range types.Classes() {
		for _, r := range types.Classes() {
			if f := opTable[l][r]; f != nil {
				nullSafeTable[l][r] = nullSafe(f.threeWay)
			}
		}
	}
}

// nullSafe resolves runtime NULLs once, then hands non-null operands to f.
// A NULL operand is ordered through the Null row or column of the operator
// table, which keeps the Extend rule: MIN sorts below NULL, MAX above it.
func nullSafe(f threeWayFunc) NullSafeFunc {
	return func(a, b types.Value, coll types.Collation, pos NullPos) Result {
		ctx := NewContext(coll, InvalidTZOffset, pos, true, MySQL)
		switch {
		case a.IsNull() && b.IsNull():
			return nullVsNull(a, b, ctx)
		case a.IsNull():
			return opTable[types.ClassNull][b.Class()].threeWay(a, b, ctx)
		case b.IsNull():
			return opTable[a.Class()][types.ClassNull].threeWay(a, b, ctx)
		}
		return f(a, b, ctx)
	}
}

// NullSafeSupported reports whether the null-safe table has an entry for the
// declared classes l and r.
func NullSafeSupported(l, r types.TypeClass) bool {
	return l.Valid() && r.Valid() && nullSafeTable[l][r] != nil
}

// NullSafeLookup returns the null-safe comparator for columns of classes l
// and r. Sorters resolve it once per column pair and call it per row.
func NullSafeLookup(l, r types.TypeClass) (NullSafeFunc, bool) {
	if !NullSafeSupported(l, r) {
		return nil, false
	}
	return nullSafeTable[l][r], true
}
