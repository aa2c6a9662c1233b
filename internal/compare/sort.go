package compare

import (
	"slices"

	"github.com/roach88/objcmp/internal/types"
)

// SortValues sorts vals in place, stable, with the null-safe comparator.
// The first failed comparison is returned; the order of vals is then
// unspecified.
func SortValues(vals []types.Value, coll types.Collation, pos NullPos) error {
	var first error
	slices.SortStableFunc(vals, func(a, b types.Value) int {
		if first != nil {
			return 0
		}
		res, err := CompareNullSafeChecked(a, b, coll, pos)
		if err != nil {
			first = err
			return 0
		}
		return int(res)
	})
	return first
}
