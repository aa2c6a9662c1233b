package compare

import (
	"fmt"
	"strings"

	"github.com/roach88/objcmp/internal/types"
)

// MatrixRow lists the right-hand classes one left-hand class compares with
// directly.
type MatrixRow struct {
	Left  types.TypeClass   `json:"left"`
	Right []types.TypeClass `json:"-"`
	Names []string          `json:"right"`
}

// Matrix returns the support matrix of the operator table, or of the
// null-safe table when nullSafe is set. Rows follow class order.
func Matrix(nullSafe bool) []MatrixRow {
	supported := Supported
	if nullSafe {
		supported = NullSafeSupported
	}
	rows := make([]MatrixRow, 0, types.ClassMax)
	for _, l := range types.Classes() {
		row := MatrixRow{Left: l}
		for _, r := range types.Classes() {
			if supported(l, r) {
				row.Right = append(row.Right, r)
				row.Names = append(row.Names, r.String())
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// SupportMatrix renders Matrix as text, one left-hand class per line.
func SupportMatrix(nullSafe bool) string {
	title := "operator table"
	if nullSafe {
		title = "null-safe table"
	}

	width := 0
	for _, c := range types.Classes() {
		width = max(width, len(c.String()))
	}

	var b strings.Builder
	pairs := 0
	rows := Matrix(nullSafe)
	for _, row := range rows {
		pairs += len(row.Right)
	}
	fmt.Fprintf(&b, "%s: %d supported pairs\n", title, pairs)
	for _, row := range rows {
		fmt.Fprintf(&b, "%-*s  %s\n", width, row.Left, strings.Join(row.Names, " "))
	}
	return b.String()
}
