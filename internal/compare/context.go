package compare

import (
	"fmt"
	"math"
	"strings"

	"github.com/roach88/objcmp/internal/types"
)

// InvalidTZOffset marks a Context without a usable timezone offset.
const InvalidTZOffset int64 = math.MinInt64

// NullPos decides where NULL sorts in null-safe comparisons.
type NullPos uint8

const (
	NullsFirst NullPos = iota
	NullsLast
)

func (p NullPos) String() string {
	if p == NullsLast {
		return "last"
	}
	return "first"
}

// ParseNullPos accepts "first" and "last".
func ParseNullPos(s string) (NullPos, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first":
		return NullsFirst, nil
	case "last":
		return NullsLast, nil
	}
	return NullsFirst, fmt.Errorf("unknown null order %q", s)
}

// CompatMode is the SQL dialect the caller runs under.
type CompatMode uint8

const (
	MySQL CompatMode = iota
	Oracle
)

func (m CompatMode) String() string {
	if m == Oracle {
		return "oracle"
	}
	return "mysql"
}

// DefaultNullPos is the null order a mode uses when none is given.
func (m CompatMode) DefaultNullPos() NullPos {
	if m == Oracle {
		return NullsLast
	}
	return NullsFirst
}

// ParseCompatMode accepts "mysql" and "oracle".
func ParseCompatMode(s string) (CompatMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mysql":
		return MySQL, nil
	case "oracle":
		return Oracle, nil
	}
	return MySQL, fmt.Errorf("unknown compatibility mode %q", s)
}

// Context carries the per-call comparison rules. It is a plain value: build
// it once per batch and pass it by value. Nothing is validated up front;
// comparators check only the fields they need.
type Context struct {
	// Collation overrides operand collations when valid.
	Collation types.Collation

	// TZOffset is the session offset in microseconds, used to align
	// timezone-naive and timezone-aware temporal values.
	TZOffset int64

	NullPos  NullPos
	NullSafe bool
	Mode     CompatMode
}

// NewContext builds a Context from explicit fields.
func NewContext(coll types.Collation, tzOffset int64, pos NullPos, nullSafe bool, mode CompatMode) Context {
	return Context{
		Collation: coll,
		TZOffset:  tzOffset,
		NullPos:   pos,
		NullSafe:  nullSafe,
		Mode:      mode,
	}
}

// DefaultContext is null-safe, has no collation override and no timezone
// offset, and sorts NULL by the mode's default.
func DefaultContext(mode CompatMode) Context {
	return NewContext(types.CollationInvalid, InvalidTZOffset, mode.DefaultNullPos(), true, mode)
}

// HasTZOffset reports whether TZOffset is usable.
func (c Context) HasTZOffset() bool {
	return c.TZOffset != InvalidTZOffset
}

func (c Context) String() string {
	tz := "invalid"
	if c.HasTZOffset() {
		tz = fmt.Sprintf("%dus", c.TZOffset)
	}
	return fmt.Sprintf("mode=%s collation=%s tz=%s nulls=%s null_safe=%t",
		c.Mode, c.Collation, tz, c.NullPos, c.NullSafe)
}
