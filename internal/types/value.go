package types

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/roach88/objcmp/internal/decimal"
	"github.com/roach88/objcmp/internal/lob"
	"github.com/roach88/objcmp/internal/rowid"
)

// Extend identifies the sentinel carried by an Extend value.
type Extend uint8

const (
	ExtendNone Extend = iota
	ExtendMin
	ExtendMax
)

func (e Extend) String() string {
	switch e {
	case ExtendMin:
		return "min"
	case ExtendMax:
		return "max"
	}
	return fmt.Sprintf("extend(%d)", uint8(e))
}

// OTimestampData is the payload of the OTimestamp class: microseconds since
// the epoch plus the sub-microsecond tail.
type OTimestampData struct {
	Micros    int64
	TailNanos uint16
}

// DayToSecond is the payload of a day-second interval. FracNanos carries the
// same sign as Seconds.
type DayToSecond struct {
	Seconds   int64
	FracNanos int32
}

// EnumSetInnerValue is the in-memory form of an enum or set member: its
// ordinal (or bitmask) and its label.
type EnumSetInnerValue struct {
	Numeric uint64
	Text    string
}

// Value is one dynamically typed column value.
//
// The zero Value is SQL NULL. Values are immutable once built; byte slices
// passed to constructors must not be modified afterwards.
type Value struct {
	typ  ObjType
	coll Collation

	i    int64
	u    uint64
	f    float64
	tail uint16
	frac int32
	ext  Extend

	b     []byte
	dec   *apd.Decimal
	loc   lob.Locator
	inner *EnumSetInnerValue
}

func mustClass(t ObjType, classes ...TypeClass) {
	c := ClassOf(t)
	for _, want := range classes {
		if c == want {
			return
		}
	}
	panic(fmt.Sprintf("types: %s is not a member of %v", t, classes))
}

// Null returns SQL NULL.
func Null() Value {
	return Value{typ: TypeNull}
}

// Int builds a signed integer of concrete type t.
func Int(t ObjType, v int64) Value {
	mustClass(t, ClassInt)
	return Value{typ: t, i: v}
}

// Uint builds an unsigned integer of concrete type t.
func Uint(t ObjType, v uint64) Value {
	mustClass(t, ClassUInt)
	return Value{typ: t, u: v}
}

// Float32 builds a single-precision float (Float or UFloat).
func Float32(t ObjType, v float32) Value {
	mustClass(t, ClassFloat)
	return Value{typ: t, f: float64(v)}
}

// Float64 builds a double-precision float (Double or UDouble).
func Float64(t ObjType, v float64) Value {
	mustClass(t, ClassDouble)
	return Value{typ: t, f: v}
}

// Decimal builds an arbitrary-precision number.
func Decimal(t ObjType, d *apd.Decimal) Value {
	mustClass(t, ClassNumber)
	if d == nil {
		panic("types: nil decimal")
	}
	return Value{typ: t, dec: d}
}

// DateTime builds a timezone-naive datetime from microseconds since the epoch.
func DateTime(micros int64) Value {
	return Value{typ: TypeDateTime, i: micros}
}

// Timestamp builds a UTC timestamp from microseconds since the epoch.
func Timestamp(micros int64) Value {
	return Value{typ: TypeTimestamp, i: micros}
}

// Date builds a date from days since the epoch.
func Date(days int32) Value {
	return Value{typ: TypeDate, i: int64(days)}
}

// Time builds a time of day (or duration) from microseconds.
func Time(micros int64) Value {
	return Value{typ: TypeTime, i: micros}
}

// Year builds a year value.
func Year(y uint8) Value {
	return Value{typ: TypeYear, u: uint64(y)}
}

// String builds character data of type t under collation coll.
func String(t ObjType, b []byte, coll Collation) Value {
	mustClass(t, ClassString, ClassText)
	return Value{typ: t, b: b, coll: coll}
}

// Raw builds a RAW byte string. Comparison requires the binary collation.
func Raw(b []byte, coll Collation) Value {
	return Value{typ: TypeRaw, b: b, coll: coll}
}

// Bit builds a BIT value.
func Bit(v uint64) Value {
	return Value{typ: TypeBit, u: v}
}

// Enum builds an ENUM value from its ordinal.
func Enum(v uint64) Value {
	return Value{typ: TypeEnum, u: v}
}

// Set builds a SET value from its bitmask.
func Set(v uint64) Value {
	return Value{typ: TypeSet, u: v}
}

// EnumSetInner builds an in-memory enum or set member. A nil inner is the
// malformed form, which comparators reject.
func EnumSetInner(t ObjType, inner *EnumSetInnerValue) Value {
	mustClass(t, ClassEnumSetInner)
	return Value{typ: t, inner: inner}
}

// OTimestamp builds a TimestampTZ, TimestampLTZ or TimestampNano value.
func OTimestamp(t ObjType, d OTimestampData) Value {
	mustClass(t, ClassOTimestamp)
	return Value{typ: t, i: d.Micros, tail: d.TailNanos}
}

// IntervalYM builds a year-month interval from a month count.
func IntervalYM(months int64) Value {
	return Value{typ: TypeIntervalYM, i: months}
}

// IntervalDS builds a day-second interval.
func IntervalDS(d DayToSecond) Value {
	return Value{typ: TypeIntervalDS, i: d.Seconds, frac: d.FracNanos}
}

// RowID builds a universal row identifier from its encoded form.
func RowID(raw []byte) Value {
	return Value{typ: TypeURowID, b: raw}
}

// Lob builds a large object reached through loc.
func Lob(loc lob.Locator, coll Collation) Value {
	return Value{typ: TypeLob, loc: loc, coll: coll}
}

// JSON builds a JSON value from its encoded document.
func JSON(raw []byte) Value {
	return Value{typ: TypeJSON, b: raw}
}

// MinValue returns the Extend value ordered below every other value.
func MinValue() Value {
	return Value{typ: TypeExtend, ext: ExtendMin}
}

// MaxValue returns the Extend value ordered above every other value.
func MaxValue() Value {
	return Value{typ: TypeExtend, ext: ExtendMax}
}

// ExtendValue builds an Extend value of any kind, including ones that are
// neither MIN nor MAX.
func ExtendValue(e Extend) Value {
	return Value{typ: TypeExtend, ext: e}
}

// Unknown builds a placeholder value.
func Unknown(v int64) Value {
	return Value{typ: TypeUnknown, i: v}
}

// WithType returns v retagged as t. It is meant for tests that need invalid
// tags and panics only when t is valid but belongs to another class.
func (v Value) WithType(t ObjType) Value {
	if t.Valid() && ClassOf(t) != ClassOf(v.typ) {
		panic(fmt.Sprintf("types: cannot retag %s as %s", v.typ, t))
	}
	v.typ = t
	return v
}

func (v Value) Type() ObjType        { return v.typ }
func (v Value) Class() TypeClass     { return ClassOf(v.typ) }
func (v Value) Collation() Collation { return v.coll }
func (v Value) IsNull() bool         { return v.typ == TypeNull }

// Int returns the payload of Int, DateTime, Date, Time and Unknown values.
func (v Value) Int() int64 { return v.i }

// Uint returns the payload of UInt, Bit, EnumSet and Year values.
func (v Value) Uint() uint64 { return v.u }

// Float returns the payload of a Float class value.
func (v Value) Float() float32 { return float32(v.f) }

// Double returns the payload of a Float or Double class value widened to
// float64.
func (v Value) Double() float64 { return v.f }

func (v Value) Decimal() *apd.Decimal { return v.dec }
func (v Value) Bytes() []byte         { return v.b }
func (v Value) Extend() Extend        { return v.ext }
func (v Value) Locator() lob.Locator  { return v.loc }

func (v Value) OTimestamp() OTimestampData {
	return OTimestampData{Micros: v.i, TailNanos: v.tail}
}

func (v Value) Months() int64 { return v.i }

func (v Value) DayToSecond() DayToSecond {
	return DayToSecond{Seconds: v.i, FracNanos: v.frac}
}

// Inner returns the enum or set member, or nil for a malformed value.
func (v Value) Inner() *EnumSetInnerValue { return v.inner }

const (
	dateTimeLayout   = "2006-01-02 15:04:05.999999"
	oTimestampLayout = "2006-01-02 15:04:05.999999999"
	dateLayout       = "2006-01-02"
)

// String renders v in the literal form accepted by ParseLiteral.
func (v Value) String() string {
	if !v.typ.Valid() {
		return v.typ.String()
	}
	switch v.Class() {
	case ClassNull:
		return "null"
	case ClassExtend:
		return "extend:" + v.ext.String()
	case ClassInt, ClassUnknown:
		return v.typ.String() + ":" + strconv.FormatInt(v.i, 10)
	case ClassUInt, ClassBit, ClassEnumSet, ClassYear:
		return v.typ.String() + ":" + strconv.FormatUint(v.u, 10)
	case ClassFloat:
		return v.typ.String() + ":" + strconv.FormatFloat(v.f, 'g', -1, 32)
	case ClassDouble:
		return v.typ.String() + ":" + strconv.FormatFloat(v.f, 'g', -1, 64)
	case ClassNumber:
		return v.typ.String() + ":" + decimal.Canonical(v.dec)
	case ClassDateTime:
		return v.typ.String() + ":" + time.UnixMicro(v.i).UTC().Format(dateTimeLayout)
	case ClassDate:
		return v.typ.String() + ":" + time.Unix(v.i*86400, 0).UTC().Format(dateLayout)
	case ClassTime:
		return v.typ.String() + ":" + formatTimeOfDay(v.i)
	case ClassOTimestamp:
		ts := time.UnixMicro(v.i).Add(time.Duration(v.tail)).UTC()
		return v.typ.String() + ":" + ts.Format(oTimestampLayout)
	case ClassString, ClassText:
		return fmt.Sprintf("%s:'%s'@%s", v.typ, v.b, collSuffix(v.coll))
	case ClassRaw:
		return fmt.Sprintf("raw:%s@%s", hex.EncodeToString(v.b), collSuffix(v.coll))
	case ClassEnumSetInner:
		if v.inner == nil {
			return v.typ.String() + ":"
		}
		return fmt.Sprintf("%s:%d/%s", v.typ, v.inner.Numeric, v.inner.Text)
	case ClassInterval:
		if v.typ.IsIntervalYM() {
			return v.typ.String() + ":" + strconv.FormatInt(v.i, 10)
		}
		return v.typ.String() + ":" + formatDayToSecond(v.i, v.frac)
	case ClassRowID:
		if id, err := rowid.Decode(v.b); err == nil {
			if p, o, ok := id.Heap(); ok {
				return fmt.Sprintf("urowid:heap:%d/%d", p, o)
			}
		}
		return "urowid:hex:" + hex.EncodeToString(v.b)
	case ClassLob:
		if inline, ok := v.loc.(lob.Inline); ok {
			return fmt.Sprintf("lob:'%s'@%s", []byte(inline), collSuffix(v.coll))
		}
		return fmt.Sprintf("lob:<%T>@%s", v.loc, collSuffix(v.coll))
	case ClassJSON:
		return "json:" + string(v.b)
	}
	return v.typ.String()
}

func collSuffix(c Collation) string {
	if c == CollationInvalid {
		return ""
	}
	return c.Name()
}

func formatTimeOfDay(micros int64) string {
	sign := ""
	if micros < 0 {
		sign = "-"
		micros = -micros
	}
	secs, us := micros/1_000_000, micros%1_000_000
	s := fmt.Sprintf("%s%02d:%02d:%02d", sign, secs/3600, secs/60%60, secs%60)
	if us != 0 {
		s += strings.TrimRight(fmt.Sprintf(".%06d", us), "0")
	}
	return s
}

func formatDayToSecond(secs int64, frac int32) string {
	sign := ""
	if secs < 0 || frac < 0 {
		sign = "-"
	}
	if secs < 0 {
		secs = -secs
	}
	if frac < 0 {
		frac = -frac
	}
	if frac == 0 {
		return fmt.Sprintf("%s%d", sign, secs)
	}
	return fmt.Sprintf("%s%d.%09d", sign, secs, frac)
}
