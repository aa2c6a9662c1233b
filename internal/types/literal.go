package types

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/roach88/objcmp/internal/decimal"
	"github.com/roach88/objcmp/internal/lob"
	"github.com/roach88/objcmp/internal/rowid"
)

// ErrUnreadableLob is the payload error of a lob literal written as
// "lob:<unreadable>".
var ErrUnreadableLob = errors.New("lob payload unreadable")

const unreadableLob = "<unreadable>"

// ParseLiteral builds a Value from its textual form "kind:text[@collation]",
// where kind is an ObjType name. The bare words "null", "min" and "max" are
// also accepted.
//
// Text forms per class:
//   - integers, floats, decimals, bit, enum, set, year, unknown: the number
//   - datetime, timestamp: "2006-01-02 15:04:05[.ffffff]" or integer micros
//   - otimestamp types: "2006-01-02 15:04:05[.fffffffff]" or integer micros
//   - date: "2006-01-02"; time: "[-]HH:MM:SS[.ffffff]"
//   - strings, text, lob: the characters, optionally in single quotes,
//     with an optional "@collation" suffix ("@" alone means no collation)
//   - raw: hex bytes with an optional "@collation" suffix
//   - enum_inner, set_inner: "N/label", or empty for a malformed member
//   - interval_ym: months; interval_ds: "[-]seconds[.fffffffff]"
//   - urowid: "heap:P/O", "pk:key" or "hex:bytes"
//   - json: the encoded document
//   - extend: "min", "max" or a number
//
// Character types default to utf8mb4_general_ci, raw and hexstring to binary.
func ParseLiteral(s string) (Value, error) {
	switch strings.TrimSpace(s) {
	case "null":
		return Null(), nil
	case "min":
		return MinValue(), nil
	case "max":
		return MaxValue(), nil
	}

	kind, text, ok := strings.Cut(s, ":")
	if !ok {
		return Value{}, fmt.Errorf("literal %q: missing kind prefix", s)
	}
	t, err := ParseObjType(kind)
	if err != nil {
		return Value{}, fmt.Errorf("literal %q: %w", s, err)
	}
	v, err := parseText(t, text)
	if err != nil {
		return Value{}, fmt.Errorf("literal %q: %w", s, err)
	}
	return v, nil
}

// MustParseLiteral is like ParseLiteral but panics on error.
// Use only in tests or with known-good literals.
func MustParseLiteral(s string) Value {
	v, err := ParseLiteral(s)
	if err != nil {
		panic(err)
	}
	return v
}

func parseText(t ObjType, text string) (Value, error) {
	switch ClassOf(t) {
	case ClassNull:
		return Null(), nil
	case ClassInt:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return Int(t, n), nil
	case ClassUnknown:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return Unknown(n), nil
	case ClassUInt, ClassBit, ClassEnumSet:
		n, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return Value{}, err
		}
		switch t {
		case TypeBit:
			return Bit(n), nil
		case TypeEnum:
			return Enum(n), nil
		case TypeSet:
			return Set(n), nil
		}
		return Uint(t, n), nil
	case ClassYear:
		n, err := strconv.ParseUint(text, 10, 8)
		if err != nil {
			return Value{}, err
		}
		return Year(uint8(n)), nil
	case ClassFloat:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return Value{}, err
		}
		return Float32(t, float32(f)), nil
	case ClassDouble:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, err
		}
		return Float64(t, f), nil
	case ClassNumber:
		d, err := decimal.Parse(text)
		if err != nil {
			return Value{}, err
		}
		return Decimal(t, d), nil
	case ClassDateTime:
		micros, err := parseMicros(text, dateTimeLayout)
		if err != nil {
			return Value{}, err
		}
		if t == TypeTimestamp {
			return Timestamp(micros), nil
		}
		return DateTime(micros), nil
	case ClassDate:
		ts, err := time.Parse(dateLayout, text)
		if err != nil {
			return Value{}, err
		}
		return Date(int32(ts.Unix() / 86400)), nil
	case ClassTime:
		micros, err := parseTimeOfDay(text)
		if err != nil {
			return Value{}, err
		}
		return Time(micros), nil
	case ClassOTimestamp:
		d, err := parseOTimestamp(text)
		if err != nil {
			return Value{}, err
		}
		return OTimestamp(t, d), nil
	case ClassString, ClassText:
		def := CollationUTF8MB4GeneralCI
		if t == TypeHexString {
			def = CollationBinary
		}
		body, coll := splitCollation(text, def)
		return String(t, []byte(unquote(body)), coll), nil
	case ClassRaw:
		body, coll := splitCollation(text, CollationBinary)
		b, err := hex.DecodeString(body)
		if err != nil {
			return Value{}, err
		}
		return Raw(b, coll), nil
	case ClassLob:
		body, coll := splitCollation(text, CollationUTF8MB4GeneralCI)
		if body == unreadableLob {
			return Lob(lob.Failing{Err: ErrUnreadableLob}, coll), nil
		}
		return Lob(lob.Inline(unquote(body)), coll), nil
	case ClassEnumSetInner:
		if text == "" {
			return EnumSetInner(t, nil), nil
		}
		num, label, _ := strings.Cut(text, "/")
		n, err := strconv.ParseUint(num, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return EnumSetInner(t, &EnumSetInnerValue{Numeric: n, Text: label}), nil
	case ClassInterval:
		if t.IsIntervalYM() {
			n, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return Value{}, err
			}
			return IntervalYM(n), nil
		}
		d, err := parseDayToSecond(text)
		if err != nil {
			return Value{}, err
		}
		return IntervalDS(d), nil
	case ClassRowID:
		return parseRowID(text)
	case ClassJSON:
		return JSON([]byte(text)), nil
	case ClassExtend:
		switch text {
		case "min":
			return MinValue(), nil
		case "max":
			return MaxValue(), nil
		}
		n, err := strconv.ParseUint(text, 10, 8)
		if err != nil {
			return Value{}, err
		}
		return ExtendValue(Extend(n)), nil
	}
	return Value{}, fmt.Errorf("no literal form for %s", t)
}

// splitCollation separates a trailing "@collation" suffix. A suffix that does
// not name a collation is kept as part of the body. An empty suffix ("abc@")
// leaves the value without a collation.
func splitCollation(text string, def Collation) (string, Collation) {
	i := strings.LastIndex(text, "@")
	if i < 0 {
		return text, def
	}
	coll, err := ParseCollation(text[i+1:])
	if err != nil {
		return text, def
	}
	return text[:i], coll
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}

func parseMicros(text, layout string) (int64, error) {
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n, nil
	}
	ts, err := time.Parse(layout, text)
	if err != nil {
		return 0, err
	}
	return ts.UnixMicro(), nil
}

func parseOTimestamp(text string) (OTimestampData, error) {
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return OTimestampData{Micros: n}, nil
	}
	ts, err := time.Parse(oTimestampLayout, text)
	if err != nil {
		return OTimestampData{}, err
	}
	return OTimestampData{
		Micros:    ts.UnixMicro(),
		TailNanos: uint16(ts.Nanosecond() % 1000),
	}, nil
}

func parseTimeOfDay(text string) (int64, error) {
	neg := strings.HasPrefix(text, "-")
	text = strings.TrimPrefix(text, "-")

	clock, frac, _ := strings.Cut(text, ".")
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("time %q: want HH:MM:SS", text)
	}
	var fields [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("time %q: bad field %q", text, p)
		}
		fields[i] = n
	}
	if fields[1] > 59 || fields[2] > 59 {
		return 0, fmt.Errorf("time %q: minutes and seconds must be below 60", text)
	}
	us, err := parseFraction(frac, 6)
	if err != nil {
		return 0, fmt.Errorf("time %q: %w", text, err)
	}

	micros := (fields[0]*3600+fields[1]*60+fields[2])*1_000_000 + us
	if neg {
		micros = -micros
	}
	return micros, nil
}

func parseDayToSecond(text string) (DayToSecond, error) {
	neg := strings.HasPrefix(text, "-")
	text = strings.TrimPrefix(text, "-")

	whole, frac, _ := strings.Cut(text, ".")
	secs, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return DayToSecond{}, err
	}
	ns, err := parseFraction(frac, 9)
	if err != nil {
		return DayToSecond{}, err
	}
	d := DayToSecond{Seconds: secs, FracNanos: int32(ns)}
	if neg {
		d.Seconds, d.FracNanos = -d.Seconds, -d.FracNanos
	}
	return d, nil
}

// parseFraction reads up to digits fractional digits, right-padding with
// zeros.
func parseFraction(frac string, digits int) (int64, error) {
	if frac == "" {
		return 0, nil
	}
	if len(frac) > digits {
		return 0, fmt.Errorf("fraction %q exceeds %d digits", frac, digits)
	}
	n, err := strconv.ParseInt(frac+strings.Repeat("0", digits-len(frac)), 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("bad fraction %q", frac)
	}
	return n, nil
}

func parseRowID(text string) (Value, error) {
	form, body, ok := strings.Cut(text, ":")
	if !ok {
		return Value{}, fmt.Errorf("rowid %q: want heap:P/O, pk:key or hex:bytes", text)
	}
	switch form {
	case "heap":
		p, o, ok := strings.Cut(body, "/")
		if !ok {
			return Value{}, fmt.Errorf("rowid %q: want heap:P/O", text)
		}
		partition, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return Value{}, err
		}
		offset, err := strconv.ParseUint(o, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return RowID(rowid.EncodeHeap(partition, offset)), nil
	case "pk":
		return RowID(rowid.EncodePrimaryKey([]byte(body))), nil
	case "hex":
		b, err := hex.DecodeString(body)
		if err != nil {
			return Value{}, err
		}
		return RowID(b), nil
	}
	return Value{}, fmt.Errorf("rowid %q: unknown form %q", text, form)
}
