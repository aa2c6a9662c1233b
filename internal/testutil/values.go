package testutil

import (
	"math"

	"github.com/roach88/objcmp/internal/decimal"
	"github.com/roach88/objcmp/internal/lob"
	"github.com/roach88/objcmp/internal/rowid"
	"github.com/roach88/objcmp/internal/types"
)

// Varchar builds a varchar under utf8mb4_general_ci.
func Varchar(s string) types.Value {
	return types.String(types.TypeVarchar, []byte(s), types.CollationUTF8MB4GeneralCI)
}

// Number builds a Number value from its decimal text.
func Number(s string) types.Value {
	return types.Decimal(types.TypeNumber, decimal.MustParse(s))
}

// Samples returns a few representative values for every type class, keyed by
// class. Each call builds fresh values, so callers may keep or modify them.
//
// Every sample is well formed: comparing two samples whose classes are
// supported never produces an incomparable result, provided the context has a
// timezone offset and the string samples share a collation.
func Samples() map[types.TypeClass][]types.Value {
	ci := types.CollationUTF8MB4GeneralCI
	return map[types.TypeClass][]types.Value{
		types.ClassNull: {types.Null()},
		types.ClassInt: {
			types.Int(types.TypeInt, -1),
			types.Int(types.TypeTinyInt, 7),
			types.Int(types.TypeInt, math.MinInt64),
		},
		types.ClassUInt: {
			types.Uint(types.TypeUInt64, math.MaxUint64),
			types.Uint(types.TypeUInt32, 7),
		},
		types.ClassFloat: {
			types.Float32(types.TypeFloat, 1.5),
			types.Float32(types.TypeUFloat, 7),
		},
		types.ClassDouble: {
			types.Float64(types.TypeDouble, -2.25),
			types.Float64(types.TypeUDouble, 7),
		},
		types.ClassNumber: {
			Number("7.00"),
			Number("18446744073709551615"),
			Number("-0.5"),
		},
		types.ClassDateTime: {
			types.DateTime(1_000_000),
			types.Timestamp(1_000_000),
		},
		types.ClassDate: {types.Date(10), types.Date(-3)},
		types.ClassTime: {types.Time(3_600_000_000), types.Time(-1)},
		types.ClassYear: {types.Year(24), types.Year(0)},
		types.ClassString: {
			Varchar("abc"),
			types.String(types.TypeChar, []byte("ABC "), ci),
			types.String(types.TypeNVarchar2, []byte("abd"), ci),
		},
		types.ClassExtend: {types.MinValue(), types.MaxValue()},
		types.ClassUnknown: {types.Unknown(1), types.Unknown(-4)},
		types.ClassText: {
			types.String(types.TypeText, []byte("abd"), ci),
			types.String(types.TypeLongText, []byte("a"), ci),
		},
		types.ClassBit:     {types.Bit(5), types.Bit(0)},
		types.ClassEnumSet: {types.Enum(2), types.Set(7)},
		types.ClassEnumSetInner: {
			types.EnumSetInner(types.TypeEnumInner, &types.EnumSetInnerValue{Numeric: 2, Text: "b"}),
			types.EnumSetInner(types.TypeSetInner, &types.EnumSetInnerValue{Numeric: 7, Text: "a,b,c"}),
		},
		types.ClassOTimestamp: {
			types.OTimestamp(types.TypeTimestampTZ, types.OTimestampData{Micros: 1_000_000}),
			types.OTimestamp(types.TypeTimestampNano, types.OTimestampData{Micros: 1_000_000, TailNanos: 5}),
		},
		types.ClassRaw: {
			types.Raw([]byte{0x01, 0x02}, types.CollationBinary),
			types.Raw([]byte{0x01}, types.CollationBinary),
		},
		types.ClassInterval: {types.IntervalYM(14), types.IntervalYM(-2)},
		types.ClassRowID: {
			types.RowID(rowid.EncodeHeap(1, 2)),
			types.RowID(rowid.EncodePrimaryKey([]byte("k"))),
		},
		types.ClassLob: {
			types.Lob(lob.Inline("abc"), ci),
			types.Lob(lob.Inline("ABD"), ci),
		},
		types.ClassJSON: {
			types.JSON([]byte(`{"a":1}`)),
			types.JSON([]byte(`[1,2]`)),
		},
	}
}
