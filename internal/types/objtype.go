package types

import (
	"fmt"
	"strings"
)

// ObjType is the concrete type tag carried by every Value.
// The set is closed; adding a type means assigning it a TypeClass below.
type ObjType uint8

const (
	TypeNull ObjType = iota

	TypeTinyInt
	TypeSmallInt
	TypeMediumInt
	TypeInt32
	TypeInt

	TypeUTinyInt
	TypeUSmallInt
	TypeUMediumInt
	TypeUInt32
	TypeUInt64

	TypeFloat
	TypeDouble
	TypeUFloat
	TypeUDouble

	TypeNumber
	TypeUNumber

	TypeDateTime
	TypeTimestamp
	TypeDate
	TypeTime
	TypeYear

	TypeVarchar
	TypeChar
	TypeHexString

	TypeExtend
	TypeUnknown

	TypeTinyText
	TypeText
	TypeMediumText
	TypeLongText

	TypeBit
	TypeEnum
	TypeSet
	TypeEnumInner
	TypeSetInner

	TypeTimestampTZ
	TypeTimestampLTZ
	TypeTimestampNano

	TypeRaw
	TypeIntervalYM
	TypeIntervalDS
	TypeNumberFloat
	TypeNVarchar2
	TypeNChar
	TypeURowID
	TypeLob
	TypeJSON

	// TypeMax is one past the last valid tag.
	TypeMax
)

var objTypeNames = [TypeMax]string{
	TypeNull:          "null",
	TypeTinyInt:       "tinyint",
	TypeSmallInt:      "smallint",
	TypeMediumInt:     "mediumint",
	TypeInt32:         "int32",
	TypeInt:           "int",
	TypeUTinyInt:      "utinyint",
	TypeUSmallInt:     "usmallint",
	TypeUMediumInt:    "umediumint",
	TypeUInt32:        "uint32",
	TypeUInt64:        "uint64",
	TypeFloat:         "float",
	TypeDouble:        "double",
	TypeUFloat:        "ufloat",
	TypeUDouble:       "udouble",
	TypeNumber:        "number",
	TypeUNumber:       "unumber",
	TypeDateTime:      "datetime",
	TypeTimestamp:     "timestamp",
	TypeDate:          "date",
	TypeTime:          "time",
	TypeYear:          "year",
	TypeVarchar:       "varchar",
	TypeChar:          "char",
	TypeHexString:     "hexstring",
	TypeExtend:        "extend",
	TypeUnknown:       "unknown",
	TypeTinyText:      "tinytext",
	TypeText:          "text",
	TypeMediumText:    "mediumtext",
	TypeLongText:      "longtext",
	TypeBit:           "bit",
	TypeEnum:          "enum",
	TypeSet:           "set",
	TypeEnumInner:     "enum_inner",
	TypeSetInner:      "set_inner",
	TypeTimestampTZ:   "timestamp_tz",
	TypeTimestampLTZ:  "timestamp_ltz",
	TypeTimestampNano: "timestamp_nano",
	TypeRaw:           "raw",
	TypeIntervalYM:    "interval_ym",
	TypeIntervalDS:    "interval_ds",
	TypeNumberFloat:   "number_float",
	TypeNVarchar2:     "nvarchar2",
	TypeNChar:         "nchar",
	TypeURowID:        "urowid",
	TypeLob:           "lob",
	TypeJSON:          "json",
}

// Valid reports whether t is a known concrete type.
func (t ObjType) Valid() bool {
	return t < TypeMax
}

// String returns the lowercase type name, or "objtype(N)" for invalid tags.
func (t ObjType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("objtype(%d)", uint8(t))
	}
	return objTypeNames[t]
}

// Class returns the dispatch class of t. Shorthand for ClassOf(t).
func (t ObjType) Class() TypeClass {
	return ClassOf(t)
}

// ParseObjType resolves a type name as printed by String.
func ParseObjType(name string) (ObjType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t := TypeNull; t < TypeMax; t++ {
		if objTypeNames[t] == name {
			return t, nil
		}
	}
	return TypeMax, fmt.Errorf("unknown type %q", name)
}

// IsTimestampNano reports whether t is the nanosecond-precision,
// timezone-naive member of the OTimestamp class.
func (t ObjType) IsTimestampNano() bool {
	return t == TypeTimestampNano
}

// IsIntervalYM reports whether t is the year-month interval.
func (t ObjType) IsIntervalYM() bool {
	return t == TypeIntervalYM
}

// KeepsEndSpace reports whether trailing spaces of t are significant under
// Oracle compatibility. VARCHAR qualifies only under a non-binary collation;
// NVARCHAR2 always does.
func (t ObjType) KeepsEndSpace(coll Collation) bool {
	switch t {
	case TypeVarchar:
		return coll != CollationBinary
	case TypeNVarchar2:
		return true
	}
	return false
}
