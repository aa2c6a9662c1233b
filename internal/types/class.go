package types

import (
	"fmt"
	"strings"
)

// TypeClass is the coarse grouping used as a dispatch-table coordinate.
// The order is significant: it fixes the layout of both dispatch tables.
type TypeClass uint8

const (
	ClassNull TypeClass = iota
	ClassInt
	ClassUInt
	ClassFloat
	ClassDouble
	ClassNumber
	ClassDateTime
	ClassDate
	ClassTime
	ClassYear
	ClassString
	ClassExtend
	ClassUnknown
	ClassText
	ClassBit
	ClassEnumSet
	ClassEnumSetInner
	ClassOTimestamp
	ClassRaw
	ClassInterval
	ClassRowID
	ClassLob
	ClassJSON

	// ClassMax is the number of classes and the class of invalid tags.
	ClassMax
)

var classNames = [ClassMax]string{
	ClassNull:         "null",
	ClassInt:          "int",
	ClassUInt:         "uint",
	ClassFloat:        "float",
	ClassDouble:       "double",
	ClassNumber:       "number",
	ClassDateTime:     "datetime",
	ClassDate:         "date",
	ClassTime:         "time",
	ClassYear:         "year",
	ClassString:       "string",
	ClassExtend:       "extend",
	ClassUnknown:      "unknown",
	ClassText:         "text",
	ClassBit:          "bit",
	ClassEnumSet:      "enumset",
	ClassEnumSetInner: "enumset_inner",
	ClassOTimestamp:   "otimestamp",
	ClassRaw:          "raw",
	ClassInterval:     "interval",
	ClassRowID:        "rowid",
	ClassLob:          "lob",
	ClassJSON:         "json",
}

var classOf = [TypeMax]TypeClass{
	TypeNull:          ClassNull,
	TypeTinyInt:       ClassInt,
	TypeSmallInt:      ClassInt,
	TypeMediumInt:     ClassInt,
	TypeInt32:         ClassInt,
	TypeInt:           ClassInt,
	TypeUTinyInt:      ClassUInt,
	TypeUSmallInt:     ClassUInt,
	TypeUMediumInt:    ClassUInt,
	TypeUInt32:        ClassUInt,
	TypeUInt64:        ClassUInt,
	TypeFloat:         ClassFloat,
	TypeDouble:        ClassDouble,
	TypeUFloat:        ClassFloat,
	TypeUDouble:       ClassDouble,
	TypeNumber:        ClassNumber,
	TypeUNumber:       ClassNumber,
	TypeDateTime:      ClassDateTime,
	TypeTimestamp:     ClassDateTime,
	TypeDate:          ClassDate,
	TypeTime:          ClassTime,
	TypeYear:          ClassYear,
	TypeVarchar:       ClassString,
	TypeChar:          ClassString,
	TypeHexString:     ClassString,
	TypeExtend:        ClassExtend,
	TypeUnknown:       ClassUnknown,
	TypeTinyText:      ClassText,
	TypeText:          ClassText,
	TypeMediumText:    ClassText,
	TypeLongText:      ClassText,
	TypeBit:           ClassBit,
	TypeEnum:          ClassEnumSet,
	TypeSet:           ClassEnumSet,
	TypeEnumInner:     ClassEnumSetInner,
	TypeSetInner:      ClassEnumSetInner,
	TypeTimestampTZ:   ClassOTimestamp,
	TypeTimestampLTZ:  ClassOTimestamp,
	TypeTimestampNano: ClassOTimestamp,
	TypeRaw:           ClassRaw,
	TypeIntervalYM:    ClassInterval,
	TypeIntervalDS:    ClassInterval,
	TypeNumberFloat:   ClassNumber,
	TypeNVarchar2:     ClassString,
	TypeNChar:         ClassString,
	TypeURowID:        ClassRowID,
	TypeLob:           ClassLob,
	TypeJSON:          ClassJSON,
}

// ClassOf maps a concrete type to its dispatch class.
// Invalid tags map to ClassMax, which no table accepts.
func ClassOf(t ObjType) TypeClass {
	if !t.Valid() {
		return ClassMax
	}
	return classOf[t]
}

// Valid reports whether c is a real dispatch coordinate.
func (c TypeClass) Valid() bool {
	return c < ClassMax
}

// String returns the class name, or "class(N)" for out-of-range values.
func (c TypeClass) String() string {
	if !c.Valid() {
		return fmt.Sprintf("class(%d)", uint8(c))
	}
	return classNames[c]
}

// MarshalText encodes the class by name, so JSON output reads "int" rather
// than a number.
func (c TypeClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseTypeClass resolves a class name as printed by String.
func ParseTypeClass(name string) (TypeClass, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c := ClassNull; c < ClassMax; c++ {
		if classNames[c] == name {
			return c, nil
		}
	}
	return ClassMax, fmt.Errorf("unknown type class %q", name)
}

// IsNumeric reports whether values of c order on the number line.
func (c TypeClass) IsNumeric() bool {
	switch c {
	case ClassInt, ClassUInt, ClassFloat, ClassDouble, ClassNumber:
		return true
	}
	return false
}

// IsTemporal reports whether c holds date or time values.
func (c TypeClass) IsTemporal() bool {
	switch c {
	case ClassDateTime, ClassDate, ClassTime, ClassYear, ClassOTimestamp:
		return true
	}
	return false
}

// IsCharacter reports whether c compares through a collation.
func (c TypeClass) IsCharacter() bool {
	switch c {
	case ClassString, ClassText, ClassLob:
		return true
	}
	return false
}

// Classes returns every valid class in table order.
func Classes() []TypeClass {
	out := make([]TypeClass, 0, ClassMax)
	for c := ClassNull; c < ClassMax; c++ {
		out = append(out, c)
	}
	return out
}
