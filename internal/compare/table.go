package compare

import (
	"fmt"

	"github.com/roach88/objcmp/internal/types"
)

// pairFuncs holds the comparators for one (left class, right class) cell.
type pairFuncs struct {
	threeWay  threeWayFunc
	predicate predicateFunc
}

// opTable is the operator table. A nil cell means the pair needs a cast.
// Written only by init.
var opTable [types.ClassMax][types.ClassMax]*pairFuncs

func init() {
	buildOpTable()
	buildNullSafeTable()
}

func define(l, r types.TypeClass, f threeWayFunc) {
	defineWith(l, r, f, predicateOf(f))
}

func defineWith(l, r types.TypeClass, f threeWayFunc, p predicateFunc) {
	if opTable[l][r] != nil {
		panic(fmt.Sprintf("compare: %s vs %s defined twice", l, r))
	}
	opTable[l][r] = &pairFuncs{threeWay: f, predicate: p}
}

// defineMirrored registers l vs r and derives r vs l.
func defineMirrored(l, r types.TypeClass, f threeWayFunc) {
	defineMirroredWith(l, r, f, predicateOf(f))
}

func defineMirroredWith(l, r types.TypeClass, f threeWayFunc, p predicateFunc) {
	defineWith(l, r, f, p)
	defineWith(r, l, mirrorThreeWay(f), mirrorPredicate(p))
}

func buildOpTable() {
	const (
		cNull     = types.ClassNull
		cInt      = types.ClassInt
		cUInt     = types.ClassUInt
		cFloat    = types.ClassFloat
		cDouble   = types.ClassDouble
		cNumber   = types.ClassNumber
		cDateTime = types.ClassDateTime
		cDate     = types.ClassDate
		cTime     = types.ClassTime
		cYear     = types.ClassYear
		cString   = types.ClassString
		cExtend   = types.ClassExtend
		cUnknown  = types.ClassUnknown
		cText     = types.ClassText
		cBit      = types.ClassBit
		cEnumSet  = types.ClassEnumSet
		cInner    = types.ClassEnumSetInner
		cOTime    = types.ClassOTimestamp
		cRaw      = types.ClassRaw
		cInterval = types.ClassInterval
		cRowID    = types.ClassRowID
		cLob      = types.ClassLob
		cJSON     = types.ClassJSON
	)

	// NULL and the MIN/MAX sentinels pair with every class.
	define(cNull, cNull, nullVsNull)
	defineMirrored(cNull, cExtend, nullVsExtend)
	define(cExtend, cExtend, extendVsExtend)
	for _, c := range types.Classes() {
		if c == cNull || c == cExtend {
			continue
		}
		defineMirrored(cNull, c, nullVsAny)
		defineMirrored(cExtend, c, extendVsAny)
	}

	// Numbers.
	unsigned := []types.TypeClass{cUInt, cEnumSet}
	reals := []types.TypeClass{cFloat, cDouble}

	define(cInt, cInt, intVsInt)
	for _, u := range append(unsigned, cInner) {
		defineMirrored(u, cInt, unsignedVsInt)
	}
	for _, l := range unsigned {
		for _, r := range unsigned {
			define(l, r, unsignedVsUnsigned)
		}
	}
	defineMirrored(cInner, cUInt, unsignedVsUnsigned)

	for _, r := range reals {
		defineMirrored(cInt, r, intVsReal)
		for _, u := range append(unsigned, cInner) {
			defineMirrored(u, r, unsignedVsReal)
		}
	}
	define(cFloat, cFloat, floatVsFloat)
	defineMirrored(cFloat, cDouble, realVsReal)
	define(cDouble, cDouble, realVsReal)

	defineMirroredWith(cInt, cNumber, intVsNumber, withEquality(intVsNumber, intEqNumber))
	for _, u := range append(unsigned, cInner) {
		defineMirroredWith(u, cNumber, unsignedVsNumber, withEquality(unsignedVsNumber, unsignedEqNumber))
	}
	defineWith(cNumber, cNumber, numberVsNumber, withEquality(numberVsNumber, numberEqNumber))

	// Dates and times.
	define(cDateTime, cDateTime, dateTimeVsDateTime)
	defineMirrored(cDateTime, cOTime, dateTimeVsOTimestamp)
	define(cOTime, cOTime, oTimestampVsOTimestamp)
	define(cDate, cDate, signedPayloads)
	define(cTime, cTime, signedPayloads)
	define(cYear, cYear, unsignedPayloads)

	// Character data.
	for _, l := range []types.TypeClass{cString, cText} {
		for _, r := range []types.TypeClass{cString, cText} {
			define(l, r, stringVsString)
		}
	}
	define(cRaw, cRaw, rawVsRaw)
	define(cLob, cLob, lobVsLob)

	// Everything else orders only against its own class.
	define(cUnknown, cUnknown, signedPayloads)
	define(cBit, cBit, unsignedPayloads)
	define(cInterval, cInterval, intervalVsInterval)
	define(cRowID, cRowID, rowIDVsRowID)
	define(cJSON, cJSON, jsonVsJSON)
}

// Supported reports whether l and r can be compared without a cast. Invalid
// classes are never supported.
func Supported(l, r types.TypeClass) bool {
	return l.Valid() && r.Valid() && opTable[l][r] != nil
}

// Comparator is a resolved table cell bound to one operator. The zero value
// is not usable; obtain one from Lookup or CanCompare.
type Comparator struct {
	Left  types.TypeClass
	Right types.TypeClass
	Op    Operator

	funcs *pairFuncs
}

// Lookup returns the comparator for classes l and r under op.
func Lookup(l, r types.TypeClass, op Operator) (Comparator, bool) {
	if !op.Valid() || !Supported(l, r) {
		return Comparator{}, false
	}
	return Comparator{Left: l, Right: r, Op: op, funcs: opTable[l][r]}, true
}

// Compare runs the comparator. Operands must belong to the comparator's
// classes. The result may be Null or Incomparable.
func (c Comparator) Compare(a, b types.Value, ctx Context) Result {
	if c.Op == CMP {
		return c.funcs.threeWay(a, b, ctx)
	}
	return c.funcs.predicate(a, b, ctx, c.Op)
}
