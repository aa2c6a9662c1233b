package compare

import (
	"fmt"

	"github.com/roach88/objcmp/internal/types"
)

// ResultKind tags a materialized comparison result.
type ResultKind uint8

const (
	KindNull ResultKind = iota
	KindInt
	KindBool
)

func (k ResultKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	}
	return "null"
}

// ResultValue is a comparison result as a SQL value: an integer -1, 0 or 1
// for CMP, a boolean for predicates, or SQL NULL.
type ResultValue struct {
	kind ResultKind
	v    int64
}

// NullResult is the SQL NULL result.
var NullResult = ResultValue{}

func intResult(v int64) ResultValue { return ResultValue{kind: KindInt, v: v} }

func boolResultValue(b bool) ResultValue {
	if b {
		return ResultValue{kind: KindBool, v: 1}
	}
	return ResultValue{kind: KindBool}
}

func (v ResultValue) Kind() ResultKind { return v.kind }
func (v ResultValue) IsNull() bool     { return v.kind == KindNull }

// Int returns the ordering. It is meaningful only for KindInt.
func (v ResultValue) Int() int64 { return v.v }

// Bool returns the predicate answer. It is meaningful only for KindBool.
func (v ResultValue) Bool() bool { return v.v != 0 }

func (v ResultValue) String() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("%d", v.v)
	case KindBool:
		return fmt.Sprintf("%t", v.Bool())
	}
	return "NULL"
}

// CompareAndMaterialize evaluates l op r and returns the result as a SQL
// value. An unsupported pair is not an error: it returns needCast=true so the
// caller can insert a cast and retry. Incomparable operands and invariant
// violations are returned as errors.
func CompareAndMaterialize(l, r types.Value, ctx Context, op Operator) (ResultValue, bool, error) {
	res, err := dispatch(l, r, ctx, op)
	if err != nil {
		if IsUnsupportedPairError(err) {
			return NullResult, true, nil
		}
		return NullResult, false, err
	}
	switch {
	case res == Null:
		return NullResult, false, nil
	case op == CMP:
		return intResult(int64(res)), false, nil
	}
	return boolResultValue(res == True), false, nil
}
