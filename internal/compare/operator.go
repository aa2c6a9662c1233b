package compare

import (
	"fmt"
	"strings"
)

// Operator selects what a comparison produces: a boolean predicate for the
// six relational operators, or the raw three-way ordering for CMP.
type Operator uint8

const (
	EQ Operator = iota
	LE
	LT
	GE
	GT
	NE
	CMP

	operatorMax
)

var operatorNames = [operatorMax]string{
	EQ:  "eq",
	LE:  "le",
	LT:  "lt",
	GE:  "ge",
	GT:  "gt",
	NE:  "ne",
	CMP: "cmp",
}

// Valid reports whether op is a known operator.
func (op Operator) Valid() bool {
	return op < operatorMax
}

// IsPredicate reports whether op yields a boolean.
func (op Operator) IsPredicate() bool {
	return op < CMP
}

func (op Operator) String() string {
	if !op.Valid() {
		return fmt.Sprintf("operator(%d)", uint8(op))
	}
	return operatorNames[op]
}

// Symbol returns the SQL spelling of op.
func (op Operator) Symbol() string {
	switch op {
	case EQ:
		return "="
	case LE:
		return "<="
	case LT:
		return "<"
	case GE:
		return ">="
	case GT:
		return ">"
	case NE:
		return "<>"
	case CMP:
		return "<=>"
	}
	return op.String()
}

// Mirror returns the operator that gives the same answer with the operands
// swapped.
func (op Operator) Mirror() Operator {
	switch op {
	case LE:
		return GE
	case GE:
		return LE
	case LT:
		return GT
	case GT:
		return LT
	}
	return op
}

// Operators returns every valid operator in table order.
func Operators() []Operator {
	return []Operator{EQ, LE, LT, GE, GT, NE, CMP}
}

// ParseOperator accepts operator names ("lt") and SQL symbols ("<").
func ParseOperator(s string) (Operator, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for op := EQ; op < operatorMax; op++ {
		if operatorNames[op] == s || op.Symbol() == s {
			return op, nil
		}
	}
	switch s {
	case "==":
		return EQ, nil
	case "!=":
		return NE, nil
	case "three_way":
		return CMP, nil
	}
	return operatorMax, fmt.Errorf("unknown operator %q", s)
}

// apply reduces a three-way result to op's answer. Null and Incomparable
// pass through unchanged.
func (op Operator) apply(r Result) Result {
	if !r.IsOrdering() {
		return r
	}
	switch op {
	case EQ:
		return boolResult(r == Equal)
	case LE:
		return boolResult(r != Greater)
	case LT:
		return boolResult(r == Less)
	case GE:
		return boolResult(r != Less)
	case GT:
		return boolResult(r == Greater)
	case NE:
		return boolResult(r != Equal)
	}
	return r
}
