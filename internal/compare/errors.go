package compare

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/roach88/objcmp/internal/types"
)

// ErrorCode categorizes comparison failures.
type ErrorCode string

const (
	// ErrCodeUnsupportedPair means no direct comparator exists for the type
	// classes and operator. Callers insert a cast and retry.
	ErrCodeUnsupportedPair ErrorCode = "UNSUPPORTED_PAIR"

	// ErrCodeIncomparable means a comparator exists but could not order these
	// particular values (collation, timezone, interval subtype, payload).
	ErrCodeIncomparable ErrorCode = "INCOMPARABLE"

	// ErrCodeInvariantViolation means the caller broke a precondition the
	// engine relies on. It must be treated as fatal by the calling worker.
	ErrCodeInvariantViolation ErrorCode = "INVARIANT_VIOLATION"
)

// CompareError carries the structured fields shared by every comparison
// failure.
type CompareError struct {
	Code    ErrorCode
	Message string

	Left  types.ObjType
	Right types.ObjType
	Op    Operator
}

func (e *CompareError) Error() string {
	return fmt.Sprintf("%s: %s (left=%s, right=%s, op=%s)", e.Code, e.Message, e.Left, e.Right, e.Op)
}

func (e *CompareError) compareError() *CompareError { return e }

// UnsupportedPairError is returned when the operand classes need a cast.
type UnsupportedPairError struct {
	CompareError
}

// IncomparableError is returned when the comparator rejected the operands.
type IncomparableError struct {
	CompareError
}

// InvariantViolation is the typed fatal error. It is the panic payload of
// CompareNullSafe and the error returned by the Checked variants. The cause
// is an assertion failure, so errors.HasAssertionFailure reports true.
type InvariantViolation struct {
	CompareError
	cause error
}

func (e *InvariantViolation) Unwrap() error { return e.cause }

func newUnsupportedPairError(l, r types.ObjType, op Operator) *UnsupportedPairError {
	return &UnsupportedPairError{CompareError{
		Code:    ErrCodeUnsupportedPair,
		Message: fmt.Sprintf("%s and %s cannot be compared without a cast", l.Class(), r.Class()),
		Left:    l,
		Right:   r,
		Op:      op,
	}}
}

func newIncomparableError(l, r types.ObjType, op Operator) *IncomparableError {
	return &IncomparableError{CompareError{
		Code:    ErrCodeIncomparable,
		Message: "operands cannot be ordered under the requested rules",
		Left:    l,
		Right:   r,
		Op:      op,
	}}
}

func newInvariantViolation(l, r types.ObjType, op Operator, format string, args ...any) *InvariantViolation {
	cause := errors.AssertionFailedf(format, args...)
	return &InvariantViolation{
		CompareError: CompareError{
			Code:    ErrCodeInvariantViolation,
			Message: cause.Error(),
			Left:    l,
			Right:   r,
			Op:      op,
		},
		cause: cause,
	}
}

// AsCompareError extracts the structured fields from any comparison error in
// err's chain.
func AsCompareError(err error) (*CompareError, bool) {
	var ce interface{ compareError() *CompareError }
	if errors.As(err, &ce) {
		return ce.compareError(), true
	}
	return nil, false
}

// IsUnsupportedPairError returns true if err reports a pair needing a cast.
func IsUnsupportedPairError(err error) bool {
	var e *UnsupportedPairError
	return errors.As(err, &e)
}

// IsIncomparableError returns true if err reports operands that could not be
// ordered.
func IsIncomparableError(err error) bool {
	var e *IncomparableError
	return errors.As(err, &e)
}

// IsInvariantViolation returns true if err is the fatal invariant error.
func IsInvariantViolation(err error) bool {
	var e *InvariantViolation
	return errors.As(err, &e)
}
