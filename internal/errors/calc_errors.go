package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is the reason carried by an OperationError when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnknownOperator is the reason carried by an OperationError for an operator outside + - * /.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrMissingToken is wrapped by an InputError when the input ends early.
	ErrMissingToken = errors.New("missing token")
	// ErrTokenTooLong is wrapped by an InputError when an operand exceeds the token limit.
	ErrTokenTooLong = errors.New("token too long")
)

// OperationError represents a failure to apply an operator to its operands
type OperationError struct {
	Op     rune
	Reason error
}

// Error implements the error interface
func (e *OperationError) Error() string {
	return fmt.Sprintf("operation %q failed: %v", e.Op, e.Reason)
}

func (e *OperationError) Unwrap() error {
	return e.Reason
}

// InputError represents input that could not be read as "<op> <num1> <num2>"
type InputError struct {
	Field string // "operator", "left" or "right"
	Token string
	Err   error
}

// Error implements the error interface
func (e *InputError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("invalid input for %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid input for %s %q: %v", e.Field, e.Token, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewDivisionByZeroError creates an OperationError for a zero divisor
func NewDivisionByZeroError(op rune) *OperationError {
	return &OperationError{Op: op, Reason: ErrDivisionByZero}
}

// NewUnknownOperatorError creates an OperationError for an unsupported operator
func NewUnknownOperatorError(op rune) *OperationError {
	return &OperationError{Op: op, Reason: ErrUnknownOperator}
}

// NewInputError creates a new InputError
func NewInputError(field, token string, err error) *InputError {
	return &InputError{
		Field: field,
		Token: token,
		Err:   err,
	}
}

// Outcome classifies err into a short label used for metrics and logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrUnknownOperator):
		return "unknown_operator"
	default:
		var inErr *InputError
		if errors.As(err, &inErr) {
			return "input_error"
		}
		return "internal_error"
	}
}
