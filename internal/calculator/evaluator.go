package calculator

import (
	calcerrors "calc/internal/errors"
)

// Evaluate applies op to left and right.
// A zero divisor and an operator outside + - * / both return an
// *errors.OperationError; the result is 0 in that case.
func Evaluate(op Operator, left, right float64) (float64, error) {
	switch op {
	case Add:
		return left + right, nil
	case Subtract:
		return left - right, nil
	case Multiply:
		return left * right, nil
	case Divide:
		if right == 0 {
			return 0, calcerrors.NewDivisionByZeroError(rune(op))
		}
		return left / right, nil
	default:
		return 0, calcerrors.NewUnknownOperatorError(rune(op))
	}
}
