package calc

import "errors"

// ErrDivisionByZero is returned by [Calculator.Divide] when the divisor is
// zero. The sentinel is returned unwrapped, so callers can match it directly
// with [errors.Is].
//
// Example:
//
//	if errors.Is(err, calc.ErrDivisionByZero) {
//	    // the divisor was zero
//	}
var ErrDivisionByZero = errors.New("Cannot divide by zero")

// ErrInvalidDomain is returned by [Calculator.SquareRoot] when the argument
// is negative. Like [ErrDivisionByZero], it is returned unwrapped and can be
// matched with [errors.Is].
var ErrInvalidDomain = errors.New("Cannot calculate square root of negative number")
