package calc

import "math"

// Calculator provides six basic arithmetic operations over float64 operands.
// It carries no state, so the zero value is ready to use and any two
// instances are interchangeable. Every operation is a pure function; a single
// instance may be shared across goroutines without coordination.
type Calculator struct{}

// New returns a ready-to-use [Calculator].
func New() *Calculator {
	return &Calculator{}
}

// Add returns the sum of a and b.
func (c *Calculator) Add(a, b float64) float64 {
	return a + b
}

// Subtract returns the difference of a and b.
func (c *Calculator) Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns the product of a and b.
func (c *Calculator) Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns the quotient of a and b. Division by zero returns
// [ErrDivisionByZero] rather than an IEEE infinity; a negative zero divisor
// compares equal to zero and is rejected the same way.
//
// Example:
//
//	quotient, err := calc.New().Divide(7, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(quotient) // 3.5
func (c *Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Power returns base raised to the power of exponent, with [math.Pow]
// semantics for every special case: raising a negative base to a fractional
// exponent yields NaN, and raising any base to the power of zero yields 1.
func (c *Calculator) Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

// SquareRoot returns the square root of n, or [ErrInvalidDomain] when n is
// negative. Negative zero is not negative: SquareRoot(-0.0) succeeds and
// returns -0.0, as [math.Sqrt] does.
func (c *Calculator) SquareRoot(n float64) (float64, error) {
	if n < 0 {
		return 0, ErrInvalidDomain
	}
	return math.Sqrt(n), nil
}
