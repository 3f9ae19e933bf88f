// Package calc provides a basic arithmetic calculator. It supports six
// operations over floating-point operands: addition, subtraction,
// multiplication, division, exponentiation, and square root.
//
// The main entry point is [Calculator], constructed with [New]. Operations
// that can fail on invalid input report the package-level sentinels
// [ErrDivisionByZero] and [ErrInvalidDomain]; callers match them with
// [errors.Is]. All other operations are total and never fail. NaN operands
// are never rejected and propagate through every operation, following IEEE
// 754 floating-point semantics.
package calc
