// Package oracle evaluates named mathematical functions over decimals at an
// arbitrary number of significant digits.
//
// It exists to produce reference values: a test suite for another
// arbitrary-precision library invokes the oracle with a function name, one
// or two operand strings, and a precision, and compares its own result
// against the digits the oracle prints.
//
// The catalogue of functions is closed and partitioned by arity, and names
// resolve by exact lookup only. Precision is carried by a context value
// established before any operand is parsed, so operand conversion already
// happens at the requested precision. Results that fall outside the real
// line arrive as values rather than errors: dividing by zero yields an
// infinity and domain violations yield NaN, both rendered with their usual
// tokens.
package oracle
