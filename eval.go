package oracle

import (
	"strconv"

	"github.com/ericlagergren/decimal"
)

// EvalUnary applies f to x and returns the result at ctx's precision. The
// result is a fresh value; x is not modified. Exceptional outcomes arrive
// as values: NaN for a domain violation, a signed infinity for overflow or
// division by zero.
func EvalUnary(ctx decimal.Context, f UnaryFunc, x *decimal.Big) *decimal.Big {
	return f(decimal.WithContext(ctx), x)
}

// EvalBinary applies f to x and y and returns the result at ctx's
// precision, under the same contract as EvalUnary.
func EvalBinary(ctx decimal.Context, f BinaryFunc, x, y *decimal.Big) *decimal.Big {
	return f(decimal.WithContext(ctx), x, y)
}

// Render returns the reported form of a result: the decimal library's
// canonical string. Finite values use plain positional notation while the
// adjusted exponent stays in the conventional range and scientific E
// notation outside it. Trailing zeros the computation produced are kept.
// Special values render as "Infinity", "-Infinity", and "NaN".
func Render(x *decimal.Big) string {
	return x.String()
}

// InvokeUnary runs the whole pipeline for one one-operand request: build
// the precision context, parse the operand under it, resolve the name, and
// evaluate and render the result. The context exists before the operand is
// parsed, so conversion already happens at the requested precision.
func InvokeUnary(name, operand string, digits int) (string, error) {
	if digits < MinPrecision {
		return "", &PrecisionError{Text: strconv.Itoa(digits)}
	}
	ctx := NewContext(digits)
	x, err := ParseOperand(ctx, operand)
	if err != nil {
		return "", err
	}
	f, err := Unary(name)
	if err != nil {
		return "", err
	}
	return Render(EvalUnary(ctx, f, x)), nil
}

// InvokeBinary is InvokeUnary for two-operand requests. Operands are parsed
// left to right.
func InvokeBinary(name, x, y string, digits int) (string, error) {
	if digits < MinPrecision {
		return "", &PrecisionError{Text: strconv.Itoa(digits)}
	}
	ctx := NewContext(digits)
	a, err := ParseOperand(ctx, x)
	if err != nil {
		return "", err
	}
	b, err := ParseOperand(ctx, y)
	if err != nil {
		return "", err
	}
	f, err := Binary(name)
	if err != nil {
		return "", err
	}
	return Render(EvalBinary(ctx, f, a, b)), nil
}
