package oracle

import "github.com/ericlagergren/decimal"

// ParseOperand converts operand text to a decimal under ctx, rounding to
// the context precision on entry. The accepted forms are the decimal
// library's: integer, fixed-point, and scientific notation, optionally
// signed, plus the usual spellings of infinities and NaN. Text the library
// rejects yields an *OperandError.
//
// Callers must build ctx before parsing any operand. Conversion itself
// happens at the requested precision, so an operand carrying more digits
// than the context keeps is rounded here, not downstream.
func ParseOperand(ctx decimal.Context, s string) (*decimal.Big, error) {
	x := decimal.WithContext(ctx)
	if _, ok := x.SetString(s); !ok {
		return nil, &OperandError{Text: s}
	}
	return x.Round(ctx.Precision), nil
}
