package oracle

import (
	"strconv"

	"github.com/ericlagergren/decimal"
)

// MinPrecision is the smallest usable precision, one significant digit.
const MinPrecision = 1

// ParsePrecision converts the precision argument to a digit count. Anything
// that is not an integer of at least MinPrecision yields a *PrecisionError.
func ParsePrecision(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < MinPrecision {
		return 0, &PrecisionError{Text: s}
	}
	return n, nil
}

// NewContext returns the decimal context for one evaluation at the given
// number of significant digits. The context is a plain value; every stage
// of an evaluation receives it explicitly, and nothing in this package
// holds precision as process state.
//
// Exceptional results are not trapped: division by zero produces an
// infinity and domain violations produce NaN, and both flow through
// evaluation and rendering as ordinary values.
func NewContext(digits int) decimal.Context {
	return decimal.Context{
		Precision:     digits,
		RoundingMode:  decimal.ToNearestEven,
		OperatingMode: decimal.GDA,
	}
}
