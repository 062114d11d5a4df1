package oracle

import (
	"sort"

	"github.com/ericlagergren/decimal"
	"github.com/ericlagergren/decimal/math"
)

// UnaryFunc is a function of one decimal operand. Implementations set z to
// the result, rounded to the precision of z's context, and return z. The
// operand is never modified.
type UnaryFunc func(z, x *decimal.Big) *decimal.Big

// BinaryFunc is a function of two decimal operands, with the same receiver
// contract as UnaryFunc.
type BinaryFunc func(z, x, y *decimal.Big) *decimal.Big

// extraPrecision is the number of guard digits composed entries carry on
// intermediate values so the final rounding keeps clean digits.
const extraPrecision = 8

var (
	one = decimal.New(1, 0)
	two = decimal.New(2, 0)
)

var unaryFuncs = map[string]UnaryFunc{
	"abs":   func(z, x *decimal.Big) *decimal.Big { return z.Abs(x) },
	"exp":   math.Exp,
	"ln":    math.Log,
	"log10": math.Log10,
	"sqrt":  math.Sqrt,

	// trig
	"acos": math.Acos,
	"asin": math.Asin,
	"atan": math.Atan,
	"cos":  math.Cos,
	"sin":  math.Sin,
	"tan":  math.Tan,

	// hyperbolic, composed from exp and ln
	"acosh": acosh,
	"asinh": asinh,
	"atanh": atanh,
	"cosh":  cosh,
	"sinh":  sinh,
	"tanh":  tanh,

	// rounding to integers
	"ceil":  ceil,
	"floor": floor,
}

var binaryFuncs = map[string]BinaryFunc{
	"add":      func(z, x, y *decimal.Big) *decimal.Big { return z.Add(x, y) },
	"divide":   func(z, x, y *decimal.Big) *decimal.Big { return z.Quo(x, y) },
	"mod":      func(z, x, y *decimal.Big) *decimal.Big { return z.Rem(x, y) },
	"multiply": func(z, x, y *decimal.Big) *decimal.Big { return z.Mul(x, y) },
	"power":    math.Pow,
	"subtract": func(z, x, y *decimal.Big) *decimal.Big { return z.Sub(x, y) },

	// atan2 takes the ordinate first: atan2(y, x).
	"atan2": math.Atan2,
	"hypot": hypot,
	// log is the logarithm of x in base b: log(x, b).
	"log": logBase,
}

// Unary resolves name among the one-operand functions. Resolution is an
// exact lookup: no case folding, no aliasing. A missing name yields an
// *UnknownFunctionError.
func Unary(name string) (UnaryFunc, error) {
	f, ok := unaryFuncs[name]
	if !ok {
		return nil, &UnknownFunctionError{Name: name, Arity: 1}
	}
	return f, nil
}

// Binary resolves name among the two-operand functions, under the same
// rules as Unary.
func Binary(name string) (BinaryFunc, error) {
	f, ok := binaryFuncs[name]
	if !ok {
		return nil, &UnknownFunctionError{Name: name, Arity: 2}
	}
	return f, nil
}

// UnaryNames returns the names of the one-operand functions, sorted.
func UnaryNames() []string {
	return names(unaryFuncs)
}

// BinaryNames returns the names of the two-operand functions, sorted.
func BinaryNames() []string {
	return names(binaryFuncs)
}

func names[F any](m map[string]F) []string {
	r := make([]string, 0, len(m))
	for name := range m {
		r = append(r, name)
	}
	sort.Strings(r)
	return r
}

// guarded returns a scratch decimal carrying z's context widened by
// extraPrecision working digits.
func guarded(z *decimal.Big) *decimal.Big {
	ctx := z.Context
	ctx.Precision += extraPrecision
	return decimal.WithContext(ctx)
}

// rounded copies w into z at z's own precision.
func rounded(z, w *decimal.Big) *decimal.Big {
	return z.Copy(w).Round(z.Context.Precision)
}

// sinh(x) = (e^x - e^-x) / 2
func sinh(z, x *decimal.Big) *decimal.Big {
	w := guarded(z)
	u := guarded(z)
	math.Exp(w, x)
	u.Neg(x)
	math.Exp(u, u)
	w.Sub(w, u)
	w.Quo(w, two)
	return rounded(z, w)
}

// cosh(x) = (e^x + e^-x) / 2
func cosh(z, x *decimal.Big) *decimal.Big {
	w := guarded(z)
	u := guarded(z)
	math.Exp(w, x)
	u.Neg(x)
	math.Exp(u, u)
	w.Add(w, u)
	w.Quo(w, two)
	return rounded(z, w)
}

// tanh(x) = 1 - 2/(e^(2x) + 1), a form that stays finite where e^(2x)
// overflows to infinity and keeps the right sign at both ends.
func tanh(z, x *decimal.Big) *decimal.Big {
	w := guarded(z)
	u := guarded(z)
	u.Mul(x, two)
	math.Exp(u, u)
	u.Add(u, one)
	w.Quo(two, u)
	w.Sub(one, w)
	return rounded(z, w)
}

// asinh(x) = ln(x + sqrt(x*x + 1))
func asinh(z, x *decimal.Big) *decimal.Big {
	w := guarded(z)
	w.Mul(x, x)
	w.Add(w, one)
	math.Sqrt(w, w)
	w.Add(w, x)
	math.Log(w, w)
	return rounded(z, w)
}

// acosh(x) = ln(x + sqrt(x*x - 1)), NaN below x = 1.
func acosh(z, x *decimal.Big) *decimal.Big {
	w := guarded(z)
	w.Mul(x, x)
	w.Sub(w, one)
	math.Sqrt(w, w)
	w.Add(w, x)
	math.Log(w, w)
	return rounded(z, w)
}

// atanh(x) = ln((1+x)/(1-x)) / 2, infinite at x = ±1 and NaN beyond.
func atanh(z, x *decimal.Big) *decimal.Big {
	w := guarded(z)
	u := guarded(z)
	w.Add(one, x)
	u.Sub(one, x)
	w.Quo(w, u)
	math.Log(w, w)
	w.Quo(w, two)
	return rounded(z, w)
}

func floor(z, x *decimal.Big) *decimal.Big {
	z.Context.RoundingMode = decimal.ToNegativeInf
	return z.Copy(x).RoundToInt()
}

func ceil(z, x *decimal.Big) *decimal.Big {
	z.Context.RoundingMode = decimal.ToPositiveInf
	return z.Copy(x).RoundToInt()
}

// hypot(x, y) = sqrt(x*x + y*y)
func hypot(z, x, y *decimal.Big) *decimal.Big {
	w := guarded(z)
	u := guarded(z)
	w.Mul(x, x)
	u.Mul(y, y)
	w.Add(w, u)
	math.Sqrt(w, w)
	return rounded(z, w)
}

// logBase(x, b) = ln(x) / ln(b)
func logBase(z, x, b *decimal.Big) *decimal.Big {
	w := guarded(z)
	u := guarded(z)
	math.Log(w, x)
	math.Log(u, b)
	w.Quo(w, u)
	return rounded(z, w)
}
