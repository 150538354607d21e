package pricing

import (
	"math"

	"github.com/quantgrad/greeks-engine/internal/ad"
)

// Horner coefficients of the rational erfc approximation, highest order
// first. The literal digits are load-bearing: tests pin results to ~7
// significant figures against these exact values.
var erfcPoly = [...]float64{
	0.17087277,
	-0.82215223,
	1.48851587,
	-1.13520398,
	0.27886807,
	-0.18628806,
	0.09678418,
	0.37409196,
	1.00002368,
}

const erfcExpShift = -1.26551223

var invSqrt2Pi = 1 / math.Sqrt(2*math.Pi)

// Erfc approximates the complementary error function using only elementary
// arithmetic and exp, so every operation stays visible to the derivative
// chain.
//
// The sign fold branches on Value() alone; both branches evaluate the same
// smooth kernel, so derivatives propagate cleanly across it.
func Erfc[T ad.Scalar[T]](x T) T {
	z := x
	if x.Value() < 0 {
		z = x.Neg()
	}
	t := x.Const(1).Div(z.MulReal(0.5).AddReal(1))
	poly := t.Const(erfcPoly[0])
	for _, c := range erfcPoly[1:] {
		poly = t.Mul(poly).AddReal(c)
	}
	r := t.Mul(z.Mul(z).Neg().AddReal(erfcExpShift).Add(t.Mul(poly)).Exp())
	if x.Value() < 0 {
		return r.Neg().AddReal(2)
	}
	return r
}

// CDF approximates the standard normal cumulative distribution function,
// accurate to about seven significant digits.
func CDF[T ad.Scalar[T]](x T) T {
	return Erfc(x.MulReal(1 / math.Sqrt2)).MulReal(-0.5).AddReal(1)
}

// PDF is the standard normal density.
func PDF[T ad.Scalar[T]](x T) T {
	return x.Mul(x).MulReal(-0.5).Exp().MulReal(invSqrt2Pi)
}
