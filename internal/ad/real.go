package ad

import "math"

// Real is the degenerate Scalar: a plain float64 with no derivative
// bookkeeping. It exists so the same generic pricing code also serves
// ordinary evaluation.
type Real float64

func (x Real) Add(y Real) Real        { return x + y }
func (x Real) Sub(y Real) Real        { return x - y }
func (x Real) Mul(y Real) Real        { return x * y }
func (x Real) Div(y Real) Real        { return x / y }
func (x Real) Neg() Real              { return -x }
func (x Real) AddReal(c float64) Real { return x + Real(c) }
func (x Real) MulReal(c float64) Real { return x * Real(c) }
func (x Real) Exp() Real              { return Real(math.Exp(float64(x))) }
func (x Real) Log() Real              { return Real(math.Log(float64(x))) }
func (x Real) Sqrt() Real             { return Real(math.Sqrt(float64(x))) }
func (x Real) Sin() Real              { return Real(math.Sin(float64(x))) }
func (x Real) Cos() Real              { return Real(math.Cos(float64(x))) }
func (x Real) Const(c float64) Real   { return Real(c) }
func (x Real) Value() float64         { return float64(x) }
