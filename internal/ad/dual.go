package ad

import "gonum.org/v1/gonum/num/dual"

// Dual is a first-order forward-mode scalar backed by gonum's dual numbers.
// The infinitesimal part carries one directional derivative through every
// operation.
type Dual struct {
	num dual.Number
}

// NewDual returns a dual seeded with value v and derivative magnitude d.
func NewDual(v, d float64) Dual {
	return Dual{dual.Number{Real: v, Emag: d}}
}

// Deriv returns the propagated derivative magnitude.
func (x Dual) Deriv() float64 { return x.num.Emag }

func (x Dual) Add(y Dual) Dual { return Dual{dual.Add(x.num, y.num)} }
func (x Dual) Sub(y Dual) Dual { return Dual{dual.Sub(x.num, y.num)} }
func (x Dual) Mul(y Dual) Dual { return Dual{dual.Mul(x.num, y.num)} }
func (x Dual) Div(y Dual) Dual { return Dual{dual.Mul(x.num, dual.Inv(y.num))} }
func (x Dual) Neg() Dual       { return Dual{dual.Scale(-1, x.num)} }

func (x Dual) AddReal(c float64) Dual {
	return Dual{dual.Add(x.num, dual.Number{Real: c})}
}

func (x Dual) MulReal(c float64) Dual { return Dual{dual.Scale(c, x.num)} }

func (x Dual) Exp() Dual  { return Dual{dual.Exp(x.num)} }
func (x Dual) Log() Dual  { return Dual{dual.Log(x.num)} }
func (x Dual) Sqrt() Dual { return Dual{dual.Sqrt(x.num)} }
func (x Dual) Sin() Dual  { return Dual{dual.Sin(x.num)} }
func (x Dual) Cos() Dual  { return Dual{dual.Cos(x.num)} }

func (x Dual) Const(c float64) Dual { return Dual{dual.Number{Real: c}} }
func (x Dual) Value() float64       { return x.num.Real }

// Derivative evaluates f at x and returns its value and first derivative.
func Derivative(f func(Dual) Dual, x float64) (value, deriv float64) {
	y := f(NewDual(x, 1))
	return y.Value(), y.Deriv()
}

// Gradient returns the vector of first-order partial derivatives of f at x.
// One dual evaluation per coordinate: coordinate i is seeded with a unit
// infinitesimal while the others stay constant.
func Gradient(f func([]Dual) Dual, x []float64) []float64 {
	grad := make([]float64, len(x))
	args := make([]Dual, len(x))
	for i, v := range x {
		args[i] = NewDual(v, 0)
	}
	for i := range x {
		args[i] = NewDual(x[i], 1)
		grad[i] = f(args).Deriv()
		args[i] = NewDual(x[i], 0)
	}
	return grad
}
