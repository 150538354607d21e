package ad

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/hyperdual"
)

// Hyper is a second-order forward-mode scalar backed by gonum's hyperdual
// numbers. Two independent infinitesimals propagate a pair of first
// derivatives and their mixed second derivative.
type Hyper struct {
	num hyperdual.Number
}

// NewHyper returns a hyperdual seeded with value v and the two
// infinitesimal magnitudes d1 and d2.
func NewHyper(v, d1, d2 float64) Hyper {
	return Hyper{hyperdual.Number{Real: v, E1mag: d1, E2mag: d2}}
}

// Deriv2 returns the propagated mixed second derivative.
func (x Hyper) Deriv2() float64 { return x.num.E1E2mag }

func (x Hyper) Add(y Hyper) Hyper { return Hyper{hyperdual.Add(x.num, y.num)} }
func (x Hyper) Sub(y Hyper) Hyper { return Hyper{hyperdual.Sub(x.num, y.num)} }
func (x Hyper) Mul(y Hyper) Hyper { return Hyper{hyperdual.Mul(x.num, y.num)} }

func (x Hyper) Div(y Hyper) Hyper {
	return Hyper{hyperdual.Mul(x.num, hyperdual.Inv(y.num))}
}

func (x Hyper) Neg() Hyper {
	return Hyper{hyperdual.Mul(x.num, hyperdual.Number{Real: -1})}
}

func (x Hyper) AddReal(c float64) Hyper {
	return Hyper{hyperdual.Add(x.num, hyperdual.Number{Real: c})}
}

func (x Hyper) MulReal(c float64) Hyper {
	return Hyper{hyperdual.Mul(x.num, hyperdual.Number{Real: c})}
}

func (x Hyper) Exp() Hyper  { return Hyper{hyperdual.Exp(x.num)} }
func (x Hyper) Log() Hyper  { return Hyper{hyperdual.Log(x.num)} }
func (x Hyper) Sqrt() Hyper { return Hyper{hyperdual.Sqrt(x.num)} }
func (x Hyper) Sin() Hyper  { return Hyper{hyperdual.Sin(x.num)} }
func (x Hyper) Cos() Hyper  { return Hyper{hyperdual.Cos(x.num)} }

func (x Hyper) Const(c float64) Hyper { return Hyper{hyperdual.Number{Real: c}} }
func (x Hyper) Value() float64        { return x.num.Real }

// Hessian returns the matrix of second-order partial derivatives of f at x.
// Entry (i,j) comes from one hyperdual evaluation with the first
// infinitesimal seeded on coordinate i and the second on coordinate j;
// symmetry halves the work to n(n+1)/2 evaluations.
func Hessian(f func([]Hyper) Hyper, x []float64) *mat.SymDense {
	n := len(x)
	hess := mat.NewSymDense(n, nil)
	args := make([]Hyper, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			for k, v := range x {
				args[k] = NewHyper(v, 0, 0)
			}
			if i == j {
				args[i] = NewHyper(x[i], 1, 1)
			} else {
				args[i] = NewHyper(x[i], 1, 0)
				args[j] = NewHyper(x[j], 0, 1)
			}
			hess.SetSym(i, j, f(args).Deriv2())
		}
	}
	return hess
}
