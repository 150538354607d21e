package ad

import "math"

// Taylor is a truncated univariate Taylor jet: coefficient k holds the term
// f⁽ᵏ⁾(a)·hᵏ/k! of the expansion about the seeded base point. Arithmetic
// propagates whole series through every operation, so evaluating a function
// on a seeded jet yields its expansion to the jet's order. gonum's dual and
// hyperdual types stop at order two; this type carries arbitrary order.
type Taylor struct {
	c []float64
}

// NewTaylor returns the zero jet carrying order+1 coefficients.
func NewTaylor(order int) Taylor {
	if order < 0 {
		order = 0
	}
	return Taylor{c: make([]float64, order+1)}
}

// SeedTaylor returns the jet for the expansion variable itself: base point
// value with step as the first-order perturbation.
func SeedTaylor(value, step float64, order int) Taylor {
	x := NewTaylor(order)
	x.c[0] = value
	if order >= 1 {
		x.c[1] = step
	}
	return x
}

// Coeffs returns the series coefficients, low order first.
func (x Taylor) Coeffs() []float64 {
	out := make([]float64, len(x.c))
	copy(out, x.c)
	return out
}

// Order returns the truncation order of the jet.
func (x Taylor) Order() int { return len(x.c) - 1 }

// at reads coefficient k, treating missing high-order terms as zero.
func (x Taylor) at(k int) float64 {
	if k < len(x.c) {
		return x.c[k]
	}
	return 0
}

func (x Taylor) span(y Taylor) int {
	if len(y.c) > len(x.c) {
		return len(y.c)
	}
	return len(x.c)
}

func (x Taylor) Add(y Taylor) Taylor {
	n := x.span(y)
	z := Taylor{c: make([]float64, n)}
	for k := 0; k < n; k++ {
		z.c[k] = x.at(k) + y.at(k)
	}
	return z
}

func (x Taylor) Sub(y Taylor) Taylor {
	n := x.span(y)
	z := Taylor{c: make([]float64, n)}
	for k := 0; k < n; k++ {
		z.c[k] = x.at(k) - y.at(k)
	}
	return z
}

// Mul is the truncated Cauchy product.
func (x Taylor) Mul(y Taylor) Taylor {
	n := x.span(y)
	z := Taylor{c: make([]float64, n)}
	for k := 0; k < n; k++ {
		var sum float64
		for j := 0; j <= k; j++ {
			sum += x.at(j) * y.at(k-j)
		}
		z.c[k] = sum
	}
	return z
}

// Div solves z·y = x coefficient by coefficient.
func (x Taylor) Div(y Taylor) Taylor {
	n := x.span(y)
	z := Taylor{c: make([]float64, n)}
	for k := 0; k < n; k++ {
		sum := x.at(k)
		for j := 1; j <= k; j++ {
			sum -= y.at(j) * z.c[k-j]
		}
		z.c[k] = sum / y.at(0)
	}
	return z
}

func (x Taylor) Neg() Taylor { return x.MulReal(-1) }

func (x Taylor) AddReal(c float64) Taylor {
	z := Taylor{c: x.Coeffs()}
	z.c[0] += c
	return z
}

func (x Taylor) MulReal(c float64) Taylor {
	z := Taylor{c: make([]float64, len(x.c))}
	for k, v := range x.c {
		z.c[k] = c * v
	}
	return z
}

// Exp uses the recurrence k·eₖ = Σ j·aⱼ·eₖ₋ⱼ obtained from (eᵃ)' = a'·eᵃ.
func (x Taylor) Exp() Taylor {
	n := len(x.c)
	z := Taylor{c: make([]float64, n)}
	z.c[0] = math.Exp(x.c[0])
	for k := 1; k < n; k++ {
		var sum float64
		for j := 1; j <= k; j++ {
			sum += float64(j) * x.c[j] * z.c[k-j]
		}
		z.c[k] = sum / float64(k)
	}
	return z
}

// Log uses a·b' = a' with b = log a.
func (x Taylor) Log() Taylor {
	n := len(x.c)
	z := Taylor{c: make([]float64, n)}
	z.c[0] = math.Log(x.c[0])
	for k := 1; k < n; k++ {
		sum := float64(k) * x.c[k]
		for j := 1; j < k; j++ {
			sum -= float64(j) * z.c[j] * x.c[k-j]
		}
		z.c[k] = sum / (float64(k) * x.c[0])
	}
	return z
}

// Sqrt solves z·z = x coefficient by coefficient.
func (x Taylor) Sqrt() Taylor {
	n := len(x.c)
	z := Taylor{c: make([]float64, n)}
	z.c[0] = math.Sqrt(x.c[0])
	for k := 1; k < n; k++ {
		sum := x.c[k]
		for j := 1; j < k; j++ {
			sum -= z.c[j] * z.c[k-j]
		}
		z.c[k] = sum / (2 * z.c[0])
	}
	return z
}

func (x Taylor) Sin() Taylor {
	s, _ := x.sincos()
	return s
}

func (x Taylor) Cos() Taylor {
	_, c := x.sincos()
	return c
}

// sincos propagates both series together: the recurrences for sin and cos
// of a jet are mutually dependent.
func (x Taylor) sincos() (Taylor, Taylor) {
	n := len(x.c)
	s := Taylor{c: make([]float64, n)}
	c := Taylor{c: make([]float64, n)}
	s.c[0] = math.Sin(x.c[0])
	c.c[0] = math.Cos(x.c[0])
	for k := 1; k < n; k++ {
		var ssum, csum float64
		for j := 1; j <= k; j++ {
			ssum += float64(j) * x.c[j] * c.c[k-j]
			csum -= float64(j) * x.c[j] * s.c[k-j]
		}
		s.c[k] = ssum / float64(k)
		c.c[k] = csum / float64(k)
	}
	return s, c
}

func (x Taylor) Const(c float64) Taylor {
	z := Taylor{c: make([]float64, len(x.c))}
	z.c[0] = c
	return z
}

func (x Taylor) Value() float64 { return x.c[0] }

// Expand returns the Taylor coefficients of f about the base point with the
// given step: coefficient k is f⁽ᵏ⁾(about)·stepᵏ/k!.
func Expand(f func(Taylor) Taylor, about, step float64, order int) []float64 {
	return f(SeedTaylor(about, step, order)).Coeffs()
}
