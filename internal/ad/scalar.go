// Package ad is the boundary between the pricing code and the forward-mode
// differentiation engine. Numeric functions are written once against the
// Scalar interface; evaluating them with Real gives plain values, with Dual
// gives first derivatives, with Hyper gives second derivatives and with
// Taylor gives truncated series expansions.
package ad

// Scalar is the arithmetic surface an AD-transparent function is written
// against. Every operation the function performs must go through these
// methods so that a derivative-carrying implementation can trace it.
//
// Implementations may be branched on only through Value(); branching on
// anything else would hide control flow from the chain rule.
type Scalar[T any] interface {
	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	Div(y T) T
	Neg() T

	// AddReal and MulReal apply a plain constant.
	AddReal(c float64) T
	MulReal(c float64) T

	Exp() T
	Log() T
	Sqrt() T
	Sin() T
	Cos() T

	// Const returns a constant of the receiver's shape.
	Const(c float64) T

	// Value returns the zeroth-order (undifferentiated) value.
	Value() float64
}
