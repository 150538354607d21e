package pricing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/quantgrad/greeks-engine/internal/ad"
	"github.com/quantgrad/greeks-engine/pkg/utils/errors"
	"github.com/quantgrad/greeks-engine/pkg/utils/logger"
)

// OptionType distinguishes calls from puts.
type OptionType string

const (
	OptionTypeCall OptionType = "call"
	OptionTypePut  OptionType = "put"
)

// ParseOptionType maps a request string to an OptionType. Empty defaults to
// call, matching the reference scenarios.
func ParseOptionType(s string) (OptionType, error) {
	switch OptionType(s) {
	case OptionTypeCall, "":
		return OptionTypeCall, nil
	case OptionTypePut:
		return OptionTypePut, nil
	}
	return "", errors.InvalidArgumentf("unknown option type %q", s)
}

func value[T ad.Scalar[T]](typ OptionType, p Params[T], strike float64) T {
	if typ == OptionTypePut {
		return Put(p, strike)
	}
	return Call(p, strike)
}

// Pricer evaluates one option contract (fixed strike) and its sensitivities
// over the [spot, vol, expiry, rate] parameter vector.
type Pricer struct {
	strike float64
	log    *logger.Logger
}

// NewPricer creates a pricer for the given strike.
func NewPricer(strike float64) *Pricer {
	return &Pricer{
		strike: strike,
		log:    logger.GetLogger("pricing.pricer"),
	}
}

// Strike returns the contract strike.
func (pr *Pricer) Strike() float64 { return pr.strike }

// Price evaluates the option value at the given parameters.
func (pr *Pricer) Price(typ OptionType, spot, vol, expiry, rate float64) float64 {
	p := Params[ad.Real]{
		Spot:   ad.Real(spot),
		Vol:    ad.Real(vol),
		Expiry: ad.Real(expiry),
		Rate:   ad.Real(rate),
	}
	return value(typ, p, pr.strike).Value()
}

// Gradient returns the first-order sensitivities
// [∂V/∂S, ∂V/∂σ, ∂V/∂T, ∂V/∂r], one dual evaluation per coordinate.
func (pr *Pricer) Gradient(typ OptionType, spot, vol, expiry, rate float64) []float64 {
	return ad.Gradient(func(v []ad.Dual) ad.Dual {
		return value(typ, ParamsFromVector(v), pr.strike)
	}, []float64{spot, vol, expiry, rate})
}

// Hessian returns the 4×4 matrix of second-order sensitivities in the
// [spot, vol, expiry, rate] coordinate order.
func (pr *Pricer) Hessian(typ OptionType, spot, vol, expiry, rate float64) *mat.SymDense {
	return ad.Hessian(func(v []ad.Hyper) ad.Hyper {
		return value(typ, ParamsFromVector(v), pr.strike)
	}, []float64{spot, vol, expiry, rate})
}

// SpotExpansion returns the Taylor coefficients of the option value in the
// spot direction about the given parameters: coefficient k approximates the
// value change of a spot move of step via ∂ᵏV/∂Sᵏ·stepᵏ/k!.
func (pr *Pricer) SpotExpansion(typ OptionType, spot, vol, expiry, rate, step float64, order int) []float64 {
	return ad.Expand(func(x ad.Taylor) ad.Taylor {
		p := Params[ad.Taylor]{
			Spot:   x,
			Vol:    x.Const(vol),
			Expiry: x.Const(expiry),
			Rate:   x.Const(rate),
		}
		return value(typ, p, pr.strike)
	}, spot, step, order)
}
