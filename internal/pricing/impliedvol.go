package pricing

import (
	"math"

	"github.com/quantgrad/greeks-engine/internal/ad"
	"github.com/quantgrad/greeks-engine/pkg/utils/errors"
)

const (
	impliedVolGuess    = 0.2
	impliedVolFloor    = 0.001
	impliedVolCeiling  = 5.0
	impliedVolLimit    = 100
	impliedVolPriceTol = 1e-7
)

// ImpliedVol inverts the pricing function for volatility with
// Newton-Raphson. The vega in each step comes from a dual evaluation of the
// same generic pricer rather than a separate closed-form formula.
func (pr *Pricer) ImpliedVol(typ OptionType, marketPrice, spot, expiry, rate float64) (float64, error) {
	if marketPrice <= 0 {
		return 0, errors.InvalidArgument("market price must be positive")
	}

	sigma := impliedVolGuess
	for i := 0; i < impliedVolLimit; i++ {
		price, vega := ad.Derivative(func(v ad.Dual) ad.Dual {
			p := Params[ad.Dual]{
				Spot:   v.Const(spot),
				Vol:    v,
				Expiry: v.Const(expiry),
				Rate:   v.Const(rate),
			}
			return value(typ, p, pr.strike)
		}, sigma)

		diff := price - marketPrice
		if math.Abs(diff) < impliedVolPriceTol {
			return sigma, nil
		}
		if vega == 0 || math.IsNaN(vega) {
			return 0, errors.NoConvergence("vanishing vega in Newton step")
		}

		sigma -= diff / vega
		if sigma <= impliedVolFloor {
			sigma = impliedVolFloor
		} else if sigma > impliedVolCeiling {
			pr.log.Warnf("implied vol search left bounds for market price %.4f", marketPrice)
			return 0, errors.NoConvergence("implied volatility outside plausible range")
		}
	}

	return 0, errors.NoConvergence("implied volatility did not converge")
}
