// Package pricing implements European option pricing under Black-Scholes,
// written generically over the ad.Scalar surface so the same code yields
// values, Greeks, Hessians and Taylor expansions depending on the scalar
// type it runs on.
package pricing

import "github.com/quantgrad/greeks-engine/internal/ad"

// Params is the pricing parameter vector. The coordinate order is fixed as
// [spot, vol, expiry, rate] everywhere a flat vector or derivative matrix
// appears: gradients, Hessians and request payloads all follow it.
type Params[T ad.Scalar[T]] struct {
	Spot   T // underlying price, > 0
	Vol    T // volatility, > 0
	Expiry T // time to expiry in years, > 0
	Rate   T // continuously compounded risk-free rate
}

// ParamsFromVector builds Params from a flat [spot, vol, expiry, rate]
// vector.
func ParamsFromVector[T ad.Scalar[T]](v []T) Params[T] {
	return Params[T]{Spot: v[0], Vol: v[1], Expiry: v[2], Rate: v[3]}
}

// dOneTwo computes the Black-Scholes d1 and d2 terms. Domain requires
// spot, vol and expiry positive; outside it NaN propagates unchecked.
func dOneTwo[T ad.Scalar[T]](p Params[T], strike float64) (d1, d2 T) {
	volSqrtT := p.Vol.Mul(p.Expiry.Sqrt())
	halfVar := p.Vol.Mul(p.Vol).MulReal(0.5)
	d1 = p.Spot.MulReal(1 / strike).Log().
		Add(p.Rate.Add(halfVar).Mul(p.Expiry)).
		Div(volSqrtT)
	d2 = d1.Sub(volSqrtT)
	return d1, d2
}

// Call prices a European call: S·N(d1) − K·e^(−rT)·N(d2).
func Call[T ad.Scalar[T]](p Params[T], strike float64) T {
	d1, d2 := dOneTwo(p, strike)
	discounted := p.Rate.Mul(p.Expiry).Neg().Exp().MulReal(strike)
	return p.Spot.Mul(CDF(d1)).Sub(discounted.Mul(CDF(d2)))
}

// Put prices a European put: K·e^(−rT)·N(−d2) − S·N(−d1).
func Put[T ad.Scalar[T]](p Params[T], strike float64) T {
	d1, d2 := dOneTwo(p, strike)
	discounted := p.Rate.Mul(p.Expiry).Neg().Exp().MulReal(strike)
	return discounted.Mul(CDF(d2.Neg())).Sub(p.Spot.Mul(CDF(d1.Neg())))
}
