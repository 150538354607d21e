package pricing

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/quantgrad/greeks-engine/internal/ad"
)

// Greeks holds the first-order sensitivities of an option value. Theta here
// is ∂V/∂T, the sensitivity to time-to-expiry; calendar decay is its
// negation.
type Greeks struct {
	Delta float64 `json:"delta"`
	Vega  float64 `json:"vega"`
	Theta float64 `json:"theta"`
	Rho   float64 `json:"rho"`
}

// SecondOrder holds the named second-order sensitivities extracted from the
// Hessian, plus the full matrix.
type SecondOrder struct {
	Gamma  float64 // ∂²V/∂S²
	Vanna  float64 // ∂²V/∂S∂σ
	Charm  float64 // −∂²V/∂S∂T, delta decay as expiry approaches
	Vomma  float64 // ∂²V/∂σ²
	Matrix *mat.SymDense
}

// Greeks computes the first-order Greeks by automatic differentiation.
func (pr *Pricer) Greeks(typ OptionType, spot, vol, expiry, rate float64) Greeks {
	grad := pr.Gradient(typ, spot, vol, expiry, rate)
	return Greeks{Delta: grad[0], Vega: grad[1], Theta: grad[2], Rho: grad[3]}
}

// SecondOrder computes the second-order Greeks by automatic
// differentiation.
func (pr *Pricer) SecondOrder(typ OptionType, spot, vol, expiry, rate float64) SecondOrder {
	hess := pr.Hessian(typ, spot, vol, expiry, rate)
	return SecondOrder{
		Gamma:  hess.At(0, 0),
		Vanna:  hess.At(0, 1),
		Charm:  -hess.At(0, 2),
		Vomma:  hess.At(1, 1),
		Matrix: hess,
	}
}

// cdf and pdf are the approximator evaluated on plain floats.
func cdf(x float64) float64 { return CDF(ad.Real(x)).Value() }
func pdf(x float64) float64 { return PDF(ad.Real(x)).Value() }

// ClosedFormGreeks computes the call Greeks from the textbook formulas,
// using the same normal approximator the AD path traces. Serves as the
// analytic cross-check for the differentiated results.
func (pr *Pricer) ClosedFormGreeks(spot, vol, expiry, rate float64) Greeks {
	d1, d2 := dReal(spot, vol, expiry, rate, pr.strike)
	sqrtT := math.Sqrt(expiry)
	disc := pr.strike * math.Exp(-rate*expiry)

	return Greeks{
		Delta: cdf(d1),
		Vega:  spot * pdf(d1) * sqrtT,
		Theta: spot*pdf(d1)*vol/(2*sqrtT) + rate*disc*cdf(d2),
		Rho:   expiry * disc * cdf(d2),
	}
}

// ClosedFormGamma is φ(d1)/(S·σ·√T).
func (pr *Pricer) ClosedFormGamma(spot, vol, expiry, rate float64) float64 {
	d1, _ := dReal(spot, vol, expiry, rate, pr.strike)
	return pdf(d1) / (spot * vol * math.Sqrt(expiry))
}

// ClosedFormCharm is −φ(d1)·(2rT − d2·σ√T)/(2T·σ√T).
func (pr *Pricer) ClosedFormCharm(spot, vol, expiry, rate float64) float64 {
	d1, d2 := dReal(spot, vol, expiry, rate, pr.strike)
	volSqrtT := vol * math.Sqrt(expiry)
	return -pdf(d1) * (2*rate*expiry - d2*volSqrtT) / (2 * expiry * volSqrtT)
}

// ReferenceDelta computes the call delta with gonum's normal distribution
// instead of the polynomial approximator. Last-digit differences against
// the approximator are expected and bounded by its ~1e-7 accuracy.
func (pr *Pricer) ReferenceDelta(spot, vol, expiry, rate float64) float64 {
	d1, _ := dReal(spot, vol, expiry, rate, pr.strike)
	return distuv.UnitNormal.CDF(d1)
}

func dReal(spot, vol, expiry, rate, strike float64) (d1, d2 float64) {
	volSqrtT := vol * math.Sqrt(expiry)
	d1 = (math.Log(spot/strike) + (rate+0.5*vol*vol)*expiry) / volSqrtT
	return d1, d1 - volSqrtT
}
