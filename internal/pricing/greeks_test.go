package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelta(t *testing.T) {
	pr := NewPricer(refStrike)

	adDelta := pr.Greeks(OptionTypeCall, refSpot, refVol, refExpiry, refRate).Delta
	cfDelta := pr.ClosedFormGreeks(refSpot, refVol, refExpiry, refRate).Delta
	refDelta := pr.ReferenceDelta(refSpot, refVol, refExpiry, refRate)

	assert.InDelta(t, 0.8773026, adDelta, 1e-6)
	assert.InDelta(t, cfDelta, adDelta, 1e-5)
	assert.InDelta(t, refDelta, adDelta, 1e-5)
}

func TestGradient(t *testing.T) {
	pr := NewPricer(refStrike)
	grad := pr.Gradient(OptionTypeCall, refSpot, refVol, refExpiry, refRate)
	require.Len(t, grad, 4)

	want := []float64{0.87730282, 2.43829855, 0.48601709, 8.07291282}
	for i, w := range want {
		assert.InDelta(t, w, grad[i], 1e-6, "gradient component %d", i)
	}
}

func TestGradientMatchesClosedForm(t *testing.T) {
	pr := NewPricer(refStrike)
	got := pr.Greeks(OptionTypeCall, refSpot, refVol, refExpiry, refRate)
	cf := pr.ClosedFormGreeks(refSpot, refVol, refExpiry, refRate)

	assert.InDelta(t, cf.Delta, got.Delta, 1e-5)
	assert.InDelta(t, cf.Vega, got.Vega, 1e-4)
	assert.InDelta(t, cf.Theta, got.Theta, 1e-4)
	assert.InDelta(t, cf.Rho, got.Rho, 1e-4)
}

func TestHessian(t *testing.T) {
	pr := NewPricer(refStrike)

	// At the money: K=10, S=10, σ=0.2, T=1, r=0.03. The ∂²/∂T² and
	// ∂²/∂T∂r entries are cross-checked against central finite
	// differences of Call at the same point.
	hess := pr.Hessian(OptionTypeCall, 10, refVol, refExpiry, refRate)
	require.Equal(t, 4, hess.SymmetricDim())

	want := [][]float64{
		{0.19340522, -0.09682358, 0.04830366, 1.93405216},
		{-0.09682358, 0.24204836, 1.81257802, -4.8349186},
		{0.04830366, 1.81257802, -0.20705784, 4.99107022},
		{1.93405216, -4.8349186, 4.99107022, 14.29480367},
	}
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, want[i][j], hess.At(i, j), 1e-4, "hessian[%d][%d]", i, j)
		}
	}
}

func TestHessianTimeEntriesMatchFiniteDifferences(t *testing.T) {
	pr := NewPricer(refStrike)
	hess := pr.Hessian(OptionTypeCall, 10, refVol, refExpiry, refRate)

	const h = 1e-4
	price := func(expiry, rate float64) float64 {
		return pr.Price(OptionTypeCall, 10, refVol, expiry, rate)
	}

	dTT := (price(refExpiry+h, refRate) - 2*price(refExpiry, refRate) +
		price(refExpiry-h, refRate)) / (h * h)
	dTr := (price(refExpiry+h, refRate+h) - price(refExpiry+h, refRate-h) -
		price(refExpiry-h, refRate+h) + price(refExpiry-h, refRate-h)) / (4 * h * h)

	assert.InDelta(t, dTT, hess.At(2, 2), 1e-5)
	assert.InDelta(t, dTr, hess.At(2, 3), 1e-5)
}

func TestSecondOrderGreeks(t *testing.T) {
	pr := NewPricer(refStrike)
	so := pr.SecondOrder(OptionTypeCall, 10, refVol, refExpiry, refRate)

	assert.InDelta(t, 0.19340522, so.Gamma, 1e-4)
	assert.InDelta(t, -0.09682358, so.Vanna, 1e-4)
	assert.InDelta(t, 0.24204836, so.Vomma, 1e-4)
	assert.InDelta(t, so.Gamma, pr.ClosedFormGamma(10, refVol, refExpiry, refRate), 1e-4)
}

func TestCharm(t *testing.T) {
	pr := NewPricer(refStrike)
	so := pr.SecondOrder(OptionTypeCall, 10, refVol, refExpiry, refRate)

	assert.InDelta(t, -0.0483, so.Charm, 1e-3)
	assert.InDelta(t, pr.ClosedFormCharm(10, refVol, refExpiry, refRate), so.Charm, 1e-3)
}

func TestPutDelta(t *testing.T) {
	pr := NewPricer(refStrike)
	call := pr.Greeks(OptionTypeCall, refSpot, refVol, refExpiry, refRate).Delta
	put := pr.Greeks(OptionTypePut, refSpot, refVol, refExpiry, refRate).Delta

	// Parity: call delta − put delta = 1.
	assert.InDelta(t, 1.0, call-put, 1e-5)
	assert.Less(t, put, 0.0)
}
