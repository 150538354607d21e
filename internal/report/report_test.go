package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantgrad/greeks-engine/internal/pricing"
)

func TestSensitivities(t *testing.T) {
	b := New(pricing.NewPricer(10))
	out := b.Sensitivities(pricing.OptionTypeCall, 12, 0.2, 1, 0.03)

	assert.Contains(t, out, "delta (∂V/∂S)")
	assert.Contains(t, out, "0.877302")
	assert.Contains(t, out, "hessian")
	assert.Contains(t, out, "charm")
}

func TestTaylorDemo(t *testing.T) {
	out := TaylorDemo(3, 0.5, 6)

	assert.Contains(t, out, "26.67")
	assert.Contains(t, out, "14.48")
	assert.Contains(t, out, "h^6")
}
