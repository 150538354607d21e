// Package report renders the numeric results of a sensitivity run as
// human-readable text: value, gradient, Hessian, Taylor coefficients and
// the closed-form cross-check.
package report

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/quantgrad/greeks-engine/internal/ad"
	"github.com/quantgrad/greeks-engine/internal/pricing"
)

var gradientLabels = [4]string{"delta (∂V/∂S)", "vega (∂V/∂σ)", "theta (∂V/∂T)", "rho (∂V/∂r)"}

// Builder renders reports for one pricer.
type Builder struct {
	pricer *pricing.Pricer
}

// New creates a report builder.
func New(pricer *pricing.Pricer) *Builder {
	return &Builder{pricer: pricer}
}

// Sensitivities reports the option value with its full first- and
// second-order sensitivity set at the given parameters, alongside the
// closed-form Greeks for comparison.
func (b *Builder) Sensitivities(typ pricing.OptionType, spot, vol, expiry, rate float64) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s option K=%.2f S=%.2f σ=%.2f T=%.2f r=%.2f\n",
		typ, b.pricer.Strike(), spot, vol, expiry, rate)
	fmt.Fprintf(&sb, "value: %.8f\n\n", b.pricer.Price(typ, spot, vol, expiry, rate))

	grad := b.pricer.Gradient(typ, spot, vol, expiry, rate)
	cf := b.pricer.ClosedFormGreeks(spot, vol, expiry, rate)
	closed := [4]float64{cf.Delta, cf.Vega, cf.Theta, cf.Rho}

	sb.WriteString("gradient [S σ T r]        forward-mode    closed-form\n")
	for i, label := range gradientLabels {
		fmt.Fprintf(&sb, "  %-22s %13.8f  %13.8f\n", label, grad[i], closed[i])
	}

	hess := b.pricer.Hessian(typ, spot, vol, expiry, rate)
	fmt.Fprintf(&sb, "\nhessian [S σ T r]:\n%v\n",
		mat.Formatted(hess, mat.Prefix(""), mat.Squeeze()))

	so := b.pricer.SecondOrder(typ, spot, vol, expiry, rate)
	fmt.Fprintf(&sb, "\ngamma: %.8f  vanna: %.8f  vomma: %.8f\n", so.Gamma, so.Vanna, so.Vomma)
	fmt.Fprintf(&sb, "charm: %.8f (closed form %.8f)\n",
		so.Charm, b.pricer.ClosedFormCharm(spot, vol, expiry, rate))

	return sb.String()
}

// SpotExpansion reports the Taylor coefficients of the option value in the
// spot direction.
func (b *Builder) SpotExpansion(typ pricing.OptionType, spot, vol, expiry, rate, step float64, order int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "taylor expansion of the %s value about S=%.2f with step %.2f:\n", typ, spot, step)
	coeffs := b.pricer.SpotExpansion(typ, spot, vol, expiry, rate, step, order)
	writeCoeffs(&sb, coeffs)
	return sb.String()
}

// TaylorDemo expands f(x) = x³ + sin(2x) − e^(−x) about the base point, the
// worked example the engine is usually introduced with.
func TaylorDemo(about, step float64, order int) string {
	coeffs := ad.Expand(func(x ad.Taylor) ad.Taylor {
		return x.Mul(x).Mul(x).Add(x.MulReal(2).Sin()).Sub(x.Neg().Exp())
	}, about, step, order)

	var sb strings.Builder
	fmt.Fprintf(&sb, "taylor coefficients of x³+sin(2x)−e^(−x) about %.2f, step %.2f:\n", about, step)
	writeCoeffs(&sb, coeffs)
	return sb.String()
}

func writeCoeffs(sb *strings.Builder, coeffs []float64) {
	for k, c := range coeffs {
		fmt.Fprintf(sb, "  h^%d  %13.8f\n", k, c)
	}
}
