// Package models defines the request and response payloads of the HTTP
// API.
package models

// OptionQuery is the common request body for pricing endpoints. Strike and
// rate fall back to configured defaults when omitted; type defaults to
// "call".
type OptionQuery struct {
	Spot   float64 `json:"spot"`
	Vol    float64 `json:"vol"`
	Expiry float64 `json:"expiry"`
	Rate   float64 `json:"rate"`
	Strike float64 `json:"strike,omitempty"`
	Type   string  `json:"type,omitempty"`
}

// PriceResponse carries a plain valuation.
type PriceResponse struct {
	Strike float64 `json:"strike"`
	Type   string  `json:"type"`
	Value  float64 `json:"value"`
}

// GreeksResponse carries the first-order sensitivities, both from forward-
// mode differentiation and from the closed-form formulas.
type GreeksResponse struct {
	Value      float64      `json:"value"`
	Gradient   []float64    `json:"gradient"`
	Greeks     GreeksValues `json:"greeks"`
	ClosedForm GreeksValues `json:"closed_form"`
}

// GreeksValues is one named set of first-order Greeks. Theta is ∂V/∂T.
type GreeksValues struct {
	Delta float64 `json:"delta"`
	Vega  float64 `json:"vega"`
	Theta float64 `json:"theta"`
	Rho   float64 `json:"rho"`
}

// HessianResponse carries the second-order sensitivities in the
// [spot, vol, expiry, rate] coordinate order.
type HessianResponse struct {
	Matrix [][]float64 `json:"matrix"`
	Gamma  float64     `json:"gamma"`
	Vanna  float64     `json:"vanna"`
	Charm  float64     `json:"charm"`
	Vomma  float64     `json:"vomma"`
}

// TaylorRequest asks for a series expansion of the option value in the
// spot direction.
type TaylorRequest struct {
	OptionQuery
	Step  float64 `json:"step,omitempty"`
	Order int     `json:"order,omitempty"`
}

// TaylorResponse carries series coefficients, low order first.
type TaylorResponse struct {
	About        float64   `json:"about"`
	Step         float64   `json:"step"`
	Coefficients []float64 `json:"coefficients"`
}

// ImpliedVolRequest asks for the volatility implied by a market price.
type ImpliedVolRequest struct {
	Price  float64 `json:"price"`
	Spot   float64 `json:"spot"`
	Expiry float64 `json:"expiry"`
	Rate   float64 `json:"rate"`
	Strike float64 `json:"strike,omitempty"`
	Type   string  `json:"type,omitempty"`
}

// ImpliedVolResponse carries the recovered volatility.
type ImpliedVolResponse struct {
	Vol float64 `json:"vol"`
}
