package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantgrad/greeks-engine/pkg/metrics"
	"github.com/quantgrad/greeks-engine/pkg/models"
)

// One recorder for the whole test package: promauto registers globally and
// duplicate registration panics.
var testRecorder = metrics.NewRecorder()

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	handlers := CreateHandlers(HandlerConfig{
		DefaultStrike: 10,
		TaylorStep:    0.5,
		TaylorOrder:   6,
	}, testRecorder)
	return NewServer(Config{RateLimit: 10000, RateBurst: 1000}, handlers, testRecorder)
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestGreeksEndpoint(t *testing.T) {
	s := newTestServer()
	w := postJSON(t, s, "/api/v1/greeks", models.OptionQuery{
		Spot: 12, Vol: 0.2, Expiry: 1, Rate: 0.03,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.GreeksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Gradient, 4)

	assert.InDelta(t, 0.8773026, resp.Greeks.Delta, 1e-6)
	assert.InDelta(t, 2.43829855, resp.Greeks.Vega, 1e-6)
	assert.InDelta(t, resp.ClosedForm.Delta, resp.Greeks.Delta, 1e-5)
}

func TestHessianEndpoint(t *testing.T) {
	s := newTestServer()
	w := postJSON(t, s, "/api/v1/hessian", models.OptionQuery{
		Spot: 10, Vol: 0.2, Expiry: 1, Rate: 0.03,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HessianResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Matrix, 4)

	assert.InDelta(t, 0.19340522, resp.Gamma, 1e-4)
	assert.InDelta(t, -0.0483, resp.Charm, 1e-3)
	assert.InDelta(t, resp.Matrix[0][0], resp.Gamma, 1e-12)
}

func TestTaylorEndpointDefaults(t *testing.T) {
	s := newTestServer()
	w := postJSON(t, s, "/api/v1/taylor", models.TaylorRequest{
		OptionQuery: models.OptionQuery{Spot: 12, Vol: 0.2, Expiry: 1, Rate: 0.03},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.TaylorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.5, resp.Step)
	assert.Len(t, resp.Coefficients, 7)
}

func TestPriceValidation(t *testing.T) {
	s := newTestServer()
	tests := []struct {
		name  string
		query models.OptionQuery
	}{
		{"negative vol", models.OptionQuery{Spot: 12, Vol: -0.2, Expiry: 1}},
		{"zero spot", models.OptionQuery{Vol: 0.2, Expiry: 1}},
		{"bad type", models.OptionQuery{Spot: 12, Vol: 0.2, Expiry: 1, Type: "butterfly"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, s, "/api/v1/price", tt.query)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestMalformedBodyReturnsBadRequest(t *testing.T) {
	s := newTestServer()
	paths := []string{
		"/api/v1/price", "/api/v1/greeks", "/api/v1/hessian",
		"/api/v1/taylor", "/api/v1/implied-vol",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte("{not json")))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			s.Engine().ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "invalid request body")
		})
	}
}

func TestTaylorBounds(t *testing.T) {
	s := newTestServer()
	base := models.OptionQuery{Spot: 12, Vol: 0.2, Expiry: 1, Rate: 0.03}

	t.Run("order too large", func(t *testing.T) {
		w := postJSON(t, s, "/api/v1/taylor", models.TaylorRequest{
			OptionQuery: base, Order: 4000,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("step too large", func(t *testing.T) {
		w := postJSON(t, s, "/api/v1/taylor", models.TaylorRequest{
			OptionQuery: base, Step: 1e6,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("max order accepted", func(t *testing.T) {
		w := postJSON(t, s, "/api/v1/taylor", models.TaylorRequest{
			OptionQuery: base, Order: 64,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.TaylorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Coefficients, 65)
	})
}

func TestImpliedVolEndpoint(t *testing.T) {
	s := newTestServer()

	// Market price of the reference call at σ=0.2.
	w := postJSON(t, s, "/api/v1/implied-vol", models.ImpliedVolRequest{
		Price: 2.4547249, Spot: 12, Expiry: 1, Rate: 0.03,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ImpliedVolResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 0.2, resp.Vol, 1e-3)
}

func TestImpliedVolNoConvergence(t *testing.T) {
	s := newTestServer()
	w := postJSON(t, s, "/api/v1/implied-vol", models.ImpliedVolRequest{
		Price: 50, Spot: 12, Expiry: 1, Rate: 0.03,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
