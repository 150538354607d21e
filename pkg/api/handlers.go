package api

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quantgrad/greeks-engine/internal/pricing"
	"github.com/quantgrad/greeks-engine/pkg/metrics"
	"github.com/quantgrad/greeks-engine/pkg/models"
	"github.com/quantgrad/greeks-engine/pkg/utils/errors"
	"github.com/quantgrad/greeks-engine/pkg/utils/logger"
)

// HandlerConfig carries the request defaults applied when a payload omits
// optional fields.
type HandlerConfig struct {
	DefaultStrike float64
	TaylorStep    float64
	TaylorOrder   int
}

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	config   HandlerConfig
	recorder *metrics.Recorder
	log      *logger.Logger
}

// CreateHandlers creates new API handlers
func CreateHandlers(config HandlerConfig, recorder *metrics.Recorder) *Handlers {
	return &Handlers{
		config:   config,
		recorder: recorder,
		log:      logger.GetLogger("api.handlers"),
	}
}

// HealthCheckHandler handles health check requests
func (h *Handlers) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// resolve validates a query and builds the pricer for its strike.
func (h *Handlers) resolve(q models.OptionQuery) (pricing.OptionType, *pricing.Pricer, error) {
	typ, err := pricing.ParseOptionType(q.Type)
	if err != nil {
		return "", nil, err
	}
	if q.Spot <= 0 || q.Vol <= 0 || q.Expiry <= 0 {
		return "", nil, errors.InvalidArgument("spot, vol and expiry must be positive")
	}
	strike := q.Strike
	if strike <= 0 {
		strike = h.config.DefaultStrike
	}
	return typ, pricing.NewPricer(strike), nil
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.TypeOf(err) {
	case errors.ErrorTypeInvalidArgument, errors.ErrorTypeDomain:
		status = http.StatusBadRequest
	case errors.ErrorTypeNoConvergence:
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// PriceHandler evaluates the option value
func (h *Handlers) PriceHandler(c *gin.Context) {
	var q models.OptionQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		respondError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	typ, pricer, err := h.resolve(q)
	if err != nil {
		respondError(c, err)
		return
	}

	start := time.Now()
	value := pricer.Price(typ, q.Spot, q.Vol, q.Expiry, q.Rate)
	h.recorder.RecordEvaluation("price", time.Since(start))

	c.JSON(http.StatusOK, models.PriceResponse{
		Strike: pricer.Strike(),
		Type:   string(typ),
		Value:  value,
	})
}

// GreeksHandler evaluates the first-order sensitivities
func (h *Handlers) GreeksHandler(c *gin.Context) {
	var q models.OptionQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		respondError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	typ, pricer, err := h.resolve(q)
	if err != nil {
		respondError(c, err)
		return
	}

	start := time.Now()
	value := pricer.Price(typ, q.Spot, q.Vol, q.Expiry, q.Rate)
	grad := pricer.Gradient(typ, q.Spot, q.Vol, q.Expiry, q.Rate)
	h.recorder.RecordEvaluation("gradient", time.Since(start))

	cf := pricer.ClosedFormGreeks(q.Spot, q.Vol, q.Expiry, q.Rate)

	c.JSON(http.StatusOK, models.GreeksResponse{
		Value:    value,
		Gradient: grad,
		Greeks: models.GreeksValues{
			Delta: grad[0], Vega: grad[1], Theta: grad[2], Rho: grad[3],
		},
		ClosedForm: models.GreeksValues{
			Delta: cf.Delta, Vega: cf.Vega, Theta: cf.Theta, Rho: cf.Rho,
		},
	})
}

// HessianHandler evaluates the second-order sensitivities
func (h *Handlers) HessianHandler(c *gin.Context) {
	var q models.OptionQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		respondError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	typ, pricer, err := h.resolve(q)
	if err != nil {
		respondError(c, err)
		return
	}

	start := time.Now()
	so := pricer.SecondOrder(typ, q.Spot, q.Vol, q.Expiry, q.Rate)
	h.recorder.RecordEvaluation("hessian", time.Since(start))

	n := so.Matrix.SymmetricDim()
	matrix := make([][]float64, n)
	for i := 0; i < n; i++ {
		matrix[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			matrix[i][j] = so.Matrix.At(i, j)
		}
	}

	c.JSON(http.StatusOK, models.HessianResponse{
		Matrix: matrix,
		Gamma:  so.Gamma,
		Vanna:  so.Vanna,
		Charm:  so.Charm,
		Vomma:  so.Vomma,
	})
}

// Expansion work grows quadratically with the order, so unauthenticated
// requests get a hard ceiling.
const (
	maxTaylorOrder = 64
	maxTaylorStep  = 100.0
)

// TaylorHandler evaluates a series expansion in the spot direction
func (h *Handlers) TaylorHandler(c *gin.Context) {
	var req models.TaylorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	typ, pricer, err := h.resolve(req.OptionQuery)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Order > maxTaylorOrder {
		respondError(c, errors.InvalidArgumentf("order must be at most %d", maxTaylorOrder))
		return
	}
	if math.IsNaN(req.Step) || math.Abs(req.Step) > maxTaylorStep {
		respondError(c, errors.InvalidArgumentf("step must be finite and at most %g in magnitude", maxTaylorStep))
		return
	}

	step := req.Step
	if step == 0 {
		step = h.config.TaylorStep
	}
	order := req.Order
	if order <= 0 {
		order = h.config.TaylorOrder
	}

	start := time.Now()
	coeffs := pricer.SpotExpansion(typ, req.Spot, req.Vol, req.Expiry, req.Rate, step, order)
	h.recorder.RecordEvaluation("taylor", time.Since(start))

	c.JSON(http.StatusOK, models.TaylorResponse{
		About:        req.Spot,
		Step:         step,
		Coefficients: coeffs,
	})
}

// ImpliedVolHandler inverts the price for volatility
func (h *Handlers) ImpliedVolHandler(c *gin.Context) {
	var req models.ImpliedVolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	typ, err := pricing.ParseOptionType(req.Type)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Spot <= 0 || req.Expiry <= 0 {
		respondError(c, errors.InvalidArgument("spot and expiry must be positive"))
		return
	}
	strike := req.Strike
	if strike <= 0 {
		strike = h.config.DefaultStrike
	}

	start := time.Now()
	vol, err := pricing.NewPricer(strike).ImpliedVol(typ, req.Price, req.Spot, req.Expiry, req.Rate)
	h.recorder.RecordEvaluation("implied_vol", time.Since(start))
	if err != nil {
		h.log.Warnf("implied vol failed for price %.4f: %v", req.Price, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ImpliedVolResponse{Vol: vol})
}
