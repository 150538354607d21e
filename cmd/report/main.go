// Command report prints a full sensitivity run over the reference
// scenarios: option value, forward-mode gradient and Hessian with their
// closed-form counterparts, and Taylor expansions.
package main

import (
	"flag"
	"fmt"

	"github.com/quantgrad/greeks-engine/config"
	"github.com/quantgrad/greeks-engine/internal/pricing"
	"github.com/quantgrad/greeks-engine/internal/report"
	"github.com/quantgrad/greeks-engine/pkg/utils/logger"
)

var (
	spot = flag.Float64("spot", 12, "underlying price")
	vol  = flag.Float64("vol", 0.2, "volatility")
	texp = flag.Float64("expiry", 1, "time to expiry in years")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.GetLogger("report.main").Fatalf("failed to load configuration: %v", err)
	}

	logger.Init(cfg.App.LogLevel, cfg.App.Environment)
	log := logger.GetLogger("report.main")

	pricer := pricing.NewPricer(cfg.Pricing.Strike)
	builder := report.New(pricer)
	rate := cfg.Pricing.RiskFreeRate

	log.Infof("sensitivity report for strike %.2f", cfg.Pricing.Strike)

	fmt.Println(builder.Sensitivities(pricing.OptionTypeCall, *spot, *vol, *texp, rate))
	fmt.Println(builder.Sensitivities(pricing.OptionTypeCall, cfg.Pricing.Strike, *vol, *texp, rate))
	fmt.Println(builder.SpotExpansion(pricing.OptionTypeCall, *spot, *vol, *texp, rate,
		cfg.Taylor.Step, cfg.Taylor.Order))
	fmt.Println(report.TaylorDemo(3, cfg.Taylor.Step, cfg.Taylor.Order))
}
