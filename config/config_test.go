package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "greeks-engine", cfg.App.Name)
	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, 10.0, cfg.Pricing.Strike)
	assert.Equal(t, 0.03, cfg.Pricing.RiskFreeRate)
	assert.Equal(t, 6, cfg.Taylor.Order)
	assert.Equal(t, 0.5, cfg.Taylor.Step)
}
