package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/quantgrad/greeks-engine/pkg/utils/errors"
)

// Config for the whole application
type Config struct {
	App     AppConfig
	API     APIConfig
	Pricing PricingConfig
	Taylor  TaylorConfig
	Metrics MetricsConfig
}

// General application configuration
type AppConfig struct {
	Name        string
	Environment string
	LogLevel    string `mapstructure:"log_level"`
}

// Configuration for the API server
type APIConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimit       float64       `mapstructure:"rate_limit"`
	RateBurst       int           `mapstructure:"rate_burst"`
}

// Configuration for the pricing defaults applied when a request omits a
// field
type PricingConfig struct {
	Strike       float64
	RiskFreeRate float64 `mapstructure:"risk_free_rate"`
}

// Configuration for Taylor expansions
type TaylorConfig struct {
	Order int
	Step  float64
}

// Configuration for Prometheus metrics
type MetricsConfig struct {
	Enabled bool
	Port    int
}

// Load reads configuration from config/config.yaml and GREEKS_-prefixed
// environment variables. A missing file is fine; the defaults cover every
// key.
func Load() (*Config, error) {
	setDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	viper.SetEnvPrefix("GREEKS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &config, nil
}

func setDefaults() {
	// App defaults
	viper.SetDefault("app.name", "greeks-engine")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("app.log_level", "info")

	// API defaults
	viper.SetDefault("api.host", "0.0.0.0")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("api.read_timeout", "10s")
	viper.SetDefault("api.write_timeout", "10s")
	viper.SetDefault("api.shutdown_timeout", "30s")
	viper.SetDefault("api.rate_limit", 100)
	viper.SetDefault("api.rate_burst", 25)

	// Pricing defaults match the reference scenario
	viper.SetDefault("pricing.strike", 10.0)
	viper.SetDefault("pricing.risk_free_rate", 0.03)

	// Taylor defaults
	viper.SetDefault("taylor.order", 6)
	viper.SetDefault("taylor.step", 0.5)

	// Metrics defaults
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.port", 9090)
}
