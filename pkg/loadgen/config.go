package loadgen

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the workload parameters for a generated order stream.
type Config struct {
	// Total number of operations to generate
	Operations int

	// Price grid: levels on each side around BasePrice, PriceStep apart
	PriceLevels int
	BasePrice   float64
	PriceStep   float64

	// Operation mix; the remainder after amend+cancel+best is adds
	AmendRatio  float64
	CancelRatio float64
	BestRatio   float64

	// Seed makes the stream reproducible
	Seed int64

	// MaxQuantity bounds the random order size
	MaxQuantity int
}

// LoadConfig loads workload configuration from environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("LOADTEST_OPERATIONS", 100000)
	v.SetDefault("LOADTEST_PRICE_LEVELS", 64)
	v.SetDefault("LOADTEST_BASE_PRICE", 100.0)
	v.SetDefault("LOADTEST_PRICE_STEP", 0.05)
	v.SetDefault("LOADTEST_AMEND_RATIO", 0.2)
	v.SetDefault("LOADTEST_CANCEL_RATIO", 0.3)
	v.SetDefault("LOADTEST_BEST_RATIO", 0.1)
	v.SetDefault("LOADTEST_SEED", 1)
	v.SetDefault("LOADTEST_MAX_QUANTITY", 100)

	// Allow environment variables
	v.AutomaticEnv()

	cfg := &Config{
		Operations:  v.GetInt("LOADTEST_OPERATIONS"),
		PriceLevels: v.GetInt("LOADTEST_PRICE_LEVELS"),
		BasePrice:   v.GetFloat64("LOADTEST_BASE_PRICE"),
		PriceStep:   v.GetFloat64("LOADTEST_PRICE_STEP"),
		AmendRatio:  v.GetFloat64("LOADTEST_AMEND_RATIO"),
		CancelRatio: v.GetFloat64("LOADTEST_CANCEL_RATIO"),
		BestRatio:   v.GetFloat64("LOADTEST_BEST_RATIO"),
		Seed:        v.GetInt64("LOADTEST_SEED"),
		MaxQuantity: v.GetInt("LOADTEST_MAX_QUANTITY"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.Operations <= 0 {
		return fmt.Errorf("operations must be positive, got %d", c.Operations)
	}
	if c.PriceLevels <= 0 {
		return fmt.Errorf("price levels must be positive, got %d", c.PriceLevels)
	}
	if c.PriceStep <= 0 {
		return fmt.Errorf("price step must be positive, got %g", c.PriceStep)
	}
	if c.MaxQuantity <= 0 {
		return fmt.Errorf("max quantity must be positive, got %d", c.MaxQuantity)
	}
	for _, ratio := range []float64{c.AmendRatio, c.CancelRatio, c.BestRatio} {
		if ratio < 0 || ratio > 1 {
			return fmt.Errorf("ratios must be within [0, 1], got %g", ratio)
		}
	}
	if sum := c.AmendRatio + c.CancelRatio + c.BestRatio; sum > 1 {
		return fmt.Errorf("amend+cancel+best ratios must not exceed 1, got %g", sum)
	}
	return nil
}
