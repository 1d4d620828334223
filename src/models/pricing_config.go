package models

// PricingConfigYAML holds the server defaults loaded from the pricing
// config file. Zero values fall back to the constants below.
type PricingConfigYAML struct {
	DefaultNumSimulations int     `yaml:"default_num_simulations"`
	DefaultTimeSteps      int     `yaml:"default_time_steps"`
	DefaultRiskFreeRate   float64 `yaml:"default_risk_free_rate"`
	MaxPathSliceColumns   int     `yaml:"max_path_slice_columns"`
}

const (
	DefaultNumSimulations = 10000
	DefaultTimeSteps      = 10000
	MaxPathSliceColumns   = 1000
)

func (c *PricingConfigYAML) ApplyDefaults() {
	if c.DefaultNumSimulations <= 0 {
		c.DefaultNumSimulations = DefaultNumSimulations
	}

	if c.DefaultTimeSteps <= 0 {
		c.DefaultTimeSteps = DefaultTimeSteps
	}

	if c.MaxPathSliceColumns <= 0 {
		c.MaxPathSliceColumns = MaxPathSliceColumns
	}
}
