// Package config provides configuration management for the FinishLine prediction engine.
package config

// Config represents the complete application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Engine  EngineConfig  `mapstructure:"engine" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// EngineConfig represents the prediction engine's tunable constants
type EngineConfig struct {
	Calibration         CalibrationConfig `mapstructure:"calibration" validate:"required"`
	SmoothingAlpha      float64           `mapstructure:"smoothing_alpha" validate:"gte=0"`
	Harville            HarvilleConfig    `mapstructure:"harville" validate:"required"`
	Value               ValueConfig       `mapstructure:"value" validate:"required"`
	MissingOddsPolicy   string            `mapstructure:"missing_odds_policy" validate:"required,oddspolicy"`
	FallbackDecimalOdds float64           `mapstructure:"fallback_decimal_odds" validate:"required,gt=1"`
	MultiFactor         MultiFactorConfig `mapstructure:"multi_factor"`
}

// CalibrationConfig represents the logistic recalibration constants
type CalibrationConfig struct {
	Intercept       float64 `mapstructure:"intercept"`
	Slope           float64 `mapstructure:"slope" validate:"required,gt=0"`
	MinProb         float64 `mapstructure:"min_prob" validate:"required,gt=0,lt=1"`
	MaxProb         float64 `mapstructure:"max_prob" validate:"required,gt=0,lt=1"`
	PseudoTrials    int     `mapstructure:"pseudo_trials" validate:"required,gt=0"`
	ConfidenceLevel float64 `mapstructure:"confidence_level" validate:"required,gt=0,lt=1"`
}

// HarvilleConfig represents the place/show expansion settings
type HarvilleConfig struct {
	SternEnabled  bool    `mapstructure:"stern_enabled"`
	SternExponent float64 `mapstructure:"stern_exponent" validate:"required,gt=0"`
	Epsilon       float64 `mapstructure:"epsilon" validate:"required,gt=0"`
}

// ValueConfig represents the EV and Kelly staking limits
type ValueConfig struct {
	MinEdge  float64 `mapstructure:"min_edge" validate:"gte=0"`
	MaxKelly float64 `mapstructure:"max_kelly" validate:"gte=0,lte=1"`
}

// MultiFactorConfig represents the optional handicapping adjustments
type MultiFactorConfig struct {
	Enabled            bool    `mapstructure:"enabled"`
	DefaultJTWinPct    float64 `mapstructure:"default_jt_win_pct" validate:"gte=0,lte=100"`
	JTWeight           float64 `mapstructure:"jt_weight" validate:"gte=0"`
	EarlyPaceBoost     float64 `mapstructure:"early_pace_boost" validate:"gte=0,lt=1"`
	PressPaceBoost     float64 `mapstructure:"press_pace_boost" validate:"gte=0,lt=1"`
	SprintWidePenalty  float64 `mapstructure:"sprint_wide_penalty" validate:"gte=0,lt=1"`
	SprintOuterPenalty float64 `mapstructure:"sprint_outer_penalty" validate:"gte=0,lt=1"`
	RouteDrawPenalty   float64 `mapstructure:"route_draw_penalty" validate:"gte=0,lt=1"`
}

// MetricsConfig represents metrics configuration
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// CacheConfig represents the prediction result cache
type CacheConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	TTLSeconds int  `mapstructure:"ttl_seconds" validate:"gte=0"`
	MaxSize    int  `mapstructure:"max_size" validate:"gte=0"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
