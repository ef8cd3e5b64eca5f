package predict

import (
	"fmt"

	"github.com/yourusername/finishline/internal/config"
	"github.com/yourusername/finishline/internal/models"
)

// CalibrationVersion tags the static logistic correction shipped with the engine
const CalibrationVersion = "logit-v1"

// MissingOddsPolicy decides what happens to a horse whose odds do not parse
type MissingOddsPolicy string

// Missing odds policies
const (
	// PolicyFieldAverage scores the horse on the field's average decimal odds and flags it degraded
	PolicyFieldAverage MissingOddsPolicy = "field_average"
	// PolicyReject drops the horse from the field
	PolicyReject MissingOddsPolicy = "reject"
)

// CalibrationConfig holds the logistic recalibration constants.
// Intercept and Slope are fixed empirical priors, not fitted per request.
type CalibrationConfig struct {
	Intercept       float64
	Slope           float64
	MinProb         float64
	MaxProb         float64
	PseudoTrials    int
	ConfidenceLevel float64
}

// HarvilleConfig controls the place/show expansion
type HarvilleConfig struct {
	SternEnabled  bool
	SternExponent float64
	Epsilon       float64
}

// ValueConfig bounds the Kelly stake recommendation
type ValueConfig struct {
	MinEdge  float64
	MaxKelly float64
}

// MultiFactorConfig weights the optional trainer/jockey, pace and post adjustments
type MultiFactorConfig struct {
	Enabled            bool
	DefaultJTWinPct    float64
	JTWeight           float64
	EarlyPaceBoost     float64
	PressPaceBoost     float64
	SprintWidePenalty  float64
	SprintOuterPenalty float64
	RouteDrawPenalty   float64
}

// Config is the complete, explicit configuration of the engine
type Config struct {
	Calibration         CalibrationConfig
	SmoothingAlpha      float64
	Harville            HarvilleConfig
	Value               ValueConfig
	MissingOdds         MissingOddsPolicy
	FallbackDecimalOdds float64
	MultiFactor         MultiFactorConfig
}

// DefaultConfig returns the documented default constants
func DefaultConfig() Config {
	return Config{
		Calibration: CalibrationConfig{
			Intercept:       0.04,
			Slope:           0.92,
			MinProb:         0.0005,
			MaxProb:         0.85,
			PseudoTrials:    100,
			ConfidenceLevel: 0.95,
		},
		SmoothingAlpha: 0.6,
		Harville: HarvilleConfig{
			SternEnabled:  true,
			SternExponent: 0.95,
			Epsilon:       1e-9,
		},
		Value: ValueConfig{
			MinEdge:  0.01,
			MaxKelly: 0.25,
		},
		MissingOdds:         PolicyFieldAverage,
		FallbackDecimalOdds: 6.0,
		MultiFactor: MultiFactorConfig{
			Enabled:            false,
			DefaultJTWinPct:    12.0,
			JTWeight:           0.05,
			EarlyPaceBoost:     0.02,
			PressPaceBoost:     0.01,
			SprintWidePenalty:  0.03,
			SprintOuterPenalty: 0.02,
			RouteDrawPenalty:   0.02,
		},
	}
}

// FromConfig converts the application's engine section into an engine Config
func FromConfig(cfg *config.EngineConfig) (Config, error) {
	if cfg == nil {
		return Config{}, fmt.Errorf("engine config is required")
	}

	c := Config{
		Calibration: CalibrationConfig{
			Intercept:       cfg.Calibration.Intercept,
			Slope:           cfg.Calibration.Slope,
			MinProb:         cfg.Calibration.MinProb,
			MaxProb:         cfg.Calibration.MaxProb,
			PseudoTrials:    cfg.Calibration.PseudoTrials,
			ConfidenceLevel: cfg.Calibration.ConfidenceLevel,
		},
		SmoothingAlpha: cfg.SmoothingAlpha,
		Harville: HarvilleConfig{
			SternEnabled:  cfg.Harville.SternEnabled,
			SternExponent: cfg.Harville.SternExponent,
			Epsilon:       cfg.Harville.Epsilon,
		},
		Value: ValueConfig{
			MinEdge:  cfg.Value.MinEdge,
			MaxKelly: cfg.Value.MaxKelly,
		},
		MissingOdds:         MissingOddsPolicy(cfg.MissingOddsPolicy),
		FallbackDecimalOdds: cfg.FallbackDecimalOdds,
		MultiFactor: MultiFactorConfig{
			Enabled:            cfg.MultiFactor.Enabled,
			DefaultJTWinPct:    cfg.MultiFactor.DefaultJTWinPct,
			JTWeight:           cfg.MultiFactor.JTWeight,
			EarlyPaceBoost:     cfg.MultiFactor.EarlyPaceBoost,
			PressPaceBoost:     cfg.MultiFactor.PressPaceBoost,
			SprintWidePenalty:  cfg.MultiFactor.SprintWidePenalty,
			SprintOuterPenalty: cfg.MultiFactor.SprintOuterPenalty,
			RouteDrawPenalty:   cfg.MultiFactor.RouteDrawPenalty,
		},
	}

	return c, c.Validate()
}

// Validate checks the constants are usable
func (c Config) Validate() error {
	cal := c.Calibration
	if cal.Slope <= 0 {
		return fmt.Errorf("%w: calibration slope must be positive", models.ErrInvalidEngineConfig)
	}
	if cal.MinProb <= 0 || cal.MaxProb >= 1 || cal.MinProb >= cal.MaxProb {
		return fmt.Errorf("%w: calibration bounds must satisfy 0 < min_prob < max_prob < 1", models.ErrInvalidEngineConfig)
	}
	if cal.PseudoTrials <= 0 {
		return fmt.Errorf("%w: pseudo trials must be positive", models.ErrInvalidEngineConfig)
	}
	if cal.ConfidenceLevel <= 0 || cal.ConfidenceLevel >= 1 {
		return fmt.Errorf("%w: confidence level must be between 0 and 1", models.ErrInvalidEngineConfig)
	}
	if c.SmoothingAlpha < 0 {
		return fmt.Errorf("%w: smoothing alpha cannot be negative", models.ErrInvalidEngineConfig)
	}
	if c.Harville.SternEnabled && c.Harville.SternExponent <= 0 {
		return fmt.Errorf("%w: stern exponent must be positive", models.ErrInvalidEngineConfig)
	}
	if c.Harville.Epsilon <= 0 {
		return fmt.Errorf("%w: harville epsilon must be positive", models.ErrInvalidEngineConfig)
	}
	if c.Value.MinEdge < 0 {
		return fmt.Errorf("%w: min edge cannot be negative", models.ErrInvalidEngineConfig)
	}
	if c.Value.MaxKelly < 0 || c.Value.MaxKelly > 1 {
		return fmt.Errorf("%w: max kelly must be between 0 and 1", models.ErrInvalidEngineConfig)
	}
	switch c.MissingOdds {
	case PolicyFieldAverage, PolicyReject:
	default:
		return fmt.Errorf("%w: unknown missing odds policy %q", models.ErrInvalidEngineConfig, c.MissingOdds)
	}
	if c.FallbackDecimalOdds <= 1.0 {
		return fmt.Errorf("%w: fallback decimal odds must exceed 1.0", models.ErrInvalidEngineConfig)
	}
	return nil
}
