package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/finishline/internal/config"
	"github.com/yourusername/finishline/internal/models"
)

func TestFromConfigShippedFileMatchesDefaults(t *testing.T) {
	cfg, err := config.LoadWithDefaults("../../config/config.yaml")
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))

	engineCfg, err := FromConfig(&cfg.Engine)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), engineCfg)
}

func TestFromConfigMissingFileMatchesDefaults(t *testing.T) {
	cfg, err := config.LoadWithDefaults("testdata/none.yaml")
	require.NoError(t, err)

	engineCfg, err := FromConfig(&cfg.Engine)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), engineCfg)
}

func TestFromConfigErrors(t *testing.T) {
	_, err := FromConfig(nil)
	assert.Error(t, err)

	cfg, err := config.LoadWithDefaults("testdata/none.yaml")
	require.NoError(t, err)
	cfg.Engine.MissingOddsPolicy = "guess"

	_, err = FromConfig(&cfg.Engine)
	assert.ErrorIs(t, err, models.ErrInvalidEngineConfig)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero slope", mutate: func(c *Config) { c.Calibration.Slope = 0 }},
		{name: "inverted bounds", mutate: func(c *Config) { c.Calibration.MinProb = 0.9 }},
		{name: "no pseudo trials", mutate: func(c *Config) { c.Calibration.PseudoTrials = 0 }},
		{name: "certain confidence", mutate: func(c *Config) { c.Calibration.ConfidenceLevel = 1 }},
		{name: "negative alpha", mutate: func(c *Config) { c.SmoothingAlpha = -1 }},
		{name: "zero stern exponent", mutate: func(c *Config) { c.Harville.SternExponent = 0 }},
		{name: "zero epsilon", mutate: func(c *Config) { c.Harville.Epsilon = 0 }},
		{name: "negative edge", mutate: func(c *Config) { c.Value.MinEdge = -0.1 }},
		{name: "kelly above one", mutate: func(c *Config) { c.Value.MaxKelly = 1.5 }},
		{name: "unknown policy", mutate: func(c *Config) { c.MissingOdds = "guess" }},
		{name: "fallback pays nothing", mutate: func(c *Config) { c.FallbackDecimalOdds = 1 }},
	}

	require.NoError(t, DefaultConfig().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), models.ErrInvalidEngineConfig)
		})
	}
}
