// Package config provides configuration management for the FinishLine prediction engine.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable override
const EnvPrefix = "FINISHLINE"

// Load reads and parses the configuration from file and environment variables
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	// Read the configuration file
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v := newViper()

	// Read the expanded configuration
	if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(data)))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return unmarshal(v)
}

// LoadWithDefaults loads configuration with default values for every field
// If the file does not exist the defaults and environment variables are used alone
func LoadWithDefaults(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v := newViper()
	SetDefaults(v)

	if data, err := os.ReadFile(configPath); err == nil {
		if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(data)))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return unmarshal(v)
}

// SetDefaults registers the documented engine defaults on a viper instance
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "finishline")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("engine.calibration.intercept", 0.04)
	v.SetDefault("engine.calibration.slope", 0.92)
	v.SetDefault("engine.calibration.min_prob", 0.0005)
	v.SetDefault("engine.calibration.max_prob", 0.85)
	v.SetDefault("engine.calibration.pseudo_trials", 100)
	v.SetDefault("engine.calibration.confidence_level", 0.95)
	v.SetDefault("engine.smoothing_alpha", 0.6)
	v.SetDefault("engine.harville.stern_enabled", true)
	v.SetDefault("engine.harville.stern_exponent", 0.95)
	v.SetDefault("engine.harville.epsilon", 1e-9)
	v.SetDefault("engine.value.min_edge", 0.01)
	v.SetDefault("engine.value.max_kelly", 0.25)
	v.SetDefault("engine.missing_odds_policy", "field_average")
	v.SetDefault("engine.fallback_decimal_odds", 6.0)

	v.SetDefault("engine.multi_factor.enabled", false)
	v.SetDefault("engine.multi_factor.default_jt_win_pct", 12.0)
	v.SetDefault("engine.multi_factor.jt_weight", 0.05)
	v.SetDefault("engine.multi_factor.early_pace_boost", 0.02)
	v.SetDefault("engine.multi_factor.press_pace_boost", 0.01)
	v.SetDefault("engine.multi_factor.sprint_wide_penalty", 0.03)
	v.SetDefault("engine.multi_factor.sprint_outer_penalty", 0.02)
	v.SetDefault("engine.multi_factor.route_draw_penalty", 0.02)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.ttl_seconds", 300)
	v.SetDefault("cache.max_size", 1000)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	// Set environment variable prefix
	v.SetEnvPrefix(EnvPrefix)

	// Enable automatic binding of environment variables
	v.AutomaticEnv()

	// Replace dots with underscores in environment variable names
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}
