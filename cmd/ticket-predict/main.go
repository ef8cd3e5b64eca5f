package main

import (
	"fmt"
	"log"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/finishline/internal/config"
	"github.com/yourusername/finishline/internal/logger"
	"github.com/yourusername/finishline/internal/predict"
	"github.com/yourusername/finishline/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	appLogger  *logrus.Logger
	cfg        *config.Config
	svc        *service.PredictionService
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(parseOddsCmd)
	rootCmd.AddCommand(simulateCmd)
}

var rootCmd = &cobra.Command{
	Use:     "ticket-predict",
	Short:   "Score a race ticket from its morning-line odds",
	Long:    `Turns the horses on a race ticket into calibrated win/place/show probabilities, expected value and Kelly stakes.`,
	Version: fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	loaded, err := config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	if err := config.Validate(loaded); err != nil {
		return err
	}
	cfg = loaded
	return nil
}

func setupDependencies() error {
	appLogger = logger.NewLoggerForEnvironment(cfg.App.LogLevel, cfg.App.Environment)

	engineCfg, err := predict.FromConfig(&cfg.Engine)
	if err != nil {
		return err
	}
	engine, err := predict.NewEngine(engineCfg)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	opts := []service.Option{service.WithMetrics(cfg.Metrics.Enabled)}
	if cfg.Cache.Enabled {
		ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
		opts = append(opts, service.WithCache(service.NewResultCache(ttl, cfg.Cache.MaxSize)))
	}
	svc = service.NewPredictionService(engine, appLogger, opts...)

	appLogger.WithFields(logrus.Fields{
		"environment":         cfg.App.Environment,
		"calibration_version": predict.CalibrationVersion,
		"missing_odds_policy": cfg.Engine.MissingOddsPolicy,
		"multi_factor":        cfg.Engine.MultiFactor.Enabled,
	}).Debug("Engine ready")
	return nil
}
