package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/yourusername/finishline/internal/models"
	"github.com/yourusername/finishline/internal/service"
	"github.com/yourusername/finishline/internal/simulate"
)

var (
	iterations int
	seed       int64
	bankroll   float64
)

func init() {
	simulateCmd.Flags().StringVarP(&inputFile, "input", "i", "-", "Path to the race JSON document, - for stdin")
	simulateCmd.Flags().BoolVar(&prettyPrint, "pretty", false, "Indent the JSON output")
	simulateCmd.Flags().DurationVar(&timeout, "timeout", defaultTimeout, "Maximum time to spend on the simulation")
	simulateCmd.Flags().IntVarP(&iterations, "iterations", "n", 10000, "Number of finishing orders to sample")
	simulateCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed, 0 for time based")
	simulateCmd.Flags().Float64Var(&bankroll, "bankroll", 1000, "Starting bankroll for the Kelly stakes")
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay a scored race by sampling finishing orders",
	Long:  `Scores a race document, then samples finishing orders from the win probabilities and settles the recommended Kelly win stakes against each one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := readRequest(cmd.InOrStdin(), inputFile)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		result, err := svc.Predict(ctx, req)
		if err != nil {
			_ = writeJSON(cmd.OutOrStdout(), errorDocument{Error: err.Error(), Code: service.ErrorCode(err)}, prettyPrint)
			return err
		}

		sim, err := simulate.RunMonteCarlo(ctx, result, simulate.MonteCarloConfig{
			Iterations:      iterations,
			Seed:            seed,
			InitialBankroll: bankroll,
		})
		if err != nil {
			return err
		}

		appLogger.WithField("request_id", result.Meta.RequestID).
			WithField("iterations", sim.Iterations).
			Info("Simulation completed")
		return writeJSON(cmd.OutOrStdout(), simulationDocument{Prediction: result, Simulation: sim}, prettyPrint)
	},
}

type simulationDocument struct {
	Prediction *models.PredictionResult  `json:"prediction"`
	Simulation simulate.MonteCarloResult `json:"simulation"`
}
