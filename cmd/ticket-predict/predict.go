package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/finishline/internal/models"
	"github.com/yourusername/finishline/internal/service"
)

const defaultTimeout = 10 * time.Second

var (
	inputFile   string
	prettyPrint bool
	timeout     time.Duration
)

func init() {
	predictCmd.Flags().StringVarP(&inputFile, "input", "i", "-", "Path to the race JSON document, - for stdin")
	predictCmd.Flags().BoolVar(&prettyPrint, "pretty", false, "Indent the JSON output")
	predictCmd.Flags().DurationVar(&timeout, "timeout", defaultTimeout, "Maximum time to spend on the prediction")
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Score the horses in a race document",
	Long:  `Reads a race document with a list of horses and their morning-line odds and prints the scored field as JSON.`,
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
		return writeJSON(cmd.OutOrStdout(), result, prettyPrint)
	},
}

type errorDocument struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func readRequest(stdin io.Reader, path string) (models.PredictionRequest, error) {
	var req models.PredictionRequest

	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return req, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode race document: %w", err)
	}
	return req, nil
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
