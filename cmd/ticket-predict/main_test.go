package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/finishline/internal/models"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", "testdata/missing.yaml"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseOddsCommand(t *testing.T) {
	out, err := runCommand(t, "", "parse-odds", "7/2", "+350", "SCR")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "fractional")
	assert.Contains(t, lines[1], "4.5000")
	assert.Contains(t, lines[1], "7-2")
	assert.Contains(t, lines[2], "moneyline")
	assert.Contains(t, lines[3], "absent")
}

func TestPredictCommandFromFile(t *testing.T) {
	out, err := runCommand(t, "", "predict", "--input", "testdata/race.json")
	require.NoError(t, err)

	var result models.PredictionResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "ticket-only", result.Mode)
	assert.Equal(t, 4, result.Meta.FieldSize)
	require.NotNil(t, result.Predictions.Win)
	assert.Equal(t, "Bravo", result.Predictions.Win.Name)
}

func TestPredictCommandFromStdinEmptyField(t *testing.T) {
	out, err := runCommand(t, `{"race": {}, "horses": []}`, "predict", "--input", "-")
	require.Error(t, err)

	var doc errorDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "no_horses", doc.Code)
	assert.Equal(t, "no horses provided", doc.Error)
}

func TestSimulateCommand(t *testing.T) {
	out, err := runCommand(t, "", "simulate", "--input", "testdata/race.json", "--iterations", "500", "--seed", "11")
	require.NoError(t, err)

	var doc struct {
		Prediction models.PredictionResult `json:"prediction"`
		Simulation struct {
			Iterations int   `json:"iterations"`
			Seed       int64 `json:"seed"`
			Horses     []struct {
				Name string  `json:"name"`
				Show float64 `json:"show"`
			} `json:"horses"`
		} `json:"simulation"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 500, doc.Simulation.Iterations)
	assert.Equal(t, int64(11), doc.Simulation.Seed)
	require.Len(t, doc.Simulation.Horses, 4)
	assert.Equal(t, "Alpha", doc.Simulation.Horses[0].Name)
	assert.NotEmpty(t, doc.Prediction.Meta.RequestID)
}
