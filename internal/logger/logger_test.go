package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	if err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerForEnvironmentLevels(t *testing.T) {
	log := NewLoggerForEnvironment("debug", "development")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	log = NewLoggerForEnvironment("nonsense", "production")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestPredictionLoggerStarted(t *testing.T) {
	log, buf := setupTestLogger()
	predictionLogger := NewPredictionLogger(log)

	predictionLogger.LogPredictionStarted("req_001", "Saratoga", "2024-08-03", 8)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "prediction", logEntry["component"])
	assert.Equal(t, "req_001", logEntry["request_id"])
	assert.Equal(t, "Saratoga", logEntry["track"])
	assert.Equal(t, float64(8), logEntry["field_size"])
	assert.Equal(t, "info", logEntry["level"])
}

func TestPredictionLoggerDegradedOdds(t *testing.T) {
	log, buf := setupTestLogger()
	predictionLogger := NewPredictionLogger(log)

	predictionLogger.LogDegradedOdds("req_001", "Mystery Colt", "N/A", 5.25)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "Mystery Colt", logEntry["horse"])
	assert.Equal(t, "N/A", logEntry["ml_odds_raw"])
	assert.Equal(t, 5.25, logEntry["fallback_decimal"])
	assert.Equal(t, "warning", logEntry["level"])
}

func TestPredictionLoggerRejectedHorse(t *testing.T) {
	log, buf := setupTestLogger()
	predictionLogger := NewPredictionLogger(log)

	predictionLogger.LogRejectedHorse("req_001", "Scratched Star")

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "Scratched Star", logEntry["horse"])
	assert.Equal(t, "warning", logEntry["level"])
}

func TestPredictionLoggerCompleted(t *testing.T) {
	log, buf := setupTestLogger()
	predictionLogger := NewPredictionLogger(log)

	predictionLogger.LogPredictionCompleted("req_001", "Favorite", 4, 2, true, 1.5)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "Favorite", logEntry["win_pick"])
	assert.Equal(t, float64(2), logEntry["recommended_bets"])
	assert.Equal(t, true, logEntry["cached"])
}

func TestPredictionLoggerFailed(t *testing.T) {
	log, buf := setupTestLogger()
	predictionLogger := NewPredictionLogger(log)

	predictionLogger.LogPredictionFailed("req_001", "no_horses", errors.New("no horses provided"))

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "no_horses", logEntry["code"])
	assert.Equal(t, "no horses provided", logEntry["error"])
	assert.Equal(t, "error", logEntry["level"])
}

func BenchmarkPredictionLoggerCompleted(b *testing.B) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	predictionLogger := NewPredictionLogger(log)

	for i := 0; i < b.N; i++ {
		predictionLogger.LogPredictionCompleted("req_001", "Favorite", 8, 1, false, 0.4)
	}
}
