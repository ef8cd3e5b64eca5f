// Package logger provides prediction-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// PredictionLogger provides dedicated logging for prediction requests.
type PredictionLogger struct {
	*logrus.Entry
}

// NewPredictionLogger creates a new prediction logger.
func NewPredictionLogger(baseLogger *logrus.Logger) *PredictionLogger {
	return &PredictionLogger{
		Entry: baseLogger.WithField("component", "prediction"),
	}
}

// LogPredictionStarted logs the arrival of a prediction request.
func (pl *PredictionLogger) LogPredictionStarted(requestID, track, date string, fieldSize int) {
	pl.WithFields(logrus.Fields{
		"request_id": requestID,
		"track":      track,
		"race_date":  date,
		"field_size": fieldSize,
	}).Info("Prediction started")
}

// LogDegradedOdds logs a horse scored on fallback odds.
func (pl *PredictionLogger) LogDegradedOdds(requestID, horse, rawOdds string, fallbackDecimal float64) {
	pl.WithFields(logrus.Fields{
		"request_id":       requestID,
		"horse":            horse,
		"ml_odds_raw":      rawOdds,
		"fallback_decimal": fallbackDecimal,
	}).Warn("Could not parse odds, using field average")
}

// LogRejectedHorse logs a horse dropped from the field for unusable odds.
func (pl *PredictionLogger) LogRejectedHorse(requestID, horse string) {
	pl.WithFields(logrus.Fields{
		"request_id": requestID,
		"horse":      horse,
	}).Warn("Horse rejected for unusable odds")
}

// LogPredictionCompleted logs a successful prediction.
func (pl *PredictionLogger) LogPredictionCompleted(requestID, winPick string, fieldSize, recommendedBets int, cached bool, durationMs float64) {
	pl.WithFields(logrus.Fields{
		"request_id":       requestID,
		"win_pick":         winPick,
		"field_size":       fieldSize,
		"recommended_bets": recommendedBets,
		"cached":           cached,
		"duration_ms":      durationMs,
	}).Info("Prediction completed")
}

// LogPredictionFailed logs a rejected or failed prediction.
func (pl *PredictionLogger) LogPredictionFailed(requestID, code string, err error) {
	pl.WithFields(logrus.Fields{
		"request_id": requestID,
		"code":       code,
	}).WithError(err).Error("Prediction failed")
}
