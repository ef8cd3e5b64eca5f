// Package service wraps the prediction engine with validation, logging,
// metrics and result caching.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/finishline/internal/logger"
	"github.com/yourusername/finishline/internal/metrics"
	"github.com/yourusername/finishline/internal/models"
	"github.com/yourusername/finishline/internal/predict"
)

// Error codes reported in logs and CLI output
const (
	CodeNoHorses       = "no_horses"
	CodeNameRequired   = "name_required"
	CodeDuplicateHorse = "duplicate_horse"
	CodeNoUsableOdds   = "no_usable_odds"
	CodeInvalidRequest = "invalid_request"
	CodeCanceled       = "canceled"
	CodeInternal       = "internal"
)

// PredictionService scores race tickets
type PredictionService struct {
	engine    *predict.Engine
	cache     *ResultCache
	validate  *validator.Validate
	logger    *logger.PredictionLogger
	recordMet bool
}

// Option configures a PredictionService
type Option func(*PredictionService)

// WithCache enables result caching
func WithCache(c *ResultCache) Option {
	return func(s *PredictionService) {
		s.cache = c
	}
}

// WithMetrics toggles Prometheus recording
func WithMetrics(enabled bool) Option {
	return func(s *PredictionService) {
		s.recordMet = enabled
	}
}

// NewPredictionService creates a new prediction service
func NewPredictionService(engine *predict.Engine, log *logrus.Logger, opts ...Option) *PredictionService {
	s := &PredictionService{
		engine:    engine,
		validate:  validator.New(),
		logger:    logger.NewPredictionLogger(log),
		recordMet: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.recordMet {
		metrics.InitRegistry()
	}
	return s
}

// Predict validates the request, consults the cache and runs the engine
func (s *PredictionService) Predict(ctx context.Context, req models.PredictionRequest) (*models.PredictionResult, error) {
	start := time.Now()
	requestID := uuid.New().String()
	s.logger.LogPredictionStarted(requestID, req.Race.Track, req.Race.Date, len(req.Horses))

	if err := ctx.Err(); err != nil {
		return nil, s.fail(requestID, start, err)
	}

	if err := s.validateRequest(req); err != nil {
		return nil, s.fail(requestID, start, err)
	}

	var key string
	if s.cache != nil {
		k, err := Fingerprint(req, predict.CalibrationVersion)
		if err != nil {
			return nil, s.fail(requestID, start, err)
		}
		key = k
		if cached := s.cache.Get(key); cached != nil {
			result := withRequestID(cached, requestID)
			s.complete(requestID, start, result, true)
			return result, nil
		}
	}

	result, err := s.engine.Predict(req)
	if err != nil {
		return nil, s.fail(requestID, start, err)
	}

	for _, h := range result.Horses {
		if h.Degraded {
			s.logger.LogDegradedOdds(requestID, h.Name, h.OddsRaw, h.MLDecimal)
		}
	}
	for _, name := range result.Rejected {
		s.logger.LogRejectedHorse(requestID, name)
	}

	if s.cache != nil {
		s.cache.Set(key, result)
	}

	result = withRequestID(result, requestID)
	s.complete(requestID, start, result, false)
	return result, nil
}

// validateRequest runs struct validation over the request
func (s *PredictionService) validateRequest(req models.PredictionRequest) error {
	if len(req.Horses) == 0 {
		return models.ErrNoHorses
	}
	if err := s.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fe := validationErrors[0]
			if fe.StructField() == "Name" && fe.Tag() == "required" {
				return fmt.Errorf("%w: %s", models.ErrHorseNameRequired, fe.Namespace())
			}
			return fmt.Errorf("%w: %s failed %s", models.ErrInvalidRequest, fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", models.ErrInvalidRequest, err)
	}
	return nil
}

func (s *PredictionService) complete(requestID string, start time.Time, result *models.PredictionResult, cached bool) {
	elapsed := time.Since(start)
	winPick := ""
	if result.Predictions.Win != nil {
		winPick = result.Predictions.Win.Name
	}
	bets := result.RecommendedBets()
	s.logger.LogPredictionCompleted(requestID, winPick, result.Meta.FieldSize, bets, cached,
		float64(elapsed.Microseconds())/1000.0)

	if !s.recordMet {
		return
	}
	if cached {
		metrics.RecordPrediction(metrics.OutcomeCached, elapsed.Seconds())
		return
	}
	metrics.RecordPrediction(metrics.OutcomeSuccess, elapsed.Seconds())
	metrics.RecordField(len(result.Horses), len(result.DegradedHorses()), len(result.Rejected))
	for _, h := range result.Horses {
		if h.BestBet != nil {
			metrics.RecordRecommendedBet(string(*h.BestBet))
		}
	}
}

func (s *PredictionService) fail(requestID string, start time.Time, err error) error {
	s.logger.LogPredictionFailed(requestID, ErrorCode(err), err)
	if s.recordMet {
		metrics.RecordPrediction(metrics.OutcomeError, time.Since(start).Seconds())
	}
	return err
}

// ErrorCode maps an error to its stable code
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, models.ErrNoHorses):
		return CodeNoHorses
	case errors.Is(err, models.ErrHorseNameRequired):
		return CodeNameRequired
	case errors.Is(err, models.ErrDuplicateHorse):
		return CodeDuplicateHorse
	case errors.Is(err, models.ErrNoUsableOdds):
		return CodeNoUsableOdds
	case errors.Is(err, models.ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CodeCanceled
	default:
		return CodeInternal
	}
}

// withRequestID returns a shallow copy stamped with the request ID
func withRequestID(result *models.PredictionResult, requestID string) *models.PredictionResult {
	out := *result
	out.Meta.RequestID = requestID
	return &out
}
