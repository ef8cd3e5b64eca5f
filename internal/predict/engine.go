// Package predict turns a field of morning-line odds into calibrated
// win/place/show probabilities, expected value and Kelly stakes.
//
// The engine is a pure function of its request and configuration: it keeps
// no state between calls and is safe for concurrent use.
package predict

import (
	"fmt"
	"strings"

	"github.com/yourusername/finishline/internal/models"
	"github.com/yourusername/finishline/internal/odds"
)

// ModeTicketOnly labels results computed from ticket fields alone
const ModeTicketOnly = "ticket-only"

// Engine runs the odds-to-picks pipeline
type Engine struct {
	cfg        Config
	calibrator *Calibrator
	estimator  *PlaceShowEstimator
	value      *ValueEngine
	scorer     *FactorScorer
}

// NewEngine validates the configuration and builds an engine
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:        cfg,
		calibrator: NewCalibrator(cfg.Calibration),
		estimator:  NewPlaceShowEstimator(cfg.Harville),
		value:      NewValueEngine(cfg.Value),
		scorer:     NewFactorScorer(cfg.MultiFactor),
	}, nil
}

// Config returns the engine's configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// fieldEntry is a horse that made it into the scored field
type fieldEntry struct {
	index    int
	horse    models.HorseEntry
	quote    odds.Quote
	decimal  float64
	degraded bool
}

// Predict scores every horse in the request
func (e *Engine) Predict(req models.PredictionRequest) (*models.PredictionResult, error) {
	if len(req.Horses) == 0 {
		return nil, models.ErrNoHorses
	}
	if err := checkNames(req.Horses); err != nil {
		return nil, err
	}

	field, rejected := e.buildField(req.Horses)
	if len(field) == 0 {
		return nil, fmt.Errorf("%w: %d horses rejected", models.ErrNoUsableOdds, len(rejected))
	}

	n := len(field)
	pRaw := make([]float64, n)
	for i, f := range field {
		pRaw[i] = e.impliedProbability(f.decimal)
	}

	pCorrected := CorrectOverround(pRaw)
	pCalibrated := e.calibrator.CalibrateAll(pCorrected)

	boosts := make([]float64, n)
	adjusted := pCalibrated
	if e.cfg.MultiFactor.Enabled {
		entries := make([]models.HorseEntry, n)
		for i, f := range field {
			entries[i] = f.horse
		}
		boosts = e.scorer.Boosts(entries, req.Race)
		adjusted = e.scorer.Apply(pCalibrated, boosts)
	} else {
		for i := range boosts {
			boosts[i] = 1.0
		}
	}

	pWin := SmoothFieldSize(adjusted, e.cfg.SmoothingAlpha)
	pPlace, pShow := e.estimator.PlaceShow(pWin)

	horses := make([]models.ScoredHorse, n)
	for i, f := range field {
		low, high := e.calibrator.Interval(pWin[i])
		winOdds := f.decimal
		metrics := e.value.Evaluate(
			BetQuote{Prob: pWin[i], Odds: &winOdds},
			BetQuote{Prob: pPlace[i], Odds: poolOdds(f.horse.PlaceOddsRaw)},
			BetQuote{Prob: pShow[i], Odds: poolOdds(f.horse.ShowOddsRaw)},
		)

		horses[i] = models.ScoredHorse{
			Index:       f.index,
			Name:        f.horse.Name,
			OddsRaw:     f.horse.OddsRaw,
			OddsKind:    string(f.quote.Kind),
			MLDecimal:   f.decimal,
			Degraded:    f.degraded,
			PRaw:        pRaw[i],
			PCorrected:  pCorrected[i],
			PCalibrated: pCalibrated[i],
			FactorBoost: boosts[i],
			PWin:        pWin[i],
			PWinDisplay: round4(pWin[i]),
			PWinCI:      [2]float64{low, high},
			PPlace:      pPlace[i],
			PShow:       pShow[i],
			EVWin:       metrics.EVWin,
			EVPlace:     metrics.EVPlace,
			EVShow:      metrics.EVShow,
			KellyWin:    metrics.KellyWin,
			KellyPlace:  metrics.KellyPlace,
			KellyShow:   metrics.KellyShow,
			BestBet:     metrics.BestBet,
		}
	}

	byWin := Rank(horses)

	return &models.PredictionResult{
		Mode: ModeTicketOnly,
		Meta: models.PredictionMeta{
			RaceContext:        req.Race,
			FieldSize:          n,
			CalibrationVersion: CalibrationVersion,
		},
		Horses:      horses,
		Predictions: SelectPicks(byWin),
		Summary:     Summarize(horses, byWin, e.estimator),
		Rejected:    rejected,
	}, nil
}

// buildField parses odds and applies the missing odds policy
func (e *Engine) buildField(horses []models.HorseEntry) ([]fieldEntry, []string) {
	field := make([]fieldEntry, 0, len(horses))
	var parsedSum float64
	var parsedCount int

	for i, h := range horses {
		q, ok := odds.Parse(h.OddsRaw)
		entry := fieldEntry{index: i, horse: h, quote: q, degraded: !ok}
		if ok {
			entry.decimal = q.Decimal
			parsedSum += q.Decimal
			parsedCount++
		}
		field = append(field, entry)
	}

	fallback := e.cfg.FallbackDecimalOdds
	if parsedCount > 0 {
		fallback = parsedSum / float64(parsedCount)
	}

	var rejected []string
	kept := field[:0]
	for _, f := range field {
		if f.degraded {
			if e.cfg.MissingOdds == PolicyReject {
				rejected = append(rejected, f.horse.Name)
				continue
			}
			f.decimal = fallback
		}
		kept = append(kept, f)
	}
	return kept, rejected
}

// impliedProbability maps a price that pays nothing back to a MaxProb favourite
func (e *Engine) impliedProbability(decimalOdds float64) float64 {
	if decimalOdds <= 1.0 {
		return e.cfg.Calibration.MaxProb
	}
	return 1.0 / decimalOdds
}

func poolOdds(raw string) *float64 {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	q, ok := odds.Parse(raw)
	if !ok {
		return nil
	}
	return &q.Decimal
}

func checkNames(horses []models.HorseEntry) error {
	seen := make(map[string]int, len(horses))
	for i, h := range horses {
		name := strings.TrimSpace(h.Name)
		if name == "" {
			return fmt.Errorf("%w: horse at position %d", models.ErrHorseNameRequired, i+1)
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", models.ErrDuplicateHorse, name, prev+1, i+1)
		}
		seen[name] = i
	}
	return nil
}
