package predict

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/finishline/internal/models"
)

// FactorScorer blends trainer/jockey form, running style and post position
// into the calibrated probabilities. Its multipliers are relative: the field
// is renormalised afterwards, so only differences between horses matter.
type FactorScorer struct {
	cfg MultiFactorConfig
}

// NewFactorScorer builds a scorer
func NewFactorScorer(cfg MultiFactorConfig) *FactorScorer {
	return &FactorScorer{cfg: cfg}
}

// Boosts returns one multiplier per horse
func (s *FactorScorer) Boosts(horses []models.HorseEntry, race models.RaceContext) []float64 {
	n := len(horses)
	boosts := make([]float64, n)
	if n == 0 {
		return boosts
	}

	jt := make([]float64, n)
	for i, h := range horses {
		jt[i] = s.cfg.DefaultJTWinPct
		if h.TrainerJockeyWinPct != nil {
			jt[i] = *h.TrainerJockeyWinPct
		}
	}
	mean, std := stat.PopMeanStdDev(jt, nil)
	std = math.Max(std, 1.0)

	sprint := race.IsSprint()
	for i, h := range horses {
		jtBoost := 1.0 + s.cfg.JTWeight*(jt[i]-mean)/std
		paceBoost := 1.0 + s.paceBonus(h.RunStyle)
		postBoost := 1.0 - s.postPenalty(h.PostPosition, sprint)
		boosts[i] = math.Max(1e-6, jtBoost*paceBoost*postBoost)
	}
	return boosts
}

// Apply multiplies each probability by its horse's boost
func (s *FactorScorer) Apply(p, boosts []float64) []float64 {
	out := make([]float64, len(p))
	for i := range p {
		out[i] = math.Max(1e-6, p[i]*boosts[i])
	}
	return out
}

func (s *FactorScorer) paceBonus(style string) float64 {
	style = strings.ToUpper(strings.TrimSpace(style))
	switch {
	case strings.HasPrefix(style, "E"):
		return s.cfg.EarlyPaceBoost
	case strings.HasPrefix(style, "P"):
		return s.cfg.PressPaceBoost
	default:
		return 0
	}
}

func (s *FactorScorer) postPenalty(post int, sprint bool) float64 {
	if post <= 0 {
		return 0
	}
	if sprint {
		switch {
		case post >= 10:
			return s.cfg.SprintWidePenalty
		case post >= 8:
			return s.cfg.SprintOuterPenalty
		}
		return 0
	}
	if post == 1 || post >= 12 {
		return s.cfg.RouteDrawPenalty
	}
	return 0
}
