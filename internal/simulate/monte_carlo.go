// Package simulate replays scored races by sampling finishing orders.
package simulate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/finishline/internal/models"
)

// ErrNothingToSimulate is returned for a result with no scored horses
var ErrNothingToSimulate = errors.New("no scored horses to simulate")

// MonteCarloConfig configures monte carlo simulation
type MonteCarloConfig struct {
	Iterations      int
	Seed            int64
	InitialBankroll float64
}

// HorseOutcome is the sampled finishing record of one horse
type HorseOutcome struct {
	Name  string  `json:"name"`
	Win   float64 `json:"win"`
	Place float64 `json:"place"`
	Show  float64 `json:"show"`
}

// MonteCarloResult represents monte carlo outcomes
type MonteCarloResult struct {
	Iterations          int                `json:"iterations"`
	Seed                int64              `json:"seed"`
	Horses              []HorseOutcome     `json:"horses"`
	StakedHorses        []string           `json:"staked_horses"`
	MeanReturn          float64            `json:"mean_return"`
	StdReturn           float64            `json:"std_return"`
	VaR95               float64            `json:"var_95"`
	ProbabilityOfProfit float64            `json:"probability_of_profit"`
	ProbabilityOfRuin   float64            `json:"probability_of_ruin"`
	ConfidenceIntervals map[string]float64 `json:"confidence_intervals"`
}

// stake is a win bet sized by the Kelly fraction of the starting bankroll
type stake struct {
	index    int
	fraction float64
	odds     float64
}

// RunMonteCarlo samples finishing orders from the win probabilities of a
// scored field (Harville sampling: each next finisher is drawn from the
// horses still running, in proportion to their win chance) and settles
// every recommended Kelly win stake against each order.
func RunMonteCarlo(ctx context.Context, result *models.PredictionResult, cfg MonteCarloConfig) (MonteCarloResult, error) {
	if result == nil || len(result.Horses) == 0 {
		return MonteCarloResult{}, ErrNothingToSimulate
	}
	if cfg.Iterations <= 0 {
		cfg.Iterations = 10000
	}
	if cfg.InitialBankroll <= 0 {
		cfg.InitialBankroll = 1000
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	n := len(result.Horses)
	pWin := make([]float64, n)
	var stakes []stake
	var staked []string
	for i, h := range result.Horses {
		pWin[i] = h.PWin
		if h.KellyWin > 0 && h.MLDecimal > 1 {
			stakes = append(stakes, stake{index: i, fraction: h.KellyWin, odds: h.MLDecimal})
			staked = append(staked, h.Name)
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	wins := make([]int, n)
	places := make([]int, n)
	shows := make([]int, n)
	distribution := make([]float64, cfg.Iterations)
	order := make([]int, 0, n)
	remaining := make([]float64, n)

	for it := 0; it < cfg.Iterations; it++ {
		if it%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return MonteCarloResult{}, fmt.Errorf("simulation interrupted after %d iterations: %w", it, err)
			}
		}

		order = sampleOrder(rng, pWin, remaining, order[:0], 3)
		for pos, idx := range order {
			if pos == 0 {
				wins[idx]++
			}
			if pos <= 1 {
				places[idx]++
			}
			shows[idx]++
		}

		bankroll := cfg.InitialBankroll
		for _, s := range stakes {
			amount := cfg.InitialBankroll * s.fraction
			if order[0] == s.index {
				bankroll += amount * (s.odds - 1)
			} else {
				bankroll -= amount
			}
		}
		if bankroll < 0 {
			bankroll = 0
		}
		distribution[it] = bankroll
	}

	iterations := float64(cfg.Iterations)
	outcomes := make([]HorseOutcome, n)
	for i, h := range result.Horses {
		outcomes[i] = HorseOutcome{
			Name:  h.Name,
			Win:   float64(wins[i]) / iterations,
			Place: float64(places[i]) / iterations,
			Show:  float64(shows[i]) / iterations,
		}
	}

	sort.Float64s(distribution)
	mean, std := stat.PopMeanStdDev(distribution, nil)
	var95 := stat.Quantile(0.05, stat.Empirical, distribution, nil)

	return MonteCarloResult{
		Iterations:          cfg.Iterations,
		Seed:                cfg.Seed,
		Horses:              outcomes,
		StakedHorses:        staked,
		MeanReturn:          (mean - cfg.InitialBankroll) / cfg.InitialBankroll,
		StdReturn:           std / cfg.InitialBankroll,
		VaR95:               (var95 - cfg.InitialBankroll) / cfg.InitialBankroll,
		ProbabilityOfProfit: probabilityAbove(distribution, cfg.InitialBankroll),
		ProbabilityOfRuin:   probabilityAtOrBelow(distribution, 0),
		ConfidenceIntervals: CalculateConfidenceIntervals(distribution, []float64{0.9, 0.95, 0.99}),
	}, nil
}

// sampleOrder draws up to depth finishers without replacement
func sampleOrder(rng *rand.Rand, pWin, remaining []float64, order []int, depth int) []int {
	copy(remaining, pWin)
	total := 0.0
	for _, p := range remaining {
		total += p
	}

	for len(order) < depth && len(order) < len(pWin) {
		pick := -1
		if total > 0 {
			target := rng.Float64() * total
			for i, p := range remaining {
				if p <= 0 {
					continue
				}
				pick = i
				if target < p {
					break
				}
				target -= p
			}
		}
		if pick < 0 {
			// no mass left: the rest finish in a uniformly random order
			pick = randomUnplaced(rng, remaining, order)
		}
		order = append(order, pick)
		total -= remaining[pick]
		remaining[pick] = -1
	}
	return order
}

func randomUnplaced(rng *rand.Rand, remaining []float64, order []int) int {
	free := make([]int, 0, len(remaining))
	for i, p := range remaining {
		if p >= 0 {
			free = append(free, i)
		}
	}
	return free[rng.Intn(len(free))]
}

// CalculateConfidenceIntervals computes the width of the central interval
// of a sorted distribution at each level
func CalculateConfidenceIntervals(sorted []float64, levels []float64) map[string]float64 {
	results := make(map[string]float64)
	if len(sorted) == 0 {
		return results
	}
	for _, level := range levels {
		p := (1.0 - level) / 2.0
		low := stat.Quantile(p, stat.Empirical, sorted, nil)
		high := stat.Quantile(1.0-p, stat.Empirical, sorted, nil)
		results[formatPercent(level)] = high - low
	}
	return results
}

func probabilityAbove(values []float64, threshold float64) float64 {
	if len(values) == 0 {
		return 0
	}
	count := 0
	for _, v := range values {
		if v > threshold {
			count++
		}
	}
	return float64(count) / float64(len(values))
}

func probabilityAtOrBelow(values []float64, threshold float64) float64 {
	if len(values) == 0 {
		return 0
	}
	count := 0
	for _, v := range values {
		if v <= threshold {
			count++
		}
	}
	return float64(count) / float64(len(values))
}

func formatPercent(level float64) string {
	return fmt.Sprintf("%.0f%%", level*100)
}
