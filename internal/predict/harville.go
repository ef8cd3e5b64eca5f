package predict

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// PlaceShowEstimator derives top-2 and top-3 finish probabilities from win
// probabilities with the Harville model:
//
//	P(i 1st) = p_i
//	P(i 2nd) = sum_{j!=i} p_j * p_i / (1 - p_j)
//	P(i 3rd) = sum_{j!=i} sum_{k!=i,j} p_j * p_k * p_i / ((1 - p_j)(1 - p_j - p_k))
//
// place = 1st + 2nd, show = place + 3rd. The triple loop is O(N^3), fine
// for race fields of twenty or so runners but not for large N.
type PlaceShowEstimator struct {
	cfg HarvilleConfig
}

// NewPlaceShowEstimator builds an estimator
func NewPlaceShowEstimator(cfg HarvilleConfig) *PlaceShowEstimator {
	return &PlaceShowEstimator{cfg: cfg}
}

// PlaceShow returns place and show probabilities aligned with pWin
func (e *PlaceShowEstimator) PlaceShow(pWin []float64) (place, show []float64) {
	n := len(pWin)
	switch n {
	case 0:
		return []float64{}, []float64{}
	case 1:
		return []float64{1.0}, []float64{1.0}
	}

	probs := e.prepare(pWin)
	place = make([]float64, n)
	show = make([]float64, n)

	for i := 0; i < n; i++ {
		pi := probs[i]

		second := 0.0
		third := 0.0
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			pj := probs[j]
			d1 := e.denom(1 - pj)
			second += pj * pi / d1

			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				pk := probs[k]
				d2 := e.denom(1 - pj - pk)
				third += pj * pk * pi / (d1 * d2)
			}
		}

		pl := clampUnit(pi + second)
		sh := clampUnit(pi + second + third)

		// Stern flattening can pull a favourite's expanded place below its win chance
		pl = math.Max(pl, clampUnit(pWin[i]))
		sh = math.Max(sh, pl)

		place[i] = pl
		show[i] = sh
	}

	return place, show
}

// prepare clamps the inputs and applies the optional Stern flattening
func (e *PlaceShowEstimator) prepare(pWin []float64) []float64 {
	eps := e.cfg.Epsilon
	probs := make([]float64, len(pWin))
	for i, p := range pWin {
		if math.IsNaN(p) {
			p = 0
		}
		probs[i] = math.Max(eps, math.Min(1-eps, p))
	}

	if !e.cfg.SternEnabled {
		return probs
	}

	for i, p := range probs {
		probs[i] = math.Pow(p, e.cfg.SternExponent)
	}
	if total := floats.Sum(probs); total > eps {
		floats.Scale(1.0/total, probs)
	}
	return probs
}

func (e *PlaceShowEstimator) denom(d float64) float64 {
	if d < e.cfg.Epsilon {
		return e.cfg.Epsilon
	}
	return d
}

// ExactaProbability is the Harville chance that i wins and j runs second
func (e *PlaceShowEstimator) ExactaProbability(pWin []float64, i, j int) float64 {
	if i == j || i < 0 || j < 0 || i >= len(pWin) || j >= len(pWin) {
		return 0
	}
	d := 1.0 - pWin[i]
	if d < e.cfg.Epsilon {
		return 0
	}
	return pWin[i] * pWin[j] / d
}

func clampUnit(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(1, p))
}
