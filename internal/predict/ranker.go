package predict

import (
	"sort"

	"github.com/yourusername/finishline/internal/models"
)

const summarySize = 3

// Rank assigns win, value and Kelly ranks in place and returns the horses
// ordered by win rank. Win probabilities are compared at the 4 dp of
// p_win_display; ties keep input order.
func Rank(horses []models.ScoredHorse) []*models.ScoredHorse {
	byWin := pointers(horses)
	sort.SliceStable(byWin, func(a, b int) bool {
		return round4(byWin[a].PWin) > round4(byWin[b].PWin)
	})
	for i, h := range byWin {
		h.RankWin = i + 1
	}

	var byValue []*models.ScoredHorse
	var byKelly []*models.ScoredHorse
	for i := range horses {
		h := &horses[i]
		h.RankValue = nil
		h.RankKelly = nil
		if h.EVWin > 0 {
			byValue = append(byValue, h)
		}
		if h.KellyWin > 0 {
			byKelly = append(byKelly, h)
		}
	}
	sort.SliceStable(byValue, func(a, b int) bool { return byValue[a].EVWin > byValue[b].EVWin })
	sort.SliceStable(byKelly, func(a, b int) bool { return byKelly[a].KellyWin > byKelly[b].KellyWin })
	for i, h := range byValue {
		rank := i + 1
		h.RankValue = &rank
	}
	for i, h := range byKelly {
		rank := i + 1
		h.RankKelly = &rank
	}

	return byWin
}

// SelectPicks takes the win, place and show picks from the top three by win
// rank. A short field repeats its lowest available horse.
func SelectPicks(byWin []*models.ScoredHorse) models.Picks {
	if len(byWin) == 0 {
		return models.Picks{}
	}

	at := func(rank int) *models.ScoredHorse {
		if rank >= len(byWin) {
			rank = len(byWin) - 1
		}
		return byWin[rank]
	}

	win := at(0)
	place := at(1)
	show := at(2)

	return models.Picks{
		Win:   &models.Pick{Name: win.Name, Prob: win.PWin, EV: floatPtr(win.EVWin), Kelly: floatPtr(win.KellyWin)},
		Place: &models.Pick{Name: place.Name, Prob: place.PPlace, EV: place.EVPlace, Kelly: place.KellyPlace},
		Show:  &models.Pick{Name: show.Name, Prob: show.PShow, EV: show.EVShow, Kelly: show.KellyShow},
	}
}

// Summarize lists the leading names of each ranking and the top exacta
func Summarize(horses []models.ScoredHorse, byWin []*models.ScoredHorse, est *PlaceShowEstimator) models.Summary {
	summary := models.Summary{
		TopWin:   []string{},
		TopValue: []string{},
		TopKelly: []string{},
	}
	for _, h := range byWin {
		if len(summary.TopWin) < summarySize {
			summary.TopWin = append(summary.TopWin, h.Name)
		}
	}

	value := make([]string, summarySize)
	kelly := make([]string, summarySize)
	for _, h := range horses {
		if h.RankValue != nil && *h.RankValue <= summarySize {
			value[*h.RankValue-1] = h.Name
		}
		if h.RankKelly != nil && *h.RankKelly <= summarySize {
			kelly[*h.RankKelly-1] = h.Name
		}
	}
	summary.TopValue = compact(value)
	summary.TopKelly = compact(kelly)

	if len(byWin) >= 2 {
		pWin := make([]float64, len(horses))
		for i, h := range horses {
			pWin[i] = h.PWin
		}
		first, second := byWin[0], byWin[1]
		summary.Exacta = &models.Exacta{
			First:  first.Name,
			Second: second.Name,
			Prob:   round4(est.ExactaProbability(pWin, position(horses, first), position(horses, second))),
		}
	}
	return summary
}

func pointers(horses []models.ScoredHorse) []*models.ScoredHorse {
	out := make([]*models.ScoredHorse, len(horses))
	for i := range horses {
		out[i] = &horses[i]
	}
	return out
}

func position(horses []models.ScoredHorse, target *models.ScoredHorse) int {
	for i := range horses {
		if &horses[i] == target {
			return i
		}
	}
	return -1
}

func compact(names []string) []string {
	out := []string{}
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

func floatPtr(v float64) *float64 {
	return &v
}
