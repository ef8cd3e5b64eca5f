package predict

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/yourusername/finishline/internal/models"
)

// ExpectedValue returns the expected profit per unit staked at decimal odds,
// rounded to four places. Decimal odds include the stake.
func ExpectedValue(p, decimalOdds float64) float64 {
	if decimalOdds <= 0 {
		return -1.0
	}
	return round4(p*decimalOdds - 1.0)
}

// KellyFraction returns the bankroll fraction to stake, in [0, maxKelly].
// No stake is recommended unless p beats the implied probability by minEdge.
func KellyFraction(p, decimalOdds, maxKelly, minEdge float64) float64 {
	if decimalOdds <= 1.0 || p <= 0 {
		return 0
	}

	edge := p - 1.0/decimalOdds
	if edge < minEdge {
		return 0
	}

	b := decimalOdds - 1.0
	q := 1.0 - p
	kelly := (b*p - q) / b
	return math.Max(0, math.Min(maxKelly, kelly))
}

// BetQuote pairs a model probability with the price on offer; Odds is nil
// when no price is known for the bet type
type BetQuote struct {
	Prob float64
	Odds *float64
}

// ValueMetrics is the EV and Kelly outcome for one horse
type ValueMetrics struct {
	EVWin      float64
	EVPlace    *float64
	EVShow     *float64
	KellyWin   float64
	KellyPlace *float64
	KellyShow  *float64
	BestBet    *models.BetType
}

// ValueEngine prices win, place and show bets for a horse
type ValueEngine struct {
	cfg ValueConfig
}

// NewValueEngine builds a value engine
func NewValueEngine(cfg ValueConfig) *ValueEngine {
	return &ValueEngine{cfg: cfg}
}

// Evaluate computes EV and Kelly per bet type and picks the best bet.
// Place and show are only priced when their odds are known.
func (v *ValueEngine) Evaluate(win, place, show BetQuote) ValueMetrics {
	var m ValueMetrics

	winOdds := 0.0
	if win.Odds != nil {
		winOdds = *win.Odds
	}
	m.EVWin = ExpectedValue(win.Prob, winOdds)
	m.KellyWin = round4(KellyFraction(win.Prob, winOdds, v.cfg.MaxKelly, v.cfg.MinEdge))

	m.EVPlace, m.KellyPlace = v.price(place)
	m.EVShow, m.KellyShow = v.price(show)

	type candidate struct {
		bet models.BetType
		ev  float64
	}
	var best *candidate
	consider := func(bet models.BetType, ev, kelly *float64) {
		if ev == nil || kelly == nil || *ev <= 0 || *kelly <= 0 {
			return
		}
		if best == nil || *ev > best.ev {
			best = &candidate{bet: bet, ev: *ev}
		}
	}
	consider(models.BetTypeWin, &m.EVWin, &m.KellyWin)
	consider(models.BetTypePlace, m.EVPlace, m.KellyPlace)
	consider(models.BetTypeShow, m.EVShow, m.KellyShow)

	if best != nil {
		bet := best.bet
		m.BestBet = &bet
	}
	return m
}

func (v *ValueEngine) price(q BetQuote) (ev, kelly *float64) {
	if q.Odds == nil || *q.Odds <= 1.0 {
		return nil, nil
	}
	e := ExpectedValue(q.Prob, *q.Odds)
	k := round4(KellyFraction(q.Prob, *q.Odds, v.cfg.MaxKelly, v.cfg.MinEdge))
	return &e, &k
}

// round4 rounds half away from zero at four decimal places
func round4(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return decimal.NewFromFloat(x).Round(4).InexactFloat64()
}
