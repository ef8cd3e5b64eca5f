package models

// BetType identifies a win, place or show wager
type BetType string

// Bet types
const (
	BetTypeWin   BetType = "win"
	BetTypePlace BetType = "place"
	BetTypeShow  BetType = "show"
)

// ScoredHorse is the per-horse output of the prediction pipeline
type ScoredHorse struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	OddsRaw   string  `json:"ml_odds_raw"`
	OddsKind  string  `json:"odds_kind,omitempty"`
	MLDecimal float64 `json:"ml_decimal"`
	Degraded  bool    `json:"degraded"`

	PRaw        float64 `json:"p_raw"`
	PCorrected  float64 `json:"p_corrected"`
	PCalibrated float64 `json:"p_calibrated"`
	FactorBoost float64 `json:"factor_boost"`

	PWin        float64    `json:"p_win"`
	PWinDisplay float64    `json:"p_win_display"`
	PWinCI      [2]float64 `json:"p_win_ci"`
	PPlace      float64    `json:"p_place"`
	PShow       float64    `json:"p_show"`

	EVWin      float64  `json:"ev_win"`
	EVPlace    *float64 `json:"ev_place"`
	EVShow     *float64 `json:"ev_show"`
	KellyWin   float64  `json:"kelly_win"`
	KellyPlace *float64 `json:"kelly_place"`
	KellyShow  *float64 `json:"kelly_show"`
	BestBet    *BetType `json:"best_bet"`

	RankWin   int  `json:"rank_win"`
	RankValue *int `json:"rank_value"`
	RankKelly *int `json:"rank_kelly"`
}

// Pick is a designated win, place or show selection
type Pick struct {
	Name  string   `json:"name"`
	Prob  float64  `json:"prob"`
	EV    *float64 `json:"ev"`
	Kelly *float64 `json:"kelly"`
}

// Picks holds the three designated selections
type Picks struct {
	Win   *Pick `json:"win"`
	Place *Pick `json:"place"`
	Show  *Pick `json:"show"`
}

// Exacta is the Harville chance of the top two finishing in order
type Exacta struct {
	First  string  `json:"first"`
	Second string  `json:"second"`
	Prob   float64 `json:"prob"`
}

// Summary lists the top names of each ranking
type Summary struct {
	TopWin   []string `json:"top_win"`
	TopValue []string `json:"top_value"`
	TopKelly []string `json:"top_kelly"`
	Exacta   *Exacta  `json:"exacta,omitempty"`
}

// PredictionMeta echoes the race context alongside the field size
type PredictionMeta struct {
	RaceContext
	FieldSize          int    `json:"n_horses"`
	CalibrationVersion string `json:"calibration_version"`
	RequestID          string `json:"request_id,omitempty"`
}

// PredictionResult is the top-level output of one prediction
type PredictionResult struct {
	Mode        string         `json:"mode"`
	Meta        PredictionMeta `json:"meta"`
	Horses      []ScoredHorse  `json:"horses"`
	Predictions Picks          `json:"predictions"`
	Summary     Summary        `json:"summary"`
	Rejected    []string       `json:"rejected,omitempty"`
}

// DegradedHorses returns the names of horses scored on fallback odds
func (r *PredictionResult) DegradedHorses() []string {
	var names []string
	for _, h := range r.Horses {
		if h.Degraded {
			names = append(names, h.Name)
		}
	}
	return names
}

// RecommendedBets counts horses that carry a best bet
func (r *PredictionResult) RecommendedBets() int {
	count := 0
	for _, h := range r.Horses {
		if h.BestBet != nil {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the result
func (r *PredictionResult) Clone() *PredictionResult {
	if r == nil {
		return nil
	}
	out := *r
	if r.Horses != nil {
		out.Horses = make([]ScoredHorse, len(r.Horses))
		for i, h := range r.Horses {
			out.Horses[i] = h.clone()
		}
	}
	out.Predictions = Picks{
		Win:   r.Predictions.Win.clone(),
		Place: r.Predictions.Place.clone(),
		Show:  r.Predictions.Show.clone(),
	}
	out.Summary = Summary{
		TopWin:   cloneStrings(r.Summary.TopWin),
		TopValue: cloneStrings(r.Summary.TopValue),
		TopKelly: cloneStrings(r.Summary.TopKelly),
	}
	if r.Summary.Exacta != nil {
		exacta := *r.Summary.Exacta
		out.Summary.Exacta = &exacta
	}
	out.Rejected = cloneStrings(r.Rejected)
	return &out
}

func (h ScoredHorse) clone() ScoredHorse {
	h.EVPlace = cloneFloat(h.EVPlace)
	h.EVShow = cloneFloat(h.EVShow)
	h.KellyPlace = cloneFloat(h.KellyPlace)
	h.KellyShow = cloneFloat(h.KellyShow)
	if h.BestBet != nil {
		bet := *h.BestBet
		h.BestBet = &bet
	}
	h.RankValue = cloneInt(h.RankValue)
	h.RankKelly = cloneInt(h.RankKelly)
	return h
}

func (p *Pick) clone() *Pick {
	if p == nil {
		return nil
	}
	out := *p
	out.EV = cloneFloat(p.EV)
	out.Kelly = cloneFloat(p.Kelly)
	return &out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
