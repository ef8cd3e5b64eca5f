package models

import (
	"encoding/json"
	"strings"
)

// HorseEntry is one runner as read off the race ticket
type HorseEntry struct {
	Name    string `json:"name" validate:"required"`
	OddsRaw string `json:"ml_odds_raw"`
	Trainer string `json:"trainer,omitempty"`
	Jockey  string `json:"jockey,omitempty"`

	// Pool odds for the place and show bets, when the caller knows them
	PlaceOddsRaw string `json:"place_odds_raw,omitempty"`
	ShowOddsRaw  string `json:"show_odds_raw,omitempty"`

	// Research factors, only read by the multi-factor scorer
	TrainerJockeyWinPct *float64 `json:"jt_win_pct,omitempty" validate:"omitempty,gte=0,lte=100"`
	RunStyle            string   `json:"run_style,omitempty"`
	PostPosition        int      `json:"post_position,omitempty" validate:"gte=0"`
}

// horseEntryWire accepts every odds key the upstream extractors have emitted
type horseEntryWire struct {
	Name                string   `json:"name"`
	OddsRaw             *string  `json:"ml_odds_raw"`
	MLOdds              *string  `json:"ml_odds"`
	MLOddsCamel         *string  `json:"mlOdds"`
	Odds                *string  `json:"odds"`
	Trainer             string   `json:"trainer"`
	Jockey              string   `json:"jockey"`
	PlaceOddsRaw        string   `json:"place_odds_raw"`
	ShowOddsRaw         string   `json:"show_odds_raw"`
	TrainerJockeyWinPct *float64 `json:"jt_win_pct"`
	RunStyle            string   `json:"run_style"`
	Style               string   `json:"style"`
	PostPosition        int      `json:"post_position"`
	Post                int      `json:"post"`
}

// UnmarshalJSON resolves odds and research key aliases into the canonical fields
func (h *HorseEntry) UnmarshalJSON(data []byte) error {
	var w horseEntryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*h = HorseEntry{
		Name:                strings.TrimSpace(w.Name),
		OddsRaw:             firstNonEmpty(w.OddsRaw, w.MLOdds, w.MLOddsCamel, w.Odds),
		Trainer:             strings.TrimSpace(w.Trainer),
		Jockey:              strings.TrimSpace(w.Jockey),
		PlaceOddsRaw:        w.PlaceOddsRaw,
		ShowOddsRaw:         w.ShowOddsRaw,
		TrainerJockeyWinPct: w.TrainerJockeyWinPct,
		RunStyle:            w.RunStyle,
		PostPosition:        w.PostPosition,
	}
	if h.RunStyle == "" {
		h.RunStyle = w.Style
	}
	if h.PostPosition == 0 {
		h.PostPosition = w.Post
	}
	return nil
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil && strings.TrimSpace(*v) != "" {
			return *v
		}
	}
	return ""
}

// RaceContext carries the race metadata printed on the ticket
type RaceContext struct {
	Date     string `json:"date"`
	Track    string `json:"track"`
	Surface  string `json:"surface"`
	Distance string `json:"distance"`
}

// IsSprint reports whether the distance reads as a sprint trip
func (r RaceContext) IsSprint() bool {
	d := strings.ToLower(r.Distance)
	for _, marker := range []string{"5f", "5 1/2", "6f"} {
		if strings.Contains(d, marker) {
			return true
		}
	}
	return false
}

// PredictionRequest is the full input of one prediction
type PredictionRequest struct {
	Race   RaceContext  `json:"race"`
	Horses []HorseEntry `json:"horses" validate:"dive"`
}
