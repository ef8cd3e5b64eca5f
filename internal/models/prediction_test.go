package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionResultClone(t *testing.T) {
	ev, kelly := 0.12, 0.04
	bet := BetTypeWin
	rank := 1
	original := &PredictionResult{
		Mode: "ticket_only",
		Horses: []ScoredHorse{
			{Name: "Alpha", PWin: 0.4, EVPlace: &ev, KellyShow: &kelly, BestBet: &bet, RankValue: &rank},
		},
		Predictions: Picks{Win: &Pick{Name: "Alpha", Prob: 0.4, EV: &ev, Kelly: &kelly}},
		Summary: Summary{
			TopWin: []string{"Alpha"},
			Exacta: &Exacta{First: "Alpha", Second: "Bravo", Prob: 0.1},
		},
		Rejected: []string{"Zulu"},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	*clone.Horses[0].EVPlace = 9
	*clone.Horses[0].BestBet = BetTypeShow
	*clone.Horses[0].RankValue = 3
	clone.Horses[0].PWin = 0.9
	*clone.Predictions.Win.EV = 9
	clone.Predictions.Win.Name = "Other"
	clone.Summary.TopWin[0] = "Other"
	clone.Summary.Exacta.Prob = 0.9
	clone.Rejected[0] = "Other"

	assert.Equal(t, 0.12, *original.Horses[0].EVPlace)
	assert.Equal(t, BetTypeWin, *original.Horses[0].BestBet)
	assert.Equal(t, 1, *original.Horses[0].RankValue)
	assert.Equal(t, 0.4, original.Horses[0].PWin)
	assert.Equal(t, 0.12, *original.Predictions.Win.EV)
	assert.Equal(t, "Alpha", original.Predictions.Win.Name)
	assert.Equal(t, "Alpha", original.Summary.TopWin[0])
	assert.Equal(t, 0.1, original.Summary.Exacta.Prob)
	assert.Equal(t, "Zulu", original.Rejected[0])
	assert.Nil(t, clone.Predictions.Place)
}

func TestPredictionResultCloneNil(t *testing.T) {
	var r *PredictionResult
	assert.Nil(t, r.Clone())
}
