package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/finishline/internal/models"
)

func TestExpectedValue(t *testing.T) {
	assert.Equal(t, 0.2, ExpectedValue(0.40, 3.0))
	assert.Equal(t, -0.7, ExpectedValue(0.10, 3.0))
	assert.Equal(t, -1.0, ExpectedValue(0.50, 0))
	assert.Equal(t, -1.0, ExpectedValue(0.50, -2))
}

func TestKellyFraction(t *testing.T) {
	tests := []struct {
		name string
		p    float64
		odds float64
		want float64
	}{
		{name: "positive edge", p: 0.40, odds: 3.0, want: 0.1},
		{name: "no edge", p: 0.10, odds: 3.0, want: 0},
		{name: "edge below minimum", p: 0.335, odds: 3.0, want: 0},
		{name: "capped", p: 0.90, odds: 10.0, want: 0.25},
		{name: "even money pays nothing", p: 0.90, odds: 1.0, want: 0},
		{name: "zero probability", p: 0, odds: 5.0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, KellyFraction(tt.p, tt.odds, 0.25, 0.01), 1e-12)
		})
	}
}

func TestKellyFractionBounds(t *testing.T) {
	for p := 0.0; p <= 1.0; p += 0.05 {
		for _, odds := range []float64{0.5, 1.0, 1.2, 2.0, 3.5, 7.0, 21.0, 101.0} {
			k := KellyFraction(p, odds, 0.25, 0.01)
			assert.GreaterOrEqual(t, k, 0.0)
			assert.LessOrEqual(t, k, 0.25)
		}
	}
}

func TestEvaluateWinOnly(t *testing.T) {
	v := NewValueEngine(DefaultConfig().Value)
	odds := 4.5

	m := v.Evaluate(BetQuote{Prob: 0.3, Odds: &odds}, BetQuote{Prob: 0.6}, BetQuote{Prob: 0.8})

	assert.Equal(t, 0.35, m.EVWin)
	assert.Equal(t, 0.1, m.KellyWin)
	assert.Nil(t, m.EVPlace)
	assert.Nil(t, m.KellyPlace)
	assert.Nil(t, m.EVShow)
	assert.Nil(t, m.KellyShow)
	require.NotNil(t, m.BestBet)
	assert.Equal(t, models.BetTypeWin, *m.BestBet)
}

func TestEvaluateBestBet(t *testing.T) {
	v := NewValueEngine(DefaultConfig().Value)
	winOdds, placeOdds, showOdds := 4.5, 2.0, 1.6

	m := v.Evaluate(
		BetQuote{Prob: 0.3, Odds: &winOdds},
		BetQuote{Prob: 0.6, Odds: &placeOdds},
		BetQuote{Prob: 0.9, Odds: &showOdds},
	)

	require.NotNil(t, m.EVPlace)
	require.NotNil(t, m.KellyPlace)
	assert.Equal(t, 0.2, *m.EVPlace)
	assert.Equal(t, 0.2, *m.KellyPlace)
	require.NotNil(t, m.EVShow)
	assert.Equal(t, 0.44, *m.EVShow)
	assert.Equal(t, 0.25, *m.KellyShow)
	require.NotNil(t, m.BestBet)
	assert.Equal(t, models.BetTypeShow, *m.BestBet)
}

func TestEvaluateNoValue(t *testing.T) {
	v := NewValueEngine(DefaultConfig().Value)
	winOdds, placeOdds := 2.0, 1.0

	m := v.Evaluate(BetQuote{Prob: 0.3, Odds: &winOdds}, BetQuote{Prob: 0.6, Odds: &placeOdds}, BetQuote{Prob: 0.8})

	assert.Equal(t, -0.4, m.EVWin)
	assert.Zero(t, m.KellyWin)
	assert.Nil(t, m.EVPlace, "a price that returns only the stake is not quoted")
	assert.Nil(t, m.BestBet)
}

func TestRound4(t *testing.T) {
	assert.Equal(t, 0.1235, round4(0.12345))
	assert.Equal(t, -0.1235, round4(-0.12345))
	assert.Equal(t, 0.2, round4(0.20000000000000007))
}
