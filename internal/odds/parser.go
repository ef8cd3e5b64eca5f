// Package odds normalizes morning-line odds notations into decimal prices.
package odds

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind identifies the notation an odds string was written in
type Kind string

// Odds notations
const (
	KindFractional Kind = "fractional"
	KindDecimal    Kind = "decimal"
	KindMoneyline  Kind = "moneyline"
	KindEven       Kind = "even"
)

// Quote is one parsed odds value
type Quote struct {
	Kind        Kind    `json:"kind"`
	Raw         string  `json:"raw"`
	Numerator   int     `json:"numerator,omitempty"`
	Denominator int     `json:"denominator,omitempty"`
	Decimal     float64 `json:"decimal"`
	Implied     float64 `json:"implied"`
}

var (
	fractionalPattern = regexp.MustCompile(`^(\d+)[\s/\-:]+(\d+)$`)
	decimalPattern    = regexp.MustCompile(`^(?:\d+\.\d*|\.\d+)$`)
	moneylinePattern  = regexp.MustCompile(`^[+-]\d+$`)
	integerPattern    = regexp.MustCompile(`^\d+$`)
)

var scratchMarkers = map[string]bool{
	"":          true,
	"—":         true,
	"SCR":       true,
	"SCRATCHED": true,
	"WD":        true,
	"WITHDRAWN": true,
}

var evenMarkers = map[string]bool{
	"EVEN": true,
	"EVN":  true,
	"1-1":  true,
	"1/1":  true,
}

// Parse converts a raw odds string into a Quote.
// The boolean is false for scratched, missing or unrecognised odds.
func Parse(raw string) (Quote, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))

	if scratchMarkers[s] {
		return Quote{}, false
	}

	if evenMarkers[s] {
		return newQuote(KindEven, raw, 1, 1, 2.0), true
	}

	if m := fractionalPattern.FindStringSubmatch(s); m != nil {
		num, err1 := strconv.Atoi(m[1])
		den, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil || den == 0 {
			return Quote{}, false
		}
		return newQuote(KindFractional, raw, num, den, float64(num)/float64(den)+1.0), true
	}

	if decimalPattern.MatchString(s) {
		d, err := decimal.NewFromString(s)
		if err != nil || d.LessThan(decimal.NewFromInt(1)) {
			return Quote{}, false
		}
		return newQuote(KindDecimal, raw, 0, 0, d.InexactFloat64()), true
	}

	if moneylinePattern.MatchString(s) {
		ml, err := strconv.Atoi(s)
		if err != nil || ml == 0 {
			return Quote{}, false
		}
		var dec float64
		if ml > 0 {
			dec = float64(ml)/100.0 + 1.0
		} else {
			dec = 100.0/math.Abs(float64(ml)) + 1.0
		}
		return newQuote(KindMoneyline, raw, 0, 0, dec), true
	}

	if integerPattern.MatchString(s) {
		num, err := strconv.Atoi(s)
		if err != nil || num <= 0 {
			return Quote{}, false
		}
		return newQuote(KindFractional, raw, num, 1, float64(num)+1.0), true
	}

	return Quote{}, false
}

func newQuote(kind Kind, raw string, num, den int, dec float64) Quote {
	return Quote{
		Kind:        kind,
		Raw:         raw,
		Numerator:   num,
		Denominator: den,
		Decimal:     dec,
		Implied:     1.0 / dec,
	}
}
