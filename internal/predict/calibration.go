package predict

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Calibrator corrects favourite/longshot bias with a static logistic curve
// and attaches a Wilson interval to each probability.
//
// The interval treats p as an observed rate over a fixed number of pseudo
// trials. It is an uncertainty indicator for display, not a sampling bound.
type Calibrator struct {
	cfg CalibrationConfig
	z   float64
}

// NewCalibrator builds a calibrator for the given constants
func NewCalibrator(cfg CalibrationConfig) *Calibrator {
	return &Calibrator{
		cfg: cfg,
		z:   distuv.UnitNormal.Quantile(1 - (1-cfg.ConfidenceLevel)/2),
	}
}

// Calibrate maps a corrected probability through sigmoid(a + b*logit(p)),
// clamped to [MinProb, MaxProb].
func (c *Calibrator) Calibrate(p float64) float64 {
	safe := c.clamp(p)
	adjusted := c.cfg.Intercept + c.cfg.Slope*c.logit(safe)
	return c.clamp(sigmoid(adjusted))
}

// CalibrateAll calibrates every element of the vector
func (c *Calibrator) CalibrateAll(p []float64) []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = c.Calibrate(v)
	}
	return out
}

// Interval returns the Wilson score interval around p
func (c *Calibrator) Interval(p float64) (low, high float64) {
	n := float64(c.cfg.PseudoTrials)
	z2 := c.z * c.z
	ps := math.Max(c.cfg.MinProb, math.Min(1-c.cfg.MinProb, p))

	denominator := 1 + z2/n
	center := (ps + z2/(2*n)) / denominator
	margin := c.z * math.Sqrt(ps*(1-ps)/n+z2/(4*n*n)) / denominator

	low = math.Max(c.cfg.MinProb, center-margin)
	high = math.Min(c.cfg.MaxProb, center+margin)

	// the interval always brackets p, including a lone runner at p = 1
	low = math.Min(low, p)
	high = math.Max(high, p)
	return low, high
}

// Z returns the normal quantile used by Interval
func (c *Calibrator) Z() float64 {
	return c.z
}

func (c *Calibrator) clamp(p float64) float64 {
	if math.IsNaN(p) {
		return c.cfg.MinProb
	}
	return math.Max(c.cfg.MinProb, math.Min(c.cfg.MaxProb, p))
}

func (c *Calibrator) logit(p float64) float64 {
	p = math.Max(c.cfg.MinProb, math.Min(1-c.cfg.MinProb, p))
	return math.Log(p / (1 - p))
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
