package processing

import (
	"context"

	"github.com/RMahshie/voltadash/pkg/models"
)

const (
	potentialOffset = 0.1
	peakPotential   = 0.6
)

// SampleOption selects how a DPV scan is rendered.
type SampleOption string

const (
	// SampleConcentration applies the concentration's peak current.
	SampleConcentration SampleOption = "C"
	// SampleWash renders a flat line.
	SampleWash SampleOption = "W"
)

// ComposeVoltammogram shifts each potential by +0.1 V and places the peak
// current at exactly 0.6 V. Every other point carries zero current.
func ComposeVoltammogram(sweep []models.PotentialSample, peak float64) []models.VoltammogramPoint {
	curve := make([]models.VoltammogramPoint, len(sweep))
	for i, s := range sweep {
		potential := s.Potential + potentialOffset
		current := 0.0
		if potential == peakPotential {
			current = peak
		}
		curve[i] = models.VoltammogramPoint{Potential: potential, DifferentialCurrent: current}
	}
	return curve
}

// Composer builds voltammograms from the session's memoized peak currents.
type Composer struct {
	peaks *PeakGenerator
}

// NewComposer creates a composer reading peaks from the given generator
func NewComposer(peaks *PeakGenerator) *Composer {
	return &Composer{peaks: peaks}
}

// Compose returns the curve for sweep and the peak current used.
func (c *Composer) Compose(ctx context.Context, sessionID string, label Concentration, sweep []models.PotentialSample) ([]models.VoltammogramPoint, float64, error) {
	peak, err := c.peaks.Generate(ctx, sessionID, label)
	if err != nil {
		return nil, 0, err
	}
	return ComposeVoltammogram(sweep, peak), peak, nil
}

// PeakOfCurve returns the largest differential current of a curve.
func PeakOfCurve(curve []models.VoltammogramPoint) (float64, bool) {
	if len(curve) == 0 {
		return 0, false
	}
	peak := curve[0].DifferentialCurrent
	for _, p := range curve[1:] {
		if p.DifferentialCurrent > peak {
			peak = p.DifferentialCurrent
		}
	}
	return peak, true
}

// Sweep extracts the potential sweep from device samples.
func Sweep(samples []models.DPVSample) []models.PotentialSample {
	sweep := make([]models.PotentialSample, len(samples))
	for i, s := range samples {
		sweep[i] = models.PotentialSample{Potential: s.Potential}
	}
	return sweep
}
