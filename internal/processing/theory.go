package processing

import (
	"errors"
	"fmt"
	"math"

	"github.com/RMahshie/voltadash/pkg/models"
)

// ErrInvalidParameters is returned when model inputs fail validation.
var ErrInvalidParameters = errors.New("invalid model parameters")

const (
	faraday          = 96485.0 // C/mol
	diffusionCoeffD0 = 7.4e-6  // cm²/s
	theoryPoints     = 100
)

// VoltammogramParams are the inputs of the theoretical DPV model.
type VoltammogramParams struct {
	Concentration float64
	ElectrodeArea float64
	Sigma         float64
	PulseDuration float64
	PulseTime     float64
}

// Validate checks the inputs the DPV model needs.
func (p VoltammogramParams) Validate() error {
	for _, v := range []float64{p.Concentration, p.ElectrodeArea, p.Sigma, p.PulseDuration, p.PulseTime} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: values must be numbers", ErrInvalidParameters)
		}
	}
	if p.Concentration <= 0 || p.ElectrodeArea <= 0 {
		return fmt.Errorf("%w: concentration and electrode area must be positive", ErrInvalidParameters)
	}
	if p.PulseDuration <= p.PulseTime {
		return fmt.Errorf("%w: pulse duration must exceed pulse time", ErrInvalidParameters)
	}
	if p.Sigma == -1 {
		return fmt.Errorf("%w: sigma must not be -1", ErrInvalidParameters)
	}
	return nil
}

// DeltaIMax is the peak differential current for a single-electron transfer.
func (p VoltammogramParams) DeltaIMax() float64 {
	const n = 1.0
	return (n * faraday * p.ElectrodeArea * math.Sqrt(diffusionCoeffD0) * p.Concentration * ((1 - p.Sigma) / (1 + p.Sigma))) /
		(math.Sqrt(math.Pi) * math.Sqrt(p.PulseDuration-p.PulseTime))
}

// TheoreticalVoltammogram samples a Gaussian-shaped DPV peak centred at 0.5 V
// over 0–0.99 V.
func TheoreticalVoltammogram(p VoltammogramParams) (float64, []models.VoltammogramPoint, error) {
	if err := p.Validate(); err != nil {
		return 0, nil, err
	}
	deltaIMax := p.DeltaIMax()
	points := make([]models.VoltammogramPoint, theoryPoints)
	for i := range points {
		v := float64(i) * 0.01
		points[i] = models.VoltammogramPoint{
			Potential:           v,
			DifferentialCurrent: deltaIMax * math.Exp(-math.Pow(v-0.5, 2)/0.05),
		}
	}
	return deltaIMax, points, nil
}

// RandlesParams describe a Randles equivalent circuit with a Warburg element.
type RandlesParams struct {
	SolutionResistance       float64
	ChargeTransferResistance float64
	DoubleLayerCapacitance   float64
	WarburgCoefficient       float64
}

// Validate rejects non-finite and negative circuit values.
func (p RandlesParams) Validate() error {
	for _, v := range []float64{p.SolutionResistance, p.ChargeTransferResistance, p.DoubleLayerCapacitance, p.WarburgCoefficient} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: values must be numbers", ErrInvalidParameters)
		}
		if v < 0 {
			return fmt.Errorf("%w: circuit values must not be negative", ErrInvalidParameters)
		}
	}
	return nil
}

// RandlesNyquist returns real vs negative imaginary impedance for frequencies
// 10^-2 to 10^2.95 Hz.
func RandlesNyquist(p RandlesParams) ([]models.ImpedancePoint, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	points := make([]models.ImpedancePoint, theoryPoints)
	for i := range points {
		f := math.Pow(10, -2+float64(i)*0.05)
		omega := 2 * math.Pi * f
		wrc := omega * p.DoubleLayerCapacitance * p.ChargeTransferResistance
		denom := 1 + wrc*wrc
		zReal := p.SolutionResistance + p.ChargeTransferResistance/denom
		zImag := -(omega*p.DoubleLayerCapacitance*p.ChargeTransferResistance*p.ChargeTransferResistance)/denom +
			p.WarburgCoefficient/math.Sqrt(omega)
		points[i] = models.ImpedancePoint{Real: zReal, Imaginary: -zImag}
	}
	return points, nil
}
