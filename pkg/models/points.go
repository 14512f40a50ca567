package models

// ImpedancePoint is one point of a Nyquist curve.
type ImpedancePoint struct {
	Real      float64 `json:"real" doc:"Real impedance Z' in ohms"`
	Imaginary float64 `json:"imaginary" doc:"Imaginary impedance Z'' in ohms"`
}

// VoltammogramPoint is one point of a DPV curve.
type VoltammogramPoint struct {
	Potential           float64 `json:"potential" doc:"Potential in volts"`
	DifferentialCurrent float64 `json:"differentialCurrent" doc:"Differential current in amperes"`
}

// BodePoint represents a single frequency measurement of an EIS scan
type BodePoint struct {
	Frequency float64 `json:"frequency" doc:"Frequency in Hz"`
	Magnitude float64 `json:"magnitude" doc:"Impedance magnitude in ohms"`
	Phase     float64 `json:"phase" doc:"Phase angle in degrees"`
}

// PotentialSample is a raw entry of a DPV potential sweep.
type PotentialSample struct {
	Potential float64 `json:"potential" doc:"Applied potential in volts"`
}

// DPVSample is a sample as reported by the device for a DPV scan.
type DPVSample struct {
	Potential           float64 `json:"potential"`
	DifferentialCurrent float64 `json:"differentialCurrent"`
}

// EISSample is a sample as reported by the device for an EIS scan.
type EISSample struct {
	RealImpedance      float64 `json:"realImpedance"`
	ImaginaryImpedance float64 `json:"imaginaryImpedance"`
	Frequency          float64 `json:"frequency"`
	Magnitude          float64 `json:"magnitude"`
	Phase              float64 `json:"phase"`
}

// CalibrationPoint maps a concentration to its expected peak current.
type CalibrationPoint struct {
	Concentration   float64 `json:"concentration" doc:"Concentration in µM"`
	ExpectedCurrent float64 `json:"expectedCurrent" doc:"Expected peak current in amperes"`
}
