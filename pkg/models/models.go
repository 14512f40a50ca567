package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// ListConcentrationsResponse lists every selectable concentration label
type ListConcentrationsResponse struct {
	Body struct {
		Concentrations []string `json:"concentrations" doc:"Available concentration labels, defaults first"`
	}
}

// AddConcentrationRequest represents a request to add a custom concentration label
type AddConcentrationRequest struct {
	Body struct {
		Label string `json:"label" minLength:"1" maxLength:"32" required:"true" doc:"Concentration, e.g. '50' or '50 µM'"`
	}
}

// AddConcentrationResponse returns the stored label and the updated set
type AddConcentrationResponse struct {
	Body struct {
		Label          string   `json:"label" doc:"Normalized label that was stored"`
		Concentrations []string `json:"concentrations" doc:"Available concentration labels"`
	}
}

// StartDPVScanRequest represents a request to run a DPV scan
type StartDPVScanRequest struct {
	Body struct {
		SessionID     string `json:"session_id" minLength:"10" maxLength:"50" required:"true" doc:"Client session identifier"`
		Concentration string `json:"concentration" minLength:"1" required:"true" doc:"Concentration label of the sample"`
		SampleOption  string `json:"sample_option,omitempty" enum:"C,W" default:"C" doc:"C for a concentration sample, W for a wash (flat line)"`
	}
}

// StartDPVScanResponseBody is the body of the DPV scan response
type StartDPVScanResponseBody struct {
	Concentration string              `json:"concentration" doc:"Concentration label of the sample"`
	SampleOption  string              `json:"sample_option" doc:"Sample option used"`
	PeakCurrent   float64             `json:"peak_current" doc:"Peak current applied to the curve in amperes"`
	Curve         []VoltammogramPoint `json:"curve" doc:"Composed voltammogram"`
}

// StartDPVScanResponse represents the processed DPV scan
type StartDPVScanResponse struct {
	Body StartDPVScanResponseBody
}

// StartEISScanRequest represents a request to run an EIS scan
type StartEISScanRequest struct {
	Body struct {
		SessionID     string `json:"session_id" minLength:"10" maxLength:"50" required:"true" doc:"Client session identifier"`
		Concentration string `json:"concentration" minLength:"1" required:"true" doc:"Concentration label of the sample"`
	}
}

// StartEISScanResponseBody is the body of the EIS scan response
type StartEISScanResponseBody struct {
	Concentration     string           `json:"concentration" doc:"Concentration label of the sample"`
	HighConcentration bool             `json:"high_concentration" doc:"Whether the label is above the high-concentration threshold"`
	Raw               []ImpedancePoint `json:"raw" doc:"Impedance series as reported by the device"`
	Nyquist           []ImpedancePoint `json:"nyquist" doc:"Synthesized Nyquist curve"`
	NyquistDisplay    []ImpedancePoint `json:"nyquist_display" doc:"Nyquist curve limited to positive imaginary values"`
	Bode              []BodePoint      `json:"bode" doc:"Frequency, magnitude and phase series"`
}

// StartEISScanResponse represents the processed EIS scan
type StartEISScanResponse struct {
	Body StartEISScanResponseBody
}

// GetScanProgressResponse reports the countdown of a running scan
type GetScanProgressResponse struct {
	Body struct {
		Active           bool   `json:"active" doc:"Whether a timed scan is running"`
		RemainingSeconds int    `json:"remaining_seconds" minimum:"0" doc:"Seconds left on the countdown"`
		Message          string `json:"message,omitempty" doc:"Human-readable progress message"`
	}
}

// ResetSessionPeaksRequest clears the memoized peak currents of a session
type ResetSessionPeaksRequest struct {
	ID string `path:"id" doc:"Session ID"`
}

// MessageResponse is a plain confirmation message
type MessageResponse struct {
	Body struct {
		Message string `json:"message" doc:"Confirmation message"`
	}
}

// GetCalibrationResponse returns the calibration reference table
type GetCalibrationResponse struct {
	Body struct {
		Points []CalibrationPoint `json:"points" doc:"Concentration to expected current table"`
	}
}

// CalibrationOverlayRequest carries a measured curve to compare with the table
type CalibrationOverlayRequest struct {
	Body struct {
		Curve []VoltammogramPoint `json:"curve" minItems:"1" required:"true" doc:"Measured voltammogram"`
	}
}

// CalibrationOverlayResponse returns the table with the measured peak
type CalibrationOverlayResponse struct {
	Body struct {
		Points               []CalibrationPoint `json:"points" doc:"Concentration to expected current table"`
		MeasuredPeak         float64            `json:"measured_peak" doc:"Peak differential current of the curve in amperes"`
		MeasuredPeakMicroamp float64            `json:"measured_peak_ua" doc:"Peak differential current in µA"`
	}
}

// SimulateVoltammogramRequest holds the inputs of the theoretical DPV model
type SimulateVoltammogramRequest struct {
	Body struct {
		Concentration float64 `json:"concentration" required:"true" doc:"Bulk concentration C*"`
		ElectrodeArea float64 `json:"electrode_area" required:"true" doc:"Electrode area A in cm²"`
		Sigma         float64 `json:"sigma" required:"true" doc:"Sigma, exp(nFΔE/2RT)"`
		PulseDuration float64 `json:"pulse_duration" required:"true" doc:"Total pulse duration T in seconds"`
		PulseTime     float64 `json:"pulse_time" required:"true" doc:"Pulse time T' in seconds"`
	}
}

// SimulateVoltammogramResponse holds the theoretical voltammogram
type SimulateVoltammogramResponse struct {
	Body struct {
		DeltaIMax float64             `json:"delta_i_max" doc:"Peak differential current"`
		Points    []VoltammogramPoint `json:"points" doc:"Theoretical voltammogram"`
	}
}

// SimulateNyquistRequest holds the Randles circuit parameters
type SimulateNyquistRequest struct {
	Body struct {
		SolutionResistance       float64 `json:"solution_resistance" required:"true" doc:"Solution resistance Rs in ohms"`
		ChargeTransferResistance float64 `json:"charge_transfer_resistance" required:"true" doc:"Charge transfer resistance Rct in ohms"`
		DoubleLayerCapacitance   float64 `json:"double_layer_capacitance" required:"true" doc:"Double layer capacitance Cdl in farads"`
		WarburgCoefficient       float64 `json:"warburg_coefficient" required:"true" doc:"Warburg coefficient σ"`
	}
}

// SimulateNyquistResponse holds the theoretical Nyquist curve
type SimulateNyquistResponse struct {
	Body struct {
		Points []ImpedancePoint `json:"points" doc:"Real vs negative imaginary impedance"`
	}
}

// SaveGraphRequest represents a request to save a curve
type SaveGraphRequest struct {
	Body struct {
		Kind          string           `json:"kind,omitempty" maxLength:"16" doc:"Kind of curve (dpv, eis, nyquist, bode)"`
		Concentration string           `json:"concentration,omitempty" maxLength:"32" doc:"Concentration label"`
		Data          []map[string]any `json:"data" minItems:"1" required:"true" doc:"Point sequence to store"`
		Timestamp     string           `json:"timestamp,omitempty" doc:"Client save time"`
	}
}

// SaveGraphResponse returns the stored graph
type SaveGraphResponse struct {
	Body struct {
		Message string `json:"message" doc:"Confirmation message"`
		Graph   *Graph `json:"graph" doc:"Stored graph"`
	}
}

// ListGraphsResponse lists saved graphs, newest first
type ListGraphsResponse struct {
	Body []*Graph
}

// GraphIDRequest addresses a single graph
type GraphIDRequest struct {
	ID string `path:"id" doc:"Graph ID"`
}

// ExportGraphResponse returns a download link for an exported graph
type ExportGraphResponse struct {
	Body struct {
		ID          string `json:"id" doc:"Graph ID"`
		DownloadURL string `json:"download_url" doc:"Pre-signed download URL"`
		ExpiresIn   int    `json:"expires_in" doc:"URL expiration time in seconds"`
	}
}
