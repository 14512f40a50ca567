package handlers

import (
	"context"
	"errors"

	"github.com/RMahshie/voltadash/internal/processing"
	"github.com/RMahshie/voltadash/pkg/models"
	"github.com/danielgtaylor/huma/v2"
)

const invalidVoltammogramMsg = "Please enter valid positive numbers for concentration, electrode area, sigma, pulse duration, and pulse time."

// ModelHandler serves the calibration table and the theoretical models.
// It holds no state.
type ModelHandler struct{}

// NewModelHandler creates a new model handler
func NewModelHandler() *ModelHandler {
	return &ModelHandler{}
}

// GetCalibration returns the calibration reference table
func (h *ModelHandler) GetCalibration(ctx context.Context, _ *struct{}) (*models.GetCalibrationResponse, error) {
	resp := &models.GetCalibrationResponse{}
	resp.Body.Points = processing.CalibrationTable()
	return resp, nil
}

// CalibrationOverlay returns the table with the peak of a measured curve
func (h *ModelHandler) CalibrationOverlay(ctx context.Context, req *models.CalibrationOverlayRequest) (*models.CalibrationOverlayResponse, error) {
	peak, ok := processing.PeakOfCurve(req.Body.Curve)
	if !ok {
		return nil, huma.Error400BadRequest("Curve has no points")
	}

	resp := &models.CalibrationOverlayResponse{}
	resp.Body.Points = processing.CalibrationTable()
	resp.Body.MeasuredPeak = peak
	resp.Body.MeasuredPeakMicroamp = peak * 1e6
	return resp, nil
}

// SimulateVoltammogram evaluates the theoretical DPV model
func (h *ModelHandler) SimulateVoltammogram(ctx context.Context, req *models.SimulateVoltammogramRequest) (*models.SimulateVoltammogramResponse, error) {
	deltaIMax, points, err := processing.TheoreticalVoltammogram(processing.VoltammogramParams{
		Concentration: req.Body.Concentration,
		ElectrodeArea: req.Body.ElectrodeArea,
		Sigma:         req.Body.Sigma,
		PulseDuration: req.Body.PulseDuration,
		PulseTime:     req.Body.PulseTime,
	})
	if err != nil {
		if errors.Is(err, processing.ErrInvalidParameters) {
			return nil, huma.Error422UnprocessableEntity(invalidVoltammogramMsg, err)
		}
		return nil, huma.Error500InternalServerError("Failed to simulate voltammogram", err)
	}

	resp := &models.SimulateVoltammogramResponse{}
	resp.Body.DeltaIMax = deltaIMax
	resp.Body.Points = points
	return resp, nil
}

// SimulateNyquist evaluates a Randles circuit
func (h *ModelHandler) SimulateNyquist(ctx context.Context, req *models.SimulateNyquistRequest) (*models.SimulateNyquistResponse, error) {
	points, err := processing.RandlesNyquist(processing.RandlesParams{
		SolutionResistance:       req.Body.SolutionResistance,
		ChargeTransferResistance: req.Body.ChargeTransferResistance,
		DoubleLayerCapacitance:   req.Body.DoubleLayerCapacitance,
		WarburgCoefficient:       req.Body.WarburgCoefficient,
	})
	if err != nil {
		if errors.Is(err, processing.ErrInvalidParameters) {
			return nil, huma.Error422UnprocessableEntity("Please enter valid non-negative circuit values.", err)
		}
		return nil, huma.Error500InternalServerError("Failed to simulate Nyquist plot", err)
	}

	resp := &models.SimulateNyquistResponse{}
	resp.Body.Points = points
	return resp, nil
}
