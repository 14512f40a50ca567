package handlers

import (
	"context"
	"errors"

	"github.com/RMahshie/voltadash/internal/device"
	"github.com/RMahshie/voltadash/internal/processing"
	"github.com/RMahshie/voltadash/internal/repository"
	"github.com/RMahshie/voltadash/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

// ScanHandler handles scan-related HTTP requests
type ScanHandler struct {
	svc            processing.ScanService
	concentrations repository.ConcentrationRepository
}

// NewScanHandler creates a new scan handler
func NewScanHandler(svc processing.ScanService, concentrations repository.ConcentrationRepository) *ScanHandler {
	return &ScanHandler{
		svc:            svc,
		concentrations: concentrations,
	}
}

// StartDPVScan runs a DPV scan and returns the composed voltammogram
func (h *ScanHandler) StartDPVScan(ctx context.Context, req *models.StartDPVScanRequest) (*models.StartDPVScanResponse, error) {
	label, err := h.resolveConcentration(ctx, req.Body.Concentration)
	if err != nil {
		return nil, err
	}

	option := processing.SampleOption(req.Body.SampleOption)
	result, err := h.svc.RunDPV(ctx, req.Body.SessionID, label, option)
	if err != nil {
		return nil, scanError(err, "Failed to start scan")
	}

	return &models.StartDPVScanResponse{
		Body: models.StartDPVScanResponseBody{
			Concentration: string(result.Concentration),
			SampleOption:  string(result.Option),
			PeakCurrent:   result.PeakCurrent,
			Curve:         result.Curve,
		},
	}, nil
}

// StartEISScan runs an EIS scan and returns the Nyquist and Bode series
func (h *ScanHandler) StartEISScan(ctx context.Context, req *models.StartEISScanRequest) (*models.StartEISScanResponse, error) {
	label, err := h.resolveConcentration(ctx, req.Body.Concentration)
	if err != nil {
		return nil, err
	}

	result, err := h.svc.RunEIS(ctx, req.Body.SessionID, label)
	if err != nil {
		return nil, scanError(err, "Failed to start EIS scan")
	}

	return &models.StartEISScanResponse{
		Body: models.StartEISScanResponseBody{
			Concentration:     string(result.Concentration),
			HighConcentration: result.HighConcentration,
			Raw:               result.Raw,
			Nyquist:           result.Nyquist,
			NyquistDisplay:    result.NyquistDisplay,
			Bode:              result.Bode,
		},
	}, nil
}

// GetScanProgress reports the countdown of a running EIS scan
func (h *ScanHandler) GetScanProgress(ctx context.Context, _ *struct{}) (*models.GetScanProgressResponse, error) {
	progress := h.svc.Progress()

	resp := &models.GetScanProgressResponse{}
	resp.Body.Active = progress.Active
	resp.Body.RemainingSeconds = progress.RemainingSeconds
	resp.Body.Message = progress.Message()
	return resp, nil
}

// ResetSessionPeaks forgets the peak currents drawn for a session
func (h *ScanHandler) ResetSessionPeaks(ctx context.Context, req *models.ResetSessionPeaksRequest) (*models.MessageResponse, error) {
	if err := h.svc.ResetSession(ctx, req.ID); err != nil {
		return nil, huma.Error500InternalServerError("Failed to reset session", err)
	}
	log.Info().Str("sessionID", req.ID).Msg("Session peak currents reset")

	resp := &models.MessageResponse{}
	resp.Body.Message = "Session reset successfully"
	return resp, nil
}

// resolveConcentration accepts default labels and stored custom labels
func (h *ScanHandler) resolveConcentration(ctx context.Context, raw string) (processing.Concentration, error) {
	label := processing.Concentration(raw)
	if label.IsDefault() {
		return label, nil
	}

	custom, err := h.concentrations.List(ctx)
	if err != nil {
		return "", huma.Error500InternalServerError("Failed to load concentrations", err)
	}
	for _, rec := range custom {
		if rec.Label == raw {
			return label, nil
		}
	}
	return "", huma.Error400BadRequest("Unknown concentration. Add it before scanning.")
}

// scanError maps pipeline failures to user-facing errors
func scanError(err error, deviceMsg string) error {
	switch {
	case errors.Is(err, processing.ErrNoPeakRange):
		return huma.Error422UnprocessableEntity("No peak current model for this concentration.", err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return huma.Error504GatewayTimeout("Scan did not finish in time.", err)
	case errors.Is(err, device.ErrDeviceUnavailable):
		return huma.Error502BadGateway(deviceMsg, err)
	default:
		return huma.Error500InternalServerError(deviceMsg, err)
	}
}
