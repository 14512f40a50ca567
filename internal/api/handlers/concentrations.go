package handlers

import (
	"context"
	"errors"

	"github.com/RMahshie/voltadash/internal/processing"
	"github.com/RMahshie/voltadash/internal/repository"
	"github.com/RMahshie/voltadash/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

const duplicateConcentrationMsg = "Please enter a valid, unique concentration!"

// ConcentrationHandler handles concentration label requests
type ConcentrationHandler struct {
	repo repository.ConcentrationRepository
}

// NewConcentrationHandler creates a new concentration handler
func NewConcentrationHandler(repo repository.ConcentrationRepository) *ConcentrationHandler {
	return &ConcentrationHandler{repo: repo}
}

// ListConcentrations returns the defaults followed by custom labels
func (h *ConcentrationHandler) ListConcentrations(ctx context.Context, _ *struct{}) (*models.ListConcentrationsResponse, error) {
	labels, err := h.available(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load concentrations", err)
	}

	resp := &models.ListConcentrationsResponse{}
	resp.Body.Concentrations = labels
	return resp, nil
}

// AddConcentration stores a new, unique custom label
func (h *ConcentrationHandler) AddConcentration(ctx context.Context, req *models.AddConcentrationRequest) (*models.AddConcentrationResponse, error) {
	label, err := processing.NormalizeConcentration(req.Body.Label)
	if err != nil {
		return nil, huma.Error400BadRequest(duplicateConcentrationMsg, err)
	}
	if label.IsDefault() {
		return nil, huma.Error409Conflict(duplicateConcentrationMsg, processing.ErrDuplicateConcentration)
	}

	if _, err := h.repo.Create(ctx, string(label)); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, huma.Error409Conflict(duplicateConcentrationMsg, processing.ErrDuplicateConcentration)
		}
		return nil, huma.Error500InternalServerError("Failed to add concentration", err)
	}
	log.Info().Str("concentration", string(label)).Msg("Added new concentration")

	labels, err := h.available(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load concentrations", err)
	}

	resp := &models.AddConcentrationResponse{}
	resp.Body.Label = string(label)
	resp.Body.Concentrations = labels
	return resp, nil
}

func (h *ConcentrationHandler) available(ctx context.Context) ([]string, error) {
	var labels []string
	for _, c := range processing.DefaultConcentrations() {
		labels = append(labels, string(c))
	}

	custom, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range custom {
		labels = append(labels, rec.Label)
	}
	return labels, nil
}
