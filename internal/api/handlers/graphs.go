package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/RMahshie/voltadash/internal/repository"
	"github.com/RMahshie/voltadash/internal/storage"
	"github.com/RMahshie/voltadash/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// GraphHandler handles saved graph requests
type GraphHandler struct {
	repo     repository.GraphRepository
	exporter storage.GraphExporter // nil when exports are not configured
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(repo repository.GraphRepository, exporter storage.GraphExporter) *GraphHandler {
	return &GraphHandler{
		repo:     repo,
		exporter: exporter,
	}
}

// SaveGraph stores a curve
func (h *GraphHandler) SaveGraph(ctx context.Context, req *models.SaveGraphRequest) (*models.SaveGraphResponse, error) {
	now := time.Now()
	graph := &models.Graph{
		ID:            uuid.New().String(),
		Kind:          req.Body.Kind,
		Concentration: req.Body.Concentration,
		Data:          req.Body.Data,
		Timestamp:     req.Body.Timestamp,
		CreatedAt:     now,
	}
	if graph.Timestamp == "" {
		graph.Timestamp = now.Format(time.RFC3339)
	}

	if err := h.repo.Create(ctx, graph); err != nil {
		log.Error().Err(err).Msg("Error saving graph")
		return nil, huma.Error500InternalServerError("Failed to save graph.", err)
	}
	log.Info().Str("graphID", graph.ID).Int("points", len(graph.Data)).Msg("Graph saved")

	resp := &models.SaveGraphResponse{}
	resp.Body.Message = "Graph saved successfully!"
	resp.Body.Graph = graph
	return resp, nil
}

// ListGraphs returns every saved graph
func (h *GraphHandler) ListGraphs(ctx context.Context, _ *struct{}) (*models.ListGraphsResponse, error) {
	graphs, err := h.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching graphs")
		return nil, huma.Error500InternalServerError("Failed to retrieve graphs.", err)
	}

	return &models.ListGraphsResponse{Body: graphs}, nil
}

// DeleteGraph removes a graph and, if present, its export
func (h *GraphHandler) DeleteGraph(ctx context.Context, req *models.GraphIDRequest) (*models.MessageResponse, error) {
	graphID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid graph ID", err)
	}

	if err := h.repo.Delete(ctx, graphID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, huma.Error404NotFound("Graph not found", err)
		}
		return nil, huma.Error500InternalServerError("Failed to delete graph.", err)
	}

	if h.exporter != nil {
		if err := h.exporter.Delete(ctx, graphID.String()); err != nil {
			log.Warn().Err(err).Str("graphID", graphID.String()).Msg("Failed to delete graph export")
		}
	}

	resp := &models.MessageResponse{}
	resp.Body.Message = "Graph deleted successfully!"
	return resp, nil
}

// ExportGraph uploads a graph to object storage and returns a download link
func (h *GraphHandler) ExportGraph(ctx context.Context, req *models.GraphIDRequest) (*models.ExportGraphResponse, error) {
	if h.exporter == nil {
		return nil, huma.Error503ServiceUnavailable("Graph export is not configured")
	}

	graphID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid graph ID", err)
	}

	graph, err := h.repo.GetByID(ctx, graphID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, huma.Error404NotFound("Graph not found", err)
		}
		return nil, huma.Error500InternalServerError("Failed to load graph", err)
	}

	url, err := h.exporter.Export(ctx, graph)
	if err != nil {
		return nil, huma.Error502BadGateway("Failed to export graph. Please try again.", err)
	}
	log.Info().Str("graphID", graph.ID).Msg("Graph exported")

	resp := &models.ExportGraphResponse{}
	resp.Body.ID = graph.ID
	resp.Body.DownloadURL = url
	resp.Body.ExpiresIn = int(h.exporter.URLExpiry().Seconds())
	return resp, nil
}
