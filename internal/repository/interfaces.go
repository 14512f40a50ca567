package repository

import (
	"context"
	"errors"

	"github.com/RMahshie/voltadash/pkg/models"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no row matches the requested ID
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a unique key is already taken
	ErrAlreadyExists = errors.New("already exists")
)

// GraphRepository defines the interface for saved graph operations
type GraphRepository interface {
	Create(ctx context.Context, graph *models.Graph) error
	List(ctx context.Context) ([]*models.Graph, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Graph, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ConcentrationRepository defines the interface for custom concentration labels
type ConcentrationRepository interface {
	Create(ctx context.Context, label string) (*models.ConcentrationRecord, error)
	List(ctx context.Context) ([]*models.ConcentrationRecord, error)
}
