package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RMahshie/voltadash/internal/repository"
	"github.com/RMahshie/voltadash/pkg/models"
	"github.com/google/uuid"
)

// PostgresGraphRepository implements GraphRepository for PostgreSQL
type PostgresGraphRepository struct {
	db *sql.DB
}

// NewPostgresGraphRepository creates a new PostgreSQL graph repository
func NewPostgresGraphRepository(db *sql.DB) repository.GraphRepository {
	return &PostgresGraphRepository{db: db}
}

// Create inserts a new graph. ID and CreatedAt are filled in when empty.
func (r *PostgresGraphRepository) Create(ctx context.Context, graph *models.Graph) error {
	if graph.ID == "" {
		graph.ID = uuid.New().String()
	}
	if graph.CreatedAt.IsZero() {
		graph.CreatedAt = time.Now()
	}

	data, err := json.Marshal(graph.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal graph data: %w", err)
	}

	query := `
		INSERT INTO graphs (id, kind, concentration, data, saved_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.ExecContext(ctx, query,
		graph.ID,
		graph.Kind,
		graph.Concentration,
		string(data),
		graph.Timestamp,
		graph.CreatedAt)

	return err
}

// List returns all graphs, newest first
func (r *PostgresGraphRepository) List(ctx context.Context) ([]*models.Graph, error) {
	query := `
		SELECT id, kind, concentration, data, saved_at, created_at
		FROM graphs
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	graphs := []*models.Graph{}
	for rows.Next() {
		graph, err := scanGraph(rows)
		if err != nil {
			return nil, err
		}
		graphs = append(graphs, graph)
	}

	return graphs, rows.Err()
}

// GetByID retrieves a graph by ID
func (r *PostgresGraphRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Graph, error) {
	query := `
		SELECT id, kind, concentration, data, saved_at, created_at
		FROM graphs
		WHERE id = $1`

	graph, err := scanGraph(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return graph, err
}

// Delete removes a graph by ID
func (r *PostgresGraphRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM graphs WHERE id = $1`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGraph(row rowScanner) (*models.Graph, error) {
	var graph models.Graph
	var kind, concentration, timestamp sql.NullString
	var data []byte

	err := row.Scan(
		&graph.ID,
		&kind,
		&concentration,
		&data,
		&timestamp,
		&graph.CreatedAt)
	if err != nil {
		return nil, err
	}

	graph.Kind = kind.String
	graph.Concentration = concentration.String
	graph.Timestamp = timestamp.String

	if err := json.Unmarshal(data, &graph.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal graph data: %w", err)
	}

	return &graph, nil
}
