package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/RMahshie/voltadash/internal/repository"
	"github.com/RMahshie/voltadash/pkg/models"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// PostgresConcentrationRepository implements ConcentrationRepository for PostgreSQL
type PostgresConcentrationRepository struct {
	db *sql.DB
}

// NewPostgresConcentrationRepository creates a new PostgreSQL concentration repository
func NewPostgresConcentrationRepository(db *sql.DB) repository.ConcentrationRepository {
	return &PostgresConcentrationRepository{db: db}
}

// Create stores a custom label
func (r *PostgresConcentrationRepository) Create(ctx context.Context, label string) (*models.ConcentrationRecord, error) {
	query := `
		INSERT INTO concentrations (label, created_at)
		VALUES ($1, NOW())
		RETURNING label, created_at`

	var rec models.ConcentrationRecord
	err := r.db.QueryRowContext(ctx, query, label).Scan(&rec.Label, &rec.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, repository.ErrAlreadyExists
		}
		return nil, err
	}

	return &rec, nil
}

// List returns custom labels in insertion order
func (r *PostgresConcentrationRepository) List(ctx context.Context) ([]*models.ConcentrationRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT label, created_at FROM concentrations ORDER BY created_at, label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*models.ConcentrationRecord{}
	for rows.Next() {
		var rec models.ConcentrationRecord
		if err := rows.Scan(&rec.Label, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}
