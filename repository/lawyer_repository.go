package repository

import (
	"context"

	"ausverity-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LawyerRepository handles database operations for lawyer listings
type LawyerRepository struct {
	db *pgxpool.Pool
}

// NewLawyerRepository creates a new lawyer repository
func NewLawyerRepository(db *pgxpool.Pool) *LawyerRepository {
	return &LawyerRepository{db: db}
}

// Create creates a new lawyer listing
func (r *LawyerRepository) Create(ctx context.Context, lawyer *models.Lawyer) error {
	query := `
		INSERT INTO lawyers (
			name, firm_name, state_code, categories, suburb, phone, email, website, verified
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		lawyer.Name,
		lawyer.FirmName,
		lawyer.StateCode,
		lawyer.Categories,
		lawyer.Suburb,
		lawyer.Phone,
		lawyer.Email,
		lawyer.Website,
		lawyer.Verified,
	).Scan(&lawyer.ID, &lawyer.CreatedAt)

	return err
}

// Search retrieves lawyers practising in a state under a category.
// Verified listings come first.
func (r *LawyerRepository) Search(ctx context.Context, stateCode, category string, limit, offset int) ([]*models.Lawyer, error) {
	query := `
		SELECT id, name, firm_name, state_code, categories, suburb, phone, email, website, verified, created_at
		FROM lawyers
		WHERE state_code = $1 AND $2 = ANY(categories)
		ORDER BY verified DESC, name ASC
		LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, stateCode, category, limit, offset)
	if err != nil {
		return nil, err
	}

	return collectLawyers(rows)
}

// collectLawyers scans search rows in order and closes rows
func collectLawyers(rows pgx.Rows) ([]*models.Lawyer, error) {
	defer rows.Close()

	lawyers := make([]*models.Lawyer, 0)
	for rows.Next() {
		lawyer := &models.Lawyer{}
		err := rows.Scan(
			&lawyer.ID,
			&lawyer.Name,
			&lawyer.FirmName,
			&lawyer.StateCode,
			&lawyer.Categories,
			&lawyer.Suburb,
			&lawyer.Phone,
			&lawyer.Email,
			&lawyer.Website,
			&lawyer.Verified,
			&lawyer.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		lawyers = append(lawyers, lawyer)
	}

	return lawyers, rows.Err()
}
