package repository

import (
	"context"
	"fmt"

	"ausverity-backend/content"
	"ausverity-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContentRepository handles database operations for practice area content.
// It also serves as a content.Source.
type ContentRepository struct {
	db *pgxpool.Pool
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{db: db}
}

// Name identifies the repository as a content source
func (r *ContentRepository) Name() string {
	return "postgres"
}

// Load reads every content row into a table
func (r *ContentRepository) Load(ctx context.Context) (content.Table, error) {
	query := `
		SELECT state_code, slug, content
		FROM practice_area_content
		ORDER BY state_code, slug`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query content: %w", err)
	}

	return collectContent(rows)
}

// collectContent groups (state_code, slug, content) rows into a table and
// closes rows
func collectContent(rows pgx.Rows) (content.Table, error) {
	defer rows.Close()

	table := make(content.Table)
	for rows.Next() {
		var (
			state, slug string
			block       models.ContentBlock
		)
		if err := rows.Scan(&state, &slug, &block); err != nil {
			return nil, fmt.Errorf("failed to scan content row: %w", err)
		}

		if table[state] == nil {
			table[state] = make(map[string]models.ContentBlock)
		}
		table[state][slug] = block
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating content rows: %w", err)
	}

	return table, nil
}

// Upsert creates or replaces the block for a state and practice area
func (r *ContentRepository) Upsert(ctx context.Context, stateCode, slug string, block models.ContentBlock) error {
	query := `
		INSERT INTO practice_area_content (state_code, slug, content)
		VALUES ($1, $2, $3)
		ON CONFLICT (state_code, slug) DO UPDATE SET
			content = EXCLUDED.content,
			updated_at = NOW()`

	// block is encoded by its driver.Valuer
	_, err := r.db.Exec(ctx, query, stateCode, slug, block)
	return err
}

// Delete removes the block for a state and practice area
func (r *ContentRepository) Delete(ctx context.Context, stateCode, slug string) error {
	query := `DELETE FROM practice_area_content WHERE state_code = $1 AND slug = $2`
	_, err := r.db.Exec(ctx, query, stateCode, slug)
	return err
}
