// Package bootstrap wires infrastructure shared by the server and the CLI tools.
package bootstrap

import (
	"context"
	"fmt"

	"ausverity-backend/config"
	"ausverity-backend/content"
	"ausverity-backend/repository"
	"ausverity-backend/storage"

	"github.com/google/generative-ai-go/genai"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/api/option"
)

// InitPostgres opens a pool and verifies the connection
func InitPostgres(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// InitGemini creates a Gemini client for apiKey
func InitGemini(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	return genai.NewClient(ctx, option.WithAPIKey(apiKey))
}

// ContentSource returns the source selected by cfg.ContentSource. db is only
// used by the postgres source and may be nil otherwise.
func ContentSource(cfg *config.Config, db *pgxpool.Pool) (content.Source, error) {
	switch cfg.ContentSource {
	case config.ContentSourceEmbedded:
		return content.EmbeddedSource{}, nil
	case config.ContentSourceDir:
		return content.DirSource{Dir: cfg.ContentDir}, nil
	case config.ContentSourceStorage:
		store, err := storage.NewStorageFromEnv()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		return content.StorageSource{Store: store, Prefix: cfg.ContentPrefix}, nil
	case config.ContentSourcePostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres content source needs a database connection")
		}
		return repository.NewContentRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown content source: %s", cfg.ContentSource)
	}
}
