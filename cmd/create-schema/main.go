package main

import (
	"context"
	"fmt"
	"log"

	"ausverity-backend/bootstrap"
	"ausverity-backend/config"
	"ausverity-backend/logging"

	"go.uber.org/zap"
)

func main() {
	if !config.LoadDotEnv() {
		log.Printf("Warning: No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	pool, err := bootstrap.InitPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	tables := []struct {
		name string
		sql  string
	}{
		{
			name: "practice_area_content",
			sql: `
CREATE TABLE IF NOT EXISTS practice_area_content (
    state_code VARCHAR(8) NOT NULL,
    slug VARCHAR(64) NOT NULL,

    -- models.ContentBlock
    content JSONB NOT NULL,

    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW(),

    PRIMARY KEY (state_code, slug)
);`,
		},
		{
			name: "lawyers",
			sql: `
CREATE TABLE IF NOT EXISTS lawyers (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name VARCHAR(255) NOT NULL,
    firm_name VARCHAR(255),
    state_code VARCHAR(8) NOT NULL,

    -- practice area categories, e.g. {family,property}
    categories TEXT[] NOT NULL DEFAULT '{}',

    suburb VARCHAR(120),
    phone VARCHAR(40),
    email VARCHAR(255),
    website TEXT,
    verified BOOLEAN NOT NULL DEFAULT false,
    created_at TIMESTAMP DEFAULT NOW()
);`,
		},
	}

	for _, table := range tables {
		if _, err := pool.Exec(ctx, table.sql); err != nil {
			logger.Fatal("failed to create table", zap.String("table", table.name), zap.Error(err))
		}
		logger.Info("table ready", zap.String("table", table.name))
	}

	indexes := []struct {
		name string
		sql  string
	}{
		{
			name: "Lawyers by state",
			sql:  "CREATE INDEX IF NOT EXISTS idx_lawyers_state_code ON lawyers(state_code);",
		},
		{
			name: "Lawyer category filtering",
			sql:  "CREATE INDEX IF NOT EXISTS idx_lawyers_categories ON lawyers USING gin (categories);",
		},
		{
			name: "Content by state",
			sql:  "CREATE INDEX IF NOT EXISTS idx_content_state_code ON practice_area_content(state_code);",
		},
	}

	for _, idx := range indexes {
		if _, err := pool.Exec(ctx, idx.sql); err != nil {
			logger.Warn("failed to create index", zap.String("index", idx.name), zap.Error(err))
		} else {
			logger.Info("index ready", zap.String("index", idx.name))
		}
	}

	fmt.Println("\nDatabase schema created successfully")
	fmt.Println("   Tables: practice_area_content, lawyers")
	fmt.Printf("   Indexes: %d\n", len(indexes))
}
