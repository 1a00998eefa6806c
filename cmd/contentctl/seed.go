package main

import (
	"bytes"
	"context"
	"fmt"

	"ausverity-backend/content"
	"ausverity-backend/models"
	"ausverity-backend/repository"
	"ausverity-backend/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedTarget string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Copy the embedded content into postgres or object storage",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedTarget, "to", "storage", "Seed target: storage or postgres")
}

// contentUpserter is the write side of repository.ContentRepository
type contentUpserter interface {
	Upsert(ctx context.Context, stateCode, slug string, block models.ContentBlock) error
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	table, err := content.Embedded()
	if err != nil {
		return err
	}

	var n int
	switch seedTarget {
	case "storage":
		store, err := storage.NewStorageFromEnv()
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		n, err = seedStorage(ctx, table, content.StorageSource{Store: store, Prefix: cfg.ContentPrefix})
		if err != nil {
			return err
		}

	case "postgres":
		db, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		if db == nil {
			return fmt.Errorf("DATABASE_URL is required to seed postgres")
		}
		defer db.Close()
		n, err = seedPostgres(ctx, table, repository.NewContentRepository(db))
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown seed target: %s", seedTarget)
	}

	logger.Info("seed complete", zap.String("target", seedTarget), zap.Int("written", n))
	return nil
}

// seedStorage writes one document per state and returns the number of documents
func seedStorage(ctx context.Context, table content.Table, dst content.StorageSource) (int, error) {
	n := 0
	for state, areas := range table {
		var buf bytes.Buffer
		if err := content.Encode(&buf, state, areas); err != nil {
			return n, err
		}
		key := dst.Key(state)
		if err := dst.Store.Put(ctx, key, storage.ContentTypeFor(key), &buf); err != nil {
			return n, fmt.Errorf("failed to write %s: %w", key, err)
		}
		n++
	}
	return n, nil
}

// seedPostgres upserts every block and returns the number of rows written
func seedPostgres(ctx context.Context, table content.Table, repo contentUpserter) (int, error) {
	n := 0
	for state, areas := range table {
		for slug, block := range areas {
			if err := repo.Upsert(ctx, state, slug, block); err != nil {
				return n, fmt.Errorf("failed to upsert %s/%s: %w", state, slug, err)
			}
			n++
		}
	}
	return n, nil
}
