// Command contentctl manages the practice area content and listings:
// coverage checks, static export, seeding, pruning, drafting, lawyer imports
// and admin token hashing.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"ausverity-backend/bootstrap"
	"ausverity-backend/config"
	"ausverity-backend/content"
	"ausverity-backend/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg     *config.Config
	logger  *zap.Logger
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "contentctl",
	Short:         "Manage AusVerity practice area content",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadDotEnv()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Env, cfg.LogLevel)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Minute, "Operation timeout")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(hashTokenCmd)
	rootCmd.AddCommand(importLawyersCmd)
	rootCmd.AddCommand(pruneCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

// openDatabase connects when DATABASE_URL is set; the returned pool may be nil
func openDatabase(ctx context.Context) (*pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}
	return bootstrap.InitPostgres(ctx, cfg.DatabaseURL)
}

// loadConfiguredTable loads the table from CONTENT_SOURCE
func loadConfiguredTable(ctx context.Context) (content.Table, string, error) {
	var db *pgxpool.Pool
	if cfg.ContentSource == config.ContentSourcePostgres {
		var err error
		db, err = openDatabase(ctx)
		if err != nil {
			return nil, "", err
		}
		defer db.Close()
	}

	source, err := bootstrap.ContentSource(cfg, db)
	if err != nil {
		return nil, "", err
	}
	table, err := source.Load(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load content from %s: %w", source.Name(), err)
	}
	return table, source.Name(), nil
}
