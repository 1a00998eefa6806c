package main

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"ausverity-backend/content"
	"ausverity-backend/models"
	"ausverity-backend/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var pruneDryRun bool

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete postgres content rows for unknown states or practice areas",
	Long: `Loads the practice_area_content table and deletes every row whose state or
slug is not served by the site. Use --dry-run to list the rows only.`,
	Args: cobra.NoArgs,
	RunE: runPrune,
}

func init() {
	pruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "List rows without deleting them")
}

// contentDeleter is the delete side of repository.ContentRepository
type contentDeleter interface {
	Delete(ctx context.Context, stateCode, slug string) error
}

func runPrune(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	if db == nil {
		return errors.New("DATABASE_URL is required to prune content")
	}
	defer db.Close()

	repo := repository.NewContentRepository(db)
	table, err := repo.Load(ctx)
	if err != nil {
		return err
	}

	stale := staleRows(table)
	for _, p := range stale {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s/%s\n", p.State, p.PracticeArea)
	}
	if pruneDryRun {
		return nil
	}

	if err := pruneRows(ctx, stale, repo); err != nil {
		return err
	}
	logger.Info("prune complete", zap.Int("deleted", len(stale)))
	return nil
}

// staleRows lists every (state, slug) in table that is not served
func staleRows(table content.Table) []models.RouteParams {
	cov := content.Check(table)

	stale := append([]models.RouteParams(nil), cov.UnknownSlugs...)
	for _, state := range cov.UnknownStates {
		slugs := make([]string, 0, len(table[state]))
		for slug := range table[state] {
			slugs = append(slugs, slug)
		}
		sort.Strings(slugs)
		for _, slug := range slugs {
			stale = append(stale, models.RouteParams{State: state, PracticeArea: slug})
		}
	}
	return stale
}

func pruneRows(ctx context.Context, rows []models.RouteParams, repo contentDeleter) error {
	for _, p := range rows {
		if err := repo.Delete(ctx, p.State, p.PracticeArea); err != nil {
			return fmt.Errorf("failed to delete %s/%s: %w", p.State, p.PracticeArea, err)
		}
	}
	return nil
}
