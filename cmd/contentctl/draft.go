package main

import (
	"errors"
	"fmt"

	"ausverity-backend/bootstrap"
	"ausverity-backend/content"
	"ausverity-backend/directory"
	"ausverity-backend/models"
	"ausverity-backend/service"
	"ausverity-backend/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	draftState        string
	draftPracticeArea string
	draftMissing      bool
	draftPrefix       string
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft content blocks with Gemini for editorial review",
	Long: `Drafts a content block for one pair (--state and --practice-area) or for
every pair without content (--missing). Drafts are written to storage under
--prefix and are not served until an editor copies them into the content source.`,
	Args: cobra.NoArgs,
	RunE: runDraft,
}

func init() {
	draftCmd.Flags().StringVar(&draftState, "state", "", "State code, e.g. qld")
	draftCmd.Flags().StringVar(&draftPracticeArea, "practice-area", "", "Practice area slug, e.g. family-law")
	draftCmd.Flags().BoolVar(&draftMissing, "missing", false, "Draft every pair without content")
	draftCmd.Flags().StringVar(&draftPrefix, "prefix", "drafts", "Key prefix for drafts")
}

func runDraft(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	table, _, err := loadConfiguredTable(ctx)
	if err != nil {
		return err
	}

	targets, err := draftTargets(table, draftState, draftPracticeArea, draftMissing)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		logger.Info("nothing to draft")
		return nil
	}

	client, err := bootstrap.InitGemini(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to initialize Gemini: %w", err)
	}
	defer client.Close()

	store, err := storage.NewStorageFromEnv()
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	drafts := service.NewDraftService(
		service.DraftWithGeminiClient(client),
		service.DraftWithModel(cfg.GeminiModel),
		service.DraftWithStorage(store, draftPrefix),
	)

	var failed int
	for _, target := range targets {
		result, err := drafts.DraftContent(ctx, service.DraftContentRequest{
			State:        target.State,
			PracticeArea: target.PracticeArea,
			Example:      exampleFor(table, target),
		})
		if err != nil {
			failed++
			logger.Error("draft failed", zap.String("state", target.State), zap.String("practice_area", target.PracticeArea), zap.Error(err))
			continue
		}

		key, err := drafts.SaveDraft(ctx, target.State, target.PracticeArea, result.Block)
		if err != nil {
			return err
		}
		logger.Info("draft saved", zap.String("key", key))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d drafts failed", failed, len(targets))
	}
	return nil
}

// draftTargets resolves the flags to the pairs to draft
func draftTargets(table content.Table, state, slug string, missing bool) ([]models.RouteParams, error) {
	if missing {
		if state != "" || slug != "" {
			return nil, errors.New("--missing cannot be combined with --state or --practice-area")
		}
		return content.Check(table).Missing, nil
	}

	if state == "" || slug == "" {
		return nil, errors.New("--state and --practice-area are required unless --missing is set")
	}
	if !directory.IsValidStateCode(state) {
		return nil, fmt.Errorf("unknown state: %s", state)
	}
	if !directory.IsValidPracticeAreaSlug(slug) {
		return nil, fmt.Errorf("unknown practice area: %s", slug)
	}
	return []models.RouteParams{{State: state, PracticeArea: slug}}, nil
}

// exampleFor picks the same practice area from another state, in state order
func exampleFor(table content.Table, target models.RouteParams) *models.ContentBlock {
	for _, st := range directory.States() {
		if st.Code == target.State {
			continue
		}
		if block, ok := table[st.Code][target.PracticeArea]; ok {
			return &block
		}
	}
	return nil
}
