package main

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"ausverity-backend/content"
	"ausverity-backend/render"
	"ausverity-backend/service"
	"ausverity-backend/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportPrefix string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render every page to static HTML in storage",
	Long: `Renders the home page, every state page, all statically generated practice
area pages and 404.html into the configured storage (STORAGE_TYPE).`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportPrefix, "prefix", "site", "Key prefix for exported files")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	table, name, err := loadConfiguredTable(ctx)
	if err != nil {
		return err
	}

	store, err := storage.NewStorageFromEnv()
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	renderer, err := render.New()
	if err != nil {
		return err
	}

	pages := service.NewPageService(
		service.WithContentResolver(content.NewResolver(table)),
		service.WithBaseURL(cfg.BaseURL),
		service.WithSiteName(cfg.SiteName),
	)

	written, err := exportSite(ctx, pages, renderer, store, exportPrefix)
	if err != nil {
		return err
	}

	logger.Info("export complete", zap.String("source", name), zap.Int("files", written), zap.String("prefix", exportPrefix))
	return nil
}

// exportSite writes every page under prefix and returns the number of files
func exportSite(ctx context.Context, pages *service.PageService, renderer *render.Renderer, store storage.Storage, prefix string) (int, error) {
	written := 0
	put := func(key string, fn func(*bytes.Buffer) error) error {
		var buf bytes.Buffer
		if err := fn(&buf); err != nil {
			return err
		}
		key = path.Join(prefix, key)
		if err := store.Put(ctx, key, storage.ContentTypeFor(key), &buf); err != nil {
			return fmt.Errorf("failed to write %s: %w", key, err)
		}
		written++
		return nil
	}

	if err := put("index.html", func(buf *bytes.Buffer) error {
		return renderer.Home(buf, pages.Home())
	}); err != nil {
		return written, err
	}

	if err := put("404.html", func(buf *bytes.Buffer) error {
		return renderer.NotFound(buf, pages.NotFound())
	}); err != nil {
		return written, err
	}

	for _, link := range pages.Home().States {
		overview, err := pages.StateOverview(ctx, service.StateOverviewRequest{State: link.State.Code})
		if err != nil {
			return written, err
		}
		if err := put(path.Join(link.State.Code, "index.html"), func(buf *bytes.Buffer) error {
			return renderer.State(buf, overview.Page)
		}); err != nil {
			return written, err
		}
	}

	for _, p := range pages.StaticParams() {
		result, err := pages.BuildPage(ctx, service.BuildPageRequest{State: p.State, PracticeArea: p.PracticeArea})
		if err != nil {
			return written, err
		}
		if err := put(path.Join(p.State, p.PracticeArea, "index.html"), func(buf *bytes.Buffer) error {
			return renderer.PracticeArea(buf, result.Page)
		}); err != nil {
			return written, err
		}
	}

	return written, nil
}
