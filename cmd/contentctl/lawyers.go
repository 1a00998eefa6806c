package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"ausverity-backend/directory"
	"ausverity-backend/models"
	"ausverity-backend/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var importLawyersCmd = &cobra.Command{
	Use:   "import-lawyers [file]",
	Short: "Load lawyer listings from a YAML file into postgres",
	Long: `Reads a YAML list of lawyer listings and inserts each one into the lawyers
table. Every listing must name a known state and known practice area categories.`,
	Args: cobra.ExactArgs(1),
	RunE: runImportLawyers,
}

// lawyerRecord is one entry of a listings file
type lawyerRecord struct {
	Name       string   `yaml:"name"`
	FirmName   string   `yaml:"firm_name"`
	State      string   `yaml:"state"`
	Categories []string `yaml:"categories"`
	Suburb     string   `yaml:"suburb"`
	Phone      string   `yaml:"phone"`
	Email      string   `yaml:"email"`
	Website    string   `yaml:"website"`
	Verified   bool     `yaml:"verified"`
}

// lawyerCreator is the write side of repository.LawyerRepository
type lawyerCreator interface {
	Create(ctx context.Context, lawyer *models.Lawyer) error
}

func runImportLawyers(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	lawyers, err := parseLawyers(f)
	if err != nil {
		return err
	}

	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	if db == nil {
		return errors.New("DATABASE_URL is required to import lawyers")
	}
	defer db.Close()

	n, err := importLawyers(ctx, lawyers, repository.NewLawyerRepository(db))
	if err != nil {
		return err
	}

	logger.Info("lawyers imported", zap.String("file", args[0]), zap.Int("created", n))
	return nil
}

// parseLawyers decodes and validates a listings file
func parseLawyers(r io.Reader) ([]*models.Lawyer, error) {
	var records []lawyerRecord
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}

	lawyers := make([]*models.Lawyer, 0, len(records))
	for i, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("listing %d: name is required", i)
		}
		if !directory.IsValidStateCode(rec.State) {
			return nil, fmt.Errorf("listing %d (%s): unknown state %q", i, rec.Name, rec.State)
		}
		if len(rec.Categories) == 0 {
			return nil, fmt.Errorf("listing %d (%s): at least one category is required", i, rec.Name)
		}
		for _, category := range rec.Categories {
			if !directory.IsValidCategory(category) {
				return nil, fmt.Errorf("listing %d (%s): unknown category %q", i, rec.Name, category)
			}
		}

		lawyers = append(lawyers, &models.Lawyer{
			Name:       rec.Name,
			FirmName:   optional(rec.FirmName),
			StateCode:  rec.State,
			Categories: rec.Categories,
			Suburb:     optional(rec.Suburb),
			Phone:      optional(rec.Phone),
			Email:      optional(rec.Email),
			Website:    optional(rec.Website),
			Verified:   rec.Verified,
		})
	}
	return lawyers, nil
}

// importLawyers creates every listing and returns the number created
func importLawyers(ctx context.Context, lawyers []*models.Lawyer, repo lawyerCreator) (int, error) {
	for i, lawyer := range lawyers {
		if err := repo.Create(ctx, lawyer); err != nil {
			return i, fmt.Errorf("failed to create %s: %w", lawyer.Name, err)
		}
	}
	return len(lawyers), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
