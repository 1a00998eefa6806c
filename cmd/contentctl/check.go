package main

import (
	"errors"
	"fmt"
	"io"

	"ausverity-backend/content"

	"github.com/spf13/cobra"
)

var errIncompleteCoverage = errors.New("content coverage is incomplete")

var checkStrict bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report which state and practice area pairs have content",
	Long: `Loads the configured content source and lists every valid pair without a
content block, plus any states or slugs in the content that are not served.
With --strict the command fails unless coverage is complete.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Fail unless every pair has content")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	table, name, err := loadConfiguredTable(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Source: %s\n", name)
	return reportCoverage(cmd.OutOrStdout(), content.Check(table), checkStrict)
}

func reportCoverage(w io.Writer, cov content.Coverage, strict bool) error {
	fmt.Fprintf(w, "Coverage: %d/%d\n", cov.Covered, cov.Total)

	if len(cov.Missing) > 0 {
		fmt.Fprintf(w, "\nMissing (%d):\n", len(cov.Missing))
		for _, p := range cov.Missing {
			fmt.Fprintf(w, "  %s/%s\n", p.State, p.PracticeArea)
		}
	}
	if len(cov.UnknownStates) > 0 {
		fmt.Fprintf(w, "\nUnknown states:\n")
		for _, s := range cov.UnknownStates {
			fmt.Fprintf(w, "  %s\n", s)
		}
	}
	if len(cov.UnknownSlugs) > 0 {
		fmt.Fprintf(w, "\nUnknown practice areas:\n")
		for _, p := range cov.UnknownSlugs {
			fmt.Fprintf(w, "  %s/%s\n", p.State, p.PracticeArea)
		}
	}

	if strict && !cov.Complete() {
		return errIncompleteCoverage
	}
	return nil
}
