// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmetric/internal/assess"
	"github.com/pdiddy/pubmetric/internal/eutils"
	"github.com/pdiddy/pubmetric/internal/roster"
	"github.com/pdiddy/pubmetric/pkg/types"
)

var assessCmd = &cobra.Command{
	Use:   "assess <roster.csv>",
	Short: "Assess every trainee on a roster against PubMed",
	Long: `Assess reads a roster CSV with LastName, FirstName, ThesisMentor, and
Location columns, runs a PubMed author search for each row, and scores every
matched paper for review/research classification and first-authorship.

Three files are written to the output directory, prefixed with the run
timestamp: the trainee statistics joined to the roster, the flat
paper-content table, and a YAML run summary.`,
	Args: cobra.ExactArgs(1),
	RunE: runAssess,
}

func init() {
	assessCmd.Flags().Int("limit", 0, "process only the first N roster rows (0 = all)")
	assessCmd.Flags().Int("too-many", 0, "override the too-many-results ceiling")
	assessCmd.Flags().String("output-dir", "", "directory for the result files")
	assessCmd.Flags().Bool("no-summary", false, "skip the YAML run summary file")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if v, _ := cmd.Flags().GetInt("too-many"); v > 0 {
		cfg.Assess.TooManyResults = v
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		cfg.Assess.OutputDir = v
	}

	// Credentials are checked before any roster row is touched: a bad key
	// should not surface halfway through a two-hour run.
	if err := cfg.NCBI.Validate(); err != nil {
		return err
	}

	table, err := roster.Read(args[0])
	if err != nil {
		return err
	}
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && limit < len(table.Rows) {
		table.Rows = table.Rows[:limit]
	}

	client := eutils.NewClient(cfg.NCBI, cfg.HTTP)
	assessor := assess.New(client, cfg.Assess, os.Stderr)

	outcomes := make([]assess.Outcome, 0, len(table.Rows))
	stats := make([]types.TraineeStats, 0, len(table.Rows))
	var papers []types.PublicationSummary

	for i, row := range table.Rows {
		q := assess.NewTraineeQuery(row.LastName, row.FirstName, row.ThesisMentor, row.Location, cfg.Assess.UseInitial)
		fmt.Fprintf(os.Stderr, "[%d/%d] %s: %s\n", i+1, len(table.Rows), q.Trainee, q.SearchTerm())

		out, err := assessor.Assess(cmd.Context(), q)
		if err != nil {
			// A transport failure costs this row only; the rest of the
			// roster still runs.
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			out.Stats.Error = err.Error()
		}

		outcomes = append(outcomes, out)
		stats = append(stats, out.Stats)
		papers = append(papers, out.Papers...)
	}

	stamp := time.Now().Format("2006-01-02_15-04")
	statsPath := filepath.Join(cfg.Assess.OutputDir, stamp+"_trainee_stats.csv")
	papersPath := filepath.Join(cfg.Assess.OutputDir, stamp+"_paper_content.csv")

	if err := roster.WriteStats(statsPath, table, stats); err != nil {
		return err
	}
	if err := roster.WritePaperContent(papersPath, papers); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Wrote", statsPath)
	fmt.Fprintln(os.Stderr, "Wrote", papersPath)

	if skip, _ := cmd.Flags().GetBool("no-summary"); !skip {
		runPath := filepath.Join(cfg.Assess.OutputDir, stamp+"_run.yaml")
		if err := assess.WriteRunFile(runPath, cfg.Assess, outcomes); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Wrote", runPath)
	}

	errCount := 0
	for _, s := range stats {
		if s.Error != "" {
			errCount++
		}
	}
	fmt.Fprintf(os.Stderr, "Assessed %d trainees, %d with errors, %d papers retained\n",
		len(stats), errCount, len(papers))
	return nil
}
