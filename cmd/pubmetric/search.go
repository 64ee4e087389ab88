// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmetric/internal/assess"
	"github.com/pdiddy/pubmetric/internal/eutils"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a single PubMed author search",
	Long: `Search runs one author search the same way assess would, printing the
generated search term, the hit count, and the matched PMIDs. Useful for
checking how specific a roster row's terms are before a full run.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("last", "", "trainee last name (required)")
	searchCmd.Flags().String("first", "", "trainee first name")
	searchCmd.Flags().String("mentor", "", `mentor, "Last, First" or verbatim`)
	searchCmd.Flags().String("location", "", "affiliation term")
	searchCmd.Flags().Bool("json", false, "output the result as JSON")
	searchCmd.MarkFlagRequired("last")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if err := cfg.NCBI.Validate(); err != nil {
		return err
	}

	last, _ := cmd.Flags().GetString("last")
	first, _ := cmd.Flags().GetString("first")
	mentor, _ := cmd.Flags().GetString("mentor")
	location, _ := cmd.Flags().GetString("location")

	q := assess.NewTraineeQuery(last, first, mentor, location, cfg.Assess.UseInitial)
	fmt.Fprintf(os.Stderr, "search term: %s\n", q.SearchTerm())

	client := eutils.NewClient(cfg.NCBI, cfg.HTTP)
	out, err := client.Search(cmd.Context(), q.SearchTerm())
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("%d results\n", out.Count)
	for _, pmid := range out.PMIDs {
		fmt.Println(pmid)
	}
	if out.Count > cfg.Assess.TooManyResults {
		fmt.Fprintf(os.Stderr, "note: count exceeds the too-many-results ceiling (%d); assess would skip fetching\n",
			cfg.Assess.TooManyResults)
	}
	return nil
}
