// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/pubmetric/pkg/types"
)

// statsColumns are appended after the roster's own columns in the stats
// export, one value per trainee.
var statsColumns = []string{
	"research_papers",
	"first_author_research_papers",
	"first_author_journals",
	"reviews",
	"first_author_reviews",
	"paper_count",
	"pmids",
	"error",
}

// listSep joins list-valued cells (journal titles, PMIDs) inside one CSV field.
const listSep = "; "

// WriteStats writes the per-trainee statistics joined column-wise to the
// input roster. stats must be parallel to t.Rows.
func WriteStats(path string, t Table, stats []types.TraineeStats) error {
	if len(stats) != len(t.Rows) {
		return fmt.Errorf("stats rows (%d) do not match roster rows (%d)", len(stats), len(t.Rows))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating stats export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append(append([]string{}, t.Header...), statsColumns...)); err != nil {
		return fmt.Errorf("writing stats header: %w", err)
	}

	for i, row := range t.Rows {
		s := stats[i]
		rec := append(append([]string{}, row.Cells...),
			strconv.Itoa(s.ResearchPapers),
			strconv.Itoa(s.FirstAuthorResearchPapers),
			strings.Join(s.FirstAuthorJournals, listSep),
			strconv.Itoa(s.Reviews),
			strconv.Itoa(s.FirstAuthorReviews),
			strconv.Itoa(s.PaperCount),
			strings.Join(s.PMIDs, listSep),
			s.Error,
		)
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("writing stats row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing stats export: %w", err)
	}
	return nil
}

// paperColumns is the header of the paper-content export. pmc and pubmed
// are derived from the typed articleids list.
var paperColumns = []string{
	"uid",
	"title",
	"source",
	"fulljournalname",
	"pubdate",
	"lastauthor",
	"authors",
	"pubtype",
	"pmc",
	"pubmed",
}

// WritePaperContent writes every retained summary record, one paper per
// row, regardless of first-authorship outcome.
func WritePaperContent(path string, papers []types.PublicationSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating paper-content export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(paperColumns); err != nil {
		return fmt.Errorf("writing paper-content header: %w", err)
	}

	for i, p := range papers {
		authors := make([]string, len(p.Authors))
		for j, a := range p.Authors {
			authors[j] = a.Name
		}
		rec := []string{
			p.UID,
			p.Title,
			p.Source,
			p.FullJournalName,
			p.PubDate,
			p.LastAuthor,
			strings.Join(authors, listSep),
			strings.Join(p.PubTypes, listSep),
			p.Identifier("pmc"),
			p.Identifier("pubmed"),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("writing paper-content row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing paper-content export: %w", err)
	}
	return nil
}
