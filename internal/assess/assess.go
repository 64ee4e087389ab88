// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assess

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/pubmetric/internal/names"
	"github.com/pdiddy/pubmetric/pkg/types"
)

// Stats error tags for searches that cannot be scored. Both are per-row
// outcomes, never fatal to the run.
const (
	ErrZeroResults    = "Search returned zero results"
	ErrTooManyResults = "Search returned too many results"
)

// LiteratureService is the subset of the E-utilities client the assessor
// depends on. Declared here so tests can substitute a deterministic stub.
type LiteratureService interface {
	Search(ctx context.Context, term string) (types.SearchOutcome, error)
	FetchSummaries(ctx context.Context, cur types.ResultCursor) ([]types.PublicationSummary, error)
	FetchFullRecords(ctx context.Context, cur types.ResultCursor) ([]types.PublicationRecord, error)
}

// Assessor runs the per-trainee pipeline: search, fetch both record
// shapes, classify and score every paper.
type Assessor struct {
	svc LiteratureService
	cfg types.AssessConfig

	// diag receives per-paper disambiguation diagnostics.
	diag io.Writer
}

// New builds an Assessor. diag receives matcher diagnostics; pass
// io.Discard to silence them.
func New(svc LiteratureService, cfg types.AssessConfig, diag io.Writer) *Assessor {
	if diag == nil {
		diag = io.Discard
	}
	return &Assessor{svc: svc, cfg: cfg, diag: diag}
}

// Outcome holds one trainee's finished stats plus the summary records
// retained for the paper-content export. Every fetched summary is
// retained, first-authored or not.
type Outcome struct {
	Query  TraineeQuery
	Stats  types.TraineeStats
	Papers []types.PublicationSummary
}

// Assess runs the full pipeline for one trainee. Search-scope problems
// (zero hits, too many hits) are recorded in the stats error field and
// return nil; only transport and decode failures return an error.
func (a *Assessor) Assess(ctx context.Context, q TraineeQuery) (Outcome, error) {
	out := Outcome{Query: q}

	res, err := a.svc.Search(ctx, q.SearchTerm())
	if err != nil {
		return out, fmt.Errorf("searching for %s: %w", q.Trainee, err)
	}

	out.Stats.PaperCount = res.Count
	out.Stats.PMIDs = res.PMIDs

	if res.Count == 0 {
		out.Stats.Error = ErrZeroResults
		return out, nil
	}
	// A hit count above the ceiling means the terms were not specific
	// enough; fetching hundreds of papers for a common name helps nobody.
	if res.Count > a.cfg.TooManyResults {
		out.Stats.Error = ErrTooManyResults
		return out, nil
	}

	summaries, err := a.svc.FetchSummaries(ctx, res.Cursor)
	if err != nil {
		return out, fmt.Errorf("fetching summaries for %s: %w", q.Trainee, err)
	}
	records, err := a.svc.FetchFullRecords(ctx, res.Cursor)
	if err != nil {
		return out, fmt.Errorf("fetching full records for %s: %w", q.Trainee, err)
	}

	byPMID := make(map[string]types.PublicationRecord, len(records))
	for _, r := range records {
		byPMID[r.PMID] = r
	}

	traineeCanonical := names.Canonicalize(q.Trainee)
	for _, s := range summaries {
		// Either record shape can confirm first-authorship; the flag is
		// computed once so agreement never double-increments. A missing
		// full record leaves the zero value, which matches nothing.
		first := SummaryIsFirstAuthor(q.Trainee, s) ||
			FullRecordIsFirstAuthor(traineeCanonical, byPMID[s.UID], a.diag)

		if IsReview(s) {
			out.Stats.Reviews++
			if first {
				out.Stats.FirstAuthorReviews++
			}
		} else {
			out.Stats.ResearchPapers++
			if first {
				out.Stats.FirstAuthorResearchPapers++
				out.Stats.FirstAuthorJournals = append(out.Stats.FirstAuthorJournals, s.Source)
			}
		}

		out.Papers = append(out.Papers, s)
	}

	return out, nil
}
