// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assess

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmetric/pkg/types"
)

// RunFile is the on-disk YAML summary of an assessment run: the settings
// that produced it plus one outcome line per trainee. It exists so a run
// can be audited later without re-reading the CSV exports.
type RunFile struct {
	Config  RunConfig  `yaml:"config"`
	Rows    []RunRow   `yaml:"rows"`
	Summary RunSummary `yaml:"summary"`
}

// RunConfig echoes the assessment settings in effect for the run.
type RunConfig struct {
	TooManyResults int  `yaml:"too_many_results"`
	UseInitial     bool `yaml:"use_initial"`
}

// RunRow is one trainee's outcome.
type RunRow struct {
	Trainee                   string `yaml:"trainee"`
	Mentor                    string `yaml:"mentor,omitempty"`
	Location                  string `yaml:"location,omitempty"`
	PaperCount                int    `yaml:"paper_count"`
	ResearchPapers            int    `yaml:"research_papers"`
	FirstAuthorResearchPapers int    `yaml:"first_author_research_papers"`
	Reviews                   int    `yaml:"reviews"`
	FirstAuthorReviews        int    `yaml:"first_author_reviews"`
	Error                     string `yaml:"error,omitempty"`
}

// RunSummary holds run-level totals and a timestamp.
type RunSummary struct {
	Trainees  int       `yaml:"trainees"`
	Errors    int       `yaml:"errors"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteRunFile saves the run summary to path.
func WriteRunFile(path string, cfg types.AssessConfig, outcomes []Outcome) error {
	rf := RunFile{
		Config: RunConfig{
			TooManyResults: cfg.TooManyResults,
			UseInitial:     cfg.UseInitial,
		},
		Summary: RunSummary{
			Trainees:  len(outcomes),
			Timestamp: time.Now(),
		},
	}

	for _, out := range outcomes {
		rf.Rows = append(rf.Rows, RunRow{
			Trainee:                   out.Query.Trainee,
			Mentor:                    out.Query.Mentor,
			Location:                  out.Query.Location,
			PaperCount:                out.Stats.PaperCount,
			ResearchPapers:            out.Stats.ResearchPapers,
			FirstAuthorResearchPapers: out.Stats.FirstAuthorResearchPapers,
			Reviews:                   out.Stats.Reviews,
			FirstAuthorReviews:        out.Stats.FirstAuthorReviews,
			Error:                     out.Stats.Error,
		})
		if out.Stats.Error != "" {
			rf.Summary.Errors++
		}
	}

	data, err := yaml.Marshal(rf)
	if err != nil {
		return fmt.Errorf("marshaling run summary: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
