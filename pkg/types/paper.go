// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ResultCursor references a search's result set cached on the NCBI history
// server. Follow-up summary and full-record fetches pass the cursor back so
// they retrieve exactly the membership the search produced, not a re-query
// that could race with database updates.
type ResultCursor struct {
	WebEnv   string `json:"web_env" yaml:"web_env"`
	QueryKey string `json:"query_key" yaml:"query_key"`
}

// SearchOutcome is what a search call returns: the total hit count, the
// matched PMIDs, and the cursor for follow-up fetches.
type SearchOutcome struct {
	Count  int          `json:"count" yaml:"count"`
	PMIDs  []string     `json:"pmids" yaml:"pmids"`
	Cursor ResultCursor `json:"-" yaml:"-"`
}

// SummaryAuthor is one entry in an esummary author list. Name is a display
// string like "Huxlin KR".
type SummaryAuthor struct {
	Name     string `json:"name"`
	AuthType string `json:"authtype"`
}

// ArticleID is a typed external identifier attached to a summary
// (idtype "pubmed", "pmc", "doi", ...).
type ArticleID struct {
	IDType string `json:"idtype"`
	Value  string `json:"value"`
}

// PublicationSummary is the compact esummary record for one paper.
type PublicationSummary struct {
	UID             string          `json:"uid"`
	Title           string          `json:"title"`
	Source          string          `json:"source"`
	FullJournalName string          `json:"fulljournalname"`
	PubDate         string          `json:"pubdate"`
	LastAuthor      string          `json:"lastauthor"`
	Authors         []SummaryAuthor `json:"authors"`
	PubTypes        []string        `json:"pubtype"`
	ArticleIDs      []ArticleID     `json:"articleids"`
}

// Identifier returns the value of the first attached identifier of the
// given type, or "" if the paper carries none.
func (s PublicationSummary) Identifier(idType string) string {
	for _, id := range s.ArticleIDs {
		if id.IDType == idType {
			return id.Value
		}
	}
	return ""
}

// FullAuthor is one author entry from an efetch bibliographic record.
type FullAuthor struct {
	LastName string
	ForeName string
	Initials string

	// EqualContrib is set when the record carries the equal-contribution
	// attribute, marking a co-first author regardless of list position.
	EqualContrib bool
}

// PublicationRecord is the detailed efetch record for one paper. Summary
// and full record for the same PMID describe the same publication; both are
// consulted because each can independently resolve first-authorship.
type PublicationRecord struct {
	PMID    string
	Authors []FullAuthor
}

// TraineeStats accumulates one trainee's publication counters. Created
// empty, mutated during that trainee's assessment, never shared across
// trainees.
type TraineeStats struct {
	ResearchPapers            int
	FirstAuthorResearchPapers int
	FirstAuthorJournals       []string
	Reviews                   int
	FirstAuthorReviews        int
	PaperCount                int
	PMIDs                     []string

	// Error holds a search-scope error tag ("Search returned zero
	// results", ...) or a transport failure; empty on a clean run.
	Error string
}
