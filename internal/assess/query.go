// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assess decides, per trainee, which PubMed papers they first-
// authored and whether each paper is a review or a research article, then
// accumulates the per-trainee statistics.
package assess

import (
	"strings"

	"github.com/pdiddy/pubmetric/internal/names"
)

// Entrez field tags appended to each search term component.
const (
	authorTag      = "[Author] "
	affiliationTag = "[ad] "
)

// TraineeQuery holds one roster row's search identity: the formatted
// trainee name plus optional mentor and location terms. Immutable after
// construction.
type TraineeQuery struct {
	Trainee  string
	Mentor   string
	Location string
}

// NewTraineeQuery formats the raw roster fields into a query. A mentor
// cell containing a comma is treated as "Last, First" and formatted like
// the trainee name; any other non-empty cell is used verbatim; an empty or
// missing cell drops the mentor term rather than failing the row. The
// location cell is optional the same way.
func NewTraineeQuery(last, first, mentor, location string, useInitial bool) TraineeQuery {
	q := TraineeQuery{Trainee: names.FormatDisplay(last, first, useInitial)}

	mentor = strings.TrimSpace(mentor)
	if mentor != "" {
		if i := strings.Index(mentor, ","); i >= 0 {
			q.Mentor = names.FormatDisplay(mentor[:i], mentor[i+1:], useInitial)
		} else {
			q.Mentor = mentor
		}
	}

	location = strings.TrimSpace(location)
	if location != "" && !strings.EqualFold(location, "nan") {
		q.Location = location
	}
	return q
}

// SearchTerm builds the Entrez query string: author-field terms for the
// trainee and mentor, an affiliation-field term for the location.
func (q TraineeQuery) SearchTerm() string {
	term := q.Trainee + authorTag
	if q.Mentor != "" {
		term += q.Mentor + authorTag
	}
	if q.Location != "" {
		term += q.Location + affiliationTag
	}
	return term
}
