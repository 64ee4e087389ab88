// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assess

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pubmetric/internal/names"
	"github.com/pdiddy/pubmetric/pkg/types"
)

// IsReview reports whether a summary record is a review article. Exactly
// two classes exist: anything not tagged "Review" counts as a research
// paper, conference abstracts included.
func IsReview(s types.PublicationSummary) bool {
	for _, pt := range s.PubTypes {
		if pt == "Review" {
			return true
		}
	}
	return false
}

// SummaryIsFirstAuthor checks first-authorship against the compact summary
// record: the first listed author's display name, truncated to the raw
// rune length of the trainee name, must canonicalize to the same string as
// the trainee. The truncation approximately discards extra tokens (middle
// initials, suffixes) that summary names carry. The length is counted on
// the un-canonicalized trainee string; that quirk is tuned against real
// summary data, keep it.
func SummaryIsFirstAuthor(trainee string, s types.PublicationSummary) bool {
	if len(s.Authors) == 0 {
		return false
	}
	first := []rune(s.Authors[0].Name)
	n := len([]rune(trainee))
	if n > len(first) {
		n = len(first)
	}
	return names.Canonicalize(string(first[:n])) == names.Canonicalize(trainee)
}

// FullRecordIsFirstAuthor checks first-authorship against the full
// bibliographic record. Author entries without a last name (collective
// names) are ignored. A candidate is any remaining author whose
// canonicalized last name is a substring of the trainee's canonicalized
// full name; the substring test tolerates extra-name noise. Unless exactly
// one candidate emerges the paper is unscorable: a diagnostic goes to diag
// and the answer is false, never a guess. The single candidate is a first
// author when listed first or when carrying the equal-contribution marker.
func FullRecordIsFirstAuthor(traineeCanonical string, rec types.PublicationRecord, diag io.Writer) bool {
	var qualified []types.FullAuthor
	for _, a := range rec.Authors {
		if a.LastName != "" {
			qualified = append(qualified, a)
		}
	}

	var matched []int
	for i, a := range qualified {
		if strings.Contains(traineeCanonical, names.Canonicalize(a.LastName)) {
			matched = append(matched, i)
		}
	}

	if len(matched) != 1 {
		fmt.Fprintf(diag, "pmid %s: found %d matching author names\n", rec.PMID, len(matched))
		return false
	}

	return matched[0] == 0 || qualified[matched[0]].EqualContrib
}
