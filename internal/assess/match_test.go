// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assess

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pdiddy/pubmetric/internal/names"
	"github.com/pdiddy/pubmetric/pkg/types"
)

func TestIsReview(t *testing.T) {
	tests := []struct {
		name     string
		pubTypes []string
		want     bool
	}{
		{"journal article", []string{"Journal Article"}, false},
		{"review", []string{"Journal Article", "Review"}, true},
		{"review alone", []string{"Review"}, true},
		{"systematic review tag is not Review", []string{"Systematic Review"}, false},
		{"no tags", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := types.PublicationSummary{PubTypes: tt.pubTypes}
			if got := IsReview(s); got != tt.want {
				t.Errorf("IsReview(%v) = %v, want %v", tt.pubTypes, got, tt.want)
			}
		})
	}
}

func TestSummaryIsFirstAuthor(t *testing.T) {
	tests := []struct {
		name    string
		trainee string
		authors []types.SummaryAuthor
		want    bool
	}{
		{
			name:    "exact match",
			trainee: "Huxlin K",
			authors: []types.SummaryAuthor{{Name: "Huxlin K"}},
			want:    true,
		},
		{
			name:    "truncation discards extra initial",
			trainee: "Huxlin K",
			authors: []types.SummaryAuthor{{Name: "Huxlin KR"}},
			want:    true,
		},
		{
			name:    "accented summary name",
			trainee: "Saint-Exupery A",
			authors: []types.SummaryAuthor{{Name: "Saint-Exupéry AM"}},
			want:    true,
		},
		{
			name:    "different first author",
			trainee: "Huxlin K",
			authors: []types.SummaryAuthor{{Name: "Cavanaugh MR"}, {Name: "Huxlin KR"}},
			want:    false,
		},
		{
			name:    "trainee name longer than author name",
			trainee: "Cavanaugh M",
			authors: []types.SummaryAuthor{{Name: "Cava"}},
			want:    false,
		},
		{
			name:    "no authors",
			trainee: "Huxlin K",
			authors: nil,
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := types.PublicationSummary{Authors: tt.authors}
			if got := SummaryIsFirstAuthor(tt.trainee, s); got != tt.want {
				t.Errorf("SummaryIsFirstAuthor(%q, %v) = %v, want %v", tt.trainee, tt.authors, got, tt.want)
			}
		})
	}
}

func TestFullRecordIsFirstAuthor(t *testing.T) {
	trainee := names.Canonicalize("Huxlin K")

	tests := []struct {
		name    string
		authors []types.FullAuthor
		want    bool
	}{
		{
			name: "listed first",
			authors: []types.FullAuthor{
				{LastName: "Huxlin", ForeName: "Krystel R"},
				{LastName: "Cavanaugh", ForeName: "Matthew R"},
			},
			want: true,
		},
		{
			name: "later with equal-contribution marker",
			authors: []types.FullAuthor{
				{LastName: "Cavanaugh", ForeName: "Matthew R"},
				{LastName: "Huxlin", ForeName: "Krystel R", EqualContrib: true},
			},
			want: true,
		},
		{
			name: "later without marker",
			authors: []types.FullAuthor{
				{LastName: "Cavanaugh", ForeName: "Matthew R"},
				{LastName: "Huxlin", ForeName: "Krystel R"},
			},
			want: false,
		},
		{
			name: "no matching author",
			authors: []types.FullAuthor{
				{LastName: "Cavanaugh", ForeName: "Matthew R"},
			},
			want: false,
		},
		{
			name: "ambiguous match never guesses",
			authors: []types.FullAuthor{
				{LastName: "Huxlin", ForeName: "Krystel R"},
				{LastName: "Huxlin", ForeName: "Jordan"},
			},
			want: false,
		},
		{
			name: "entries without last name are ignored",
			authors: []types.FullAuthor{
				{ForeName: "Vision Restoration Consortium"},
				{LastName: "Huxlin", ForeName: "Krystel R"},
			},
			want: true,
		},
		{
			name:    "empty author list",
			authors: nil,
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := types.PublicationRecord{PMID: "1", Authors: tt.authors}
			if got := FullRecordIsFirstAuthor(trainee, rec, io.Discard); got != tt.want {
				t.Errorf("FullRecordIsFirstAuthor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFullRecordIsFirstAuthorDiagnostics(t *testing.T) {
	trainee := names.Canonicalize("Huxlin K")

	var diag bytes.Buffer
	rec := types.PublicationRecord{
		PMID: "38012345",
		Authors: []types.FullAuthor{
			{LastName: "Huxlin"},
			{LastName: "Huxlin"},
		},
	}
	if FullRecordIsFirstAuthor(trainee, rec, &diag) {
		t.Error("ambiguous record reported first-authorship")
	}
	if !strings.Contains(diag.String(), "found 2 matching author names") {
		t.Errorf("diagnostic = %q, want count of 2", diag.String())
	}

	diag.Reset()
	if FullRecordIsFirstAuthor(trainee, types.PublicationRecord{PMID: "9"}, &diag) {
		t.Error("empty record reported first-authorship")
	}
	if !strings.Contains(diag.String(), "found 0 matching author names") {
		t.Errorf("diagnostic = %q, want count of 0", diag.String())
	}
}
