// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package names canonicalizes human names for comparison. Roster
// spreadsheets rarely carry proper accent marks while PubMed records often
// do, so every comparison runs on a flattened form: accents stripped,
// lowercased, punctuation and spacing removed.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops combining marks, turning
// "Montréal" into "Montreal" before the ASCII filter runs.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Canonicalize returns the comparison form of a name: trimmed, accents
// stripped, lowercased, reduced to ASCII letters and digits. It is total
// and idempotent; unflattenable input degrades to the un-stripped text
// rather than failing.
func Canonicalize(name string) string {
	s, _, err := transform.String(stripMarks, strings.TrimSpace(name))
	if err != nil {
		s = strings.TrimSpace(name)
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatDisplay builds the "Last F" (or bare "Last") form used for search
// terms and as a trainee's comparison identity. Matching never runs on
// this form directly; it always goes through Canonicalize.
func FormatDisplay(last, first string, useInitial bool) string {
	last = strings.TrimSpace(last)
	if !useInitial {
		return last
	}
	first = strings.TrimSpace(first)
	if first == "" {
		return last
	}
	return last + " " + string([]rune(first)[:1])
}

// Equal reports whether two names denote the same identity, i.e. their
// canonical forms are equal.
func Equal(a, b string) bool {
	return Canonicalize(a) == Canonicalize(b)
}
