// Package fuzzy provides approximate string matching for locating labeled
// fields inside loosely structured export files. Matching uses a normalized
// Levenshtein ratio so that minor punctuation and casing differences are
// tolerated while unrelated short tokens are rejected.
package fuzzy

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// DefaultCutoff is the minimum similarity ratio for two strings to be
// considered a match. Header and department detection share this single
// threshold so both are tunable in one place.
const DefaultCutoff = 0.7

// Ratio returns the normalized similarity between a and b in [0, 1].
// Both inputs are lowercased and trimmed before comparison. Two empty
// strings are identical.
func Ratio(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1.0
	}
	// ComputeDistance counts runes, so the denominator must too
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}

// Match reports whether candidate is approximately equal to target at the
// default cutoff.
func Match(candidate, target string) bool {
	return MatchWithCutoff(candidate, target, DefaultCutoff)
}

// MatchWithCutoff reports whether candidate is approximately equal to target
// at the given similarity cutoff.
func MatchWithCutoff(candidate, target string, cutoff float64) bool {
	return Ratio(candidate, target) >= cutoff
}
