package directory

import (
	"strings"

	"github.com/agentstation/paybridge/pkg/payroll"
)

// MatchKind classifies the outcome of identity resolution.
type MatchKind int

const (
	// MatchExact means a unique, verified match (or a vacuous one when the
	// directory is empty and validation cannot block).
	MatchExact MatchKind = iota
	// MatchAmbiguous means one or more plausible candidates were found by
	// name but no verified unique key match. Even a single name candidate is
	// reported as ambiguous because the identity key was absent or unverified.
	MatchAmbiguous
	// MatchNoMatch means no entity matched by key or name.
	MatchNoMatch
)

// String returns a human-readable name for the match kind.
func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchAmbiguous:
		return "ambiguous"
	case MatchNoMatch:
		return "no_match"
	default:
		return "unknown"
	}
}

// MatchOutcome is the immutable result of resolving one record's identity.
type MatchOutcome struct {
	Kind MatchKind
	// Entity is set for key-verified exact matches. A vacuous exact match
	// (empty directory) carries no entity.
	Entity *Employee
	// Candidates holds ambiguous matches in directory order, so repeated
	// runs over the same directory produce identical output.
	Candidates []Employee
}

// Match resolves a record's implied identity against the directory.
//
// An empty directory yields a vacuous exact match: with nothing to validate
// against, validation must not block the run. A non-empty identity key is
// compared, trimmed, against each employee's keys; a unique hit is exact.
// When the key is absent or unmatched, name equality (case-insensitive,
// exact token) selects candidates: none is a no-match, one or more are
// ambiguous.
func Match(record payroll.Record, employees []Employee) MatchOutcome {
	if len(employees) == 0 {
		return MatchOutcome{Kind: MatchExact}
	}

	if key := strings.TrimSpace(record.EmployeeID); key != "" {
		var hits []Employee
		for _, e := range employees {
			if e.HasKey(key) {
				hits = append(hits, e)
			}
		}
		switch {
		case len(hits) == 1:
			entity := hits[0]
			return MatchOutcome{Kind: MatchExact, Entity: &entity}
		case len(hits) > 1:
			// Identity keys should be unique; duplicate keys are reported
			// as ambiguous rather than silently picking one.
			return MatchOutcome{Kind: MatchAmbiguous, Candidates: hits}
		}
		// No key hit: fall through to name matching.
	}

	var candidates []Employee
	for _, e := range employees {
		if e.NameEquals(record.FirstName, record.LastName) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return MatchOutcome{Kind: MatchNoMatch}
	}
	return MatchOutcome{Kind: MatchAmbiguous, Candidates: candidates}
}
