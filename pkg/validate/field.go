// Package validate applies per-field rules to canonical payroll records and
// aggregates the outcomes into a serializable, field-level validation report.
package validate

import (
	"strconv"
	"strings"
)

// ParseNumeric validates and normalizes a raw numeric field. It strips the
// currency symbol, thousands separators, and surrounding whitespace.
//
// An empty value normalizes to 0 and is valid. A non-empty value that fails
// to parse is invalid and normalizes to 0. A parsed negative value is invalid
// but keeps its parsed value: invalidity is signaled by the flag, never by
// clamping. The function is pure and reusable across fields.
func ParseNumeric(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if v < 0 {
		return v, false
	}
	return v, true
}

// ExactMatch describes the verified value behind a valid field. Only the
// fields relevant to the validated field are populated.
type ExactMatch struct {
	EmployeeID string `json:"employee_id,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	NetCode    string `json:"net_code,omitempty"`
	TypeCode   string `json:"type_code,omitempty"`
	DeptCode   string `json:"dept_code,omitempty"`
}

// CandidateMatch is one plausible directory candidate for an ambiguous
// identity field.
type CandidateMatch struct {
	EmployeeID     string `json:"employee_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	HomeDepartment string `json:"home_department"`
}

// FieldValidation is the per-field verdict. ExactMatch is null when the
// field has no verified value; PossibleMatches is always present, ordered,
// and empty unless the identity resolution was ambiguous.
type FieldValidation struct {
	Valid           bool             `json:"valid"`
	ExactMatch      *ExactMatch      `json:"exact_match"`
	PossibleMatches []CandidateMatch `json:"possible_matches"`
}

// newFieldValidation returns a verdict with an empty, non-nil candidate list
// so the serialized form always carries an array.
func newFieldValidation(valid bool) FieldValidation {
	return FieldValidation{Valid: valid, PossibleMatches: []CandidateMatch{}}
}

// echoField builds an always-valid verdict that simply echoes a value as its
// exact match when present. These entries exist for schema symmetry and
// future rule growth, not enforcement.
func echoField(match *ExactMatch) FieldValidation {
	fv := newFieldValidation(true)
	fv.ExactMatch = match
	return fv
}
