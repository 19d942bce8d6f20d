// Package directory models the external employee directory and resolves the
// identity implied by a canonical payroll record against it.
package directory

import (
	"strings"

	"github.com/agentstation/paybridge/pkg/payroll"
)

// Employee is one immutable entry in the employee directory. The core only
// reads entries; ownership stays with the fetch collaborator.
type Employee struct {
	// ID is the stable employee code used as the primary identity key.
	ID string `json:"employee_id"`
	// SSN and ClockNumber are alternate identity keys accepted on file rows.
	SSN         string `json:"ssn,omitempty"`
	ClockNumber string `json:"clock_number,omitempty"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// HomeDepartment is the fallback distributed department code.
	HomeDepartment string `json:"home_department,omitempty"`

	// Pay and deduction classification sourced from directory pay data.
	// Zero values mean the directory carries no codes for this employee.
	NetCode       payroll.NetCode `json:"gross_to_net_code,omitempty"`
	TypeCode      string          `json:"type_code,omitempty"`
	TemporaryRate string          `json:"temporary_rate,omitempty"`
}

// Keys returns the employee's non-empty identity keys: the employee code,
// SSN, and clock number.
func (e Employee) Keys() []string {
	keys := make([]string, 0, 3)
	for _, k := range []string{e.ID, e.SSN, e.ClockNumber} {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// HasKey reports whether key equals any of the employee's identity keys.
func (e Employee) HasKey(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	for _, k := range e.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// NameEquals reports whether the employee's first and last name both equal
// the given names, case-insensitively after trimming.
func (e Employee) NameEquals(first, last string) bool {
	return normalizeName(e.FirstName) == normalizeName(first) &&
		normalizeName(e.LastName) == normalizeName(last)
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
