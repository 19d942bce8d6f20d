// Package payroll defines the canonical payroll record produced by source
// transformers and consumed by validation. A Record is a value type: mutation
// happens through With methods that return modified copies, never in place.
package payroll

// DefaultTypeCode is the regular-earnings type code applied when no richer
// classification is available from the employee directory.
const DefaultTypeCode = "REG"

// DefaultDeptCode is the sentinel department used when neither the source
// file nor the directory supplies one.
const DefaultDeptCode = "4287"

// Record is the canonical transformation target for one source row.
//
// EmployeeID, NetCode, TypeCode, Amount, TemporaryRate, and DeptCode are the
// export fields; the remaining fields carry source provenance for
// auditability and validation. Amount holds the raw source value until the
// numeric validator normalizes it.
type Record struct {
	EmployeeID    string  `json:"employee_id"`
	NetCode       NetCode `json:"gross_to_net_code"`
	TypeCode      string  `json:"type_code"`
	Amount        string  `json:"hours_or_amount"`
	TemporaryRate string  `json:"temporary_rate"`
	DeptCode      string  `json:"distributed_dept_code"`

	// Provenance carried through from the source file.
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	Department       string `json:"department,omitempty"`
	Adjustments      string `json:"adjustments,omitempty"`
	TimeClockHours   string `json:"time_clock_hours,omitempty"`
	ScheduledHours   string `json:"scheduled_hours,omitempty"`
	ScheduledPayroll string `json:"scheduled_payroll,omitempty"`
	TotalHours       string `json:"total_hours,omitempty"`
	Details          string `json:"details,omitempty"`
}

// WithEmployeeID returns a copy of the record with the identity key set.
func (r Record) WithEmployeeID(id string) Record {
	r.EmployeeID = id
	return r
}

// WithNetCode returns a copy of the record with the gross-to-net code set.
func (r Record) WithNetCode(code NetCode) Record {
	r.NetCode = code
	return r
}

// WithTypeCode returns a copy of the record with the type code set.
func (r Record) WithTypeCode(code string) Record {
	r.TypeCode = code
	return r
}

// WithAmount returns a copy of the record with the hours-or-amount value set.
func (r Record) WithAmount(amount string) Record {
	r.Amount = amount
	return r
}

// WithTemporaryRate returns a copy of the record with the temporary rate set.
func (r Record) WithTemporaryRate(rate string) Record {
	r.TemporaryRate = rate
	return r
}

// WithDeptCode returns a copy of the record with the distributed department set.
func (r Record) WithDeptCode(code string) Record {
	r.DeptCode = code
	return r
}
