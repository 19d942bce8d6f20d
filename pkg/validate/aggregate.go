package validate

import (
	"context"

	"github.com/agentstation/paybridge/pkg/directory"
	"github.com/agentstation/paybridge/pkg/logging"
	"github.com/agentstation/paybridge/pkg/payroll"
)

// RowValidation is the structured verdict for one canonical record. JSON
// keys use the downstream display names so the report is self-describing.
type RowValidation struct {
	Employee            FieldValidation `json:"Employee"`
	GrossToNetCode      FieldValidation `json:"Gross to Net Code"`
	TypeCode            FieldValidation `json:"Type Code"`
	HoursOrAmount       float64         `json:"Hours or Amount"`
	TemporaryRate       string          `json:"Temporary Rate"`
	DistributedDeptCode FieldValidation `json:"Distributed Dept Code"`

	// AmountValid records the numeric verdict for the hours-or-amount field.
	// It feeds the aggregate all_valid flag alongside the identity verdict.
	AmountValid bool `json:"-"`
}

// Result is the full validation report for one run.
type Result struct {
	AllValid bool            `json:"all_valid"`
	Rows     []RowValidation `json:"rows"`
}

// Records validates every canonical record against the employee directory
// and aggregates the outcomes. AllValid is true iff every row's identity and
// amount verdicts are both valid; the always-valid echo fields are excluded
// from the aggregate by design.
func Records(ctx context.Context, records []payroll.Record, employees []directory.Employee) Result {
	log := logging.FromContext(ctx)
	log.Info().
		Int("rows", len(records)).
		Int("employees", len(employees)).
		Msg("Validating transformation")

	result := Result{AllValid: true, Rows: make([]RowValidation, 0, len(records))}
	for i, rec := range records {
		row := validateRow(rec, employees)
		if !row.Employee.Valid || !row.AmountValid {
			log.Warn().
				Int("row", i).
				Bool("employee_valid", row.Employee.Valid).
				Bool("amount_valid", row.AmountValid).
				Msg("Row failed validation")
			result.AllValid = false
		}
		result.Rows = append(result.Rows, row)
	}

	log.Info().Bool("all_valid", result.AllValid).Msg("Validation complete")
	return result
}

// validateRow builds the per-field verdicts for one record.
func validateRow(rec payroll.Record, employees []directory.Employee) RowValidation {
	outcome := directory.Match(rec, employees)

	employee := newFieldValidation(outcome.Kind == directory.MatchExact)
	switch outcome.Kind {
	case directory.MatchExact:
		if outcome.Entity != nil {
			employee.ExactMatch = &ExactMatch{
				EmployeeID: outcome.Entity.ID,
				FirstName:  outcome.Entity.FirstName,
				LastName:   outcome.Entity.LastName,
			}
		}
	case directory.MatchAmbiguous:
		for _, c := range outcome.Candidates {
			employee.PossibleMatches = append(employee.PossibleMatches, CandidateMatch{
				EmployeeID:     c.ID,
				FirstName:      c.FirstName,
				LastName:       c.LastName,
				HomeDepartment: c.HomeDepartment,
			})
		}
	case directory.MatchNoMatch:
		// Invalid with no candidates to offer.
	}

	amount, amountValid := ParseNumeric(rec.Amount)

	var netCode *ExactMatch
	if rec.NetCode != payroll.NetCodeUnset {
		netCode = &ExactMatch{NetCode: rec.NetCode.String()}
	}
	var typeCode *ExactMatch
	if rec.TypeCode != "" {
		typeCode = &ExactMatch{TypeCode: rec.TypeCode}
	}
	var deptCode *ExactMatch
	if rec.DeptCode != "" {
		deptCode = &ExactMatch{DeptCode: rec.DeptCode}
	}

	return RowValidation{
		Employee:            employee,
		GrossToNetCode:      echoField(netCode),
		TypeCode:            echoField(typeCode),
		HoursOrAmount:       amount,
		TemporaryRate:       rec.TemporaryRate,
		DistributedDeptCode: echoField(deptCode),
		AmountValid:         amountValid,
	}
}
