package daxco

import (
	"context"
	"encoding/csv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/paybridge/pkg/directory"
	"github.com/agentstation/paybridge/pkg/errors"
	"github.com/agentstation/paybridge/pkg/logging"
	"github.com/agentstation/paybridge/pkg/payroll"
	"github.com/agentstation/paybridge/pkg/validate"
)

// Column labels of the Daxco export header row, matched as literal strings.
const (
	colFirstName        = "Staff First Name"
	colLastName         = "Staff Last Name"
	colAdjustments      = "Adjustments"
	colTimeClockHours   = "Time Clock Hours"
	colScheduledHours   = "Scheduled Hours"
	colScheduledPayroll = "Scheduled Payroll"
	colTotalHours       = "Total Hours"
	colDetails          = "Details"
)

// Transform parses a Daxco payroll export and produces one canonical record
// per data row beneath the located header.
//
// When the directory holds a uniquely named employee for a row, that entry
// supplies the identity key, pay classification, and home-department
// fallback. Without one the row degrades to the regular-earnings defaults
// and identity resolution is deferred to validation.
func Transform(ctx context.Context, data []byte, employees []directory.Employee) ([]payroll.Record, error) {
	log := logging.FromContext(ctx)

	department, found := Department(data)
	if found {
		log.Debug().Str("department", department).Msg("Detected document-level department")
	}

	headerIdx, err := HeaderIndex(data)
	if err != nil {
		return nil, err
	}

	lines := splitLines(string(data))
	reader := csv.NewReader(strings.NewReader(strings.Join(lines[headerIdx:], "\n")))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rawRecords, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewSourceError("daxco", "malformed csv", err)
	}

	table := payroll.NewTable(rawRecords)
	titler := cases.Title(language.English)

	records := make([]payroll.Record, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		records = append(records, transformRow(table.Row(i), department, employees, titler))
	}

	log.Info().
		Int("header_line", headerIdx).
		Int("rows", len(records)).
		Int("employees", len(employees)).
		Msg("Transformed payroll export")
	return records, nil
}

func transformRow(row payroll.RawRow, department string, employees []directory.Employee, titler cases.Caser) payroll.Record {
	first, _ := row.Field(colFirstName)
	last, _ := row.Field(colLastName)
	adjustments, _ := row.Field(colAdjustments)
	timeClockHours, _ := row.Field(colTimeClockHours)
	scheduledHours, _ := row.Field(colScheduledHours)
	scheduledPayroll, _ := row.Field(colScheduledPayroll)
	totalHours, _ := row.Field(colTotalHours)
	details, _ := row.Field(colDetails)

	record := payroll.Record{
		NetCode:          payroll.NetCodeEarnings,
		TypeCode:         payroll.DefaultTypeCode,
		Amount:           selectAmount(scheduledPayroll, scheduledHours, timeClockHours),
		DeptCode:         department,
		FirstName:        titler.String(first),
		LastName:         titler.String(last),
		Department:       department,
		Adjustments:      adjustments,
		TimeClockHours:   timeClockHours,
		ScheduledHours:   scheduledHours,
		ScheduledPayroll: scheduledPayroll,
		TotalHours:       totalHours,
		Details:          details,
	}

	if employee, ok := uniqueNameMatch(first, last, employees); ok {
		record = record.WithEmployeeID(employee.ID)
		if employee.NetCode != payroll.NetCodeUnset {
			record = record.WithNetCode(employee.NetCode)
		}
		if employee.TypeCode != "" {
			record = record.WithTypeCode(employee.TypeCode)
		}
		if employee.TemporaryRate != "" {
			record = record.WithTemporaryRate(employee.TemporaryRate)
		}
		if record.DeptCode == "" {
			record = record.WithDeptCode(employee.HomeDepartment)
		}
	}

	if record.DeptCode == "" {
		record = record.WithDeptCode(payroll.DefaultDeptCode)
	}
	return record
}

// selectAmount picks the first non-empty, non-zero value in precedence order:
// scheduled payroll, scheduled hours, time clock hours, else literal zero.
// Unparseable values are passed through for the numeric validator to flag.
func selectAmount(scheduledPayroll, scheduledHours, timeClockHours string) string {
	for _, v := range []string{scheduledPayroll, scheduledHours, timeClockHours} {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if n, ok := validate.ParseNumeric(v); ok && n == 0 {
			continue
		}
		return v
	}
	return "0"
}

// uniqueNameMatch returns the single directory employee whose name equals the
// row's, if exactly one exists. Duplicate names disqualify enrichment: the
// identity stays unresolved and validation reports the candidates.
func uniqueNameMatch(first, last string, employees []directory.Employee) (directory.Employee, bool) {
	var match directory.Employee
	count := 0
	for _, e := range employees {
		if e.NameEquals(first, last) {
			match = e
			count++
		}
	}
	return match, count == 1
}
