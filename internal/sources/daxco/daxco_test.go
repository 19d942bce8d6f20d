package daxco

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/paybridge/pkg/directory"
	"github.com/agentstation/paybridge/pkg/errors"
	"github.com/agentstation/paybridge/pkg/logging"
	"github.com/agentstation/paybridge/pkg/payroll"
)

const sampleExport = `Payroll Summary,,,,,,,
"Department:",Aquatics,,,,,,
Pay Period,06/01 - 06/14,,,,,,
Staff First Name,Staff Last Name,Adjustments,Time Clock Hours,Scheduled Hours,Scheduled Payroll,Total Hours,Details
jane,doe,,3,5,,8,swim lessons
john,smith,$10.00,,,"$1,200.00",40,
`

func testContext(t *testing.T) context.Context {
	t.Helper()
	return logging.NewTestLogger(t).WithContext(context.Background())
}

func TestDepartmentDetection(t *testing.T) {
	dept, ok := Department([]byte(sampleExport))
	require.True(t, ok)
	assert.Equal(t, "Aquatics", dept)
}

func TestDepartmentIsOptional(t *testing.T) {
	data := []byte("Staff First Name,Staff Last Name\njane,doe\n")
	dept, ok := Department(data)
	assert.False(t, ok)
	assert.Empty(t, dept)
}

func TestDepartmentToleratesColonAndQuotes(t *testing.T) {
	dept, ok := Department([]byte(`"Departmant:","Front Desk"` + "\n"))
	require.True(t, ok)
	assert.Equal(t, "Front Desk", dept)
}

func TestHeaderIndex(t *testing.T) {
	idx, err := HeaderIndex([]byte(sampleExport))
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
}

func TestHeaderIndexPicksLastMatch(t *testing.T) {
	// Preamble blocks may repeat the header labels before the real header.
	data := []byte(`Report Legend,,
Staff First Name,the name shown on the schedule
,,
Staff First Name,Staff Last Name,Scheduled Payroll
jane,doe,100
`)
	idx, err := HeaderIndex(data)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
}

func TestHeaderIndexNotFound(t *testing.T) {
	_, err := HeaderIndex([]byte("Totals,,\n1,2,3\n"))
	require.Error(t, err)
	assert.True(t, errors.IsHeaderNotFound(err))
	assert.True(t, errors.IsSourceError(err))
}

func TestTransformDefaults(t *testing.T) {
	records, err := Transform(testContext(t), []byte(sampleExport), nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	jane := records[0]
	assert.Equal(t, "Jane", jane.FirstName)
	assert.Equal(t, "Doe", jane.LastName)
	assert.Empty(t, jane.EmployeeID)
	assert.Equal(t, payroll.NetCodeEarnings, jane.NetCode)
	assert.Equal(t, payroll.DefaultTypeCode, jane.TypeCode)
	assert.Equal(t, "Aquatics", jane.DeptCode)
	assert.Equal(t, "swim lessons", jane.Details)
}

func TestTransformAmountPrecedence(t *testing.T) {
	// scheduled payroll empty, scheduled hours 5, time clock hours 3 -> 5
	records, err := Transform(testContext(t), []byte(sampleExport), nil)
	require.NoError(t, err)

	assert.Equal(t, "5", records[0].Amount)
	assert.Equal(t, "$1,200.00", records[1].Amount)
}

func TestTransformAmountSkipsZero(t *testing.T) {
	data := []byte("Staff First Name,Staff Last Name,Time Clock Hours,Scheduled Hours,Scheduled Payroll\njane,doe,3,0.00,$0\n")
	records, err := Transform(testContext(t), data, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "3", records[0].Amount)
}

func TestTransformAmountDefaultsToZero(t *testing.T) {
	data := []byte("Staff First Name,Staff Last Name,Scheduled Payroll\njane,doe,\n")
	records, err := Transform(testContext(t), data, nil)
	require.NoError(t, err)
	assert.Equal(t, "0", records[0].Amount)
}

func TestTransformDirectoryEnrichment(t *testing.T) {
	employees := []directory.Employee{
		{
			ID:             "E100",
			FirstName:      "Jane",
			LastName:       "Doe",
			HomeDepartment: "200",
			NetCode:        payroll.NetCodeEmployeeDeduction,
			TypeCode:       "401K",
			TemporaryRate:  "12.50",
		},
	}

	data := []byte("Staff First Name,Staff Last Name,Scheduled Payroll\nJANE,DOE,50\n")
	records, err := Transform(testContext(t), data, employees)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "E100", got.EmployeeID)
	assert.Equal(t, payroll.NetCodeEmployeeDeduction, got.NetCode)
	assert.Equal(t, "401K", got.TypeCode)
	assert.Equal(t, "12.50", got.TemporaryRate)
	assert.Equal(t, "200", got.DeptCode, "home department fills a missing document department")
}

func TestTransformDuplicateNamesSkipEnrichment(t *testing.T) {
	employees := []directory.Employee{
		{ID: "E1", FirstName: "Jane", LastName: "Doe"},
		{ID: "E2", FirstName: "Jane", LastName: "Doe"},
	}

	data := []byte("Staff First Name,Staff Last Name,Scheduled Payroll\njane,doe,50\n")
	records, err := Transform(testContext(t), data, employees)
	require.NoError(t, err)

	assert.Empty(t, records[0].EmployeeID, "ambiguous names must stay unresolved for validation to report")
	assert.Equal(t, payroll.NetCodeEarnings, records[0].NetCode)
}

func TestTransformDepartmentSentinel(t *testing.T) {
	data := []byte("Staff First Name,Staff Last Name,Scheduled Payroll\njane,doe,50\n")
	records, err := Transform(testContext(t), data, nil)
	require.NoError(t, err)
	assert.Equal(t, payroll.DefaultDeptCode, records[0].DeptCode)
}

func TestTransformHeaderNotFound(t *testing.T) {
	_, err := Transform(testContext(t), []byte("no,header,here\n"), nil)
	require.Error(t, err)
	assert.True(t, errors.IsHeaderNotFound(err))
}
