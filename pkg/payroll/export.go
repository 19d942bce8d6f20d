package payroll

import (
	"encoding/csv"
	"io"

	"github.com/agentstation/paybridge/pkg/errors"
)

// ExportColumns is the order-significant column list for downstream tabular
// export of canonical records.
var ExportColumns = []string{
	"employee_id",
	"gross_to_net_code",
	"type_code",
	"hours_or_amount",
	"temporary_rate",
	"distributed_dept_code",
}

// exportRow returns the record's export fields in ExportColumns order.
func (r Record) exportRow() []string {
	return []string{
		r.EmployeeID,
		r.NetCode.String(),
		r.TypeCode,
		r.Amount,
		r.TemporaryRate,
		r.DeptCode,
	}
}

// WriteCSV writes records as CSV in the canonical export column order,
// header row included.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportColumns); err != nil {
		return errors.WrapIO("write", "csv header", err)
	}
	for _, r := range records {
		if err := cw.Write(r.exportRow()); err != nil {
			return errors.WrapIO("write", "csv row", err)
		}
	}
	cw.Flush()
	return errors.WrapIO("flush", "csv", cw.Error())
}
