package mssql

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/agentstation/paybridge/pkg/constants"
	"github.com/agentstation/paybridge/pkg/directory"
	"github.com/agentstation/paybridge/pkg/errors"
	"github.com/agentstation/paybridge/pkg/logging"
	"github.com/agentstation/paybridge/pkg/payroll"
)

// FetchEmployees loads the employee directory for a company.
//
// Each attempt pings and queries within a bounded timeout; attempts are
// separated by a fixed delay. After the retry budget is spent the failure is
// reported as a DependencyError so the caller can surface a retryable
// outcome rather than a client error.
func (c *Client) FetchEmployees(ctx context.Context, companyID int) ([]directory.Employee, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("connection", c.cfg.Masked()).
		Int("company_id", companyID).
		Msg("Fetching employee directory")

	var lastErr error
	for attempt := 1; attempt <= constants.DirectoryMaxRetries; attempt++ {
		employees, err := c.fetchOnce(ctx, companyID)
		if err == nil {
			log.Info().
				Int("company_id", companyID).
				Int("employees", len(employees)).
				Int("attempt", attempt).
				Msg("Fetched employee directory")
			return employees, nil
		}
		lastErr = err
		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_retries", constants.DirectoryMaxRetries).
			Msg("Directory fetch attempt failed")

		if attempt == constants.DirectoryMaxRetries {
			break
		}
		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return nil, errors.NewTimeoutError("fetch_employees", "", "gave up waiting between retries")
			}
			return nil, fmt.Errorf("%w: directory fetch", errors.ErrCanceled)
		case <-time.After(constants.DirectoryRetryDelay):
		}
	}

	return nil, errors.NewDependencyError("hrpremier", constants.DirectoryMaxRetries, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, companyID int) ([]directory.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DirectoryQueryTimeout)
	defer cancel()

	if err := c.db.PingContext(ctx); err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, fetchEmployeesQuery, sql.Named("p1", companyID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []directory.Employee
	for rows.Next() {
		var (
			id       string
			ssn      sql.NullString
			clock    sql.NullString
			first    sql.NullString
			last     sql.NullString
			netCode  sql.NullInt64
			typeCode sql.NullString
			tempRate sql.NullFloat64
			homeDept sql.NullString
		)
		if err := rows.Scan(&id, &ssn, &clock, &first, &last, &netCode, &typeCode, &tempRate, &homeDept); err != nil {
			return nil, err
		}

		employee := directory.Employee{
			ID:             id,
			SSN:            ssn.String,
			ClockNumber:    clock.String,
			FirstName:      first.String,
			LastName:       last.String,
			TypeCode:       typeCode.String,
			HomeDepartment: homeDept.String,
		}
		if netCode.Valid {
			employee.NetCode = payroll.NetCode(netCode.Int64)
		}
		if tempRate.Valid {
			employee.TemporaryRate = strconv.FormatFloat(tempRate.Float64, 'f', -1, 64)
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}
