// Package integrations binds pipeline stage identifiers to their concrete
// implementations. The binding is the compile-time-checked half of the stage
// configuration: identifiers come from YAML, functions live here.
package integrations

import (
	"context"
	"fmt"

	"github.com/agentstation/paybridge/internal/sources/daxco"
	"github.com/agentstation/paybridge/pkg/directory"
	"github.com/agentstation/paybridge/pkg/errors"
	"github.com/agentstation/paybridge/pkg/payroll"
	"github.com/agentstation/paybridge/pkg/pipeline"
	"github.com/agentstation/paybridge/pkg/validate"
)

// DirectoryFetcher loads the employee directory for a company. Satisfied by
// the mssql client; tests substitute a fake.
type DirectoryFetcher interface {
	FetchEmployees(ctx context.Context, companyID int) ([]directory.Employee, error)
}

// NewRegistry builds the stage function registry over a directory fetcher.
func NewRegistry(fetcher DirectoryFetcher) *pipeline.Registry {
	r := pipeline.NewRegistry()

	r.Register(pipeline.FuncFetchEmployees, func(ctx context.Context, args []any) (any, error) {
		companyID, err := argAs[int](pipeline.FuncFetchEmployees, args, 0)
		if err != nil {
			return nil, err
		}
		return fetcher.FetchEmployees(ctx, companyID)
	})

	r.Register(pipeline.FuncDaxcoTransform, func(ctx context.Context, args []any) (any, error) {
		data, err := argAs[[]byte](pipeline.FuncDaxcoTransform, args, 0)
		if err != nil {
			return nil, err
		}
		// The employee directory input is optional: without it the
		// transformer degrades to the regular-earnings defaults.
		var employees []directory.Employee
		if len(args) > 1 {
			if employees, err = argAs[[]directory.Employee](pipeline.FuncDaxcoTransform, args, 1); err != nil {
				return nil, err
			}
		}
		return daxco.Transform(ctx, data, employees)
	})

	r.Register(pipeline.FuncValidateRecords, func(ctx context.Context, args []any) (any, error) {
		records, err := argAs[[]payroll.Record](pipeline.FuncValidateRecords, args, 0)
		if err != nil {
			return nil, err
		}
		employees, err := argAs[[]directory.Employee](pipeline.FuncValidateRecords, args, 1)
		if err != nil {
			return nil, err
		}
		return validate.Records(ctx, records, employees), nil
	})

	return r
}

// argAs asserts a positional stage argument to its expected type. A mismatch
// means the stage configuration wired the wrong context key, which is a
// configuration fault rather than bad input.
func argAs[T any](fn pipeline.FuncID, args []any, i int) (T, error) {
	var zero T
	if i >= len(args) {
		return zero, errors.NewConfigError("pipeline",
			fmt.Sprintf("stage function %q: missing input %d", fn, i), nil)
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, errors.NewConfigError("pipeline",
			fmt.Sprintf("stage function %q: input %d is %T, want %T", fn, i, args[i], zero), nil)
	}
	return v, nil
}
