// Package pipeline runs an ordered, externally configured list of named
// stages. Each stage consumes named values from a shared per-run context and
// produces one named output. Stage functions are resolved through a typed
// registry so an unknown identifier is a configuration error, not a runtime
// surprise.
package pipeline

import (
	"context"
	"fmt"

	"github.com/agentstation/paybridge/pkg/errors"
	"github.com/agentstation/paybridge/pkg/logging"
)

// FuncID identifies a registered stage function. Identifiers come from
// external configuration; the set of valid values is fixed at compile time.
type FuncID string

// Stage function identifiers resolvable through a Registry.
const (
	// FuncFetchEmployees loads the employee directory for a company.
	FuncFetchEmployees FuncID = "fetch_employees"
	// FuncDaxcoTransform transforms a Daxco export into canonical records.
	FuncDaxcoTransform FuncID = "daxco_transformation"
	// FuncValidateRecords validates canonical records against the directory.
	FuncValidateRecords FuncID = "validate_transformation"
)

// StageFunc is the signature every stage function implements. Inputs arrive
// positionally in the order the stage's configuration names them.
type StageFunc func(ctx context.Context, args []any) (any, error)

// Stage is one configured pipeline step. Loaded once at process start and
// treated as immutable, read-only shared state.
type Stage struct {
	Name     string   `yaml:"name"`
	Function FuncID   `yaml:"function"`
	Inputs   []string `yaml:"inputs"`
	Output   string   `yaml:"output"`
}

// Registry maps function identifiers to stage functions.
type Registry struct {
	funcs map[FuncID]StageFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[FuncID]StageFunc)}
}

// Register binds a function identifier to its implementation. Later
// registrations replace earlier ones.
func (r *Registry) Register(id FuncID, fn StageFunc) {
	r.funcs[id] = fn
}

// resolve returns the stage function for an identifier.
func (r *Registry) resolve(id FuncID) (StageFunc, error) {
	fn, ok := r.funcs[id]
	if !ok {
		return nil, errors.NewConfigError("pipeline", fmt.Sprintf("unknown stage function %q", id), nil)
	}
	return fn, nil
}

// Context holds the named intermediate values of one pipeline run. It is
// owned exclusively by that run and discarded at run end; it is not safe for
// concurrent use and never needs to be.
type Context struct {
	values map[string]any
}

// NewContext creates a run context seeded with initial values.
func NewContext(initial map[string]any) *Context {
	values := make(map[string]any, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &Context{values: values}
}

// Set stores a value under a context key.
func (c *Context) Set(key string, value any) {
	c.values[key] = value
}

// Get returns the value stored under a context key.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Executor runs configured stages against a run context.
type Executor struct {
	registry *Registry
}

// NewExecutor creates an executor over a registry.
func NewExecutor(registry *Registry) *Executor {
	return &Executor{registry: registry}
}

// Run executes the stages in order. For each stage it gathers the declared
// inputs from the context by key, invokes the bound function, and stores the
// result under the declared output key.
//
// A missing input key or unknown function identifier is a ConfigError and
// fatal. Any stage error aborts the remaining stages immediately; the
// executor performs no retries — a DependencyError from a stage signals the
// caller that the whole run may be retried later. There is no implicit
// ordering beyond the configured list and no ahead-of-time dependency-graph
// validation.
func (e *Executor) Run(ctx context.Context, stages []Stage, run *Context) (*Context, error) {
	log := logging.FromContext(ctx)

	for _, stage := range stages {
		fn, err := e.registry.resolve(stage.Function)
		if err != nil {
			return nil, err
		}

		args := make([]any, 0, len(stage.Inputs))
		for _, key := range stage.Inputs {
			v, ok := run.Get(key)
			if !ok {
				return nil, errors.NewConfigError("pipeline",
					fmt.Sprintf("stage %q: missing context key %q", stage.Name, key), nil)
			}
			args = append(args, v)
		}

		log.Debug().
			Str("stage", stage.Name).
			Str("function", string(stage.Function)).
			Strs("inputs", stage.Inputs).
			Str("output", stage.Output).
			Msg("Running pipeline stage")

		out, err := fn(logging.WithStage(ctx, stage.Name), args)
		if err != nil {
			return nil, fmt.Errorf("stage %q: %w", stage.Name, err)
		}
		run.Set(stage.Output, out)
	}

	return run, nil
}
