package pipeline

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/paybridge/pkg/errors"
)

// Config maps integration type to provider to the ordered stage list for
// that pairing, mirroring the stage configuration file:
//
//	payroll:
//	  daxco:
//	    - name: fetch_employees
//	      function: fetch_employees
//	      inputs: [company_id]
//	      output: employees
type Config map[string]map[string][]Stage

// LoadConfig reads a stage configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("pipeline", fmt.Sprintf("read stage config %s", path), err)
	}
	return ParseConfig(data)
}

// ParseConfig parses stage configuration YAML. Malformed YAML is a fatal
// configuration fault; the parse failure is kept in the chain for diagnosis.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewConfigError("pipeline", "parse stage config", errors.WrapParse("yaml", "", err))
	}
	return cfg, nil
}

// Stages returns the stage list for an integration type and provider.
func (c Config) Stages(integrationType, provider string) ([]Stage, error) {
	providers, ok := c[integrationType]
	if !ok {
		return nil, fmt.Errorf("%w: integration type %q", errors.ErrUnsupportedIntegration, integrationType)
	}
	stages, ok := providers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: provider %q for integration type %q",
			errors.ErrUnsupportedIntegration, provider, integrationType)
	}
	return stages, nil
}
