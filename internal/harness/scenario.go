package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/objcmp/internal/compare"
	"github.com/roach88/objcmp/internal/config"
	"github.com/roach88/objcmp/internal/types"
)

// Scenario is a list of comparison cases evaluated under one profile.
type Scenario struct {
	// Name uniquely identifies this scenario. It names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Profile sets the comparison context. Omitted fields take the profile
	// schema defaults.
	Profile config.Spec `yaml:"profile,omitempty"`

	// Cases are evaluated in order.
	Cases []Case `yaml:"cases"`
}

// Case is one comparison and its expected outcome.
type Case struct {
	Name string `yaml:"name"`

	// Left and Right are value literals, e.g. "int:-1" or "varchar:abc@binary".
	Left  string `yaml:"left"`
	Right string `yaml:"right"`

	// Op is an operator name or symbol. Empty means cmp.
	Op string `yaml:"op,omitempty"`

	// Expect is one of the Expect* outcomes.
	Expect string `yaml:"expect"`

	// Symmetric re-runs the case with operands swapped and the operator
	// mirrored, and requires the mirrored outcome.
	Symmetric bool `yaml:"symmetric,omitempty"`

	// NullSafe evaluates through the null-safe table with the profile's
	// collation and null order. Only cmp is allowed.
	NullSafe bool `yaml:"nullsafe,omitempty"`
}

// Expected outcomes.
const (
	ExpectLT           = "lt"
	ExpectEQ           = "eq"
	ExpectGT           = "gt"
	ExpectTrue         = "true"
	ExpectFalse        = "false"
	ExpectNull         = "null"
	ExpectIncomparable = "incomparable"
	ExpectNeedsCast    = "needs_cast"
	ExpectInvariant    = "invariant"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or fails validation.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads one scenario file, or every *.yaml and *.yml file in a
// directory (sorted by file name, not recursive).
func LoadScenarios(path string) ([]*Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario path: %w", err)
	}
	if !info.IsDir() {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return []*Scenario{s}, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(path, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenario directory: %w", err)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no scenario files found in %s", path)
	}
	sort.Strings(files)

	scenarios := make([]*Scenario, 0, len(files))
	for _, f := range files {
		s, err := LoadScenario(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	if _, err := config.FromSpec(s.Profile); err != nil {
		return fmt.Errorf("profile: %w", err)
	}

	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate case name %q", i, c.Name)
		}
		seen[c.Name] = true
		if err := validateCase(c); err != nil {
			return fmt.Errorf("cases[%d] (%s): %w", i, c.Name, err)
		}
	}

	return nil
}

func validateCase(c *Case) error {
	if _, err := types.ParseLiteral(c.Left); err != nil {
		return fmt.Errorf("left: %w", err)
	}
	if _, err := types.ParseLiteral(c.Right); err != nil {
		return fmt.Errorf("right: %w", err)
	}

	op, err := c.Operator()
	if err != nil {
		return err
	}

	if c.NullSafe && op != compare.CMP {
		return fmt.Errorf("nullsafe cases must use cmp, got %s", op)
	}

	switch c.Expect {
	case ExpectLT, ExpectEQ, ExpectGT:
		if op != compare.CMP {
			return fmt.Errorf("expect %q requires op cmp, got %s", c.Expect, op)
		}
	case ExpectTrue, ExpectFalse:
		if !op.IsPredicate() {
			return fmt.Errorf("expect %q requires a predicate operator, got %s", c.Expect, op)
		}
	case ExpectNull, ExpectIncomparable, ExpectNeedsCast:
		if c.NullSafe {
			return fmt.Errorf("expect %q cannot happen on the null-safe path", c.Expect)
		}
	case ExpectInvariant:
		if !c.NullSafe {
			return fmt.Errorf("expect %q requires nullsafe: true", c.Expect)
		}
	case "":
		return fmt.Errorf("expect is required")
	default:
		return fmt.Errorf("unknown expect %q", c.Expect)
	}
	return nil
}

// Operator returns the parsed operator, defaulting to cmp.
func (c Case) Operator() (compare.Operator, error) {
	if c.Op == "" {
		return compare.CMP, nil
	}
	op, err := compare.ParseOperator(c.Op)
	if err != nil {
		return op, fmt.Errorf("op: %w", err)
	}
	return op, nil
}
