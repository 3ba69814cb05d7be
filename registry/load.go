package registry

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ContractSpec is the YAML manifest consumed by the code generator. It is the
// single source of truth from which contracts_gen.go (this package) and the
// root package's contract tags are rendered.
type ContractSpec struct {
	Categories []CategorySpec `yaml:"categories"`
}

// CategorySpec declares one artifact family and its supported version range.
// Versions are dense from 1 through MaxVersion; adding support for a new
// artifact version means bumping MaxVersion and re-running the generator.
type CategorySpec struct {
	// Name is the category name in underscore form (e.g. "run_results").
	Name string `yaml:"name"`
	// GoName is the exported Go identifier stem (e.g. "RunResults").
	GoName string `yaml:"go_name"`
	// WireSegment is the path segment used in dbt_schema_version identifiers
	// (e.g. "run-results").
	WireSegment string `yaml:"wire_segment"`
	// MaxVersion is the highest supported schema version.
	MaxVersion int `yaml:"max_version"`
}

// LoadContractSpec decodes and validates a contract manifest. Unknown YAML
// keys are rejected so typos in the manifest fail loudly.
func LoadContractSpec(r io.Reader) (*ContractSpec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var spec ContractSpec
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("registry: decode contract spec: %w", err)
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *ContractSpec) validate() error {
	if len(s.Categories) == 0 {
		return fmt.Errorf("registry: contract spec declares no categories")
	}
	seen := map[string]bool{}
	for _, c := range s.Categories {
		switch {
		case c.Name == "":
			return fmt.Errorf("registry: category with empty name")
		case c.GoName == "":
			return fmt.Errorf("registry: category %q missing go_name", c.Name)
		case c.WireSegment == "":
			return fmt.Errorf("registry: category %q missing wire_segment", c.Name)
		case c.MaxVersion < 1:
			return fmt.Errorf("registry: category %q has max_version %d; want >= 1", c.Name, c.MaxVersion)
		case seen[c.Name]:
			return fmt.Errorf("registry: duplicate category %q", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

// Contracts expands the spec into one Contract per (category, version).
func (s *ContractSpec) Contracts() []Contract {
	var out []Contract
	for _, c := range s.Categories {
		for v := 1; v <= c.MaxVersion; v++ {
			out = append(out, Contract{
				Category:  c.Name,
				Version:   v,
				SchemaURL: fmt.Sprintf("%s/%s/v%d.json", SchemaURLBase, c.WireSegment, v),
			})
		}
	}
	return out
}
