// Package registry describes the generated artifact shape contracts: which
// (category, version) pairs this build of the library carries and the
// canonical schema document each shape was generated from. The parsing core
// never consults the registry at runtime — contract tags are plain Go types —
// so this package exists for tooling (the sniff CLI, the generator) and for
// tests that keep the dispatch tables in lockstep with the generated shapes.
package registry

import "sort"

// SchemaURLBase is the root under which dbt publishes its artifact schemas.
const SchemaURLBase = "https://schemas.getdbt.com/dbt"

// Contract describes one generated artifact shape.
type Contract struct {
	// Category is the artifact family name (underscore form, e.g. "run_results").
	Category string
	// Version is the integer schema version the shape covers.
	Version int
	// SchemaURL is the canonical schema document the shape was generated from.
	SchemaURL string
}

// Lookup returns the contract for (category, version), if this build has one.
func Lookup(category string, version int) (Contract, bool) {
	for _, c := range contracts {
		if c.Category == category && c.Version == version {
			return c, true
		}
	}
	return Contract{}, false
}

// Supported returns the schema versions carried for category, ascending.
func Supported(category string) []int {
	var out []int
	for _, c := range contracts {
		if c.Category == category {
			out = append(out, c.Version)
		}
	}
	sort.Ints(out)
	return out
}

// MaxVersion returns the highest schema version carried for category, or 0
// when the category is unknown.
func MaxVersion(category string) int {
	max := 0
	for _, c := range contracts {
		if c.Category == category && c.Version > max {
			max = c.Version
		}
	}
	return max
}

// Categories returns every category present in the contract table, sorted.
func Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, c := range contracts {
		if !seen[c.Category] {
			seen[c.Category] = true
			out = append(out, c.Category)
		}
	}
	sort.Strings(out)
	return out
}
