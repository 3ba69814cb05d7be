package registry_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemadrift/dbtartifacts"
	"github.com/schemadrift/dbtartifacts/registry"
)

func TestMaxVersion(t *testing.T) {
	want := map[string]int{
		"manifest":          12,
		"catalog":           1,
		"run_results":       6,
		"sources":           3,
		"semantic_manifest": 1,
	}
	for category, max := range want {
		assert.Equal(t, max, registry.MaxVersion(category), category)
	}
	assert.Zero(t, registry.MaxVersion("nope"))
}

func TestSupported_DenseFromOne(t *testing.T) {
	for _, category := range registry.Categories() {
		versions := registry.Supported(category)
		require.NotEmpty(t, versions, category)
		for i, v := range versions {
			assert.Equal(t, i+1, v, "%s: versions must be dense from 1", category)
		}
	}
}

func TestLookup_SchemaURLs(t *testing.T) {
	ct, ok := registry.Lookup("run_results", 6)
	require.True(t, ok)
	assert.Equal(t, "https://schemas.getdbt.com/dbt/run-results/v6.json", ct.SchemaURL)

	_, ok = registry.Lookup("run_results", 7)
	assert.False(t, ok)
	_, ok = registry.Lookup("nope", 1)
	assert.False(t, ok)
}

// The dispatch tables in the root package and the contract table here are
// rendered from the same manifest; this keeps a manual edit to either one
// from drifting silently.
func TestLockstepWithDispatchTables(t *testing.T) {
	cats := dbtartifacts.Categories()
	require.Len(t, cats, len(registry.Categories()))
	for _, c := range cats {
		max := dbtartifacts.MaxVersion(c)
		assert.Equal(t, max, registry.MaxVersion(string(c)), c)
		for k := 1; k <= max; k++ {
			ct, ok := registry.Lookup(string(c), k)
			require.True(t, ok, "%s v%d missing from registry", c, k)
			wantSuffix := fmt.Sprintf("/%s/v%d.json", c.WireSegment(), k)
			assert.Contains(t, ct.SchemaURL, wantSuffix)
		}
	}
}
