package gen

import (
	"strings"
	"testing"

	"github.com/schemadrift/dbtartifacts/registry"
)

func testSpec() *registry.ContractSpec {
	return &registry.ContractSpec{Categories: []registry.CategorySpec{
		{Name: "run_results", GoName: "RunResults", WireSegment: "run-results", MaxVersion: 2},
		{Name: "catalog", GoName: "Catalog", WireSegment: "catalog", MaxVersion: 1},
	}}
}

func TestRenderContracts(t *testing.T) {
	out, err := RenderContracts(testSpec(), "registry/contracts.yaml")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	src := string(out)
	if !strings.HasPrefix(src, "// Code generated by dbt-artifacts gen from registry/contracts.yaml. DO NOT EDIT.") {
		t.Fatalf("missing generated header:\n%s", src)
	}
	for _, want := range []string{
		"package registry",
		`{Category: "run_results", Version: 2, SchemaURL: "https://schemas.getdbt.com/dbt/run-results/v2.json"},`,
		`{Category: "catalog", Version: 1, SchemaURL: "https://schemas.getdbt.com/dbt/catalog/v1.json"},`,
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("output missing %q:\n%s", want, src)
		}
	}
}

func TestRenderTags(t *testing.T) {
	out, err := RenderTags("dbtartifacts", testSpec(), "registry/contracts.yaml")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	src := string(out)
	for _, want := range []string{
		"package dbtartifacts",
		"const runResultsMaxVersion = 2",
		"type RunResultsV2 map[string]any",
		"func (a RunResultsV2) SchemaVersion() int { return 2 }",
		"func (RunResultsV2) runResults() {}",
		"func tagRunResults(raw map[string]any, version int) RunResults {",
		"const catalogMaxVersion = 1",
		"func (CatalogV1) catalog() {}",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("output missing %q:\n%s", want, src)
		}
	}
}

func TestLowerFirst(t *testing.T) {
	cases := map[string]string{"RunResults": "runResults", "Catalog": "catalog", "": ""}
	for in, want := range cases {
		if got := lowerFirst(in); got != want {
			t.Fatalf("lowerFirst(%q) = %q, want %q", in, got, want)
		}
	}
}
