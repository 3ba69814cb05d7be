package dbtartifacts_test

import (
	"reflect"
	"strconv"
	"testing"

	j "github.com/goccy/go-json"

	"github.com/schemadrift/dbtartifacts"
)

// artifact builds the minimal shell the structural guard expects, with the
// canonical schemas.getdbt.com identifier for the given segment and version.
func artifact(segment, version string) map[string]any {
	return map[string]any{
		"metadata": map[string]any{
			"dbt_schema_version": "https://schemas.getdbt.com/dbt/" + segment + "/" + version + ".json",
		},
	}
}

func TestParseRunResults_V6(t *testing.T) {
	raw, err := dbtartifacts.DecodeBytes([]byte(`{
		"metadata": {"dbt_schema_version": "https://schemas.getdbt.com/dbt/run-results/v6.json"},
		"results": [],
		"elapsed_time": 1.2
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	rr, err := dbtartifacts.ParseRunResults(raw)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rr.SchemaVersion() != 6 {
		t.Fatalf("expected v6, got v%d", rr.SchemaVersion())
	}
	if _, ok := rr.(dbtartifacts.RunResultsV6); !ok {
		t.Fatalf("expected RunResultsV6, got %T", rr)
	}
}

func TestParseRunResults_EmptyObject(t *testing.T) {
	_, err := dbtartifacts.ParseRunResults(map[string]any{})
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "Not a run-results.json" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	pe, ok := dbtartifacts.AsParseError(err)
	if !ok || pe.Kind != dbtartifacts.KindInvalidArtifact {
		t.Fatalf("expected KindInvalidArtifact, got %v", err)
	}
}

func TestParseRunResults_UnsupportedVersion(t *testing.T) {
	_, err := dbtartifacts.ParseRunResults(artifact("run-results", "v99"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "Unsupported run-results version: 99" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	pe, ok := dbtartifacts.AsParseError(err)
	if !ok || pe.Kind != dbtartifacts.KindUnsupportedVersion || pe.Version != 99 {
		t.Fatalf("expected KindUnsupportedVersion(99), got %#v", pe)
	}
}

func TestParseRunResultsV2_Mismatch(t *testing.T) {
	_, err := dbtartifacts.ParseRunResultsV2(artifact("run-results", "v1"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "Not a run-results.json v2" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	pe, ok := dbtartifacts.AsParseError(err)
	if !ok || pe.Kind != dbtartifacts.KindVersionMismatch || pe.Version != 2 {
		t.Fatalf("expected KindVersionMismatch(2), got %#v", pe)
	}
}

func TestParseRunResults_PinnedAgreement(t *testing.T) {
	pinned := []func(dbtartifacts.Raw) (dbtartifacts.RunResults, error){
		func(r dbtartifacts.Raw) (dbtartifacts.RunResults, error) { return dbtartifacts.ParseRunResultsV1(r) },
		func(r dbtartifacts.Raw) (dbtartifacts.RunResults, error) { return dbtartifacts.ParseRunResultsV2(r) },
		func(r dbtartifacts.Raw) (dbtartifacts.RunResults, error) { return dbtartifacts.ParseRunResultsV3(r) },
		func(r dbtartifacts.Raw) (dbtartifacts.RunResults, error) { return dbtartifacts.ParseRunResultsV4(r) },
		func(r dbtartifacts.Raw) (dbtartifacts.RunResults, error) { return dbtartifacts.ParseRunResultsV5(r) },
		func(r dbtartifacts.Raw) (dbtartifacts.RunResults, error) { return dbtartifacts.ParseRunResultsV6(r) },
	}
	for k := 1; k <= len(pinned); k++ {
		raw := artifact("run-results", "v"+strconv.Itoa(k))
		auto, err := dbtartifacts.ParseRunResults(raw)
		if err != nil {
			t.Fatalf("v%d: auto-detect failed: %v", k, err)
		}
		got, err := pinned[k-1](raw)
		if err != nil {
			t.Fatalf("v%d: pinned failed: %v", k, err)
		}
		if auto.SchemaVersion() != got.SchemaVersion() {
			t.Fatalf("v%d: version disagreement: %d vs %d", k, auto.SchemaVersion(), got.SchemaVersion())
		}
		if !reflect.DeepEqual(auto.Raw(), got.Raw()) {
			t.Fatalf("v%d: data disagreement", k)
		}
		for wrong := 1; wrong <= len(pinned); wrong++ {
			if wrong == k {
				continue
			}
			_, err := pinned[wrong-1](raw)
			pe, ok := dbtartifacts.AsParseError(err)
			if !ok || pe.Kind != dbtartifacts.KindVersionMismatch {
				t.Fatalf("v%d: pin v%d should mismatch, got %v", k, wrong, err)
			}
		}
	}
}

func TestParseRunResults_RoundTripIdentity(t *testing.T) {
	input := []byte(`{
		"metadata": {"dbt_schema_version": "https://schemas.getdbt.com/dbt/run-results/v4.json", "invocation_id": "a-b-c"},
		"results": [{"status": "success", "execution_time": 0.25}],
		"elapsed_time": 12.75,
		"args": {"which": "run"}
	}`)
	raw, err := dbtartifacts.DecodeBytes(input)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	pristine, err := dbtartifacts.DecodeBytes(input)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	rr, err := dbtartifacts.ParseRunResults(raw)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(raw, pristine) {
		t.Fatalf("parse mutated its input")
	}
	got, err := j.Marshal(rr.Raw())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want, err := j.Marshal(pristine)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("round trip drifted:\n got: %s\nwant: %s", got, want)
	}
}

func TestParseRunResults_SharesBackingMap(t *testing.T) {
	raw := artifact("run-results", "v6")
	rr, err := dbtartifacts.ParseRunResults(raw)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	raw["results"] = []any{}
	if _, ok := rr.Raw()["results"]; !ok {
		t.Fatalf("tagged view copied the map instead of relabelling it")
	}
}

func TestParseRunResults_Idempotent(t *testing.T) {
	raw := artifact("run-results", "v3")
	first, err := dbtartifacts.ParseRunResults(raw)
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := dbtartifacts.ParseRunResults(raw)
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if first.SchemaVersion() != second.SchemaVersion() || !reflect.DeepEqual(first.Raw(), second.Raw()) {
		t.Fatalf("repeat parse drifted")
	}
}
