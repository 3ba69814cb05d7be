package dbtartifacts

import (
	"errors"
	"regexp"
	"strconv"
)

// errMalformedVersion marks identifiers that lack the trailing
// /<segment>/vN.json. The public surface folds it into KindInvalidArtifact;
// it exists so the extractor stays distinguishable from the guard in tests
// and future diagnostics.
var errMalformedVersion = errors.New("dbtartifacts: malformed schema version identifier")

// versionPattern compiles the identifier pattern for a wire segment. The
// match is anchored at the end of the string, so any prefix before the
// segment is irrelevant. \d+ deliberately admits leading zeros ("v01" parses
// as 1); dbt has never emitted them, and rejecting them here would be a
// behavior change with no caller.
func versionPattern(segment string) *regexp.Regexp {
	return regexp.MustCompile(`/` + segment + `/v(\d+)\.json$`)
}

// extractVersion pulls the integer schema version out of a dbt_schema_version
// identifier. Range is not checked here; that is the dispatch table's job.
func extractVersion(pattern *regexp.Regexp, id string) (int, error) {
	m := pattern.FindStringSubmatch(id)
	if m == nil {
		return 0, errMalformedVersion
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Only reachable for digit runs that overflow int.
		return 0, errMalformedVersion
	}
	return n, nil
}
