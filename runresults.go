package dbtartifacts

// RunResults is the version-tagged view of a parsed run_results.json. Note
// the wire identifier spells the segment "run-results" while the category
// name keeps the underscore. Same trust boundary as Manifest: the tag comes
// from the artifact's self-reported version, fields are never validated.
type RunResults interface {
	SchemaVersion() int
	Raw() map[string]any

	runResults()
}

// ParseRunResults detects the schema version of a decoded run_results.json
// and returns the matching version-tagged view.
func ParseRunResults(raw Raw) (RunResults, error) {
	version, err := runResultsCategory.detect(raw)
	if err != nil {
		return nil, err
	}
	return tagRunResults(raw, version), nil
}

// ParseRunResultsV1 parses raw as a run_results.json pinned to schema version 1.
func ParseRunResultsV1(raw Raw) (RunResultsV1, error) {
	if err := runResultsCategory.detectPinned(raw, 1); err != nil {
		return nil, err
	}
	return RunResultsV1(raw), nil
}

// ParseRunResultsV2 parses raw as a run_results.json pinned to schema version 2.
func ParseRunResultsV2(raw Raw) (RunResultsV2, error) {
	if err := runResultsCategory.detectPinned(raw, 2); err != nil {
		return nil, err
	}
	return RunResultsV2(raw), nil
}

// ParseRunResultsV3 parses raw as a run_results.json pinned to schema version 3.
func ParseRunResultsV3(raw Raw) (RunResultsV3, error) {
	if err := runResultsCategory.detectPinned(raw, 3); err != nil {
		return nil, err
	}
	return RunResultsV3(raw), nil
}

// ParseRunResultsV4 parses raw as a run_results.json pinned to schema version 4.
func ParseRunResultsV4(raw Raw) (RunResultsV4, error) {
	if err := runResultsCategory.detectPinned(raw, 4); err != nil {
		return nil, err
	}
	return RunResultsV4(raw), nil
}

// ParseRunResultsV5 parses raw as a run_results.json pinned to schema version 5.
func ParseRunResultsV5(raw Raw) (RunResultsV5, error) {
	if err := runResultsCategory.detectPinned(raw, 5); err != nil {
		return nil, err
	}
	return RunResultsV5(raw), nil
}

// ParseRunResultsV6 parses raw as a run_results.json pinned to schema version 6.
func ParseRunResultsV6(raw Raw) (RunResultsV6, error) {
	if err := runResultsCategory.detectPinned(raw, 6); err != nil {
		return nil, err
	}
	return RunResultsV6(raw), nil
}
