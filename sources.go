package dbtartifacts

// Sources is the version-tagged view of a parsed sources.json (source
// freshness results).
type Sources interface {
	SchemaVersion() int
	Raw() map[string]any

	sources()
}

// ParseSources detects the schema version of a decoded sources.json and
// returns the matching version-tagged view.
func ParseSources(raw Raw) (Sources, error) {
	version, err := sourcesCategory.detect(raw)
	if err != nil {
		return nil, err
	}
	return tagSources(raw, version), nil
}

// ParseSourcesV1 parses raw as a sources.json pinned to schema version 1.
func ParseSourcesV1(raw Raw) (SourcesV1, error) {
	if err := sourcesCategory.detectPinned(raw, 1); err != nil {
		return nil, err
	}
	return SourcesV1(raw), nil
}

// ParseSourcesV2 parses raw as a sources.json pinned to schema version 2.
func ParseSourcesV2(raw Raw) (SourcesV2, error) {
	if err := sourcesCategory.detectPinned(raw, 2); err != nil {
		return nil, err
	}
	return SourcesV2(raw), nil
}

// ParseSourcesV3 parses raw as a sources.json pinned to schema version 3.
func ParseSourcesV3(raw Raw) (SourcesV3, error) {
	if err := sourcesCategory.detectPinned(raw, 3); err != nil {
		return nil, err
	}
	return SourcesV3(raw), nil
}
