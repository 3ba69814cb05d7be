package dbtartifacts

// SemanticManifest is the version-tagged view of a parsed
// semantic_manifest.json. The wire identifier spells the segment
// "semantic-manifest", mirroring the run_results split.
type SemanticManifest interface {
	SchemaVersion() int
	Raw() map[string]any

	semanticManifest()
}

// ParseSemanticManifest detects the schema version of a decoded
// semantic_manifest.json and returns the matching version-tagged view.
func ParseSemanticManifest(raw Raw) (SemanticManifest, error) {
	version, err := semanticManifestCategory.detect(raw)
	if err != nil {
		return nil, err
	}
	return tagSemanticManifest(raw, version), nil
}

// ParseSemanticManifestV1 parses raw as a semantic_manifest.json pinned to
// schema version 1.
func ParseSemanticManifestV1(raw Raw) (SemanticManifestV1, error) {
	if err := semanticManifestCategory.detectPinned(raw, 1); err != nil {
		return nil, err
	}
	return SemanticManifestV1(raw), nil
}
