package dbtartifacts

// Manifest is the version-tagged view of a parsed manifest.json. The concrete
// type is one of ManifestV1 through ManifestV12 and shares its backing map
// with the caller's input. The tag is a widening cast trusted from the
// artifact's own dbt_schema_version: dbt generated the document, so its
// self-reported version is taken at face value and individual fields are not
// checked against the published schema.
type Manifest interface {
	// SchemaVersion reports the detected schema version.
	SchemaVersion() int
	// Raw returns the underlying decoded document.
	Raw() map[string]any

	manifest()
}

// ParseManifest detects the schema version of a decoded manifest.json and
// returns the matching version-tagged view.
func ParseManifest(raw Raw) (Manifest, error) {
	version, err := manifestCategory.detect(raw)
	if err != nil {
		return nil, err
	}
	return tagManifest(raw, version), nil
}

// ParseManifestV1 parses raw as a manifest.json pinned to schema version 1.
// It fails with KindVersionMismatch when the artifact reports any other
// supported version.
func ParseManifestV1(raw Raw) (ManifestV1, error) {
	if err := manifestCategory.detectPinned(raw, 1); err != nil {
		return nil, err
	}
	return ManifestV1(raw), nil
}

// ParseManifestV2 parses raw as a manifest.json pinned to schema version 2.
func ParseManifestV2(raw Raw) (ManifestV2, error) {
	if err := manifestCategory.detectPinned(raw, 2); err != nil {
		return nil, err
	}
	return ManifestV2(raw), nil
}

// ParseManifestV3 parses raw as a manifest.json pinned to schema version 3.
func ParseManifestV3(raw Raw) (ManifestV3, error) {
	if err := manifestCategory.detectPinned(raw, 3); err != nil {
		return nil, err
	}
	return ManifestV3(raw), nil
}

// ParseManifestV4 parses raw as a manifest.json pinned to schema version 4.
func ParseManifestV4(raw Raw) (ManifestV4, error) {
	if err := manifestCategory.detectPinned(raw, 4); err != nil {
		return nil, err
	}
	return ManifestV4(raw), nil
}

// ParseManifestV5 parses raw as a manifest.json pinned to schema version 5.
func ParseManifestV5(raw Raw) (ManifestV5, error) {
	if err := manifestCategory.detectPinned(raw, 5); err != nil {
		return nil, err
	}
	return ManifestV5(raw), nil
}

// ParseManifestV6 parses raw as a manifest.json pinned to schema version 6.
func ParseManifestV6(raw Raw) (ManifestV6, error) {
	if err := manifestCategory.detectPinned(raw, 6); err != nil {
		return nil, err
	}
	return ManifestV6(raw), nil
}

// ParseManifestV7 parses raw as a manifest.json pinned to schema version 7.
func ParseManifestV7(raw Raw) (ManifestV7, error) {
	if err := manifestCategory.detectPinned(raw, 7); err != nil {
		return nil, err
	}
	return ManifestV7(raw), nil
}

// ParseManifestV8 parses raw as a manifest.json pinned to schema version 8.
func ParseManifestV8(raw Raw) (ManifestV8, error) {
	if err := manifestCategory.detectPinned(raw, 8); err != nil {
		return nil, err
	}
	return ManifestV8(raw), nil
}

// ParseManifestV9 parses raw as a manifest.json pinned to schema version 9.
func ParseManifestV9(raw Raw) (ManifestV9, error) {
	if err := manifestCategory.detectPinned(raw, 9); err != nil {
		return nil, err
	}
	return ManifestV9(raw), nil
}

// ParseManifestV10 parses raw as a manifest.json pinned to schema version 10.
func ParseManifestV10(raw Raw) (ManifestV10, error) {
	if err := manifestCategory.detectPinned(raw, 10); err != nil {
		return nil, err
	}
	return ManifestV10(raw), nil
}

// ParseManifestV11 parses raw as a manifest.json pinned to schema version 11.
func ParseManifestV11(raw Raw) (ManifestV11, error) {
	if err := manifestCategory.detectPinned(raw, 11); err != nil {
		return nil, err
	}
	return ManifestV11(raw), nil
}

// ParseManifestV12 parses raw as a manifest.json pinned to schema version 12.
func ParseManifestV12(raw Raw) (ManifestV12, error) {
	if err := manifestCategory.detectPinned(raw, 12); err != nil {
		return nil, err
	}
	return ManifestV12(raw), nil
}
