package dbtartifacts

// Package dbtartifacts provides:
//
// - Version-sniffing parsers for dbt JSON artifacts (manifest, catalog, run results, sources, semantic manifest)
// - Version-tagged views per category (Manifest, Catalog, ...) backed by the caller's decoded map, never copied
// - A structured error model via ParseError (Kind, category, version) with stable message templates
// - Decode helpers (DecodeBytes/DecodeReader) that preserve numbers as json.Number
//
// Design policy:
// - Keep only public APIs in the root package; the contract tables live in registry/ and the generator under internal/gen.
// - The version tag is trusted from the artifact's own dbt_schema_version; fields are never validated against the published schema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	raw, err := dbtartifacts.DecodeBytes(data)
//	m, err := dbtartifacts.ParseManifest(raw)       // version detected at runtime
//	rr, err := dbtartifacts.ParseRunResultsV6(raw)  // or pin an expected version
//
//	switch m := m.(type) {
//	case dbtartifacts.ManifestV12:
//	    _ = m["nodes"]
//	}
