package dbtartifacts

// Raw is a JSON-decoded artifact body as produced by DecodeBytes or any other
// JSON decoder. The Parse functions relabel it; they never copy or mutate it.
type Raw = map[string]any

// Category identifies one artifact family. Names use underscores; the wire
// identifier inside dbt_schema_version uses hyphens where they differ.
type Category string

const (
	CategoryManifest         Category = "manifest"
	CategoryCatalog          Category = "catalog"
	CategoryRunResults       Category = "run_results"
	CategorySources          Category = "sources"
	CategorySemanticManifest Category = "semantic_manifest"
)

// WireSegment returns the path segment this category uses inside
// dbt_schema_version identifiers (and in error messages).
func (c Category) WireSegment() string {
	switch c {
	case CategoryRunResults:
		return "run-results"
	case CategorySemanticManifest:
		return "semantic-manifest"
	default:
		return string(c)
	}
}

// Keys of the artifact shell inspected by the structural guard. Nothing else
// in the document is ever read.
const (
	metadataKey      = "metadata"
	schemaVersionKey = "dbt_schema_version"
)
