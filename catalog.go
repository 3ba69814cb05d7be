package dbtartifacts

// Catalog is the version-tagged view of a parsed catalog.json.
type Catalog interface {
	SchemaVersion() int
	Raw() map[string]any

	catalog()
}

// ParseCatalog detects the schema version of a decoded catalog.json and
// returns the matching version-tagged view.
func ParseCatalog(raw Raw) (Catalog, error) {
	version, err := catalogCategory.detect(raw)
	if err != nil {
		return nil, err
	}
	return tagCatalog(raw, version), nil
}

// ParseCatalogV1 parses raw as a catalog.json pinned to schema version 1.
func ParseCatalogV1(raw Raw) (CatalogV1, error) {
	if err := catalogCategory.detectPinned(raw, 1); err != nil {
		return nil, err
	}
	return CatalogV1(raw), nil
}
