package dbtartifacts

import (
	"fmt"
	"regexp"
)

// category is the per-family dispatch core: structural guard, identifier
// extraction, and the dense [1..ceiling] version table. All five instances
// are built once at init and never mutated, so concurrent parsing needs no
// coordination.
type category struct {
	name    Category
	ceiling int
	pattern *regexp.Regexp
}

func newCategory(name Category, ceiling int) *category {
	return &category{
		name:    name,
		ceiling: ceiling,
		pattern: versionPattern(name.WireSegment()),
	}
}

func (c *category) invalid() error {
	return &ParseError{Kind: KindInvalidArtifact, Category: c.name}
}

// guard confirms raw is shaped enough to carry a version identifier and
// returns it. This is the only structural check the core performs.
func (c *category) guard(raw Raw) (string, error) {
	if raw == nil {
		return "", c.invalid()
	}
	meta, ok := raw[metadataKey].(map[string]any)
	if !ok {
		return "", c.invalid()
	}
	id, ok := meta[schemaVersionKey].(string)
	if !ok {
		return "", c.invalid()
	}
	return id, nil
}

// dispatch accepts every version in [1, ceiling] and nothing else.
func (c *category) dispatch(version int) error {
	if version < 1 || version > c.ceiling {
		return &ParseError{Kind: KindUnsupportedVersion, Category: c.name, Version: version}
	}
	return nil
}

// detect runs guard -> extract -> dispatch, short-circuiting on the first
// failure, and returns a version number the category supports.
func (c *category) detect(raw Raw) (int, error) {
	id, err := c.guard(raw)
	if err != nil {
		return 0, err
	}
	version, err := extractVersion(c.pattern, id)
	if err != nil {
		return 0, c.invalid()
	}
	if err := c.dispatch(version); err != nil {
		return 0, err
	}
	return version, nil
}

// detectPinned is detect plus an equality check against the version a pinned
// entry point asked for.
func (c *category) detectPinned(raw Raw, want int) error {
	version, err := c.detect(raw)
	if err != nil {
		return err
	}
	if version != want {
		return &ParseError{Kind: KindVersionMismatch, Category: c.name, Version: want}
	}
	return nil
}

// Ceilings come from the generated contract tags (contract_tags_gen.go) so
// the dispatch tables cannot drift from the set of tag types.
var (
	manifestCategory         = newCategory(CategoryManifest, manifestMaxVersion)
	catalogCategory          = newCategory(CategoryCatalog, catalogMaxVersion)
	runResultsCategory       = newCategory(CategoryRunResults, runResultsMaxVersion)
	sourcesCategory          = newCategory(CategorySources, sourcesMaxVersion)
	semanticManifestCategory = newCategory(CategorySemanticManifest, semanticManifestMaxVersion)
)

var categories = map[Category]*category{
	CategoryManifest:         manifestCategory,
	CategoryCatalog:          catalogCategory,
	CategoryRunResults:       runResultsCategory,
	CategorySources:          sourcesCategory,
	CategorySemanticManifest: semanticManifestCategory,
}

// Categories lists every artifact category this build supports, in a stable
// order.
func Categories() []Category {
	return []Category{
		CategoryManifest,
		CategoryCatalog,
		CategoryRunResults,
		CategorySources,
		CategorySemanticManifest,
	}
}

// MaxVersion reports the highest schema version supported for c, or 0 when c
// is not a known category.
func MaxVersion(c Category) int {
	cat, ok := categories[c]
	if !ok {
		return 0
	}
	return cat.ceiling
}

// DetectVersion reports the schema version raw declares for the given
// category without constructing a tagged view. It fails exactly as the
// corresponding Parse function would.
func DetectVersion(c Category, raw Raw) (int, error) {
	cat, ok := categories[c]
	if !ok {
		return 0, fmt.Errorf("dbtartifacts: unknown category %q", string(c))
	}
	return cat.detect(raw)
}
