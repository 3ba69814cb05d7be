package dbtartifacts_test

import (
	"testing"

	"github.com/schemadrift/dbtartifacts"
)

func TestParseCatalog(t *testing.T) {
	raw := artifact("catalog", "v1")
	c, err := dbtartifacts.ParseCatalog(raw)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := c.(dbtartifacts.CatalogV1); !ok || c.SchemaVersion() != 1 {
		t.Fatalf("expected CatalogV1, got %T v%d", c, c.SchemaVersion())
	}
	if _, err := dbtartifacts.ParseCatalogV1(raw); err != nil {
		t.Fatalf("pinned v1 failed: %v", err)
	}
}

func TestParseCatalog_UnsupportedVersion(t *testing.T) {
	_, err := dbtartifacts.ParseCatalog(artifact("catalog", "v2"))
	if err == nil || err.Error() != "Unsupported catalog version: 2" {
		t.Fatalf("expected unsupported v2, got %v", err)
	}
}
