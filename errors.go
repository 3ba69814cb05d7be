package dbtartifacts

import (
	"errors"
	"fmt"
)

// Kind discriminates parse failures for programmatic handling. The rendered
// message is a stable template callers may also match on, but Kind is the
// supported way to branch.
type Kind int

const (
	// KindInvalidArtifact reports input that is not a recognizable artifact
	// shell: missing/malformed metadata, a non-string dbt_schema_version, or
	// an identifier without the /<segment>/vN.json tail.
	KindInvalidArtifact Kind = iota + 1
	// KindVersionMismatch reports a well-formed artifact of a known version
	// that differs from the version a pinned entry point asked for.
	KindVersionMismatch
	// KindUnsupportedVersion reports a syntactically valid version number
	// outside the range this build knows how to tag.
	KindUnsupportedVersion
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArtifact:
		return "invalid_artifact"
	case KindVersionMismatch:
		return "version_mismatch"
	case KindUnsupportedVersion:
		return "unsupported_version"
	default:
		return "unknown"
	}
}

// ParseError is the only error type returned by the Parse functions.
// Version holds the requested version for KindVersionMismatch and the
// detected version for KindUnsupportedVersion; it is zero for
// KindInvalidArtifact.
type ParseError struct {
	Kind     Kind
	Category Category
	Version  int
}

// Error renders one of the three message templates. The exact text is a
// compatibility contract; change Kind semantics, never these strings.
func (e *ParseError) Error() string {
	seg := e.Category.WireSegment()
	switch e.Kind {
	case KindVersionMismatch:
		return fmt.Sprintf("Not a %s.json v%d", seg, e.Version)
	case KindUnsupportedVersion:
		return fmt.Sprintf("Unsupported %s version: %d", seg, e.Version)
	default:
		return fmt.Sprintf("Not a %s.json", seg)
	}
}

// AsParseError extracts a *ParseError from an error using errors.As internally.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
