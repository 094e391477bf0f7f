package searchvalidator

// Version is the library version.
const Version = "0.1.0"

// Dialect selects a built-in qualifier grammar.
type Dialect string

// Supported dialects.
const (
	// DialectGitHub is the GitHub issue and pull request search grammar.
	DialectGitHub Dialect = "github"
)

// String returns the dialect name.
func (d Dialect) String() string {
	return string(d)
}

// IsValid reports whether this is a supported dialect.
func (d Dialect) IsValid() bool {
	return d == DialectGitHub
}
