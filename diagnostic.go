package searchvalidator

import "github.com/searchql/validator/ast"

// Severity represents the severity of a diagnostic.
type Severity string

// Severity levels.
const (
	SeverityError       Severity = "error"
	SeverityWarning     Severity = "warning"
	SeverityInformation Severity = "information"
)

// Code classifies a diagnostic.
type Code string

// Diagnostic codes.
const (
	// CodeUnknownQualifier indicates a qualifier name the symbol table
	// does not know.
	CodeUnknownQualifier Code = "unknown-qualifier"
	// CodeUnknownVariable indicates a reference to an undeclared variable.
	CodeUnknownVariable Code = "unknown-variable"
	// CodeValueType indicates a value whose type does not match the
	// qualifier's expected type.
	CodeValueType Code = "value-type"
	// CodeValueConflict indicates two values drawn from the same
	// mutually-exclusive set in one query.
	CodeValueConflict Code = "value-conflict"
	// CodeRangeType indicates range boundaries of different kinds.
	CodeRangeType Code = "range-type"
	// CodeSortValue indicates a sort criteria outside the allowed set.
	CodeSortValue Code = "sort-value"
	// CodeDefinition indicates an invalid variable definition.
	CodeDefinition Code = "definition"
	// CodeParse carries a parser-inserted placeholder's message.
	CodeParse Code = "parse"
)

// Diagnostic is one validation finding. It is a self-contained value:
// the offending node, a message, and, for mutual-exclusion conflicts
// only, the earlier node that registered the conflicting value.
type Diagnostic struct {
	// Node is the offending node.
	Node ast.Node

	// Message is the human-readable description.
	Message string

	// Severity indicates the severity level.
	Severity Severity

	// Code classifies the finding.
	Code Code

	// Conflict is the earlier conflicting node, set only for
	// mutual-exclusion conflicts.
	Conflict ast.Node
}

// IsError reports whether the diagnostic is an error.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}

// String returns a human-readable representation.
func (d Diagnostic) String() string {
	return string(d.Severity) + ": " + d.Message
}
