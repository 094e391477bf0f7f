// Package ast defines the syntax tree for the search-query language.
//
// The node set is a closed sum type: every node implements the Node
// interface through a private marker method, so consumers (the walker,
// the validator, the printer) can switch exhaustively over Kind and the
// compiler flags any new kind they forget to handle.
package ast

// Kind identifies the concrete type of a Node.
type Kind uint8

// Node kinds.
const (
	KindQueryDocument Kind = iota
	KindQuery
	KindQualifiedValue
	KindVariableName
	KindVariableDefinition
	KindLiteral
	KindDate
	KindNumber
	KindRange
	KindSortBy
	KindCompare
	KindAny
	KindMissing
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindQueryDocument:
		return "QueryDocument"
	case KindQuery:
		return "Query"
	case KindQualifiedValue:
		return "QualifiedValue"
	case KindVariableName:
		return "VariableName"
	case KindVariableDefinition:
		return "VariableDefinition"
	case KindLiteral:
		return "Literal"
	case KindDate:
		return "Date"
	case KindNumber:
		return "Number"
	case KindRange:
		return "Range"
	case KindSortBy:
		return "SortBy"
	case KindCompare:
		return "Compare"
	case KindAny:
		return "Any"
	case KindMissing:
		return "Missing"
	default:
		return "Unknown"
	}
}

// Span is a half-open byte range [Start, End) into the document source.
type Span struct {
	Start int
	End   int
}

// Node is implemented by every syntax tree node.
type Node interface {
	Kind() Kind
	Span() Span
	node()
}

// CompareOp is the operator of a Compare node.
type CompareOp uint8

// Compare operators.
const (
	OpLessThan CompareOp = iota
	OpLessThanEqual
	OpGreaterThan
	OpGreaterThanEqual
)

// String returns the operator as written in a query.
func (op CompareOp) String() string {
	switch op {
	case OpLessThan:
		return "<"
	case OpLessThanEqual:
		return "<="
	case OpGreaterThan:
		return ">"
	case OpGreaterThanEqual:
		return ">="
	default:
		return "?"
	}
}

// TokenKind tags an Any node with the token it wraps.
// It mirrors the scanner's token set for the few tokens that survive
// parsing as bare tree nodes.
type TokenKind uint8

// Token kinds carried by Any nodes.
const (
	TokenOR TokenKind = iota
	TokenUnknown
)

// QueryDocument is the root of a parsed document: a sequence of
// top-level Query and VariableDefinition nodes plus the raw source
// text, which the printer slices for literal spans.
type QueryDocument struct {
	Text  string
	Nodes []Node
	Pos   Span
}

// Query is one search expression: a flat sequence of qualified values,
// bare terms, and OR tokens.
type Query struct {
	Nodes []Node
	Pos   Span
}

// QualifiedValue is a qualifier:value pair, optionally negated.
type QualifiedValue struct {
	Qualifier *Literal
	Value     Node
	Not       bool
	Pos       Span
}

// VariableName is a reference to a declared variable ($name).
type VariableName struct {
	Value string
	Pos   Span
}

// VariableDefinition declares a variable: $name=value.
type VariableDefinition struct {
	Name  *VariableName
	Value *Query
	Pos   Span
}

// Literal is a raw string term.
type Literal struct {
	Value string
	Pos   Span
}

// Date is a calendar date value (YYYY-MM-DD).
type Date struct {
	Value string
	Pos   Span
}

// Number is a numeric value.
type Number struct {
	Value string
	Pos   Span
}

// Range is a value..value range. Either boundary may be nil when the
// range is open on that side (written as *).
type Range struct {
	Open  Node
	Close Node
	Pos   Span
}

// SortBy is a sort directive; Criteria is the requested sort field.
type SortBy struct {
	Criteria Node
	Pos      Span
}

// Compare wraps a value with a relational operator, e.g. >=10.
type Compare struct {
	Op    CompareOp
	Value Node
	Pos   Span
}

// Any is a single token that stands alone in the tree, e.g. the OR
// operator between two queries.
type Any struct {
	Token TokenKind
	Pos   Span
}

// Missing is a parser-inserted placeholder for a syntactically invalid
// region. It carries a ready-made message the validator reports verbatim.
type Missing struct {
	Message string
	Pos     Span
}

func (n *QueryDocument) Kind() Kind      { return KindQueryDocument }
func (n *Query) Kind() Kind              { return KindQuery }
func (n *QualifiedValue) Kind() Kind     { return KindQualifiedValue }
func (n *VariableName) Kind() Kind       { return KindVariableName }
func (n *VariableDefinition) Kind() Kind { return KindVariableDefinition }
func (n *Literal) Kind() Kind            { return KindLiteral }
func (n *Date) Kind() Kind               { return KindDate }
func (n *Number) Kind() Kind             { return KindNumber }
func (n *Range) Kind() Kind              { return KindRange }
func (n *SortBy) Kind() Kind             { return KindSortBy }
func (n *Compare) Kind() Kind            { return KindCompare }
func (n *Any) Kind() Kind                { return KindAny }
func (n *Missing) Kind() Kind            { return KindMissing }

func (n *QueryDocument) Span() Span      { return n.Pos }
func (n *Query) Span() Span              { return n.Pos }
func (n *QualifiedValue) Span() Span     { return n.Pos }
func (n *VariableName) Span() Span       { return n.Pos }
func (n *VariableDefinition) Span() Span { return n.Pos }
func (n *Literal) Span() Span            { return n.Pos }
func (n *Date) Span() Span               { return n.Pos }
func (n *Number) Span() Span             { return n.Pos }
func (n *Range) Span() Span              { return n.Pos }
func (n *SortBy) Span() Span             { return n.Pos }
func (n *Compare) Span() Span            { return n.Pos }
func (n *Any) Span() Span                { return n.Pos }
func (n *Missing) Span() Span            { return n.Pos }

func (n *QueryDocument) node()      {}
func (n *Query) node()              {}
func (n *QualifiedValue) node()     {}
func (n *VariableName) node()       {}
func (n *VariableDefinition) node() {}
func (n *Literal) node()            {}
func (n *Date) node()               {}
func (n *Number) node()             {}
func (n *Range) node()              {}
func (n *SortBy) node()             {}
func (n *Compare) node()            {}
func (n *Any) node()                {}
func (n *Missing) node()            {}
