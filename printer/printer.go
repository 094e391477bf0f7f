// Package printer renders syntax tree nodes back to query text.
//
// Leaf values are sliced out of the document's raw source, so printing
// preserves the user's spelling. Variable references are substituted
// through an optional resolver; unresolved references print empty.
package printer

import (
	"strings"

	"github.com/searchql/validator/ast"
)

// Resolver maps a variable name (including the $ prefix) to its value.
// The second result reports whether the name resolved.
type Resolver func(name string) (string, bool)

// Print renders node as query text. text must be the raw source of the
// document the node came from. resolve may be nil, in which case
// variable references print as written.
func Print(node ast.Node, text string, resolve Resolver) string {
	var sb strings.Builder
	print(&sb, node, text, resolve)
	return sb.String()
}

func print(sb *strings.Builder, node ast.Node, text string, resolve Resolver) {
	switch n := node.(type) {
	case *ast.QueryDocument:
		for i, child := range n.Nodes {
			if i > 0 {
				sb.WriteByte('\n')
			}
			print(sb, child, text, resolve)
		}
	case *ast.Query:
		for i, child := range n.Nodes {
			if i > 0 {
				sb.WriteByte(' ')
			}
			print(sb, child, text, resolve)
		}
	case *ast.QualifiedValue:
		if n.Not {
			sb.WriteByte('-')
		}
		sb.WriteString(n.Qualifier.Value)
		sb.WriteByte(':')
		print(sb, n.Value, text, resolve)
	case *ast.VariableName:
		if resolve != nil {
			value, _ := resolve(n.Value)
			sb.WriteString(value)
		} else {
			sb.WriteString(n.Value)
		}
	case *ast.VariableDefinition:
		sb.WriteString(n.Name.Value)
		sb.WriteByte('=')
		print(sb, n.Value, text, resolve)
	case *ast.Literal:
		sb.WriteString(n.Value)
	case *ast.Date, *ast.Number, *ast.Any:
		sb.WriteString(slice(text, node.Span()))
	case *ast.Range:
		if n.Open != nil {
			print(sb, n.Open, text, resolve)
		} else {
			sb.WriteByte('*')
		}
		sb.WriteString("..")
		if n.Close != nil {
			print(sb, n.Close, text, resolve)
		} else {
			sb.WriteByte('*')
		}
	case *ast.SortBy:
		sb.WriteString("sort:")
		print(sb, n.Criteria, text, resolve)
	case *ast.Compare:
		sb.WriteString(n.Op.String())
		print(sb, n.Value, text, resolve)
	case *ast.Missing:
		// Nothing to print for a placeholder.
	}
}

func slice(text string, span ast.Span) string {
	if span.Start < 0 || span.End > len(text) || span.Start > span.End {
		return ""
	}
	return text[span.Start:span.End]
}
