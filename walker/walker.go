// Package walker provides the shared pre-order traversal over query
// syntax trees.
//
// Every tree consumer (validation, extraction, printing helpers) walks
// through this package, so all of them observe the same node set in the
// same order.
package walker

import "github.com/searchql/validator/ast"

// Visitor is called once per node, pre-order. parent is nil for the
// root. Returning false skips the node's children; the walk continues
// with the next sibling.
type Visitor func(node, parent ast.Node) bool

// Walk traverses the subtree rooted at node, invoking visitor for every
// node exactly once. The tree is never mutated.
func Walk(node ast.Node, visitor Visitor) {
	walk(node, nil, visitor)
}

func walk(node, parent ast.Node, visitor Visitor) {
	if node == nil {
		return
	}
	if !visitor(node, parent) {
		return
	}
	switch n := node.(type) {
	case *ast.QueryDocument:
		for _, child := range n.Nodes {
			walk(child, n, visitor)
		}
	case *ast.Query:
		for _, child := range n.Nodes {
			walk(child, n, visitor)
		}
	case *ast.QualifiedValue:
		walk(n.Qualifier, n, visitor)
		walk(n.Value, n, visitor)
	case *ast.VariableDefinition:
		walk(n.Name, n, visitor)
		walk(n.Value, n, visitor)
	case *ast.Range:
		walk(n.Open, n, visitor)
		walk(n.Close, n, visitor)
	case *ast.SortBy:
		walk(n.Criteria, n, visitor)
	case *ast.Compare:
		walk(n.Value, n, visitor)
	case *ast.VariableName, *ast.Literal, *ast.Date, *ast.Number, *ast.Any, *ast.Missing:
		// Leaves.
	}
}

// Count returns the number of nodes in the subtree rooted at node.
func Count(node ast.Node) int {
	n := 0
	Walk(node, func(ast.Node, ast.Node) bool {
		n++
		return true
	})
	return n
}
