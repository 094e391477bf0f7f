package engine

import (
	sv "github.com/searchql/validator"
	"github.com/searchql/validator/ast"
	"github.com/searchql/validator/walker"
)

// checkDefinition enforces the definition-local constraints on one
// variable definition's value subtree: a definition must denote a
// single deterministic value, so disjunctions are rejected, and a
// definition must not reference its own name.
//
// TODO: indirect cycles across definitions ($a=$b, $b=$a) are not
// detected; that needs a dependency pass over all definitions in the
// document.
func (r *validation) checkDefinition(def *ast.VariableDefinition) {
	walker.Walk(def.Value, func(node, parent ast.Node) bool {
		switch n := node.(type) {
		case *ast.Any:
			if n.Token == ast.TokenOR {
				r.add(sv.Diagnostic{
					Node:    n,
					Message: "OR is not supported when defining a variable",
					Code:    sv.CodeDefinition,
				})
			}
		case *ast.VariableName:
			if n.Value == def.Name.Value {
				r.add(sv.Diagnostic{
					Node:    n,
					Message: "Cannot reference a variable from its definition",
					Code:    sv.CodeDefinition,
				})
			}
		}
		return true
	})
}
