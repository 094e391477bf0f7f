// Package symbols provides the symbol table the validator resolves
// names against.
//
// A symbol describes either a built-in qualifier (its expected value
// type, or its mutually-exclusive value sets) or a user-declared
// variable (its inferred type and literal value). Lookup is by name
// only; the table is never iterated by the validator.
package symbols

import (
	"github.com/searchql/validator/ast"
	"github.com/searchql/validator/printer"
)

// ValueType is the scalar type a qualifier expects or a variable holds.
type ValueType string

// Value types.
const (
	TypeString ValueType = "string"
	TypeNumber ValueType = "number"
	TypeDate   ValueType = "date"
)

// ValueSet is a group of qualifier values of which at most one may
// appear per query.
type ValueSet []string

// SymbolKind distinguishes built-in qualifiers from user variables.
type SymbolKind uint8

// Symbol kinds.
const (
	KindStatic SymbolKind = iota
	KindUser
)

// Symbol is one entry in the table.
//
// For a static symbol, either ValueSets is non-empty (an ordered list
// of mutually-exclusive value sets) or Type holds the expected scalar
// type. For a user symbol, Type is the inferred type of the variable's
// definition and Value its rendered literal value.
type Symbol struct {
	Kind      SymbolKind
	Name      string
	Type      ValueType
	ValueSets []ValueSet
	Value     string
}

// Table resolves names to symbols. Insertion order is preserved per
// name.
type Table struct {
	all map[string][]Symbol
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{all: make(map[string][]Symbol)}
}

// Add inserts a symbol under its name, after any existing symbols with
// the same name.
func (t *Table) Add(sym Symbol) {
	t.all[sym.Name] = append(t.all[sym.Name], sym)
}

// GetFirst returns the earliest-inserted symbol bound to name. Built-in
// qualifiers are inserted at construction, so a user variable never
// shadows a static qualifier sharing its name.
func (t *Table) GetFirst(name string) (Symbol, bool) {
	syms := t.all[name]
	if len(syms) == 0 {
		return Symbol{}, false
	}
	return syms[0], true
}

// AddDocument inserts a user symbol for every variable definition in
// doc, in document order. Each symbol carries the inferred value type
// of its definition and the rendered value text, with references to
// earlier variables already substituted.
func (t *Table) AddDocument(doc *ast.QueryDocument) {
	resolve := func(name string) (string, bool) {
		sym, ok := t.GetFirst(name)
		if !ok || sym.Kind != KindUser {
			return "", false
		}
		return sym.Value, true
	}
	for _, node := range doc.Nodes {
		def, ok := node.(*ast.VariableDefinition)
		if !ok {
			continue
		}
		t.Add(Symbol{
			Kind:  KindUser,
			Name:  def.Name.Value,
			Type:  TypeOf(def.Value),
			Value: printer.Print(def.Value, doc.Text, resolve),
		})
	}
}

// TypeOf infers the scalar value type of a node. Dates and numbers keep
// their type through comparisons and ranges; everything else is a
// string.
func TypeOf(node ast.Node) ValueType {
	switch n := node.(type) {
	case *ast.Date:
		return TypeDate
	case *ast.Number:
		return TypeNumber
	case *ast.Compare:
		return TypeOf(n.Value)
	case *ast.Range:
		if n.Open != nil {
			return TypeOf(n.Open)
		}
		if n.Close != nil {
			return TypeOf(n.Close)
		}
		return TypeString
	case *ast.Query:
		if len(n.Nodes) == 1 {
			return TypeOf(n.Nodes[0])
		}
		return TypeString
	default:
		return TypeString
	}
}
