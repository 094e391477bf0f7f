// Package engine provides the semantic validator for query documents.
//
// The validator walks a document once, dispatches per node kind, and
// accumulates diagnostics. It never fails: every finding, including
// parser-inserted placeholders, is returned as data in one batch.
package engine

import (
	"fmt"
	"strings"
	"time"

	sv "github.com/searchql/validator"
	"github.com/searchql/validator/ast"
	"github.com/searchql/validator/symbols"
	"github.com/searchql/validator/walker"
)

// Validator validates query documents against a symbol table.
type Validator struct {
	options *sv.Options
	metrics *sv.Metrics
}

// New creates a Validator with the given options.
func New(opts ...sv.Option) *Validator {
	options := sv.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &Validator{
		options: options,
		metrics: sv.NewMetrics(),
	}
}

// Metrics returns the validator's metrics instance.
func (v *Validator) Metrics() *sv.Metrics {
	return v.metrics
}

// Validate walks doc once and returns every semantic finding, in
// document order. doc and table are treated as read-only for the whole
// walk; all mutable state is local to this call.
func (v *Validator) Validate(doc *ast.QueryDocument, table *symbols.Table) []sv.Diagnostic {
	start := time.Now()

	run := &validation{table: table, sortValues: v.options.SortValues}
	walker.Walk(doc, run.visit)

	diags := run.diagnostics
	if v.options.MaxDiagnostics > 0 && len(diags) > v.options.MaxDiagnostics {
		diags = diags[:v.options.MaxDiagnostics]
	}
	if v.options.CollectMetrics {
		v.metrics.RecordValidation(time.Since(start), diags)
	}
	v.options.Logger.Debug("validated document: %d nodes, %d diagnostics", walker.Count(doc), len(diags))
	return diags
}

// validation is the per-call state: the accumulated diagnostics and the
// mutual-exclusion map of the query currently being walked.
type validation struct {
	table       *symbols.Table
	sortValues  []string
	diagnostics []sv.Diagnostic

	// conflicts maps a mutually-exclusive value to the node that
	// registered it. Created fresh at every Query boundary.
	conflicts map[string]ast.Node
}

func (r *validation) add(d sv.Diagnostic) {
	if d.Severity == "" {
		d.Severity = sv.SeverityError
	}
	r.diagnostics = append(r.diagnostics, d)
}

func (r *validation) visit(node, parent ast.Node) bool {
	switch n := node.(type) {
	case *ast.Query:
		// Mutual exclusion is scoped to one query; sibling queries in
		// the same document do not conflict with each other.
		r.conflicts = make(map[string]ast.Node)

	case *ast.QualifiedValue:
		r.checkQualified(n)

	case *ast.VariableName:
		// A variable in a qualifier's value position is checked by the
		// qualified-value rule; the name of a definition declares
		// rather than references.
		if qv, ok := parent.(*ast.QualifiedValue); ok && qv.Value == node {
			return true
		}
		if def, ok := parent.(*ast.VariableDefinition); ok && def.Name == n {
			return true
		}
		if sym, ok := r.table.GetFirst(n.Value); !ok || sym.Kind != symbols.KindUser {
			r.add(sv.Diagnostic{Node: n, Message: "Unknown variable", Code: sv.CodeUnknownVariable})
		}

	case *ast.Range:
		if n.Open != nil && n.Close != nil && n.Open.Kind() != n.Close.Kind() {
			r.add(sv.Diagnostic{
				Node:    n,
				Message: "Range must start and end with equals types",
				Code:    sv.CodeRangeType,
			})
		}

	case *ast.SortBy:
		if lit, ok := n.Criteria.(*ast.Literal); ok && !contains(r.sortValues, lit.Value) {
			r.add(sv.Diagnostic{
				Node:    n.Criteria,
				Message: "Invalid value, expected one of: " + strings.Join(r.sortValues, ", "),
				Code:    sv.CodeSortValue,
			})
		}

	case *ast.VariableDefinition:
		r.checkDefinition(n)

	case *ast.Missing:
		r.add(sv.Diagnostic{Node: n, Message: n.Message, Code: sv.CodeParse})
	}
	return true
}

// checkQualified applies the qualified-value rule chain. Each early
// return means no further rule applies to this node.
func (r *validation) checkQualified(node *ast.QualifiedValue) {
	sym, ok := r.table.GetFirst(node.Qualifier.Value)
	if !ok || sym.Kind != symbols.KindStatic {
		r.add(sv.Diagnostic{
			Node:    node,
			Message: fmt.Sprintf("Unknown qualifier: '%s'", node.Qualifier.Value),
			Code:    sv.CodeUnknownQualifier,
		})
		return
	}

	if len(sym.ValueSets) > 0 {
		r.checkValueSets(node, sym)
		return
	}

	if variable, ok := node.Value.(*ast.VariableName); ok {
		vsym, ok := r.table.GetFirst(variable.Value)
		if !ok || vsym.Kind != symbols.KindUser || vsym.Type != sym.Type {
			r.add(sv.Diagnostic{
				Node:    node.Value,
				Message: "Invalid value, expected " + string(sym.Type),
				Code:    sv.CodeValueType,
			})
		}
		return
	}

	switch sym.Type {
	case symbols.TypeDate:
		if !isDateLike(node.Value) {
			r.add(sv.Diagnostic{
				Node:    node.Value,
				Message: "Invalid value, expected date",
				Code:    sv.CodeValueType,
			})
		}
	case symbols.TypeNumber:
		if !isNumberLike(node.Value) {
			r.add(sv.Diagnostic{
				Node:    node.Value,
				Message: "Invalid value, expected number",
				Code:    sv.CodeValueType,
			})
		}
	}
}

// checkValueSets enforces the qualifier's mutually-exclusive value
// sets against the current query's conflict map.
func (r *validation) checkValueSets(node *ast.QualifiedValue, sym symbols.Symbol) {
	if r.conflicts == nil {
		r.conflicts = make(map[string]ast.Node)
	}
	value := ""
	if lit, ok := node.Value.(*ast.Literal); ok {
		value = lit.Value
	}

	if first, seen := r.conflicts[value]; seen {
		r.add(sv.Diagnostic{
			Node:     node,
			Message:  "Conflicts with mutual exclusive expression",
			Code:     sv.CodeValueConflict,
			Conflict: first,
		})
		return
	}

	for _, set := range sym.ValueSets {
		if !contains(set, value) {
			continue
		}
		// Register every other member of the matched set so a later
		// occurrence conflicts with this node. Repeating the identical
		// value never conflicts.
		for _, other := range set {
			if other != value {
				r.conflicts[other] = node
			}
		}
		return
	}

	r.add(sv.Diagnostic{
		Node:    node.Value,
		Message: "Invalid value, expected one of: " + joinSets(sym.ValueSets),
		Code:    sv.CodeValueType,
	})
}

// isDateLike reports whether node is a date, or a comparison or range
// with a date operand.
func isDateLike(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.Date:
		return true
	case *ast.Compare:
		_, ok := n.Value.(*ast.Date)
		return ok
	case *ast.Range:
		if _, ok := n.Open.(*ast.Date); ok {
			return true
		}
		_, ok := n.Close.(*ast.Date)
		return ok
	default:
		return false
	}
}

// isNumberLike reports whether node is a number, or a comparison or
// range with a number operand.
func isNumberLike(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.Number:
		return true
	case *ast.Compare:
		_, ok := n.Value.(*ast.Number)
		return ok
	case *ast.Range:
		if _, ok := n.Open.(*ast.Number); ok {
			return true
		}
		_, ok := n.Close.(*ast.Number)
		return ok
	default:
		return false
	}
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// joinSets flattens the ordered value sets into one comma-separated
// hint, keeping set order.
func joinSets(sets []symbols.ValueSet) string {
	var parts []string
	for _, set := range sets {
		parts = append(parts, strings.Join(set, ", "))
	}
	return strings.Join(parts, ", ")
}
