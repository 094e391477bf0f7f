package parser

import (
	"testing"

	"github.com/searchql/validator/ast"
)

func singleQuery(t *testing.T, text string) *ast.Query {
	t.Helper()
	doc := Parse(text)
	if len(doc.Nodes) != 1 {
		t.Fatalf("%q: document has %d nodes; want 1", text, len(doc.Nodes))
	}
	q, ok := doc.Nodes[0].(*ast.Query)
	if !ok {
		t.Fatalf("%q: top-level node is %v; want Query", text, doc.Nodes[0].Kind())
	}
	return q
}

func TestParse_QualifiedValue(t *testing.T) {
	q := singleQuery(t, "label:bug")
	qv, ok := q.Nodes[0].(*ast.QualifiedValue)
	if !ok {
		t.Fatalf("node is %v; want QualifiedValue", q.Nodes[0].Kind())
	}
	if qv.Qualifier.Value != "label" {
		t.Errorf("Qualifier = %q", qv.Qualifier.Value)
	}
	if lit, ok := qv.Value.(*ast.Literal); !ok || lit.Value != "bug" {
		t.Errorf("Value = %#v; want literal bug", qv.Value)
	}
	if qv.Not {
		t.Error("Not = true; want false")
	}
}

func TestParse_NegatedQualifiedValue(t *testing.T) {
	q := singleQuery(t, "-label:bug")
	qv := q.Nodes[0].(*ast.QualifiedValue)
	if !qv.Not {
		t.Error("Not = false; want true")
	}
	if qv.Pos.Start != 0 {
		t.Errorf("span start = %d; want 0 (includes the dash)", qv.Pos.Start)
	}
}

func TestParse_QuotedValueIsUnquoted(t *testing.T) {
	q := singleQuery(t, `reason:"not planned"`)
	qv := q.Nodes[0].(*ast.QualifiedValue)
	if lit, ok := qv.Value.(*ast.Literal); !ok || lit.Value != "not planned" {
		t.Errorf("Value = %#v; want literal %q", qv.Value, "not planned")
	}
}

func TestParse_SortBy(t *testing.T) {
	q := singleQuery(t, "sort:created-desc")
	sb, ok := q.Nodes[0].(*ast.SortBy)
	if !ok {
		t.Fatalf("node is %v; want SortBy", q.Nodes[0].Kind())
	}
	if lit, ok := sb.Criteria.(*ast.Literal); !ok || lit.Value != "created-desc" {
		t.Errorf("Criteria = %#v", sb.Criteria)
	}
}

func TestParse_MissingValueAfterColon(t *testing.T) {
	q := singleQuery(t, "label:")
	qv := q.Nodes[0].(*ast.QualifiedValue)
	m, ok := qv.Value.(*ast.Missing)
	if !ok {
		t.Fatalf("Value is %v; want Missing", qv.Value.Kind())
	}
	if m.Message != "Expected value" {
		t.Errorf("Message = %q", m.Message)
	}
}

func TestParse_ValueMustFollowColonImmediately(t *testing.T) {
	q := singleQuery(t, "label: bug")
	qv := q.Nodes[0].(*ast.QualifiedValue)
	if _, ok := qv.Value.(*ast.Missing); !ok {
		t.Errorf("Value is %v; want Missing (space after colon)", qv.Value.Kind())
	}
	// The detached word remains a bare term.
	if len(q.Nodes) != 2 {
		t.Fatalf("query has %d nodes; want 2", len(q.Nodes))
	}
	if lit, ok := q.Nodes[1].(*ast.Literal); !ok || lit.Value != "bug" {
		t.Errorf("second node = %#v; want literal bug", q.Nodes[1])
	}
}

func TestParse_Compare(t *testing.T) {
	q := singleQuery(t, "comments:>=10")
	qv := q.Nodes[0].(*ast.QualifiedValue)
	cmp, ok := qv.Value.(*ast.Compare)
	if !ok {
		t.Fatalf("Value is %v; want Compare", qv.Value.Kind())
	}
	if cmp.Op != ast.OpGreaterThanEqual {
		t.Errorf("Op = %v; want >=", cmp.Op)
	}
	if _, ok := cmp.Value.(*ast.Number); !ok {
		t.Errorf("operand is %v; want Number", cmp.Value.Kind())
	}
}

func TestParse_Ranges(t *testing.T) {
	q := singleQuery(t, "created:2020-01-01..2020-06-30")
	r := q.Nodes[0].(*ast.QualifiedValue).Value.(*ast.Range)
	if _, ok := r.Open.(*ast.Date); !ok {
		t.Errorf("Open is %T; want Date", r.Open)
	}
	if _, ok := r.Close.(*ast.Date); !ok {
		t.Errorf("Close is %T; want Date", r.Close)
	}

	q = singleQuery(t, "comments:*..10")
	r = q.Nodes[0].(*ast.QualifiedValue).Value.(*ast.Range)
	if r.Open != nil {
		t.Errorf("Open = %#v; want nil", r.Open)
	}
	if _, ok := r.Close.(*ast.Number); !ok {
		t.Errorf("Close is %T; want Number", r.Close)
	}

	q = singleQuery(t, "comments:10..*")
	r = q.Nodes[0].(*ast.QualifiedValue).Value.(*ast.Range)
	if _, ok := r.Open.(*ast.Number); !ok {
		t.Errorf("Open is %T; want Number", r.Open)
	}
	if r.Close != nil {
		t.Errorf("Close = %#v; want nil", r.Close)
	}
}

func TestParse_OR(t *testing.T) {
	q := singleQuery(t, "is:open OR is:closed")
	if len(q.Nodes) != 3 {
		t.Fatalf("query has %d nodes; want 3", len(q.Nodes))
	}
	any, ok := q.Nodes[1].(*ast.Any)
	if !ok || any.Token != ast.TokenOR {
		t.Errorf("middle node = %#v; want OR token", q.Nodes[1])
	}
}

func TestParse_VariableDefinition(t *testing.T) {
	doc := Parse("$repos=repo:acme/widgets")
	def, ok := doc.Nodes[0].(*ast.VariableDefinition)
	if !ok {
		t.Fatalf("top-level node is %v; want VariableDefinition", doc.Nodes[0].Kind())
	}
	if def.Name.Value != "$repos" {
		t.Errorf("Name = %q", def.Name.Value)
	}
	if len(def.Value.Nodes) != 1 {
		t.Fatalf("definition value has %d nodes; want 1", len(def.Value.Nodes))
	}
	if _, ok := def.Value.Nodes[0].(*ast.QualifiedValue); !ok {
		t.Errorf("definition value node is %v; want QualifiedValue", def.Value.Nodes[0].Kind())
	}
}

func TestParse_EmptyDefinitionGetsMissing(t *testing.T) {
	doc := Parse("$a=")
	def := doc.Nodes[0].(*ast.VariableDefinition)
	if len(def.Value.Nodes) != 1 {
		t.Fatalf("definition value has %d nodes; want 1", len(def.Value.Nodes))
	}
	m, ok := def.Value.Nodes[0].(*ast.Missing)
	if !ok || m.Message != "Expected query" {
		t.Errorf("definition value = %#v; want Missing with Expected query", def.Value.Nodes[0])
	}
}

func TestParse_OneQueryPerLine(t *testing.T) {
	doc := Parse("is:open\n\n// comment line\nis:closed")
	if len(doc.Nodes) != 2 {
		t.Fatalf("document has %d nodes; want 2", len(doc.Nodes))
	}
	for _, node := range doc.Nodes {
		if node.Kind() != ast.KindQuery {
			t.Errorf("node = %v; want Query", node.Kind())
		}
	}
}

func TestParse_VariableReferenceInValue(t *testing.T) {
	q := singleQuery(t, "repo:$repos")
	qv := q.Nodes[0].(*ast.QualifiedValue)
	v, ok := qv.Value.(*ast.VariableName)
	if !ok || v.Value != "$repos" {
		t.Errorf("Value = %#v; want variable $repos", qv.Value)
	}
}

func TestParse_DocumentTextRetained(t *testing.T) {
	const text = "is:open"
	doc := Parse(text)
	if doc.Text != text {
		t.Errorf("Text = %q; want %q", doc.Text, text)
	}
}

func TestParse_NeverPanicsOnGarbage(t *testing.T) {
	inputs := []string{
		"", ":", "=", "..", "*", "$", "\"", "::::", "a:b:c",
		"$a=$b=$c", "<", ">=", "label:\nlabel:", "- - -", "OR OR",
	}
	for _, input := range inputs {
		Parse(input) // must not panic
	}
}
