package printer

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/searchql/validator/parser"
)

func TestPrint_RoundTrip(t *testing.T) {
	cases := []string{
		"label:bug",
		"-label:bug",
		"is:open OR is:closed",
		"created:2020-01-01..2020-06-30",
		"comments:*..10",
		"comments:10..*",
		"comments:>=10",
		"sort:created-desc",
		"$a=label:bug",
	}
	for _, text := range cases {
		doc := parser.Parse(text)
		if got := Print(doc, doc.Text, nil); got != text {
			t.Errorf("Print(%q) = %q", text, got)
		}
	}
}

func TestPrint_NormalizesWhitespace(t *testing.T) {
	doc := parser.Parse("is:open    label:bug")
	if got := Print(doc, doc.Text, nil); got != "is:open label:bug" {
		t.Errorf("Print = %q", got)
	}
}

func TestPrint_SubstitutesVariables(t *testing.T) {
	doc := parser.Parse("repo:$repos")
	resolve := func(name string) (string, bool) {
		if name == "$repos" {
			return "acme/widgets", true
		}
		return "", false
	}
	if got := Print(doc, doc.Text, resolve); got != "repo:acme/widgets" {
		t.Errorf("Print = %q", got)
	}
}

func TestPrint_UnresolvedVariableIsEmpty(t *testing.T) {
	doc := parser.Parse("repo:$nope")
	resolve := func(string) (string, bool) { return "", false }
	if got := Print(doc, doc.Text, resolve); got != "repo:" {
		t.Errorf("Print = %q", got)
	}
}

func TestPrint_NilResolverKeepsVariableName(t *testing.T) {
	doc := parser.Parse("repo:$repos")
	if got := Print(doc, doc.Text, nil); got != "repo:$repos" {
		t.Errorf("Print = %q", got)
	}
}

func TestPrint_MissingPrintsNothing(t *testing.T) {
	doc := parser.Parse("label:")
	if got := Print(doc, doc.Text, nil); got != "label:" {
		t.Errorf("Print = %q", got)
	}
}

func TestPrint_QuotedLiteralUnquoted(t *testing.T) {
	doc := parser.Parse(`reason:"not planned"`)
	if got := Print(doc, doc.Text, nil); got != "reason:not planned" {
		t.Errorf("Print = %q", got)
	}
}

func TestPrint_Golden(t *testing.T) {
	const text = "$team=assignee:octocat\n" +
		"repo:acme/widgets is:open $team sort:created-desc\n" +
		"created:2020-01-01..* comments:>=10 OR label:bug"
	doc := parser.Parse(text)
	resolve := func(name string) (string, bool) {
		if name == "$team" {
			return "assignee:octocat", true
		}
		return "", false
	}
	g := goldie.New(t)
	g.Assert(t, "document", []byte(Print(doc, doc.Text, resolve)))
}
