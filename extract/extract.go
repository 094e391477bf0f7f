// Package extract pulls structured values out of query documents.
//
// It composes the walker and the symbol table as a convenience reader:
// qualifier values are resolved to text (through variables where
// needed) and split into typed records. Malformed entries are dropped
// silently, never surfaced as errors.
package extract

import (
	"iter"
	"strings"

	"github.com/searchql/validator/ast"
	"github.com/searchql/validator/printer"
	"github.com/searchql/validator/symbols"
	"github.com/searchql/validator/walker"
)

// RepoQualifier is the qualifier whose values name repositories.
const RepoQualifier = "repo"

// repoSeparator splits an owner from a repository name.
const repoSeparator = "/"

// RepoInfo is an owner/repository pair extracted from a repo qualifier.
type RepoInfo struct {
	Owner string
	Name  string
}

// String returns the pair as owner/name.
func (r RepoInfo) String() string {
	return r.Owner + repoSeparator + r.Name
}

// Repos returns a lazy sequence of the repositories named by repo
// qualifiers in doc, in document order. Variable references resolve
// through table; unresolved references render empty. Values without a
// separator, or with the separator in first position, are skipped.
//
// Each iteration re-walks the document independently: stopping early
// has no side effects, and restarting reproduces the same sequence for
// unchanged inputs.
func Repos(doc *ast.QueryDocument, table *symbols.Table) iter.Seq[RepoInfo] {
	return func(yield func(RepoInfo) bool) {
		stopped := false
		walker.Walk(doc, func(node, parent ast.Node) bool {
			if stopped {
				return false
			}
			qv, ok := node.(*ast.QualifiedValue)
			if !ok || qv.Qualifier.Value != RepoQualifier {
				return true
			}
			value := resolveValue(qv.Value, doc, table)
			idx := strings.Index(value, repoSeparator)
			if idx <= 0 {
				return true
			}
			if !yield(RepoInfo{Owner: value[:idx], Name: value[idx+len(repoSeparator):]}) {
				stopped = true
				return false
			}
			return true
		})
	}
}

// CollectRepos materializes the sequence eagerly.
func CollectRepos(doc *ast.QueryDocument, table *symbols.Table) []RepoInfo {
	var out []RepoInfo
	for info := range Repos(doc, table) {
		out = append(out, info)
	}
	return out
}

// resolveValue renders a qualifier value to text. A direct variable
// reference resolves to its stored literal; anything else prints from
// the raw source with nested variable references substituted.
func resolveValue(value ast.Node, doc *ast.QueryDocument, table *symbols.Table) string {
	resolve := func(name string) (string, bool) {
		sym, ok := table.GetFirst(name)
		if !ok || sym.Kind != symbols.KindUser {
			return "", false
		}
		return sym.Value, true
	}
	if variable, ok := value.(*ast.VariableName); ok {
		text, _ := resolve(variable.Value)
		return text
	}
	return printer.Print(value, doc.Text, resolve)
}
