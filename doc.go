// Package searchvalidator validates documents written in a small
// search-query language (qualifier:value pairs, variables, ranges,
// dates, sort directives, boolean OR) and reports every semantic
// finding in a single pass, suitable for live editor diagnostics.
//
// # Quick Start
//
//	import (
//	    sv "github.com/searchql/validator"
//	    "github.com/searchql/validator/engine"
//	    "github.com/searchql/validator/parser"
//	    "github.com/searchql/validator/symbols"
//	)
//
//	doc := parser.Parse("repo:acme/widgets is:open sort:created-desc")
//	table := symbols.NewGitHubTable()
//	table.AddDocument(doc)
//
//	v := engine.New()
//	for _, d := range v.Validate(doc, table) {
//	    fmt.Println(d)
//	}
//
// Validation never fails: malformed input surfaces as Missing nodes in
// the parsed tree, and the validator reports those like any other
// diagnostic. All findings come back as one batch per call.
//
// # Architecture
//
//   - scanner and parser produce an error-tolerant syntax tree
//   - walker is the single pre-order traversal primitive all tree
//     consumers share
//   - symbols resolves qualifier and variable names
//   - engine walks a document once and accumulates diagnostics
//   - extract pulls structured owner/repo values out of a document
//     through the same walker and symbol table
package searchvalidator
