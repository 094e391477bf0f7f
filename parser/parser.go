// Package parser turns search-query source text into a syntax tree.
//
// The parser is error tolerant: a syntactically invalid region becomes
// a Missing node carrying a ready-made message, so downstream consumers
// (validation, printing) never see a failed parse. Parse always returns
// a document.
package parser

import (
	"github.com/searchql/validator/ast"
	"github.com/searchql/validator/scanner"
)

// sortQualifier is the qualifier name that introduces a sort directive.
const sortQualifier = "sort"

// Parser builds a QueryDocument from a token stream.
type Parser struct {
	text string
	toks []scanner.Token
	pos  int
}

// Parse parses text into a query document. It never fails; malformed
// regions surface as Missing nodes in the tree.
func Parse(text string) *ast.QueryDocument {
	p := &Parser{text: text, toks: scanner.ScanAll(text)}
	return p.parseDocument()
}

func (p *Parser) cur() scanner.Token { return p.toks[p.pos] }

func (p *Parser) peek() scanner.Token {
	if p.pos+1 < len(p.toks) {
		return p.toks[p.pos+1]
	}
	return p.toks[len(p.toks)-1]
}

func (p *Parser) advance() scanner.Token {
	tok := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) value(tok scanner.Token) string {
	return p.text[tok.Start:tok.End]
}

// skipBlank consumes whitespace, newlines, and comments between
// top-level entries.
func (p *Parser) skipBlank() {
	for {
		switch p.cur().Kind {
		case scanner.TokenWhitespace, scanner.TokenNewline, scanner.TokenLineComment:
			p.advance()
		default:
			return
		}
	}
}

// skipSpace consumes whitespace within a line.
func (p *Parser) skipSpace() {
	for p.cur().Kind == scanner.TokenWhitespace {
		p.advance()
	}
}

func (p *Parser) parseDocument() *ast.QueryDocument {
	doc := &ast.QueryDocument{
		Text: p.text,
		Pos:  ast.Span{Start: 0, End: len(p.text)},
	}
	for {
		p.skipBlank()
		if p.cur().Kind == scanner.TokenEOF {
			return doc
		}
		if p.cur().Kind == scanner.TokenVariableName && p.peek().Kind == scanner.TokenEquals {
			doc.Nodes = append(doc.Nodes, p.parseVariableDefinition())
		} else {
			doc.Nodes = append(doc.Nodes, p.parseQuery())
		}
	}
}

// atLineEnd reports whether the current token terminates the line.
func (p *Parser) atLineEnd() bool {
	switch p.cur().Kind {
	case scanner.TokenNewline, scanner.TokenLineComment, scanner.TokenEOF:
		return true
	}
	return false
}

// parseQuery parses one line of query nodes.
func (p *Parser) parseQuery() *ast.Query {
	q := &ast.Query{Pos: ast.Span{Start: p.cur().Start}}
	for {
		p.skipSpace()
		if p.atLineEnd() {
			break
		}
		node := p.parseTopLevel()
		if node != nil {
			q.Nodes = append(q.Nodes, node)
		}
	}
	if len(q.Nodes) > 0 {
		q.Pos.Start = q.Nodes[0].Span().Start
		q.Pos.End = q.Nodes[len(q.Nodes)-1].Span().End
	} else {
		q.Pos.End = q.Pos.Start
	}
	return q
}

// parseTopLevel parses a single node of a query: a qualified value, a
// sort directive, an OR operator, or a bare term.
func (p *Parser) parseTopLevel() ast.Node {
	switch tok := p.cur(); tok.Kind {
	case scanner.TokenOR:
		p.advance()
		return &ast.Any{Token: ast.TokenOR, Pos: span(tok)}

	case scanner.TokenDash:
		// Negation only applies to a qualified value; a stray dash
		// is kept as a literal term.
		if p.peek().Kind == scanner.TokenLiteral {
			p.advance()
			node := p.parseTopLevel()
			if qv, ok := node.(*ast.QualifiedValue); ok {
				qv.Not = true
				qv.Pos.Start = tok.Start
				return qv
			}
			return node
		}
		p.advance()
		return &ast.Literal{Value: "-", Pos: span(tok)}

	case scanner.TokenLiteral:
		if p.peek().Kind == scanner.TokenColon {
			return p.parseQualified()
		}
		return p.parseValue()

	case scanner.TokenColon, scanner.TokenEquals, scanner.TokenUnknown:
		p.advance()
		return &ast.Any{Token: ast.TokenUnknown, Pos: span(tok)}

	default:
		if v := p.parseValue(); v != nil {
			return v
		}
		p.advance()
		return &ast.Any{Token: ast.TokenUnknown, Pos: span(tok)}
	}
}

// parseQualified parses qualifier:value. A sort qualifier becomes a
// SortBy node; anything else a QualifiedValue.
func (p *Parser) parseQualified() ast.Node {
	qtok := p.advance() // qualifier literal
	p.advance()         // colon
	qualifier := &ast.Literal{Value: p.value(qtok), Pos: span(qtok)}

	value := p.parseValueOrMissing()
	pos := ast.Span{Start: qtok.Start, End: value.Span().End}

	if qualifier.Value == sortQualifier {
		return &ast.SortBy{Criteria: value, Pos: pos}
	}
	return &ast.QualifiedValue{Qualifier: qualifier, Value: value, Pos: pos}
}

// parseValueOrMissing parses the value position after a colon. The
// value must follow immediately; whitespace or end of line leaves a
// Missing placeholder.
func (p *Parser) parseValueOrMissing() ast.Node {
	if v := p.parseValue(); v != nil {
		return v
	}
	at := p.cur().Start
	return &ast.Missing{Message: "Expected value", Pos: ast.Span{Start: at, End: at}}
}

// parseValue parses a value: a comparison, a range, or a simple value.
// It returns nil when the current token cannot begin a value.
func (p *Parser) parseValue() ast.Node {
	switch tok := p.cur(); tok.Kind {
	case scanner.TokenLessThan, scanner.TokenLessThanEqual,
		scanner.TokenGreaterThan, scanner.TokenGreaterThanEqual:
		p.advance()
		value := p.parseSimpleValue()
		if value == nil {
			at := p.cur().Start
			value = &ast.Missing{Message: "Expected value", Pos: ast.Span{Start: at, End: at}}
		}
		return &ast.Compare{
			Op:    compareOp(tok.Kind),
			Value: value,
			Pos:   ast.Span{Start: tok.Start, End: value.Span().End},
		}

	case scanner.TokenStar:
		// *..value is a range open on the lower side.
		if p.peek().Kind != scanner.TokenRange {
			return nil
		}
		p.advance() // *
		p.advance() // ..
		close := p.parseSimpleValue()
		if close == nil {
			at := p.cur().Start
			close = &ast.Missing{Message: "Expected value", Pos: ast.Span{Start: at, End: at}}
		}
		return &ast.Range{Close: close, Pos: ast.Span{Start: tok.Start, End: close.Span().End}}
	}

	simple := p.parseSimpleValue()
	if simple == nil {
		return nil
	}
	if p.cur().Kind != scanner.TokenRange {
		return simple
	}
	p.advance() // ..
	r := &ast.Range{Open: simple, Pos: ast.Span{Start: simple.Span().Start}}
	if p.cur().Kind == scanner.TokenStar {
		// value..* is open on the upper side.
		star := p.advance()
		r.Pos.End = star.End
		return r
	}
	if close := p.parseSimpleValue(); close != nil {
		r.Close = close
		r.Pos.End = close.Span().End
		return r
	}
	at := p.cur().Start
	r.Close = &ast.Missing{Message: "Expected value", Pos: ast.Span{Start: at, End: at}}
	r.Pos.End = at
	return r
}

// parseSimpleValue parses a date, number, literal, quoted literal, or
// variable reference. Returns nil when the current token is none of
// those.
func (p *Parser) parseSimpleValue() ast.Node {
	switch tok := p.cur(); tok.Kind {
	case scanner.TokenDate:
		p.advance()
		return &ast.Date{Value: p.value(tok), Pos: span(tok)}
	case scanner.TokenNumber:
		p.advance()
		return &ast.Number{Value: p.value(tok), Pos: span(tok)}
	case scanner.TokenLiteral:
		p.advance()
		return &ast.Literal{Value: p.value(tok), Pos: span(tok)}
	case scanner.TokenQuotedLiteral:
		p.advance()
		return &ast.Literal{Value: unquote(p.value(tok)), Pos: span(tok)}
	case scanner.TokenVariableName:
		p.advance()
		return &ast.VariableName{Value: p.value(tok), Pos: span(tok)}
	default:
		return nil
	}
}

// parseVariableDefinition parses $name=query.
func (p *Parser) parseVariableDefinition() *ast.VariableDefinition {
	ntok := p.advance() // variable name
	p.advance()         // equals
	name := &ast.VariableName{Value: p.value(ntok), Pos: span(ntok)}

	value := p.parseQuery()
	if len(value.Nodes) == 0 {
		at := p.cur().Start
		value.Nodes = append(value.Nodes, &ast.Missing{
			Message: "Expected query",
			Pos:     ast.Span{Start: at, End: at},
		})
	}
	return &ast.VariableDefinition{
		Name:  name,
		Value: value,
		Pos:   ast.Span{Start: ntok.Start, End: value.Pos.End},
	}
}

func compareOp(kind scanner.TokenKind) ast.CompareOp {
	switch kind {
	case scanner.TokenLessThan:
		return ast.OpLessThan
	case scanner.TokenLessThanEqual:
		return ast.OpLessThanEqual
	case scanner.TokenGreaterThanEqual:
		return ast.OpGreaterThanEqual
	default:
		return ast.OpGreaterThan
	}
}

func span(tok scanner.Token) ast.Span {
	return ast.Span{Start: tok.Start, End: tok.End}
}

func unquote(s string) string {
	if len(s) >= 1 && s[0] == '"' {
		s = s[1:]
	}
	if len(s) >= 1 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	return s
}
