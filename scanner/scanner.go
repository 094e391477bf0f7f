// Package scanner tokenizes search-query source text.
//
// The scanner is a plain hand-rolled byte scanner. It never fails:
// characters that fit no token are emitted as TokenUnknown and left for
// the parser to recover from.
package scanner

import "regexp"

// TokenKind identifies a token type.
type TokenKind uint8

// Token kinds.
const (
	TokenEOF TokenKind = iota
	TokenWhitespace
	TokenNewline
	TokenLineComment
	TokenLiteral
	TokenQuotedLiteral
	TokenVariableName
	TokenNumber
	TokenDate
	TokenColon
	TokenDash
	TokenRange
	TokenStar
	TokenEquals
	TokenLessThan
	TokenLessThanEqual
	TokenGreaterThan
	TokenGreaterThanEqual
	TokenOR
	TokenUnknown
)

// String returns a short name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenWhitespace:
		return "Whitespace"
	case TokenNewline:
		return "Newline"
	case TokenLineComment:
		return "LineComment"
	case TokenLiteral:
		return "Literal"
	case TokenQuotedLiteral:
		return "QuotedLiteral"
	case TokenVariableName:
		return "VariableName"
	case TokenNumber:
		return "Number"
	case TokenDate:
		return "Date"
	case TokenColon:
		return "Colon"
	case TokenDash:
		return "Dash"
	case TokenRange:
		return "Range"
	case TokenStar:
		return "Star"
	case TokenEquals:
		return "Equals"
	case TokenLessThan:
		return "LessThan"
	case TokenLessThanEqual:
		return "LessThanEqual"
	case TokenGreaterThan:
		return "GreaterThan"
	case TokenGreaterThanEqual:
		return "GreaterThanEqual"
	case TokenOR:
		return "OR"
	default:
		return "Unknown"
	}
}

// Token is a single lexical token. Start and End are byte offsets into
// the scanned text; the token's value is text[Start:End].
type Token struct {
	Kind  TokenKind
	Start int
	End   int
}

// dateRe matches a calendar date at the scan position.
var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// Scanner produces tokens from a query document.
type Scanner struct {
	text string
	pos  int
}

// New creates a scanner over text.
func New(text string) *Scanner {
	return &Scanner{text: text}
}

// Value returns the source text of a token.
func (s *Scanner) Value(tok Token) string {
	return s.text[tok.Start:tok.End]
}

// ScanAll returns every token in the text, terminated by a TokenEOF.
func ScanAll(text string) []Token {
	s := New(text)
	var toks []Token
	for {
		tok := s.Next()
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks
		}
	}
}

// Next returns the next token. After the end of input it keeps
// returning TokenEOF.
func (s *Scanner) Next() Token {
	start := s.pos
	if s.pos >= len(s.text) {
		return Token{Kind: TokenEOF, Start: start, End: start}
	}

	c := s.text[s.pos]
	switch {
	case c == '\n':
		s.pos++
		return s.tok(TokenNewline, start)
	case c == '\r':
		s.pos++
		if s.pos < len(s.text) && s.text[s.pos] == '\n' {
			s.pos++
		}
		return s.tok(TokenNewline, start)
	case c == ' ' || c == '\t':
		for s.pos < len(s.text) && (s.text[s.pos] == ' ' || s.text[s.pos] == '\t') {
			s.pos++
		}
		return s.tok(TokenWhitespace, start)
	case c == '/' && s.peek(1) == '/':
		for s.pos < len(s.text) && s.text[s.pos] != '\n' && s.text[s.pos] != '\r' {
			s.pos++
		}
		return s.tok(TokenLineComment, start)
	case c == '"':
		return s.scanQuoted(start)
	case c == '$':
		return s.scanVariable(start)
	case c == ':':
		s.pos++
		return s.tok(TokenColon, start)
	case c == '.' && s.peek(1) == '.':
		s.pos += 2
		return s.tok(TokenRange, start)
	case c == '*':
		s.pos++
		return s.tok(TokenStar, start)
	case c == '=':
		s.pos++
		return s.tok(TokenEquals, start)
	case c == '<':
		s.pos++
		if s.pos < len(s.text) && s.text[s.pos] == '=' {
			s.pos++
			return s.tok(TokenLessThanEqual, start)
		}
		return s.tok(TokenLessThan, start)
	case c == '>':
		s.pos++
		if s.pos < len(s.text) && s.text[s.pos] == '=' {
			s.pos++
			return s.tok(TokenGreaterThanEqual, start)
		}
		return s.tok(TokenGreaterThan, start)
	case c == '-':
		s.pos++
		return s.tok(TokenDash, start)
	case c >= '0' && c <= '9':
		return s.scanNumeric(start)
	default:
		return s.scanLiteral(start)
	}
}

func (s *Scanner) tok(kind TokenKind, start int) Token {
	return Token{Kind: kind, Start: start, End: s.pos}
}

func (s *Scanner) peek(ahead int) byte {
	if s.pos+ahead >= len(s.text) {
		return 0
	}
	return s.text[s.pos+ahead]
}

// scanQuoted consumes a double-quoted literal. An unterminated quote
// runs to the end of the line.
func (s *Scanner) scanQuoted(start int) Token {
	s.pos++ // opening quote
	for s.pos < len(s.text) {
		c := s.text[s.pos]
		if c == '\n' || c == '\r' {
			break
		}
		s.pos++
		if c == '"' {
			break
		}
	}
	return s.tok(TokenQuotedLiteral, start)
}

// scanVariable consumes $name. A bare $ is an unknown token.
func (s *Scanner) scanVariable(start int) Token {
	s.pos++ // $
	n := 0
	for s.pos < len(s.text) && isIdentByte(s.text[s.pos]) {
		s.pos++
		n++
	}
	if n == 0 {
		return s.tok(TokenUnknown, start)
	}
	return s.tok(TokenVariableName, start)
}

// scanNumeric consumes a date or a number. A date wins when the scan
// position matches YYYY-MM-DD exactly.
func (s *Scanner) scanNumeric(start int) Token {
	if m := dateRe.FindString(s.text[s.pos:]); m != "" {
		s.pos += len(m)
		return s.tok(TokenDate, start)
	}
	for s.pos < len(s.text) && s.text[s.pos] >= '0' && s.text[s.pos] <= '9' {
		s.pos++
	}
	return s.tok(TokenNumber, start)
}

// scanLiteral consumes a bare word. Literals run until whitespace, a
// newline, a colon, or a quote; dashes and dots inside a word belong to
// the word (label names like in-progress, versions like v1.2).
func (s *Scanner) scanLiteral(start int) Token {
	for s.pos < len(s.text) {
		c := s.text[s.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ':' || c == '"' {
			break
		}
		s.pos++
	}
	if s.pos == start {
		s.pos++
		return s.tok(TokenUnknown, start)
	}
	if s.text[start:s.pos] == "OR" {
		return s.tok(TokenOR, start)
	}
	return s.tok(TokenLiteral, start)
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
