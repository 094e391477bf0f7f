package ast

// Position is a 1-based line/column location in a document.
type Position struct {
	Line   int
	Column int
}

// PositionAt converts a byte offset into a 1-based line/column position
// within text. Offsets past the end of text report the final position.
func PositionAt(text string, offset int) Position {
	if offset > len(text) {
		offset = len(text)
	}
	pos := Position{Line: 1, Column: 1}
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}
