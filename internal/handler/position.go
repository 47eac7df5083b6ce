package handler

import (
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
)

// positions converts byte offsets of one source into 1-based line and
// column numbers, with the newline rules of parse.Position: \n, \r, \r\n,
// U+2028 and U+2029 end a line and columns count runes. Unlike
// parse.Position it keeps its place, so offsets must be asked for in
// non-decreasing order.
type positions struct {
	in   *parse.Input
	line int
	col  int
}

func newPositions(source string) *positions {
	return &positions{in: parse.NewInputString(source), line: 1}
}

func (p *positions) at(offset int) (line, column int) {
	for p.in.Offset() < offset {
		c := p.in.Peek(0)
		n := 1
		newline := false
		switch {
		case c == '\n':
			newline = true
		case c == '\r':
			newline = true
			if p.in.Peek(1) == '\n' {
				n = 2
			}
		case c >= 0xC0:
			var r rune
			r, n = p.in.PeekRune(0)
			newline = r == '\u2028' || r == '\u2029'
		case c == 0 && p.in.Err() != nil:
			return p.line, p.col + 1
		}
		// An offset inside a multi-byte sequence resolves to its start.
		if n > 1 && offset < p.in.Offset()+n {
			break
		}

		if newline {
			p.line++
			p.col = 0
		} else {
			pos := p.in.Offset()
			p.col += utf8.RuneCount(p.in.Bytes()[pos : pos+n])
		}
		p.in.Move(n)
	}
	return p.line, p.col + 1
}
