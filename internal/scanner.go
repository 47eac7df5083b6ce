package bbcode

import (
	"strconv"
	"strings"

	"github.com/withastro/bbcode/internal/loc"
)

// A FragmentKind classifies a raw lexical unit found by the Scanner.
type FragmentKind uint8

const (
	// EOFFragment means the cursor is at the end of the input.
	EOFFragment FragmentKind = iota
	// TextFragment is a run of bytes up to the next '[' or end of input.
	TextFragment
	// BracketFragment is a '[' ... ']' candidate with no '[' inside.
	BracketFragment
	// UnterminatedFragment is a lone '[' that reaches another '[' or the
	// end of input before any ']'. Its span covers only the '['.
	UnterminatedFragment
)

func (k FragmentKind) String() string {
	switch k {
	case EOFFragment:
		return "EOF"
	case TextFragment:
		return "Text"
	case BracketFragment:
		return "Bracket"
	case UnterminatedFragment:
		return "Unterminated"
	}
	return "Invalid(" + strconv.Itoa(int(k)) + ")"
}

// Fragment is a lexical unit with no semantic judgment attached.
type Fragment struct {
	Kind FragmentKind
	Span loc.Span
}

// Scanner is a forward-only cursor over an input string. Peek classifies
// the fragment at the cursor without moving; the cursor is only moved
// forward, by Consume.
type Scanner struct {
	src string
	pos int
}

func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Pos returns the cursor's byte offset.
func (s *Scanner) Pos() int {
	return s.pos
}

// EOF reports whether the cursor has reached the end of the input.
func (s *Scanner) EOF() bool {
	return s.pos >= len(s.src)
}

// Remaining returns the input that has not been consumed yet.
func (s *Scanner) Remaining() string {
	return s.src[s.pos:]
}

// Text returns the source text of span.
func (s *Scanner) Text(span loc.Span) string {
	return s.src[span.Start:span.End]
}

// Interior returns the bytes between the brackets of a BracketFragment.
func (s *Scanner) Interior(f Fragment) string {
	return s.src[f.Span.Start+1 : f.Span.End-1]
}

// Peek classifies the fragment starting at the cursor.
func (s *Scanner) Peek() Fragment {
	start := s.pos
	if start >= len(s.src) {
		return Fragment{Kind: EOFFragment, Span: loc.Span{Start: start, End: start}}
	}
	if s.src[start] != '[' {
		end := len(s.src)
		if i := strings.IndexByte(s.src[start:], '['); i >= 0 {
			end = start + i
		}
		return Fragment{Kind: TextFragment, Span: loc.Span{Start: start, End: end}}
	}
	i := strings.IndexAny(s.src[start+1:], "[]")
	if i < 0 || s.src[start+1+i] == '[' {
		return Fragment{Kind: UnterminatedFragment, Span: loc.Span{Start: start, End: start + 1}}
	}
	return Fragment{Kind: BracketFragment, Span: loc.Span{Start: start, End: start + 1 + i + 1}}
}

// PeekUntil returns the text fragment from the cursor up to (not including)
// the next occurrence of closer, or up to the end of input when there is
// none. It is used for raw tag content, which is never tokenized.
func (s *Scanner) PeekUntil(closer string) Fragment {
	start := s.pos
	if start >= len(s.src) {
		return Fragment{Kind: EOFFragment, Span: loc.Span{Start: start, End: start}}
	}
	end := len(s.src)
	if i := strings.Index(s.src[start:], closer); i >= 0 {
		end = start + i
	}
	return Fragment{Kind: TextFragment, Span: loc.Span{Start: start, End: end}}
}

// Consume moves the cursor to the end of f. Fragments that end at or before
// the cursor leave it untouched.
func (s *Scanner) Consume(f Fragment) {
	if f.Span.End > s.pos {
		s.pos = f.Span.End
	}
}

