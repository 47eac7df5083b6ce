package bbcode

import (
	"strconv"
	"strings"

	"github.com/withastro/bbcode/internal/loc"
)

// A TokenType is the type of a Token.
type TokenType uint32

const (
	// EndToken means that the input has been fully tokenized.
	EndToken TokenType = iota
	// TextToken means a run of literal text.
	TextToken
	// A StartTagToken looks like [b] or [url=https://example.com].
	StartTagToken
	// An EndTagToken looks like [/b].
	EndTagToken
	// A SelfClosingTagToken looks like [br/]. Only produced when
	// Config.SelfClosing is set.
	SelfClosingTagToken
)

// String returns a string representation of the TokenType.
func (t TokenType) String() string {
	switch t {
	case EndToken:
		return "End"
	case TextToken:
		return "Text"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case SelfClosingTagToken:
		return "SelfClosingTag"
	}
	return "Invalid(" + strconv.Itoa(int(t)) + ")"
}

// A Token consists of a TokenType, the tag Name and Value for tag tokens,
// and Data: the exact source text the token was produced from. Data is a
// substring of the tokenizer's input, never a copy, so concatenating the
// Data of every token in order reproduces the input.
type Token struct {
	Type     TokenType
	Name     string
	Value    string
	HasValue bool
	Data     string
	Loc      loc.Loc
}

// Span returns the byte range of the token's source text.
func (t Token) Span() loc.Span {
	return loc.Span{Start: t.Loc.Start, End: t.Loc.Start + len(t.Data)}
}

// tagString returns a string representation of a tag Token's Name and Value.
func (t Token) tagString() string {
	if !t.HasValue {
		return t.Name
	}
	return t.Name + "=" + t.Value
}

// String returns a debugging representation of the Token, such as
// Text("hi") or StartTag(url=https://x.test).
func (t Token) String() string {
	switch t.Type {
	case EndToken:
		return "End"
	case TextToken:
		return "Text(" + strconv.Quote(t.Data) + ")"
	case StartTagToken, EndTagToken, SelfClosingTagToken:
		return t.Type.String() + "(" + t.tagString() + ")"
	}
	return "Invalid(" + strconv.Itoa(int(t.Type)) + ")"
}

// IsOpen reports whether t opens the tag name.
func (t Token) IsOpen(name string) bool {
	return t.Type == StartTagToken && t.Name == name
}

// IsClose reports whether t closes the tag name.
func (t Token) IsClose(name string) bool {
	return t.Type == EndTagToken && t.Name == name
}

// TokenSource is anything that yields tokens one at a time in the manner of
// a Tokenizer: Next advances and reports the type of the new current token,
// returning EndToken once exhausted, and Token returns the current token.
type TokenSource interface {
	Next() TokenType
	Token() Token
}

// TokenSlice replays a fixed list of tokens as a TokenSource.
type TokenSlice struct {
	tokens []Token
	i      int
}

func NewTokenSlice(tokens []Token) *TokenSlice {
	return &TokenSlice{tokens: tokens, i: -1}
}

func (s *TokenSlice) Next() TokenType {
	if s.i < len(s.tokens) {
		s.i++
	}
	if s.i >= len(s.tokens) {
		return EndToken
	}
	return s.tokens[s.i].Type
}

func (s *TokenSlice) Token() Token {
	if s.i < 0 || s.i >= len(s.tokens) {
		return Token{Type: EndToken}
	}
	return s.tokens[s.i]
}

// Collect drains src and returns every token it yields.
func Collect(src TokenSource) []Token {
	tokens := make([]Token, 0)
	for src.Next() != EndToken {
		tokens = append(tokens, src.Token())
	}
	return tokens
}

// Types returns the TokenType of each token, which is convenient when
// comparing token streams in tests and diagnostics.
func Types(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

// Dump renders tokens as a comma separated list of Token.String values.
func Dump(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, ", ")
}
