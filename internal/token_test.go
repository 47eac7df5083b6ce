package bbcode

import (
	"reflect"
	"testing"
)

func TestTokenizer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{
			"start tag",
			`[b]`,
			[]TokenType{StartTagToken},
		},
		{
			"start tag with value",
			`[url=https://x.test]`,
			[]TokenType{StartTagToken},
		},
		{
			"end tag",
			`[b][/b]`,
			[]TokenType{StartTagToken, EndTagToken},
		},
		{
			"orphan end tag",
			`[/b]`,
			[]TokenType{TextToken},
		},
		{
			"text",
			` `,
			[]TokenType{TextToken},
		},
		{
			"empty",
			``,
			[]TokenType{},
		},
		{
			"unterminated",
			`[b`,
			[]TokenType{TextToken, TextToken},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := make([]TokenType, 0)
			z := NewTokenizer(tt.input)
			var next TokenType
			for {
				next = z.Next()
				if next == EndToken {
					break
				}
				tokens = append(tokens, next)
			}
			if !reflect.DeepEqual(tokens, tt.want) {
				t.Errorf("NewTokenizer() = %v, want %v", tokens, tt.want)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Type: TextToken, Data: "a<b"}, `Text("a<b")`},
		{Token{Type: StartTagToken, Name: "b", Data: "[b]"}, `StartTag(b)`},
		{Token{Type: StartTagToken, Name: "url", Value: "", HasValue: true}, `StartTag(url=)`},
		{Token{Type: EndTagToken, Name: "b"}, `EndTag(b)`},
		{Token{Type: SelfClosingTagToken, Name: "br"}, `SelfClosingTag(br)`},
		{Token{Type: EndToken}, `End`},
		{Token{Type: TokenType(42)}, `Invalid(42)`},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Token.String() = %s, want %s", got, tt.want)
		}
	}
}

func TestTokenSlice(t *testing.T) {
	tokens := []Token{
		{Type: StartTagToken, Name: "b", Data: "[b]"},
		{Type: TextToken, Data: "x", Loc: locAt(3)},
	}
	s := NewTokenSlice(tokens)
	if got := s.Token().Type; got != EndToken {
		t.Errorf("Token() before Next = %v, want End", got)
	}
	got := Collect(s)
	if !reflect.DeepEqual(got, tokens) {
		t.Errorf("Collect() = %v, want %v", got, tokens)
	}
	if s.Next() != EndToken || s.Next() != EndToken {
		t.Error("exhausted TokenSlice must keep returning EndToken")
	}
}
