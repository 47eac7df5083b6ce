package printer

import (
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	bbcode "github.com/withastro/bbcode/internal"
)

type JSONToken struct {
	Type     string `json:"type"`
	Name     string `json:"name,omitempty"`
	Value    string `json:"value,omitempty"`
	HasValue bool   `json:"hasValue,omitzero"`
	Raw      string `json:"raw"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

var jsonTokenTypes = map[bbcode.TokenType]string{
	bbcode.TextToken:           "text",
	bbcode.StartTagToken:       "start-tag",
	bbcode.EndTagToken:         "end-tag",
	bbcode.SelfClosingTagToken: "self-closing-tag",
}

// ToJSONTokens drains src into its JSON form.
func ToJSONTokens(src bbcode.TokenSource) []JSONToken {
	tokens := make([]JSONToken, 0)
	for src.Next() != bbcode.EndToken {
		tok := src.Token()
		span := tok.Span()
		tokens = append(tokens, JSONToken{
			Type:     jsonTokenTypes[tok.Type],
			Name:     tok.Name,
			Value:    tok.Value,
			HasValue: tok.HasValue,
			Raw:      tok.Data,
			Start:    span.Start,
			End:      span.End,
		})
	}
	return tokens
}

// PrintToJSON writes the tokens of src to w as an indented JSON array. It
// is a debugging aid for inspecting token streams.
func PrintToJSON(src bbcode.TokenSource, w io.Writer) error {
	if err := json.MarshalWrite(w, ToJSONTokens(src), jsontext.WithIndent("  ")); err != nil {
		return &SinkError{Err: err}
	}
	return nil
}
