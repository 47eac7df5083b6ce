package bbcode

import (
	"strings"
)

// PrintToSource writes the source text of every token in src to buf. For a
// Tokenizer this reproduces its input exactly.
func PrintToSource(buf *strings.Builder, src TokenSource) {
	for src.Next() != EndToken {
		buf.WriteString(src.Token().Data)
	}
}

// PrintToMarkup writes tokens back as bracket markup built from their
// Name and Value rather than their source text. Synthetic tokens produced by
// transforms have no exact source, so this is how a transformed stream is
// turned back into markup.
func PrintToMarkup(buf *strings.Builder, src TokenSource) {
	for src.Next() != EndToken {
		tok := src.Token()
		switch tok.Type {
		case TextToken:
			buf.WriteString(tok.Data)
		case StartTagToken:
			buf.WriteString("[" + tok.tagString() + "]")
		case SelfClosingTagToken:
			buf.WriteString("[" + tok.tagString() + "/]")
		case EndTagToken:
			buf.WriteString("[/" + tok.Name + "]")
		}
	}
}
