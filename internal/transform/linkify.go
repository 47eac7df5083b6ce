package transform

import (
	"regexp"

	bbcode "github.com/withastro/bbcode/internal"
)

// urlRegexp matches http/https URLs inside plain text. Brackets never belong
// to a URL, so markup right after a link is left alone.
var urlRegexp = regexp.MustCompile(`https?://[^\s<>"\[\]]+[^\s<>".,;:!?)\[\]]`)

type linkifier struct {
	queue
	src     bbcode.TokenSource
	tags    *bbcode.TagModel
	linkTag string

	// links and raw count the open link and raw tags. Text inside either is
	// passed through untouched.
	links int
	raw   int
}

// Linkify returns a source that splits the text tokens of src so that every
// URL becomes a linkTag start tag, the URL text and an end tag. The start
// tag carries the URL as its value. Text already inside a linkTag or a raw
// tag is not touched.
//
// The synthetic tag tokens have no source text, so a renderer without a rule
// for linkTag renders them as nothing and keeps the URL text.
func Linkify(src bbcode.TokenSource, linkTag string, tags *bbcode.TagModel) bbcode.TokenSource {
	if linkTag == "" {
		linkTag = "url"
	}
	return &linkifier{src: src, tags: tags, linkTag: linkTag}
}

func (l *linkifier) Next() bbcode.TokenType {
	if tt, ok := l.pop(); ok {
		return tt
	}
	tt := l.src.Next()
	tok := l.src.Token()
	switch tt {
	case bbcode.StartTagToken:
		shape, _ := l.tags.Lookup(tok.Name)
		if shape.Void {
			break
		}
		if tok.IsOpen(l.linkTag) {
			l.links++
		}
		if shape.Raw {
			l.raw++
		}
	case bbcode.EndTagToken:
		if tok.IsClose(l.linkTag) && l.links > 0 {
			l.links--
		}
		if shape, _ := l.tags.Lookup(tok.Name); shape.Raw && l.raw > 0 {
			l.raw--
		}
	case bbcode.TextToken:
		if l.links == 0 && l.raw == 0 {
			if l.tokens = l.split(tok); len(l.tokens) > 0 {
				tt, _ = l.pop()
				return tt
			}
		}
	}
	l.tok = tok
	return tt
}

// split cuts tok around every URL it contains. It returns nil when there is
// nothing to link.
func (l *linkifier) split(tok bbcode.Token) []bbcode.Token {
	matches := urlRegexp.FindAllStringIndex(tok.Data, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]bbcode.Token, 0, len(matches)*3+1)
	at := func(offset int) int {
		return tok.Loc.Start + offset
	}
	last := 0
	for _, m := range matches {
		if m[0] > last {
			tokens = append(tokens, textToken(tok.Data[last:m[0]], at(last)))
		}
		url := tok.Data[m[0]:m[1]]
		tokens = append(tokens,
			bbcode.Token{Type: bbcode.StartTagToken, Name: l.linkTag, Value: url, HasValue: true, Loc: locAt(at(m[0]))},
			textToken(url, at(m[0])),
			bbcode.Token{Type: bbcode.EndTagToken, Name: l.linkTag, Loc: locAt(at(m[1]))},
		)
		last = m[1]
	}
	if last < len(tok.Data) {
		tokens = append(tokens, textToken(tok.Data[last:], at(last)))
	}
	return tokens
}
