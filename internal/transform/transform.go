package transform

import (
	bbcode "github.com/withastro/bbcode/internal"
)

type TransformOptions struct {
	// StripTags drops every tag token and keeps only text.
	StripTags bool
	// Linkify turns plain-text http(s) URLs into link tags.
	Linkify bool
	// Balance appends end tags for every tag still open at the end of the
	// stream.
	Balance bool
	// LinkTag is the tag Linkify emits. Defaults to "url".
	LinkTag string
	// Tags tells the transforms which tags are raw or void. Nil means none.
	Tags *bbcode.TagModel
}

// Transform wraps src in the transforms enabled by opts. Tags are stripped
// before links are added, and the stream is balanced last.
func Transform(src bbcode.TokenSource, opts TransformOptions) bbcode.TokenSource {
	if opts.StripTags {
		src = StripTags(src)
	}
	if opts.Linkify {
		src = Linkify(src, opts.LinkTag, opts.Tags)
	}
	if opts.Balance && !opts.StripTags {
		src = Balance(src, opts.Tags)
	}
	return src
}

// queue holds synthetic tokens that are handed out before the underlying
// source is advanced again.
type queue struct {
	tokens []bbcode.Token
	tok    bbcode.Token
}

func (q *queue) pop() (bbcode.TokenType, bool) {
	if len(q.tokens) == 0 {
		return bbcode.EndToken, false
	}
	q.tok = q.tokens[0]
	q.tokens = q.tokens[1:]
	return q.tok.Type, true
}

func (q *queue) Token() bbcode.Token {
	return q.tok
}

type stripper struct {
	src bbcode.TokenSource
}

// StripTags returns a source that yields only the text tokens of src.
func StripTags(src bbcode.TokenSource) bbcode.TokenSource {
	return &stripper{src: src}
}

func (s *stripper) Next() bbcode.TokenType {
	for {
		switch tt := s.src.Next(); tt {
		case bbcode.EndToken, bbcode.TextToken:
			return tt
		}
	}
}

func (s *stripper) Token() bbcode.Token {
	return s.src.Token()
}

type balancer struct {
	queue
	src  bbcode.TokenSource
	tags *bbcode.TagModel
	// open is not capped: src already bounds how deep it nests.
	open []string
	done bool
}

// Balance returns a source that yields src unchanged, followed by a
// synthetic end tag for every tag src left open, innermost first.
//
// The synthetic end tags have no source text.
func Balance(src bbcode.TokenSource, tags *bbcode.TagModel) bbcode.TokenSource {
	return &balancer{src: src, tags: tags}
}

func (b *balancer) Next() bbcode.TokenType {
	if tt, ok := b.pop(); ok {
		return tt
	}
	if b.done {
		b.tok = bbcode.Token{Type: bbcode.EndToken, Loc: b.tok.Loc}
		return bbcode.EndToken
	}

	tt := b.src.Next()
	tok := b.src.Token()
	switch tt {
	case bbcode.StartTagToken:
		if shape, _ := b.tags.Lookup(tok.Name); !shape.Void {
			b.open = append(b.open, tok.Name)
		}
	case bbcode.EndTagToken:
		if n := len(b.open); n > 0 && b.open[n-1] == tok.Name {
			b.open = b.open[:n-1]
		}
	case bbcode.EndToken:
		b.done = true
		b.tok = tok
		end := tok.Loc
		for i := len(b.open) - 1; i >= 0; i-- {
			b.tokens = append(b.tokens, bbcode.Token{Type: bbcode.EndTagToken, Name: b.open[i], Loc: end})
		}
		b.open = nil
		return b.Next()
	}
	b.tok = tok
	return tt
}
