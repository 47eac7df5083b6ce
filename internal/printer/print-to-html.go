package printer

import (
	"io"

	bbcode "github.com/withastro/bbcode/internal"
)

// element is an entry of the serializer's open element stack.
type element struct {
	name string
	rule *rule
	// literal entries were rendered as text because their value was
	// rejected, so their end tag is rendered as text too.
	literal bool
}

// PrintToHTML renders the tokens of src as HTML to sink.
//
// Only tags with a rule in rules become elements; everything else is
// written as escaped text. Elements still open at the end of src are closed
// innermost first. The only error is a *SinkError, returned as soon as a
// write fails.
func PrintToHTML(src bbcode.TokenSource, rules *RuleTable, sink io.StringWriter) error {
	p := &printer{sink: sink}
	var stack []element

	for p.err == nil {
		tt := src.Next()
		if tt == bbcode.EndToken {
			break
		}
		tok := src.Token()
		switch tt {
		case bbcode.TextToken:
			p.printEscaped(tok.Data)

		case bbcode.StartTagToken, bbcode.SelfClosingTagToken:
			r := rules.lookup(tok.Name)
			if r == nil {
				p.printEscaped(tok.Data)
				continue
			}
			open := !r.Void && tt == bbcode.StartTagToken
			if !r.accepts(tok) {
				p.printEscaped(tok.Data)
				if open {
					stack = append(stack, element{name: tok.Name, literal: true})
				}
				continue
			}
			p.print(r.open(tok))
			switch {
			case open:
				stack = append(stack, element{name: tok.Name, rule: r})
			case !r.Void:
				p.print(r.close())
			}

		case bbcode.EndTagToken:
			if n := len(stack); n > 0 && stack[n-1].name == tok.Name {
				top := stack[n-1]
				stack = stack[:n-1]
				if top.literal {
					p.printEscaped(tok.Data)
				} else {
					p.print(top.rule.close())
				}
				continue
			}
			p.printEscaped(tok.Data)
		}
	}

	for i := len(stack) - 1; i >= 0 && p.err == nil; i-- {
		if !stack[i].literal {
			p.print(stack[i].rule.close())
		}
	}
	return p.err
}
