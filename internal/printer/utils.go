package printer

import (
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func escapeText(src string) string {
	return html.EscapeString(src)
}

// classToken turns a tag value such as "DarkRed" into a class suffix such
// as "dark-red".
func classToken(value string) string {
	return strcase.ToKebab(strings.TrimSpace(value))
}

// voidElements are the HTML elements that never have content or an end tag.
var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

// deniedElements may never be produced by a rule. They either hold raw
// text the serializer would have to treat differently, or run or load
// active content.
var deniedElements = map[atom.Atom]bool{
	atom.Script:    true,
	atom.Style:     true,
	atom.Textarea:  true,
	atom.Title:     true,
	atom.Xmp:       true,
	atom.Iframe:    true,
	atom.Noembed:   true,
	atom.Noframes:  true,
	atom.Noscript:  true,
	atom.Plaintext: true,
	atom.Template:  true,
	atom.Object:    true,
	atom.Embed:     true,
	atom.Frame:     true,
	atom.Frameset:  true,
	atom.Base:      true,
	atom.Link:      true,
	atom.Meta:      true,
	atom.Form:      true,
	atom.Input:     true,
	atom.Button:    true,
	atom.Svg:       true,
	atom.Math:      true,
	atom.Html:      true,
	atom.Head:      true,
	atom.Body:      true,
}

// urlAttributes must always be constrained by a value pattern.
var urlAttributes = map[string]bool{
	"href":       true,
	"src":        true,
	"cite":       true,
	"action":     true,
	"background": true,
	"poster":     true,
	"srcset":     true,
	"ping":       true,
}

var deniedAttributes = map[string]bool{
	"style":      true,
	"srcdoc":     true,
	"formaction": true,
}

// validAttrName reports whether name is a lowercase attribute name that
// cannot register an event handler.
func validAttrName(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !('a' <= c && c <= 'z' || '0' <= c && c <= '9' || c == '-') {
			return false
		}
	}
	return !strings.HasPrefix(name, "on") && !deniedAttributes[name]
}

func validClassPrefix(prefix string) bool {
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '-' || c == '_') {
			return false
		}
	}
	return prefix != ""
}
