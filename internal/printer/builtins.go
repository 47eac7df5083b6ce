package printer

import (
	bbcode "github.com/withastro/bbcode/internal"
)

// urlPattern accepts absolute http(s) and mailto URLs, and relative paths
// and fragments that cannot smuggle in a scheme.
const urlPattern = `(?i:https?://|mailto:)[^\s"'<>\\]+|/[^/\s"'<>\\][^\s"'<>\\]*|/|#[^\s"'<>\\]*`

// coreRules are the tags every renderer supports. They are safe for
// untrusted input.
var coreRules = map[string]RenderRule{
	"b":          {Element: "b", Value: bbcode.ValueForbidden},
	"i":          {Element: "i", Value: bbcode.ValueForbidden},
	"u":          {Element: "u", Value: bbcode.ValueForbidden},
	"s":          {Element: "s", Value: bbcode.ValueForbidden},
	"sub":        {Element: "sub", Value: bbcode.ValueForbidden},
	"sup":        {Element: "sup", Value: bbcode.ValueForbidden},
	"kbd":        {Element: "kbd", Value: bbcode.ValueForbidden},
	"center":     {Element: "div", Value: bbcode.ValueForbidden, Attrs: map[string]string{"class": "bb-center"}},
	"h1":         {Element: "h1", Value: bbcode.ValueForbidden},
	"h2":         {Element: "h2", Value: bbcode.ValueForbidden},
	"h3":         {Element: "h3", Value: bbcode.ValueForbidden},
	"h4":         {Element: "h4", Value: bbcode.ValueForbidden},
	"h5":         {Element: "h5", Value: bbcode.ValueForbidden},
	"h6":         {Element: "h6", Value: bbcode.ValueForbidden},
	"quote":      {Element: "blockquote", Attr: "title"},
	"blockquote": {Element: "blockquote", Value: bbcode.ValueForbidden},
	"br":         {Element: "br", Void: true, Value: bbcode.ValueForbidden},
	"hr":         {Element: "hr", Void: true, Value: bbcode.ValueForbidden},
	"code":       {Element: "code", Raw: true, Value: bbcode.ValueForbidden},
	"pre":        {Element: "pre", Raw: true, Value: bbcode.ValueForbidden},
	"noparse":    {Element: "span", Raw: true, Value: bbcode.ValueForbidden},
	"url": {
		Element: "a",
		Value:   bbcode.ValueRequired,
		Attr:    "href",
		Pattern: urlPattern,
		Attrs:   map[string]string{"rel": "nofollow noopener noreferrer"},
	},
	"color": {Element: "span", Value: bbcode.ValueRequired, ClassPrefix: "bb-color-", Pattern: `[A-Za-z]{1,32}`},
}

// CoreRules returns a new table holding the core tag set.
func CoreRules() *RuleTable {
	t, err := NewRuleTable(coreRules)
	if err != nil {
		panic(err)
	}
	return t
}
