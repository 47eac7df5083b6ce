package printer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	bbcode "github.com/withastro/bbcode/internal"
	"golang.org/x/net/html/atom"
)

// ErrInvalidRule is wrapped by every error NewRuleTable returns.
var ErrInvalidRule = errors.New("invalid render rule")

// PatternTimeout bounds a single value pattern match.
const PatternTimeout = 50 * time.Millisecond

// RenderRule maps one tag name to an HTML element.
type RenderRule struct {
	// Element is the lowercase HTML element the tag renders as.
	Element string `yaml:"element"`
	// Void rules render without content or end tag, as in <br />.
	Void bool `yaml:"void,omitempty"`
	// Raw rules keep their content untokenized.
	Raw bool `yaml:"raw,omitempty"`
	// Value constrains the [name=value] form.
	Value bbcode.ValueRule `yaml:"value,omitempty"`
	// Attr is the attribute that receives the tag value. When empty the
	// value is dropped.
	Attr string `yaml:"attr,omitempty"`
	// ClassPrefix renders the value as a class instead, prefix followed by
	// the kebab-cased value. It cannot be combined with Attr.
	ClassPrefix string `yaml:"class_prefix,omitempty"`
	// Pattern must match the whole value for it to be used. A tag whose
	// value does not match is rendered as text.
	Pattern string `yaml:"pattern,omitempty"`
	// Attrs are written on every element the rule produces.
	Attrs map[string]string `yaml:"attrs,omitempty"`
}

type rule struct {
	RenderRule
	name    string
	pattern *regexp2.Regexp
	// attrs is Attrs rendered once, in name order.
	attrs string
}

// RuleTable is a validated set of render rules. It is read-only after
// construction and safe for concurrent use.
type RuleTable struct {
	rules map[string]*rule
}

// NewRuleTable validates rules and compiles their patterns. Errors wrap
// ErrInvalidRule and name the first offending tag in name order.
func NewRuleTable(rules map[string]RenderRule) (*RuleTable, error) {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)

	t := &RuleTable{rules: make(map[string]*rule, len(rules))}
	for _, name := range names {
		r, err := compileRule(name, rules[name])
		if err != nil {
			return nil, fmt.Errorf("%w: tag %q: %v", ErrInvalidRule, name, err)
		}
		t.rules[name] = r
	}
	return t, nil
}

func compileRule(name string, rr RenderRule) (*rule, error) {
	if !bbcode.ValidName(name) {
		return nil, errors.New("invalid tag name")
	}
	a := atom.Lookup([]byte(rr.Element))
	switch {
	case a == 0 || a.String() != rr.Element:
		return nil, fmt.Errorf("unknown element %q", rr.Element)
	case deniedElements[a]:
		return nil, fmt.Errorf("element %q is not allowed", rr.Element)
	case rr.Void != voidElements[a]:
		if rr.Void {
			return nil, fmt.Errorf("element %q is not void", rr.Element)
		}
		return nil, fmt.Errorf("element %q is void", rr.Element)
	case rr.Void && rr.Raw:
		return nil, errors.New("a rule cannot be both void and raw")
	case rr.Value > bbcode.ValueForbidden:
		return nil, fmt.Errorf("invalid value rule %d", rr.Value)
	case rr.Attr != "" && rr.ClassPrefix != "":
		return nil, errors.New("attr and class_prefix are exclusive")
	case rr.Attr != "" && !validAttrName(rr.Attr):
		return nil, fmt.Errorf("attribute %q is not allowed", rr.Attr)
	case rr.Attr == "class":
		return nil, errors.New("use class_prefix for class values")
	case urlAttributes[rr.Attr] && rr.Pattern == "":
		return nil, fmt.Errorf("attribute %q needs a pattern", rr.Attr)
	case rr.ClassPrefix != "" && !validClassPrefix(rr.ClassPrefix):
		return nil, fmt.Errorf("invalid class prefix %q", rr.ClassPrefix)
	}

	r := &rule{RenderRule: rr, name: name}
	if rr.Pattern != "" {
		re, err := regexp2.Compile(`\A(?:`+rr.Pattern+`)\z`, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("pattern: %v", err)
		}
		re.MatchTimeout = PatternTimeout
		r.pattern = re
	}

	keys := make([]string, 0, len(rr.Attrs))
	for key := range rr.Attrs {
		if !validAttrName(key) || urlAttributes[key] || key == rr.Attr || key == "class" && rr.ClassPrefix != "" {
			return nil, fmt.Errorf("attribute %q is not allowed", key)
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, key := range keys {
		b.WriteString(" " + key + `="` + escapeText(rr.Attrs[key]) + `"`)
	}
	r.attrs = b.String()
	return r, nil
}

// lookup returns the rule for name, or nil.
func (t *RuleTable) lookup(name string) *rule {
	if t == nil {
		return nil
	}
	return t.rules[name]
}

// Lookup returns the rule registered for name.
func (t *RuleTable) Lookup(name string) (RenderRule, bool) {
	if r := t.lookup(name); r != nil {
		return r.RenderRule, true
	}
	return RenderRule{}, false
}

// Names returns the tag names of the table in sorted order.
func (t *RuleTable) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.rules))
	for name := range t.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rules returns a copy of the table's rules.
func (t *RuleTable) Rules() map[string]RenderRule {
	rules := make(map[string]RenderRule)
	if t == nil {
		return rules
	}
	for name, r := range t.rules {
		rules[name] = r.RenderRule
	}
	return rules
}

// TagModel returns the closed tag model the table renders: tags without a
// rule are tokenized as text.
func (t *RuleTable) TagModel() *bbcode.TagModel {
	shapes := make(map[string]bbcode.TagShape)
	if t != nil {
		for name, r := range t.rules {
			shapes[name] = bbcode.TagShape{Void: r.Void, Raw: r.Raw, Value: r.Value}
		}
	}
	return bbcode.NewTagModel(shapes, true)
}

// accepts reports whether the value part of tok satisfies r.
func (r *rule) accepts(tok bbcode.Token) bool {
	switch {
	case r.Value == bbcode.ValueRequired && !tok.HasValue:
		return false
	case r.Value == bbcode.ValueForbidden && tok.HasValue:
		return false
	case r.pattern == nil || !tok.HasValue:
		return true
	}
	// A match that times out counts as a mismatch.
	ok, err := r.pattern.MatchString(tok.Value)
	return ok && err == nil
}

// open renders the start tag of r for tok.
func (r *rule) open(tok bbcode.Token) string {
	var b strings.Builder
	b.WriteString("<" + r.Element)
	if tok.HasValue {
		switch {
		case r.Attr != "":
			b.WriteString(" " + r.Attr + `="` + escapeText(tok.Value) + `"`)
		case r.ClassPrefix != "":
			if class := classToken(tok.Value); class != "" {
				b.WriteString(` class="` + escapeText(r.ClassPrefix+class) + `"`)
			}
		}
	}
	b.WriteString(r.attrs)
	if r.Void {
		b.WriteString(" />")
	} else {
		b.WriteString(">")
	}
	return b.String()
}

func (r *rule) close() string {
	return "</" + r.Element + ">"
}
