package bbcode

import (
	"fmt"
	"sort"
)

// ValueRule says whether a tag accepts the `=value` part of [name=value].
type ValueRule uint8

const (
	ValueOptional ValueRule = iota
	ValueRequired
	ValueForbidden
)

func (v ValueRule) String() string {
	switch v {
	case ValueOptional:
		return "optional"
	case ValueRequired:
		return "required"
	case ValueForbidden:
		return "forbidden"
	}
	return "invalid"
}

func (v ValueRule) MarshalText() ([]byte, error) {
	if v > ValueForbidden {
		return nil, fmt.Errorf("invalid value rule %d", v)
	}
	return []byte(v.String()), nil
}

// UnmarshalText accepts "optional", "required" and "forbidden". The empty
// string is optional.
func (v *ValueRule) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "optional":
		*v = ValueOptional
	case "required":
		*v = ValueRequired
	case "forbidden":
		*v = ValueForbidden
	default:
		return fmt.Errorf("invalid value rule %q", text)
	}
	return nil
}

// TagShape describes how the tokenizer treats one known tag name.
type TagShape struct {
	// Void tags never have children or a closing tag. They are emitted as
	// StartTagTokens but never pushed on the tag stack.
	Void bool
	// Raw tags keep their content untokenized up to the matching [/name].
	Raw bool
	// Value constrains the [name=value] form.
	Value ValueRule
}

// TagModel is the static table of known tag names and their shapes.
//
// An open model accepts any well-formed tag name and only uses its table to
// refine known names. A closed model treats names absent from its table as
// literal text. The zero value and a nil *TagModel are both open and empty.
type TagModel struct {
	tags   map[string]TagShape
	closed bool
}

// NewTagModel copies tags into a new model. Names that are not valid tag
// names are ignored, since no input could ever produce them.
func NewTagModel(tags map[string]TagShape, closed bool) *TagModel {
	m := &TagModel{tags: make(map[string]TagShape, len(tags)), closed: closed}
	for name, shape := range tags {
		if ValidName(name) {
			m.tags[name] = shape
		}
	}
	return m
}

// OpenTagModel returns a model that accepts every well-formed name and knows
// no shapes. It is the tokenizer's default.
func OpenTagModel() *TagModel {
	return &TagModel{tags: map[string]TagShape{}}
}

// Closed reports whether unknown names are rejected.
func (m *TagModel) Closed() bool {
	return m != nil && m.closed
}

// Lookup returns the shape registered for name.
func (m *TagModel) Lookup(name string) (TagShape, bool) {
	if m == nil {
		return TagShape{}, false
	}
	shape, ok := m.tags[name]
	return shape, ok
}

// Accepts reports whether name may be tokenized as a tag at all.
func (m *TagModel) Accepts(name string) bool {
	if !ValidName(name) {
		return false
	}
	if !m.Closed() {
		return true
	}
	_, ok := m.tags[name]
	return ok
}

// Names returns the known tag names in sorted order.
func (m *TagModel) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.tags))
	for name := range m.tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsNameByte reports whether c may appear in a tag name. Names are ASCII
// letters, digits, '-' and '_', and are case-sensitive.
func IsNameByte(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '-' || c == '_'
}

// ValidName reports whether name is a non-empty run of name bytes.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !IsNameByte(name[i]) {
			return false
		}
	}
	return true
}
