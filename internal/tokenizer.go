package bbcode

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/withastro/bbcode/internal/handler"
	"github.com/withastro/bbcode/internal/loc"
)

// A Tokenizer returns a stream of bracket-tag Tokens from an input string.
//
// It is a pull tokenizer: every call to Next scans just enough input to
// produce one token. Nesting is tracked on a capped, heap-backed TagStack,
// so no input can make it recurse or grow without bound. Malformed markup is
// never an error; it is degraded to Text and, when a handler is attached,
// reported as a warning.
type Tokenizer struct {
	input string
	s     *Scanner
	stack *TagStack
	tags  *TagModel

	selfClosing bool

	// tt and tok are the current token. done is set once EndToken has been
	// returned.
	tt   TokenType
	tok  Token
	done bool

	// rawTag is the "code" in "[code]" whose content has not been read yet.
	// If non-empty, the next call to Next returns everything up to the
	// matching "[/code]" as a single text token.
	rawTag string

	handler *handler.Handler
}

type TokenizerOption func(z *Tokenizer)

// TokenizerOptionWithHandler reports every recovered markup error to h.
func TokenizerOptionWithHandler(h *handler.Handler) TokenizerOption {
	return func(z *Tokenizer) {
		z.handler = h
	}
}

// NewTokenizer returns a Tokenizer over input using DefaultConfig.
func NewTokenizer(input string, opts ...TokenizerOption) *Tokenizer {
	z, _ := NewTokenizerWithConfig(input, DefaultConfig(), opts...)
	return z
}

// NewTokenizerWithConfig returns a Tokenizer over input, or an error wrapping
// ErrInvalidConfig when cfg does not validate.
func NewTokenizerWithConfig(input string, cfg Config, opts ...TokenizerOption) (*Tokenizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tags := cfg.Tags
	if tags == nil {
		tags = OpenTagModel()
	}
	z := &Tokenizer{
		input:       input,
		s:           NewScanner(input),
		stack:       NewTagStack(cfg.MaxDepth),
		tags:        tags,
		selfClosing: cfg.SelfClosing,
	}
	for _, opt := range opts {
		opt(z)
	}
	return z, nil
}

// Next scans the next token and returns its type. Once the input is
// exhausted it returns EndToken, and keeps doing so on every later call.
func (z *Tokenizer) Next() TokenType {
	if z.done {
		return EndToken
	}

	if z.rawTag != "" {
		name := z.rawTag
		z.rawTag = ""
		f := z.s.PeekUntil("[/" + name + "]")
		if f.Span.End == len(z.input) {
			z.warn(loc.WARNING_UNTERMINATED_RAW_TEXT, fmt.Sprintf("Raw tag [%s] is never closed", name), loc.Span{Start: f.Span.Start, End: f.Span.Start})
		}
		if f.Span.Len() > 0 {
			return z.text(f)
		}
	}

	f := z.s.Peek()
	switch f.Kind {
	case EOFFragment:
		if z.stack.Depth() > 0 {
			z.warn(loc.WARNING_UNCLOSED_TAG, "Unclosed tags: ["+strings.Join(z.stack.Names(), "], [")+"]", f.Span)
		}
		z.done = true
		z.tt = EndToken
		z.tok = Token{Type: EndToken, Loc: loc.Loc{Start: f.Span.Start}}
		return z.tt
	case TextFragment:
		return z.text(f)
	case UnterminatedFragment:
		z.warn(loc.WARNING_UNTERMINATED_TAG, "Unterminated tag", f.Span)
		return z.text(f)
	}
	return z.readTag(f)
}

// readTag classifies a bracket candidate "[...]" and returns the resulting
// token.
func (z *Tokenizer) readTag(f Fragment) TokenType {
	interior := z.s.Interior(f)
	kind, name, value, hasValue := parseInterior(interior, z.selfClosing)

	switch kind {
	case invalidInterior:
		z.warn(loc.WARNING_INVALID_TAG, fmt.Sprintf("Invalid tag %q", z.s.Text(f.Span)), f.Span)
		return z.bracketAsText(f)

	case closeInterior:
		if z.stack.PopIf(name) {
			return z.tag(EndTagToken, f, name, "", false)
		}
		if top, ok := z.stack.Top(); ok {
			z.warnWithHint(loc.WARNING_MISMATCHED_CLOSE_TAG, fmt.Sprintf("Mismatched close tag: expected [/%s], got [/%s]", top, name), "Tags must be closed innermost first.", f.Span)
		} else {
			z.warn(loc.WARNING_ORPHAN_CLOSE_TAG, fmt.Sprintf("Orphan close tag [/%s]", name), f.Span)
		}
		return z.text(f)
	}

	if !z.tags.Accepts(name) {
		z.warn(loc.WARNING_UNKNOWN_TAG, fmt.Sprintf("Unknown tag [%s]", name), f.Span)
		return z.text(f)
	}
	shape, _ := z.tags.Lookup(name)
	if shape.Value == ValueRequired && !hasValue || shape.Value == ValueForbidden && hasValue {
		z.warn(loc.WARNING_INVALID_TAG_VALUE, fmt.Sprintf("Tag [%s] value is %s", name, shape.Value), f.Span)
		return z.bracketAsText(f)
	}
	if kind == selfClosingInterior {
		return z.tag(SelfClosingTagToken, f, name, value, hasValue)
	}
	if shape.Void {
		return z.tag(StartTagToken, f, name, value, hasValue)
	}
	if !z.stack.Push(name) {
		z.warn(loc.WARNING_MAX_DEPTH_EXCEEDED, fmt.Sprintf("Maximum nesting depth of %d exceeded", z.stack.Max()), f.Span)
		return z.text(f)
	}
	if shape.Raw {
		z.rawTag = name
	}
	return z.tag(StartTagToken, f, name, value, hasValue)
}

// bracketAsText emits only the opening '[' of f as text. The rest of the
// candidate is scanned again as ordinary input by the following calls.
func (z *Tokenizer) bracketAsText(f Fragment) TokenType {
	return z.text(Fragment{Kind: TextFragment, Span: loc.Span{Start: f.Span.Start, End: f.Span.Start + 1}})
}

func (z *Tokenizer) text(f Fragment) TokenType {
	z.s.Consume(f)
	z.tt = TextToken
	z.tok = Token{
		Type: TextToken,
		Data: z.s.Text(f.Span),
		Loc:  loc.Loc{Start: f.Span.Start},
	}
	return z.tt
}

func (z *Tokenizer) tag(tt TokenType, f Fragment, name, value string, hasValue bool) TokenType {
	z.s.Consume(f)
	z.tt = tt
	z.tok = Token{
		Type:     tt,
		Name:     name,
		Value:    value,
		HasValue: hasValue,
		Data:     z.s.Text(f.Span),
		Loc:      loc.Loc{Start: f.Span.Start},
	}
	return z.tt
}

func (z *Tokenizer) warn(code loc.DiagnosticCode, text string, span loc.Span) {
	z.warnWithHint(code, text, "", span)
}

func (z *Tokenizer) warnWithHint(code loc.DiagnosticCode, text, hint string, span loc.Span) {
	if z.handler == nil {
		return
	}
	z.handler.AppendWarning(&loc.ErrorWithRange{
		Code:  code,
		Text:  text,
		Hint:  hint,
		Range: span.Range(),
	})
}

// Token returns the current Token.
func (z *Tokenizer) Token() Token {
	return z.tok
}

// Raw returns the unmodified source text of the current token.
//
// The token stream's raw text partitions the input. There are no overlaps or
// gaps between two consecutive tokens' raw text, so the byte offset of the
// current token is the sum of the lengths of all previous tokens' raw text.
func (z *Tokenizer) Raw() string {
	return z.tok.Data
}

// Err returns io.EOF once Next has returned EndToken, and nil before.
func (z *Tokenizer) Err() error {
	if !z.done {
		return nil
	}
	return io.EOF
}

// All returns the remaining tokens as a lazy sequence. The sequence shares
// the tokenizer's cursor, so it can only be ranged over once.
func (z *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for z.Next() != EndToken {
			if !yield(z.tok) {
				return
			}
		}
	}
}

// Remaining returns the input that has not been tokenized yet.
func (z *Tokenizer) Remaining() string {
	return z.s.Remaining()
}

// Offset returns the byte offset of the cursor.
func (z *Tokenizer) Offset() int {
	return z.s.Pos()
}

// OpenTags returns the names of the currently open tags, outermost first.
func (z *Tokenizer) OpenTags() []string {
	return z.stack.Names()
}

// Depth returns the number of currently open tags.
func (z *Tokenizer) Depth() int {
	return z.stack.Depth()
}

type interiorKind uint8

const (
	invalidInterior interiorKind = iota
	openInterior
	closeInterior
	selfClosingInterior
)

// parseInterior splits the text between '[' and ']' into one of the shapes
// "/name", "name", "name=value" and, when selfClosing is set, "name/" and
// "name=value/".
func parseInterior(interior string, selfClosing bool) (kind interiorKind, name, value string, hasValue bool) {
	if strings.HasPrefix(interior, "/") {
		name = interior[1:]
		if !ValidName(name) {
			return invalidInterior, "", "", false
		}
		return closeInterior, name, "", false
	}

	kind = openInterior
	if selfClosing && strings.HasSuffix(interior, "/") {
		kind = selfClosingInterior
		interior = interior[:len(interior)-1]
	}
	name = interior
	if eq := strings.IndexByte(interior, '='); eq >= 0 {
		name, value, hasValue = interior[:eq], interior[eq+1:], true
	}
	if !ValidName(name) {
		return invalidInterior, "", "", false
	}
	return kind, name, value, hasValue
}
