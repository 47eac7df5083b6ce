// Package bbcode tokenizes bracket-tag markup such as [b]bold[/b] and
// renders it to sanitized HTML.
//
// Tokenizing never fails: malformed markup is degraded to text. Rendering
// is whitelist driven, so only tags with a RenderRule ever become elements.
package bbcode

import (
	"io"
	"strings"

	bb "github.com/withastro/bbcode/internal"
	"github.com/withastro/bbcode/internal/handler"
	"github.com/withastro/bbcode/internal/loc"
	"github.com/withastro/bbcode/internal/printer"
	"github.com/withastro/bbcode/internal/transform"
)

type (
	Token       = bb.Token
	TokenType   = bb.TokenType
	TokenSource = bb.TokenSource
	Tokenizer   = bb.Tokenizer
	Config      = bb.Config
	TagModel    = bb.TagModel
	TagShape    = bb.TagShape
	ValueRule   = bb.ValueRule
	RenderRule  = printer.RenderRule
	RuleTable   = printer.RuleTable
	SinkError   = printer.SinkError
	Diagnostic  = loc.DiagnosticMessage
)

const (
	EndToken            = bb.EndToken
	TextToken           = bb.TextToken
	StartTagToken       = bb.StartTagToken
	EndTagToken         = bb.EndTagToken
	SelfClosingTagToken = bb.SelfClosingTagToken

	ValueOptional  = bb.ValueOptional
	ValueRequired  = bb.ValueRequired
	ValueForbidden = bb.ValueForbidden

	DefaultMaxDepth = bb.DefaultMaxDepth
)

var (
	ErrInvalidConfig = bb.ErrInvalidConfig
	ErrInvalidRule   = printer.ErrInvalidRule
)

func DefaultConfig() Config {
	return bb.DefaultConfig()
}

// NewTokenizer returns a Tokenizer over input with an open tag model.
func NewTokenizer(input string) *Tokenizer {
	return bb.NewTokenizer(input)
}

func NewTokenizerWithConfig(input string, cfg Config) (*Tokenizer, error) {
	return bb.NewTokenizerWithConfig(input, cfg)
}

func NewTagModel(tags map[string]TagShape, closed bool) *TagModel {
	return bb.NewTagModel(tags, closed)
}

// CoreRules returns the core tag set, which is safe for untrusted input.
func CoreRules() *RuleTable {
	return printer.CoreRules()
}

func NewRuleTable(rules map[string]RenderRule) (*RuleTable, error) {
	return printer.NewRuleTable(rules)
}

// LoadRules reads a rule table from YAML.
func LoadRules(data []byte) (*RuleTable, error) {
	return printer.LoadRules(data)
}

// PrintToHTML renders an arbitrary token stream with rules.
func PrintToHTML(src TokenSource, rules *RuleTable, w io.StringWriter) error {
	return printer.PrintToHTML(src, rules, w)
}

// Render tokenizes input with the tag model of rules and writes the HTML
// to w.
func Render(w io.StringWriter, input string, rules *RuleTable) error {
	_, err := render(w, input, rules, RenderOptions{})
	return err
}

// RenderString is Render into a string.
func RenderString(input string, rules *RuleTable) (string, error) {
	var b strings.Builder
	if err := Render(&b, input, rules); err != nil {
		return "", err
	}
	return b.String(), nil
}

type RenderOptions struct {
	// Config configures the tokenizer. A zero MaxDepth means
	// DefaultMaxDepth and nil Tags means the tag model of the rules.
	Config Config
	// Linkify turns plain-text URLs into [url] tags before rendering.
	Linkify bool
	// Filename is reported in diagnostics.
	Filename string
}

type RenderResult struct {
	HTML        string
	Diagnostics []Diagnostic
}

// RenderWithOptions renders input like RenderString and also reports every
// piece of markup that was degraded to text.
func RenderWithOptions(input string, rules *RuleTable, opts RenderOptions) (RenderResult, error) {
	var b strings.Builder
	h, err := render(&b, input, rules, opts)
	if err != nil {
		return RenderResult{}, err
	}
	return RenderResult{HTML: b.String(), Diagnostics: h.Diagnostics()}, nil
}

func render(w io.StringWriter, input string, rules *RuleTable, opts RenderOptions) (*handler.Handler, error) {
	cfg := opts.Config
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = bb.DefaultMaxDepth
	}
	if cfg.Tags == nil {
		cfg.Tags = rules.TagModel()
	}

	h := handler.NewHandler(input, opts.Filename)
	z, err := bb.NewTokenizerWithConfig(input, cfg, bb.TokenizerOptionWithHandler(h))
	if err != nil {
		return nil, err
	}
	src := transform.Transform(z, transform.TransformOptions{
		Linkify: opts.Linkify,
		Tags:    cfg.Tags,
	})
	return h, printer.PrintToHTML(src, rules, w)
}
