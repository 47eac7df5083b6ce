package printer

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	bbcode "github.com/withastro/bbcode/internal"
	"golang.org/x/net/html"
)

func genPost(alphabet ...string) gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, len(alphabet)-1).Map(func(i int) string {
		return alphabet[i]
	})).Map(func(parts []string) string {
		return strings.Join(parts, "")
	})
}

func renderString(source string, rules *RuleTable) string {
	cfg := bbcode.DefaultConfig()
	cfg.Tags = rules.TagModel()
	z, err := bbcode.NewTokenizerWithConfig(source, cfg)
	if err != nil {
		panic(err)
	}
	var b strings.Builder
	if err := PrintToHTML(z, rules, &b); err != nil {
		panic(err)
	}
	return b.String()
}

// allowed reports whether every element and attribute in out could have
// been produced by rules.
func allowed(out string, rules *RuleTable) bool {
	elements := map[string]map[string]bool{}
	for _, rr := range rules.Rules() {
		attrs := elements[rr.Element]
		if attrs == nil {
			attrs = map[string]bool{}
			elements[rr.Element] = attrs
		}
		if rr.Attr != "" {
			attrs[rr.Attr] = true
		}
		if rr.ClassPrefix != "" {
			attrs["class"] = true
		}
		for key := range rr.Attrs {
			attrs[key] = true
		}
	}

	z := html.NewTokenizer(strings.NewReader(out))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return true
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			attrs, ok := elements[tok.Data]
			if !ok {
				return false
			}
			for _, attr := range tok.Attr {
				if !attrs[attr.Key] {
					return false
				}
			}
		case html.CommentToken, html.DoctypeToken:
			return false
		}
	}
}

func TestPrinterProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	rules := CoreRules()

	properties.Property("only ruled elements are produced", prop.ForAll(
		func(source string) bool {
			return allowed(renderString(source, rules), rules)
		},
		genPost("[", "]", "/", "=", "b", "url", "script", "color", "code", "quote",
			"<", ">", "\"", "'", "&", "onclick", "javascript:", "https://x.test", " ", "x", "!--"),
	))

	properties.Property("closing open tags does not change the output", prop.ForAll(
		func(source string) bool {
			cfg := bbcode.DefaultConfig()
			cfg.Tags = rules.TagModel()
			z, err := bbcode.NewTokenizerWithConfig(source, cfg)
			if err != nil {
				return false
			}
			bbcode.Collect(z)
			closed := source
			open := z.OpenTags()
			for i := len(open) - 1; i >= 0; i-- {
				closed += "[/" + open[i] + "]"
			}
			return renderString(source, rules) == renderString(closed, rules)
		},
		genPost("[", "]", "/", "b", "i", "quote", "code", "x", " ", "<", "&"),
	))

	properties.TestingRun(t)
}
