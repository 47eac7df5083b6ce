package bbcode_test

import (
	"fmt"
	"log"

	"github.com/withastro/bbcode"
)

// ExampleRenderString renders untrusted markup with the core tags.
func ExampleRenderString() {
	out, err := bbcode.RenderString(`[b]Hello[/b] <world> [script]x[/script]`, bbcode.CoreRules())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output:
	// <b>Hello</b> &lt;world&gt; [script]x[/script]
}

// ExampleRenderString_unclosed shows that open tags are closed at the end.
func ExampleRenderString_unclosed() {
	out, err := bbcode.RenderString(`[quote][b]unclosed`, bbcode.CoreRules())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output:
	// <blockquote><b>unclosed</b></blockquote>
}

// ExampleNewRuleTable renders with a custom whitelist.
func ExampleNewRuleTable() {
	rules, err := bbcode.NewRuleTable(map[string]bbcode.RenderRule{
		"b":   {Element: "strong"},
		"url": {Element: "a", Attr: "href", Pattern: `https://\S+`},
	})
	if err != nil {
		log.Fatal(err)
	}
	out, err := bbcode.RenderString(`[url=https://x.test][b]go[/b][/url] [i]no[/i]`, rules)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output:
	// <a href="https://x.test"><strong>go</strong></a> [i]no[/i]
}

// ExampleTokenizer walks the token stream.
func ExampleTokenizer() {
	z := bbcode.NewTokenizer(`[b]text[/i][/b]`)
	for tok := range z.All() {
		fmt.Println(tok)
	}
	// Output:
	// StartTag(b)
	// Text("text")
	// Text("[/i]")
	// EndTag(b)
}

// ExampleRenderWithOptions collects diagnostics and turns URLs into links.
func ExampleRenderWithOptions() {
	res, err := bbcode.RenderWithOptions("see https://x.test\n[b]bold[/i]", bbcode.CoreRules(), bbcode.RenderOptions{
		Linkify:  true,
		Filename: "post.bb",
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.HTML)
	for _, d := range res.Diagnostics {
		fmt.Println(d)
	}
	// Output:
	// see <a href="https://x.test" rel="nofollow noopener noreferrer">https://x.test</a>
	// <b>bold[/i]</b>
	// post.bb:2:8: Mismatched close tag: expected [/b], got [/i]
	// post.bb:2:12: Unclosed tags: [b]
}
