package test_utils

import (
	"strings"
	"testing"
)

func TestRedactTestName(t *testing.T) {
	got := RedactTestName("url [url=https://x.test]go[/url]")
	if strings.ContainsAny(got, " []/=:") {
		t.Errorf("RedactTestName left unsafe characters: %q", got)
	}
}

func TestUnifiedDiff(t *testing.T) {
	if d := UnifiedDiff("a\nb\n", "a\nb\n"); d != "" {
		t.Errorf("equal inputs produced a diff:\n%s", d)
	}
	d := UnifiedDiff("a\nb\n", "a\nc\n")
	if !strings.Contains(d, "-b") || !strings.Contains(d, "+c") {
		t.Errorf("unexpected diff:\n%s", d)
	}
}

func TestDedent(t *testing.T) {
	got := Dedent("\n[b]one[/b]\n\n\n[i]two[/i]\n  ")
	if got != "[b]one[/b]\n\n[i]two[/i]" {
		t.Errorf("Dedent() = %q", got)
	}
}

func TestOutputKindString(t *testing.T) {
	for kind, want := range map[OutputKind]string{HtmlOutput: "html", OutputKind(9): ""} {
		if got := kind.String(); got != want {
			t.Errorf("OutputKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
