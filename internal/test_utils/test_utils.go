package test_utils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"
	"github.com/lithammer/dedent"
	"github.com/pkg/diff"
)

func RemoveNewlines(input string) string {
	return strings.ReplaceAll(input, "\n", "")
}

// Dedent trims surrounding blank space, collapses runs of blank lines to one
// and removes the common indentation.
func Dedent(input string) string {
	input = strings.TrimRight(input, " \n\r")
	input = strings.TrimLeft(input, " \t\r\n")
	return dedent.Dedent(strings.ReplaceAll(input, "\n\n\n", "\n\n"))
}

func ansi(code int) string {
	return fmt.Sprintf("\x1b[%dm", code)
}

// ANSIDiff is cmp.Diff with removed lines in red and added lines in green.
func ANSIDiff(x, y interface{}, opts ...cmp.Option) string {
	d := cmp.Diff(x, y, opts...)
	if d == "" {
		return ""
	}
	lines := strings.Split(d, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "-") {
			lines[i] = ansi(31) + line + ansi(0)
		} else if strings.HasPrefix(line, "+") {
			lines[i] = ansi(32) + line + ansi(0)
		}
	}
	return strings.Join(lines, "\n")
}

// UnifiedDiff returns a line-based unified diff of two multi-line strings,
// or "" when they are equal. It reads better than ANSIDiff for long HTML.
func UnifiedDiff(want, got string) string {
	if want == got {
		return ""
	}
	var b strings.Builder
	if err := diff.Text("want", "got", want, got, &b); err != nil {
		return err.Error()
	}
	return b.String()
}

var snapshotNameReplacer = strings.NewReplacer(
	"#", "_", "<", "_", ">", "_", "(", "_", ")", "_", ":", "_", " ", "_",
	"'", "_", "\"", "_", "@", "_", "`", "_", "+", "_", "[", "_", "]", "_",
	"/", "_", "=", "_",
)

// RedactTestName turns a test case name into a file name for its snapshot.
func RedactTestName(testCaseName string) string {
	return snapshotNameReplacer.Replace(testCaseName)
}

type OutputKind int

const (
	HtmlOutput OutputKind = iota
)

// String is the info string of the output's code fence.
func (k OutputKind) String() string {
	if k == HtmlOutput {
		return "html"
	}
	return ""
}

type SnapshotOptions struct {
	Testing      *testing.T
	TestCaseName string
	Input        string
	Output       string
	Kind         OutputKind
	FolderName   string
}

// MakeSnapshot matches the input and output of a test case against a
// markdown snapshot named after the case.
func MakeSnapshot(options *SnapshotOptions) {
	folderName := options.FolderName
	if folderName == "" {
		folderName = "__snapshots__"
	}
	s := snaps.WithConfig(
		snaps.Filename(RedactTestName(options.TestCaseName)),
		snaps.Dir(folderName),
	)

	var b strings.Builder
	b.WriteString("## Input\n\n```bbcode\n")
	b.WriteString(Dedent(options.Input))
	b.WriteString("\n```\n\n## Output\n\n```")
	b.WriteString(options.Kind.String())
	b.WriteString("\n")
	b.WriteString(Dedent(options.Output))
	b.WriteString("\n```")

	s.MatchSnapshot(options.Testing, b.String())
}
