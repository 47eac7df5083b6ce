package handler

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/parse/v2"
	"github.com/withastro/bbcode/internal/loc"
)

func TestHandlerDiagnostics(t *testing.T) {
	h := NewHandler("first line\n[b]second[/i]", "post.bb")
	h.AppendWarning(&loc.ErrorWithRange{
		Code:  loc.WARNING_ORPHAN_CLOSE_TAG,
		Text:  "Orphan close tag [/i]",
		Range: loc.Range{Loc: loc.Loc{Start: 20}, Len: 4},
	})
	h.AppendError(errors.New("sink closed"))

	assert.True(t, h.HasErrors())
	assert.True(t, h.HasWarnings())

	warnings := h.Warnings()
	require.Len(t, warnings, 1)
	require.NotNil(t, warnings[0].Location)
	assert.Equal(t, "post.bb", warnings[0].Location.File)
	assert.Equal(t, 2, warnings[0].Location.Line)
	assert.Equal(t, 10, warnings[0].Location.Column)
	assert.Equal(t, 4, warnings[0].Location.Length)
	assert.Equal(t, int(loc.WarningType), warnings[0].Severity)
	assert.Equal(t, int(loc.WARNING_ORPHAN_CLOSE_TAG), warnings[0].Code)

	errs := h.Errors()
	require.Len(t, errs, 1)
	assert.Nil(t, errs[0].Location)
	assert.Equal(t, "sink closed", errs[0].Text)

	assert.Len(t, h.Diagnostics(), 2)
	assert.Equal(t, []loc.DiagnosticCode{loc.WARNING_ORPHAN_CLOSE_TAG}, h.Codes())
}

func TestHandlerEmpty(t *testing.T) {
	h := NewHandler("", "empty.bb")
	assert.False(t, h.HasErrors())
	assert.False(t, h.HasWarnings())
	assert.Empty(t, h.Diagnostics())
	assert.Empty(t, h.Codes())
}

func TestHandlerOrder(t *testing.T) {
	h := NewHandler("[b][i]x[/b]", "order.bb")
	h.AppendWarning(&loc.ErrorWithRange{Code: loc.WARNING_MISMATCHED_CLOSE_TAG, Text: "second", Range: loc.Range{Loc: loc.Loc{Start: 7}, Len: 4}})
	h.AppendWarning(nil)
	h.AppendError(errors.New("failed"))
	h.AppendWarning(&loc.ErrorWithRange{Code: loc.WARNING_UNCLOSED_TAG, Text: "third", Range: loc.Range{Loc: loc.Loc{Start: 11}}})

	var texts []string
	for _, msg := range h.Diagnostics() {
		texts = append(texts, msg.Text)
	}
	assert.Equal(t, []string{"failed", "second", "third"}, texts)
	assert.Equal(t, []loc.DiagnosticCode{loc.WARNING_MISMATCHED_CLOSE_TAG, loc.WARNING_UNCLOSED_TAG}, h.Codes())
	assert.Len(t, h.Warnings(), 2)
}

func TestPositionsMatchParsePosition(t *testing.T) {
	source := "one\r\ntwo\rthree\nföö  [b]日本[/b]\n\n[i]x"
	p := newPositions(source)
	for offset := 0; offset <= len(source); offset++ {
		wantLine, wantCol, _ := parse.Position(strings.NewReader(source), offset)
		line, col := p.at(offset)
		assert.Equal(t, wantLine, line, "line at offset %d", offset)
		assert.Equal(t, wantCol, col, "column at offset %d", offset)
	}
}

func TestHandlerDiagnosticsOutOfOrder(t *testing.T) {
	h := NewHandler("[b]\n[i]\n[u]", "order.bb")
	for _, start := range []int{8, 0, 4} {
		h.AppendWarning(&loc.ErrorWithRange{Code: loc.WARNING_UNCLOSED_TAG, Text: "x", Range: loc.Range{Loc: loc.Loc{Start: start}, Len: 3}})
	}
	var lines []int
	for _, msg := range h.Warnings() {
		lines = append(lines, msg.Location.Line)
	}
	assert.Equal(t, []int{3, 1, 2}, lines)
}

func TestHandlerDiagnosticsScale(t *testing.T) {
	const n = 200000
	source := strings.Repeat("[", n)
	h := NewHandler(source, "hostile.bb")
	for i := 0; i < n; i++ {
		h.AppendWarning(&loc.ErrorWithRange{Code: loc.WARNING_INVALID_TAG, Text: "Invalid tag", Range: loc.Range{Loc: loc.Loc{Start: i}, Len: 1}})
	}

	start := time.Now()
	msgs := h.Diagnostics()
	elapsed := time.Since(start)

	require.Len(t, msgs, n)
	assert.Equal(t, 1, msgs[n-1].Location.Line)
	assert.Equal(t, n, msgs[n-1].Location.Column)
	assert.Less(t, elapsed, 10*time.Second, "resolving locations must stay linear in the input")
}
