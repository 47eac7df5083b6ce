package handler

import (
	"errors"
	"sort"

	"github.com/withastro/bbcode/internal/loc"
)

type entry struct {
	severity loc.DiagnosticSeverity
	err      error
}

// Handler collects the diagnostics reported while tokenizing one input.
// Entries keep the order in which they were appended.
type Handler struct {
	sourcetext string
	filename   string
	entries    []entry
}

func NewHandler(sourcetext string, filename string) *Handler {
	return &Handler{
		sourcetext: sourcetext,
		filename:   filename,
	}
}

func (h *Handler) append(severity loc.DiagnosticSeverity, err error) {
	if err == nil {
		return
	}
	h.entries = append(h.entries, entry{severity: severity, err: err})
}

func (h *Handler) has(severity loc.DiagnosticSeverity) bool {
	for _, e := range h.entries {
		if e.severity == severity {
			return true
		}
	}
	return false
}

func (h *Handler) HasErrors() bool {
	return h.has(loc.ErrorType)
}

func (h *Handler) HasWarnings() bool {
	return h.has(loc.WarningType)
}

func (h *Handler) AppendError(err error) {
	h.append(loc.ErrorType, err)
}

func (h *Handler) AppendWarning(err error) {
	h.append(loc.WarningType, err)
}

func (h *Handler) messages(keep func(loc.DiagnosticSeverity) bool) []loc.DiagnosticMessage {
	kept := make([]entry, 0, len(h.entries))
	for _, e := range h.entries {
		if keep(e.severity) {
			kept = append(kept, e)
		}
	}
	locations := h.locate(kept)
	msgs := make([]loc.DiagnosticMessage, len(kept))
	for i, e := range kept {
		msgs[i] = toMessage(e.severity, e.err, locations[i])
	}
	return msgs
}

// locate resolves the start of every ranged entry. Offsets are visited in
// increasing order, so the source is walked once however many entries
// there are.
func (h *Handler) locate(entries []entry) []*loc.DiagnosticLocation {
	type pending struct {
		index, offset, length int
	}
	var todo []pending
	for i, e := range entries {
		var rangedError *loc.ErrorWithRange
		if errors.As(e.err, &rangedError) {
			todo = append(todo, pending{i, rangedError.Range.Loc.Start, rangedError.Range.Len})
		}
	}
	sort.SliceStable(todo, func(a, b int) bool { return todo[a].offset < todo[b].offset })

	locations := make([]*loc.DiagnosticLocation, len(entries))
	p := newPositions(h.sourcetext)
	for _, d := range todo {
		line, column := 0, 0
		if d.offset >= 0 && d.offset <= len(h.sourcetext) {
			line, column = p.at(d.offset)
		}
		locations[d.index] = &loc.DiagnosticLocation{
			File:   h.filename,
			Line:   line,
			Column: column,
			Length: d.length,
		}
	}
	return locations
}

func (h *Handler) Errors() []loc.DiagnosticMessage {
	return h.messages(func(s loc.DiagnosticSeverity) bool { return s == loc.ErrorType })
}

func (h *Handler) Warnings() []loc.DiagnosticMessage {
	return h.messages(func(s loc.DiagnosticSeverity) bool { return s == loc.WarningType })
}

// Diagnostics returns every collected entry, errors first, then the rest in
// input order.
func (h *Handler) Diagnostics() []loc.DiagnosticMessage {
	msgs := h.Errors()
	return append(msgs, h.messages(func(s loc.DiagnosticSeverity) bool { return s != loc.ErrorType })...)
}

// Codes returns the diagnostic code of every ranged warning, in the order
// they were appended.
func (h *Handler) Codes() []loc.DiagnosticCode {
	codes := make([]loc.DiagnosticCode, 0, len(h.entries))
	for _, e := range h.entries {
		var rangedError *loc.ErrorWithRange
		if e.severity == loc.WarningType && errors.As(e.err, &rangedError) {
			codes = append(codes, rangedError.Code)
		}
	}
	return codes
}

func toMessage(severity loc.DiagnosticSeverity, err error, location *loc.DiagnosticLocation) loc.DiagnosticMessage {
	var rangedError *loc.ErrorWithRange
	if location == nil || !errors.As(err, &rangedError) {
		return loc.DiagnosticMessage{Severity: int(severity), Text: err.Error()}
	}
	message := rangedError.ToMessage(location)
	message.Severity = int(severity)
	return message
}
