package loc

import "fmt"

type DiagnosticSeverity int

const (
	ErrorType       DiagnosticSeverity = 1
	WarningType     DiagnosticSeverity = 2
	InformationType DiagnosticSeverity = 3
	HintType        DiagnosticSeverity = 4
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case ErrorType:
		return "error"
	case WarningType:
		return "warning"
	case InformationType:
		return "info"
	case HintType:
		return "hint"
	}
	return fmt.Sprintf("Invalid(%d)", int(s))
}

// ErrorWithRange is a diagnostic anchored to a byte range of the input.
type ErrorWithRange struct {
	Code  DiagnosticCode
	Text  string
	Hint  string
	Range Range
}

func (e *ErrorWithRange) Error() string {
	return e.Text
}

func (e *ErrorWithRange) ToMessage(location *DiagnosticLocation) DiagnosticMessage {
	return DiagnosticMessage{
		Code:     int(e.Code),
		Text:     e.Text,
		Hint:     e.Hint,
		Location: location,
	}
}

type DiagnosticMessage struct {
	Severity int                 `json:"severity"`
	Code     int                 `json:"code"`
	Location *DiagnosticLocation `json:"location,omitempty"`
	Hint     string              `json:"hint,omitempty"`
	Text     string              `json:"text"`
}

type DiagnosticLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Length int    `json:"length"`
}

func (m DiagnosticMessage) String() string {
	if m.Location == nil {
		return m.Text
	}
	return fmt.Sprintf("%s:%d:%d: %s", m.Location.File, m.Location.Line, m.Location.Column, m.Text)
}
