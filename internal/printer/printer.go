package printer

import (
	"io"
)

// SinkError is returned when the output sink fails. Output written before
// the failure is not rolled back.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string {
	return "bbcode: writing output: " + e.Err.Error()
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

type printer struct {
	sink io.StringWriter
	err  error
}

// print writes s to the sink unless an earlier write already failed.
func (p *printer) print(s string) {
	if p.err != nil || s == "" {
		return
	}
	if _, err := p.sink.WriteString(s); err != nil {
		p.err = &SinkError{Err: err}
	}
}

func (p *printer) printEscaped(s string) {
	p.print(escapeText(s))
}
