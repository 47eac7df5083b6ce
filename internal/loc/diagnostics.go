package loc

type DiagnosticCode int

const (
	ERROR                         DiagnosticCode = 1000
	WARNING                       DiagnosticCode = 2000
	WARNING_UNTERMINATED_TAG      DiagnosticCode = 2001
	WARNING_INVALID_TAG           DiagnosticCode = 2002
	WARNING_MISMATCHED_CLOSE_TAG  DiagnosticCode = 2003
	WARNING_ORPHAN_CLOSE_TAG      DiagnosticCode = 2004
	WARNING_MAX_DEPTH_EXCEEDED    DiagnosticCode = 2005
	WARNING_UNKNOWN_TAG           DiagnosticCode = 2006
	WARNING_UNCLOSED_TAG          DiagnosticCode = 2007
	WARNING_INVALID_TAG_VALUE     DiagnosticCode = 2008
	WARNING_UNTERMINATED_RAW_TEXT DiagnosticCode = 2009
	INFO                          DiagnosticCode = 3000
	HINT                          DiagnosticCode = 4000
)

func (c DiagnosticCode) String() string {
	switch c {
	case WARNING_UNTERMINATED_TAG:
		return "unterminated-tag"
	case WARNING_INVALID_TAG:
		return "invalid-tag"
	case WARNING_MISMATCHED_CLOSE_TAG:
		return "mismatched-close-tag"
	case WARNING_ORPHAN_CLOSE_TAG:
		return "orphan-close-tag"
	case WARNING_MAX_DEPTH_EXCEEDED:
		return "max-depth-exceeded"
	case WARNING_UNKNOWN_TAG:
		return "unknown-tag"
	case WARNING_UNCLOSED_TAG:
		return "unclosed-tag"
	case WARNING_INVALID_TAG_VALUE:
		return "invalid-tag-value"
	case WARNING_UNTERMINATED_RAW_TEXT:
		return "unterminated-raw-text"
	}
	switch {
	case c >= HINT:
		return "hint"
	case c >= INFO:
		return "info"
	case c >= WARNING:
		return "warning"
	}
	return "error"
}
