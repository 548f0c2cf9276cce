package observability

import "github.com/charmbracelet/log"

// Warn reports an advisory warning of the given kind to the warning hooks
// and, when l is non-nil, to the logger.
func Warn(l *log.Logger, kind, format string, args ...any) {
	Warning().OnWarning(kind)
	if l != nil {
		l.Warnf(format, args...)
	}
}
