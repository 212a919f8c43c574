// SPDX-License-Identifier: MPL-2.0

// Package severity defines the tool's internal severity enumeration and the
// bridge from the charmbracelet/log levels the CLI front end works with.
// Two copies of the enumeration exist on purpose: the front end owns one,
// the package backend owns this one, and the bridge is the total mapping
// between them.
package severity

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/pkgship/pkgship/internal/option"
)

// Severity is the backend-facing severity enumeration. None means no
// logging was selected at all.
type Severity int

const (
	// None means logging is disabled entirely.
	None Severity = iota
	// App is application-level output only.
	App
	// Error reports failures.
	Error
	// Warning reports suspicious conditions.
	Warning
	// Info reports progress.
	Info
	// Debug reports everything.
	Debug
)

// String returns the lowercase name of the Severity.
func (s Severity) String() string {
	switch s {
	case None:
		return "quiet"
	case App:
		return "app"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Debug:
		return "debug"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// FromLogLevel maps a front-end log level onto the internal Severity.
// The mapping is total over the five defined levels and has no fallback:
// an unmapped level is a programming error and panics so that adding a new
// level anywhere forces an update here.
func FromLogLevel(l log.Level) Severity {
	switch l {
	case log.FatalLevel:
		return App
	case log.ErrorLevel:
		return Error
	case log.WarnLevel:
		return Warning
	case log.InfoLevel:
		return Info
	case log.DebugLevel:
		return Debug
	}
	panic(fmt.Sprintf("severity: unmapped log level %d", int(l)))
}

// FromSelection maps an optional front-end level selection onto the
// internal Severity. Absence maps to None: a user who selected no logging
// gets no backend logging either.
func FromSelection(sel option.Opt[log.Level]) Severity {
	lvl, ok := sel.Get()
	if !ok {
		return None
	}
	return FromLogLevel(lvl)
}

// selectionNames are the accepted --verbosity choices, in severity order.
var selectionNames = []string{"quiet", "app", "error", "warning", "info", "debug"}

// ParseSelection parses a verbosity choice into an optional front-end log
// level. "quiet" parses to the absent selection.
func ParseSelection(s string) (option.Opt[log.Level], error) {
	switch s {
	case "quiet":
		return option.None[log.Level](), nil
	case "app":
		return option.Some(log.FatalLevel), nil
	case "error":
		return option.Some(log.ErrorLevel), nil
	case "warning":
		return option.Some(log.WarnLevel), nil
	case "info":
		return option.Some(log.InfoLevel), nil
	case "debug":
		return option.Some(log.DebugLevel), nil
	}
	return option.None[log.Level](), fmt.Errorf("invalid verbosity %q: must be one of %v", s, selectionNames)
}
