// SPDX-License-Identifier: MPL-2.0

// Package setup performs one-time process initialization: terminal styling,
// log severity (front end and backend), the formatted log sink, and an
// optional working-directory change. Init is invoked exactly once by the
// root command before any subcommand logic; behavior on a second invocation
// is undefined.
package setup

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/pkgship/pkgship/internal/backend"
	"github.com/pkgship/pkgship/internal/option"
	"github.com/pkgship/pkgship/internal/severity"
	"github.com/pkgship/pkgship/pkg/fspath"
	"github.com/pkgship/pkgship/pkg/types"
)

// ErrInvalidColorMode is the sentinel error wrapped by InvalidColorModeError.
var ErrInvalidColorMode = errors.New("invalid color mode")

// silentLevel is above every defined log level; setting it suppresses all
// output when no verbosity was selected.
const silentLevel = log.Level(math.MaxInt32)

type (
	// ColorMode selects how terminal styling is decided.
	ColorMode int

	// InvalidColorModeError is returned when a color mode choice is not one
	// of auto, always or never.
	InvalidColorModeError struct {
		Value string
	}

	// Options configures Init. Zero values mean auto-detected styling, no
	// logging, and no working-directory change.
	Options struct {
		// Color selects terminal styling behavior.
		Color ColorMode

		// Verbosity is the front-end log level selection; absent means no
		// logging at all.
		Verbosity option.Opt[log.Level]

		// Dir, when present, is the directory to change into before any
		// command logic runs.
		Dir option.Opt[types.FilesystemPath]

		// Version is the tool version named in the startup log line.
		Version string

		// Out is the log sink. Defaults to os.Stdout.
		Out io.Writer
	}

	// UsageError marks a failure of the invocation itself rather than of
	// the requested operation, so the argument-parsing front end can decide
	// to also print command usage text.
	UsageError struct {
		Err error
	}
)

const (
	// ColorAuto detects terminal capabilities.
	ColorAuto ColorMode = iota
	// ColorAlways forces styled output.
	ColorAlways
	// ColorNever disables styled output.
	ColorNever
)

// colorModeNames are the accepted --color choices.
var colorModeNames = []string{"auto", "always", "never"}

// ParseColorMode parses a color mode choice.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, &InvalidColorModeError{Value: s}
}

// String returns the lowercase name of the ColorMode.
func (m ColorMode) String() string {
	if m < ColorAuto || m > ColorNever {
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
	return colorModeNames[m]
}

// Error implements the error interface.
func (e *InvalidColorModeError) Error() string {
	return fmt.Sprintf("invalid color mode %q: must be one of %v", e.Value, colorModeNames)
}

// Unwrap returns ErrInvalidColorMode for errors.Is() compatibility.
func (e *InvalidColorModeError) Unwrap() error { return ErrInvalidColorMode }

// Error implements the error interface for UsageError.
func (e *UsageError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error.
func (e *UsageError) Unwrap() error { return e.Err }

// Init performs process setup, in order: terminal styling, backend severity
// via the bridge, front-end log level, formatted sink installation, one
// startup info line, and the optional working-directory change. A failed
// directory change is a usage-level error; everything before it cannot
// fail.
func Init(opts Options) error {
	profile, forced := forcedProfile(opts.Color)
	if forced {
		lipgloss.SetColorProfile(profile)
	}

	backend.SetSeverity(severity.FromSelection(opts.Verbosity))

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := log.NewWithOptions(out, log.Options{
		Prefix: "pkgship",
	})
	if lvl, ok := opts.Verbosity.Get(); ok {
		logger.SetLevel(lvl)
	} else {
		logger.SetLevel(silentLevel)
	}
	if forced {
		logger.SetColorProfile(profile)
	}
	log.SetDefault(logger)

	log.Info("pkgship", "version", opts.Version)

	if dir, ok := opts.Dir.Get(); ok {
		if err := os.Chdir(dir.String()); err != nil {
			return &UsageError{Err: fmt.Errorf("changing directory to %s: %w", dir, err)}
		}
		if abs, err := fspath.Abs("."); err == nil {
			log.Debug("changed working directory", "dir", abs)
		}
	}

	return nil
}

// forcedProfile translates an explicit styling choice into a termenv
// profile. Auto reports no forcing: terminal capabilities are then detected
// lazily by lipgloss and log themselves.
func forcedProfile(m ColorMode) (termenv.Profile, bool) {
	switch m {
	case ColorAlways:
		return termenv.TrueColor, true
	case ColorNever:
		return termenv.Ascii, true
	case ColorAuto:
	}
	return termenv.Ascii, false
}
