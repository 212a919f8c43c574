// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotAPath is the sentinel error wrapped by NotAPathError.
var ErrNotAPath = errors.New("not a path")

type (
	// FilesystemPath represents an absolute or relative filesystem path.
	// A FilesystemPath is always obtained through ParseFilesystemPath and
	// never holds text the host filesystem convention rejects. The zero
	// value ("") is invalid — a path must always point somewhere.
	FilesystemPath string

	// NotAPathError is returned when raw argument text cannot denote a
	// filesystem path. It carries the offending text verbatim so the
	// argument-parsing front end can render it back to the user.
	NotAPathError struct {
		Raw string
	}
)

// ParseFilesystemPath interprets raw argument text as a filesystem path.
// Empty text, whitespace-only text and text containing a NUL byte cannot
// denote a path on any supported platform and are rejected. The function is
// pure: no filesystem access, no side effects.
func ParseFilesystemPath(raw string) (FilesystemPath, error) {
	if strings.TrimSpace(raw) == "" || strings.ContainsRune(raw, 0) {
		return "", &NotAPathError{Raw: raw}
	}
	return FilesystemPath(raw), nil
}

// String returns the string representation of the FilesystemPath.
func (p FilesystemPath) String() string { return string(p) }

// Validate re-checks an already-constructed FilesystemPath. Useful for
// values that arrive through struct literals rather than the parser.
func (p FilesystemPath) Validate() error {
	_, err := ParseFilesystemPath(string(p))
	return err
}

// Error implements the error interface. The message embeds the original
// text quoted; this format is shared by every path-typed option across the
// CLI surface and must stay stable.
func (e *NotAPathError) Error() string {
	return fmt.Sprintf("%q: not a path", e.Raw)
}

// Unwrap returns ErrNotAPath for errors.Is() compatibility.
func (e *NotAPathError) Unwrap() error { return ErrNotAPath }
