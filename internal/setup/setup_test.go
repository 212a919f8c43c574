// SPDX-License-Identifier: MPL-2.0

package setup

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/pkgship/pkgship/internal/backend"
	"github.com/pkgship/pkgship/internal/option"
	"github.com/pkgship/pkgship/internal/severity"
	"github.com/pkgship/pkgship/pkg/types"
)

// Init mutates process-global state (default logger, working directory), so
// these tests run sequentially and restore what they change.

func TestParseColorMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		choice  string
		want    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{"forced", ColorAuto, true},
		{"", ColorAuto, true},
		{"ALWAYS", ColorAuto, true},
	}

	for _, tt := range tests {
		t.Run("choice "+tt.choice, func(t *testing.T) {
			t.Parallel()
			got, err := ParseColorMode(tt.choice)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColorMode(%q) error = %v, wantErr %v", tt.choice, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColorMode) {
					t.Errorf("error should wrap ErrInvalidColorMode, got: %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseColorMode(%q) = %v, want %v", tt.choice, got, tt.want)
			}
		})
	}
}

func TestColorMode_String(t *testing.T) {
	t.Parallel()

	pairs := map[ColorMode]string{
		ColorAuto:   "auto",
		ColorAlways: "always",
		ColorNever:  "never",
	}
	for m, want := range pairs {
		if got := m.String(); got != want {
			t.Errorf("ColorMode(%d).String() = %q, want %q", int(m), got, want)
		}
	}
}

func TestInit_EmitsStartupLine(t *testing.T) {
	var buf bytes.Buffer
	err := Init(Options{
		Color:     ColorNever,
		Verbosity: option.Some(log.InfoLevel),
		Version:   "1.2.3",
		Out:       &buf,
	})
	if err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	line := buf.String()
	if !strings.Contains(line, "pkgship") {
		t.Errorf("startup line %q should name the tool", line)
	}
	if !strings.Contains(line, "1.2.3") {
		t.Errorf("startup line %q should name the version", line)
	}
}

func TestInit_QuietSilencesSink(t *testing.T) {
	var buf bytes.Buffer
	err := Init(Options{
		Verbosity: option.None[log.Level](),
		Version:   "1.2.3",
		Out:       &buf,
	})
	if err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("quiet init should emit nothing, got %q", buf.String())
	}
}

func TestInit_ForwardsSeverityToBackend(t *testing.T) {
	var buf bytes.Buffer

	if err := Init(Options{Verbosity: option.Some(log.DebugLevel), Out: &buf}); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}
	if got := backend.Severity(); got != severity.Debug {
		t.Errorf("backend severity = %v, want Debug", got)
	}

	if err := Init(Options{Verbosity: option.None[log.Level](), Out: &buf}); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}
	if got := backend.Severity(); got != severity.None {
		t.Errorf("backend severity = %v, want None for an absent selection", got)
	}
}

func TestInit_ChangesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir()) // restore point; Init moves away from here

	var buf bytes.Buffer
	err := Init(Options{
		Verbosity: option.None[log.Level](),
		Dir:       option.Some(types.FilesystemPath(dir)),
		Out:       &buf,
	})
	if err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	got, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	wantDir, _ := filepath.EvalSymlinks(dir)
	gotDir, _ := filepath.EvalSymlinks(got)
	if gotDir != wantDir {
		t.Errorf("working directory = %q, want %q", gotDir, wantDir)
	}
}

// A failed directory change is a usage-level error, distinguished from
// ordinary runtime failures.
func TestInit_MissingDirectoryIsUsageError(t *testing.T) {
	var buf bytes.Buffer
	err := Init(Options{
		Verbosity: option.None[log.Level](),
		Dir:       option.Some(types.FilesystemPath(filepath.Join(t.TempDir(), "does-not-exist"))),
		Out:       &buf,
	})
	if err == nil {
		t.Fatal("Init() with a missing directory should fail")
	}

	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Errorf("error should be *UsageError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "does-not-exist") {
		t.Errorf("error %q should name the missing directory", err)
	}
}
