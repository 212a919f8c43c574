// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkgship/pkgship/internal/backend"
	"github.com/pkgship/pkgship/pkg/types"
)

// overridesOnlyResolver resolves purely from the supplied overrides and
// fails the test if asked to fall back to the package description. The
// description file never exists in these tests, which Determine verifies.
type overridesOnlyResolver struct {
	t     *testing.T
	calls int
	last  backend.DeterminationRequest
}

func (r *overridesOnlyResolver) Determine(req backend.DeterminationRequest) (backend.Determination, error) {
	r.t.Helper()
	r.calls++
	r.last = req
	if _, err := os.Stat(req.DescriptionFile.String()); !errors.Is(err, fs.ErrNotExist) {
		r.t.Errorf("description file %q should be absent, stat err = %v", req.DescriptionFile, err)
	}
	var det backend.Determination
	var ok bool
	if det.BuildDir, ok = req.BuildDir.Get(); !ok {
		r.t.Error("build dir override should be supplied")
	}
	if det.Name, ok = req.PackageName.Get(); !ok {
		r.t.Error("package name override should be supplied")
	}
	if det.CommitIsh, ok = req.CommitIsh.Get(); !ok {
		r.t.Error("commit-ish override should be supplied")
	}
	if det.Version, ok = req.Version.Get(); !ok {
		r.t.Error("version override should be supplied")
	}
	return det, nil
}

// registerStub installs a resolver and restores the previous registration.
func registerStub(t *testing.T, r backend.Resolver) {
	t.Helper()
	prev, _ := backend.Registered()
	backend.Register(r)
	t.Cleanup(func() { backend.Register(prev) })
}

// execute runs the root command with args, capturing stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// With all four overrides supplied, resolution succeeds using only the
// supplied values: the description file, pointed at a path that does not
// exist, reaches the backend untouched and is never required on disk.
func TestLocate_OverridesOnly(t *testing.T) {
	t.Chdir(t.TempDir())
	stub := &overridesOnlyResolver{t: t}
	registerStub(t, stub)

	if err := os.MkdirAll("_build", 0o755); err != nil {
		t.Fatal(err)
	}
	archive := filepath.Join("_build", "mypkg-1.0.0.tbz")
	if err := os.WriteFile(archive, []byte("tarball"), 0o644); err != nil {
		t.Fatal(err)
	}

	descFile := filepath.Join("missing", "pkg.toml")
	out, err := execute(t, "locate", "-v", "quiet",
		"--pkg-file", descFile,
		"--build-dir", "_build",
		"--pkg-name", "mypkg",
		"--commit-ish", "v1.0.0",
		"--pkg-version", "1.0.0",
	)
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	if stub.calls != 1 {
		t.Errorf("backend invoked %d times, want exactly once", stub.calls)
	}
	if got := stub.last.DescriptionFile.String(); got != descFile {
		t.Errorf("DescriptionFile = %q, want the supplied %q", got, descFile)
	}
	if !strings.Contains(out, archive) {
		t.Errorf("output %q should name the archive %q", out, archive)
	}
}

// Without the archive on disk, locate fails through the outcome bridge with
// the fixed failure exit code and a diagnostic naming the canonical path.
func TestLocate_MissingArchive(t *testing.T) {
	t.Chdir(t.TempDir())
	registerStub(t, &overridesOnlyResolver{t: t})

	_, err := execute(t, "locate", "-v", "quiet",
		"--build-dir", "_build",
		"--pkg-name", "mypkg",
		"--commit-ish", "v1.0.0",
		"--pkg-version", "1.0.0",
	)
	if err == nil {
		t.Fatal("locate should fail when the archive does not exist")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %T, want *ExitError", err)
	}
	if exitErr.Code != types.ExitFailure {
		t.Errorf("exit code = %v, want %v", exitErr.Code, types.ExitFailure)
	}
	want := filepath.Join("_build", "mypkg-1.0.0.tbz")
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error %q should name %q", err, want)
	}
	if !strings.Contains(err.Error(), "distrib") {
		t.Errorf("error %q should point at the distrib step", err)
	}
}

// An explicit --dist-file is used verbatim, bypassing derivation entirely.
func TestLocate_ExplicitDistFile(t *testing.T) {
	t.Chdir(t.TempDir())
	registerStub(t, &overridesOnlyResolver{t: t})

	if err := os.WriteFile("custom.tbz", []byte("tarball"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "locate", "-v", "quiet",
		"--build-dir", "elsewhere",
		"--pkg-name", "otherpkg",
		"--commit-ish", "HEAD",
		"--pkg-version", "9.9.9",
		"--dist-file", "custom.tbz",
	)
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	if !strings.Contains(out, "custom.tbz") {
		t.Errorf("output %q should name the explicit archive", out)
	}
}

func TestStatus_PrintsResolvedMetadata(t *testing.T) {
	t.Chdir(t.TempDir())
	registerStub(t, &overridesOnlyResolver{t: t})

	out, err := execute(t, "status", "-v", "quiet",
		"--build-dir", "_build",
		"--pkg-name", "mypkg",
		"--commit-ish", "v1.0.0",
		"--pkg-version", "1.0.0",
	)
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}

	for _, want := range []string{"mypkg", "1.0.0", "_build", "v1.0.0", filepath.Join("_build", "mypkg-1.0.0.tbz")} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}
}

// Resolution without a registered backend is an ordinary runtime failure
// through the bridge, not a panic.
func TestLocate_NoBackendRegistered(t *testing.T) {
	registerStub(t, nil)

	_, err := execute(t, "locate", "-v", "quiet")
	if err == nil {
		t.Fatal("locate without a backend should fail")
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %T, want *ExitError", err)
	}
	if exitErr.Code != types.ExitFailure {
		t.Errorf("exit code = %v, want %v", exitErr.Code, types.ExitFailure)
	}
}
