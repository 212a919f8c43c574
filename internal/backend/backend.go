// SPDX-License-Identifier: MPL-2.0

// Package backend defines the contract between this core and the package
// backend: the external collaborator that owns package-description parsing,
// version-control queries, and archive construction. The core assembles a
// DeterminationRequest, hands it to the registered Resolver, and treats the
// result as opaque beyond the fields needed to derive an archive path.
package backend

import (
	"github.com/pkgship/pkgship/internal/issue"
	"github.com/pkgship/pkgship/internal/option"
	"github.com/pkgship/pkgship/internal/severity"
	"github.com/pkgship/pkgship/pkg/types"
)

// DefaultDescriptionFile is the fixed relative location of the package
// description file when the caller supplies none.
const DefaultDescriptionFile = types.FilesystemPath("pkg/pkg.toml")

type (
	// DeterminationRequest is the layered configuration handed to the
	// backend. DescriptionFile always has a value (defaulted); the four
	// override fields are exactly what the caller supplied or unset, never
	// an invented value — the backend's own fallback order depends on being
	// able to tell "caller said nothing" from "caller said the empty
	// string".
	DeterminationRequest struct {
		// DescriptionFile is the package description file path. Always set.
		DescriptionFile types.FilesystemPath

		// BuildDir is free text at this stage: it may be backend-interpreted
		// and is not validated as a path here.
		BuildDir    option.Opt[string]
		PackageName option.Opt[string]
		CommitIsh   option.Opt[string]
		Version     option.Opt[string]

		// The remaining fields are collected by the CLI surface on behalf of
		// backend-owned subcommands and passed through uninterpreted.
		OpamFile               option.Opt[types.FilesystemPath]
		ChangeLog              option.Opt[types.FilesystemPath]
		Delegate               option.Opt[string]
		DistribDescriptionFile option.Opt[types.FilesystemPath]
		IgnoreDescription      bool
	}

	// Determination is the backend's resolution of a request. The core
	// consumes only the fields needed to derive an archive path; everything
	// else about the resolution stays on the backend's side of the seam.
	Determination struct {
		Name      string
		Version   string
		BuildDir  string
		CommitIsh string
	}

	// Resolver resolves a DeterminationRequest against the package
	// description, filling any unset optional from it.
	Resolver interface {
		Determine(req DeterminationRequest) (Determination, error)
	}

	// SeverityAware is implemented by resolvers that gate their own
	// verbosity-dependent behavior on the tool's severity.
	SeverityAware interface {
		SetSeverity(severity.Severity)
	}
)

// NewRequest returns a request whose description file is the supplied path,
// or DefaultDescriptionFile when absent. All override fields start unset.
func NewRequest(descriptionFile option.Opt[types.FilesystemPath]) DeterminationRequest {
	return DeterminationRequest{
		DescriptionFile: descriptionFile.GetOr(DefaultDescriptionFile),
	}
}

// The process has exactly one logical thread of control; the registry is
// written once at program wiring time and only read afterwards, so it
// carries no lock.
var (
	registered Resolver
	current    severity.Severity
)

// Register installs the package backend. The embedding release tool calls
// this once before Execute; tests register stubs.
func Register(r Resolver) {
	registered = r
	if aware, ok := r.(SeverityAware); ok {
		aware.SetSeverity(current)
	}
}

// Registered returns the installed backend, or an actionable error when the
// program was wired without one.
func Registered() (Resolver, error) {
	if registered == nil {
		return nil, issue.NewErrorContext().
			WithOperation("resolve distribution metadata").
			WithSuggestion("Register a package backend with backend.Register before invoking commands").
			BuildError()
	}
	return registered, nil
}

// SetSeverity records the tool's severity and forwards it to a registered
// severity-aware backend. Called once by the environment initializer.
func SetSeverity(s severity.Severity) {
	current = s
	if aware, ok := registered.(SeverityAware); ok {
		aware.SetSeverity(s)
	}
}

// Severity returns the severity last set by the environment initializer.
func Severity() severity.Severity { return current }
