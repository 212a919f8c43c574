// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/pkgship/pkgship/internal/issue"
	"github.com/pkgship/pkgship/pkg/types"
)

// reportOutcome is the tool's single failure policy point: every command
// funnels its terminal outcome through it so the failure-to-exit-code
// mapping is uniform across the whole CLI surface. A nil outcome passes
// through untouched; a failure is logged exactly once at error severity and
// mapped to the fixed failure exit code.
func reportOutcome(err error) error {
	if err == nil {
		return nil
	}
	log.Error(formatOutcome(err))
	return &ExitError{Code: types.ExitFailure, Err: err}
}

// formatOutcome renders actionable errors with their suggestions attached;
// other errors render as-is.
func formatOutcome(err error) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(false)
	}
	return err.Error()
}
