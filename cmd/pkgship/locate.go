// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgship/pkgship/internal/backend"
	"github.com/pkgship/pkgship/internal/distrib"
)

var (
	locateOpts requestOptions

	// locateCmd locates the distribution archive for the invocation.
	locateCmd = &cobra.Command{
		Use:   "locate",
		Short: "Locate the distribution archive",
		Long: `Locate the distribution archive for the current invocation.

The archive path is the --dist-file value when given, otherwise
<build-dir>/<name>-<version>.tbz from the resolved determination. The
archive must already exist: it is created by the earlier distrib step.

Examples:
  pkgship locate
  pkgship locate --build-dir _build --pkg-name mypkg --pkg-version 1.0.0
  pkgship locate --dist-file ./out/mypkg.tbz`,
		Args: cobra.NoArgs,
		RunE: runLocate,
	}
)

func init() {
	locateOpts.register(locateCmd.Flags())
}

func runLocate(cmd *cobra.Command, _ []string) error {
	return reportOutcome(locateArchive(cmd))
}

// locateArchive resolves the determination and verifies the archive exists,
// printing its path on success.
func locateArchive(cmd *cobra.Command) error {
	req, explicit, err := locateOpts.build(cmd.Flags())
	if err != nil {
		return err
	}

	resolver, err := backend.Registered()
	if err != nil {
		return err
	}

	det, err := resolver.Determine(req)
	if err != nil {
		return err
	}

	archive, err := distrib.Locate(explicit, det)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), archive)
	return nil
}
