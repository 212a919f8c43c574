// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgship/pkgship/internal/backend"
	"github.com/pkgship/pkgship/internal/distrib"
	"github.com/pkgship/pkgship/pkg/fspath"
	"github.com/pkgship/pkgship/pkg/types"
)

var (
	statusOpts requestOptions

	// statusCmd shows the resolved distribution metadata without touching
	// the filesystem.
	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show the resolved distribution metadata",
		Long: `Show how the current invocation resolves: package name, version, build
directory, commit-ish and the archive path they imply. Values come from
explicit command-line overrides first, then from the package description.

No filesystem check is performed on the archive; use 'pkgship locate' for
that.

Examples:
  pkgship status
  pkgship status --pkg-version 1.0.0`,
		Args: cobra.NoArgs,
		RunE: runStatus,
	}
)

func init() {
	statusOpts.register(statusCmd.Flags())
}

func runStatus(cmd *cobra.Command, _ []string) error {
	return reportOutcome(showStatus(cmd))
}

// showStatus resolves the determination and prints its fields plus the
// archive path the locate step would check.
func showStatus(cmd *cobra.Command) error {
	req, explicit, err := statusOpts.build(cmd.Flags())
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

	archive, ok := explicit.Get()
	if !ok {
		archive = fspath.JoinStr(types.FilesystemPath(det.BuildDir), distrib.ArchiveName(det))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render("Distribution"))
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("name:"), CmdStyle.Render(det.Name))
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("version:"), det.Version)
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("build dir:"), det.BuildDir)
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("commit-ish:"), det.CommitIsh)
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("archive:"), CmdStyle.Render(archive.String()))
	return nil
}
