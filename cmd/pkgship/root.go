// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for pkgship.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/pkgship/pkgship/internal/config"
	"github.com/pkgship/pkgship/internal/setup"
	"github.com/pkgship/pkgship/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "pkgship",
		Short: "Release tool for package distributions",
		Long: TitleStyle.Render("pkgship") + SubtitleStyle.Render(" - Release tool for package distributions") + `

pkgship resolves, for each invocation, which build directory, package
name, version and commit-ish apply, and locates the distribution archive
those values imply. Defaults come from the package description file
(` + CmdStyle.Render("pkg/pkg.toml") + `); explicit command-line values always win.

` + SubtitleStyle.Render("Examples:") + `
  pkgship status            Show the resolved distribution metadata
  pkgship locate            Locate the distribution archive
  pkgship locate --build-dir _build --pkg-version 1.0.0`,
	}
)

func init() {
	rootCmd.PersistentPreRunE = initEnvironment

	pf := rootCmd.PersistentFlags()
	pf.String(config.FlagColor, config.DefaultColorMode,
		"terminal styling: auto, always or never (env "+config.EnvColor+")")
	pf.StringP(config.FlagVerbosity, "v", config.DefaultVerbosity,
		"log verbosity: quiet, app, error, warning, info or debug (env "+config.EnvVerbosity+")")
	pf.StringP(config.FlagDir, "C", "",
		"change to directory before running the command (env "+config.EnvDir+")")

	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(statusCmd)
}

// initEnvironment performs the one-time process setup before any
// subcommand logic: option layering, styling, severities, log sink and the
// optional working-directory change.
func initEnvironment(*cobra.Command, []string) error {
	opts, err := config.Load(rootCmd.PersistentFlags())
	if err != nil {
		return err
	}
	opts.Version = getVersionString()
	return setup.Init(opts)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(renderError),
	)
	if err == nil {
		return
	}

	var usageErr *setup.UsageError
	if errors.As(err, &usageErr) {
		_ = rootCmd.Usage()
		os.Exit(int(types.ExitUsage))
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		os.Exit(int(exitErr.Code))
	}
	os.Exit(1)
}

// renderError suppresses duplicate rendering for outcomes already logged by
// reportOutcome; everything else gets fang's default styling.
func renderError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
