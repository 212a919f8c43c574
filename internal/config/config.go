// SPDX-License-Identifier: MPL-2.0

package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pkgship/pkgship/internal/option"
	"github.com/pkgship/pkgship/internal/setup"
	"github.com/pkgship/pkgship/internal/severity"
	"github.com/pkgship/pkgship/pkg/fspath"
	"github.com/pkgship/pkgship/pkg/types"
)

// Environment variables recognized by the initializer. Each is overridden
// by its command-line flag when both are present.
const (
	// EnvColor controls terminal styling ("auto", "always", "never").
	EnvColor = "PKGSHIP_COLOR"
	// EnvVerbosity controls the default log severity.
	EnvVerbosity = "PKGSHIP_VERBOSITY"
	// EnvDir overrides the working directory before any command logic runs.
	EnvDir = "PKGSHIP_DIR"
)

// Defaults applied when neither flag nor environment variable is set.
const (
	DefaultColorMode = "auto"
	DefaultVerbosity = "warning"
)

// Flag names bound by Load. The flags are declared by the root command;
// Load only looks them up.
const (
	FlagColor     = "color"
	FlagVerbosity = "verbosity"
	FlagDir       = "pkg-dir"
)

// flagKeys maps flag names onto the viper keys they layer into.
var flagKeys = map[string]string{
	FlagColor:     "color",
	FlagVerbosity: "verbosity",
	FlagDir:       "dir",
}

// Load assembles the initializer options from defaults, environment
// variables and the given flag set, in increasing precedence. Flags absent
// from the set are simply not bound, which keeps Load usable against
// partial flag sets in tests.
func Load(flags *pflag.FlagSet) (setup.Options, error) {
	v := viper.New()

	v.SetDefault("color", DefaultColorMode)
	v.SetDefault("verbosity", DefaultVerbosity)
	v.SetDefault("dir", "")

	if err := v.BindEnv("color", EnvColor); err != nil {
		return setup.Options{}, err
	}
	if err := v.BindEnv("verbosity", EnvVerbosity); err != nil {
		return setup.Options{}, err
	}
	if err := v.BindEnv("dir", EnvDir); err != nil {
		return setup.Options{}, err
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return setup.Options{}, err
				}
			}
		}
	}

	colorMode, err := setup.ParseColorMode(v.GetString("color"))
	if err != nil {
		return setup.Options{}, err
	}

	verbosity, err := severity.ParseSelection(v.GetString("verbosity"))
	if err != nil {
		return setup.Options{}, err
	}

	dir := option.None[types.FilesystemPath]()
	if raw := v.GetString("dir"); raw != "" {
		p, err := types.ParseFilesystemPath(raw)
		if err != nil {
			return setup.Options{}, err
		}
		dir = option.Some(fspath.Clean(p))
	}

	return setup.Options{
		Color:     colorMode,
		Verbosity: verbosity,
		Dir:       dir,
	}, nil
}
