// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/pflag"

	"github.com/pkgship/pkgship/internal/backend"
	"github.com/pkgship/pkgship/internal/option"
	"github.com/pkgship/pkgship/pkg/types"
)

// requestOptions collects the determination override flags shared by the
// commands that resolve distribution metadata. Each command registers its
// own instance so flag state never leaks between commands.
type requestOptions struct {
	pkgFile     string
	ignorePkg   bool
	distPkgFile string
	opamFile    string
	distFile    string
	changeLog   string
	delegate    string
	buildDir    string
	pkgName     string
	commitIsh   string
	pkgVersion  string
}

func (o *requestOptions) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.pkgFile, "pkg-file", backend.DefaultDescriptionFile.String(), "package description file")
	fs.BoolVar(&o.ignorePkg, "ignore-pkg", false, "ignore the package description file")
	fs.StringVar(&o.distPkgFile, "dist-pkg-file", "", "package description file in the distribution, relative to its root")
	fs.StringVar(&o.opamFile, "dist-opam", "", "OPAM file to use (default: first OPAM reference in the description)")
	fs.StringVar(&o.distFile, "dist-file", "", "distribution archive file (default: <build-dir>/<name>-<version>.tbz)")
	fs.StringVar(&o.changeLog, "change-log", "", "change log to use")
	fs.StringVar(&o.delegate, "delegate", "", "delegate tool to use")
	fs.StringVar(&o.buildDir, "build-dir", "", "build directory (default: from the package description)")
	fs.StringVar(&o.pkgName, "pkg-name", "", "package name (default: from the package description)")
	fs.StringVar(&o.commitIsh, "commit-ish", "", "commit-ish to base the distribution on (default: from the package description)")
	fs.StringVar(&o.pkgVersion, "pkg-version", "", "package version (default: from the package description)")
}

// build assembles the determination request plus the explicit archive path,
// if any. Presence is judged through fs.Changed, so a caller-supplied empty
// string stays distinguishable from an unset flag and no field is ever
// silently invented — semantic resolution of unset fields belongs to the
// backend.
func (o *requestOptions) build(fs *pflag.FlagSet) (backend.DeterminationRequest, option.Opt[types.FilesystemPath], error) {
	none := option.None[types.FilesystemPath]()

	pathOpt := func(name, raw string) (option.Opt[types.FilesystemPath], error) {
		if !fs.Changed(name) {
			return none, nil
		}
		p, err := types.ParseFilesystemPath(raw)
		if err != nil {
			return none, err
		}
		return option.Some(p), nil
	}
	strOpt := func(name, raw string) option.Opt[string] {
		if !fs.Changed(name) {
			return option.None[string]()
		}
		return option.Some(raw)
	}

	desc, err := pathOpt("pkg-file", o.pkgFile)
	if err != nil {
		return backend.DeterminationRequest{}, none, err
	}
	req := backend.NewRequest(desc)

	req.BuildDir = strOpt("build-dir", o.buildDir)
	req.PackageName = strOpt("pkg-name", o.pkgName)
	req.CommitIsh = strOpt("commit-ish", o.commitIsh)
	req.Version = strOpt("pkg-version", o.pkgVersion)
	req.Delegate = strOpt("delegate", o.delegate)
	req.IgnoreDescription = o.ignorePkg

	if req.OpamFile, err = pathOpt("dist-opam", o.opamFile); err != nil {
		return backend.DeterminationRequest{}, none, err
	}
	if req.ChangeLog, err = pathOpt("change-log", o.changeLog); err != nil {
		return backend.DeterminationRequest{}, none, err
	}
	if req.DistribDescriptionFile, err = pathOpt("dist-pkg-file", o.distPkgFile); err != nil {
		return backend.DeterminationRequest{}, none, err
	}

	explicit, err := pathOpt("dist-file", o.distFile)
	if err != nil {
		return backend.DeterminationRequest{}, none, err
	}

	return req, explicit, nil
}
