// SPDX-License-Identifier: MPL-2.0

// Package distrib locates distribution archives. The canonical archive path
// is a naming convention, not a guarantee: the archive is created by an
// earlier, separate command, so locating verifies existence and turns the
// common "ran a later step first" mistake into a pointed diagnostic.
package distrib

import (
	"errors"
	"io/fs"
	"os"

	"github.com/pkgship/pkgship/internal/backend"
	"github.com/pkgship/pkgship/internal/issue"
	"github.com/pkgship/pkgship/internal/option"
	"github.com/pkgship/pkgship/pkg/fspath"
	"github.com/pkgship/pkgship/pkg/types"
)

// ArchiveExt is the distribution archive file extension.
const ArchiveExt = ".tbz"

// statFile is swapped in tests to observe filesystem lookups.
var statFile = os.Stat

// ArchiveName returns the canonical archive file name for a determination:
// <name>-<version>.tbz.
func ArchiveName(det backend.Determination) string {
	return det.Name + "-" + det.Version + ArchiveExt
}

// Locate computes the archive path for a resolved determination and
// verifies it exists. An explicit path is used verbatim; otherwise the
// canonical <build-dir>/<name>-<version>.tbz is derived. Exactly one
// existence check is performed, with no retries.
func Locate(explicit option.Opt[types.FilesystemPath], det backend.Determination) (types.FilesystemPath, error) {
	archive, ok := explicit.Get()
	if !ok {
		archive = fspath.JoinStr(types.FilesystemPath(det.BuildDir), ArchiveName(det))
	}

	if _, err := statFile(archive.String()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", issue.NewErrorContext().
				WithOperation("locate distribution archive").
				WithResource(archive.String()).
				WithSuggestion("Run 'pkgship distrib' to create the archive first").
				Wrap(errors.New("no such file exists; did you forget to invoke the distrib command?")).
				BuildError()
		}
		return "", issue.NewErrorContext().
			WithOperation("locate distribution archive").
			WithResource(archive.String()).
			Wrap(err).
			BuildError()
	}

	return archive, nil
}
