// SPDX-License-Identifier: MPL-2.0

// pkgship is the option-resolution and artifact-location core of a package
// release tool. The surrounding release tool registers its package backend
// through backend.Register before handing control to cmd.Execute.
package main

import cmd "github.com/pkgship/pkgship/cmd/pkgship"

func main() {
	cmd.Execute()
}
