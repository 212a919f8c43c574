// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured, user-facing errors. An ActionableError
// names the operation that failed, the resource involved, and how to fix
// it, so failure messages point the user at the missing step instead of a
// generic "file not found".
package issue
