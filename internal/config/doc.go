// SPDX-License-Identifier: MPL-2.0

// Package config layers the environment initializer options: programmed
// defaults, then environment variables, then command-line flags, with the
// flag winning when both a flag and its environment variable are present.
package config
