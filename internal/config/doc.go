// SPDX-License-Identifier: MPL-2.0

// Package config handles launcher configuration using Viper with CUE as the
// file format.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// CUE file (named by PLOVER_LAUNCHER_CONFIG or --config), and PLOVER_LAUNCHER_*
// environment variables. The file is validated against config_schema.cue.
// Nothing here changes where the interpreter is found; that is fixed by the
// build's layout profile.
package config
