// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// IsDarwin reports whether goos names macOS.
func IsDarwin(goos string) bool { return goos == Darwin }

// IsHostDarwin reports whether the running process is on macOS, the only
// host where application bundles exist.
func IsHostDarwin() bool { return IsDarwin(runtime.GOOS) }
