// SPDX-License-Identifier: MPL-2.0

// Package launcher turns the path of a running launcher binary into a Python
// interpreter invocation and replaces the current process with it.
//
// The flow is linear and never retries:
//
//	os.Executable -> ResolveBundleRoot -> BuildInterpreterPath -> AssembleArguments -> exec
//
// Any failure is returned as a *PathResolutionError or *LaunchError and is
// fatal to the caller.
package launcher
