// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// The launcher is built for macOS application bundles, but the core path and
// argument logic is exercised on every unix host in tests. This package keeps
// the handful of OS checks in one place.
package platform
