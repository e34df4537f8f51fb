// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers that lay out fake application bundles on
// disk, so launcher tests can resolve real paths and symlinks without a Mac.
package testutil
