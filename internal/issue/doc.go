// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries remediation hints for the one-line report the
// launcher prints before exiting. The Markdown catalog holds the long-form
// help that plover-bundle doctor renders with glamour.
package issue
