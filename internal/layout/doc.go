// SPDX-License-Identifier: MPL-2.0

// Package layout describes where a launcher sits inside an application bundle
// and where the bundled interpreter lives relative to it.
//
// Profiles are compiled into the binary from layouts.cue and validated
// against layouts_schema.cue. A build picks its profile with
//
//	go build -ldflags "-X github.com/openstenoproject/plover-launcher/internal/layout.Selected=legacy"
//
// and falls back to the catalog default when Selected is empty.
package layout
