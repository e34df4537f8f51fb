// SPDX-License-Identifier: MPL-2.0

// Command plover-bundle inspects Plover application bundles from the
// launcher's point of view: which layouts this build knows, which command
// line a launcher at a given path would run, and whether the bundle around it
// is complete.
package main

func main() {
	Execute()
}
