// SPDX-License-Identifier: MPL-2.0

// Package types provides small validated primitive types shared by the
// launcher and the bundle inspection tool.
package types
