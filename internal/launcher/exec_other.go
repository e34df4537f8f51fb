// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package launcher

// SystemExec reports ErrExecUnsupported; only unix hosts can replace a
// process image.
func SystemExec(string, []string, []string) error {
	return ErrExecUnsupported
}

func isExecFormatError(error) bool { return false }
