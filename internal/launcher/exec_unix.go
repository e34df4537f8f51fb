// SPDX-License-Identifier: MPL-2.0

//go:build unix

package launcher

import (
	"errors"

	"golang.org/x/sys/unix"
)

// SystemExec replaces the current process image. It only returns on failure.
func SystemExec(argv0 string, argv []string, envv []string) error {
	return unix.Exec(argv0, argv, envv)
}

func isExecFormatError(err error) bool {
	return errors.Is(err, unix.ENOEXEC)
}
