// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/openstenoproject/plover-launcher/pkg/types"
)

func TestExitCodeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want types.ExitCode
	}{
		{name: "nil", err: nil, want: types.ExitSuccess},
		{name: "path resolution", err: &PathResolutionError{Err: fs.ErrNotExist}, want: types.ExitFailure},
		{name: "missing interpreter", err: &LaunchError{Path: "/py", Err: fs.ErrNotExist}, want: types.ExitNotFound},
		{name: "permission denied", err: &LaunchError{Path: "/py", Err: fs.ErrPermission}, want: types.ExitCannotExecute},
		{name: "other exec failure", err: &LaunchError{Path: "/py", Err: errors.New("argument list too long")}, want: types.ExitFailure},
		{name: "wrapped launch error", err: fmt.Errorf("outer: %w", &LaunchError{Err: fs.ErrNotExist}), want: types.ExitNotFound},
		{name: "foreign error", err: errors.New("boom"), want: types.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExitCodeOf(tt.err); got != tt.want {
				t.Errorf("ExitCodeOf() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{err: &PathResolutionError{Err: errors.New("x")}, want: "cannot determine launcher path: x"},
		{err: &PathResolutionError{Path: "/a/b", Err: ErrPathTooShallow}, want: "cannot resolve launcher path /a/b"},
		{err: &LaunchError{Path: "/py", Err: fs.ErrNotExist}, want: "cannot execute /py"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); !strings.Contains(got, tt.want) {
			t.Errorf("Error() = %q, want it to contain %q", got, tt.want)
		}
	}
}
