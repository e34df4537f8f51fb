// SPDX-License-Identifier: MPL-2.0

//go:build unix

package launcher

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/openstenoproject/plover-launcher/internal/testutil"
	"github.com/openstenoproject/plover-launcher/pkg/types"
)

// These tests call the real SystemExec. Every case is a failing execve, which
// returns to the caller without replacing the test binary.
func TestSystemExecFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opt      testutil.BundleOption
		wantErr  error
		wantCode types.ExitCode
	}{
		{
			name:     "missing interpreter",
			opt:      testutil.WithoutInterpreter(),
			wantErr:  unix.ENOENT,
			wantCode: types.ExitNotFound,
		},
		{
			name:     "interpreter without execute bit",
			opt:      testutil.WithInterpreter("#!/bin/sh\nexit 0\n", 0o644),
			wantErr:  unix.EACCES,
			wantCode: types.ExitCannotExecute,
		},
		{
			name:     "interpreter in unknown format",
			opt:      testutil.WithInterpreter("\x00\x01\x02not a program", 0o755),
			wantErr:  unix.ENOEXEC,
			wantCode: types.ExitCannotExecute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := testutil.NewBundle(t, distLayout(), tt.opt)
			l := New(distLayout(), WithExecutable(func() (string, error) { return b.Launcher, nil }))

			err := l.Run([]string{"--foo"})

			var launchErr *LaunchError
			if !errors.As(err, &launchErr) {
				t.Fatalf("Run() error = %v, want *LaunchError", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if got := ExitCodeOf(err); got != tt.wantCode {
				t.Errorf("ExitCodeOf() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}
