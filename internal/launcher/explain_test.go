// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/openstenoproject/plover-launcher/internal/issue"
	"github.com/openstenoproject/plover-launcher/pkg/types"
)

func TestExplain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantIssue issue.Id
		wantCode  types.ExitCode
	}{
		{
			name:      "path resolution",
			err:       &PathResolutionError{Err: errors.New("no path")},
			wantIssue: issue.ExecutableUnresolvedId,
			wantCode:  types.ExitFailure,
		},
		{
			name:      "missing interpreter",
			err:       &LaunchError{Path: "/py", Err: fs.ErrNotExist},
			wantIssue: issue.InterpreterNotFoundId,
			wantCode:  types.ExitNotFound,
		},
		{
			name:      "interpreter not executable",
			err:       &LaunchError{Path: "/py", Err: fs.ErrPermission},
			wantIssue: issue.InterpreterNotExecutableId,
			wantCode:  types.ExitCannotExecute,
		},
		{
			name:      "other launch failure",
			err:       &LaunchError{Path: "/py", Err: errors.New("too many files")},
			wantIssue: issue.LaunchFailedId,
			wantCode:  types.ExitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			explained := Explain(tt.err)

			if got := issue.IssueOf(explained); got != tt.wantIssue {
				t.Errorf("IssueOf() = %d, want %d", got, tt.wantIssue)
			}
			if !errors.Is(explained, tt.err) {
				t.Error("explained error should still wrap the original")
			}
			if got := ExitCodeOf(explained); got != tt.wantCode {
				t.Errorf("ExitCodeOf() = %d, want %d", got, tt.wantCode)
			}
			if !strings.Contains(explained.Error(), tt.err.Error()) {
				t.Errorf("Error() = %q, want it to contain %q", explained.Error(), tt.err.Error())
			}
		})
	}
}

func TestExplainSuggestsDoctorForMissingInterpreter(t *testing.T) {
	t.Parallel()

	out := issue.Describe(Explain(&LaunchError{Path: "/py", Err: fs.ErrNotExist}), false)
	if !strings.Contains(out, "plover-bundle doctor") {
		t.Errorf("Describe() = %q, want a doctor hint", out)
	}
}

func TestExplainLeavesForeignErrors(t *testing.T) {
	t.Parallel()

	foreign := errors.New("unrelated")
	if got := Explain(foreign); got != foreign {
		t.Errorf("Explain() = %v, want the error unchanged", got)
	}
	if got := Explain(nil); got != nil {
		t.Errorf("Explain(nil) = %v, want nil", got)
	}
}
