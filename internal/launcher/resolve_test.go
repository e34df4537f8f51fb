// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"testing/quick"

	"github.com/openstenoproject/plover-launcher/internal/testutil"
)

const distInterpreter = "Frameworks/Python.framework/Versions/Current/bin/python"

func TestStripComponents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		depth   int
		want    string
		wantErr error
	}{
		{name: "dist layout", path: "/Applications/App.app/Contents/MacOS/launcher", depth: 2, want: "/Applications/App.app/Contents"},
		{name: "legacy layout", path: "/Applications/App.app/Contents/MacOS/bin/launcher", depth: 3, want: "/Applications/App.app/Contents"},
		{name: "down to root", path: "/a/b", depth: 2, want: "/"},
		{name: "too shallow", path: "/a/b", depth: 3, wantErr: ErrPathTooShallow},
		{name: "zero depth", path: "/a/b", depth: 0, wantErr: ErrInvalidDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := stripComponents(filepath.FromSlash(tt.path), tt.depth)
			if tt.wantErr != nil {
				var pathErr *PathResolutionError
				if !errors.As(err, &pathErr) || !errors.Is(err, tt.wantErr) {
					t.Fatalf("stripComponents() error = %v, want PathResolutionError wrapping %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("stripComponents() error = %v", err)
			}
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("stripComponents() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDistInterpreterPath(t *testing.T) {
	t.Parallel()

	root, err := stripComponents(filepath.FromSlash("/Applications/App.app/Contents/MacOS/launcher"), 2)
	if err != nil {
		t.Fatalf("stripComponents() error = %v", err)
	}
	got := BuildInterpreterPath(root, distInterpreter)
	want := filepath.FromSlash("/Applications/App.app/Contents/Frameworks/Python.framework/Versions/Current/bin/python")
	if got != want {
		t.Errorf("interpreter path = %q, want %q", got, want)
	}
}

func TestBuildInterpreterPathDoesNotCheckExistence(t *testing.T) {
	t.Parallel()

	got := BuildInterpreterPath(filepath.FromSlash("/nonexistent/root"), "bin/python")
	if got != filepath.FromSlash("/nonexistent/root/bin/python") {
		t.Errorf("BuildInterpreterPath() = %q", got)
	}
}

func TestResolveBundleRoot(t *testing.T) {
	t.Parallel()

	b := testutil.NewBundle(t, distLayout())

	got, err := ResolveBundleRoot(b.Launcher, 2)
	if err != nil {
		t.Fatalf("ResolveBundleRoot() error = %v", err)
	}
	if got != b.Root {
		t.Errorf("ResolveBundleRoot() = %q, want %q", got, b.Root)
	}
}

func TestResolveBundleRootFollowsSymlinks(t *testing.T) {
	t.Parallel()

	b := testutil.NewBundle(t, distLayout())
	elsewhere := testutil.CanonicalTempDir(t)
	link := filepath.Join(elsewhere, "usr", "local", "bin", "plover")
	testutil.Symlink(t, b.Launcher, link)

	got, err := ResolveBundleRoot(link, 2)
	if err != nil {
		t.Fatalf("ResolveBundleRoot() error = %v", err)
	}
	if got != b.Root {
		t.Errorf("ResolveBundleRoot(symlink) = %q, want real root %q", got, b.Root)
	}
}

func TestResolveBundleRootFollowsSymlinkedDirectories(t *testing.T) {
	t.Parallel()

	b := testutil.NewBundle(t, distLayout())
	elsewhere := testutil.CanonicalTempDir(t)
	linkedApp := filepath.Join(elsewhere, "Applications", "Plover.app")
	testutil.Symlink(t, b.App, linkedApp)

	got, err := ResolveBundleRoot(filepath.Join(linkedApp, "Contents", "MacOS", testutil.LauncherName), 2)
	if err != nil {
		t.Fatalf("ResolveBundleRoot() error = %v", err)
	}
	if got != b.Root {
		t.Errorf("ResolveBundleRoot() = %q, want %q", got, b.Root)
	}
}

func TestResolveBundleRootRelativePath(t *testing.T) {
	b := testutil.NewBundle(t, distLayout())
	t.Chdir(filepath.Join(b.Root, "MacOS"))

	got, err := ResolveBundleRoot(testutil.LauncherName, 2)
	if err != nil {
		t.Fatalf("ResolveBundleRoot() error = %v", err)
	}
	if got != b.Root {
		t.Errorf("ResolveBundleRoot(relative) = %q, want %q", got, b.Root)
	}
}

func TestResolveBundleRootErrors(t *testing.T) {
	t.Parallel()

	dir := testutil.CanonicalTempDir(t)
	dangling := filepath.Join(dir, "dangling")
	testutil.Symlink(t, filepath.Join(dir, "gone"), dangling)

	tests := []struct {
		name string
		path string
	}{
		{name: "empty", path: ""},
		{name: "missing file", path: filepath.Join(dir, "missing", "launcher")},
		{name: "dangling symlink", path: dangling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ResolveBundleRoot(tt.path, 2)
			var pathErr *PathResolutionError
			if !errors.As(err, &pathErr) {
				t.Fatalf("ResolveBundleRoot(%q) error = %v, want *PathResolutionError", tt.path, err)
			}
		})
	}
}

func TestResolveBundleRootDeletedLauncher(t *testing.T) {
	t.Parallel()

	b := testutil.NewBundle(t, distLayout())
	if err := os.Remove(b.Launcher); err != nil {
		t.Fatalf("failed to remove launcher: %v", err)
	}

	_, err := ResolveBundleRoot(b.Launcher, 2)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ResolveBundleRoot() error = %v, want ErrNotExist", err)
	}
}

func TestAssembleArgumentsFixedPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		original []string
		want     []string
	}{
		{
			name:     "no arguments",
			original: nil,
			want:     []string{"/py", "-s", "-m", "plover.scripts.dist_main"},
		},
		{
			name:     "forwarded flags",
			original: []string{"--foo", "bar"},
			want:     []string{"/py", "-s", "-m", "plover.scripts.dist_main", "--foo", "bar"},
		},
		{
			name:     "arguments that look like interpreter flags",
			original: []string{"-m", "-s", "--", "-c", "print(1)"},
			want:     []string{"/py", "-s", "-m", "plover.scripts.dist_main", "-m", "-s", "--", "-c", "print(1)"},
		},
		{
			name:     "empty and spaced arguments",
			original: []string{"", "a b", "'quoted'", "$HOME"},
			want:     []string{"/py", "-s", "-m", "plover.scripts.dist_main", "", "a b", "'quoted'", "$HOME"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := AssembleArguments("/py", "plover.scripts.dist_main", tt.original)
			if !slices.Equal(got, tt.want) {
				t.Errorf("AssembleArguments() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAssembleArgumentsPreservesSuffix(t *testing.T) {
	t.Parallel()

	property := func(original []string) bool {
		argv := AssembleArguments("/py", "app.main", original)
		return len(argv) == 4+len(original) &&
			slices.Equal(argv[:4], []string{"/py", FlagNoUserSite, FlagRunModule, "app.main"}) &&
			slices.Equal(argv[4:], original)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestAssembleArgumentsDoesNotAlias(t *testing.T) {
	t.Parallel()

	original := make([]string, 2, 16)
	original[0], original[1] = "a", "b"

	argv := AssembleArguments("/py", "app.main", original)
	argv[4] = "changed"
	if original[0] != "a" {
		t.Error("AssembleArguments result aliases the caller's slice")
	}
}
