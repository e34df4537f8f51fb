// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openstenoproject/plover-launcher/internal/layout"
)

// LauncherName is the file name of the fake launcher binary.
const LauncherName = "Plover"

// launcherDirs are the directories between the bundle root and the launcher,
// outermost first. Depth d uses the first d-1 entries.
var launcherDirs = []string{"MacOS", "libexec", "bin", "stage", "inner"}

type (
	// Bundle is a fake application bundle created under a test temp dir. All
	// paths are canonical, so they compare equal to resolved launcher paths.
	Bundle struct {
		// App is the Plover.app directory.
		App string
		// Root is the directory the launcher resolves to.
		Root string
		// Launcher is the launcher file.
		Launcher string
		// Interpreter is where the layout expects the interpreter.
		Interpreter string
	}

	// BundleOption customizes NewBundle.
	BundleOption func(*bundleOptions)

	bundleOptions struct {
		interpreter     bool
		interpreterBody string
		interpreterMode os.FileMode
	}
)

// WithoutInterpreter leaves the interpreter path empty.
func WithoutInterpreter() BundleOption {
	return func(o *bundleOptions) { o.interpreter = false }
}

// WithInterpreter writes the interpreter with the given content and mode.
func WithInterpreter(body string, mode os.FileMode) BundleOption {
	return func(o *bundleOptions) {
		o.interpreter = true
		o.interpreterBody = body
		o.interpreterMode = mode
	}
}

// NewBundle lays out Plover.app for l: the launcher at depth l.Depth below
// Contents and, unless disabled, an executable interpreter stub.
func NewBundle(t testing.TB, l layout.Layout, opts ...BundleOption) *Bundle {
	t.Helper()

	o := bundleOptions{
		interpreter:     true,
		interpreterBody: "#!/bin/sh\nexit 0\n",
		interpreterMode: 0o755,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if l.Depth < 1 || l.Depth-1 > len(launcherDirs) {
		t.Fatalf("unsupported layout depth %d", l.Depth)
	}

	base := CanonicalTempDir(t)
	app := filepath.Join(base, "Plover.app")
	root := filepath.Join(app, "Contents")

	launcherDir := filepath.Join(append([]string{root}, launcherDirs[:l.Depth-1]...)...)
	launcher := filepath.Join(launcherDir, LauncherName)
	WriteExecutable(t, launcher, "#!/bin/sh\nexit 0\n", 0o755)

	b := &Bundle{
		App:         app,
		Root:        root,
		Launcher:    launcher,
		Interpreter: filepath.Join(root, l.InterpreterSuffix()),
	}
	if o.interpreter {
		WriteExecutable(t, b.Interpreter, o.interpreterBody, o.interpreterMode)
	}
	return b
}

// CanonicalTempDir returns t.TempDir() with symlinks resolved (macOS puts
// temp dirs under /var, a link to /private/var).
func CanonicalTempDir(t testing.TB) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	return dir
}

// WriteExecutable writes body to path with mode, creating parent directories.
func WriteExecutable(t testing.TB, path, body string, mode os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(body), mode); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("failed to chmod %s: %v", path, err)
	}
}

// Symlink creates link pointing at target, creating link's parent directory.
func Symlink(t testing.TB, target, link string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(link), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(link), err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("failed to symlink %s -> %s: %v", link, target, err)
	}
}
