// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"log/slog"
	"os"
	"slices"

	"github.com/openstenoproject/plover-launcher/internal/layout"
)

type (
	// ExecFunc replaces the current process image. Implementations return
	// only on failure; SystemExec is the production implementation.
	ExecFunc func(argv0 string, argv []string, envv []string) error

	// Request is a fully assembled launch. It is built once by Prepare and
	// consumed once by Launch.
	Request struct {
		Layout          string   `json:"layout" toml:"layout"`
		ExecutablePath  string   `json:"executable_path" toml:"executable_path"`
		BundleRoot      string   `json:"bundle_root" toml:"bundle_root"`
		InterpreterPath string   `json:"interpreter_path" toml:"interpreter_path"`
		Argv            []string `json:"argv" toml:"argv"`
	}

	// Launcher prepares and performs launches for one bundle layout.
	Launcher struct {
		layout     layout.Layout
		executable func() (string, error)
		exec       ExecFunc
		environ    func() []string
	}

	// Option customizes a Launcher.
	Option func(*Launcher)
)

// WithExecutable overrides how the launcher finds its own path.
func WithExecutable(fn func() (string, error)) Option {
	return func(l *Launcher) { l.executable = fn }
}

// WithExecFunc overrides the process replacement call.
func WithExecFunc(fn ExecFunc) Option {
	return func(l *Launcher) { l.exec = fn }
}

// WithEnviron overrides the environment handed to the interpreter.
func WithEnviron(fn func() []string) Option {
	return func(l *Launcher) { l.environ = fn }
}

// New creates a Launcher for the given layout. By default it asks the OS for
// its own path, passes the current environment through unchanged and uses
// SystemExec.
func New(l layout.Layout, opts ...Option) *Launcher {
	ln := &Launcher{
		layout:     l,
		executable: os.Executable,
		exec:       SystemExec,
		environ:    os.Environ,
	}
	for _, opt := range opts {
		opt(ln)
	}
	return ln
}

// Layout returns the layout the launcher was built with.
func (l *Launcher) Layout() layout.Layout { return l.layout }

// Prepare builds the launch request for the running binary. The path comes
// from the operating system, never from argv[0]. args are the caller's
// arguments without argv[0].
func (l *Launcher) Prepare(args []string) (*Request, error) {
	own, err := l.executable()
	if err != nil {
		return nil, &PathResolutionError{Err: err}
	}
	return l.PrepareFrom(own, args)
}

// PrepareFrom builds the launch request a launcher located at ownPath would
// build.
func (l *Launcher) PrepareFrom(ownPath string, args []string) (*Request, error) {
	canonical, root, err := resolveBundle(ownPath, l.layout.Depth)
	if err != nil {
		return nil, err
	}
	interpreter := BuildInterpreterPath(root, l.layout.Interpreter)

	slog.Debug("resolved bundle",
		"layout", l.layout.Name,
		"executable", canonical,
		"bundle_root", root,
		"interpreter", interpreter,
	)

	return &Request{
		Layout:          l.layout.Name,
		ExecutablePath:  canonical,
		BundleRoot:      root,
		InterpreterPath: interpreter,
		Argv:            AssembleArguments(interpreter, l.layout.EntryPoint, args),
	}, nil
}

// Launch replaces the current process with req.Argv[0]. With SystemExec it
// does not return on success; a nil return is only possible with a
// substituted ExecFunc.
func (l *Launcher) Launch(req *Request) error {
	if req == nil || len(req.Argv) == 0 {
		return &LaunchError{Err: ErrEmptyArgv}
	}

	slog.Debug("replacing process", "interpreter", req.Argv[0], "argc", len(req.Argv))

	if err := l.exec(req.Argv[0], slices.Clone(req.Argv), l.environ()); err != nil {
		return &LaunchError{Path: req.Argv[0], Err: err}
	}
	return nil
}

// Run prepares a request for args and launches it.
func (l *Launcher) Run(args []string) error {
	req, err := l.Prepare(args)
	if err != nil {
		return err
	}
	return l.Launch(req)
}
