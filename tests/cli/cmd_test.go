// SPDX-License-Identifier: MPL-2.0

// Package cli contains binary-level tests using testscript.
//
// The launcher and plover-bundle are built once, then each script assembles
// a fake Plover.app around a copy of the launcher and a shell-script
// interpreter that echoes what it was started with.
package cli

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	// binDir holds the built binaries.
	binDir string
	// launcherPath is the built launcher stub.
	launcherPath string
)

func TestMain(m *testing.M) {
	wd, err := os.Getwd()
	if err != nil {
		panic("failed to get working directory: " + err.Error())
	}

	// Walk up to find go.mod
	projectRoot := wd
	for {
		if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			panic("could not find project root (go.mod)")
		}
		projectRoot = parent
	}

	binDir, err = os.MkdirTemp("", "plover-launcher-cli-")
	if err != nil {
		panic("failed to create bin directory: " + err.Error())
	}

	for _, name := range []string{"plover-launcher", "plover-bundle"} {
		out := filepath.Join(binDir, exeName(name))
		cmd := exec.CommandContext(context.Background(), "go", "build", "-o", out, "./cmd/"+name)
		cmd.Dir = projectRoot
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			panic("failed to build " + name + ": " + err.Error())
		}
	}
	launcherPath = filepath.Join(binDir, exeName("plover-launcher"))

	code := m.Run()
	_ = os.RemoveAll(binDir)
	os.Exit(code)
}

func exeName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}

// TestCLI runs all testscript tests in the testdata directory.
func TestCLI(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			env.Setenv("PATH", binDir+string(os.PathListSeparator)+env.Getenv("PATH"))
			env.Setenv("LAUNCHER_BIN", launcherPath)
			return nil
		},
		// Continue running all tests even if one fails
		ContinueOnError: true,
	})
}
