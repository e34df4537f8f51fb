// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"github.com/openstenoproject/plover-launcher/pkg/fspath"
	"github.com/openstenoproject/plover-launcher/pkg/types"
)

// Bootstrap flags placed between the interpreter and the entry point:
// -s skips the user site-packages directory, -m runs a module.
const (
	FlagNoUserSite = "-s"
	FlagRunModule  = "-m"
)

// CanonicalPath returns ownPath as an absolute path with every symbolic link
// resolved.
func CanonicalPath(ownPath string) (string, error) {
	p := types.FilesystemPath(ownPath)
	if err := p.Validate(); err != nil {
		return "", &PathResolutionError{Path: ownPath, Err: err}
	}
	abs, err := fspath.Abs(p)
	if err != nil {
		return "", &PathResolutionError{Path: ownPath, Err: err}
	}
	canonical, err := fspath.EvalSymlinks(abs)
	if err != nil {
		return "", &PathResolutionError{Path: ownPath, Err: err}
	}
	return string(canonical), nil
}

// ResolveBundleRoot canonicalizes ownPath and strips depth trailing
// components from it. The launcher file itself is the first component
// stripped, so depth 2 maps .../Contents/MacOS/launcher to .../Contents.
func ResolveBundleRoot(ownPath string, depth int) (string, error) {
	_, root, err := resolveBundle(ownPath, depth)
	return root, err
}

// resolveBundle returns both the canonical launcher path and the bundle root
// derived from it.
func resolveBundle(ownPath string, depth int) (canonical, root string, err error) {
	canonical, err = CanonicalPath(ownPath)
	if err != nil {
		return "", "", err
	}
	root, err = stripComponents(canonical, depth)
	if err != nil {
		return "", "", err
	}
	return canonical, root, nil
}

func stripComponents(path string, depth int) (string, error) {
	if depth < 1 {
		return "", &PathResolutionError{Path: path, Err: ErrInvalidDepth}
	}
	dir := types.FilesystemPath(path)
	for range depth {
		parent := fspath.Dir(dir)
		if parent == dir {
			return "", &PathResolutionError{Path: path, Err: ErrPathTooShallow}
		}
		dir = parent
	}
	return string(dir), nil
}

// BuildInterpreterPath joins the bundle root with the interpreter suffix.
// The result is not checked for existence; a missing interpreter surfaces
// when Launch runs.
func BuildInterpreterPath(bundleRoot string, suffix types.RelativePath) string {
	return string(fspath.JoinRel(types.FilesystemPath(bundleRoot), suffix))
}

// AssembleArguments returns
//
//	[interpreterPath, "-s", "-m", entryPoint, original...]
//
// original is copied verbatim; the returned slice never aliases it.
func AssembleArguments(interpreterPath, entryPoint string, original []string) []string {
	argv := make([]string, 0, 4+len(original))
	argv = append(argv, interpreterPath, FlagNoUserSite, FlagRunModule, entryPoint)
	return append(argv, original...)
}
