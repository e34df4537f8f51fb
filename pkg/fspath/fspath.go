// SPDX-License-Identifier: MPL-2.0

// Package fspath provides typed wrappers around path/filepath functions that
// accept and return types.FilesystemPath, so launcher code keeps OS paths and
// bundle-relative paths apart.
package fspath

import (
	"fmt"
	"path/filepath"

	"github.com/openstenoproject/plover-launcher/pkg/types"
)

// Abs wraps filepath.Abs for FilesystemPath.
func Abs(p types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return types.FilesystemPath(abs), nil
}

// EvalSymlinks wraps filepath.EvalSymlinks for FilesystemPath. Every link in
// p must resolve; a dangling link is an error.
func EvalSymlinks(p types.FilesystemPath) (types.FilesystemPath, error) {
	resolved, err := filepath.EvalSymlinks(string(p))
	if err != nil {
		return "", err
	}
	return types.FilesystemPath(resolved), nil
}

// Dir wraps filepath.Dir for FilesystemPath.
func Dir(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Dir(string(p)))
}

// JoinRel joins a slash-separated relative path onto base using the OS
// separator.
func JoinRel(base types.FilesystemPath, rel types.RelativePath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Join(string(base), filepath.FromSlash(string(rel))))
}
