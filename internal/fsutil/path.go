package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var ErrPathTraversal = errors.New("path escapes root")

// JoinFile joins root and a bare filename, ensuring the result stays within root.
// Names containing separators or dot segments are rejected. When the target is a
// symlink it must resolve inside root.
func JoinFile(root, name string) (string, error) {
	if err := CheckName(name); err != nil {
		return "", err
	}

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}

	candidate := filepath.Join(rootAbs, name)
	if !within(rootAbs, candidate) {
		return "", ErrPathTraversal
	}

	fi, err := os.Lstat(candidate)
	if err != nil || fi.Mode()&os.ModeSymlink == 0 {
		// Missing files are fine; callers decide what absence means
		return candidate, nil
	}

	target, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		return "", err
	}
	realRoot, err := filepath.EvalSymlinks(rootAbs)
	if err != nil {
		return "", err
	}
	if !within(realRoot, target) {
		return "", ErrPathTraversal
	}
	return candidate, nil
}

// CheckName rejects anything that is not a bare filename. It does not touch the filesystem.
func CheckName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return ErrPathTraversal
	}
	return nil
}

// IsRegularFile reports whether path exists and is a regular file (symlinks followed)
func IsRegularFile(path string) (os.FileInfo, bool) {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return nil, false
	}
	return fi, true
}

func within(root, path string) bool {
	root = filepath.Clean(root)
	path = filepath.Clean(path)
	if root == path {
		return true
	}
	if !strings.HasSuffix(root, string(filepath.Separator)) {
		root += string(filepath.Separator)
	}
	return strings.HasPrefix(path, root)
}
