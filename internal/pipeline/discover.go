package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/exifdate/internal/config"
)

// ErrRootNotFound is the run-fatal error for a missing or non-directory root.
var ErrRootNotFound = errors.New("root directory not found")

// ResolveRoot returns the absolute, symlink-resolved form of dir. It fails
// with ErrRootNotFound when dir does not exist or is not a directory.
func ResolveRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRootNotFound, dir, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrRootNotFound, dir)
	}
	fi, err := os.Stat(resolved)
	if err != nil || !fi.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, dir)
	}
	return resolved, nil
}

// Discover walks root once and returns the files whose name ends with
// "."+ext for each ext in exts. Matching is case-sensitive. The result is
// grouped by extension in the order given, each group sorted
// lexicographically, so repeated runs over an unchanged tree see the same
// sequence. Unreadable subdirectories are skipped.
func Discover(root string, exts []config.Extension) ([]string, error) {
	groups := make([][]string, len(exts))
	suffixes := make([]string, len(exts))
	for i, e := range exts {
		suffixes[i] = "." + string(e)
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		for i, suffix := range suffixes {
			if strings.HasSuffix(name, suffix) {
				groups[i] = append(groups[i], path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var files []string
	for _, g := range groups {
		sort.Strings(g)
		files = append(files, g...)
	}
	return files, nil
}
