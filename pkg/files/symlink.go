// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Symlink is a curation file given (or found in a directory) as a symbolic link.
type Symlink struct {
	path string
}

type SymlinkAllowOpts struct {
	AllowAll        bool
	AllowedDstPaths []string
}

// On Linux, /dev/fd/N for a pipe resolves to a path that does not exist.
var symlinkPipeErr = regexp.MustCompile(`^lstat /proc/\d+/fd/pipe:\[\d+\]: no such file or directory$`)

// IsAllowed checks that the link points into one of the allowed destinations.
// Destinations are compared after resolving their own symlinks.
func (s Symlink) IsAllowed(opts SymlinkAllowOpts) error {
	if opts.AllowAll {
		return nil
	}

	dstPath, err := filepath.EvalSymlinks(s.path)
	if err != nil {
		if symlinkPipeErr.MatchString(err.Error()) {
			return nil
		}
		return fmt.Errorf("Resolving symlink '%s': %s", s.path, err)
	}

	dstPath, err = resolvedAbsPath(dstPath)
	if err != nil {
		return err
	}

	for _, allowedDstPath := range opts.AllowedDstPaths {
		allowedPath, err := resolvedAbsPath(allowedDstPath)
		if err != nil {
			return err
		}
		if isWithinDir(dstPath, allowedPath) {
			return nil
		}
	}

	return fmt.Errorf("Expected symlink '%s' -> '%s' to point into an allowed destination "+
		"(see --allow-symlink-destination), but it did not", s.path, dstPath)
}

func resolvedAbsPath(path string) (string, error) {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("Abs path '%s': %s", path, err)
	}
	return absPath, nil
}

// isWithinDir expects both paths to be absolute and clean.
func isWithinDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
