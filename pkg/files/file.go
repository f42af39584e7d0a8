// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	curationFormatExts = []string{".txt"}
	yamlExts           = []string{".yaml", ".yml"}
)

type Type int

const (
	TypeUnknown Type = iota
	TypeCurationFormat
	TypeYAML
)

func (t Type) String() string {
	switch t {
	case TypeCurationFormat:
		return "curation-format"
	case TypeYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

type FilesOpts struct {
	Recursive bool
	Symlinks  SymlinkAllowOpts
}

type File struct {
	src     Source
	relPath string
}

// NewSortedFilesFromPaths resolves paths (local files or directories, HTTP
// URLs, or '-' for stdin) into files. Directory contents are sorted by path.
func NewSortedFilesFromPaths(paths []string, opts FilesOpts) ([]*File, error) {
	var fileSrcs []Source

	for _, path := range paths {
		switch {
		case path == "-":
			fileSrcs = append(fileSrcs, NewStdinSource())

		case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
			fileSrcs = append(fileSrcs, NewHTTPSource(path))

		default:
			fileInfo, err := os.Lstat(path)
			if err != nil {
				return nil, fmt.Errorf("Checking file '%s': %s", path, err)
			}

			if fileInfo.Mode()&os.ModeSymlink != 0 {
				err := Symlink{path}.IsAllowed(opts.Symlinks)
				if err != nil {
					return nil, fmt.Errorf("Checking symlink file '%s': %s", path, err)
				}
				fileInfo, err = os.Stat(path)
				if err != nil {
					return nil, fmt.Errorf("Checking file '%s': %s", path, err)
				}
			}

			if !fileInfo.IsDir() {
				fileSrcs = append(fileSrcs, NewLocalSource(path, ""))
				continue
			}

			if !opts.Recursive {
				return nil, fmt.Errorf("Expected file '%s' to not be a directory", path)
			}

			var selectedPaths []string

			err = filepath.Walk(path, func(walkedPath string, fi os.FileInfo, err error) error {
				if err != nil || fi.IsDir() {
					return err
				}
				if fi.Mode()&os.ModeSymlink != 0 {
					err := Symlink{walkedPath}.IsAllowed(opts.Symlinks)
					if err != nil {
						return fmt.Errorf("Checking symlink file '%s': %s", walkedPath, err)
					}
				}
				selectedPaths = append(selectedPaths, walkedPath)
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("Listing files '%s': %s", path, err)
			}

			sort.Strings(selectedPaths)

			for _, selectedPath := range selectedPaths {
				fileSrcs = append(fileSrcs, NewLocalSource(selectedPath, path))
			}
		}
	}

	var files []*File

	for _, fileSrc := range fileSrcs {
		file, err := NewFileFromSource(NewCachedSource(fileSrc))
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for '%s': %s", fileSrc.Description(), err)
	}

	return &File{src: fileSrc, relPath: relPath}, nil
}

func MustNewFileFromSource(fileSrc Source) *File {
	file, err := NewFileFromSource(fileSrc)
	if err != nil {
		panic(err)
	}
	return file
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

func (r *File) Type() Type {
	switch {
	case r.matchesExt(curationFormatExts):
		return TypeCurationFormat
	case r.matchesExt(yamlExts):
		return TypeYAML
	default:
		return TypeUnknown
	}
}

func (r *File) matchesExt(exts []string) bool {
	filename := strings.ToLower(filepath.Base(r.RelativePath()))
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
