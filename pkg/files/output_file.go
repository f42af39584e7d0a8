// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"os"
	"path/filepath"
	"strings"
)

type OutputFile struct {
	relativePath string
	data         []byte
}

func NewOutputFile(relativePath string, data []byte) OutputFile {
	return OutputFile{relativePath, data}
}

// NewCurationFormatOutputFile names the output after its input, switching
// the extension to '.txt' when the input was not a Curation Format file.
func NewCurationFormatOutputFile(input *File, data []byte) OutputFile {
	relPath := input.RelativePath()
	if input.Type() != TypeCurationFormat {
		relPath = strings.TrimSuffix(relPath, filepath.Ext(relPath)) + curationFormatExts[0]
	}
	return OutputFile{relPath, data}
}

func (f OutputFile) RelativePath() string { return f.relativePath }
func (f OutputFile) Bytes() []byte        { return f.data }

func (f OutputFile) Path(dirPath string) string {
	return filepath.Join(dirPath, filepath.FromSlash(f.relativePath))
}

func (f OutputFile) Create(dirPath string) error {
	resultPath := f.Path(dirPath)

	err := os.MkdirAll(filepath.Dir(resultPath), 0700)
	if err != nil {
		return err
	}

	return os.WriteFile(resultPath, f.data, 0600)
}
