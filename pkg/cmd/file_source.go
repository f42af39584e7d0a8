// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/curfmt/curfmt/pkg/cmd/ui"
	"github.com/curfmt/curfmt/pkg/files"
	"github.com/spf13/cobra"
)

type FileSourceOpts struct {
	Paths     []string
	Recursive bool

	AllowedSymlinkDestinations  []string
	AllowAllSymlinkDestinations bool
}

func (s *FileSourceOpts) Set(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&s.Paths, "file", "f", nil, "File (ie local path, HTTP URL, -) (can be specified multiple times)")
	cmd.Flags().BoolVarP(&s.Recursive, "recursive", "R", false, "Interpret file as directory")
	cmd.Flags().StringSliceVar(&s.AllowedSymlinkDestinations, "allow-symlink-destination", nil,
		"Symlinks to these paths are allowed (can be specified multiple times)")
	cmd.Flags().BoolVar(&s.AllowAllSymlinkDestinations, "dangerous-allow-all-symlink-destinations", false,
		"Symlinks to all destinations are allowed")
}

func (s *FileSourceOpts) Files() ([]*files.File, error) {
	if len(s.Paths) == 0 {
		return nil, fmt.Errorf("Expected at least one file to be given via -f")
	}

	return files.NewSortedFilesFromPaths(s.Paths, files.FilesOpts{
		Recursive: s.Recursive,
		Symlinks: files.SymlinkAllowOpts{
			AllowAll:        s.AllowAllSymlinkDestinations,
			AllowedDstPaths: s.AllowedSymlinkDestinations,
		},
	})
}

// fileHeader separates outputs when several files are processed.
func fileHeader(ui ui.UI, file *files.File, total int) {
	if total > 1 {
		ui.Printf("# %s\n", file.RelativePath())
	}
}
