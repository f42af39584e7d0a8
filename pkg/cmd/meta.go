// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"time"

	"github.com/curfmt/curfmt/pkg/cmd/ui"
	"github.com/curfmt/curfmt/pkg/curation"
	"github.com/curfmt/curfmt/pkg/files"
	"github.com/spf13/cobra"
)

type MetaOptions struct {
	FileSourceOpts FileSourceOpts
	Output         string
	Debug          bool
}

func NewMetaOptions() *MetaOptions {
	return &MetaOptions{}
}

func NewMetaCmd(o *MetaOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Print curation meta (game and additional applications)",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.FileSourceOpts.Set(cmd)
	cmd.Flags().StringVarP(&o.Output, "output", "o", outputJSON, "Output format (json, toml)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *MetaOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.Debug))
}

func (o *MetaOptions) RunWithUI(ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	filesToProcess, err := o.FileSourceOpts.Files()
	if err != nil {
		return err
	}

	for _, file := range filesToProcess {
		meta, err := loadMeta(file, ui)
		if err != nil {
			return err
		}

		result, err := encodeValue(meta, o.Output)
		if err != nil {
			return err
		}

		fileHeader(ui, file, len(filesToProcess))
		ui.Printf("%s", result)
	}

	return nil
}

// loadMeta reads YAML files as meta.yaml curations and everything else as
// Curation Format. Problems in Curation Format files are only warned about.
func loadMeta(file *files.File, ui ui.UI) (curation.ParsedMeta, error) {
	data, err := file.Bytes()
	if err != nil {
		return curation.ParsedMeta{}, err
	}

	if file.Type() == files.TypeYAML {
		return curation.ParseMetaYAML(data, file.RelativePath(), ui)
	}
	return curation.ParseMetaText(data, file.RelativePath(), ui), nil
}
