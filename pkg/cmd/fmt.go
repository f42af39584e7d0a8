// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"time"

	"github.com/curfmt/curfmt/pkg/cfmt"
	"github.com/curfmt/curfmt/pkg/cmd/ui"
	"github.com/curfmt/curfmt/pkg/curation"
	"github.com/curfmt/curfmt/pkg/files"
	"github.com/spf13/cobra"
)

type FmtOptions struct {
	FileSourceOpts FileSourceOpts
	Meta           bool
	OutputFiles    string
	Debug          bool
}

func NewFmtOptions() *FmtOptions {
	return &FmtOptions{}
}

func NewFmtCmd(o *FmtOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Format Curation Format files",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.FileSourceOpts.Set(cmd)
	cmd.Flags().BoolVar(&o.Meta, "meta", false, "Rewrite as curation meta with current key names (drops unknown keys)")
	cmd.Flags().StringVar(&o.OutputFiles, "output-files", "", "Directory to write formatted files to (replaces its contents)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *FmtOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.Debug))
}

func (o *FmtOptions) RunWithUI(ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	filesToProcess, err := o.FileSourceOpts.Files()
	if err != nil {
		return err
	}

	var outputFiles []files.OutputFile

	for _, file := range filesToProcess {
		result, err := o.format(file, ui)
		if err != nil {
			return err
		}

		if len(o.OutputFiles) > 0 {
			outputFiles = append(outputFiles, files.NewCurationFormatOutputFile(file, []byte(result)))
			continue
		}

		fileHeader(ui, file, len(filesToProcess))
		ui.Printf("%s", result)
	}

	if len(o.OutputFiles) > 0 {
		return files.NewOutputDirectory(o.OutputFiles, outputFiles, ui).Write()
	}
	return nil
}

func (o *FmtOptions) format(file *files.File, ui ui.UI) (string, error) {
	if o.Meta {
		meta, err := loadMeta(file, ui)
		if err != nil {
			return "", err
		}
		return cfmt.Stringify(curation.MetaToObject(meta))
	}

	data, err := file.Bytes()
	if err != nil {
		return "", err
	}

	obj, err := cfmt.ParseBytes(data, file.RelativePath())
	if err != nil {
		return "", err
	}

	return cfmt.Stringify(obj)
}
