// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"time"

	"github.com/curfmt/curfmt/pkg/cfmt"
	"github.com/curfmt/curfmt/pkg/cmd/ui"
	"github.com/spf13/cobra"
)

type ParseOptions struct {
	FileSourceOpts FileSourceOpts
	Output         string
	Strict         bool
	Debug          bool
}

func NewParseOptions() *ParseOptions {
	return &ParseOptions{}
}

func NewParseCmd(o *ParseOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse Curation Format files",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.FileSourceOpts.Set(cmd)
	cmd.Flags().StringVarP(&o.Output, "output", "o", outputTree, "Output format (cf, json, toml, tree)")
	cmd.Flags().BoolVar(&o.Strict, "strict", false, "Fail on lines that are not a comment, list item or entry")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *ParseOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.Debug))
}

func (o *ParseOptions) RunWithUI(ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	filesToProcess, err := o.FileSourceOpts.Files()
	if err != nil {
		return err
	}

	for _, file := range filesToProcess {
		data, err := file.Bytes()
		if err != nil {
			return err
		}

		tokens, err := cfmt.NewTokenizer(cfmt.TokenizerOpts{
			AssociatedName: file.RelativePath(),
			Strict:         o.Strict,
		}).TokenizeBytes(data)
		if err != nil {
			return err
		}

		obj, err := cfmt.Parse(tokens)
		if err != nil {
			return err
		}

		ui.Debugf("parsed %s: %d tokens, %d keys\n", file.Description(), len(tokens), obj.Len())

		result, err := encodeObject(obj, o.Output)
		if err != nil {
			return err
		}

		fileHeader(ui, file, len(filesToProcess))
		ui.Printf("%s", result)
	}

	return nil
}
