// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/curfmt/curfmt/pkg/version"
	"github.com/spf13/cobra"
)

type CurfmtOptions struct{}

func NewDefaultCurfmtOptions() *CurfmtOptions {
	return &CurfmtOptions{}
}

func NewDefaultCurfmtCmd() *cobra.Command {
	return NewCurfmtCmd(NewDefaultCurfmtOptions())
}

func NewCurfmtCmd(o *CurfmtOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "curfmt",
		Version: version.Version,
		Short:   "curfmt reads, checks and formats curation meta files",
		Long: `curfmt reads, checks and formats curation meta files.

Curation Format files (meta.txt) are indentation-sensitive "key: value"
documents with lists ("- item"), nested objects and "|" multi-line values.
YAML curations (meta.yaml) are accepted by the meta and fmt --meta commands.`,
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(NewTokensCmd(NewTokensOptions()))
	cmd.AddCommand(NewParseCmd(NewParseOptions()))
	cmd.AddCommand(NewMetaCmd(NewMetaOptions()))
	cmd.AddCommand(NewFmtCmd(NewFmtOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
