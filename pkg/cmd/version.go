// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/curfmt/curfmt/pkg/cmd/ui"
	"github.com/curfmt/curfmt/pkg/version"
	"github.com/spf13/cobra"
)

type VersionOptions struct{}

func NewVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

func NewVersionCmd(o *VersionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	return cmd
}

func (o *VersionOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(false))
}

func (o *VersionOptions) RunWithUI(ui ui.UI) error {
	ui.Printf("curfmt version %s\n", version.Version)

	return nil
}
