// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"time"

	"github.com/curfmt/curfmt/pkg/cfmt"
	"github.com/curfmt/curfmt/pkg/cmd/ui"
	"github.com/spf13/cobra"
)

type TokensOptions struct {
	FileSourceOpts FileSourceOpts
	Table          bool
	Strict         bool
	Debug          bool
}

func NewTokensOptions() *TokensOptions {
	return &TokensOptions{}
}

func NewTokensCmd(o *TokensOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print Curation Format tokens",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.FileSourceOpts.Set(cmd)
	cmd.Flags().BoolVar(&o.Table, "table", false, "Print tokens as a table")
	cmd.Flags().BoolVar(&o.Strict, "strict", false, "Fail on lines that are not a comment, list item or entry")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *TokensOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.Debug))
}

func (o *TokensOptions) RunWithUI(ui ui.UI) error {
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

		tokenizer := cfmt.NewTokenizer(cfmt.TokenizerOpts{AssociatedName: file.RelativePath(), Strict: o.Strict})

		tokens, err := tokenizer.TokenizeBytes(data)
		if err != nil {
			return err
		}

		ui.Debugf("tokenized %s: %d tokens\n", file.Description(), len(tokens))

		fileHeader(ui, file, len(filesToProcess))

		if o.Table {
			ui.Printf("%s\n", o.tokensTable(tokens, ui.IsTerminal()))
		} else {
			ui.Printf("%s", cfmt.NewPrinter(nil).PrintStr(tokens))
		}
	}

	return nil
}

func (o *TokensOptions) tokensTable(tokens []cfmt.Token, terminal bool) string {
	var rows [][]string

	for i, tok := range tokens {
		var detail string

		switch tok.Type {
		case cfmt.TokenComment:
			detail = fmt.Sprintf("%q", tok.Content)
		case cfmt.TokenIdentifier:
			detail = fmt.Sprintf("%q", tok.Name)
		case cfmt.TokenIndentChange:
			detail = fmt.Sprintf("%+d", tok.Delta)
		case cfmt.TokenListItem, cfmt.TokenValue:
			detail = fmt.Sprintf("%q", tok.Value)
		}

		rows = append(rows, []string{fmt.Sprintf("%d", i), tok.Position.AsCompactString(), tok.Type.String(), detail})
	}

	return renderTable([]string{"Index", "Position", "Type", "Detail"}, rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}, terminal)
}
