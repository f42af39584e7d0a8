// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"
	"github.com/curfmt/curfmt/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultCurfmtCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "curfmt: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
