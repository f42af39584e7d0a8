// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is the source for the curfmt command line interface.

Each subcommand has an Options struct bound to its flags and a Run method;
RunWithUI takes the ui.UI to write to so commands can be driven from tests.
*/
package cmd
