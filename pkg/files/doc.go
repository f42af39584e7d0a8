// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for enumerating and loading curation meta
files from various file or file-like Source's, and for writing formatted
results back out to a directory.

Files are processed differently depending on their Type: TypeCurationFormat
files (.txt) go through the Curation Format parser, TypeYAML files through the
YAML decoder.
*/
package files
