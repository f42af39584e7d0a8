// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a
curation meta file) and line number within that source.

Positions are attached to every token produced by the tokenizer so that parse
errors can point the user at the offending line. Position also keeps a copy of
the raw source line for the same reason.

The zero-value of Position (see NewUnknownPosition()) represents a location
that did not come from any source text (e.g. objects built in memory).
*/
package filepos
