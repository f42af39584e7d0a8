// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cfmt implements the Curation Format: an indentation sensitive, line
oriented text format used to describe the metadata of a game curation.

	Title: Example Game
	Genres:
	- Action
	- Adventure
	Notes: |
	    Line one.
	    Line two.
	Additional Applications:
	    Extras: path/to/extras

Processing happens in two passes. The Tokenizer turns text into a flat list
of Token values, resolving indentation (a space is worth one point, a tab four
points, and every four points is one level), comments, list items and
multi-line block scalars. The parser then consumes those tokens and builds a
tree of *orderedmap.Map values whose leaves are strings or []string. Changes
in indentation are the only signal for entering or leaving nested objects; a
single dedent may close several objects at once.

The tokenizer never fails on input (lines it cannot classify are dropped,
unless TokenizerOpts.Strict is set). The parser fails with a *ParseError on
structural problems and never returns a partial result.

Stringify writes an object back into the format.
*/
package cfmt
