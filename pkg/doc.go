// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of curfmt.

Packages are layered; each depends on the ones below it only as far as needed.
In the inventory, below, individual packages are named alongside their coupling
with the other packages in the codebase.

	(# of dependents) => <package name> => (# of dependencies)

# Entry Point

curfmt is built into a single executable:

	./cmd/curfmt               // a command-line tool

# Commands

	(1) => pkg/cmd => (6)

# Curation Meta

Maps parsed documents (Curation Format or YAML) onto game and additional
application records, and back.

	(1) => pkg/curation => (2)

# Curation Format

The indentation-sensitive tokenizer, the recursive-descent parser and the
stringifier.

	(2) => pkg/cfmt => (2)

# Inputs and Outputs

	(1) => pkg/files => (0)

# Utilities

Domain-agnostic utilities.

	(1) => pkg/cmd/ui => (0)
	(3) => pkg/orderedmap => (0)
	(1) => pkg/filepos => (0)
	(1) => pkg/version => (0)

# Dependencies

Each package's dependencies on other packages within this module are as follows
(if a package is not listed, it has no dependencies on other packages within
this module):

	pkg/cmd:
	- pkg/cfmt
	- pkg/cmd/ui
	- pkg/curation
	- pkg/files
	- pkg/orderedmap
	- pkg/version
	pkg/curation:
	- pkg/cfmt
	- pkg/orderedmap
	pkg/cfmt:
	- pkg/filepos
	- pkg/orderedmap
*/
package pkg
