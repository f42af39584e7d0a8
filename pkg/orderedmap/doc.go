// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

Parsed curation documents are stored in this map so that printing,
re-stringifying and field mapping all see keys in the order they were written.
*/
package orderedmap
