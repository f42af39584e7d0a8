// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package curation maps parsed curation meta documents onto typed game and
additional application records.

Both the Curation Format (meta.txt, see package cfmt) and YAML (meta.yaml)
documents are first turned into an *orderedmap.Map and then projected through
the same fixed, case-sensitive field table. Unknown keys are ignored; values
of the wrong shape are reported through an error callback and otherwise
skipped.
*/
package curation
