// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/curfmt/curfmt/pkg/cfmt"
	"github.com/curfmt/curfmt/pkg/orderedmap"
)

const (
	outputCurationFormat = "cf"
	outputJSON           = "json"
	outputTOML           = "toml"
	outputTree           = "tree"
)

// encodeObject renders a parsed document. JSON and TOML sort keys; the
// Curation Format and tree outputs keep document order.
func encodeObject(obj *orderedmap.Map, format string) (string, error) {
	switch format {
	case outputCurationFormat:
		return cfmt.Stringify(obj)

	case outputTree:
		return cfmt.NewPrinter(nil).PrintStr(obj), nil

	case outputJSON, outputTOML:
		return encodeValue(orderedmap.Conversion{Object: obj}.AsUnorderedStringMaps(), format)

	default:
		return "", fmt.Errorf("Unknown output format '%s' (expected one of: %s, %s, %s, %s)",
			format, outputCurationFormat, outputJSON, outputTOML, outputTree)
	}
}

func encodeValue(val interface{}, format string) (string, error) {
	switch format {
	case outputJSON:
		valBs, err := json.MarshalIndent(val, "", "  ")
		if err != nil {
			return "", err
		}
		return string(valBs) + "\n", nil

	case outputTOML:
		var buffer bytes.Buffer
		err := toml.NewEncoder(&buffer).Encode(val)
		if err != nil {
			return "", err
		}
		return buffer.String(), nil

	default:
		return "", fmt.Errorf("Unknown output format '%s' (expected one of: %s, %s)", format, outputJSON, outputTOML)
	}
}
