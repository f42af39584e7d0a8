// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package curation

import (
	"bytes"
	"fmt"

	"github.com/curfmt/curfmt/pkg/cfmt"
	"github.com/curfmt/curfmt/pkg/orderedmap"
	"gopkg.in/yaml.v3"
)

type Logger interface {
	Debugf(string, ...interface{})
	Warnf(string, ...interface{})
}

// ParseMetaText parses a Curation Format meta file. A document that fails
// to parse is logged and treated as empty, as are conversion problems.
func ParseMetaText(data []byte, associatedName string, logger Logger) ParsedMeta {
	obj, err := cfmt.ParseBytes(data, associatedName)
	if err != nil {
		logger.Warnf("Failed to parse curation meta '%s', using empty meta instead:\n%s\n", associatedName, err)
		obj = orderedmap.NewMap()
	} else {
		logger.Debugf("parsed curation meta '%s' (%d keys)\n", associatedName, obj.Len())
	}

	return ConvertMeta(obj, func(err error) {
		logger.Warnf("%s: %s\n", associatedName, err)
	})
}

// ParseMetaYAML parses a YAML meta file into the same shape as a Curation
// Format document and converts it.
func ParseMetaYAML(data []byte, associatedName string, logger Logger) (ParsedMeta, error) {
	obj, err := NewObjectFromYAML(data)
	if err != nil {
		return ParsedMeta{}, fmt.Errorf("Unmarshaling YAML curation meta '%s': %s", associatedName, err)
	}

	logger.Debugf("parsed YAML curation meta '%s' (%d keys)\n", associatedName, obj.Len())

	return ConvertMeta(obj, func(err error) {
		logger.Warnf("%s: %s\n", associatedName, err)
	}), nil
}

// NewObjectFromYAML decodes a YAML document into nested *orderedmap.Map
// values, keeping key order. Scalars become strings and sequences of
// scalars become []string.
func NewObjectFromYAML(data []byte) (*orderedmap.Map, error) {
	var doc yaml.Node

	err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	if err != nil {
		if len(bytes.TrimSpace(data)) == 0 {
			return orderedmap.NewMap(), nil
		}
		return nil, err
	}

	val, err := yamlNodeToValue(&doc)
	if err != nil {
		return nil, err
	}

	switch typedVal := val.(type) {
	case *orderedmap.Map:
		return typedVal, nil
	case string:
		if len(typedVal) == 0 {
			return orderedmap.NewMap(), nil
		}
	}
	return nil, fmt.Errorf("Expected top level value to be a mapping")
}

func yamlNodeToValue(node *yaml.Node) (interface{}, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return "", nil
		}
		return yamlNodeToValue(node.Content[0])

	case yaml.AliasNode:
		return yamlNodeToValue(node.Alias)

	case yaml.MappingNode:
		result := orderedmap.NewMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			val, err := yamlNodeToValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			result.Set(node.Content[i].Value, val)
		}
		return result, nil

	case yaml.SequenceNode:
		result := []string{}
		for _, item := range node.Content {
			val, err := yamlNodeToValue(item)
			if err != nil {
				return nil, err
			}
			str, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("Expected sequence item (line %d) to be a scalar", item.Line)
			}
			result = append(result, str)
		}
		return result, nil

	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return "", nil
		}
		return node.Value, nil

	default:
		return nil, fmt.Errorf("Unexpected YAML node kind %d (line %d)", node.Kind, node.Line)
	}
}
