// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cfmt

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/curfmt/curfmt/pkg/orderedmap"
)

const stringifyIndent = "    "

// Stringify writes obj in the Curation Format. Lists are written at the
// indentation of their key, nested objects and multi-line strings one level
// deeper. Empty strings, lists and objects become a bare "key:".
//
// Leading and trailing whitespace of values, trailing whitespace of
// multi-line string lines and trailing newlines do not survive a round trip.
func Stringify(obj *orderedmap.Map) (string, error) {
	buf := new(bytes.Buffer)
	err := stringifier{buf}.object(obj, 0)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

type stringifier struct {
	buf *bytes.Buffer
}

func (s stringifier) object(obj *orderedmap.Map, level int) error {
	indent := strings.Repeat(stringifyIndent, level)

	return obj.IterateErr(func(key string, val interface{}) error {
		err := s.checkKey(key, level)
		if err != nil {
			return err
		}

		switch typedVal := val.(type) {
		case string:
			s.str(indent, key, typedVal)

		case []string:
			s.buf.WriteString(indent + key + ":\n")
			for _, item := range typedVal {
				if strings.ContainsAny(item, "\r\n") {
					return fmt.Errorf("Expected list item of key '%s' to be a single line", key)
				}
				s.buf.WriteString(indent + "- " + strings.TrimSpace(item) + "\n")
			}

		case *orderedmap.Map:
			s.buf.WriteString(indent + key + ":\n")
			return s.object(typedVal, level+1)

		default:
			return fmt.Errorf("Unsupported value type %T for key '%s'", val, key)
		}
		return nil
	})
}

func (s stringifier) str(indent, key, val string) {
	val = strings.ReplaceAll(val, "\r", "")
	trimmed := strings.TrimSpace(val)

	switch {
	case trimmed == "":
		s.buf.WriteString(indent + key + ":\n")

	case strings.Contains(val, "\n") || trimmed == "|":
		s.buf.WriteString(indent + key + ": |\n")
		for _, line := range strings.Split(strings.TrimRight(val, "\n"), "\n") {
			line = strings.TrimRight(line, " \t")
			if len(line) > 0 {
				line = indent + stringifyIndent + line
			}
			s.buf.WriteString(line + "\n")
		}

	default:
		s.buf.WriteString(indent + key + ": " + trimmed + "\n")
	}
}

func (stringifier) checkKey(key string, level int) error {
	switch {
	case strings.ContainsAny(key, ":\r\n"):
		return fmt.Errorf("Expected key '%s' to not contain ':' or line breaks", key)
	case strings.HasPrefix(key, "- "):
		return fmt.Errorf("Expected key '%s' to not start with '- '", key)
	case level == 0 && strings.HasPrefix(key, "#"):
		return fmt.Errorf("Expected top level key '%s' to not start with '#'", key)
	case len(key) > 0 && leadingIndentChars(key) > 0:
		return fmt.Errorf("Expected key '%s' to not start with whitespace", key)
	}
	return nil
}
