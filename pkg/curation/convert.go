// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package curation

import (
	"fmt"
	"strings"

	"github.com/curfmt/curfmt/pkg/orderedmap"
)

// multiValueSeparator joins list values for fields that hold a single string.
const multiValueSeparator = "; "

// ConvertError describes a value that could not be mapped.
type ConvertError struct {
	Path []string
	Msg  string
}

func (e ConvertError) Error() string {
	return fmt.Sprintf("Error while converting Curation Meta: %s (path: '%s')", e.Msg, strings.Join(e.Path, "."))
}

// ConvertMeta projects a parsed document onto ParsedMeta. Problems are
// reported to onError (which may be nil) and never abort the conversion.
func ConvertMeta(obj *orderedmap.Map, onError func(error)) ParsedMeta {
	c := converter{onError: onError}
	if c.onError == nil {
		c.onError = func(error) {}
	}
	return c.convert(obj)
}

type converter struct {
	onError func(error)
}

func (c converter) convert(obj *orderedmap.Map) ParsedMeta {
	parsed := ParsedMeta{AddApps: []AddApp{}}
	if obj == nil {
		return parsed
	}

	for _, field := range gameFields {
		raw, found := obj.Get(field.Key)
		if !found {
			continue
		}
		val, ok := c.str(raw, []string{field.Key})
		if !ok {
			continue
		}
		if field.Transform != nil {
			val = field.Transform(val)
		}
		*field.Field(&parsed.Game) = val
	}

	if raw, found := obj.Get(addAppsKey); found {
		parsed.AddApps = append(parsed.AddApps, c.addApps(raw)...)
	}

	return parsed
}

func (c converter) addApps(raw interface{}) []AddApp {
	var result []AddApp

	switch typedRaw := raw.(type) {
	case *orderedmap.Map:
		typedRaw.Iterate(func(label string, val interface{}) {
			result = append(result, c.addApp(label, val))
		})

	case string:
		// "Additional Applications:" with nothing below it
		if len(typedRaw) > 0 {
			c.fail([]string{addAppsKey}, "Expected value to be an object, but was a string")
		}

	default:
		c.fail([]string{addAppsKey}, fmt.Sprintf("Expected value to be an object, but was %s", c.shapeName(raw)))
	}

	return result
}

func (c converter) addApp(label string, raw interface{}) AddApp {
	path := []string{addAppsKey, label}

	switch addAppKindForLabel(label) {
	case AddAppExtras:
		val, _ := c.str(raw, path)
		return NewExtrasAddApp(val)

	case AddAppMessage:
		val, _ := c.str(raw, path)
		return NewMessageAddApp(val)

	default:
		addApp := AddApp{Kind: AddAppNormal, Heading: label}

		props, ok := raw.(*orderedmap.Map)
		if !ok {
			c.fail(path, fmt.Sprintf("Expected value to be an object, but was %s", c.shapeName(raw)))
			return addApp
		}

		c.prop(props, path, addAppHeadingKey, &addApp.Heading)
		c.prop(props, path, addAppApplicationPathKey, &addApp.ApplicationPath)
		c.prop(props, path, addAppLaunchCommandKey, &addApp.LaunchCommand)

		return addApp
	}
}

func (c converter) prop(obj *orderedmap.Map, path []string, key string, dst *string) {
	raw, found := obj.Get(key)
	if !found {
		return
	}
	if val, ok := c.str(raw, append(append([]string{}, path...), key)); ok {
		*dst = val
	}
}

// str coerces a value to a string. Lists are joined; objects are rejected.
func (c converter) str(raw interface{}, path []string) (string, bool) {
	switch typedRaw := raw.(type) {
	case nil:
		return "", true
	case string:
		return typedRaw, true
	case []string:
		return strings.Join(typedRaw, multiValueSeparator), true
	case *orderedmap.Map:
		c.fail(path, "Expected value to be a string or list of strings, but was an object")
		return "", false
	default:
		return fmt.Sprintf("%v", typedRaw), true
	}
}

func (c converter) shapeName(raw interface{}) string {
	switch raw.(type) {
	case string:
		return "a string"
	case []string:
		return "a list"
	case *orderedmap.Map:
		return "an object"
	default:
		return fmt.Sprintf("%T", raw)
	}
}

func (c converter) fail(path []string, msg string) {
	c.onError(ConvertError{Path: path, Msg: msg})
}
