// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package curation

import (
	"fmt"

	"github.com/curfmt/curfmt/pkg/orderedmap"
)

// MetaToObject builds a document in the current curation format from meta.
// Empty fields are left out. Converting the result with ConvertMeta yields
// meta again as long as its library is lower case.
func MetaToObject(meta ParsedMeta) *orderedmap.Map {
	obj := orderedmap.NewMap()

	for _, field := range gameFields {
		if !field.Canonical {
			continue
		}
		if val := *field.Field(&meta.Game); len(val) > 0 {
			obj.Set(field.Key, val)
		}
	}

	if len(meta.AddApps) > 0 {
		addApps := orderedmap.NewMap()

		for i, addApp := range meta.AddApps {
			switch addApp.Kind {
			case AddAppExtras:
				addApps.Set("Extras", addApp.LaunchCommand)
			case AddAppMessage:
				addApps.Set("Message", addApp.LaunchCommand)
			default:
				label := addApp.Heading
				_, taken := addApps.Get(label)
				if taken || len(label) == 0 || addAppKindForLabel(label) != AddAppNormal {
					label = fmt.Sprintf("Additional Application %d", i+1)
				}

				props := orderedmap.NewMap()
				props.Set(addAppHeadingKey, addApp.Heading)
				props.Set(addAppApplicationPathKey, addApp.ApplicationPath)
				props.Set(addAppLaunchCommandKey, addApp.LaunchCommand)
				addApps.Set(label, props)
			}
		}

		obj.Set(addAppsKey, addApps)
	}

	return obj
}
