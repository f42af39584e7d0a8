// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package curation

import (
	"strings"
)

const addAppsKey = "Additional Applications"

type gameField struct {
	Key   string
	Field func(*GameMeta) *string
	// Canonical keys are the ones written back out by MetaToObject
	Canonical bool
	Transform func(string) string
}

// Order matters: when several keys feed the same field, the later key wins.
var gameFields = []gameField{
	// old curation format
	{Key: "Author Notes", Field: func(m *GameMeta) *string { return &m.AuthorNotes }},
	{Key: "Genre", Field: func(m *GameMeta) *string { return &m.Genre }},
	{Key: "Notes", Field: func(m *GameMeta) *string { return &m.Notes }},

	{Key: "Title", Field: func(m *GameMeta) *string { return &m.Title }, Canonical: true},
	{Key: "Library", Field: func(m *GameMeta) *string { return &m.Library }, Canonical: true, Transform: strings.ToLower},
	{Key: "Series", Field: func(m *GameMeta) *string { return &m.Series }, Canonical: true},
	{Key: "Developer", Field: func(m *GameMeta) *string { return &m.Developer }, Canonical: true},
	{Key: "Publisher", Field: func(m *GameMeta) *string { return &m.Publisher }, Canonical: true},
	{Key: "Play Mode", Field: func(m *GameMeta) *string { return &m.PlayMode }, Canonical: true},
	{Key: "Release Date", Field: func(m *GameMeta) *string { return &m.ReleaseDate }, Canonical: true},
	{Key: "Version", Field: func(m *GameMeta) *string { return &m.Version }, Canonical: true},
	{Key: "Languages", Field: func(m *GameMeta) *string { return &m.Language }, Canonical: true},
	{Key: "Extreme", Field: func(m *GameMeta) *string { return &m.Extreme }, Canonical: true},
	{Key: "Genres", Field: func(m *GameMeta) *string { return &m.Genre }},
	{Key: "Tags", Field: func(m *GameMeta) *string { return &m.Genre }, Canonical: true},
	{Key: "Source", Field: func(m *GameMeta) *string { return &m.Source }, Canonical: true},
	{Key: "Platform", Field: func(m *GameMeta) *string { return &m.Platform }, Canonical: true},
	{Key: "Status", Field: func(m *GameMeta) *string { return &m.Status }, Canonical: true},
	{Key: "Application Path", Field: func(m *GameMeta) *string { return &m.ApplicationPath }, Canonical: true},
	{Key: "Launch Command", Field: func(m *GameMeta) *string { return &m.LaunchCommand }, Canonical: true},
	{Key: "Game Notes", Field: func(m *GameMeta) *string { return &m.Notes }, Canonical: true},
	{Key: "Original Description", Field: func(m *GameMeta) *string { return &m.OriginalDescription }, Canonical: true},
	{Key: "Curation Notes", Field: func(m *GameMeta) *string { return &m.AuthorNotes }, Canonical: true},

	// aliases
	{Key: "Animation Notes", Field: func(m *GameMeta) *string { return &m.Notes }},
}

const (
	addAppHeadingKey         = "Heading"
	addAppApplicationPathKey = "Application Path"
	addAppLaunchCommandKey   = "Launch Command"
)

// addAppKindForLabel selects the kind of an additional application from its
// label in the "Additional Applications" object.
func addAppKindForLabel(label string) AddAppKind {
	switch strings.ToLower(label) {
	case "extras":
		return AddAppExtras
	case "message":
		return AddAppMessage
	default:
		return AddAppNormal
	}
}
