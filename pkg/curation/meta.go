// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package curation

import (
	"fmt"
)

type GameMeta struct {
	Title               string `json:"title,omitempty" toml:"title,omitempty"`
	Library             string `json:"library,omitempty" toml:"library,omitempty"`
	Series              string `json:"series,omitempty" toml:"series,omitempty"`
	Developer           string `json:"developer,omitempty" toml:"developer,omitempty"`
	Publisher           string `json:"publisher,omitempty" toml:"publisher,omitempty"`
	PlayMode            string `json:"playMode,omitempty" toml:"playMode,omitempty"`
	ReleaseDate         string `json:"releaseDate,omitempty" toml:"releaseDate,omitempty"`
	Version             string `json:"version,omitempty" toml:"version,omitempty"`
	Language            string `json:"language,omitempty" toml:"language,omitempty"`
	Extreme             string `json:"extreme,omitempty" toml:"extreme,omitempty"`
	Genre               string `json:"genre,omitempty" toml:"genre,omitempty"`
	Source              string `json:"source,omitempty" toml:"source,omitempty"`
	Platform            string `json:"platform,omitempty" toml:"platform,omitempty"`
	Status              string `json:"status,omitempty" toml:"status,omitempty"`
	ApplicationPath     string `json:"applicationPath,omitempty" toml:"applicationPath,omitempty"`
	LaunchCommand       string `json:"launchCommand,omitempty" toml:"launchCommand,omitempty"`
	Notes               string `json:"notes,omitempty" toml:"notes,omitempty"`
	OriginalDescription string `json:"originalDescription,omitempty" toml:"originalDescription,omitempty"`
	AuthorNotes         string `json:"authorNotes,omitempty" toml:"authorNotes,omitempty"`
}

type AddAppKind int

const (
	AddAppNormal AddAppKind = iota
	AddAppExtras
	AddAppMessage
)

const (
	extrasApplicationPath  = ":extras:"
	messageApplicationPath = ":message:"
)

func (k AddAppKind) String() string {
	switch k {
	case AddAppNormal:
		return "normal"
	case AddAppExtras:
		return "extras"
	case AddAppMessage:
		return "message"
	default:
		return "unknown"
	}
}

func (k AddAppKind) MarshalText() ([]byte, error) {
	switch k {
	case AddAppNormal, AddAppExtras, AddAppMessage:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("Unknown additional application kind %d", int(k))
	}
}

// AddApp is an additional application. Extras and Message kinds only carry
// a launch command (the folder or message text); their heading and
// application path are fixed.
type AddApp struct {
	Kind            AddAppKind `json:"kind" toml:"kind"`
	Heading         string     `json:"heading" toml:"heading"`
	ApplicationPath string     `json:"applicationPath,omitempty" toml:"applicationPath,omitempty"`
	LaunchCommand   string     `json:"launchCommand,omitempty" toml:"launchCommand,omitempty"`
}

func NewExtrasAddApp(folder string) AddApp {
	return AddApp{Kind: AddAppExtras, Heading: "Extras", ApplicationPath: extrasApplicationPath, LaunchCommand: folder}
}

func NewMessageAddApp(message string) AddApp {
	return AddApp{Kind: AddAppMessage, Heading: "Message", ApplicationPath: messageApplicationPath, LaunchCommand: message}
}

type ParsedMeta struct {
	Game    GameMeta `json:"game" toml:"game"`
	AddApps []AddApp `json:"addApps" toml:"addApps"`
}
