// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/diagram/base/errors"
	"cogentcore.org/diagram/base/iox/tomlx"
	"cogentcore.org/diagram/base/iox/yamlx"
	"cogentcore.org/diagram/base/reflectx"
	"cogentcore.org/diagram/diagram"
)

// ErrUnknownFormat is returned when a settings file name does not
// end in .toml, .yaml or .yml.
var ErrUnknownFormat = errors.New("editor: unknown settings file format")

// Settings are the settings for an editing session.
type Settings struct {

	// MaxHistory is the number of commands that can be undone.
	MaxHistory int `default:"100"`

	// BoundaryConstraints keeps node locations on the page.
	BoundaryConstraints bool

	// Page is the size of the page.
	Page PageSettings

	// Grid is the spacing of the snapping grid.
	Grid float32 `default:"10"`

	// SnapToGrid snaps moved selections to the grid.
	SnapToGrid bool

	// HitTolerance is the distance within which a click selects a node.
	HitTolerance float32 `default:"3"`

	// LinkKind is how new links are routed.
	LinkKind diagram.Routings `default:"straight"`

	// DuplicateOffset is how far duplicated and pasted nodes are moved.
	DuplicateOffset float32 `default:"10"`
}

// PageSettings are the dimensions of the page.
type PageSettings struct {
	Width  float32 `default:"800"`
	Height float32 `default:"600"`
}

// NewSettings returns new settings with default values.
func NewSettings() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// Defaults sets the settings to their default values.
func (s *Settings) Defaults() {
	*s = Settings{}
	errors.Log(reflectx.SetFromDefaultTags(s))
}

// OpenSettings returns the settings in the given TOML or YAML file.
// Values missing from the file keep their defaults.
func OpenSettings(filename string) (*Settings, error) {
	s := NewSettings()
	return s, s.Open(filename)
}

// Open reads the settings from the given TOML or YAML file.
func (s *Settings) Open(filename string) error {
	switch settingsFormat(filename) {
	case "toml":
		return tomlx.Open(s, filename)
	case "yaml":
		return yamlx.Open(s, filename)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
}

// Save writes the settings to the given TOML or YAML file.
func (s *Settings) Save(filename string) error {
	switch settingsFormat(filename) {
	case "toml":
		return tomlx.Save(s, filename)
	case "yaml":
		return yamlx.Save(s, filename)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
}

func settingsFormat(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}
