// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

/*
Package preset manages named filter configurations: the built-in popular
presets shipped with the app and the presets users save themselves.

Core Responsibility:

  - Catalogue: Built-in presets plus a persisted user collection, always
    listed builtins-first.
  - Lifecycle: Save, rename, and delete user presets; builtins are
    immutable.
  - Matching: Reverse lookup from an active filter state to the preset that
    produces it, for highlighting the active preset.
  - Portability: Versioned export/import of the user collection and
    shareable-URL generation.

Persistence is pluggable: a versioned Redis document by default, a Postgres
table when operators want durable multi-instance storage.
*/
package preset

import (
	"time"

	"github.com/gamelens/gamelens/internal/core/filter"
)

// Validation limits for user-supplied preset fields.
const (
	NameMaxLen        = 60
	DescriptionMaxLen = 200
	CategoryMaxLen    = 40

	// MaxUserPresets caps the collection; the preset manager is a shortcut
	// list, not a database.
	MaxUserPresets = 50
)

// Preset is a named filter configuration.
type Preset struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Filters     filter.Config `json:"filters"`

	// IsPopular marks a built-in preset; IsUser marks a saved one. Exactly
	// one of the two is set.
	IsPopular bool `json:"isPopular"`
	IsUser    bool `json:"isUser"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Draft is the caller-supplied content of a preset, before the service
// assigns identity and timestamps.
type Draft struct {
	Name        string
	Description string
	Category    string
	Tags        []string
	Filters     filter.Config
}

// ExportedPreset is one entry of an export document: just the portable
// content, no ids or ownership flags.
type ExportedPreset struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Filters     filter.Config `json:"filters"`
}

// ExportDocument is the versioned portable form of a user preset
// collection.
type ExportDocument struct {
	Version    int              `json:"version"`
	ExportedAt time.Time        `json:"exportedAt"`
	Presets    []ExportedPreset `json:"presets"`
}

// SkippedPreset names an import entry that was rejected and why.
type SkippedPreset struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ImportResult summarizes a partial-success import. Overwritten counts the
// colliding presets replaced in overwrite mode; they are not included in
// Imported.
type ImportResult struct {
	Imported    int             `json:"imported"`
	Overwritten int             `json:"overwritten"`
	Skipped     []SkippedPreset `json:"skipped,omitempty"`
}
