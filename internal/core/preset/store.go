// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package preset

import "context"

// Repository persists the user preset collection. Built-in presets never
// pass through it.
type Repository interface {
	// List returns every stored user preset in creation order.
	List(context context.Context) ([]*Preset, error)

	// Put inserts or replaces the preset with the same ID.
	Put(context context.Context, preset *Preset) error

	// Delete removes a preset by id, reporting whether it existed.
	Delete(context context.Context, id string) (bool, error)
}
