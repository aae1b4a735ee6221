// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// # Why UUIDv7?
//
// User preset IDs must be unique, never reused, and creation-ordered; a
// UUIDv7 is exactly a millisecond timestamp plus a random suffix, so no
// separate counter or collision handling is needed.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// # Safety
//
// It panics only if the OS random source is unavailable (extremely rare).
// This is acceptable as OS entropy failure is an unrecoverable system-level error.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}
