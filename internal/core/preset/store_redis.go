// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package preset

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gamelens/gamelens/internal/platform/apperr"
	"github.com/gamelens/gamelens/internal/platform/constants"
)

// document is the persisted shape of the whole user collection: one
// versioned JSON value under a fixed key, read and written atomically.
type document struct {
	Version     int       `json:"version"`
	Presets     []*Preset `json:"presets"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// RedisRepository stores the user preset collection as a single versioned
// document.
//
// A document whose version does not match the current schema is discarded
// with a warning rather than migrated: presets are cheap to recreate and a
// wrong-shape document must never feed half-parsed filter configs into the
// engine.
type RedisRepository struct {
	client *redis.Client
	logger *slog.Logger

	// mutation serializes read-modify-write cycles within this process.
	mutation sync.Mutex
}

// NewRedisRepository constructs a Redis-backed preset repository.
func NewRedisRepository(client *redis.Client, logger *slog.Logger) *RedisRepository {
	return &RedisRepository{
		client: client,
		logger: logger.With(slog.String("component", "preset_store")),
	}
}

func (repository *RedisRepository) List(context context.Context) ([]*Preset, error) {
	doc, err := repository.load(context)
	if err != nil {
		return nil, err
	}
	return doc.Presets, nil
}

func (repository *RedisRepository) Put(context context.Context, preset *Preset) error {
	repository.mutation.Lock()
	defer repository.mutation.Unlock()

	doc, err := repository.load(context)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range doc.Presets {
		if existing.ID == preset.ID {
			doc.Presets[i] = preset
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Presets = append(doc.Presets, preset)
	}

	return repository.save(context, doc)
}

func (repository *RedisRepository) Delete(context context.Context, id string) (bool, error) {
	repository.mutation.Lock()
	defer repository.mutation.Unlock()

	doc, err := repository.load(context)
	if err != nil {
		return false, err
	}

	remaining := slices.DeleteFunc(doc.Presets, func(p *Preset) bool { return p.ID == id })
	if len(remaining) == len(doc.Presets) {
		return false, nil
	}

	doc.Presets = remaining
	if err := repository.save(context, doc); err != nil {
		return false, err
	}
	return true, nil
}

func (repository *RedisRepository) load(context context.Context) (*document, error) {
	empty := &document{Version: constants.PresetDocumentVersion}

	payload, err := repository.client.Get(context, constants.RedisKeyPresetDocument).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return empty, nil
		}
		return nil, apperr.Internal(err)
	}

	var doc document
	if err := json.Unmarshal(payload, &doc); err != nil {
		repository.logger.Warn("preset document corrupt, starting fresh",
			slog.String("error", err.Error()))
		return empty, nil
	}
	if doc.Version != constants.PresetDocumentVersion {
		repository.logger.Warn("preset document version mismatch, discarding",
			slog.Int("stored", doc.Version),
			slog.Int("expected", constants.PresetDocumentVersion))
		return empty, nil
	}
	return &doc, nil
}

func (repository *RedisRepository) save(context context.Context, doc *document) error {
	doc.Version = constants.PresetDocumentVersion
	doc.LastUpdated = time.Now()

	payload, err := json.Marshal(doc)
	if err != nil {
		return apperr.Internal(err)
	}
	if err := repository.client.Set(context, constants.RedisKeyPresetDocument, payload, 0).Err(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
