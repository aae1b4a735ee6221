// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

/*
Package catalog is the query engine over the loaded snapshot: it composes
the filter predicate, the sort engine, and pagination into the list
operation behind GET /games, with a per-generation Redis result cache.

Core Responsibility:

  - Listing: filter, sort, and paginate the current generation.
  - Lookup: single-record and facet (tag/channel) reads.
  - Caching: ordered result-id lists keyed by generation and query, so a
    snapshot swap invalidates everything implicitly.
*/
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/gamelens/gamelens/internal/core/filter"
	"github.com/gamelens/gamelens/internal/core/game"
	"github.com/gamelens/gamelens/internal/core/sorting"
	"github.com/gamelens/gamelens/internal/platform/apperr"
	"github.com/gamelens/gamelens/internal/platform/snapshot"
	"github.com/gamelens/gamelens/pkg/pagination"
)

// DatasetSource serves the currently loaded snapshot generation.
type DatasetSource interface {
	Current() (*snapshot.Dataset, error)
}

// ListCache caches ordered result-id lists per generation and query. A miss
// and a cache failure look the same to the service; both just recompute.
type ListCache interface {
	Get(ctx context.Context, key string) ([]string, bool)
	Set(ctx context.Context, key string, ids []string)
}

// ListResult is one page of a filtered, sorted catalogue view.
type ListResult struct {
	Games []*game.Record
	Meta  pagination.Meta

	// SuggestedSort complements the active filters; empty when the current
	// sort already is the suggestion.
	SuggestedSort string

	// Generation identifies the snapshot the page was computed from.
	Generation uint64
}

// SnapshotInfo describes the loaded generation for the status surface.
type SnapshotInfo struct {
	Generation   uint64     `json:"generation"`
	Version      string     `json:"version,omitempty"`
	GeneratedAt  *time.Time `json:"generatedAt,omitempty"`
	LoadedAt     time.Time  `json:"loadedAt"`
	GameCount    int        `json:"gameCount"`
	TagCount     int        `json:"tagCount"`
	ChannelCount int        `json:"channelCount"`
}

// Service answers catalogue queries against the in-memory snapshot.
type Service struct {
	source DatasetSource
	cache  ListCache
	logger *slog.Logger
}

// NewService constructs the catalogue service. cache may be nil, which turns
// list caching off entirely.
func NewService(source DatasetSource, cache ListCache, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

// List applies the filter and sort to the current generation and returns one
// page. now anchors time-relative filters and sorts.
//
// The ordered id list is cached per (generation, query); a generation swap
// naturally invalidates every cached list because the key changes.
func (service *Service) List(ctx context.Context, cfg filter.Config, params pagination.Params, now time.Time) (*ListResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dataset, err := service.source.Current()
	if err != nil {
		return nil, err
	}

	ids, err := service.orderedIDs(ctx, dataset, cfg, now)
	if err != nil {
		return nil, err
	}

	pager := pagination.NewPager(params.Limit)
	pager.Reset(len(ids))
	pager.GoToPage(params.Page)
	start, end := pager.Bounds()

	games := make([]*game.Record, 0, end-start)
	for _, id := range ids[start:end] {
		if record := dataset.Get(id); record != nil {
			games = append(games, record)
		}
	}

	return &ListResult{
		Games:         games,
		Meta:          pager.Meta(),
		SuggestedSort: sorting.SuggestFor(cfg),
		Generation:    dataset.Generation,
	}, nil
}

// Get returns one record by id.
func (service *Service) Get(ctx context.Context, id string) (*game.Record, error) {
	dataset, err := service.source.Current()
	if err != nil {
		return nil, err
	}

	record := dataset.Get(id)
	if record == nil {
		return nil, apperr.NotFound("Game")
	}
	return record, nil
}

// Tags returns every distinct tag in the current generation, sorted.
func (service *Service) Tags(ctx context.Context) ([]string, error) {
	dataset, err := service.source.Current()
	if err != nil {
		return nil, err
	}
	return dataset.Tags(), nil
}

// Channels returns every distinct covering channel, sorted.
func (service *Service) Channels(ctx context.Context) ([]string, error) {
	dataset, err := service.source.Current()
	if err != nil {
		return nil, err
	}
	return dataset.Channels(), nil
}

// Snapshot describes the loaded generation.
func (service *Service) Snapshot(ctx context.Context) (*SnapshotInfo, error) {
	dataset, err := service.source.Current()
	if err != nil {
		return nil, err
	}

	return &SnapshotInfo{
		Generation:   dataset.Generation,
		Version:      dataset.Version,
		GeneratedAt:  dataset.GeneratedAt,
		LoadedAt:     dataset.LoadedAt,
		GameCount:    len(dataset.Records),
		TagCount:     len(dataset.Tags()),
		ChannelCount: len(dataset.Channels()),
	}, nil
}

func (service *Service) orderedIDs(ctx context.Context, dataset *snapshot.Dataset, cfg filter.Config, now time.Time) ([]string, error) {
	key := listCacheKey(dataset.Generation, cfg)
	if service.cache != nil {
		if ids, ok := service.cache.Get(ctx, key); ok {
			return ids, nil
		}
	}

	matched := make([]*game.Record, 0, len(dataset.Records))
	for _, record := range dataset.Records {
		if filter.Matches(record, cfg, now) {
			matched = append(matched, record)
		}
	}

	sorted, err := sorting.Sort(matched, cfg, now)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(sorted))
	for i, record := range sorted {
		ids[i] = record.ID
	}

	if service.cache != nil {
		service.cache.Set(ctx, key, ids)
	}
	return ids, nil
}
