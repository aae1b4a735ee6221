// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

/*
Package snapshot owns the scraper-produced SQLite snapshot and its in-memory
representation.

Core Responsibility:

  - Loading: Reads the whole snapshot file into an immutable Dataset and
    atomically swaps it in; the file handle is closed as soon as the load
    finishes, so the scraper can replace the file at any time.
  - Serving: Hands out the current Dataset pointer lock-free; request
    handlers hold one generation for their whole lifetime and never observe
    a half-loaded state.
  - Watching: Reloads on file change, debounced, falling back to polling on
    filesystems where change notification is unreliable.

A failed reload keeps the previous generation serving.
*/
package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/gamelens/gamelens/internal/core/game"
	"github.com/gamelens/gamelens/internal/platform/apperr"
	"github.com/gamelens/gamelens/internal/platform/database/schema"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// Dataset is one fully-loaded snapshot generation. It is immutable after
// construction; every consumer shares the same pointer.
type Dataset struct {
	// Generation increments on every successful load.
	Generation uint64
	// Version is the scraper's snapshot version string, empty when the
	// snapshot predates versioned metadata.
	Version     string
	GeneratedAt *time.Time
	LoadedAt    time.Time

	Records []*game.Record

	byID     map[string]*game.Record
	tags     []string
	channels []string
}

// NewDataset assembles a generation from already-hydrated records and
// precomputes the id index and facet lists. Load calls it after scanning the
// file; it is also the seam for serving fixture data without a file.
func NewDataset(generation uint64, version string, records []*game.Record) (*Dataset, error) {
	byID := make(map[string]*game.Record, len(records))
	for _, r := range records {
		if _, dup := byID[r.ID]; dup {
			return nil, apperr.Unprocessable("Snapshot contains duplicate game id: " + r.ID)
		}
		byID[r.ID] = r
	}

	return &Dataset{
		Generation: generation,
		Version:    version,
		LoadedAt:   time.Now(),
		Records:    records,
		byID:       byID,
		tags:       collectFacet(records, func(r *game.Record) []string { return r.Tags }),
		channels:   collectFacet(records, func(r *game.Record) []string { return r.UniqueChannels }),
	}, nil
}

// Get returns the record with the given id, or nil.
func (d *Dataset) Get(id string) *game.Record {
	return d.byID[id]
}

// Tags returns every distinct tag in the generation, sorted. Callers must
// not mutate the returned slice.
func (d *Dataset) Tags() []string {
	return d.tags
}

// Channels returns every distinct covering channel, sorted. Callers must not
// mutate the returned slice.
func (d *Dataset) Channels() []string {
	return d.channels
}

// Source loads snapshot files and serves the current Dataset.
type Source struct {
	path    string
	logger  *slog.Logger
	current atomic.Pointer[Dataset]
}

// NewSource creates a Source for the snapshot file at path. Nothing is
// loaded until the first Load call.
func NewSource(path string, logger *slog.Logger) *Source {
	return &Source{
		path:   path,
		logger: logger.With(slog.String("component", "snapshot")),
	}
}

// Current returns the active Dataset. It fails only before the first
// successful Load; after that a dataset is always available.
func (s *Source) Current() (*Dataset, error) {
	dataset := s.current.Load()
	if dataset == nil {
		return nil, apperr.ServiceUnavailable("Snapshot not loaded yet")
	}
	return dataset, nil
}

// Load reads the snapshot file into memory and swaps it in as the new
// current generation. On any error the previous generation stays active.
//
// The SQLite handle is opened read-only and closed before Load returns; the
// in-memory Dataset has no remaining tie to the file.
func (s *Source) Load(ctx context.Context) error {
	started := time.Now()

	db, err := sql.Open("sqlite3", "file:"+s.path+"?mode=ro")
	if err != nil {
		return apperr.Internal(fmt.Errorf("open snapshot %s: %w", s.path, err))
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return apperr.Internal(fmt.Errorf("ping snapshot %s: %w", s.path, err))
	}

	version, generatedAt := s.readMeta(ctx, db)

	records, err := s.readGames(ctx, db)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return apperr.Unprocessable("Snapshot contains no games")
	}

	var generation uint64 = 1
	if previous := s.current.Load(); previous != nil {
		generation = previous.Generation + 1
	}

	dataset, err := NewDataset(generation, version, records)
	if err != nil {
		return err
	}
	dataset.GeneratedAt = generatedAt
	s.current.Store(dataset)

	s.logger.Info("snapshot loaded",
		slog.Uint64("generation", generation),
		slog.String("version", version),
		slog.Int("games", len(records)),
		slog.Duration("took", time.Since(started)),
	)
	return nil
}

// readMeta reads the optional snapshot_meta table. Older snapshots do not
// carry it, so every failure here degrades to empty metadata.
func (s *Source) readMeta(ctx context.Context, db *sql.DB) (version string, generatedAt *time.Time) {
	query, args, err := sqlBuilder.
		Select(schema.SnapshotMeta.Key, schema.SnapshotMeta.Value).
		From(schema.SnapshotMeta.Table).
		ToSql()
	if err != nil {
		return "", nil
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Debug("snapshot has no metadata table", slog.String("error", err.Error()))
		return "", nil
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return "", nil
		}
		switch key {
		case schema.MetaKeyVersion:
			version = value
		case schema.MetaKeyGeneratedAt:
			generatedAt = parseSnapshotTime(value)
		}
	}
	return version, generatedAt
}

func (s *Source) readGames(ctx context.Context, db *sql.DB) ([]*game.Record, error) {
	query, args, err := sqlBuilder.
		Select(schema.Games.Columns()...).
		From(schema.Games.Table).
		OrderBy(schema.Games.ID).
		ToSql()
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("build snapshot query: %w", err))
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("query snapshot games: %w", err))
	}
	defer rows.Close()

	var records []*game.Record
	var skipped int
	for rows.Next() {
		record, err := scanGame(rows)
		if err != nil {
			return nil, apperr.Internal(fmt.Errorf("scan snapshot game: %w", err))
		}
		if !record.Platform.IsValid() {
			// A single malformed row must not block the whole reload.
			skipped++
			continue
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(fmt.Errorf("iterate snapshot games: %w", err))
	}
	if skipped > 0 {
		s.logger.Warn("skipped snapshot rows with unknown platform", slog.Int("count", skipped))
	}
	return records, nil
}

func scanGame(rows *sql.Rows) (*game.Record, error) {
	var (
		r                          game.Record
		platform                   string
		priceEUR, priceUSD         sql.NullInt64
		origEUR, origUSD, discount sql.NullInt64
		reviewPct, reviewCount     sql.NullInt64
		reviewSummary              sql.NullString
		releaseDate, plannedDate   sql.NullString
		latestVideoID, latestTitle sql.NullString
		latestVideoDate            sql.NullString
		firstVideoDate             sql.NullString
		channelsJSON, tagsJSON     sql.NullString
		storeURLsJSON              sql.NullString
		absorbedInto               sql.NullString
	)

	err := rows.Scan(
		&r.ID, &platform, &r.Name,
		&priceEUR, &priceUSD, &origEUR, &origUSD,
		&discount, &r.IsFree, &r.IsOnSale,
		&reviewPct, &reviewCount, &reviewSummary, &r.InsufficientReviews,
		&releaseDate, &plannedDate, &r.ComingSoon, &r.IsEarlyAccess, &r.IsDemo,
		&r.VideoCount, &latestVideoID, &latestTitle, &latestVideoDate, &firstVideoDate,
		&channelsJSON, &tagsJSON, &storeURLsJSON,
		&r.IsAbsorbed, &absorbedInto,
	)
	if err != nil {
		return nil, err
	}

	r.Platform = game.Platform(platform)
	r.PriceEURCents = nullableInt(priceEUR)
	r.PriceUSDCents = nullableInt(priceUSD)
	r.OriginalPriceEURCents = nullableInt(origEUR)
	r.OriginalPriceUSDCents = nullableInt(origUSD)
	r.DiscountPercent = nullableInt(discount)
	r.PositiveReviewPct = nullableInt(reviewPct)
	r.ReviewCount = nullableInt(reviewCount)
	r.ReviewSummary = reviewSummary.String
	r.ReleaseDate = parseNullTime(releaseDate)
	r.PlannedReleaseDate = parseNullTime(plannedDate)
	r.LatestVideoID = latestVideoID.String
	r.LatestVideoTitle = latestTitle.String
	r.LatestVideoDate = parseNullTime(latestVideoDate)
	r.FirstVideoDate = parseNullTime(firstVideoDate)

	if channelsJSON.Valid && channelsJSON.String != "" {
		if err := json.Unmarshal([]byte(channelsJSON.String), &r.UniqueChannels); err != nil {
			return nil, fmt.Errorf("game %s: unique_channels: %w", r.ID, err)
		}
	}
	if tagsJSON.Valid && tagsJSON.String != "" {
		if err := json.Unmarshal([]byte(tagsJSON.String), &r.Tags); err != nil {
			return nil, fmt.Errorf("game %s: tags: %w", r.ID, err)
		}
	}
	if storeURLsJSON.Valid && storeURLsJSON.String != "" {
		if err := json.Unmarshal([]byte(storeURLsJSON.String), &r.StoreURLs); err != nil {
			return nil, fmt.Errorf("game %s: store_urls: %w", r.ID, err)
		}
	}
	r.AbsorbedInto = absorbedInto.String

	return &r, nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

// Snapshot timestamps arrive either as full RFC 3339 or as bare dates,
// depending on the scraper column.
func parseSnapshotTime(raw string) *time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func parseNullTime(v sql.NullString) *time.Time {
	if !v.Valid || v.String == "" {
		return nil
	}
	return parseSnapshotTime(v.String)
}

func collectFacet(records []*game.Record, extract func(*game.Record) []string) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		for _, v := range extract(r) {
			seen[v] = struct{}{}
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}
