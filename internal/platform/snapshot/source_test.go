// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package snapshot_test

import (
	"context"
	"io"
	"database/sql"
	"log/slog"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamelens/gamelens/internal/core/game"
	"github.com/gamelens/gamelens/internal/platform/apperr"
	"github.com/gamelens/gamelens/internal/platform/snapshot"
)

const createGamesTable = `
CREATE TABLE games (
	id TEXT PRIMARY KEY,
	platform TEXT NOT NULL,
	name TEXT NOT NULL,
	price_eur INTEGER,
	price_usd INTEGER,
	original_price_eur INTEGER,
	original_price_usd INTEGER,
	discount_percent INTEGER,
	is_free BOOLEAN NOT NULL DEFAULT 0,
	is_on_sale BOOLEAN NOT NULL DEFAULT 0,
	positive_review_percentage INTEGER,
	review_count INTEGER,
	review_summary TEXT,
	insufficient_reviews BOOLEAN NOT NULL DEFAULT 0,
	release_date TEXT,
	planned_release_date TEXT,
	coming_soon BOOLEAN NOT NULL DEFAULT 0,
	is_early_access BOOLEAN NOT NULL DEFAULT 0,
	is_demo BOOLEAN NOT NULL DEFAULT 0,
	video_count INTEGER NOT NULL DEFAULT 0,
	latest_video_id TEXT,
	latest_video_title TEXT,
	latest_video_date TEXT,
	first_video_date TEXT,
	unique_channels TEXT,
	tags TEXT,
	store_urls TEXT,
	is_absorbed BOOLEAN NOT NULL DEFAULT 0,
	absorbed_into TEXT
);
CREATE TABLE snapshot_meta (key TEXT PRIMARY KEY, value TEXT NOT NULL);
`

// writeSnapshot creates a snapshot file with the given extra statements.
func writeSnapshot(t *testing.T, path string, statements ...string) {
	t.Helper()

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(createGamesTable)
	require.NoError(t, err)
	for _, stmt := range statements {
		_, err = db.Exec(stmt)
		require.NoError(t, err)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestSource_Load verifies a full load: record hydration including JSON
columns, metadata, and the precomputed facets.
*/
func TestSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.db")
	writeSnapshot(t, path,
		`INSERT INTO snapshot_meta VALUES ('version', '2026-03-14'), ('generated_at', '2026-03-14T04:00:00Z')`,
		`INSERT INTO games (id, platform, name, price_eur, positive_review_percentage, review_count, review_summary,
			release_date, video_count, latest_video_date, unique_channels, tags, store_urls)
		 VALUES ('steam-440', 'steam', 'Dustward', 1499, 87, 412, 'Very Positive',
			'2025-02-01', 4, '2026-03-12T10:00:00Z',
			'["Wanderbots","Splattercat"]', '["Indie","Roguelike"]',
			'{"steam":"https://store.steampowered.com/app/440"}')`,
		`INSERT INTO games (id, platform, name, is_free, coming_soon)
		 VALUES ('itch-glimmer', 'itch', 'Glimmer', 1, 1)`,
	)

	source := snapshot.NewSource(path, testLogger())

	_, err := source.Current()
	require.Error(t, err, "Current must fail before the first load")
	assert.Equal(t, "SERVICE_UNAVAILABLE", apperr.As(err).Code)

	require.NoError(t, source.Load(context.Background()))

	dataset, err := source.Current()
	require.NoError(t, err)

	assert.Equal(t, uint64(1), dataset.Generation)
	assert.Equal(t, "2026-03-14", dataset.Version)
	require.NotNil(t, dataset.GeneratedAt)
	assert.Len(t, dataset.Records, 2)

	record := dataset.Get("steam-440")
	require.NotNil(t, record)
	assert.Equal(t, game.PlatformSteam, record.Platform)
	assert.Equal(t, "Dustward", record.Name)
	require.NotNil(t, record.PriceEURCents)
	assert.Equal(t, 1499, *record.PriceEURCents)
	require.NotNil(t, record.ReleaseDate)
	assert.Equal(t, []string{"Wanderbots", "Splattercat"}, record.UniqueChannels)
	assert.Equal(t, "https://store.steampowered.com/app/440", record.StoreURLs[game.PlatformSteam])

	free := dataset.Get("itch-glimmer")
	require.NotNil(t, free)
	assert.True(t, free.IsFree)
	assert.Nil(t, free.PriceEURCents)

	assert.Equal(t, []string{"Indie", "Roguelike"}, dataset.Tags())
	assert.Equal(t, []string{"Splattercat", "Wanderbots"}, dataset.Channels())
}

/*
TestSource_Reload verifies the generation bump and that the old dataset
pointer keeps serving records handed out before the swap.
*/
func TestSource_Reload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "games.db")
	writeSnapshot(t, path, `INSERT INTO games (id, platform, name) VALUES ('steam-1', 'steam', 'First')`)

	source := snapshot.NewSource(path, testLogger())
	require.NoError(t, source.Load(context.Background()))

	before, err := source.Current()
	require.NoError(t, err)

	// Scraper publishes a new snapshot in place.
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO games (id, platform, name) VALUES ('steam-2', 'steam', 'Second')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	require.NoError(t, source.Load(context.Background()))

	after, err := source.Current()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), after.Generation)
	assert.Len(t, after.Records, 2)

	// The generation handed out earlier is untouched.
	assert.Equal(t, uint64(1), before.Generation)
	assert.Len(t, before.Records, 1)
}

/*
TestSource_LoadFailureKeepsPrevious is the degraded-reload contract: a bad
file must not evict a healthy generation.
*/
func TestSource_LoadFailureKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "games.db")
	writeSnapshot(t, path, `INSERT INTO games (id, platform, name) VALUES ('steam-1', 'steam', 'First')`)

	source := snapshot.NewSource(path, testLogger())
	require.NoError(t, source.Load(context.Background()))

	// Truncate the file: the next load must fail.
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM games`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	require.Error(t, source.Load(context.Background()))

	dataset, err := source.Current()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), dataset.Generation)
	assert.Len(t, dataset.Records, 1)
}

/*
TestSource_SkipsUnknownPlatforms verifies one malformed row degrades to a
warning instead of blocking the reload.
*/
func TestSource_SkipsUnknownPlatforms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.db")
	writeSnapshot(t, path,
		`INSERT INTO games (id, platform, name) VALUES ('steam-1', 'steam', 'Kept')`,
		`INSERT INTO games (id, platform, name) VALUES ('gog-1', 'gog', 'Dropped')`,
	)

	source := snapshot.NewSource(path, testLogger())
	require.NoError(t, source.Load(context.Background()))

	dataset, err := source.Current()
	require.NoError(t, err)
	assert.Len(t, dataset.Records, 1)
	assert.Nil(t, dataset.Get("gog-1"))
}
