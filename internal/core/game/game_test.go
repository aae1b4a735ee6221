// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package game_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamelens/gamelens/internal/core/game"
	"github.com/gamelens/gamelens/pkg/pointer"
)

/*
TestRecord_ResolvedPriceCents covers the cross-currency fallback in both
directions and the fully-unpriced case.
*/
func TestRecord_ResolvedPriceCents(t *testing.T) {
	both := &game.Record{PriceEURCents: pointer.To(999), PriceUSDCents: pointer.To(1099)}
	eurOnly := &game.Record{PriceEURCents: pointer.To(999)}
	usdOnly := &game.Record{PriceUSDCents: pointer.To(1099)}
	none := &game.Record{}

	assert.Equal(t, 999, *both.ResolvedPriceCents(game.CurrencyEUR))
	assert.Equal(t, 1099, *both.ResolvedPriceCents(game.CurrencyUSD))

	assert.Equal(t, 999, *eurOnly.ResolvedPriceCents(game.CurrencyUSD), "falls back to EUR")
	assert.Equal(t, 1099, *usdOnly.ResolvedPriceCents(game.CurrencyEUR), "falls back to USD")

	assert.Nil(t, none.ResolvedPriceCents(game.CurrencyEUR))
}

/*
TestRecord_ResolvedReleaseDate verifies the planned-date fallback.
*/
func TestRecord_ResolvedReleaseDate(t *testing.T) {
	released := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	planned := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	r := &game.Record{ReleaseDate: &released, PlannedReleaseDate: &planned}
	require.NotNil(t, r.ResolvedReleaseDate())
	assert.Equal(t, released, *r.ResolvedReleaseDate())

	upcoming := &game.Record{PlannedReleaseDate: &planned}
	require.NotNil(t, upcoming.ResolvedReleaseDate())
	assert.Equal(t, planned, *upcoming.ResolvedReleaseDate())

	assert.Nil(t, (&game.Record{}).ResolvedReleaseDate())
}

/*
TestRecord_IsHiddenGem walks every boundary of the gem rule.
*/
func TestRecord_IsHiddenGem(t *testing.T) {
	tests := []struct {
		name    string
		rating  *int
		videos  int
		reviews *int
		want    bool
	}{
		{"qualifies", pointer.To(85), 2, pointer.To(60), true},
		{"rating_at_floor", pointer.To(80), 2, pointer.To(60), true},
		{"rating_below_floor", pointer.To(79), 2, pointer.To(60), false},
		{"no_rating", nil, 2, pointer.To(60), false},
		{"zero_videos", pointer.To(85), 0, pointer.To(60), false},
		{"max_videos", pointer.To(85), 3, pointer.To(60), true},
		{"too_many_videos", pointer.To(85), 4, pointer.To(60), false},
		{"reviews_at_floor", pointer.To(85), 2, pointer.To(50), true},
		{"too_few_reviews", pointer.To(85), 2, pointer.To(49), false},
		{"no_reviews", pointer.To(85), 2, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &game.Record{
				PositiveReviewPct: tt.rating,
				VideoCount:        tt.videos,
				ReviewCount:       tt.reviews,
			}
			assert.Equal(t, tt.want, r.IsHiddenGem())
		})
	}
}

/*
TestRecord_IsMultiPlatform covers both signals: store URL fan-out and
absorption linkage.
*/
func TestRecord_IsMultiPlatform(t *testing.T) {
	assert.False(t, (&game.Record{}).IsMultiPlatform())
	assert.False(t, (&game.Record{
		StoreURLs: map[game.Platform]string{game.PlatformSteam: "https://example.test"},
	}).IsMultiPlatform())

	assert.True(t, (&game.Record{
		StoreURLs: map[game.Platform]string{
			game.PlatformSteam: "https://example.test",
			game.PlatformItch:  "https://example.itch.io",
		},
	}).IsMultiPlatform())
	assert.True(t, (&game.Record{IsAbsorbed: true}).IsMultiPlatform())
	assert.True(t, (&game.Record{AbsorbedInto: "steam-440"}).IsMultiPlatform())
}
