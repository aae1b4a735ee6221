// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package filter_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamelens/gamelens/internal/core/filter"
	"github.com/gamelens/gamelens/internal/core/game"
)

/*
TestShareURL_DefaultIsBare verifies that a fully-default filter state encodes
to the bare base URL with no query string at all.
*/
func TestShareURL_DefaultIsBare(t *testing.T) {
	assert.Equal(t, "https://gamelens.app", filter.ShareURL(filter.Default(), "https://gamelens.app"))
	assert.Empty(t, filter.Values(filter.Default()))
}

/*
TestShare_RoundTrip is the codec's contract: for any encodable filter state,
FromValues(Values(c)) must be Equal to c.
*/
func TestShare_RoundTrip(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	configs := map[string]filter.Config{
		"default": filter.Default(),
		"kitchen_sink": func() filter.Config {
			c := filter.Default()
			c.ReleaseStatus = filter.ReleaseEarlyAccess
			c.Platform = string(game.PlatformItch)
			c.Rating = "80"
			c.CrossPlatform = true
			c.HiddenGems = true
			c.SelectedTags = []string{"Indie", "Roguelike"}
			c.TagLogic = filter.TagLogicAnd
			c.SelectedChannels = []string{"Splattercat"}
			c.Currency = game.CurrencyUSD
			c.PriceFilter = filter.PriceFilter{MinPrice: 5, MaxPrice: 19.99}
			return c
		}(),
		"advanced_sort": func() filter.Config {
			c := filter.Default()
			c.SortBy = filter.SortAdvanced
			c.SortSpec = &filter.SortSpec{
				Primary:   filter.SortCriteria{Field: filter.FieldRating, Direction: filter.DirectionDesc},
				Secondary: &filter.SortCriteria{Field: filter.FieldPrice, Direction: filter.DirectionAsc},
			}
			return c
		}(),
		"time_preset": func() filter.Config {
			c := filter.Default()
			c.TimeFilter = &filter.TimeFilter{Type: filter.TimeTypeVideo, Preset: filter.TimePresetMonth}
			return c
		}(),
		"time_explicit_range": func() filter.Config {
			c := filter.Default()
			c.TimeFilter = &filter.TimeFilter{Type: filter.TimeTypeRelease, StartDate: &start, EndDate: &end}
			return c
		}(),
		"smart_logic": func() filter.Config {
			c := filter.Default()
			c.TimeFilter = &filter.TimeFilter{Type: filter.TimeTypeSmart, SmartLogic: filter.SmartTrending}
			return c
		}(),
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			decoded := filter.FromValues(filter.Values(cfg))
			assert.True(t, filter.Equal(cfg, decoded), "round trip changed the config:\nin:  %+v\nout: %+v", cfg, decoded)
		})
	}
}

/*
TestValues_OmitsDefaults checks that only non-default fields appear in the
encoded query, keeping shared URLs short.
*/
func TestValues_OmitsDefaults(t *testing.T) {
	c := filter.Default()
	c.Rating = "90"
	c.SelectedTags = []string{"Horror"}

	values := filter.Values(c)
	assert.Equal(t, "90", values.Get("rating"))
	assert.Equal(t, "Horror", values.Get("tags"))
	assert.Len(t, values, 2, "default-valued parameters must be omitted")
}

/*
TestFromValues_Fallbacks covers the forgiving-parse policy: each corrupted
parameter falls back to its own default without poisoning the rest.
*/
func TestFromValues_Fallbacks(t *testing.T) {
	values := url.Values{}
	values.Set("release", "cancelled")  // unknown enum
	values.Set("rating", "85")          // not an accepted threshold
	values.Set("priceMax", "cheap")     // not a number
	values.Set("sortSpec", "vibes:up")  // unknown field and direction
	values.Set("platform", "itch")      // valid, must survive the others
	values.Set("tags", "Indie,Horror")  // valid

	c := filter.FromValues(values)
	defaults := filter.Default()

	assert.Equal(t, defaults.ReleaseStatus, c.ReleaseStatus)
	assert.Equal(t, defaults.Rating, c.Rating)
	assert.Equal(t, defaults.PriceFilter.MaxPrice, c.PriceFilter.MaxPrice)
	assert.Nil(t, c.SortSpec)
	assert.Equal(t, defaults.SortBy, c.SortBy)

	assert.Equal(t, "itch", c.Platform)
	assert.Equal(t, []string{"Indie", "Horror"}, c.SelectedTags)
}

/*
TestFromValues_SortInvariantRepair verifies the post-parse repair of the
SortBy/SortSpec coupling in both corruption directions.
*/
func TestFromValues_SortInvariantRepair(t *testing.T) {
	t.Run("spec_without_sort_key", func(t *testing.T) {
		values := url.Values{"sortSpec": {"rating:desc"}}
		c := filter.FromValues(values)
		assert.Equal(t, filter.SortAdvanced, c.SortBy)
		require.NotNil(t, c.SortSpec)
		assert.Equal(t, filter.FieldRating, c.SortSpec.Primary.Field)
	})

	t.Run("advanced_without_spec", func(t *testing.T) {
		values := url.Values{"sort": {"advanced"}}
		c := filter.FromValues(values)
		assert.Equal(t, filter.Default().SortBy, c.SortBy)
		assert.Nil(t, c.SortSpec)
	})
}

/*
TestFromValues_InvertedPriceRange checks that a max below min resets the
whole range rather than producing a window that matches nothing.
*/
func TestFromValues_InvertedPriceRange(t *testing.T) {
	values := url.Values{"priceMin": {"20"}, "priceMax": {"5"}}
	c := filter.FromValues(values)

	assert.Zero(t, c.PriceFilter.MinPrice)
	assert.Zero(t, c.PriceFilter.MaxPrice)
}

/*
TestSortSpec_Codec pins the compact single-parameter encoding.
*/
func TestSortSpec_Codec(t *testing.T) {
	spec := &filter.SortSpec{
		Primary:   filter.SortCriteria{Field: filter.FieldRating, Direction: filter.DirectionDesc},
		Secondary: &filter.SortCriteria{Field: filter.FieldPrice, Direction: filter.DirectionAsc},
	}

	encoded := filter.EncodeSortSpec(spec)
	assert.Equal(t, "rating:desc|price:asc", encoded)

	decoded, err := filter.ParseSortSpec(encoded)
	require.NoError(t, err)
	assert.Equal(t, spec, decoded)

	t.Run("primary_only", func(t *testing.T) {
		single, err := filter.ParseSortSpec("channels:desc")
		require.NoError(t, err)
		assert.Equal(t, filter.FieldChannels, single.Primary.Field)
		assert.Nil(t, single.Secondary)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, raw := range []string{"rating", "rating:sideways", "vibes:desc", "a:asc|b:asc|c:asc"} {
			_, err := filter.ParseSortSpec(raw)
			assert.Error(t, err, "input %q", raw)
		}
	})
}

/*
TestParseURL accepts a full shareable URL and rejects garbage.
*/
func TestParseURL(t *testing.T) {
	c, err := filter.ParseURL("https://gamelens.app/?rating=80&hiddenGems=1")
	require.NoError(t, err)
	assert.Equal(t, "80", c.Rating)
	assert.True(t, c.HiddenGems)

	_, err = filter.ParseURL("://not-a-url")
	assert.Error(t, err)
}
