// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package filter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamelens/gamelens/internal/core/filter"
	"github.com/gamelens/gamelens/internal/core/game"
	"github.com/gamelens/gamelens/internal/platform/apperr"
)

/*
TestEqual_SetSemantics verifies that tag and channel selections compare as
sets: order and duplicates must not break preset matching.
*/
func TestEqual_SetSemantics(t *testing.T) {
	a := filter.Default()
	a.SelectedTags = []string{"Roguelike", "Indie", "Indie"}
	a.SelectedChannels = []string{"Wanderbots", "Splattercat"}

	b := filter.Default()
	b.SelectedTags = []string{"Indie", "Roguelike"}
	b.SelectedChannels = []string{"Splattercat", "Wanderbots"}

	assert.True(t, filter.Equal(a, b))

	b.SelectedTags = []string{"Indie"}
	assert.False(t, filter.Equal(a, b))
}

/*
TestEqual_NestedStructures covers the pointer-valued fields: sort spec and
time filter compare structurally, not by identity.
*/
func TestEqual_NestedStructures(t *testing.T) {
	mkSpec := func() *filter.SortSpec {
		return &filter.SortSpec{
			Primary:   filter.SortCriteria{Field: filter.FieldRating, Direction: filter.DirectionDesc},
			Secondary: &filter.SortCriteria{Field: filter.FieldPrice, Direction: filter.DirectionAsc},
		}
	}
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	a := filter.Default()
	a.SortBy = filter.SortAdvanced
	a.SortSpec = mkSpec()
	a.TimeFilter = &filter.TimeFilter{Type: filter.TimeTypeVideo, StartDate: &start}

	b := filter.Default()
	b.SortBy = filter.SortAdvanced
	b.SortSpec = mkSpec()
	startCopy := start
	b.TimeFilter = &filter.TimeFilter{Type: filter.TimeTypeVideo, StartDate: &startCopy}

	assert.True(t, filter.Equal(a, b))

	b.SortSpec.Secondary.Direction = filter.DirectionDesc
	assert.False(t, filter.Equal(a, b))
}

/*
TestIsDefault distinguishes an untouched config from one with any active
filter, which drives the "filters active" indicator.
*/
func TestIsDefault(t *testing.T) {
	assert.True(t, filter.IsDefault(filter.Default()))

	c := filter.Default()
	c.HiddenGems = true
	assert.False(t, filter.IsDefault(c))
}

/*
TestConfig_Validate walks the enum fields and the structural invariants that
guard the trusted decode paths.
*/
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*filter.Config)
		wantErr bool
	}{
		{"default_is_valid", func(c *filter.Config) {}, false},
		{"bad_release_status", func(c *filter.Config) { c.ReleaseStatus = "cancelled" }, true},
		{"bad_platform", func(c *filter.Config) { c.Platform = "gog" }, true},
		{"bad_rating", func(c *filter.Config) { c.Rating = "85" }, true},
		{"bad_tag_logic", func(c *filter.Config) { c.TagLogic = "xor" }, true},
		{"bad_sort_key", func(c *filter.Config) { c.SortBy = "alphabetical" }, true},
		{"advanced_without_spec", func(c *filter.Config) { c.SortBy = filter.SortAdvanced }, true},
		{"spec_without_advanced", func(c *filter.Config) {
			c.SortSpec = &filter.SortSpec{Primary: filter.SortCriteria{Field: filter.FieldRating, Direction: filter.DirectionDesc}}
		}, true},
		{"valid_advanced", func(c *filter.Config) {
			c.SortBy = filter.SortAdvanced
			c.SortSpec = &filter.SortSpec{Primary: filter.SortCriteria{Field: filter.FieldRating, Direction: filter.DirectionDesc}}
		}, false},
		{"bad_currency", func(c *filter.Config) { c.Currency = "gbp" }, true},
		{"bad_time_preset", func(c *filter.Config) {
			c.TimeFilter = &filter.TimeFilter{Type: filter.TimeTypeVideo, Preset: "last-decade"}
		}, true},
		{"bad_smart_logic", func(c *filter.Config) {
			c.TimeFilter = &filter.TimeFilter{Type: filter.TimeTypeSmart, SmartLogic: "lucky-dip"}
		}, true},
		{"negative_price", func(c *filter.Config) { c.PriceFilter.MinPrice = -1 }, true},
		{"inverted_price_range", func(c *filter.Config) {
			c.PriceFilter.MinPrice = 20
			c.PriceFilter.MaxPrice = 5
		}, true},
		{"zero_max_is_unbounded", func(c *filter.Config) { c.PriceFilter.MinPrice = 20 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := filter.Default()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.NotEmpty(t, ae.Details)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestConfig_RatingThreshold maps the wire strings to numeric floors.
*/
func TestConfig_RatingThreshold(t *testing.T) {
	c := filter.Default()
	assert.Equal(t, 0, c.RatingThreshold())

	c.Rating = "90"
	assert.Equal(t, 90, c.RatingThreshold())
}

/*
TestDefault_PinsShape guards the default values the codec and the predicate
both depend on.
*/
func TestDefault_PinsShape(t *testing.T) {
	c := filter.Default()

	assert.Equal(t, filter.ReleaseAll, c.ReleaseStatus)
	assert.Equal(t, filter.PlatformAll, c.Platform)
	assert.Equal(t, "0", c.Rating)
	assert.Equal(t, filter.TagLogicOr, c.TagLogic)
	assert.Equal(t, filter.SortLatestVideo, c.SortBy)
	assert.Equal(t, game.CurrencyEUR, c.Currency)
	assert.True(t, c.PriceFilter.IncludeFree)
	assert.Nil(t, c.TimeFilter)
	assert.Nil(t, c.SortSpec)
	assert.NoError(t, c.Validate())
}
