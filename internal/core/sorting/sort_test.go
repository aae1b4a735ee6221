// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package sorting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamelens/gamelens/internal/core/filter"
	"github.com/gamelens/gamelens/internal/core/game"
	"github.com/gamelens/gamelens/internal/core/sorting"
	"github.com/gamelens/gamelens/internal/platform/apperr"
	"github.com/gamelens/gamelens/pkg/pointer"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := testNow.AddDate(0, 0, -n)
	return &t
}

func ids(records []*game.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func sortWith(t *testing.T, records []*game.Record, mutate func(*filter.Config)) []*game.Record {
	t.Helper()
	cfg := filter.Default()
	mutate(&cfg)
	sorted, err := sorting.Sort(records, cfg, testNow)
	require.NoError(t, err)
	return sorted
}

/*
TestSort_DoesNotMutateInput is the aliasing contract: the snapshot slice is
shared across requests and must never be reordered in place.
*/
func TestSort_DoesNotMutateInput(t *testing.T) {
	records := []*game.Record{
		{ID: "b", Name: "Beta"},
		{ID: "a", Name: "Alpha"},
	}

	sorted := sortWith(t, records, func(c *filter.Config) { c.SortBy = filter.SortName })

	assert.Equal(t, []string{"a", "b"}, ids(sorted))
	assert.Equal(t, []string{"b", "a"}, ids(records), "input order must be preserved")
}

/*
TestSort_RatingScore checks descending rating with unrated records last.
*/
func TestSort_RatingScore(t *testing.T) {
	records := []*game.Record{
		{ID: "unrated"},
		{ID: "mid", PositiveReviewPct: pointer.To(70)},
		{ID: "top", PositiveReviewPct: pointer.To(95)},
	}

	sorted := sortWith(t, records, func(c *filter.Config) { c.SortBy = filter.SortRatingScore })
	assert.Equal(t, []string{"top", "mid", "unrated"}, ids(sorted))
}

/*
TestSort_Name verifies case-insensitive alphabetical order.
*/
func TestSort_Name(t *testing.T) {
	records := []*game.Record{
		{ID: "c", Name: "celeste"},
		{ID: "a", Name: "Axiom Verge"},
		{ID: "b", Name: "Balatro"},
	}

	sorted := sortWith(t, records, func(c *filter.Config) { c.SortBy = filter.SortName })
	assert.Equal(t, []string{"a", "b", "c"}, ids(sorted))
}

/*
TestSort_ReleaseDates covers both directions and the planned-date fallback
for unreleased records.
*/
func TestSort_ReleaseDates(t *testing.T) {
	records := []*game.Record{
		{ID: "old", ReleaseDate: daysAgo(1000)},
		{ID: "new", ReleaseDate: daysAgo(10)},
		{ID: "planned", PlannedReleaseDate: daysAgo(5)},
		{ID: "undated"},
	}

	newest := sortWith(t, records, func(c *filter.Config) { c.SortBy = filter.SortReleaseNew })
	assert.Equal(t, []string{"planned", "new", "old", "undated"}, ids(newest))

	oldest := sortWith(t, records, func(c *filter.Config) { c.SortBy = filter.SortReleaseOld })
	assert.Equal(t, []string{"old", "new", "planned", "undated"}, ids(oldest), "undated still sorts last ascending")
}

/*
TestSort_BestValue pins the three-level chain: rating desc, then price asc
with free counting as zero, then review count desc.
*/
func TestSort_BestValue(t *testing.T) {
	records := []*game.Record{
		{ID: "pricey", PositiveReviewPct: pointer.To(90), PriceEURCents: pointer.To(2999)},
		{ID: "cheap", PositiveReviewPct: pointer.To(90), PriceEURCents: pointer.To(499)},
		{ID: "free", PositiveReviewPct: pointer.To(90), IsFree: true},
		{ID: "low_rated", PositiveReviewPct: pointer.To(60), PriceEURCents: pointer.To(99)},
		{ID: "trusted", PositiveReviewPct: pointer.To(90), PriceEURCents: pointer.To(499), ReviewCount: pointer.To(5000)},
	}

	sorted := sortWith(t, records, func(c *filter.Config) { c.SortBy = filter.SortBestValue })
	assert.Equal(t, []string{"free", "trusted", "cheap", "pricey", "low_rated"}, ids(sorted))
}

/*
TestSort_HiddenGems partitions qualifying gems to the front.
*/
func TestSort_HiddenGems(t *testing.T) {
	gem := &game.Record{ID: "gem", PositiveReviewPct: pointer.To(85), VideoCount: 2, ReviewCount: pointer.To(100)}
	betterGem := &game.Record{ID: "better_gem", PositiveReviewPct: pointer.To(92), VideoCount: 1, ReviewCount: pointer.To(80)}
	famous := &game.Record{ID: "famous", PositiveReviewPct: pointer.To(98), VideoCount: 40, ReviewCount: pointer.To(90000)}

	sorted := sortWith(t, []*game.Record{famous, gem, betterGem}, func(c *filter.Config) { c.SortBy = filter.SortHiddenGems })
	assert.Equal(t, []string{"better_gem", "gem", "famous"}, ids(sorted))
}

/*
TestSort_Trending partitions records matching the trending heuristic to the
front, ordered by coverage volume.
*/
func TestSort_Trending(t *testing.T) {
	records := []*game.Record{
		{ID: "stale_big", VideoCount: 50, LatestVideoDate: daysAgo(120)},
		{ID: "hot_small", VideoCount: 3, LatestVideoDate: daysAgo(2)},
		{ID: "hot_big", VideoCount: 9, LatestVideoDate: daysAgo(5)},
	}

	sorted := sortWith(t, records, func(c *filter.Config) { c.SortBy = filter.SortTrending })
	assert.Equal(t, []string{"hot_big", "hot_small", "stale_big"}, ids(sorted))
}

/*
TestSort_RecentDiscoveries orders by first-video date, less-covered first on
ties.
*/
func TestSort_RecentDiscoveries(t *testing.T) {
	records := []*game.Record{
		{ID: "old_find", FirstVideoDate: daysAgo(300), VideoCount: 2},
		{ID: "fresh_covered", FirstVideoDate: daysAgo(4), VideoCount: 6},
		{ID: "fresh_quiet", FirstVideoDate: daysAgo(4), VideoCount: 1},
		{ID: "never_covered"},
	}

	sorted := sortWith(t, records, func(c *filter.Config) { c.SortBy = filter.SortRecentDiscoveries })
	assert.Equal(t, []string{"fresh_quiet", "fresh_covered", "old_find", "never_covered"}, ids(sorted))
}

/*
TestSort_Advanced exercises the structured spec: primary ordering, secondary
tie-break, and nulls-last under a descending direction.
*/
func TestSort_Advanced(t *testing.T) {
	records := []*game.Record{
		{ID: "high_pricey", PositiveReviewPct: pointer.To(90), PriceEURCents: pointer.To(1999)},
		{ID: "high_cheap", PositiveReviewPct: pointer.To(90), PriceEURCents: pointer.To(299)},
		{ID: "low", PositiveReviewPct: pointer.To(40), PriceEURCents: pointer.To(99)},
		{ID: "unrated", PriceEURCents: pointer.To(99)},
	}

	sorted := sortWith(t, records, func(c *filter.Config) {
		c.SortBy = filter.SortAdvanced
		c.SortSpec = &filter.SortSpec{
			Primary:   filter.SortCriteria{Field: filter.FieldRating, Direction: filter.DirectionDesc},
			Secondary: &filter.SortCriteria{Field: filter.FieldPrice, Direction: filter.DirectionAsc},
		}
	})

	assert.Equal(t, []string{"high_cheap", "high_pricey", "low", "unrated"}, ids(sorted),
		"unrated sorts last even though the direction is descending")
}

/*
TestSort_Stability verifies that records equal under the comparator keep
their input order.
*/
func TestSort_Stability(t *testing.T) {
	records := []*game.Record{
		{ID: "first", PositiveReviewPct: pointer.To(80)},
		{ID: "second", PositiveReviewPct: pointer.To(80)},
		{ID: "third", PositiveReviewPct: pointer.To(80)},
	}

	sorted := sortWith(t, records, func(c *filter.Config) { c.SortBy = filter.SortRatingScore })
	assert.Equal(t, []string{"first", "second", "third"}, ids(sorted))
}

/*
TestSort_UnknownKey confirms the fail-fast contract for configs that bypassed
validation.
*/
func TestSort_UnknownKey(t *testing.T) {
	cfg := filter.Default()
	cfg.SortBy = "alphabetical"

	_, err := sorting.Sort(nil, cfg, testNow)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	cfg = filter.Default()
	cfg.SortBy = filter.SortAdvanced // invariant broken: no spec
	_, err = sorting.Sort(nil, cfg, testNow)
	require.Error(t, err)
}

/*
TestSuggestFor maps filter states to their complementary sort keys and
verifies the already-selected suppression.
*/
func TestSuggestFor(t *testing.T) {
	t.Run("hidden_gems_filter", func(t *testing.T) {
		c := filter.Default()
		c.HiddenGems = true
		assert.Equal(t, filter.SortHiddenGems, sorting.SuggestFor(c))
	})

	t.Run("trending_smart_filter", func(t *testing.T) {
		c := filter.Default()
		c.TimeFilter = &filter.TimeFilter{Type: filter.TimeTypeSmart, SmartLogic: filter.SmartTrending}
		assert.Equal(t, filter.SortTrending, sorting.SuggestFor(c))
	})

	t.Run("price_range", func(t *testing.T) {
		c := filter.Default()
		c.PriceFilter.MaxPrice = 10
		assert.Equal(t, filter.SortBestValue, sorting.SuggestFor(c))
	})

	t.Run("already_selected", func(t *testing.T) {
		c := filter.Default()
		c.HiddenGems = true
		c.SortBy = filter.SortHiddenGems
		assert.Empty(t, sorting.SuggestFor(c))
	})

	t.Run("default_state", func(t *testing.T) {
		assert.Empty(t, sorting.SuggestFor(filter.Default()))
	})
}
