// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package preset

import "github.com/gamelens/gamelens/internal/core/filter"

// Builtins returns the popular presets shipped with the app, in display
// order. The slice and its presets are freshly allocated per call, so a
// careless caller cannot corrupt the canonical definitions.
func Builtins() []*Preset {
	return []*Preset{
		{
			ID:          "builtin-hidden-gems",
			Name:        "Hidden Gems",
			Description: "Highly rated games barely anyone has covered yet",
			Category:    "discovery",
			IsPopular:   true,
			Filters: func() filter.Config {
				c := filter.Default()
				c.HiddenGems = true
				c.SortBy = filter.SortHiddenGems
				return c
			}(),
		},
		{
			ID:          "builtin-trending",
			Name:        "Trending Now",
			Description: "Games multiple creators are covering right now",
			Category:    "discovery",
			IsPopular:   true,
			Filters: func() filter.Config {
				c := filter.Default()
				c.TimeFilter = &filter.TimeFilter{Type: filter.TimeTypeSmart, SmartLogic: filter.SmartTrending}
				c.SortBy = filter.SortTrending
				return c
			}(),
		},
		{
			ID:          "builtin-fresh-discoveries",
			Name:        "Fresh Discoveries",
			Description: "Games that just showed up in creator coverage",
			Category:    "discovery",
			IsPopular:   true,
			Filters: func() filter.Config {
				c := filter.Default()
				c.TimeFilter = &filter.TimeFilter{Type: filter.TimeTypeSmart, SmartLogic: filter.SmartNewDiscovery}
				c.SortBy = filter.SortRecentDiscoveries
				return c
			}(),
		},
		{
			ID:          "builtin-top-rated",
			Name:        "Top Rated",
			Description: "90%+ positive reviews across the catalogue",
			Category:    "quality",
			IsPopular:   true,
			Filters: func() filter.Config {
				c := filter.Default()
				c.Rating = "90"
				c.SortBy = filter.SortRatingScore
				return c
			}(),
		},
		{
			ID:          "builtin-budget-picks",
			Name:        "Budget Picks",
			Description: "Well reviewed games under €5, free included",
			Category:    "value",
			IsPopular:   true,
			Filters: func() filter.Config {
				c := filter.Default()
				c.Rating = "80"
				c.PriceFilter = filter.PriceFilter{MaxPrice: 5, IncludeFree: true}
				c.SortBy = filter.SortBestValue
				return c
			}(),
		},
		{
			ID:          "builtin-coming-soon",
			Name:        "Coming Soon",
			Description: "Unreleased games already getting attention",
			Category:    "upcoming",
			IsPopular:   true,
			Filters: func() filter.Config {
				c := filter.Default()
				c.ReleaseStatus = filter.ReleaseComingSoon
				c.SortBy = filter.SortReleaseNew
				return c
			}(),
		},
	}
}
