// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package sorting

import (
	"time"

	"github.com/gamelens/gamelens/internal/core/filter"
	"github.com/gamelens/gamelens/internal/core/game"
)

// # Discovery Sorts
//
// Composite orderings tuned for browsing rather than lookup. Each one is an
// explicit comparator chain over the shared field primitives; the tie-break
// order is part of the product behaviour and tests pin it.

// bestValue surfaces well-rated cheap games: rating desc, then price asc
// (free counts as zero), then review count desc as the trust tie-break.
func bestValue(currency game.Currency) comparator {
	priceAsc := func(a, b *game.Record) int {
		return compareIntPtr(effectivePriceCents(a, currency), effectivePriceCents(b, currency), false)
	}
	return chain(byRatingDesc, priceAsc, byReviewCountDesc)
}

// hiddenGemsFirst partitions gems to the front, then orders each partition
// by rating.
func hiddenGemsFirst(a, b *game.Record) int {
	if c := compareBool(a.IsHiddenGem(), b.IsHiddenGem(), true); c != 0 {
		return c
	}
	return byRatingDesc(a, b)
}

// mostCovered: sheer video volume, freshest coverage breaking ties.
var mostCovered = chain(byVideoCountDesc, byLatestVideoDesc)

// trending partitions currently-trending records to the front and orders by
// coverage volume inside each partition. The partition predicate is the same
// heuristic the smart time filter uses.
func trending(now time.Time) comparator {
	return func(a, b *game.Record) int {
		if c := compareBool(filter.SmartTrending.Matches(a, now), filter.SmartTrending.Matches(b, now), true); c != 0 {
			return c
		}
		return chain(byVideoCountDesc, byLatestVideoDesc)(a, b)
	}
}

// creatorConsensus: breadth of independent channels covering the game, rating
// breaking ties.
var creatorConsensus = chain(byChannelCountDesc, byRatingDesc)

// recentDiscoveries: newest first-video dates first; among same-day
// discoveries the less-covered game leads, because that is the one the
// browser has not seen everywhere already.
var recentDiscoveries = chain(byFirstVideoDesc, byVideoCountAsc)

// SuggestFor proposes the sort key that best complements the active filter
// state, for the "suggested sort" affordance. It never proposes the key that
// is already selected; callers treat an empty string as "no suggestion".
func SuggestFor(cfg filter.Config) string {
	suggestion := suggestionFor(cfg)
	if suggestion == cfg.SortBy {
		return ""
	}
	return suggestion
}

func suggestionFor(cfg filter.Config) string {
	if cfg.HiddenGems {
		return filter.SortHiddenGems
	}
	if tf := cfg.TimeFilter; tf != nil && tf.Type == filter.TimeTypeSmart {
		switch tf.SmartLogic {
		case filter.SmartTrending:
			return filter.SortTrending
		case filter.SmartNewDiscovery:
			return filter.SortRecentDiscoveries
		case filter.SmartRecentRelease:
			return filter.SortReleaseNew
		case filter.SmartRediscovered:
			return filter.SortMostCovered
		}
	}
	if len(cfg.SelectedChannels) > 0 {
		return filter.SortCreatorConsensus
	}
	if cfg.PriceFilter.IsBounded() {
		return filter.SortBestValue
	}
	if tf := cfg.TimeFilter; tf != nil && tf.Type == filter.TimeTypeRelease {
		return filter.SortReleaseNew
	}
	if cfg.Rating != "0" {
		return filter.SortRatingScore
	}
	return filter.SortLatestVideo
}
