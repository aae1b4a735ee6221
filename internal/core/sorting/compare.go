// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package sorting

import (
	"cmp"
	"time"

	"github.com/gamelens/gamelens/internal/core/game"
	"github.com/gamelens/gamelens/pkg/pointer"
)

// # Field Comparison Primitives
//
// All pointer comparisons share one nil policy: a record missing the field
// sorts after every record that has it, regardless of direction. Only the
// value order flips with desc.

func compareInt(a, b int, desc bool) int {
	if desc {
		return cmp.Compare(b, a)
	}
	return cmp.Compare(a, b)
}

func compareIntPtr(a, b *int, desc bool) int {
	if a == nil || b == nil {
		return nilOrder(a == nil, b == nil)
	}
	return compareInt(*a, *b, desc)
}

func compareTimePtr(a, b *time.Time, desc bool) int {
	if a == nil || b == nil {
		return nilOrder(a == nil, b == nil)
	}
	if desc {
		return b.Compare(*a)
	}
	return a.Compare(*b)
}

func compareBool(a, b, preferTrue bool) int {
	if a == b {
		return 0
	}
	if a == preferTrue {
		return -1
	}
	return 1
}

// nilOrder is only called when at least one side is nil.
func nilOrder(aNil, bNil bool) int {
	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return 1
	default:
		return -1
	}
}

// effectivePriceCents resolves the price used for price ordering: free games
// count as zero, so they lead ascending price sorts instead of dropping to
// the nulls-last tail.
func effectivePriceCents(r *game.Record, currency game.Currency) *int {
	if r.IsFree {
		return pointer.To(0)
	}
	return r.ResolvedPriceCents(currency)
}

// # Named Simple Comparators

func byRatingDesc(a, b *game.Record) int {
	return compareIntPtr(a.PositiveReviewPct, b.PositiveReviewPct, true)
}

func bySummaryRankDesc(a, b *game.Record) int {
	return compareInt(a.SummaryRank(), b.SummaryRank(), true)
}

func byReleaseDesc(a, b *game.Record) int {
	return compareTimePtr(a.ResolvedReleaseDate(), b.ResolvedReleaseDate(), true)
}

func byReleaseAsc(a, b *game.Record) int {
	return compareTimePtr(a.ResolvedReleaseDate(), b.ResolvedReleaseDate(), false)
}

func byLatestVideoDesc(a, b *game.Record) int {
	return compareTimePtr(a.LatestVideoDate, b.LatestVideoDate, true)
}

func byVideoCountDesc(a, b *game.Record) int {
	return compareInt(a.VideoCount, b.VideoCount, true)
}

func byChannelCountDesc(a, b *game.Record) int {
	return compareInt(len(a.UniqueChannels), len(b.UniqueChannels), true)
}

func byReviewCountDesc(a, b *game.Record) int {
	return compareIntPtr(a.ReviewCount, b.ReviewCount, true)
}

func byFirstVideoDesc(a, b *game.Record) int {
	return compareTimePtr(a.FirstVideoDate, b.FirstVideoDate, true)
}

func byVideoCountAsc(a, b *game.Record) int {
	return compareInt(a.VideoCount, b.VideoCount, false)
}
