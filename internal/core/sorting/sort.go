// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

/*
Package sorting orders filtered catalogue slices.

Core Responsibility:

  - Simple keys: One comparator per named sort key, date and rating based.
  - Composite keys: Multi-level discovery sorts (best value, hidden gems,
    trending) built from the same field comparators.
  - Advanced: Structured primary/secondary criteria from a sort spec.

Every sort is stable and operates on a copy of the input slice; the snapshot
dataset underneath is shared across requests and is never reordered in place.
Records missing a compared field always sort last, whatever the direction —
absence is not a value.
*/
package sorting

import (
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gamelens/gamelens/internal/core/filter"
	"github.com/gamelens/gamelens/internal/core/game"
	"github.com/gamelens/gamelens/internal/platform/apperr"
)

// comparator reports a's order relative to b: negative sorts a first.
type comparator func(a, b *game.Record) int

// Sort returns a new slice holding records in the order requested by the
// config. The input slice is never mutated.
//
// An unknown sort key or a missing sort spec is a hard error: by the time a
// config reaches the sort engine it has passed validation, so a violation
// here is a programming bug and must surface, not silently fall back.
func Sort(records []*game.Record, cfg filter.Config, now time.Time) ([]*game.Record, error) {
	cmp, err := comparatorFor(cfg, now)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, cmp)
	return sorted, nil
}

func comparatorFor(cfg filter.Config, now time.Time) (comparator, error) {
	switch cfg.SortBy {
	case filter.SortRatingScore:
		return byRatingDesc, nil
	case filter.SortRatingCategory:
		return chain(bySummaryRankDesc, byRatingDesc), nil
	case filter.SortName:
		return byName(), nil
	case filter.SortReleaseNew:
		return byReleaseDesc, nil
	case filter.SortReleaseOld:
		return byReleaseAsc, nil
	case filter.SortLatestVideo:
		return byLatestVideoDesc, nil
	case filter.SortBestValue:
		return bestValue(cfg.Currency), nil
	case filter.SortHiddenGems:
		return hiddenGemsFirst, nil
	case filter.SortMostCovered:
		return mostCovered, nil
	case filter.SortTrending:
		return trending(now), nil
	case filter.SortCreatorConsensus:
		return creatorConsensus, nil
	case filter.SortRecentDiscoveries:
		return recentDiscoveries, nil
	case filter.SortAdvanced:
		return fromSpec(cfg.SortSpec, cfg.Currency)
	default:
		return nil, apperr.ValidationError("Unknown sort key: " + cfg.SortBy)
	}
}

// chain applies comparators in order until one breaks the tie.
func chain(cmps ...comparator) comparator {
	return func(a, b *game.Record) int {
		for _, cmp := range cmps {
			if c := cmp(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

// byName builds a locale-aware, case-insensitive name comparator. The
// collator is not safe for concurrent use, so each Sort call gets its own.
func byName() comparator {
	coll := collate.New(language.English, collate.IgnoreCase)
	return func(a, b *game.Record) int {
		return coll.CompareString(a.Name, b.Name)
	}
}

// fromSpec assembles the advanced comparator from a primary criterion and an
// optional secondary tie-break.
func fromSpec(spec *filter.SortSpec, currency game.Currency) (comparator, error) {
	if spec == nil {
		return nil, apperr.ValidationError("Advanced sort requires a sort spec")
	}

	primary, err := fieldComparator(spec.Primary, currency)
	if err != nil {
		return nil, err
	}
	if spec.Secondary == nil {
		return primary, nil
	}

	secondary, err := fieldComparator(*spec.Secondary, currency)
	if err != nil {
		return nil, err
	}
	return chain(primary, secondary), nil
}

// fieldComparator maps one criterion to a comparator. The direction flips
// value order only; records missing the field stay last either way.
func fieldComparator(c filter.SortCriteria, currency game.Currency) (comparator, error) {
	desc := c.Direction == filter.DirectionDesc

	switch c.Field {
	case filter.FieldRating:
		return func(a, b *game.Record) int {
			return compareIntPtr(a.PositiveReviewPct, b.PositiveReviewPct, desc)
		}, nil
	case filter.FieldCoverage:
		return func(a, b *game.Record) int {
			return compareInt(a.VideoCount, b.VideoCount, desc)
		}, nil
	case filter.FieldRecency:
		return func(a, b *game.Record) int {
			return compareTimePtr(a.LatestVideoDate, b.LatestVideoDate, desc)
		}, nil
	case filter.FieldRelease:
		return func(a, b *game.Record) int {
			return compareTimePtr(a.ResolvedReleaseDate(), b.ResolvedReleaseDate(), desc)
		}, nil
	case filter.FieldPrice:
		return func(a, b *game.Record) int {
			return compareIntPtr(effectivePriceCents(a, currency), effectivePriceCents(b, currency), desc)
		}, nil
	case filter.FieldChannels:
		return func(a, b *game.Record) int {
			return compareInt(len(a.UniqueChannels), len(b.UniqueChannels), desc)
		}, nil
	case filter.FieldReviews:
		return func(a, b *game.Record) int {
			return compareIntPtr(a.ReviewCount, b.ReviewCount, desc)
		}, nil
	default:
		return nil, apperr.ValidationError("Unknown sort field: " + string(c.Field))
	}
}
