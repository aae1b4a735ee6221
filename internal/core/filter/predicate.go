// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package filter

import (
	"time"

	"github.com/gamelens/gamelens/internal/core/game"
	"github.com/gamelens/gamelens/pkg/slice"
)

// # Predicate

// Matches reports whether a record passes every active rule of the config.
//
// It is a pure function with no cross-record state, so filtering a list is
// order-independent and safe to parallelize. All rules AND together; an
// inactive rule (default value, empty set, nil time filter) always passes.
//
// now anchors the relative windows of time presets and smart heuristics so
// that results are reproducible in tests.
func Matches(r *game.Record, c Config, now time.Time) bool {
	return matchesReleaseStatus(r, c.ReleaseStatus) &&
		matchesPlatform(r, c.Platform) &&
		matchesRating(r, c.RatingThreshold()) &&
		matchesCrossPlatform(r, c.CrossPlatform) &&
		matchesHiddenGems(r, c.HiddenGems) &&
		matchesTags(r, c.SelectedTags, c.TagLogic) &&
		matchesChannels(r, c.SelectedChannels) &&
		matchesPrice(r, c.PriceFilter, c.Currency) &&
		matchesTime(r, c.TimeFilter, now)
}

func matchesReleaseStatus(r *game.Record, status ReleaseStatus) bool {
	switch status {
	case ReleaseReleased:
		return !r.ComingSoon
	case ReleaseEarlyAccess:
		return r.IsEarlyAccess
	case ReleaseComingSoon:
		return r.ComingSoon
	default:
		return true
	}
}

func matchesPlatform(r *game.Record, platform string) bool {
	return platform == PlatformAll || string(r.Platform) == platform
}

// matchesRating applies the review-percentage floor. Threshold 0 passes
// everything — including records with no rating at all; absence of a rating
// is not "below threshold". For any higher floor, an unrated record cannot
// demonstrate compliance and fails.
func matchesRating(r *game.Record, threshold int) bool {
	if threshold == 0 {
		return true
	}
	return r.PositiveReviewPct != nil && *r.PositiveReviewPct >= threshold
}

func matchesCrossPlatform(r *game.Record, required bool) bool {
	return !required || r.IsMultiPlatform()
}

func matchesHiddenGems(r *game.Record, required bool) bool {
	return !required || r.IsHiddenGem()
}

func matchesTags(r *game.Record, selected []string, logic TagLogic) bool {
	if len(selected) == 0 {
		return true
	}
	if logic == TagLogicAnd {
		return slice.ContainsAll(r.Tags, selected)
	}
	return slice.Intersects(r.Tags, selected)
}

func matchesChannels(r *game.Record, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	return slice.Intersects(r.UniqueChannels, selected)
}

// matchesPrice applies the price range in the configured currency, falling
// back to the other currency when the requested one is absent.
//
// Free records are gated solely by IncludeFree — when set, they pass
// regardless of the range. A record with no resolvable price in either
// currency is excluded from any bounded range: an unpriced (typically
// unreleased) game cannot be shown under "costs between 5 and 10". That
// exclusion is deliberate policy, not null-handling fallout.
func matchesPrice(r *game.Record, p PriceFilter, currency game.Currency) bool {
	if r.IsFree {
		return p.IncludeFree
	}

	if !p.IsBounded() {
		return true
	}

	cents := r.ResolvedPriceCents(currency)
	if cents == nil {
		return false
	}

	price := float64(*cents) / 100
	if price < p.MinPrice {
		return false
	}
	return p.MaxPrice == 0 || price <= p.MaxPrice
}

func matchesTime(r *game.Record, tf *TimeFilter, now time.Time) bool {
	if tf == nil {
		return true
	}

	start, end := tf.window(now)

	switch tf.Type {
	case TimeTypeVideo:
		return inWindow(r.LatestVideoDate, start, end)
	case TimeTypeRelease:
		return inWindow(r.ResolvedReleaseDate(), start, end)
	case TimeTypeSmart:
		return tf.SmartLogic.Matches(r, now)
	default:
		return true
	}
}

// window resolves the effective [start, end] range. A non-empty preset wins
// over the explicit dates; an unknown preset yields an open window.
func (tf *TimeFilter) window(now time.Time) (start, end *time.Time) {
	if tf.Preset != "" {
		days, ok := timePresetDays[tf.Preset]
		if !ok {
			return nil, nil
		}
		from := now.AddDate(0, 0, -days)
		return &from, &now
	}
	return tf.StartDate, tf.EndDate
}

// inWindow checks containment in an inclusive range where either bound may be
// open (nil). A record without the compared date fails any active window.
func inWindow(t *time.Time, start, end *time.Time) bool {
	if start == nil && end == nil {
		return true
	}
	if t == nil {
		return false
	}
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && t.After(*end) {
		return false
	}
	return true
}
