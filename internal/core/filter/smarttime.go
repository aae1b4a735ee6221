// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package filter

import (
	"time"

	"github.com/gamelens/gamelens/internal/core/game"
)

// # Smart Time Heuristics

// SmartLogic names one of the four discovery heuristics selectable through a
// smart time filter. Each heuristic is a boolean predicate over release date,
// first/last video date, and video count.
type SmartLogic string

const (
	// SmartRecentRelease: games that came out recently and are being covered.
	SmartRecentRelease SmartLogic = "recent-release"

	// SmartNewDiscovery: games that just entered the dataset with little
	// coverage yet.
	SmartNewDiscovery SmartLogic = "new-discovery"

	// SmartTrending: games attracting multiple recent videos.
	SmartTrending SmartLogic = "trending"

	// SmartRediscovered: old games suddenly getting fresh coverage.
	SmartRediscovered SmartLogic = "rediscovered"
)

// IsValid reports whether l is a recognised [SmartLogic] value.
func (l SmartLogic) IsValid() bool {
	switch l {
	case SmartRecentRelease, SmartNewDiscovery, SmartTrending, SmartRediscovered:
		return true
	}
	return false
}

// Recency windows of the smart heuristics. These values are product policy —
// they were tuned against the live dataset, not derived from anything, and
// the heuristics below must keep using them verbatim.
const (
	// smartReleaseWindowDays: how recent a release counts as "recent".
	smartReleaseWindowDays = 90

	// smartCoverageWindowDays: how recent a video counts as "being covered".
	smartCoverageWindowDays = 30

	// smartNewDiscoveryMaxVideos caps coverage for "newly discovered".
	smartNewDiscoveryMaxVideos = 2

	// smartTrendingMinVideos is the coverage floor for "trending".
	smartTrendingMinVideos = 3

	// smartTrendingWindowDays: how recent the latest video must be to trend.
	smartTrendingWindowDays = 14

	// smartRediscoveredMinAgeYears: how old a release must be for fresh
	// coverage to count as a rediscovery.
	smartRediscoveredMinAgeYears = 2
)

// Matches dispatches to the heuristic's predicate. Unknown values never
// match — they are rejected earlier by Validate on trusted paths. The sort
// engine reuses this for its discovery partitions, so the filter and the
// sort agree on what counts as trending.
func (l SmartLogic) Matches(r *game.Record, now time.Time) bool {
	switch l {
	case SmartRecentRelease:
		return isRecentRelease(r, now)
	case SmartNewDiscovery:
		return isNewDiscovery(r, now)
	case SmartTrending:
		return isTrending(r, now)
	case SmartRediscovered:
		return isRediscovered(r, now)
	default:
		return false
	}
}

// isRecentRelease: released within the last 90 days AND covered by a video
// within the last 30 days.
func isRecentRelease(r *game.Record, now time.Time) bool {
	release := r.ResolvedReleaseDate()
	if release == nil || r.LatestVideoDate == nil {
		return false
	}
	return withinDays(*release, now, smartReleaseWindowDays) &&
		withinDays(*r.LatestVideoDate, now, smartCoverageWindowDays)
}

// isNewDiscovery: first video within the last 30 days AND at most 2 videos
// total — the dataset only just learned about this game.
func isNewDiscovery(r *game.Record, now time.Time) bool {
	if r.FirstVideoDate == nil {
		return false
	}
	return withinDays(*r.FirstVideoDate, now, smartCoverageWindowDays) &&
		r.VideoCount <= smartNewDiscoveryMaxVideos
}

// isTrending: at least 3 videos AND the latest within the last 14 days —
// multiple creators are converging on it right now.
func isTrending(r *game.Record, now time.Time) bool {
	if r.LatestVideoDate == nil {
		return false
	}
	return r.VideoCount >= smartTrendingMinVideos &&
		withinDays(*r.LatestVideoDate, now, smartTrendingWindowDays)
}

// isRediscovered: released more than 2 years ago AND covered by a video
// within the last 30 days.
func isRediscovered(r *game.Record, now time.Time) bool {
	release := r.ResolvedReleaseDate()
	if release == nil || r.LatestVideoDate == nil {
		return false
	}
	ageCutoff := now.AddDate(-smartRediscoveredMinAgeYears, 0, 0)
	return release.Before(ageCutoff) &&
		withinDays(*r.LatestVideoDate, now, smartCoverageWindowDays)
}

// withinDays reports whether t falls inside the last n days ending at now.
func withinDays(t, now time.Time, n int) bool {
	cutoff := now.AddDate(0, 0, -n)
	return !t.Before(cutoff) && !t.After(now)
}
