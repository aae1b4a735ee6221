// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

/*
Package game defines the core domain entities for the Gamelens catalogue.

It models one row of the scraper-produced dataset: a game known from YouTube
channel coverage, cross-referenced against its store listings (Steam, Itch.io,
CrazyGames) with pricing, review, release, and coverage metrics.

Core Responsibility:

  - Catalogue: Defines platforms, currencies, and the immutable Record shape.
  - Derivation: Resolved price/release-date fallbacks and the hidden-gem rule.
  - Presentation: Display formatting for prices and review summaries.

Records are created by the upstream scraper at build time and are immutable
for the lifetime of one loaded snapshot generation.
*/
package game

import "time"

// # Domain Enums

// Platform identifies the store a record was scraped from.
type Platform string

const (
	PlatformSteam      Platform = "steam"
	PlatformItch       Platform = "itch"
	PlatformCrazyGames Platform = "crazygames"
)

// IsValid reports whether p is a recognised [Platform] value.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformSteam, PlatformItch, PlatformCrazyGames:
		return true
	}
	return false
}

// Currency selects which store price column a consumer resolves against.
type Currency string

const (
	CurrencyEUR Currency = "eur"
	CurrencyUSD Currency = "usd"
)

// IsValid reports whether c is a recognised [Currency] value.
func (c Currency) IsValid() bool {
	return c == CurrencyEUR || c == CurrencyUSD
}

// # Hidden Gem Policy

// Thresholds for the hidden-gem rule. The filter predicate and the badge
// derivation both go through [Record.IsHiddenGem], so these values cannot
// drift between the two.
const (
	// HiddenGemMinRating is the minimum positive review percentage.
	HiddenGemMinRating = 80

	// HiddenGemMinVideos / HiddenGemMaxVideos bound the coverage window:
	// covered at least once, but not widely known yet.
	HiddenGemMinVideos = 1
	HiddenGemMaxVideos = 3

	// HiddenGemMinReviews guards against tiny-sample rating noise.
	HiddenGemMinReviews = 50
)

// # Core Entity

// Record is the central aggregate of the Gamelens domain.
// It represents a single game in one loaded snapshot generation.
//
// Nullable fields use pointers: an unreleased game legitimately has no price
// and no rating, and consumers must apply an explicit per-field policy rather
// than treating absence as an error.
type Record struct {
	ID       string   `json:"id"`
	Platform Platform `json:"platform"`
	Name     string   `json:"name"`

	// # Pricing (integer cents per currency)
	PriceEURCents         *int `json:"price_eur,omitempty"`
	PriceUSDCents         *int `json:"price_usd,omitempty"`
	OriginalPriceEURCents *int `json:"original_price_eur,omitempty"`
	OriginalPriceUSDCents *int `json:"original_price_usd,omitempty"`
	DiscountPercent       *int `json:"discount_percent,omitempty"`
	IsFree                bool `json:"is_free"`
	IsOnSale              bool `json:"is_on_sale"`

	// # Rating
	PositiveReviewPct   *int   `json:"positive_review_percentage,omitempty"`
	ReviewCount         *int   `json:"review_count,omitempty"`
	ReviewSummary       string `json:"review_summary,omitempty"`
	InsufficientReviews bool   `json:"insufficient_reviews"`

	// # Release
	ReleaseDate        *time.Time `json:"release_date,omitempty"`
	PlannedReleaseDate *time.Time `json:"planned_release_date,omitempty"`
	ComingSoon         bool       `json:"coming_soon"`
	IsEarlyAccess      bool       `json:"is_early_access"`
	IsDemo             bool       `json:"is_demo"`

	// # Video Coverage
	VideoCount       int        `json:"video_count"`
	LatestVideoID    string     `json:"latest_video_id,omitempty"`
	LatestVideoTitle string     `json:"latest_video_title,omitempty"`
	LatestVideoDate  *time.Time `json:"latest_video_date,omitempty"`
	FirstVideoDate   *time.Time `json:"first_video_date,omitempty"`
	UniqueChannels   []string   `json:"unique_channels"`

	Tags []string `json:"tags"`

	// StoreURLs holds the store page per platform; more than one entry means
	// the same game is resolvable on multiple platforms.
	StoreURLs map[Platform]string `json:"store_urls,omitempty"`

	// # Absorption Linkage
	// A record superseded by a canonical Steam entry carries the target's
	// platform id in AbsorbedInto.
	IsAbsorbed   bool   `json:"is_absorbed"`
	AbsorbedInto string `json:"absorbed_into,omitempty"`
}

// # Derived Fields

// ResolvedPrice returns the price in the requested currency, falling back
// to the other currency when the requested one is absent. The returned
// Currency identifies which column actually supplied the value, so display
// code can pick the matching symbol. Cents is nil when the record has no
// price in either currency (unreleased, no pricing yet) — callers own the
// policy for that state.
func (r *Record) ResolvedPrice(currency Currency) (cents *int, source Currency) {
	primary, secondary := r.PriceEURCents, r.PriceUSDCents
	primaryCurrency, secondaryCurrency := CurrencyEUR, CurrencyUSD
	if currency == CurrencyUSD {
		primary, secondary = secondary, primary
		primaryCurrency, secondaryCurrency = secondaryCurrency, primaryCurrency
	}

	if primary != nil {
		return primary, primaryCurrency
	}
	return secondary, secondaryCurrency
}

// ResolvedPriceCents is [Record.ResolvedPrice] without the source currency,
// for callers that only compare amounts.
func (r *Record) ResolvedPriceCents(currency Currency) *int {
	cents, _ := r.ResolvedPrice(currency)
	return cents
}

// ResolvedReleaseDate returns the release date, falling back to the planned
// date for unreleased games. Nil means no date is known at all.
func (r *Record) ResolvedReleaseDate() *time.Time {
	if r.ReleaseDate != nil {
		return r.ReleaseDate
	}
	return r.PlannedReleaseDate
}

// HasRating reports whether the record carries a usable review percentage.
func (r *Record) HasRating() bool {
	return r.PositiveReviewPct != nil
}

// IsMultiPlatform reports whether the record is resolvable on more than one
// platform, either through absorption linkage or multiple store URLs.
func (r *Record) IsMultiPlatform() bool {
	if r.IsAbsorbed || r.AbsorbedInto != "" {
		return true
	}
	return len(r.StoreURLs) > 1
}

// IsHiddenGem reports whether the record meets the hidden-gem rule:
// highly rated, lightly covered, with enough reviews to trust the rating.
func (r *Record) IsHiddenGem() bool {
	if r.PositiveReviewPct == nil || *r.PositiveReviewPct < HiddenGemMinRating {
		return false
	}
	if r.VideoCount < HiddenGemMinVideos || r.VideoCount > HiddenGemMaxVideos {
		return false
	}
	return r.ReviewCount != nil && *r.ReviewCount >= HiddenGemMinReviews
}
