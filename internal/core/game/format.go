// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package game

import "fmt"

// # Review Summary Tiers

// Steam review summary strings, ordered from best to worst. "No user reviews"
// and insufficient-review records form distinct buckets below the named tiers
// so that category sorting never interleaves them with rated games.
const (
	summaryRankOverwhelminglyPositive = 9
	summaryRankVeryPositive           = 8
	summaryRankPositive               = 7
	summaryRankMostlyPositive         = 6
	summaryRankMixed                  = 5
	summaryRankMostlyNegative         = 4
	summaryRankNegative               = 3
	summaryRankVeryNegative           = 2
	summaryRankOverwhelminglyNegative = 1

	// summaryRankInsufficient groups records whose sample is too small to
	// trust; it sits above the no-reviews bucket.
	summaryRankInsufficient = 0

	// summaryRankNone is the lowest bucket: no user reviews at all.
	summaryRankNone = -1
)

var summaryRanks = map[string]int{
	"Overwhelmingly Positive": summaryRankOverwhelminglyPositive,
	"Very Positive":           summaryRankVeryPositive,
	"Positive":                summaryRankPositive,
	"Mostly Positive":         summaryRankMostlyPositive,
	"Mixed":                   summaryRankMixed,
	"Mostly Negative":         summaryRankMostlyNegative,
	"Negative":                summaryRankNegative,
	"Very Negative":           summaryRankVeryNegative,
	"Overwhelmingly Negative": summaryRankOverwhelminglyNegative,
}

// SummaryRank maps a review summary string to its ordinal tier.
// Insufficient-review records rank below every named tier; unknown or empty
// summaries fall into the lowest "no reviews" bucket.
func (r *Record) SummaryRank() int {
	if r.InsufficientReviews {
		return summaryRankInsufficient
	}
	if rank, ok := summaryRanks[r.ReviewSummary]; ok {
		return rank
	}
	return summaryRankNone
}

// # Display Formatting

// Rating color tokens consumed by the presentation layer. The same token is
// used for the card badge and the detail view.
const (
	RatingColorHigh  = "high"
	RatingColorMixed = "mixed"
	RatingColorLow   = "low"
	RatingColorNone  = "none"

	ratingColorHighFloor  = 70
	ratingColorMixedFloor = 40
)

// RatingColor maps a review percentage to its display color token.
func RatingColor(positivePct *int) string {
	switch {
	case positivePct == nil:
		return RatingColorNone
	case *positivePct >= ratingColorHighFloor:
		return RatingColorHigh
	case *positivePct >= ratingColorMixedFloor:
		return RatingColorMixed
	default:
		return RatingColorLow
	}
}

// FormatRating renders the review percentage for display, e.g. "87%".
// Records without a rating render as "n/a".
func FormatRating(positivePct *int) string {
	if positivePct == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d%%", *positivePct)
}

// currencySymbols maps a currency to its display prefix.
var currencySymbols = map[Currency]string{
	CurrencyEUR: "€",
	CurrencyUSD: "$",
}

// FormatPrice renders a resolved price for display.
//
// Free games render as "Free" regardless of any price columns; a record with
// no resolvable price renders as "TBA" (typically unreleased).
func FormatPrice(r *Record, currency Currency) string {
	if r.IsFree {
		return "Free"
	}

	cents, source := r.ResolvedPrice(currency)
	if cents == nil {
		return "TBA"
	}

	return fmt.Sprintf("%s%.2f", currencySymbols[source], float64(*cents)/100)
}

// FormatDiscount renders the active discount for display, e.g. "-40%".
// It returns an empty string when the record is not on sale.
func FormatDiscount(r *Record) string {
	if !r.IsOnSale || r.DiscountPercent == nil || *r.DiscountPercent <= 0 {
		return ""
	}
	return fmt.Sprintf("-%d%%", *r.DiscountPercent)
}

// Display groups the precomputed presentation strings for one record, so
// clients render prices and ratings without duplicating the formatting
// rules.
type Display struct {
	Price       string `json:"price"`
	Rating      string `json:"rating"`
	RatingColor string `json:"ratingColor"`
	Discount    string `json:"discount,omitempty"`
}

// DisplayFor assembles the display strings for a record in the given
// currency.
func DisplayFor(r *Record, currency Currency) Display {
	return Display{
		Price:       FormatPrice(r, currency),
		Rating:      FormatRating(r.PositiveReviewPct),
		RatingColor: RatingColor(r.PositiveReviewPct),
		Discount:    FormatDiscount(r),
	}
}
