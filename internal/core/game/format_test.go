// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gamelens/gamelens/internal/core/game"
	"github.com/gamelens/gamelens/pkg/pointer"
)

/*
TestSummaryRank pins the tier ordering: named tiers above insufficient,
insufficient above no-reviews.
*/
func TestSummaryRank(t *testing.T) {
	rank := func(summary string, insufficient bool) int {
		r := &game.Record{ReviewSummary: summary, InsufficientReviews: insufficient}
		return r.SummaryRank()
	}

	assert.Greater(t, rank("Overwhelmingly Positive", false), rank("Very Positive", false))
	assert.Greater(t, rank("Very Positive", false), rank("Mixed", false))
	assert.Greater(t, rank("Mixed", false), rank("Overwhelmingly Negative", false))

	assert.Greater(t, rank("Overwhelmingly Negative", false), rank("", true),
		"the worst named tier still outranks an untrustworthy sample")
	assert.Greater(t, rank("", true), rank("", false),
		"insufficient reviews outrank no reviews at all")

	assert.Equal(t, rank("Something Unrecognised", false), rank("", false))
}

/*
TestRatingColor maps percentages to display tokens at the tier boundaries.
*/
func TestRatingColor(t *testing.T) {
	tests := []struct {
		name string
		pct  *int
		want string
	}{
		{"high", pointer.To(87), game.RatingColorHigh},
		{"high_floor", pointer.To(70), game.RatingColorHigh},
		{"mixed", pointer.To(69), game.RatingColorMixed},
		{"mixed_floor", pointer.To(40), game.RatingColorMixed},
		{"low", pointer.To(39), game.RatingColorLow},
		{"none", nil, game.RatingColorNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, game.RatingColor(tt.pct))
		})
	}
}

/*
TestFormatRating renders percentages and the missing-rating placeholder.
*/
func TestFormatRating(t *testing.T) {
	assert.Equal(t, "87%", game.FormatRating(pointer.To(87)))
	assert.Equal(t, "n/a", game.FormatRating(nil))
}

/*
TestFormatPrice covers currency symbols, the free label, the unpriced
placeholder, and the cross-currency fallback.
*/
func TestFormatPrice(t *testing.T) {
	priced := &game.Record{PriceEURCents: pointer.To(499), PriceUSDCents: pointer.To(599)}
	assert.Equal(t, "€4.99", game.FormatPrice(priced, game.CurrencyEUR))
	assert.Equal(t, "$5.99", game.FormatPrice(priced, game.CurrencyUSD))

	free := &game.Record{IsFree: true, PriceEURCents: pointer.To(0)}
	assert.Equal(t, "Free", game.FormatPrice(free, game.CurrencyEUR))

	unpriced := &game.Record{ComingSoon: true}
	assert.Equal(t, "TBA", game.FormatPrice(unpriced, game.CurrencyEUR))

	usdOnly := &game.Record{PriceUSDCents: pointer.To(1099)}
	assert.Equal(t, "$10.99", game.FormatPrice(usdOnly, game.CurrencyEUR),
		"fallback carries the symbol of the currency that supplied the value")
	eurOnly := &game.Record{PriceEURCents: pointer.To(1099)}
	assert.Equal(t, "€10.99", game.FormatPrice(eurOnly, game.CurrencyUSD))
}

/*
TestFormatDiscount renders active discounts only.
*/
func TestFormatDiscount(t *testing.T) {
	onSale := &game.Record{IsOnSale: true, DiscountPercent: pointer.To(40)}
	assert.Equal(t, "-40%", game.FormatDiscount(onSale))

	assert.Empty(t, game.FormatDiscount(&game.Record{DiscountPercent: pointer.To(40)}))
	assert.Empty(t, game.FormatDiscount(&game.Record{IsOnSale: true}))
	assert.Empty(t, game.FormatDiscount(&game.Record{IsOnSale: true, DiscountPercent: pointer.To(0)}))
}

/*
TestDisplayFor assembles the full display bundle the API attaches to each
record payload.
*/
func TestDisplayFor(t *testing.T) {
	r := &game.Record{
		PriceEURCents:     pointer.To(499),
		PositiveReviewPct: pointer.To(87),
		IsOnSale:          true,
		DiscountPercent:   pointer.To(25),
	}

	display := game.DisplayFor(r, game.CurrencyEUR)
	assert.Equal(t, "€4.99", display.Price)
	assert.Equal(t, "87%", display.Rating)
	assert.Equal(t, game.RatingColorHigh, display.RatingColor)
	assert.Equal(t, "-25%", display.Discount)

	bare := game.DisplayFor(&game.Record{ComingSoon: true}, game.CurrencyEUR)
	assert.Equal(t, "TBA", bare.Price)
	assert.Equal(t, "n/a", bare.Rating)
	assert.Equal(t, game.RatingColorNone, bare.RatingColor)
	assert.Empty(t, bare.Discount)
}
