// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

/*
Package filter defines the complete, serializable filter state for the
discovery catalogue and the predicate that evaluates it per record.

Core Responsibility:

  - Config: The single filter-state shape shared by the list endpoint, the
    preset manager, and the shareable-URL codec.
  - Predicate: Pure per-record matching with explicit null-field policies.
  - Equality: The one set-aware deep-equality used for preset matching and
    "any non-default filters active" detection.
  - Codec: Round-trip query-string serialization that omits defaults.

Config values are constructed with defaults and mutated incrementally by the
caller; nothing in this package holds cross-record or cross-request state.
*/
package filter

import (
	"slices"
	"time"

	"github.com/gamelens/gamelens/internal/core/game"
	"github.com/gamelens/gamelens/internal/platform/apperr"
)

// # Enumerations

// ReleaseStatus narrows the catalogue by release lifecycle.
type ReleaseStatus string

const (
	ReleaseAll         ReleaseStatus = "all"
	ReleaseReleased    ReleaseStatus = "released"
	ReleaseEarlyAccess ReleaseStatus = "early-access"
	ReleaseComingSoon  ReleaseStatus = "coming-soon"
)

// IsValid reports whether s is a recognised [ReleaseStatus] value.
func (s ReleaseStatus) IsValid() bool {
	switch s {
	case ReleaseAll, ReleaseReleased, ReleaseEarlyAccess, ReleaseComingSoon:
		return true
	}
	return false
}

// PlatformAll is the platform filter value that passes every record.
const PlatformAll = "all"

// TagLogic selects how multiple selected tags combine.
type TagLogic string

const (
	TagLogicAnd TagLogic = "and"
	TagLogicOr  TagLogic = "or"
)

// Rating thresholds are string-encoded to match the wire format; only these
// four values are accepted.
var validRatingThresholds = map[string]int{
	"0":  0,
	"70": 70,
	"80": 80,
	"90": 90,
}

// # Sort Vocabulary

// Simple sort keys accepted in Config.SortBy. SortAdvanced switches the sort
// engine to the structured SortSpec instead.
const (
	SortRatingScore       = "rating-score"
	SortRatingCategory    = "rating-category"
	SortName              = "name"
	SortReleaseNew        = "release-new"
	SortReleaseOld        = "release-old"
	SortLatestVideo       = "latest-video"
	SortBestValue         = "best-value"
	SortHiddenGems        = "hidden-gems"
	SortMostCovered       = "most-covered"
	SortTrending          = "trending"
	SortCreatorConsensus  = "creator-consensus"
	SortRecentDiscoveries = "recent-discoveries"
	SortAdvanced          = "advanced"
)

// ValidSortKeys returns every accepted SortBy value, SortAdvanced included.
func ValidSortKeys() []string {
	return []string{
		SortRatingScore, SortRatingCategory, SortName,
		SortReleaseNew, SortReleaseOld, SortLatestVideo,
		SortBestValue, SortHiddenGems, SortMostCovered,
		SortTrending, SortCreatorConsensus, SortRecentDiscoveries,
		SortAdvanced,
	}
}

// SortField names a record attribute usable in an advanced sort criterion.
type SortField string

const (
	FieldRating   SortField = "rating"
	FieldCoverage SortField = "coverage"
	FieldRecency  SortField = "recency"
	FieldRelease  SortField = "release"
	FieldPrice    SortField = "price"
	FieldChannels SortField = "channels"
	FieldReviews  SortField = "reviews"
)

// IsValid reports whether f is a recognised [SortField] value.
func (f SortField) IsValid() bool {
	switch f {
	case FieldRating, FieldCoverage, FieldRecency, FieldRelease,
		FieldPrice, FieldChannels, FieldReviews:
		return true
	}
	return false
}

// SortDirection orders a criterion ascending or descending.
type SortDirection string

const (
	DirectionAsc  SortDirection = "asc"
	DirectionDesc SortDirection = "desc"
)

// IsValid reports whether d is a recognised [SortDirection] value.
func (d SortDirection) IsValid() bool {
	return d == DirectionAsc || d == DirectionDesc
}

// SortCriteria is one field/direction pair of an advanced sort.
type SortCriteria struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// SortSpec is the structured multi-criteria sort: a primary criterion plus an
// optional secondary tie-break. It exists only while Config.SortBy is
// [SortAdvanced].
type SortSpec struct {
	Primary   SortCriteria  `json:"primary"`
	Secondary *SortCriteria `json:"secondary,omitempty"`
}

// # Time Filter

// TimeType selects which record date a time window applies to.
type TimeType string

const (
	TimeTypeVideo   TimeType = "video"
	TimeTypeRelease TimeType = "release"
	TimeTypeSmart   TimeType = "smart"
)

// Named relative windows accepted in TimeFilter.Preset.
const (
	TimePresetWeek    = "last-7-days"
	TimePresetMonth   = "last-30-days"
	TimePresetQuarter = "last-90-days"
	TimePresetYear    = "last-year"
)

var timePresetDays = map[string]int{
	TimePresetWeek:    7,
	TimePresetMonth:   30,
	TimePresetQuarter: 90,
	TimePresetYear:    365,
}

// TimeFilter narrows the catalogue by a date window or a smart heuristic.
// Preset and the explicit Start/End range are mutually exclusive modes;
// a non-empty Preset wins.
type TimeFilter struct {
	Type       TimeType   `json:"type"`
	Preset     string     `json:"preset,omitempty"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	SmartLogic SmartLogic `json:"smartLogic,omitempty"`
}

// # Price Filter

// PriceFilter bounds the resolved price of non-free records.
//
// MaxPrice of 0 means "no ceiling": a paid record never costs exactly zero
// (free games are gated by IncludeFree instead), so zero is safe to reuse as
// the unbounded sentinel and keeps the default config matching everything.
type PriceFilter struct {
	MinPrice    float64 `json:"minPrice"`
	MaxPrice    float64 `json:"maxPrice"`
	IncludeFree bool    `json:"includeFree"`
}

// IsBounded reports whether the range actually constrains anything.
func (p PriceFilter) IsBounded() bool {
	return p.MinPrice > 0 || p.MaxPrice > 0
}

// # Config

// Config is the complete filter state. It is the unit of preset persistence
// and shareable-URL serialization.
//
// Invariant: SortBy == [SortAdvanced] exactly when SortSpec is non-nil.
// SelectedTags and SelectedChannels are order-irrelevant sets represented as
// slices; Equal compares them as sets.
type Config struct {
	ReleaseStatus ReleaseStatus `json:"releaseStatus"`
	Platform      string        `json:"platform"`
	Rating        string        `json:"rating"`
	CrossPlatform bool          `json:"crossPlatform"`
	HiddenGems    bool          `json:"hiddenGems"`

	SelectedTags []string `json:"selectedTags"`
	TagLogic     TagLogic `json:"tagLogic"`

	SelectedChannels []string `json:"selectedChannels"`

	SortBy   string    `json:"sortBy"`
	SortSpec *SortSpec `json:"sortSpec,omitempty"`

	Currency game.Currency `json:"currency"`

	TimeFilter  *TimeFilter `json:"timeFilter,omitempty"`
	PriceFilter PriceFilter `json:"priceFilter"`
}

// Default returns the filter state that excludes nothing: every record in
// the snapshot matches it.
func Default() Config {
	return Config{
		ReleaseStatus: ReleaseAll,
		Platform:      PlatformAll,
		Rating:        "0",
		TagLogic:      TagLogicOr,
		SortBy:        SortLatestVideo,
		Currency:      game.CurrencyEUR,
		PriceFilter:   PriceFilter{IncludeFree: true},
	}
}

// RatingThreshold returns the numeric rating floor, or 0 for the pass-all
// threshold (and for unrecognised values, which Validate rejects upstream).
func (c Config) RatingThreshold() int {
	return validRatingThresholds[c.Rating]
}

// Validate checks every enum field and the SortBy/SortSpec invariant.
//
// Parsing user-supplied URLs never calls this — the codec falls back
// per-parameter instead. Validate guards the trusted paths: stored presets
// and JSON request bodies, where a violation means corruption and must
// surface rather than be silently repaired.
func (c Config) Validate() error {
	var details []apperr.FieldError
	fail := func(field, message string) {
		details = append(details, apperr.FieldError{Field: field, Message: message})
	}

	if !c.ReleaseStatus.IsValid() {
		fail("releaseStatus", "Unknown release status")
	}
	if c.Platform != PlatformAll && !game.Platform(c.Platform).IsValid() {
		fail("platform", "Unknown platform")
	}
	if _, ok := validRatingThresholds[c.Rating]; !ok {
		fail("rating", "Unknown rating threshold")
	}
	if c.TagLogic != TagLogicAnd && c.TagLogic != TagLogicOr {
		fail("tagLogic", "Must be \"and\" or \"or\"")
	}
	if !slices.Contains(ValidSortKeys(), c.SortBy) {
		fail("sortBy", "Unknown sort key")
	}
	if (c.SortBy == SortAdvanced) != (c.SortSpec != nil) {
		fail("sortSpec", "Must be present exactly when sortBy is \"advanced\"")
	}
	if c.SortSpec != nil {
		if !c.SortSpec.Primary.Field.IsValid() || !c.SortSpec.Primary.Direction.IsValid() {
			fail("sortSpec", "Invalid primary criterion")
		}
		if s := c.SortSpec.Secondary; s != nil && (!s.Field.IsValid() || !s.Direction.IsValid()) {
			fail("sortSpec", "Invalid secondary criterion")
		}
	}
	if !c.Currency.IsValid() {
		fail("currency", "Unknown currency")
	}
	if tf := c.TimeFilter; tf != nil {
		switch tf.Type {
		case TimeTypeVideo, TimeTypeRelease:
			if tf.Preset != "" {
				if _, ok := timePresetDays[tf.Preset]; !ok {
					fail("timeFilter", "Unknown time preset")
				}
			}
		case TimeTypeSmart:
			if !tf.SmartLogic.IsValid() {
				fail("timeFilter", "Unknown smart logic")
			}
		default:
			fail("timeFilter", "Unknown time filter type")
		}
	}
	if p := c.PriceFilter; p.MinPrice < 0 || p.MaxPrice < 0 {
		fail("priceFilter", "Prices must not be negative")
	} else if p.MaxPrice > 0 && p.MaxPrice < p.MinPrice {
		fail("priceFilter", "maxPrice must not be below minPrice")
	}

	if len(details) > 0 {
		return apperr.ValidationError("Invalid filter configuration", details...)
	}
	return nil
}

// # Equality

// Equal reports deep equality of two filter states.
//
// Slice-valued fields are compared as sets (sorted, deduplicated); nested
// structures are compared structurally. This function is load-bearing for
// preset matching and default-detection, and must be the only equality used
// for either.
func Equal(a, b Config) bool {
	if a.ReleaseStatus != b.ReleaseStatus ||
		a.Platform != b.Platform ||
		a.Rating != b.Rating ||
		a.CrossPlatform != b.CrossPlatform ||
		a.HiddenGems != b.HiddenGems ||
		a.TagLogic != b.TagLogic ||
		a.SortBy != b.SortBy ||
		a.Currency != b.Currency {
		return false
	}

	if !stringSetsEqual(a.SelectedTags, b.SelectedTags) {
		return false
	}
	if !stringSetsEqual(a.SelectedChannels, b.SelectedChannels) {
		return false
	}

	if !sortSpecsEqual(a.SortSpec, b.SortSpec) {
		return false
	}
	if !timeFiltersEqual(a.TimeFilter, b.TimeFilter) {
		return false
	}

	return a.PriceFilter == b.PriceFilter
}

// IsDefault reports whether the config carries no non-default filters.
func IsDefault(c Config) bool {
	return Equal(c, Default())
}

func stringSetsEqual(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}

	sortedA := slices.Clone(a)
	sortedB := slices.Clone(b)
	slices.Sort(sortedA)
	slices.Sort(sortedB)
	sortedA = slices.Compact(sortedA)
	sortedB = slices.Compact(sortedB)

	return slices.Equal(sortedA, sortedB)
}

func sortSpecsEqual(a, b *SortSpec) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if a == nil {
		return true
	}
	if a.Primary != b.Primary {
		return false
	}
	if (a.Secondary == nil) != (b.Secondary == nil) {
		return false
	}
	return a.Secondary == nil || *a.Secondary == *b.Secondary
}

func timeFiltersEqual(a, b *TimeFilter) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if a == nil {
		return true
	}
	return a.Type == b.Type &&
		a.Preset == b.Preset &&
		a.SmartLogic == b.SmartLogic &&
		timesEqual(a.StartDate, b.StartDate) &&
		timesEqual(a.EndDate, b.EndDate)
}

func timesEqual(a, b *time.Time) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || a.Equal(*b)
}
