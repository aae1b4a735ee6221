// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gamelens/gamelens/internal/core/game"
	"github.com/gamelens/gamelens/internal/platform/apperr"
	"github.com/gamelens/gamelens/pkg/convert"
	"github.com/gamelens/gamelens/pkg/query"
)

// # Shareable URL Codec
//
// A filter state serializes to a query string that omits every
// default-valued field, keeping shared URLs short. Parsing reconstructs the
// full default config first and then overlays each present parameter —
// absence of a parameter means "use default", never "use null".
//
// Parsing is deliberately forgiving: shared URLs are user-supplied input, so
// an unrecognised value falls back to that one field's default instead of
// failing the whole URL. Trusted paths (stored presets, request bodies) go
// through Validate instead, where a violation is corruption and must surface.

// Query parameter names. These are wire contract with the front end; do not
// rename without a coordinated release.
const (
	paramRelease       = "release"
	paramPlatform      = "platform"
	paramRating        = "rating"
	paramTags          = "tags"
	paramTagLogic      = "tagLogic"
	paramChannels      = "channels"
	paramSort          = "sort"
	paramSortSpec      = "sortSpec"
	paramCurrency      = "currency"
	paramTimeType      = "timeType"
	paramTimePreset    = "timePreset"
	paramTimeStart     = "timeStart"
	paramTimeEnd       = "timeEnd"
	paramTimeLogic     = "timeLogic"
	paramPriceMin      = "priceMin"
	paramPriceMax      = "priceMax"
	paramIncludeFree   = "includeFree"
	paramCrossPlatform = "crossPlatform"
	paramHiddenGems    = "hiddenGems"
)

const shareDateLayout = "2006-01-02"

// Values encodes the config as URL query values, omitting defaults.
func Values(c Config) url.Values {
	defaults := Default()
	values := url.Values{}

	if c.ReleaseStatus != defaults.ReleaseStatus {
		values.Set(paramRelease, string(c.ReleaseStatus))
	}
	if c.Platform != defaults.Platform {
		values.Set(paramPlatform, c.Platform)
	}
	if c.Rating != defaults.Rating {
		values.Set(paramRating, c.Rating)
	}
	if c.CrossPlatform {
		values.Set(paramCrossPlatform, "1")
	}
	if c.HiddenGems {
		values.Set(paramHiddenGems, "1")
	}
	if len(c.SelectedTags) > 0 {
		values.Set(paramTags, query.JoinSlice(c.SelectedTags))
	}
	if c.TagLogic != defaults.TagLogic {
		values.Set(paramTagLogic, string(c.TagLogic))
	}
	if len(c.SelectedChannels) > 0 {
		values.Set(paramChannels, query.JoinSlice(c.SelectedChannels))
	}
	if c.SortBy != defaults.SortBy {
		values.Set(paramSort, c.SortBy)
	}
	if c.SortSpec != nil {
		values.Set(paramSortSpec, EncodeSortSpec(c.SortSpec))
	}
	if c.Currency != defaults.Currency {
		values.Set(paramCurrency, string(c.Currency))
	}

	if tf := c.TimeFilter; tf != nil {
		values.Set(paramTimeType, string(tf.Type))
		if tf.Preset != "" {
			values.Set(paramTimePreset, tf.Preset)
		}
		if tf.StartDate != nil {
			values.Set(paramTimeStart, tf.StartDate.Format(shareDateLayout))
		}
		if tf.EndDate != nil {
			values.Set(paramTimeEnd, tf.EndDate.Format(shareDateLayout))
		}
		if tf.SmartLogic != "" {
			values.Set(paramTimeLogic, string(tf.SmartLogic))
		}
	}

	if c.PriceFilter.MinPrice > 0 {
		values.Set(paramPriceMin, trimFloat(c.PriceFilter.MinPrice))
	}
	if c.PriceFilter.MaxPrice > 0 {
		values.Set(paramPriceMax, trimFloat(c.PriceFilter.MaxPrice))
	}
	if !c.PriceFilter.IncludeFree {
		values.Set(paramIncludeFree, "0")
	}

	return values
}

// ShareURL renders the canonical shareable URL for a filter state.
// A fully-default config yields the bare base URL.
func ShareURL(c Config, baseURL string) string {
	encoded := Values(c).Encode()
	if encoded == "" {
		return baseURL
	}
	return baseURL + "?" + encoded
}

// FromValues overlays present query parameters onto the default config.
//
// Unrecognised values fall back to the affected field's default; the
// SortBy/SortSpec invariant is re-established afterwards so a corrupted
// sortSpec parameter can never produce an inconsistent config.
func FromValues(values url.Values) Config {
	c := Default()

	if raw := values.Get(paramRelease); raw != "" {
		if status := ReleaseStatus(raw); status.IsValid() {
			c.ReleaseStatus = status
		}
	}
	if raw := values.Get(paramPlatform); raw != "" {
		if raw == PlatformAll || game.Platform(raw).IsValid() {
			c.Platform = raw
		}
	}
	if raw := values.Get(paramRating); raw != "" {
		if _, ok := validRatingThresholds[raw]; ok {
			c.Rating = raw
		}
	}
	c.CrossPlatform = parseFlag(values.Get(paramCrossPlatform), c.CrossPlatform)
	c.HiddenGems = parseFlag(values.Get(paramHiddenGems), c.HiddenGems)

	c.SelectedTags = query.StringSlice(values.Get(paramTags))
	if raw := TagLogic(values.Get(paramTagLogic)); raw == TagLogicAnd || raw == TagLogicOr {
		c.TagLogic = raw
	}
	c.SelectedChannels = query.StringSlice(values.Get(paramChannels))

	if raw := values.Get(paramSort); raw != "" {
		for _, key := range ValidSortKeys() {
			if raw == key {
				c.SortBy = raw
				break
			}
		}
	}
	if raw := values.Get(paramSortSpec); raw != "" {
		if spec, err := ParseSortSpec(raw); err == nil {
			c.SortSpec = spec
		}
	}

	// Re-establish the invariant: advanced iff a spec survived parsing.
	if c.SortSpec != nil {
		c.SortBy = SortAdvanced
	} else if c.SortBy == SortAdvanced {
		c.SortBy = Default().SortBy
	}

	if raw := game.Currency(values.Get(paramCurrency)); raw.IsValid() {
		c.Currency = raw
	}

	c.TimeFilter = timeFilterFromValues(values)

	if v := convert.ToFloat64D(values.Get(paramPriceMin), c.PriceFilter.MinPrice); v >= 0 {
		c.PriceFilter.MinPrice = v
	}
	if v := convert.ToFloat64D(values.Get(paramPriceMax), c.PriceFilter.MaxPrice); v >= 0 {
		c.PriceFilter.MaxPrice = v
	}
	if c.PriceFilter.MaxPrice > 0 && c.PriceFilter.MaxPrice < c.PriceFilter.MinPrice {
		c.PriceFilter.MinPrice, c.PriceFilter.MaxPrice = Default().PriceFilter.MinPrice, Default().PriceFilter.MaxPrice
	}
	c.PriceFilter.IncludeFree = parseFlag(values.Get(paramIncludeFree), c.PriceFilter.IncludeFree)

	return c
}

// ParseURL extracts the filter state from a full shareable URL.
func ParseURL(rawURL string) (Config, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return Config{}, apperr.ValidationError("Malformed share URL")
	}
	return FromValues(parsed.Query()), nil
}

func timeFilterFromValues(values url.Values) *TimeFilter {
	rawType := TimeType(values.Get(paramTimeType))

	switch rawType {
	case TimeTypeVideo, TimeTypeRelease:
		tf := &TimeFilter{Type: rawType}
		if preset := values.Get(paramTimePreset); preset != "" {
			if _, ok := timePresetDays[preset]; ok {
				tf.Preset = preset
				return tf
			}
			// Unknown preset and no explicit range: drop the filter
			// rather than keep a window that matches nothing.
		}
		tf.StartDate = parseShareDate(values.Get(paramTimeStart))
		tf.EndDate = parseShareDate(values.Get(paramTimeEnd))
		if tf.Preset == "" && tf.StartDate == nil && tf.EndDate == nil {
			return nil
		}
		return tf

	case TimeTypeSmart:
		logic := SmartLogic(values.Get(paramTimeLogic))
		if !logic.IsValid() {
			return nil
		}
		return &TimeFilter{Type: TimeTypeSmart, SmartLogic: logic}

	default:
		return nil
	}
}

func parseShareDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(shareDateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}

func parseFlag(raw string, def bool) bool {
	return convert.ToBoolD(raw, def)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// # Sort Spec Encoding
//
// A SortSpec travels inside a single query parameter, so it uses a compact
// "field:direction" form with "|" separating primary from secondary —
// "rating:desc|price:asc" — instead of embedding JSON in the URL.

// EncodeSortSpec renders the compact single-parameter form of a spec.
func EncodeSortSpec(spec *SortSpec) string {
	if spec == nil {
		return ""
	}

	encoded := encodeCriteria(spec.Primary)
	if spec.Secondary != nil {
		encoded += "|" + encodeCriteria(*spec.Secondary)
	}
	return encoded
}

func encodeCriteria(c SortCriteria) string {
	return string(c.Field) + ":" + string(c.Direction)
}

// ParseSortSpec decodes the compact form. Unlike the per-field URL fallback,
// a present-but-malformed spec is a hard error so the caller can decide the
// boundary policy (the URL codec drops it; trusted paths surface it).
func ParseSortSpec(raw string) (*SortSpec, error) {
	parts := strings.Split(raw, "|")
	if len(parts) > 2 {
		return nil, apperr.ValidationError("Sort spec has more than two criteria")
	}

	primary, err := parseCriteria(parts[0])
	if err != nil {
		return nil, err
	}

	spec := &SortSpec{Primary: primary}
	if len(parts) == 2 {
		secondary, err := parseCriteria(parts[1])
		if err != nil {
			return nil, err
		}
		spec.Secondary = &secondary
	}
	return spec, nil
}

func parseCriteria(raw string) (SortCriteria, error) {
	field, direction, found := strings.Cut(raw, ":")
	if !found {
		return SortCriteria{}, apperr.ValidationError(fmt.Sprintf("Malformed sort criterion %q", raw))
	}

	criteria := SortCriteria{Field: SortField(field), Direction: SortDirection(direction)}
	if !criteria.Field.IsValid() {
		return SortCriteria{}, apperr.ValidationError(fmt.Sprintf("Unknown sort field %q", field))
	}
	if !criteria.Direction.IsValid() {
		return SortCriteria{}, apperr.ValidationError(fmt.Sprintf("Unknown sort direction %q", direction))
	}
	return criteria, nil
}
