// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters,
// how the resulting metadata is delivered in the API response envelope, and —
// through [Pager] — how a result window is positioned over a list that can
// shrink or grow between requests.
package pagination

import (
	"net/http"

	"github.com/gamelens/gamelens/pkg/convert"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 50
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 200
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates the TotalPages based on the total count and limit.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage], [DefaultLimit], or [MaxLimit].
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	limit := parseIntParam(r, "limit", DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	return convert.ToIntD(r.URL.Query().Get(key), defaultVal)
}

// # Pager

// Pager positions a visible window over a list of known length.
//
// It supports two access patterns against the same list: direct page jumps
// (GoToPage) and append-style "load more" (LoadMore extends the window end
// without moving its start). A change in the underlying list length must be
// signalled via Reset, which returns to page 1 — silently clamping to an
// out-of-range page on a shrunk list would show the user a page that no
// longer corresponds to what they selected.
//
// Pager is not safe for concurrent use.
type Pager struct {
	pageSize int
	total    int

	// currentPage is 1-indexed; the window always starts at its first item.
	currentPage int

	// visiblePages is how many consecutive pages the window spans, grown by
	// LoadMore and collapsed back to 1 by any page jump or reset.
	visiblePages int
}

// NewPager creates a Pager over an empty list with the given page size.
// A non-positive pageSize falls back to [DefaultLimit].
func NewPager(pageSize int) *Pager {
	p := &Pager{currentPage: 1, visiblePages: 1}
	p.setSize(pageSize)
	return p
}

// Reset installs a new list length and returns to page 1.
//
// Call this whenever the upstream list changes (a filter modified the result
// set), regardless of whether the new list is shorter or longer.
func (p *Pager) Reset(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	p.currentPage = 1
	p.visiblePages = 1
}

// GoToPage jumps to page n, clamped to [1, TotalPages].
// It collapses any window previously grown by LoadMore.
func (p *Pager) GoToPage(n int) {
	if n < 1 {
		n = 1
	}
	if max := p.TotalPages(); max > 0 && n > max {
		n = max
	}
	p.currentPage = n
	p.visiblePages = 1
}

// LoadMore extends the visible window by one page if more items remain.
// It reports whether the window actually grew.
func (p *Pager) LoadMore() bool {
	_, end := p.Bounds()
	if end >= p.total {
		return false
	}
	p.visiblePages++
	return true
}

// SetPageSize changes the page size, re-clamping the current page so the
// window never starts past the end of the list.
func (p *Pager) SetPageSize(pageSize int) {
	p.setSize(pageSize)
	if max := p.TotalPages(); max > 0 && p.currentPage > max {
		p.currentPage = max
	}
	p.visiblePages = 1
}

// CurrentPage returns the 1-indexed page at the start of the window.
func (p *Pager) CurrentPage() int { return p.currentPage }

// PageSize returns the configured page size.
func (p *Pager) PageSize() int { return p.pageSize }

// Total returns the length of the underlying list.
func (p *Pager) Total() int { return p.total }

// TotalPages returns the number of pages in the list.
func (p *Pager) TotalPages() int {
	if p.total == 0 {
		return 0
	}
	return (p.total + p.pageSize - 1) / p.pageSize
}

// HasMore reports whether items remain beyond the current window.
func (p *Pager) HasMore() bool {
	_, end := p.Bounds()
	return end < p.total
}

// Bounds returns the half-open [start, end) index range of the visible window,
// clamped to the list length.
func (p *Pager) Bounds() (start, end int) {
	start = (p.currentPage - 1) * p.pageSize
	if start > p.total {
		start = p.total
	}
	end = start + p.visiblePages*p.pageSize
	if end > p.total {
		end = p.total
	}
	return start, end
}

// Meta returns the response metadata describing the current window position.
func (p *Pager) Meta() Meta {
	return NewMeta(p.currentPage, p.pageSize, p.total)
}

func (p *Pager) setSize(pageSize int) {
	if pageSize < 1 {
		pageSize = DefaultLimit
	}
	p.pageSize = pageSize
}
