// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Snapshot: Polling and debounce windows for dataset reloads.
  - Storage: Redis key taxonomy and the preset document schema version.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "gamelens-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # Snapshot Reloading

const (
	// SnapshotReloadDebounce coalesces rapid file events (the scraper writes
	// the artifact in several chunks) into a single reload.
	SnapshotReloadDebounce = 2 * time.Second

	// SnapshotMinPollInterval is the floor for the configured polling interval.
	SnapshotMinPollInterval = 10 * time.Second
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldItems   = "items"
	FieldTotal   = "total"
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Preset Storage

const (
	// PresetDocumentVersion is the schema version of the persisted preset
	// document. A stored document with a different version is discarded on
	// load rather than migrated.
	PresetDocumentVersion = 2

	// PresetExportVersion is the schema version of export/import payloads.
	PresetExportVersion = 1
)

// # Redis Keys (Cache Taxonomy)

const (
	RedisKeyPresetDocument = "presets:document"
	RedisPrefixListCache   = "games:list:"
)

// # Cache Timing

const (
	// ListCacheDefaultTTL bounds how long a cached list ordering may be
	// served. Entries are keyed by snapshot generation, so a dataset swap
	// makes stale keys unreachable immediately; the TTL only reclaims memory.
	ListCacheDefaultTTL = 60 * time.Second
)
