package schema

// GamesTable represents the 'games' table of the scraper snapshot
type GamesTable struct {
	Table                string
	ID                   string
	Platform             string
	Name                 string
	PriceEUR             string
	PriceUSD             string
	OriginalPriceEUR     string
	OriginalPriceUSD     string
	DiscountPercent      string
	IsFree               string
	IsOnSale             string
	PositiveReviewPct    string
	ReviewCount          string
	ReviewSummary        string
	InsufficientReviews  string
	ReleaseDate          string
	PlannedReleaseDate   string
	ComingSoon           string
	IsEarlyAccess        string
	IsDemo               string
	VideoCount           string
	LatestVideoID        string
	LatestVideoTitle     string
	LatestVideoDate      string
	FirstVideoDate       string
	UniqueChannels       string
	Tags                 string
	StoreURLs            string
	IsAbsorbed           string
	AbsorbedInto         string
}

// Games is the schema definition for the snapshot games table
var Games = GamesTable{
	Table:               "games",
	ID:                  "id",
	Platform:            "platform",
	Name:                "name",
	PriceEUR:            "price_eur",
	PriceUSD:            "price_usd",
	OriginalPriceEUR:    "original_price_eur",
	OriginalPriceUSD:    "original_price_usd",
	DiscountPercent:     "discount_percent",
	IsFree:              "is_free",
	IsOnSale:            "is_on_sale",
	PositiveReviewPct:   "positive_review_percentage",
	ReviewCount:         "review_count",
	ReviewSummary:       "review_summary",
	InsufficientReviews: "insufficient_reviews",
	ReleaseDate:         "release_date",
	PlannedReleaseDate:  "planned_release_date",
	ComingSoon:          "coming_soon",
	IsEarlyAccess:       "is_early_access",
	IsDemo:              "is_demo",
	VideoCount:          "video_count",
	LatestVideoID:       "latest_video_id",
	LatestVideoTitle:    "latest_video_title",
	LatestVideoDate:     "latest_video_date",
	FirstVideoDate:      "first_video_date",
	UniqueChannels:      "unique_channels",
	Tags:                "tags",
	StoreURLs:           "store_urls",
	IsAbsorbed:          "is_absorbed",
	AbsorbedInto:        "absorbed_into",
}

func (t GamesTable) Columns() []string {
	return []string{
		t.ID, t.Platform, t.Name,
		t.PriceEUR, t.PriceUSD, t.OriginalPriceEUR, t.OriginalPriceUSD,
		t.DiscountPercent, t.IsFree, t.IsOnSale,
		t.PositiveReviewPct, t.ReviewCount, t.ReviewSummary, t.InsufficientReviews,
		t.ReleaseDate, t.PlannedReleaseDate, t.ComingSoon, t.IsEarlyAccess, t.IsDemo,
		t.VideoCount, t.LatestVideoID, t.LatestVideoTitle, t.LatestVideoDate, t.FirstVideoDate,
		t.UniqueChannels, t.Tags, t.StoreURLs,
		t.IsAbsorbed, t.AbsorbedInto,
	}
}

// SnapshotMetaTable represents the 'snapshot_meta' key/value table
type SnapshotMetaTable struct {
	Table string
	Key   string
	Value string
}

// SnapshotMeta is the schema definition for snapshot_meta
var SnapshotMeta = SnapshotMetaTable{
	Table: "snapshot_meta",
	Key:   "key",
	Value: "value",
}

// Well-known snapshot_meta keys written by the scraper.
const (
	MetaKeyVersion     = "version"
	MetaKeyGeneratedAt = "generated_at"
)
