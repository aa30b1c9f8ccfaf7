package feed

import "time"

// DefaultFeedURL is the published knowledge-base document the CLI reads
// when no feed URL is configured.
const DefaultFeedURL = "https://gravitrone.github.io/kardex/data/items.json"

// Item is one normalized knowledge-base entry. The loader guarantees ID and
// Title are non-empty; every other field is optional.
type Item struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Category string   `json:"category"`
	Date     string   `json:"date,omitempty"`
	Link     string   `json:"link,omitempty"`
}

// Result is what a load cycle resolves to. Failures never escape the loader:
// Message carries a short human-readable note when the items came from a
// fallback tier instead of a live fetch.
type Result struct {
	Items       []Item
	LastUpdated time.Time
	Message     string
}
