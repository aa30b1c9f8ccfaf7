package feed

// PlaceholderItems is the last fallback tier: shown when there has never been
// a successful fetch and no cache snapshot exists.
func PlaceholderItems() []Item {
	return []Item{
		{
			ID:       "placeholder-welcome",
			Title:    "Welcome to kardex",
			Summary:  "The knowledge base could not be reached yet. Entries will appear after the first successful refresh.",
			Category: DefaultCategory,
			Tags:     []string{"kardex"},
		},
		{
			ID:       "placeholder-refresh",
			Title:    "Refreshing",
			Summary:  "Press r to retry now. The feed is also refreshed automatically in the background.",
			Category: DefaultCategory,
			Tags:     []string{"help"},
		},
	}
}
