// Package view derives the visible subset from the canonical collection and
// the current filter values. Everything here is pure: same inputs, same
// output, no I/O.
package view

import (
	"sort"
	"strings"

	"github.com/gravitrone/kardex/internal/feed"
)

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "All"

// Filter is the user-chosen view state. Zero value means everything visible.
type Filter struct {
	Query    string
	Category string
	Tag      string
}

// Categories returns the selector options: the sentinel plus every distinct
// normalized category, case-sensitive, sorted lexicographically.
func Categories(items []feed.Item) []string {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.Category != "" {
			seen[item.Category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(seen)+1)
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return append([]string{CategoryAll}, categories...)
}

// Tags returns every distinct non-empty trimmed tag, sorted lexicographically.
func Tags(items []feed.Item) []string {
	seen := make(map[string]struct{})
	for _, item := range items {
		for _, tag := range item.Tags {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				seen[tag] = struct{}{}
			}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// ToggleTag implements tag chip semantics: selecting the active tag clears
// the filter, selecting a different tag replaces it.
func ToggleTag(active, selected string) string {
	if active == selected {
		return ""
	}
	return selected
}

// Visible filters and sorts the collection. Items are matched against the
// category selection, the active tag, and a case-insensitive substring query
// over title, summary, category, and tags; then sorted by date string
// descending. Missing dates compare as the empty string and sink to the
// bottom; ties keep original order.
func Visible(items []feed.Item, f Filter) []feed.Item {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	visible := make([]feed.Item, 0, len(items))
	for _, item := range items {
		if f.Category != "" && f.Category != CategoryAll && item.Category != f.Category {
			continue
		}
		if f.Tag != "" && !hasTag(item, f.Tag) {
			continue
		}
		if query != "" && !matchesQuery(item, query) {
			continue
		}
		visible = append(visible, item)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Date > visible[j].Date
	})
	return visible
}

func hasTag(item feed.Item, tag string) bool {
	for _, t := range item.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func matchesQuery(item feed.Item, query string) bool {
	if strings.Contains(strings.ToLower(item.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Summary), query) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Category), query) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
