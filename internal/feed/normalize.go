package feed

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// categoryLabels maps raw category slugs seen in published documents to
// display labels. Unknown values fall through to title-casing.
var categoryLabels = map[string]string{
	"ai":       "AI",
	"llm":      "LLM",
	"devops":   "DevOps",
	"golang":   "Go",
	"go":       "Go",
	"infra":    "Infrastructure",
	"misc":     "General",
	"general":  "General",
	"security": "Security",
	"tooling":  "Tooling",
}

// DefaultCategory is assigned when a record carries no category field.
const DefaultCategory = "General"

// DefaultTitle is assigned when a record carries no usable title.
const DefaultTitle = "Untitled"

// ExtractRecords pulls the raw record list out of a decoded JSON document.
// Accepted shapes, in precedence order: a top-level array, an object with an
// "items" array, an object with a "bookmarks" array. Anything else yields an
// empty list, not an error.
func ExtractRecords(doc any) []map[string]any {
	switch typed := doc.(type) {
	case []any:
		return recordList(typed)
	case map[string]any:
		for _, field := range []string{"items", "bookmarks"} {
			if list, ok := typed[field].([]any); ok {
				return recordList(list)
			}
		}
	}
	return nil
}

func recordList(raw []any) []map[string]any {
	records := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if record, ok := entry.(map[string]any); ok {
			records = append(records, record)
		}
	}
	return records
}

// Normalize converts one raw record into a canonical Item. It is idempotent:
// normalizing the map form of an already-normalized item returns an equal
// item.
func Normalize(record map[string]any) Item {
	item := Item{
		ID:       stringID(record["id"]),
		Title:    strings.TrimSpace(stringValue(record["title"])),
		Summary:  strings.TrimSpace(firstString(record, "summary", "description")),
		Tags:     normalizeTags(record["tags"]),
		Category: NormalizeCategory(firstString(record, "category", "project", "collection")),
		Date:     strings.TrimSpace(firstString(record, "date", "created")),
		Link:     normalizeLink(record),
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Title == "" {
		item.Title = DefaultTitle
	}
	return item
}

// NormalizeCategory resolves a raw category value to its display label. Known
// slugs go through the label table; unknown non-empty values are title-cased;
// empty values become the default category.
func NormalizeCategory(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultCategory
	}
	if label, ok := categoryLabels[strings.ToLower(raw)]; ok {
		return label
	}
	return titleCase(raw)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		first := strings.ToUpper(string(runes[0]))
		words[i] = first + string(runes[1:])
	}
	return strings.Join(words, " ")
}

func stringID(raw any) string {
	switch typed := raw.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		// JSON numbers decode as float64; ids are whole numbers in practice.
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	}
	return ""
}

func stringValue(raw any) string {
	s, _ := raw.(string)
	return s
}

func firstString(record map[string]any, fields ...string) string {
	for _, field := range fields {
		if s, ok := record[field].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func normalizeTags(raw any) []string {
	var entries []any
	switch typed := raw.(type) {
	case []any:
		entries = typed
	case []string:
		for _, s := range typed {
			entries = append(entries, s)
		}
	default:
		return nil
	}

	seen := make(map[string]struct{}, len(entries))
	tags := make([]string, 0, len(entries))
	for _, entry := range entries {
		s, ok := entry.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		tags = append(tags, s)
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// normalizeLink resolves the outbound link: the first string entry of a
// "links" list wins, then the single "link" field, then "url".
func normalizeLink(record map[string]any) string {
	if list, ok := record["links"].([]any); ok {
		for _, entry := range list {
			if s, ok := entry.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	if s := strings.TrimSpace(stringValue(record["link"])); s != "" {
		return s
	}
	return strings.TrimSpace(stringValue(record["url"]))
}
