package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/kardex/internal/feed"
	"github.com/gravitrone/kardex/internal/ui/components"
)

func TestFormatCardDate(t *testing.T) {
	assert.Equal(t, "Jun 01, 2025", formatCardDate("2025-06-01"))
	assert.Equal(t, "Jun 01, 2025", formatCardDate("2025-06-01T09:30:00Z"))
	assert.Equal(t, "Jun 01, 2025", formatCardDate("2025-06-01T09:30:00"))
	assert.Equal(t, "", formatCardDate(""))
	assert.Equal(t, "", formatCardDate("yesterday"))
}

func TestLinkHost(t *testing.T) {
	assert.Equal(t, "example.com", linkHost("https://example.com/some/post"))
	assert.Equal(t, "not a url", linkHost("not a url"))
}

func TestRenderCardShowsFields(t *testing.T) {
	item := feed.Item{
		Title:    "Go Schedulers",
		Summary:  "How goroutines are scheduled",
		Category: "Go",
		Tags:     []string{"runtime", "internals"},
		Date:     "2025-03-01",
		Link:     "https://example.com/post",
	}

	card := renderCard(item, LightTheme(), false, "", 80)
	assert.Contains(t, card, "Go Schedulers")
	assert.Contains(t, card, "How goroutines are scheduled")
	assert.Contains(t, card, "Mar 01, 2025")
	assert.Contains(t, card, "example.com")
	assert.Contains(t, card, "[runtime]")
}

func TestRenderCardStackPositionLine(t *testing.T) {
	items := []feed.Item{
		{ID: "1", Title: "One"},
		{ID: "2", Title: "Two"},
		{ID: "3", Title: "Three"},
	}
	list := components.NewList(2)
	list.SetCount(len(items))

	stack := renderCardStack(items, list, LightTheme(), "", 80)
	assert.Contains(t, stack, "One")
	assert.Contains(t, stack, "Two")
	assert.NotContains(t, stack, "Three")
	assert.Contains(t, stack, "1 of 3")
}
