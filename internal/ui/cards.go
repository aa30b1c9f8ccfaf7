package ui

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/kardex/internal/feed"
	"github.com/gravitrone/kardex/internal/ui/components"
)

// dateLayouts are tried in order when formatting a card date. An item whose
// date matches none of them simply shows no date.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func formatCardDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 02, 2006")
		}
	}
	return ""
}

func linkHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}

// renderCard draws one knowledge-base entry. The active card gets the
// highlighted border; the active tag chip is inverted.
func renderCard(item feed.Item, theme Theme, active bool, activeTag string, width int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	var lines []string

	title := components.ClampTextWidth(item.Title, inner)
	if active {
		lines = append(lines, theme.Selected.Render(title))
	} else {
		lines = append(lines, theme.Title.Render(title))
	}

	if summary := strings.TrimSpace(item.Summary); summary != "" {
		lines = append(lines, theme.Normal.Render(components.ClampTextWidth(summary, inner)))
	}

	meta := []string{theme.Badge.Render(components.SanitizeOneLine(item.Category))}
	if date := formatCardDate(item.Date); date != "" {
		meta = append(meta, theme.Muted.Render(date))
	}
	if item.Link != "" {
		meta = append(meta, theme.Accent.Render("↗ "+components.ClampTextWidth(linkHost(item.Link), 40)))
	}
	lines = append(lines, strings.Join(meta, "  "))

	if len(item.Tags) > 0 {
		chips := make([]string, 0, len(item.Tags))
		for _, tag := range item.Tags {
			label := "[" + components.SanitizeOneLine(tag) + "]"
			if tag == activeTag {
				chips = append(chips, theme.ChipActive.Render(label))
			} else {
				chips = append(chips, theme.Chip.Render(label))
			}
		}
		lines = append(lines, strings.Join(chips, " "))
	}

	body := strings.Join(lines, "\n")
	if active {
		return theme.CardActive.Width(width).Render(body)
	}
	return theme.Card.Width(width).Render(body)
}

// renderCardStack draws the visible window of cards with a position line.
func renderCardStack(items []feed.Item, list *components.List, theme Theme, activeTag string, width int) string {
	if len(items) == 0 {
		return ""
	}
	cardWidth := width - 4
	if cardWidth > 84 {
		cardWidth = 84
	}
	if cardWidth < 30 {
		cardWidth = 30
	}

	start, end := list.Window()
	cards := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		cards = append(cards, renderCard(items[i], theme, i == list.Selected(), activeTag, cardWidth))
	}

	if len(items) > end-start {
		position := theme.Muted.Render(fmt.Sprintf("%d of %d", list.Selected()+1, len(items)))
		cards = append(cards, position)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
