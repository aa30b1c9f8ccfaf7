package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
 █████   ████   █████████   ███████████   ██████████   ██████████ █████ █████
░░███   ███░   ███░░░░░███ ░░███░░░░░███ ░░███░░░░███ ░░███░░░░░█░░███ ░░███
 ░███  ███    ░███    ░███  ░███    ░███  ░███   ░░███ ░███  █ ░  ░░███ ███
 ░███████     ░███████████  ░██████████   ░███    ░███ ░██████     ░░█████
 ░███░░███    ░███░░░░░███  ░███░░░░░███  ░███    ░███ ░███░░█      ███░███
 ░███ ░░███   ░███    ░███  ░███    ░███  ░███    ███  ░███ ░   █  ███ ░░███
 █████ ░░████ █████   █████ █████   █████ ██████████   ██████████ █████ █████
░░░░░   ░░░░ ░░░░░   ░░░░░ ░░░░░   ░░░░░ ░░░░░░░░░░   ░░░░░░░░░░ ░░░░░ ░░░░░`

// RenderBanner returns the styled ASCII banner with its subtitle.
func RenderBanner(theme Theme) string {
	lines := strings.Split(bannerArt, "\n")
	rendered := ""

	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	for _, line := range lines {
		if line == "" {
			continue
		}
		rendered += theme.Title.Render(line) + "\n"
	}

	subtitleText := "Knowledge Base Cards • Terminal Viewer"
	subtitle := theme.Muted.
		Width(maxWidth).
		Align(lipgloss.Center).
		Render(subtitleText)

	return "\n" + rendered + "\n" + subtitle + "\n"
}
