package ui

import "github.com/charmbracelet/lipgloss"

// Theme is the style set the card view renders with. Two palettes exist; the
// active one follows the persisted dark-mode preference.
type Theme struct {
	Dark bool

	Title      lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Accent     lipgloss.Style
	Success    lipgloss.Style
	Badge      lipgloss.Style
	Chip       lipgloss.Style
	ChipActive lipgloss.Style

	Card       lipgloss.Style
	CardActive lipgloss.Style
}

// LightTheme is the default palette.
func LightTheme() Theme {
	return buildTheme(false,
		lipgloss.Color("#2a2d34"), // text
		lipgloss.Color("#6c7280"), // muted
		lipgloss.Color("#3e5f8a"), // primary
		lipgloss.Color("#8a5a2f"), // accent
		lipgloss.Color("#2f7350"), // success
		lipgloss.Color("#c4c9d4"), // border
	)
}

// DarkTheme mirrors the light palette on a dark background.
func DarkTheme() Theme {
	return buildTheme(true,
		lipgloss.Color("#d7d9da"),
		lipgloss.Color("#9ba0bf"),
		lipgloss.Color("#7f9fd4"),
		lipgloss.Color("#c79a63"),
		lipgloss.Color("#5fae89"),
		lipgloss.Color("#3a4454"),
	)
}

// ThemeFor picks the palette for the stored preference.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

func buildTheme(dark bool, text, muted, primary, accent, success, border lipgloss.Color) Theme {
	return Theme{
		Dark: dark,

		Title:    lipgloss.NewStyle().Foreground(primary).Bold(true),
		Normal:   lipgloss.NewStyle().Foreground(text),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Selected: lipgloss.NewStyle().Foreground(primary).Bold(true),
		Accent:   lipgloss.NewStyle().Foreground(accent),
		Success:  lipgloss.NewStyle().Foreground(success),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#888ba4")).
			Bold(true).
			Padding(0, 1),

		Chip: lipgloss.NewStyle().Foreground(muted),
		ChipActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(accent).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		CardActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),
	}
}
