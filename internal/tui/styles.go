package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/growthlab/growthnav/internal/skin"
)

// styles are derived from the active palette on every render, so a theme
// toggle restyles the whole screen at once.
type styles struct {
	pal skin.Palette

	base        lipgloss.Style
	title       lipgloss.Style
	item        lipgloss.Style
	itemActive  lipgloss.Style
	itemCursor  lipgloss.Style
	linkHovered lipgloss.Style
	tooltip     lipgloss.Style
	muted       lipgloss.Style
	statusLine  lipgloss.Style
	errorText   lipgloss.Style
}

func newStyles(pal skin.Palette) styles {
	bg := lipgloss.Color(pal.Background)
	text := lipgloss.Color(pal.Text)
	accent := lipgloss.Color(pal.Accent)

	base := lipgloss.NewStyle().Background(bg).Foreground(text)
	return styles{
		pal:         pal,
		base:        base,
		title:       base.Bold(true),
		item:        base,
		itemActive:  lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color(pal.AccentText)).Bold(true),
		itemCursor:  lipgloss.NewStyle().Background(lipgloss.Color(pal.Surface)).Foreground(text),
		linkHovered: lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color(pal.AccentText)).Bold(true),
		tooltip:     lipgloss.NewStyle().Background(lipgloss.Color(pal.Tooltip)).Foreground(lipgloss.Color("#ffffff")),
		muted:       base.Foreground(lipgloss.Color(pal.Muted)),
		statusLine:  lipgloss.NewStyle().Background(lipgloss.Color(pal.Surface)).Foreground(text),
		errorText:   lipgloss.NewStyle().Background(lipgloss.Color(pal.Surface)).Foreground(lipgloss.Color("#dc2626")),
	}
}

func (s styles) border() lipgloss.Color { return lipgloss.Color(s.pal.Border) }
