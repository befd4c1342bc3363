package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/growthlab/growthnav/internal/icons"
	"github.com/growthlab/growthnav/internal/model"
	"github.com/growthlab/growthnav/internal/skin"
)

// Page is the content shown for one section.
type Page interface {
	ID() model.SectionID
	View(width, height int, pal skin.Palette) string
}

// SectionPage is the default page for a section: a centered heading.
type SectionPage struct {
	section model.SectionDescriptor
	icons   icons.Resolver
}

func NewSectionPage(section model.SectionDescriptor, resolver icons.Resolver) *SectionPage {
	if resolver == nil {
		resolver = icons.Glyphs()
	}
	return &SectionPage{section: section, icons: resolver}
}

func (p *SectionPage) ID() model.SectionID { return p.section.ID }

func (p *SectionPage) View(width, height int, pal skin.Palette) string {
	bg := lipgloss.Color(pal.Background)

	heading := lipgloss.NewStyle().
		Bold(true).
		Background(bg).
		Foreground(lipgloss.Color(pal.Text)).
		Render(p.icons.Resolve(p.section.Icon) + "  " + p.section.Label)

	subtitle := lipgloss.NewStyle().
		Background(bg).
		Foreground(lipgloss.Color(pal.Muted)).
		Render(string(p.section.ID))

	block := lipgloss.JoinVertical(lipgloss.Center, heading, subtitle)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block,
		lipgloss.WithWhitespaceBackground(bg))
}
