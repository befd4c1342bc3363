package httpserver

import (
	"github.com/growthlab/growthnav/internal/model"
	"github.com/growthlab/growthnav/internal/skin"
)

type entryView struct {
	ID     model.SectionID
	Label  string
	Glyph  string
	Active bool
}

type pageData struct {
	Title       string
	Dark        bool
	Collapsed   bool
	LinkHovered bool
	NotFound    bool

	Active      model.SectionID
	ActiveLabel string
	Entries     []entryView

	Link         model.ExternalLink
	LinkGlyph    string
	ChevronGlyph string
	ThemeGlyph   string
	ThemeLabel   string

	Light     skin.Palette
	DarkStyle skin.Palette
}

// pageData snapshots the panel for one render. An empty active id renders
// the panel with nothing highlighted.
func (s *Server) pageData(active model.SectionID) pageData {
	state, dark := s.panel.Snapshot()

	data := pageData{
		Title:       s.title,
		Dark:        dark,
		Collapsed:   state.Collapsed,
		LinkHovered: state.LinkHovered,
		NotFound:    active == "",
		Active:      active,
		Link:        s.panel.ExternalLink(),
		LinkGlyph:   s.icons.Resolve(model.IconHome),
		Light:       s.skin.Light,
		DarkStyle:   s.skin.Dark,
	}

	for _, e := range s.panel.Entries(active) {
		data.Entries = append(data.Entries, entryView{
			ID:     e.Section.ID,
			Label:  e.Section.Label,
			Glyph:  s.icons.Resolve(e.Section.Icon),
			Active: e.Active,
		})
		if e.Active {
			data.ActiveLabel = e.Section.Label
		}
	}

	if state.Collapsed {
		data.ChevronGlyph = s.icons.Resolve(model.IconChevronRight)
	} else {
		data.ChevronGlyph = s.icons.Resolve(model.IconChevronLeft)
	}
	if dark {
		data.ThemeGlyph = s.icons.Resolve(model.IconSun)
		data.ThemeLabel = "Light mode"
	} else {
		data.ThemeGlyph = s.icons.Resolve(model.IconMoon)
		data.ThemeLabel = "Dark mode"
	}
	return data
}
