package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/growthlab/growthnav/internal/icons"
	"github.com/growthlab/growthnav/internal/model"
	"github.com/growthlab/growthnav/internal/nav"
)

const (
	sidebarWidthExpanded  = 30
	sidebarWidthCollapsed = 7
)

type sidebarRowKind int

const (
	sidebarRowText sidebarRowKind = iota
	sidebarRowCollapse
	sidebarRowSection
	sidebarRowExternal
	sidebarRowTheme
)

type sidebarRow struct {
	kind    sidebarRowKind
	section int // registry position for sidebarRowSection
	text    string
}

// SidebarDeps provides the sidebar's collaborators. Registry is required.
type SidebarDeps struct {
	Registry     *nav.Registry
	Theme        *nav.ThemeContext
	Navigator    model.Navigator
	Reporter     model.Reporter
	ExternalLink model.ExternalLink
	Icons        icons.Resolver
	Title        string
	Keys         *KeyMap
}

// Sidebar is the terminal rendering of the navigation panel. It translates
// keys and mouse events into panel operations and turns the panel's
// navigation intents into NavigateMsg commands.
type Sidebar struct {
	panel *nav.Panel
	icons icons.Resolver
	keys  KeyMap
	title string

	// cursor walks the sections, then the external link, then the theme row.
	cursor     int
	pending    []model.SectionID
	lastHeight int
}

func NewSidebar(deps SidebarDeps) (*Sidebar, error) {
	s := &Sidebar{
		icons: deps.Icons,
		title: deps.Title,
	}
	if s.icons == nil {
		s.icons = icons.Glyphs()
	}
	if deps.Keys != nil {
		s.keys = *deps.Keys
	} else {
		s.keys = DefaultKeyMap()
	}

	panel, err := nav.NewPanel(nav.Deps{
		Registry:     deps.Registry,
		Theme:        deps.Theme,
		Navigator:    deps.Navigator,
		Reporter:     deps.Reporter,
		ExternalLink: deps.ExternalLink,
		OnNavigate: func(id model.SectionID) {
			s.pending = append(s.pending, id)
		},
	})
	if err != nil {
		return nil, err
	}
	s.panel = panel
	return s, nil
}

// Panel exposes the underlying navigation panel.
func (s *Sidebar) Panel() *nav.Panel { return s.panel }

// Width is the rendered width including the border.
func (s *Sidebar) Width() int {
	if s.panel.State().Collapsed {
		return sidebarWidthCollapsed
	}
	return sidebarWidthExpanded
}

// Tooltip returns the external link's tooltip while it should be shown:
// the sidebar is collapsed (labels hidden) and the link is hovered.
func (s *Sidebar) Tooltip() string {
	st := s.panel.State()
	if st.Collapsed && st.LinkHovered {
		return s.panel.ExternalLink().Tooltip
	}
	return ""
}

func (s *Sidebar) externalIdx() int { return s.panel.Registry().Len() }
func (s *Sidebar) themeIdx() int { return s.panel.Registry().Len() + 1 }

func (s *Sidebar) cursorRow() sidebarRow {
	switch {
	case s.cursor < s.externalIdx():
		return sidebarRow{kind: sidebarRowSection, section: s.cursor}
	case s.cursor == s.externalIdx():
		return sidebarRow{kind: sidebarRowExternal}
	default:
		return sidebarRow{kind: sidebarRowTheme}
	}
}

func (s *Sidebar) moveCursor(delta int) {
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor > s.themeIdx() {
		s.cursor = s.themeIdx()
	}
	// Resting on the link counts as hovering it.
	s.panel.SetLinkHovered(s.cursor == s.externalIdx())
}

// Update handles input for the sidebar.
func (s *Sidebar) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKey(msg)
	case tea.MouseMsg:
		return s.handleMouse(msg)
	}
	return nil
}

func (s *Sidebar) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := s.keys

	switch {
	case key.Matches(msg, k.Up):
		s.moveCursor(-1)
	case key.Matches(msg, k.Down):
		s.moveCursor(1)
	case key.Matches(msg, k.Enter):
		return s.activate(s.cursorRow())
	case key.Matches(msg, k.Section):
		idx := int(msg.String()[0] - '1')
		if idx < 0 || idx >= s.panel.Registry().Len() {
			return nil
		}
		s.cursor = idx
		s.panel.SetLinkHovered(false)
		return s.activate(sidebarRow{kind: sidebarRowSection, section: idx})
	case key.Matches(msg, k.ToggleCollapse):
		s.panel.ToggleCollapsed()
	case key.Matches(msg, k.ToggleTheme):
		s.panel.ToggleTheme()
	case key.Matches(msg, k.OpenLink):
		return s.openExternal()
	}
	return nil
}

func (s *Sidebar) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.X >= s.Width() {
		// Pointer left the sidebar.
		if msg.Action == tea.MouseActionMotion && s.panel.State().LinkHovered {
			s.panel.SetLinkHovered(false)
		}
		return nil
	}

	row, ok := s.rowAt(msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		s.panel.SetLinkHovered(ok && row.kind == sidebarRowExternal)
		return nil
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			s.moveCursor(-1)
			return nil
		case tea.MouseButtonWheelDown:
			s.moveCursor(1)
			return nil
		case tea.MouseButtonLeft:
			if !ok {
				return nil
			}
			switch row.kind {
			case sidebarRowSection:
				s.cursor = row.section
			case sidebarRowExternal:
				s.cursor = s.externalIdx()
			case sidebarRowTheme:
				s.cursor = s.themeIdx()
			}
			return s.activate(row)
		}
	}
	return nil
}

func (s *Sidebar) activate(row sidebarRow) tea.Cmd {
	switch row.kind {
	case sidebarRowCollapse:
		s.panel.ToggleCollapsed()
	case sidebarRowSection:
		// Ids always come from the registry, so this cannot fail.
		_ = s.panel.SelectSection(s.panel.Registry().At(row.section).ID)
		return s.flush()
	case sidebarRowExternal:
		return s.openExternal()
	case sidebarRowTheme:
		s.panel.ToggleTheme()
	}
	return nil
}

// flush turns the intents collected by OnNavigate into messages for the App.
func (s *Sidebar) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(s.pending))
	for _, id := range s.pending {
		cmds = append(cmds, func() tea.Msg { return NavigateMsg{ID: id} })
	}
	s.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

func (s *Sidebar) openExternal() tea.Cmd {
	url := s.panel.ExternalLink().URL
	if err := s.panel.OpenExternalLink(context.Background()); err != nil {
		// Already reported by the panel.
		return nil
	}
	return func() tea.Msg { return NavigatedAwayMsg{URL: url} }
}

// rowAt maps a screen row to the sidebar row under it, using the height of
// the last render. Row 0 is the top border.
func (s *Sidebar) rowAt(y int) (sidebarRow, bool) {
	rows := s.layout(s.lastHeight - 2)
	idx := y - 1
	if idx < 0 || idx >= len(rows) {
		return sidebarRow{}, false
	}
	if rows[idx].kind == sidebarRowText {
		return sidebarRow{}, false
	}
	return rows[idx], true
}

// layout lays out the sidebar content for an inner height.
func (s *Sidebar) layout(height int) []sidebarRow {
	state := s.panel.State()
	collapsed := state.Collapsed
	cw := s.Width() - 4

	label := func(icon model.IconRef, text string) string {
		glyph := s.icons.Resolve(icon)
		if collapsed {
			return lipgloss.PlaceHorizontal(cw, lipgloss.Center, glyph)
		}
		return " " + glyph + " " + text
	}

	var top []sidebarRow
	if !collapsed && s.title != "" {
		wrapped := lipgloss.NewStyle().Width(cw).Render(s.title)
		for _, line := range strings.Split(wrapped, "\n") {
			top = append(top, sidebarRow{kind: sidebarRowText, text: line})
		}
	}
	if collapsed {
		top = append(top, sidebarRow{
			kind: sidebarRowCollapse,
			text: lipgloss.PlaceHorizontal(cw, lipgloss.Center, s.icons.Resolve(model.IconChevronRight)),
		})
	} else {
		top = append(top, sidebarRow{
			kind: sidebarRowCollapse,
			text: lipgloss.PlaceHorizontal(cw, lipgloss.Right, s.icons.Resolve(model.IconChevronLeft)),
		})
	}
	top = append(top, sidebarRow{kind: sidebarRowText})

	reg := s.panel.Registry()
	for i := 0; i < reg.Len(); i++ {
		sec := reg.At(i)
		top = append(top, sidebarRow{kind: sidebarRowSection, section: i, text: label(sec.Icon, sec.Label)})
	}

	link := s.panel.ExternalLink()
	themeIcon, themeText := model.IconMoon, "Dark mode"
	if state.DarkTheme {
		themeIcon, themeText = model.IconSun, "Light mode"
	}
	bottom := []sidebarRow{
		{kind: sidebarRowText, text: strings.Repeat("─", max(cw, 0))},
		{kind: sidebarRowExternal, text: label(model.IconHome, link.Label)},
		{kind: sidebarRowTheme, text: label(themeIcon, themeText)},
	}

	rows := top
	for filler := height - len(top) - len(bottom); filler > 0; filler-- {
		rows = append(rows, sidebarRow{kind: sidebarRowText})
	}
	return append(rows, bottom...)
}

// View renders the sidebar at the given total height.
func (s *Sidebar) View(height int, active model.SectionID, st styles) string {
	s.lastHeight = height
	width := s.Width()
	cw := width - 4

	entries := s.panel.Entries(active)
	hovered := s.panel.State().LinkHovered

	rows := s.layout(height - 2)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		style := st.item
		switch row.kind {
		case sidebarRowText:
			style = st.muted
			if row.text != "" && !strings.HasPrefix(row.text, "─") {
				style = st.title
			}
		case sidebarRowSection:
			switch {
			case entries[row.section].Active:
				style = st.itemActive
			case s.cursor == row.section:
				style = st.itemCursor
			}
		case sidebarRowExternal:
			switch {
			case hovered:
				style = st.linkHovered
			case s.cursor == s.externalIdx():
				style = st.itemCursor
			}
		case sidebarRowTheme:
			if s.cursor == s.themeIdx() {
				style = st.itemCursor
			}
		}
		lines = append(lines, style.Width(cw).MaxWidth(cw).Render(row.text))
	}

	bg := lipgloss.Color(st.pal.Background)
	box := lipgloss.NewStyle().
		Width(width-2).
		Height(height-2).
		MaxHeight(height).
		Background(bg).
		Border(lipgloss.NormalBorder()).
		BorderForeground(st.border()).
		BorderBackground(bg).
		Padding(0, 1)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
