package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModal lists the key bindings in a scrollable viewport.
type HelpModal struct {
	keys               KeyMap
	viewport           viewport.Model
	styles             func() styles
	reverseScrollWheel bool
}

func NewHelpModal(keys KeyMap, stylesFn func() styles, reverseScrollWheel bool) *HelpModal {
	return &HelpModal{
		keys:               keys,
		viewport:           viewport.New(60, 20),
		styles:             stylesFn,
		reverseScrollWheel: reverseScrollWheel,
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.Escape), key.Matches(msg, h.keys.Help):
			return true, nil
		case key.Matches(msg, h.keys.Up):
			h.viewport.LineUp(1)
			return false, nil
		case key.Matches(msg, h.keys.Down):
			h.viewport.LineDown(1)
			return false, nil
		}
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		return false, cmd

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return false, nil
		}
		up := msg.Button == tea.MouseButtonWheelUp
		down := msg.Button == tea.MouseButtonWheelDown
		if h.reverseScrollWheel {
			up, down = down, up
		}
		switch {
		case up:
			h.viewport.LineUp(1)
		case down:
			h.viewport.LineDown(1)
		}
	}
	return false, nil
}

func (h *HelpModal) content() string {
	var b strings.Builder
	b.WriteString("Navigation Panel Help\n\n")
	for _, binding := range h.keys.HelpBindings() {
		help := binding.Help()
		fmt.Fprintf(&b, "  %-10s %s\n", help.Key, help.Desc)
	}
	b.WriteString("\nMOUSE:\n")
	b.WriteString("  Click a section to open it, the chevron to collapse,\n")
	b.WriteString("  the home link to leave, or the moon/sun to switch theme.\n")
	return b.String()
}

func (h *HelpModal) View(width, height int) string {
	st := h.styles()

	modalWidth := min(width-8, 70)
	modalHeight := height - 4
	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	h.viewport.Width = contentWidth
	h.viewport.Height = contentHeight
	h.viewport.SetContent(h.content())

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(st.border()).
		Render(h.viewport.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(lipgloss.Color(st.pal.Accent)).
		Bold(true).
		Render("Help")

	statusBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.pal.Muted)).
		Render("up/down/Wheel: Scroll | ?/h: Toggle Help | ESC: Close")

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.pal.Accent)).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}
