package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/growthlab/growthnav/internal/diagnostics"
	"github.com/growthlab/growthnav/internal/icons"
	"github.com/growthlab/growthnav/internal/model"
	"github.com/growthlab/growthnav/internal/nav"
	"github.com/growthlab/growthnav/internal/skin"
)

// AppDeps wires the terminal host.
type AppDeps struct {
	Title        string
	Registry     *nav.Registry
	Theme        *nav.ThemeContext
	Skin         skin.Skin
	Navigator    model.Navigator
	Reporter     model.Reporter // receives reports alongside the status-line recorder
	ExternalLink model.ExternalLink
	Icons        icons.Resolver
	Logger       *zap.Logger

	ReverseScrollWheel bool
}

// App is the top-level Bubble Tea model. It is the host of the navigation
// panel: it owns the active section and routes between section pages.
type App struct {
	sidebar  *Sidebar
	registry *nav.Registry
	theme    *nav.ThemeContext
	skin     skin.Skin
	keys     KeyMap
	recorder *diagnostics.Recorder
	logger   *zap.Logger

	pages  map[model.SectionID]Page
	active model.SectionID
	modals []Modal

	reverseScrollWheel bool
	navigatedAway      bool
	width              int
	height             int
}

// NewApp creates the host with one SectionPage per registered section; the
// first section is active.
func NewApp(deps AppDeps) (*App, error) {
	if deps.Registry == nil {
		return nil, &nav.ConfigurationError{Reason: "app has no section registry"}
	}
	theme := deps.Theme
	if theme == nil {
		theme = nav.NewThemeContext(false)
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Skin.Name == "" {
		deps.Skin = skin.Default()
	}

	recorder := diagnostics.NewRecorder(16)
	keys := DefaultKeyMap()

	sidebar, err := NewSidebar(SidebarDeps{
		Registry:     deps.Registry,
		Theme:        theme,
		Navigator:    deps.Navigator,
		Reporter:     diagnostics.Multi{recorder, deps.Reporter},
		ExternalLink: deps.ExternalLink,
		Icons:        deps.Icons,
		Title:        deps.Title,
		Keys:         &keys,
	})
	if err != nil {
		return nil, err
	}

	a := &App{
		sidebar:            sidebar,
		registry:           deps.Registry,
		theme:              theme,
		skin:               deps.Skin,
		keys:               keys,
		recorder:           recorder,
		logger:             logger.Named("tui"),
		pages:              make(map[model.SectionID]Page, deps.Registry.Len()),
		active:             deps.Registry.First().ID,
		reverseScrollWheel: deps.ReverseScrollWheel,
	}
	for _, s := range deps.Registry.Sections() {
		a.pages[s.ID] = NewSectionPage(s, deps.Icons)
	}
	return a, nil
}

// SetPage replaces the page of a registered section. Pages for unknown
// sections are ignored.
func (a *App) SetPage(p Page) {
	if a.registry.Contains(p.ID()) {
		a.pages[p.ID()] = p
	}
}

func (a *App) ActiveSection() model.SectionID { return a.active }
func (a *App) Sidebar() *Sidebar { return a.sidebar }
func (a *App) Recorder() *diagnostics.Recorder { return a.recorder }

// NavigatedAway reports whether the session ended through the external link.
func (a *App) NavigatedAway() bool { return a.navigatedAway }

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case NavigateMsg:
		a.navigate(msg.ID)
		return a, nil

	case NavigatedAwayMsg:
		a.navigatedAway = true
		a.logger.Info("left application through external link", zap.String("url", msg.URL))
		return a, tea.Quit

	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.MouseMsg:
		if modal := a.TopModal(); modal != nil {
			pop, cmd := modal.Update(msg)
			if pop {
				a.PopModal()
			}
			return a, cmd
		}
		return a, a.sidebar.Update(msg)
	}
	return a, nil
}

// navigate is the host's section-switching logic. Requests for the section
// already shown are accepted and simply re-render it.
func (a *App) navigate(id model.SectionID) {
	if _, ok := a.pages[id]; !ok {
		a.logger.Warn("navigation intent for section without a page", zap.String("section", string(id)))
		return
	}
	if a.active != id {
		a.logger.Debug("section changed", zap.String("from", string(a.active)), zap.String("to", string(id)))
	}
	a.active = id
}

// handleKeyPress dispatches key events: modal stack first, then global
// shortcuts, then the sidebar.
func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a, tea.Quit
	}

	if modal := a.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			a.PopModal()
		}
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.PushModal(NewHelpModal(a.keys, a.currentStyles, a.reverseScrollWheel))
		return a, nil
	}

	return a, a.sidebar.Update(msg)
}

func (a *App) currentStyles() styles {
	return newStyles(a.skin.Palette(a.theme.Dark()))
}
