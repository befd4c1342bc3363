package httpserver

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/growthlab/growthnav/internal/icons"
	"github.com/growthlab/growthnav/internal/model"
	"github.com/growthlab/growthnav/internal/nav"
	"github.com/growthlab/growthnav/internal/skin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Deps wires the browser host.
type Deps struct {
	Addr         string
	Title        string
	Registry     *nav.Registry
	Theme        *nav.ThemeContext
	Reporter     model.Reporter
	ExternalLink model.ExternalLink
	Skin         skin.Skin
	Icons        icons.Resolver
	Logger       *zap.Logger
}

// Server renders the navigation panel as HTML. Every panel interaction is a
// form post handled under one lock, the way a UI event loop would run them.
type Server struct {
	addr     string
	title    string
	registry *nav.Registry
	panel    *nav.Panel
	skin     skin.Skin
	icons    icons.Resolver
	logger   *zap.Logger
	tmpl     *template.Template
	metrics  *metrics

	// mu serializes panel events; pending holds the intent emitted during
	// the event being handled.
	mu         sync.Mutex
	pending    model.SectionID
	hasPending bool

	server    *http.Server
	listener  net.Listener
	errc      chan error
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates the browser host. The panel's navigator redirects the
// requesting browser.
func NewServer(deps Deps) (*Server, error) {
	if deps.Addr == "" {
		deps.Addr = model.DefaultAPIAddr
	}
	if deps.Skin.Name == "" {
		deps.Skin = skin.Default()
	}
	if deps.Icons == nil {
		deps.Icons = icons.Glyphs()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		addr:     deps.Addr,
		title:    deps.Title,
		registry: deps.Registry,
		skin:     deps.Skin,
		icons:    deps.Icons,
		logger:   deps.Logger.Named("httpserver"),
		tmpl:     tmpl,
		metrics:  newMetrics(),
		errc:     make(chan error, 1),
		ctx:      ctx,
		cancel:   cancel,
	}

	panel, err := nav.NewPanel(nav.Deps{
		Registry:     deps.Registry,
		Theme:        deps.Theme,
		Navigator:    redirectNavigator{},
		Reporter:     deps.Reporter,
		ExternalLink: deps.ExternalLink,
		OnNavigate: func(id model.SectionID) {
			s.pending = id
			s.hasPending = true
		},
	})
	if err != nil {
		cancel()
		return nil, err
	}
	s.panel = panel
	return s, nil
}

// Panel exposes the served navigation panel.
func (s *Server) Panel() *nav.Panel { return s.panel }

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(s.logger))
	r.SetHTMLTemplate(s.tmpl)

	r.GET("/", s.handleIndex)
	r.GET("/sections/:id", s.handleSection)

	r.POST("/panel/select", s.handleSelect)
	r.POST("/panel/collapse", s.handleCollapse)
	r.POST("/panel/theme", s.handleTheme)
	r.POST("/panel/hover", s.handleHover)
	r.GET("/panel/external", s.handleExternal)

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/panel", s.handlePanelState)
	r.GET("/metrics", gin.WrapH(s.metrics.handler()))

	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.startTime = time.Now()

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.errc <- err
		}
	}()
	s.logger.Info("serving navigation panel", zap.String("addr", listener.Addr().String()))
	return nil
}

// Addr returns the bound address once started.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Errors delivers a fatal serve error, if one happens.
func (s *Server) Errors() <-chan error { return s.errc }

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// returnPath is the page to go back to after a panel event: the section
// named by the "from" field when valid, otherwise the index.
func (s *Server) returnPath(c *gin.Context) string {
	from := model.SectionID(c.PostForm("from"))
	if from == "" {
		from = model.SectionID(c.Query("from"))
	}
	if s.registry.Contains(from) {
		return sectionPath(from)
	}
	return "/"
}

func sectionPath(id model.SectionID) string {
	return "/sections/" + string(id)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, sectionPath(s.registry.First().ID))
}

func (s *Server) handleSection(c *gin.Context) {
	id := model.SectionID(c.Param("id"))
	if !s.registry.Contains(id) {
		c.HTML(http.StatusNotFound, "page.html", s.pageData(""))
		return
	}
	c.HTML(http.StatusOK, "page.html", s.pageData(id))
}

// handleSelect forwards a section click to the panel and, as the host,
// switches to the requested section. Unknown ids are reported by the panel
// and leave the browser where it was.
func (s *Server) handleSelect(c *gin.Context) {
	id := model.SectionID(c.PostForm("id"))

	s.mu.Lock()
	s.hasPending = false
	err := s.panel.SelectSection(id)
	target, ok := s.pending, s.hasPending
	s.mu.Unlock()
	s.metrics.observe(eventSelect, err)

	if err != nil || !ok {
		c.Redirect(http.StatusSeeOther, s.returnPath(c))
		return
	}
	c.Redirect(http.StatusSeeOther, sectionPath(target))
}

func (s *Server) handleCollapse(c *gin.Context) {
	s.mu.Lock()
	s.panel.ToggleCollapsed()
	s.mu.Unlock()
	s.metrics.observe(eventCollapse, nil)
	c.Redirect(http.StatusSeeOther, s.returnPath(c))
}

func (s *Server) handleTheme(c *gin.Context) {
	s.mu.Lock()
	dark := s.panel.ToggleTheme()
	s.mu.Unlock()
	s.metrics.observe(eventTheme, nil)
	s.logger.Debug("theme toggled", zap.Bool("dark", dark))
	c.Redirect(http.StatusSeeOther, s.returnPath(c))
}

func (s *Server) handleHover(c *gin.Context) {
	hovered, err := strconv.ParseBool(c.PostForm("hovered"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hovered must be true or false"})
		return
	}
	s.mu.Lock()
	s.panel.SetLinkHovered(hovered)
	s.mu.Unlock()
	s.metrics.observe(eventHover, nil)
	c.Status(http.StatusNoContent)
}

// handleExternal replaces the browser's page with the external destination.
// When that is impossible the failure is reported and the browser stays.
func (s *Server) handleExternal(c *gin.Context) {
	s.mu.Lock()
	err := s.panel.OpenExternalLink(withBrowsingContext(c.Request.Context(), c))
	s.mu.Unlock()
	s.metrics.observe(eventExternal, err)

	if err != nil && !c.Writer.Written() {
		c.Redirect(http.StatusSeeOther, s.returnPath(c))
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"uptime":   time.Since(s.startTime).String(),
		"sections": s.registry.Len(),
	})
}

type entryJSON struct {
	ID     model.SectionID `json:"id"`
	Label  string          `json:"label"`
	Icon   model.IconRef   `json:"icon"`
	Active bool            `json:"active"`
}

func (s *Server) handlePanelState(c *gin.Context) {
	active := model.SectionID(c.Query("active"))
	if active != "" && !s.registry.Contains(active) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown section"})
		return
	}

	state, dark := s.panel.Snapshot()
	entries := s.panel.Entries(active)
	sections := make([]entryJSON, 0, len(entries))
	for _, e := range entries {
		sections = append(sections, entryJSON{
			ID:     e.Section.ID,
			Label:  e.Section.Label,
			Icon:   e.Section.Icon,
			Active: e.Active,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"title":         s.title,
		"state":         state,
		"dark":          dark,
		"sections":      sections,
		"external_link": s.panel.ExternalLink(),
	})
}
