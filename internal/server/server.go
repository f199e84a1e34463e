package server

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vmarko/contribgraph/internal/contrib"
	"github.com/vmarko/contribgraph/internal/render"
)

// Aggregator is the engine surface the handlers consume.
type Aggregator interface {
	Fetch(ctx context.Context, username string) contrib.Result
}

type Handler struct {
	service Aggregator
	mcp     http.Handler
}

// NewHandler wires the engine and an optional MCP transport into the HTTP
// surface. Pass a nil mcp handler to skip the /mcp route.
func NewHandler(service Aggregator, mcp http.Handler) *Handler {
	return &Handler{
		service: service,
		mcp:     mcp,
	}
}

// SetupRouter configures the Gin router.
func (h *Handler) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Widget pages
	r.GET("/", h.Index)
	r.GET("/lookup", h.Lookup)
	r.GET("/user/:username", h.User)

	// JSON API
	r.GET("/api/contributions/:username", h.GetContributions)

	if h.mcp != nil {
		r.Any("/mcp", gin.WrapH(h.mcp))
	}

	return r
}

// Index serves the widget with the search form and empty state.
func (h *Handler) Index(c *gin.Context) {
	h.renderPage(c, "", nil)
}

// Lookup redirects the search form submission to the user page.
func (h *Handler) Lookup(c *gin.Context) {
	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.Redirect(http.StatusFound, "/user/"+url.PathEscape(username))
}

// User serves the server-rendered widget for one user.
func (h *Handler) User(c *gin.Context) {
	username := c.Param("username")
	result := h.service.Fetch(c.Request.Context(), username)
	h.renderPage(c, username, &result)
}

// GetContributions serves the aggregate result as JSON. The engine never
// fails, so the status is always 200; a not-found lookup carries its message
// in the body's error field.
func (h *Handler) GetContributions(c *gin.Context) {
	username := c.Param("username")
	result := h.service.Fetch(c.Request.Context(), username)
	c.JSON(http.StatusOK, result)
}

func (h *Handler) renderPage(c *gin.Context, username string, result *contrib.Result) {
	html, err := render.Page(username, result)
	if err != nil {
		slog.Error("Widget rendering failed", "username", username, "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
