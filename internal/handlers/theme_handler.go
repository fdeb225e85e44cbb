package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/estetica-agenda/internal/alert"
	"github.com/BruksfildServices01/estetica-agenda/internal/audit"
	"github.com/BruksfildServices01/estetica-agenda/internal/domain/theme"
	"github.com/BruksfildServices01/estetica-agenda/internal/httperr"
	"github.com/BruksfildServices01/estetica-agenda/internal/httpresp"
)

type themeRepository interface {
	Get(ctx context.Context) theme.Mode
	Set(ctx context.Context, mode theme.Mode)
}

type ThemeHandler struct {
	repo   themeRepository
	audit  *audit.Dispatcher
	alerts *alert.Center
}

func NewThemeHandler(repo themeRepository, audit *audit.Dispatcher, alerts *alert.Center) *ThemeHandler {
	return &ThemeHandler{repo: repo, audit: audit, alerts: alerts}
}

type ThemeRequest struct {
	Mode string `json:"mode"`
}

func (h *ThemeHandler) Get(c *gin.Context) {
	httpresp.OK(c, gin.H{"mode": h.repo.Get(c.Request.Context())})
}

func (h *ThemeHandler) Set(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	mode := theme.Mode(req.Mode)
	if !mode.Valid() {
		httperr.BadRequest(c, "invalid_theme", "Tema inválido.")
		return
	}

	h.repo.Set(c.Request.Context(), mode)

	if writeFailed(c, h.alerts) {
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "theme_changed",
		Entity:   "theme",
		EntityID: string(mode),
	})

	httpresp.OK(c, gin.H{"mode": mode})
}
