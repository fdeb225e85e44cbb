package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/estetica-agenda/internal/alert"
	"github.com/BruksfildServices01/estetica-agenda/internal/httpresp"
)

type AlertsHandler struct {
	alerts *alert.Center
}

func NewAlertsHandler(alerts *alert.Center) *AlertsHandler {
	return &AlertsHandler{alerts: alerts}
}

func (h *AlertsHandler) List(c *gin.Context) {
	httpresp.List(c, h.alerts.Recent())
}
