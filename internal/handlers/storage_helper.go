package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/estetica-agenda/internal/alert"
	"github.com/BruksfildServices01/estetica-agenda/internal/httperr"
	"github.com/BruksfildServices01/estetica-agenda/internal/middleware"
	"github.com/BruksfildServices01/estetica-agenda/internal/storage"
)

// writeFailed answers 507 when the storage layer raised an alert during this
// request. Repository writes never return errors; the alert is the signal.
func writeFailed(c *gin.Context, alerts *alert.Center) bool {
	if alerts == nil {
		return false
	}
	if len(alerts.ForRequest(c.GetString(middleware.ContextAlertScope))) == 0 {
		return false
	}
	httperr.InsufficientStorage(c, "storage_write_failed", storage.WriteFailedMessage)
	return true
}

func invalidRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
}
