package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/estetica-agenda/internal/alert"
	"github.com/BruksfildServices01/estetica-agenda/internal/httperr"
	"github.com/BruksfildServices01/estetica-agenda/internal/httpresp"
	ucClient "github.com/BruksfildServices01/estetica-agenda/internal/usecase/client"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	list    *ucClient.ListClients
	save    *ucClient.SaveClient
	delete  *ucClient.DeleteClient
	history *ucClient.ClientHistory
	alerts  *alert.Center
}

func NewClientHandler(
	list *ucClient.ListClients,
	save *ucClient.SaveClient,
	del *ucClient.DeleteClient,
	history *ucClient.ClientHistory,
	alerts *alert.Center,
) *ClientHandler {
	return &ClientHandler{
		list:    list,
		save:    save,
		delete:  del,
		history: history,
		alerts:  alerts,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

func (r ClientRequest) input(id string) ucClient.SaveClientInput {
	return ucClient.SaveClientInput{
		ID:    id,
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
		Notes: r.Notes,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	httpresp.List(c, h.list.Execute(c.Request.Context(), query))
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	h.saveClient(c, "", http.StatusCreated)
}

func (h *ClientHandler) Update(c *gin.Context) {
	h.saveClient(c, c.Param("id"), http.StatusOK)
}

func (h *ClientHandler) saveClient(c *gin.Context, id string, status int) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	client, err := h.save.Execute(c.Request.Context(), req.input(id))
	if err != nil {
		if httperr.IsBusiness(err, "client_not_found") {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Business(c, err, "Erro ao salvar cliente.")
		return
	}

	if writeFailed(c, h.alerts) {
		return
	}
	c.JSON(status, client)
}

// ======================================================
// DELETE
// ======================================================

// Delete never touches the client's appointments.
func (h *ClientHandler) Delete(c *gin.Context) {
	h.delete.Execute(c.Request.Context(), c.Param("id"))

	if writeFailed(c, h.alerts) {
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// HISTORY
// ======================================================

func (h *ClientHandler) History(c *gin.Context) {
	httpresp.List(c, h.history.Execute(c.Request.Context(), c.Param("id")))
}
