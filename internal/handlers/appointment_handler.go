package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/estetica-agenda/internal/alert"
	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-agenda/internal/dto"
	"github.com/BruksfildServices01/estetica-agenda/internal/httperr"
	"github.com/BruksfildServices01/estetica-agenda/internal/httpresp"
	"github.com/BruksfildServices01/estetica-agenda/internal/messaging"
	ucAppointment "github.com/BruksfildServices01/estetica-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list     *ucAppointment.ListAppointmentsByDate
	save     *ucAppointment.SaveAppointment
	delete   *ucAppointment.DeleteAppointment
	enrich   *ucAppointment.EnrichProcedure
	whatsapp *ucAppointment.WhatsAppLink
	alerts   *alert.Center
}

func NewAppointmentHandler(
	list *ucAppointment.ListAppointmentsByDate,
	save *ucAppointment.SaveAppointment,
	del *ucAppointment.DeleteAppointment,
	enrich *ucAppointment.EnrichProcedure,
	whatsapp *ucAppointment.WhatsAppLink,
	alerts *alert.Center,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:     list,
		save:     save,
		delete:   del,
		enrich:   enrich,
		whatsapp: whatsapp,
		alerts:   alerts,
	}
}

// ======================================================
// LIST (?date=YYYY-MM-DD)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	httpresp.List(c, h.list.Execute(c.Request.Context(), date))
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	h.saveAppointment(c, "", http.StatusCreated)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	h.saveAppointment(c, c.Param("id"), http.StatusOK)
}

func (h *AppointmentHandler) saveAppointment(c *gin.Context, id string, status int) {
	var form domain.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		invalidRequest(c)
		return
	}

	ap, err := h.save.Execute(c.Request.Context(), id, form)
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok && be.Code == "appointment_not_found" {
			httperr.NotFound(c, be.Code, be.Message)
			return
		}
		httperr.Business(c, err, "Erro ao salvar agendamento.")
		return
	}

	if writeFailed(c, h.alerts) {
		return
	}
	c.JSON(status, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	h.delete.Execute(c.Request.Context(), c.Param("id"))

	if writeFailed(c, h.alerts) {
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// ENRICH (IA)
// ======================================================

func (h *AppointmentHandler) Enrich(c *gin.Context) {
	var req dto.EnrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	out, err := h.enrich.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.Business(c, err, "Erro ao gerar resumo.")
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// WHATSAPP (?kind=reminder|confirmation)
// ======================================================

func (h *AppointmentHandler) WhatsApp(c *gin.Context) {
	kind := messaging.Kind(c.DefaultQuery("kind", string(messaging.KindReminder)))

	link, err := h.whatsapp.Execute(c.Request.Context(), c.Param("id"), kind)
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok && be.Code == "appointment_not_found" {
			httperr.NotFound(c, be.Code, be.Message)
			return
		}
		httperr.Business(c, err, "Erro ao gerar link.")
		return
	}
	httpresp.OK(c, gin.H{"url": link})
}
