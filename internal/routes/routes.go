package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/estetica-agenda/internal/alert"
	"github.com/BruksfildServices01/estetica-agenda/internal/audit"
	"github.com/BruksfildServices01/estetica-agenda/internal/config"
	"github.com/BruksfildServices01/estetica-agenda/internal/enrichment"
	"github.com/BruksfildServices01/estetica-agenda/internal/handlers"
	infraRepo "github.com/BruksfildServices01/estetica-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/estetica-agenda/internal/messaging"
	"github.com/BruksfildServices01/estetica-agenda/internal/metrics"
	"github.com/BruksfildServices01/estetica-agenda/internal/middleware"
	"github.com/BruksfildServices01/estetica-agenda/internal/storage"
	ucAppointment "github.com/BruksfildServices01/estetica-agenda/internal/usecase/appointment"
	ucClient "github.com/BruksfildServices01/estetica-agenda/internal/usecase/client"
	ucDashboard "github.com/BruksfildServices01/estetica-agenda/internal/usecase/dashboard"
)

// Infra holds the process-wide singletons built in main.
type Infra struct {
	Logger   *zap.Logger
	Store    *storage.Store
	Alerts   *alert.Center
	Metrics  *metrics.Metrics
	Gateway  enrichment.Gateway
	AuditLog *audit.Logger
	Audit    *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, infra Infra, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(infra.Logger),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// 🔧 REPOSITÓRIOS
	// ======================================================
	clientRepo := infraRepo.NewClientSlotRepository(infra.Store)
	appointmentRepo := infraRepo.NewAppointmentSlotRepository(infra.Store)
	themeRepo := infraRepo.NewThemeSlotRepository(infra.Store)

	// ======================================================
	// 🧠 USE CASES: CLIENTES
	// ======================================================
	listClientsUC := ucClient.NewListClients(clientRepo)
	saveClientUC := ucClient.NewSaveClient(clientRepo, infra.Audit)
	deleteClientUC := ucClient.NewDeleteClient(clientRepo, infra.Audit)
	clientHistoryUC := ucClient.NewClientHistory(appointmentRepo)

	// ======================================================
	// 🧠 USE CASES: AGENDAMENTOS
	// ======================================================
	listAppointmentsUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo, clientRepo)
	saveAppointmentUC := ucAppointment.NewSaveAppointment(appointmentRepo, clientRepo, infra.Audit)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, infra.Audit)
	enrichUC := ucAppointment.NewEnrichProcedure(infra.Gateway)
	whatsappUC := ucAppointment.NewWhatsAppLink(
		appointmentRepo,
		clientRepo,
		messaging.NewWhatsApp(cfg.CountryCode, cfg.BusinessName),
	)

	dashboardUC := ucDashboard.NewGetDashboard(appointmentRepo, clientRepo, cfg.Timezone)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(
		listClientsUC,
		saveClientUC,
		deleteClientUC,
		clientHistoryUC,
		infra.Alerts,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		saveAppointmentUC,
		deleteAppointmentUC,
		enrichUC,
		whatsappUC,
		infra.Alerts,
	)

	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	themeHandler := handlers.NewThemeHandler(themeRepo, infra.Audit, infra.Alerts)
	auditLogsHandler := handlers.NewAuditLogsHandler(infra.AuditLog)
	alertsHandler := handlers.NewAlertsHandler(infra.Alerts)

	// ======================================================
	// 🩺 INFRA
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": infra.Store.Driver()})
	})
	if infra.Metrics != nil {
		r.GET("/metrics", gin.WrapH(infra.Metrics.Handler()))
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	if cfg.AuthEnabled() {
		api.Use(middleware.AuthMiddleware(cfg))
	}
	{
		// ------------------------------
		// 👤 CLIENTES
		// ------------------------------
		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.PUT("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)
		api.GET("/clients/:id/history", clientHandler.History)

		// ------------------------------
		// 📅 AGENDAMENTOS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.POST("/appointments/enrich", appointmentHandler.Enrich)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
		api.GET("/appointments/:id/whatsapp", appointmentHandler.WhatsApp)

		// ------------------------------
		// 📊 PAINEL / PREFERÊNCIAS
		// ------------------------------
		api.GET("/dashboard", dashboardHandler.Get)
		api.GET("/theme", themeHandler.Get)
		api.PUT("/theme", themeHandler.Set)

		// ------------------------------
		// 🔎 AUDITORIA / ALERTAS
		// ------------------------------
		api.GET("/audit-logs", auditLogsHandler.List)
		api.GET("/alerts", alertsHandler.List)
	}
}
