package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tiozaobarbearia/agenda-api/internal/audit"
	"github.com/tiozaobarbearia/agenda-api/internal/clock"
	"github.com/tiozaobarbearia/agenda-api/internal/config"
	"github.com/tiozaobarbearia/agenda-api/internal/handlers"
	"github.com/tiozaobarbearia/agenda-api/internal/metrics"
	"github.com/tiozaobarbearia/agenda-api/internal/middleware"
	"github.com/tiozaobarbearia/agenda-api/internal/store"
	ucBooking "github.com/tiozaobarbearia/agenda-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	ledger *store.AppointmentStore,
	creds *store.CredentialStore,
	rdb *redis.Client,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clk := clock.NewSystem()

	auditLogger := audit.New(cfg.DataDir)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	promReg := prometheus.NewRegistry()
	m := metrics.NewBookingMetrics(promReg)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	commitBookingUC := ucBooking.NewCommitBooking(ledger, clk, auditDispatcher)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(ledger, clk, auditDispatcher)

	availabilityUC := ucBooking.NewGetAvailability(ledger)

	listByCustomerUC := ucBooking.NewListByCustomer(ledger)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(creds, cfg, m, auditDispatcher)
	meHandler := handlers.NewMeHandler(listByCustomerUC)
	serviceHandler := handlers.NewServiceHandler()

	appointmentHandler := handlers.NewAppointmentHandler(
		commitBookingUC,
		cancelAppointmentUC,
		listByCustomerUC,
		availabilityUC,
		m,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// OBSERVABILITY
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/availability", appointmentHandler.Availability)

		// ------------------------------
		// AUTH
		// ------------------------------
		auth := api.Group("/auth")
		auth.Use(middleware.LoginRateLimit(rdb))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
