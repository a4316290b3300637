package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/viewcampus/eventportal/internal/config"
	"github.com/viewcampus/eventportal/internal/http/handlers"
	"github.com/viewcampus/eventportal/internal/http/middlewares"
	"github.com/viewcampus/eventportal/internal/notifications"
	"github.com/viewcampus/eventportal/internal/observability"
	"github.com/viewcampus/eventportal/internal/sessions"
	"github.com/viewcampus/eventportal/internal/stats"
	"github.com/viewcampus/eventportal/internal/store"
	"github.com/viewcampus/eventportal/internal/workflow"
)

func NewRouter(log *slog.Logger, st *store.Store, cfg config.Config, notifier notifications.Sender) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(cfg.BodyLimitBytes))

	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware("eventportal"))
	}

	promReg := prometheus.NewRegistry()
	prom := observability.NewProm(promReg)
	r.Use(prom.GinHandleMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})))

	// health
	health := handlers.NewHealthHandler()
	r.GET("/healthz", health.Healthz)
	r.GET("/readyz", health.Readyz)

	// wire up the portal core
	sessionMgr := sessions.NewManager(st)
	flow := workflow.NewRegistration(st, notifier, log)
	aggregator := stats.NewAggregator(st)

	authHandler := handlers.NewAuthHandler(st, sessionMgr, prom)
	eventsHandler := handlers.NewEventsHandler(st)
	registrationsHandler := handlers.NewRegistrationsHandler(flow, st, prom)
	adminHandler := handlers.NewAdminHandler(aggregator, st)

	loginLimiter := middlewares.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)

	api := r.Group("/api", middlewares.RequireJSON())

	auth := api.Group("/auth")
	auth.POST("/login", loginLimiter.Middleware(middlewares.KeyByIP), authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.POST("/logout", authHandler.Logout)

	api.GET("/events", eventsHandler.ListEvents)
	api.GET("/events/:id", eventsHandler.GetEventByID)

	api.POST("/registrations", registrationsHandler.Create)
	api.GET("/registrations/user/:userId", registrationsHandler.ListByUser)

	// Admin routes carry no extra authorization layer; role is data on
	// the user record, matching the surface this portal replaced.
	admin := api.Group("/admin")
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/student-activity", adminHandler.StudentActivity)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id", adminHandler.PatchUser)
	admin.GET("/event-categories", adminHandler.ListCategories)
	admin.POST("/event-categories", adminHandler.AddCategory)
	admin.DELETE("/event-categories/:category", adminHandler.DeleteCategory)
	admin.POST("/events", eventsHandler.CreateEvent)
	admin.DELETE("/events/:id", eventsHandler.DeleteEvent)

	return r
}
