package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fundlift/fundlift/internal/domain"
	"github.com/fundlift/fundlift/internal/service"
	"github.com/fundlift/fundlift/internal/session"
)

// Server is the JSON HTTP surface over the catalog.
type Server struct {
	echo       *echo.Echo
	catalog    *service.CatalogService
	moderation *service.ModerationService
	donations  *service.DonationService
	sessions   *session.Registry
	logger     *zap.Logger
}

// New wires the routes and middleware. gatherer feeds /metrics; pass
// prometheus.DefaultGatherer in production.
func New(catalog *service.CatalogService, moderation *service.ModerationService, donations *service.DonationService, sessions *session.Registry, logger *zap.Logger, gatherer prometheus.Gatherer) *Server {
	s := &Server{
		catalog:    catalog,
		moderation: moderation,
		donations:  donations,
		sessions:   sessions,
		logger:     logger,
	}
	s.setupEcho(gatherer)
	return s
}

func (s *Server) setupEcho(gatherer prometheus.Gatherer) {
	e := echo.New()
	e.HideBanner = true

	e.Use(s.requestLogger)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	e.GET("/healthz", s.handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	e.POST("/session", s.handleSignIn)
	e.DELETE("/session", s.handleSignOut)
	e.PUT("/session/page", s.handleNavigate, s.sessionRequired)

	e.GET("/projects", s.handleBrowse)
	e.POST("/projects", s.handleSubmit, s.sessionRequired)
	e.GET("/projects/:id", s.handleGetProject)
	e.GET("/projects/:id/updates", s.handleProjectUpdates)
	e.POST("/projects/:id/donations", s.handleApplyDonation)
	e.POST("/donation-intents", s.handleDonationIntent)

	e.GET("/creators/:id/totals", s.handleCreatorTotals)

	admin := e.Group("/admin", s.sessionRequired, s.adminRequired)
	admin.GET("/queue", s.handleAdminQueue)
	admin.GET("/metrics", s.handleAdminMetrics)
	admin.PATCH("/projects/:id/status", s.handleUpdateStatus)

	s.echo = e
}

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()

		err := next(c)

		res := c.Response()
		s.logger.Info("http request",
			zap.String("method", req.Method),
			zap.String("uri", req.RequestURI),
			zap.Int("status", res.Status),
			zap.Duration("duration", time.Since(start)))
		return err
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.echo
}

// Start runs the server until it fails or is shut down.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// jsonError maps the two domain error kinds onto status codes; anything
// else is a 500.
func jsonError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case domain.IsValidation(err):
		status = http.StatusBadRequest
	case domain.IsNotFound(err):
		status = http.StatusNotFound
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}
