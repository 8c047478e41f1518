// Package devstub is a self-contained fake of the TechieFinder backend so
// the client can be exercised end-to-end without the real service. It
// serves the same REST surface with canned seed data; there is no business
// logic behind it.
package devstub

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/techiefinder/client/internal/pkg/config"
)

// Server wraps the echo instance and the in-memory dataset.
type Server struct {
	e    *echo.Echo
	data *dataset
	cfg  config.StubConfig
	log  zerolog.Logger
}

// New builds the stub with all routes registered.
func New(cfg config.StubConfig, log zerolog.Logger) *Server {
	s := &Server{
		e:    echo.New(),
		data: seed(),
		cfg:  cfg,
		log:  log,
	}

	e := s.e
	e.HideBanner = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = newHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("techiefinder_stub"))

	// --- Public routes ---
	api := e.Group("/api")
	api.POST("/auth/login", s.login)
	api.POST("/auth/register", s.register)
	api.GET("/technicians/available", s.availableTechnicians)
	api.GET("/technicians/:id", s.technicianByID)
	api.GET("/public/categories", s.categories)

	// --- Authenticated routes ---
	authed := api.Group("/bookings", s.requireAuth)
	authed.GET("/user/:userId", s.bookingsForUser)
	authed.GET("/technician/:technicianId", s.bookingsForTechnician)

	// --- Operational endpoints ---
	e.GET("/health", s.health)
	e.GET("/metrics", echoprometheus.NewHandler())

	return s
}

// Handler exposes the stub as an http.Handler for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

// Start blocks serving on the configured port.
func (s *Server) Start() error {
	addr := ":" + s.cfg.Port
	s.log.Info().Str("addr", addr).Msg("dev stub listening")
	return s.e.Start(addr)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// errorResponse matches the real backend's error envelope.
type errorResponse struct {
	Message string `json:"message"`
}

// newHTTPErrorHandler maps known stub errors onto deterministic status codes
// and renders the {"message": ...} envelope the client expects.
func newHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, errInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, errUserExists):
		return http.StatusConflict, "Email already exists"
	case errors.Is(err, errUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, errTechnicianNotFound):
		return http.StatusNotFound, "Technician not found"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error"
}
