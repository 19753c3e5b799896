// Package server exposes the portfolio over HTTP with gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spandanakunder/portfolio/internal/analytics"
	"github.com/spandanakunder/portfolio/internal/config"
	"github.com/spandanakunder/portfolio/internal/contact"
	"github.com/spandanakunder/portfolio/internal/content"
	"github.com/spandanakunder/portfolio/internal/logger"
	"github.com/spandanakunder/portfolio/internal/metrics"
	"github.com/spandanakunder/portfolio/internal/page"
)

// WasmPrefix is the URL prefix the scene runtime is served under.
const WasmPrefix = "/wasm"

// Deps are the collaborators a Server is built from.
type Deps struct {
	Config  *config.Config
	Logger  logger.Logger
	Profile *content.Profile
	Relay   contact.Relay
	Metrics *metrics.Manager
	// Store enables visitor tracking and the admin dashboard. Nil disables
	// both.
	Store *analytics.Store
}

// Server is the portfolio HTTP server.
type Server struct {
	cfg     *config.Config
	log     logger.Logger
	profile *content.Profile
	relay   contact.Relay
	metrics *metrics.Manager
	store   *analytics.Store
	tracker *analytics.Tracker
	motion  page.Motion

	adminToken string
	engine     *gin.Engine
}

// New wires the routes.
func New(d Deps) (*Server, error) {
	if d.Config == nil || d.Profile == nil || d.Relay == nil {
		return nil, errors.New("server: config, profile and relay are required")
	}
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.NewManager()
	}

	s := &Server{
		cfg:     d.Config,
		log:     d.Logger.Named("server"),
		profile: d.Profile,
		relay:   d.Relay,
		metrics: d.Metrics,
		store:   d.Store,
		motion:  page.Motion(d.Config.Scroll),
	}
	if s.store != nil {
		s.tracker = analytics.NewTracker(s.store, d.Logger.Named("analytics"), s.metrics.VisitRecorded)
	}

	tmpl, err := page.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery(), requestID(), s.observe())
	if s.tracker != nil {
		r.Use(s.tracker.Middleware())
	}
	s.engine = r

	s.siteRoutes(r)
	if err := s.adminRoutes(r); err != nil {
		return nil, err
	}
	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.tracker != nil {
		go s.tracker.RunCleanup(ctx, s.cfg.Analytics.Retention, time.Hour)
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "listening", logger.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.log.Info(shutdownCtx, "shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http: %w", err)
	}
	if s.tracker != nil {
		s.tracker.Wait()
	}
	return nil
}
