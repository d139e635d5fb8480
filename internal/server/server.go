// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the analyzer, draft synthesizer, enhancer, link
// fetcher, and draft store over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/assignment-engine/internal/linktext"
	"github.com/pdiddy/assignment-engine/internal/store"
	"github.com/pdiddy/assignment-engine/pkg/types"
)

const (
	healthPath  = "/healthz"
	metricsPath = "/metrics"

	defaultShutdownTimeout = 10 * time.Second

	// maxBodySize bounds request bodies; drafts are Markdown documents.
	maxBodySize = "4M"
)

// DraftStore is the persistence the draft routes need.
type DraftStore interface {
	Save(ctx context.Context, courseID, assignmentID int64, t types.AssignmentType, content string) (*types.StoredDraft, error)
	Get(ctx context.Context, id string) (*types.StoredDraft, error)
	List(ctx context.Context, opts store.ListOptions) ([]types.StoredDraft, error)
	MarkSubmitted(ctx context.Context, id string) (*types.StoredDraft, error)
	Delete(ctx context.Context, id string) error
}

// LinkFetcher retrieves the readable text behind a link.
type LinkFetcher interface {
	Fetch(ctx context.Context, url string) (linktext.Page, error)
}

// Server routes HTTP requests to the engine.
type Server struct {
	echo   *echo.Echo
	log    *logrus.Logger
	cfg    types.ServerConfig
	drafts DraftStore
	links  LinkFetcher
}

// New builds a Server. drafts and links may be nil, in which case their
// routes answer 503.
func New(cfg types.ServerConfig, log *logrus.Logger, drafts DraftStore, links LinkFetcher) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()

	s := &Server{echo: e, log: log, cfg: cfg, drafts: drafts, links: links}

	e.Use(middleware.Recover())
	e.Use(requestLogger(log))
	e.Use(metricsMiddleware())
	e.Use(middleware.BodyLimit(maxBodySize))

	e.GET(healthPath, s.health)
	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))

	ai := e.Group("/api/ai")
	ai.POST("/analyze-assignment", s.analyzeAssignment)
	ai.POST("/generate-draft", s.generateDraft)
	ai.POST("/enhance-content", s.enhanceContent)

	e.POST("/api/links/extract", s.extractLink, s.require(s.links != nil, "link fetching"))

	d := e.Group("/api/drafts", s.require(s.drafts != nil, "draft storage"))
	d.GET("", s.listDrafts)
	d.POST("", s.saveDraft)
	d.GET("/:id", s.getDraft)
	d.DELETE("/:id", s.deleteDraft)
	d.POST("/:id/submit", s.submitDraft)

	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run listens on cfg.Addr until ctx is done, then shuts down gracefully
// within cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.WithField("addr", s.cfg.Addr).Info("server listening")
		if err := s.echo.Start(s.cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		timeout := s.cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultShutdownTimeout
		}
		s.log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// require rejects requests with 503 when a dependency is not configured.
func (s *Server) require(ok bool, what string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if ok {
			return next
		}
		return func(echo.Context) error {
			return echo.NewHTTPError(http.StatusServiceUnavailable, what+" is not configured")
		}
	}
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
