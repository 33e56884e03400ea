// Package web serves the manual and its review modes over a JSON HTTP API.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/questions"
)

const (
	// CookieName is the cookie carrying the session ID.
	CookieName = "dsmanual_session"

	// SessionHeader carries the session ID for clients without cookies. It
	// takes precedence over the cookie and is echoed on every response.
	SessionHeader = "X-Session-Id"

	// DefaultMaxSessions is the session cap used when Options leaves it unset.
	DefaultMaxSessions = 10000

	shutdownTimeout = 10 * time.Second
)

// Options configures a Server.
type Options struct {
	Addr           string
	AllowedOrigins []string
	SessionTTL     time.Duration
	SecureCookies  bool

	// MaxSessions caps the live sessions. New sessions are refused with 503
	// while the cap is reached. Zero means DefaultMaxSessions.
	MaxSessions int

	// Seed fixes every session's draw order. Zero gives each session its
	// own random sequence.
	Seed int64

	Logger *slog.Logger
}

// Server is the HTTP host.
type Server struct {
	opts     Options
	cat      *catalogue.Catalogue
	pool     questions.Pool
	sessions *registry
	metrics  *metrics
	engine   *gin.Engine
	logger   *slog.Logger
}

// New builds the server over a catalogue and its question pool. An empty pool
// is rejected since neither review mode could start.
func New(cat *catalogue.Catalogue, pool questions.Pool, opts Options) (*Server, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("web: %w", questions.ErrEmptyPool)
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * time.Minute
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Server{
		opts:     opts,
		cat:      cat,
		pool:     pool,
		sessions: newRegistry(opts.SessionTTL, opts.MaxSessions, sourceFactory(opts.Seed)),
		logger:   opts.Logger,
	}
	s.metrics = newMetrics(s.sessions.Len)
	s.engine = s.routes()
	return s, nil
}

func sourceFactory(seed int64) func() questions.Source {
	if seed != 0 {
		return func() questions.Source { return questions.NewSource(seed) }
	}
	return func() questions.Source {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), s.metrics.instrument())

	if len(s.opts.AllowedOrigins) > 0 {
		origins := s.opts.AllowedOrigins
		r.Use(cors.New(cors.Config{
			AllowOriginFunc: func(origin string) bool {
				return slices.Contains(origins, origin)
			},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", SessionHeader},
			ExposeHeaders:    []string{SessionHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", s.metrics.handler())

	api := r.Group("/api/v1", s.withSession())
	{
		api.GET("/catalogue", s.getCatalogue)
		api.GET("/topics/:category/:topic", s.getTopic)

		api.GET("/progress", s.getProgress)
		api.POST("/progress/toggle", s.toggleProgress)
		api.POST("/progress/reset", s.resetProgress)

		api.GET("/flashcards", s.getFlashcard)
		api.POST("/flashcards/draw", s.drawFlashcard)
		api.POST("/flashcards/reveal", s.revealFlashcard)
		api.POST("/flashcards/next", s.drawFlashcard)

		api.GET("/quiz", s.getQuiz)
		api.POST("/quiz/draw", s.drawQuestion)
		api.POST("/quiz/answer", s.submitAnswer)
		api.POST("/quiz/next", s.drawQuestion)
		api.POST("/quiz/reset-score", s.resetScore)
	}
	return r
}

// Run serves on the configured address until ctx is done, then shuts down
// gracefully. The idle-session sweeper runs for the same lifetime.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.opts.Addr,
		Handler:      s.engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go s.sessions.Run(ctx, sweepInterval(s.opts.SessionTTL), func(removed int) {
		if removed > 0 {
			s.logger.Debug("expired sessions swept", "removed", removed, "live", s.sessions.Len())
		}
	})

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func sweepInterval(ttl time.Duration) time.Duration {
	return min(max(ttl/4, time.Second), time.Minute)
}
