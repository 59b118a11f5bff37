// Package server is the HTTP front end of the scorer.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aiscore/internal/aidetect"
	"aiscore/internal/db"
	"aiscore/internal/metrics"
)

// MaxBodyBytes bounds POST /v1/analyze.
const MaxBodyBytes = 5 << 20

type Options struct {
	Engine  *aidetect.Engine
	Store   *db.Store
	Metrics *metrics.Collector
	Logger  *zap.Logger
	Windows aidetect.WindowConfig
}

type Server struct {
	engine  *aidetect.Engine
	store   *db.Store
	metrics *metrics.Collector
	log     *zap.Logger
	windows aidetect.WindowConfig
	router  *gin.Engine
}

// New wires the routes. Store may be nil, in which case the history
// endpoints answer 503.
func New(opts Options) *Server {
	gin.SetMode(gin.ReleaseMode)
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewCollector()
	}
	if opts.Engine == nil {
		opts.Engine = aidetect.NewEngine()
	}
	s := &Server{
		engine:  opts.Engine,
		store:   opts.Store,
		metrics: opts.Metrics,
		log:     opts.Logger.Named("http"),
		windows: opts.Windows,
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))
	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	v1 := r.Group("/v1")
	v1.POST("/analyze", limitBody(MaxBodyBytes), s.analyze)
	v1.GET("/analyses", s.listAnalyses)
	v1.GET("/analyses/:id", s.getAnalysis)

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}
