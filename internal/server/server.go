package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"aiservice/internal/config"
	"aiservice/internal/handler"
	"aiservice/internal/metrics"
	"aiservice/internal/middleware"
	"aiservice/internal/service"
)

// Server is the application object: routes, middleware and the HTTP listener.
// It is built once at process entry.
type Server struct {
	cfg        *config.Config
	log        *slog.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

// New builds the router and HTTP server from configuration
func New(cfg *config.Config, log *slog.Logger, info handler.BuildInfo) (*Server, error) {
	corsCfg := corsConfig(cfg.CORS)
	if err := corsCfg.Validate(); err != nil {
		return nil, fmt.Errorf("cors config: %w", err)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// Recovery is innermost so panicked requests are still logged and counted
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logger(log),
	)
	if m != nil {
		engine.Use(middleware.Metrics(m))
	}
	engine.Use(middleware.Recovery(log, m))
	if slices.Contains(cfg.CORS.AllowedHeaders, "*") {
		engine.Use(middleware.MirrorRequestHeaders())
	}
	engine.Use(cors.New(corsCfg))

	healthHandler := handler.NewHealthHandler(info)
	searchHandler := handler.NewSearchHandler(service.NewIntentParser(), m)
	priceHandler := handler.NewPriceHandler(service.NewPriceEstimator(), m)

	engine.GET("/", healthHandler.Home)
	engine.GET("/health", healthHandler.Health)
	engine.GET("/version", healthHandler.Version)

	engine.POST("/search/natural-language", searchHandler.NaturalLanguage)
	engine.POST("/price/predict", priceHandler.Predict)

	if m != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}
	engine.NoRoute(handler.NotFound)

	return &Server{
		cfg:        cfg,
		log:        log,
		engine:     engine,
		httpServer: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address and serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// corsConfig maps CORSConfig onto gin-contrib/cors. A "*" origin together
// with credentials echoes the caller's Origin, since browsers refuse a
// literal "*" on credentialed responses. A "*" header entry leaves
// AllowHeaders empty; MirrorRequestHeaders answers those preflights instead.
func corsConfig(c config.CORSConfig) cors.Config {
	headers := c.AllowedHeaders
	if slices.Contains(headers, "*") {
		headers = nil
	}

	cc := cors.Config{
		AllowMethods:     c.AllowedMethods,
		AllowHeaders:     headers,
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: c.AllowCredentials,
		MaxAge:           c.MaxAge,
	}

	switch {
	case slices.Contains(c.AllowedOrigins, "*") && c.AllowCredentials:
		cc.AllowOriginFunc = func(string) bool { return true }
	case slices.Contains(c.AllowedOrigins, "*"):
		cc.AllowAllOrigins = true
	default:
		cc.AllowOrigins = c.AllowedOrigins
	}

	return cc
}
