// Package httpapi exposes the inbound webhook, subscriber registration, and
// stats endpoints.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/arogyamitra/arogya-bot/internal/gateway"
	"github.com/arogyamitra/arogya-bot/internal/storage"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Responder answers one inbound message with ordered reply parts.
type Responder interface {
	Answer(ctx context.Context, text string) []string
}

// SubscriberStore is the persistence surface the API needs.
type SubscriberStore interface {
	CreateSubscriber(ctx context.Context, sub *storage.Subscriber) error
	CountSubscribers(ctx context.Context) (storage.Stats, error)
}

type Server struct {
	responder Responder
	store     SubscriberStore
	gw        gateway.Sender
	port      int
	logger    *zerolog.Logger
	engine    *gin.Engine
}

func NewServer(responder Responder, store SubscriberStore, gw gateway.Sender, port int, logger *zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		responder: responder,
		store:     store,
		gw:        gw,
		port:      port,
		logger:    logger,
		engine:    gin.New(),
	}

	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.routes()

	return s
}

func (s *Server) routes() {
	s.engine.POST("/webhook", s.handleWebhook)
	s.engine.POST("/register", s.handleRegister)
	s.engine.GET("/stats", s.handleStats)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)

		defer cancel()

		//nolint:errcheck,contextcheck // shutdown in signal handler is best-effort, non-inherited context intentional
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info().Int("port", s.port).Msg("API server starting")

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api server error: %w", err)
	}

	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
