package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/moneybridge/backend/internal/auth"
	"github.com/moneybridge/backend/internal/config"
	"github.com/moneybridge/backend/internal/http/handlers"
	"github.com/moneybridge/backend/internal/middleware"
	"github.com/moneybridge/backend/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, users storage.UserStore, contacts storage.ContactStore, log *slog.Logger) *Server {
	router := mux.NewRouter()

	tokens := auth.NewTokenManager(cfg.SecretKey)
	gate := middleware.NewAuth(tokens, users)

	handlers.NewHealthHandler(time.Now()).Register(router)
	handlers.NewAuthHandler(users, tokens, log).Register(router)
	handlers.NewAccountHandler().Register(router, gate)
	handlers.NewLedgerHandler(users, log).Register(router, gate)
	handlers.NewContactHandler(contacts, log).Register(router, gate)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(log, router))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Handler exposes the fully assembled middleware chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.inner.Handler
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
