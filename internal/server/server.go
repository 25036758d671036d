package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/accountd/apiserver/config"
	"github.com/accountd/apiserver/internal/db"
	"github.com/accountd/apiserver/internal/handlers"
	"github.com/accountd/apiserver/internal/services"
	"github.com/accountd/apiserver/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
}

// New constructs a Server. The store must be reachable and the schema in
// place before this returns; the listener is never started first.
func New(ctx context.Context, cfg config.Config, log *logrus.Logger) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("store unreachable: %w", err)
	}

	userRepo := store.NewUserRepository(dbConn)
	if err := userRepo.EnsureSchema(ctx); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("ensure schema failed: %w", err)
	}

	userService := services.NewUserService(userRepo)
	router := newRouter(userService, log)

	port := cfg.ServerPort
	if port == 0 {
		port = 8000
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}, nil
}

// newRouter builds the route table. Precedence is exact method+path,
// then the OPTIONS wildcard, then the landing page for anything else.
func newRouter(userService *services.UserService, log *logrus.Logger) *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
		}),
	)

	router.Get("/", handlers.Landing)
	router.Get("/healthz", handlers.Healthz)
	router.MethodFunc(http.MethodOptions, "/*", handlers.Preflight)
	handlers.UserRouter(router, userService, log)

	// Unknown paths and methods render the landing page, not a 404.
	router.NotFound(handlers.Landing)
	router.MethodNotAllowed(handlers.Landing)

	return router
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	err := s.httpServer.Close()
	if s.db != nil {
		_ = s.db.Close()
	}
	return err
}
