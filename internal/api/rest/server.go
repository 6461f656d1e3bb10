package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/beisbol/dugout/internal/backend"
	"github.com/beisbol/dugout/internal/session"
)

// Server is the dashboard's HTTP surface: public read views, the auth
// endpoints, the admin management screens, and the report downloads.
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// Config carries the server's construction-time dependencies.
type Config struct {
	Port           string
	AllowedOrigins []string
	SessionMaxAge  int
}

// NewServer wires routes, middleware and guards.
func NewServer(cfg Config, clients *backend.Clients, sessions *session.Provider) *Server {
	handler := NewHandler(clients, sessions, cfg.SessionMaxAge)
	guard := NewGuard(sessions)

	router := mux.NewRouter()
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)

	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	// Auth
	api.HandleFunc("/auth/login", handler.Login).Methods("POST")
	api.HandleFunc("/auth/logout", handler.Logout).Methods("POST")

	authed := api.NewRoute().Subrouter()
	authed.Use(guard.RequireSession)
	authed.HandleFunc("/auth/session", handler.CurrentSession).Methods("GET")

	// Public dashboard views
	api.HandleFunc("/seasons", handler.ListSeasons).Methods("GET")
	api.HandleFunc("/seasons/{seasonID:[0-9]+}/series", handler.ListSeriesBySeason).Methods("GET")
	api.HandleFunc("/seasons/{seasonID:[0-9]+}/series/{serieID:[0-9]+}/standings", handler.GetStandings).Methods("GET")
	api.HandleFunc("/seasons/{seasonID:[0-9]+}/series/{serieID:[0-9]+}/games", handler.ListGamesBySerie).Methods("GET")
	api.HandleFunc("/seasons/{seasonID:[0-9]+}/series/{serieID:[0-9]+}/stars", handler.ListStarPlayers).Methods("GET")
	api.HandleFunc("/games/{gameID:[0-9]+}", handler.GetGame).Methods("GET")
	api.HandleFunc("/teams", handler.ListTeams).Methods("GET")
	api.HandleFunc("/teams/{teamID:[0-9]+}/roster", handler.GetTeamRoster).Methods("GET")
	api.HandleFunc("/players/{playerID:[0-9]+}", handler.GetPlayer).Methods("GET")

	// PDF report downloads
	reports := api.PathPrefix("/reports").Subrouter()
	reports.Use(guard.RequireSession)
	reports.HandleFunc("/seasons/{id:[0-9]+}", handler.DownloadSeasonReport).Methods("GET")
	reports.HandleFunc("/series/{id:[0-9]+}", handler.DownloadSerieReport).Methods("GET")
	reports.HandleFunc("/games/{id:[0-9]+}", handler.DownloadGameReport).Methods("GET")
	reports.HandleFunc("/teams/{id:[0-9]+}", handler.DownloadTeamReport).Methods("GET")

	// Admin management screens
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(guard.RequireSession)
	admin.Use(guard.RequireRole(backend.RoleAdmin))
	registerAdminRoutes(admin, clients)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return &Server{
		port:    cfg.Port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Port),
			Handler: corsHandler.Handler(router),
		},
	}
}

// Router exposes the configured handler chain. Used by tests.
func (s *Server) Router() http.Handler {
	return s.server.Handler
}

// Start starts the server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
