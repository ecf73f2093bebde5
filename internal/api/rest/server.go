package rest

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/fortuna/pitchside/internal/service"
)

// Server represents the REST API server
type Server struct {
	addr    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(addr string, matches *service.MatchService, narrator Narrator) *Server {
	handler := NewHandler(matches, narrator)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)

	// Health check and metrics
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Competition / season
	api.HandleFunc("/competition", handler.GetCompetition).Methods("GET")
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")

	// Matches
	api.HandleFunc("/matches", handler.GetMatches).Methods("GET")
	api.HandleFunc("/matches/{matchID}", handler.GetMatch).Methods("GET")
	api.HandleFunc("/matches/{matchID}/stats", handler.GetMatchStats).Methods("GET")
	api.HandleFunc("/matches/{matchID}/positions", handler.GetMatchPositions).Methods("GET")
	api.HandleFunc("/matches/{matchID}/lineups", handler.GetMatchLineups).Methods("GET")
	api.HandleFunc("/matches/{matchID}/narrative", handler.GenerateNarrative).Methods("POST")

	// View-state transitions
	api.HandleFunc("/view", handler.ApplyViewAction).Methods("POST")

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return &Server{
		addr:    addr,
		handler: handler,
		server: &http.Server{
			Addr:    addr,
			Handler: corsWrapper.Handler(router),
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
