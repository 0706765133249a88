// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/pollbase/pollbase/cliparse"
	"github.com/pollbase/pollbase/handlers"
	"github.com/pollbase/pollbase/middleware"
	"github.com/pollbase/pollbase/session"
	"github.com/pollbase/pollbase/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize gateways and handlers
	pollStore := store.NewSQLStore(db)
	sessions := session.NewSQLGateway(db, cfg.SessionTTL)

	authHandler := handlers.NewAuthHandler(sessions, cfg)
	pollHandler := handlers.NewPollHandler(pollStore)
	dashboardHandler := handlers.NewDashboardHandler(pollStore)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /auth/logout", middleware.WithLogging(authHandler.Logout))
	mux.HandleFunc("GET /auth/me", middleware.WithLogging(middleware.RequireUser(sessions, authHandler.Me)))

	// Polls (reads are public, the viewer is resolved when present)
	mux.HandleFunc("GET /polls", middleware.WithLogging(middleware.WithUser(sessions, pollHandler.List)))
	mux.HandleFunc("POST /polls", middleware.WithLogging(middleware.RequireUser(sessions, pollHandler.Create)))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(middleware.WithUser(sessions, pollHandler.Get)))
	mux.HandleFunc("DELETE /polls/{id}", middleware.WithLogging(middleware.RequireUser(sessions, pollHandler.Delete)))
	mux.HandleFunc("POST /polls/{id}/vote", middleware.WithLogging(middleware.RequireUser(sessions, pollHandler.Vote)))

	// Dashboard (always scoped to the signed-in user)
	mux.HandleFunc("GET /dashboard/stats", middleware.WithLogging(middleware.RequireUser(sessions, dashboardHandler.Stats)))
	mux.HandleFunc("GET /dashboard/recent", middleware.WithLogging(middleware.RequireUser(sessions, dashboardHandler.Recent)))

	// Root endpoint; {$} keeps this from swallowing unmatched GETs
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollbase API v1"))
	})

	return mux
}
