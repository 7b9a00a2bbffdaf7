// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/ai-partner/cliparse"
	"github.com/danielhkuo/ai-partner/handlers"
	"github.com/danielhkuo/ai-partner/kvstore"
	"github.com/danielhkuo/ai-partner/middleware"
)

func NewRouter(store kvstore.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(store, cfg)
	balanceHandler := handlers.NewBalanceHandler()
	themeHandler := handlers.NewThemeHandler(store)
	deviceHandler := handlers.NewDeviceHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll (device scoped)
	mux.HandleFunc("GET /poll", middleware.WithLogging(pollHandler.Results))
	mux.HandleFunc("POST /poll/votes", middleware.WithLogging(pollHandler.SubmitVote))
	mux.HandleFunc("POST /poll/clear", middleware.WithLogging(pollHandler.ClearVote))

	// Slider
	mux.HandleFunc("GET /balance", middleware.WithLogging(balanceHandler.Get))

	// Theme (device scoped)
	mux.HandleFunc("GET /theme", middleware.WithLogging(themeHandler.Get))
	mux.HandleFunc("POST /theme/toggle", middleware.WithLogging(themeHandler.Toggle))

	// Device management
	mux.HandleFunc("POST /devices/register", middleware.WithLogging(deviceHandler.Register))
	mux.HandleFunc("GET /devices/me", middleware.WithLogging(deviceHandler.GetMe))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ai-partner API v1"))
	})

	return middleware.CORS(cfg.AllowedOrigins)(mux)
}
