// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ai-partner/kvstore"
	"github.com/danielhkuo/ai-partner/middleware"
	"github.com/danielhkuo/ai-partner/models"
	"github.com/danielhkuo/ai-partner/theme"
)

type ThemeHandler struct {
	store kvstore.Store
}

func NewThemeHandler(store kvstore.Store) *ThemeHandler {
	return &ThemeHandler{store: store}
}

// Get handles GET /theme
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	_, scoped, ok := deviceScope(w, r, h.store)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, themeResponse(theme.Load(r.Context(), scoped)))
}

// Toggle handles POST /theme/toggle
func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, scoped, ok := deviceScope(w, r, h.store)
	if !ok {
		return
	}

	t := theme.Toggle(r.Context(), scoped)
	slog.Info("theme toggled", "device", id, "theme", t)

	middleware.JSONResponse(w, http.StatusOK, themeResponse(t))
}

func themeResponse(t theme.Theme) models.ThemeResponse {
	return models.ThemeResponse{
		Theme: string(t),
		Icon:  t.Icon(),
		Label: t.Label(),
	}
}
