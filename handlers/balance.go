// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/danielhkuo/ai-partner/category"
	"github.com/danielhkuo/ai-partner/middleware"
	"github.com/danielhkuo/ai-partner/models"
)

// defaultBalance is where the slider starts
const defaultBalance = 50

type BalanceHandler struct{}

func NewBalanceHandler() *BalanceHandler {
	return &BalanceHandler{}
}

// Get handles GET /balance?value=N
func (h *BalanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	value := float64(defaultBalance)
	if raw := r.URL.Query().Get("value"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "value must be a number")
			return
		}
		value = v
	}

	middleware.JSONResponse(w, http.StatusOK, balanceResponse(category.Snapshot(value)))
}

func balanceResponse(b category.Balance) models.BalanceResponse {
	return models.BalanceResponse{
		Value:       b.Value,
		HumanPct:    b.Human,
		AIPct:       b.AI,
		HumanLabel:  fmt.Sprintf("Human %d%%", b.Human),
		AILabel:     fmt.Sprintf("AI %d%%", b.AI),
		Key:         b.Category.Key,
		Title:       b.Category.Title,
		Description: b.Category.Description,
	}
}
