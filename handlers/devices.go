// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/ai-partner/kvstore"
	"github.com/danielhkuo/ai-partner/middleware"
	"github.com/danielhkuo/ai-partner/models"
)

type DeviceHandler struct {
	store kvstore.Store
	now   func() time.Time
}

func NewDeviceHandler(store kvstore.Store) *DeviceHandler {
	return &DeviceHandler{store: store, now: time.Now}
}

func deviceKey(id string) string {
	return "devices/" + id
}

// Register handles POST /devices/register
// Reuses the X-Device-UUID header when present, otherwise mints a new UUID
func (h *DeviceHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterDeviceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !isValidPlatform(req.Platform) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "platform must be one of: ios, macos, android, web, terminal")
		return
	}

	id, err := deviceID(r)
	switch {
	case errors.Is(err, errMissingDevice):
		id = uuid.NewString()
	case err != nil:
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	device, found, err := h.load(r.Context(), id)
	if err != nil {
		slog.Error("failed to load device", "device_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	now := h.now()
	if found {
		device.LastSeenAt = now
		if err := h.save(r.Context(), device); err != nil {
			slog.Error("failed to update device last_seen_at", "error", err)
		}

		slog.Info("device registered (existing)", "device_id", id)
		middleware.JSONResponse(w, http.StatusOK, models.RegisterDeviceResponse{
			DeviceID: id,
			IsNew:    false,
		})
		return
	}

	device = models.Device{
		ID:         id,
		Platform:   req.Platform,
		CreatedAt:  now,
		LastSeenAt: now,
	}
	if err := h.save(r.Context(), device); err != nil {
		slog.Error("failed to insert device", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register device")
		return
	}

	slog.Info("device registered (new)", "device_id", id, "platform", req.Platform)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterDeviceResponse{
		DeviceID: id,
		IsNew:    true,
	})
}

// GetMe handles GET /devices/me
// Returns current device info with the previous visit humanized
func (h *DeviceHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	id, err := deviceID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	device, found, err := h.load(r.Context(), id)
	if err != nil {
		slog.Error("failed to load device", "device_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Device not registered")
		return
	}

	now := h.now()
	info := models.DeviceInfo{
		Device:   device,
		LastSeen: humanize.RelTime(device.LastSeenAt, now, "ago", "from now"),
	}

	device.LastSeenAt = now
	if err := h.save(r.Context(), device); err != nil {
		slog.Error("failed to update device last_seen_at", "error", err)
	}

	middleware.JSONResponse(w, http.StatusOK, info)
}

func (h *DeviceHandler) load(ctx context.Context, id string) (models.Device, bool, error) {
	raw, ok, err := h.store.Get(ctx, deviceKey(id))
	if err != nil || !ok {
		return models.Device{}, false, err
	}

	var d models.Device
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return models.Device{}, false, fmt.Errorf("decode device %s: %w", id, err)
	}
	return d, true, nil
}

func (h *DeviceHandler) save(ctx context.Context, d models.Device) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode device %s: %w", d.ID, err)
	}
	return h.store.Set(ctx, deviceKey(d.ID), string(raw))
}

func isValidPlatform(platform string) bool {
	switch platform {
	case models.PlatformIOS, models.PlatformMacOS, models.PlatformAndroid, models.PlatformWeb, models.PlatformTerminal:
		return true
	}
	return false
}
