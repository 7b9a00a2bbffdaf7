// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/danielhkuo/ai-partner/kvstore"
	"github.com/danielhkuo/ai-partner/middleware"
)

var (
	errMissingDevice = errors.New("X-Device-UUID header required")
	errInvalidDevice = errors.New("X-Device-UUID must be a UUID")
)

// deviceID returns the canonical form of the X-Device-UUID header
func deviceID(r *http.Request) (string, error) {
	raw := r.Header.Get(middleware.DeviceHeader)
	if raw == "" {
		return "", errMissingDevice
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", errInvalidDevice
	}
	return id.String(), nil
}

// deviceScope narrows store to the keys owned by the requesting device.
// It writes a 400 and returns ok=false when the header is missing or malformed.
func deviceScope(w http.ResponseWriter, r *http.Request, store kvstore.Store) (id string, scoped kvstore.Store, ok bool) {
	id, err := deviceID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return "", nil, false
	}
	return id, kvstore.Prefixed(store, "device/"+id+"/"), true
}
