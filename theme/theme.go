// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package theme persists the dark/light preference.
package theme

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/ai-partner/kvstore"
)

// Key is the storage key of the preference
const Key = "aiPartTheme"

type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Default applies when nothing valid is stored
const Default = Dark

func (t Theme) Valid() bool {
	return t == Dark || t == Light
}

// Next is the theme a toggle switches to
func (t Theme) Next() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func (t Theme) Icon() string {
	if t == Light {
		return "☀️"
	}
	return "🌙"
}

func (t Theme) Label() string {
	if t == Light {
		return "Light"
	}
	return "Dark"
}

// Load returns the stored theme. Unknown values and storage errors give Default.
func Load(ctx context.Context, kv kvstore.Store) Theme {
	v, ok, err := kv.Get(ctx, Key)
	if err != nil {
		slog.Warn("theme unavailable, using default", "error", err)
		return Default
	}
	if t := Theme(v); ok && t.Valid() {
		return t
	}
	return Default
}

// Toggle flips the stored theme and returns the new one
func Toggle(ctx context.Context, kv kvstore.Store) Theme {
	next := Load(ctx, kv).Next()
	if err := kv.Set(ctx, Key, string(next)); err != nil {
		slog.Warn("theme not persisted", "theme", next, "error", err)
	}
	return next
}
