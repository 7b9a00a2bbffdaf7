// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kvstore

import (
	"context"
	"log/slog"
	"sync"
)

type fallback struct {
	primary Store
	shadow  *Memory

	mu sync.Mutex
	// keys whose stored value could not be read; writes to them stay in
	// the shadow so they never replace data this process has not seen
	unknown map[string]bool
}

// Fallback wraps primary so that backend failures never reach the caller.
// Successful reads and writes are mirrored into an in-memory shadow; when
// primary errors, reads are served from the shadow. A key whose first read
// failed is kept memory-only until primary answers for it again.
func Fallback(primary Store) Store {
	return &fallback{primary: primary, shadow: NewMemory(), unknown: map[string]bool{}}
}

func (f *fallback) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := f.primary.Get(ctx, key)
	if err != nil {
		slog.Warn("storage read failed, using in-memory copy", "key", key, "error", err)
		sv, found, _ := f.shadow.Get(ctx, key)
		if !found {
			f.mu.Lock()
			f.unknown[key] = true
			f.mu.Unlock()
		}
		return sv, found, nil
	}

	f.mu.Lock()
	delete(f.unknown, key)
	f.mu.Unlock()
	if ok {
		_ = f.shadow.Set(ctx, key, v)
	}
	return v, ok, nil
}

func (f *fallback) Set(ctx context.Context, key, value string) error {
	// shadow first so a failed primary write is still visible to this session
	_ = f.shadow.Set(ctx, key, value)

	f.mu.Lock()
	unknown := f.unknown[key]
	f.mu.Unlock()
	if unknown {
		slog.Warn("stored value never read, keeping write in memory", "key", key)
		return nil
	}

	if err := f.primary.Set(ctx, key, value); err != nil {
		slog.Warn("storage write failed, keeping in-memory copy", "key", key, "error", err)
	}
	return nil
}
