// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package theme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/ai-partner/kvstore"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		stored *string
		want   Theme
	}{
		{"nothing stored", nil, Dark},
		{"light", strPtr("light"), Light},
		{"dark", strPtr("dark"), Dark},
		{"garbage", strPtr("solarized"), Dark},
		{"wrong case", strPtr("LIGHT"), Dark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := kvstore.NewMemory()
			if tt.stored != nil {
				require.NoError(t, kv.Set(ctx, Key, *tt.stored))
			}
			assert.Equal(t, tt.want, Load(ctx, kv))
		})
	}
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()

	assert.Equal(t, Light, Toggle(ctx, kv))
	v, _, _ := kv.Get(ctx, Key)
	assert.Equal(t, "light", v)

	assert.Equal(t, Dark, Toggle(ctx, kv))
	assert.Equal(t, Dark, Load(ctx, kv))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "🌙", Dark.Icon())
	assert.Equal(t, "Dark", Dark.Label())
	assert.Equal(t, "☀️", Light.Icon())
	assert.Equal(t, "Light", Light.Label())
}

func strPtr(s string) *string { return &s }
