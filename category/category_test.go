// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package category

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForBoundaries(t *testing.T) {
	tests := []struct {
		value float64
		title string
	}{
		{0, "Human-led"},
		{19, "Human-led"},
		{20, "Mostly Human"},
		{39, "Mostly Human"},
		{40, "Balanced"},
		{59, "Balanced"},
		{60, "Mostly AI (supervised)"},
		{79, "Mostly AI (supervised)"},
		{80, "AI-led (risky)"},
		{100, "AI-led (risky)"},
		{19.4, "Human-led"},
		{19.5, "Mostly Human"},
		{-0.4, "Human-led"},
		{100.4, "AI-led (risky)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.title, For(tt.value).Title, "value %v", tt.value)
	}
}

func TestForOutOfRangeUsesDefault(t *testing.T) {
	for _, v := range []float64{-1, -50, 101, 1000, math.NaN(), math.Inf(1), math.Inf(-1)} {
		c := For(v)
		assert.Equal(t, "balanced", c.Key, "value %v", v)
		assert.Equal(t, Default, c)
	}
}

func TestCategoriesPartitionDomain(t *testing.T) {
	all := All()
	assert.Len(t, all, 5)
	assert.Equal(t, 0, all[0].Min)
	assert.Equal(t, 100, all[len(all)-1].Max)
	for i := 1; i < len(all); i++ {
		assert.Equal(t, all[i-1].Max+1, all[i].Min, "gap or overlap before %s", all[i].Key)
	}

	for v := 0; v <= 100; v++ {
		matches := 0
		for _, c := range all {
			if c.Contains(v) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "value %d", v)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Title = "changed"
	assert.Equal(t, "Human-led", For(0).Title)
}

func TestSharesSumTo100(t *testing.T) {
	for v := 0.0; v <= 100; v += 0.25 {
		assert.Equal(t, 100, HumanShare(v)+AIShare(v), "value %v", v)
	}
	assert.Equal(t, 70, HumanShare(30))
	assert.Equal(t, 30, AIShare(30))
}

func TestSnapshot(t *testing.T) {
	b := Snapshot(65)
	assert.Equal(t, 35, b.Human)
	assert.Equal(t, 65, b.AI)
	assert.Equal(t, "mostly-ai", b.Category.Key)
	assert.Equal(t, "AI produces; human supervises and corrects.", b.Category.Description)
}
