// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package category

import "math"

// Category is one bucket of the 0-100 human/AI balance slider.
// Min and Max are inclusive.
type Category struct {
	Key         string `json:"key"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Contains reports whether the rounded value falls inside the bucket
func (c Category) Contains(value int) bool {
	return value >= c.Min && value <= c.Max
}

var categories = [...]Category{
	{Key: "human-led", Min: 0, Max: 19, Title: "Human-led", Description: "Ethics & context first. AI is a helper."},
	{Key: "mostly-human", Min: 20, Max: 39, Title: "Mostly Human", Description: "Human decides; AI suggests and speeds up."},
	{Key: "balanced", Min: 40, Max: 59, Title: "Balanced", Description: "Human goals + AI speed. Best of both."},
	{Key: "mostly-ai", Min: 60, Max: 79, Title: "Mostly AI (supervised)", Description: "AI produces; human supervises and corrects."},
	{Key: "ai-led", Min: 80, Max: 100, Title: "AI-led (risky)", Description: "High speed, but risk without ethics & context."},
}

// Default is returned for values outside 0-100
var Default = categories[2]

// All returns the five categories in ascending order
func All() []Category {
	out := make([]Category, len(categories))
	copy(out, categories[:])
	return out
}

// For maps a slider position to its category. Out-of-range input, NaN
// included, gets Default rather than an error.
func For(value float64) Category {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Default
	}
	v := math.Round(value)
	for _, c := range categories {
		if v >= float64(c.Min) && v <= float64(c.Max) {
			return c
		}
	}
	return Default
}

// AIShare is the AI percentage shown for a slider position
func AIShare(value float64) int {
	return int(math.Round(value))
}

// HumanShare complements AIShare so the two always sum to 100
func HumanShare(value float64) int {
	return 100 - AIShare(value)
}

// Balance is everything the slider view renders for one position
type Balance struct {
	Value    float64  `json:"value"`
	Human    int      `json:"human_pct"`
	AI       int      `json:"ai_pct"`
	Category Category `json:"category"`
}

func Snapshot(value float64) Balance {
	return Balance{
		Value:    value,
		Human:    HumanShare(value),
		AI:       AIShare(value),
		Category: For(value),
	}
}
