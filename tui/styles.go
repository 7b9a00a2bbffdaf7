// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/danielhkuo/ai-partner/theme"
)

type palette struct {
	text   string
	muted  string
	accent string
	human  string
	ai     string
	border string
}

var palettes = map[theme.Theme]palette{
	theme.Dark: {
		text:   "#E6E6E6",
		muted:  "#888888",
		accent: "#F7B801",
		human:  "#4CAF50",
		ai:     "#5B8DEF",
		border: "#444444",
	},
	theme.Light: {
		text:   "#1F1F1F",
		muted:  "#666666",
		accent: "#B26A00",
		human:  "#2E7D32",
		ai:     "#1565C0",
		border: "#BBBBBB",
	},
}

// styles is rebuilt whenever the theme changes
type styles struct {
	title    lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	accent   lipgloss.Style
	selected lipgloss.Style
	box      lipgloss.Style

	humanBar progress.Model
	aiBar    progress.Model
	pollBar  progress.Model
}

func newStyles(t theme.Theme, barWidth int) styles {
	p, ok := palettes[t]
	if !ok {
		p = palettes[theme.Default]
	}

	bar := func(color string) progress.Model {
		return progress.New(
			progress.WithSolidFill(color),
			progress.WithoutPercentage(),
			progress.WithWidth(barWidth),
		)
	}

	return styles{
		title:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)).Bold(true),
		text:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true).Underline(true),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		humanBar: bar(p.human),
		aiBar:    bar(p.ai),
		pollBar:  bar(p.accent),
	}
}
