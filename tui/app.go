// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danielhkuo/ai-partner/category"
	"github.com/danielhkuo/ai-partner/kvstore"
	"github.com/danielhkuo/ai-partner/poll"
	"github.com/danielhkuo/ai-partner/theme"
)

// focus is the control that receives keys
type focus int

const (
	focusSlider focus = iota
	focusName
	focusChoices
	focusCount
)

const (
	defaultWidth = 64
	minBarWidth  = 10
	sliderStep   = 1
	sliderJump   = 10
)

// App is the bubbletea model for the whole page
type App struct {
	ctx    context.Context
	kv     kvstore.Store
	poll   poll.Poll
	mode   string
	logger *slog.Logger

	theme   theme.Theme
	styles  styles
	balance int
	name    textinput.Model
	choice  poll.Choice
	focus   focus
	tally   poll.Tally
	status  string

	width int
}

// NewApp loads the theme and tally from kv and builds the poll for mode
func NewApp(ctx context.Context, kv kvstore.Store, mode string, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	p, err := poll.New(mode, kv, poll.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 40
	name.Width = 24

	a := &App{
		ctx:     ctx,
		kv:      kv,
		poll:    p,
		mode:    mode,
		logger:  logger,
		theme:   theme.Load(ctx, kv),
		balance: 50,
		name:    name,
		width:   defaultWidth,
	}
	a.styles = newStyles(a.theme, a.barWidth())
	a.tally = p.Tally(ctx)
	return a, nil
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.styles = newStyles(a.theme, a.barWidth())
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.name, cmd = a.name.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "tab":
		a.setFocus((a.focus + 1) % focusCount)
		return a, nil
	case "shift+tab":
		a.setFocus((a.focus + focusCount - 1) % focusCount)
		return a, nil
	case "enter":
		a.vote()
		return a, nil
	}

	// The name field swallows every other key
	if a.focus == focusName {
		var cmd tea.Cmd
		a.name, cmd = a.name.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "t":
		a.toggleTheme()
	case "x":
		a.clear()
	case "left":
		a.moveSlider(-sliderStep)
	case "right":
		a.moveSlider(sliderStep)
	case "shift+left":
		a.moveSlider(-sliderJump)
	case "shift+right":
		a.moveSlider(sliderJump)
	case "1", "2", "3":
		a.choice = poll.Choices[msg.String()[0]-'1']
		a.setFocus(focusChoices)
	}
	return a, nil
}

func (a *App) setFocus(f focus) {
	a.focus = f
	if f == focusName {
		a.name.Focus()
	} else {
		a.name.Blur()
	}
}

func (a *App) moveSlider(delta int) {
	a.balance = min(100, max(0, a.balance+delta))
}

func (a *App) toggleTheme() {
	a.theme = theme.Toggle(a.ctx, a.kv)
	a.styles = newStyles(a.theme, a.barWidth())
}

func (a *App) vote() {
	res := a.poll.SubmitVote(a.ctx, a.name.Value(), a.choice)
	a.status = res.Message
	a.tally = a.poll.Tally(a.ctx)
}

func (a *App) clear() {
	res := a.poll.ClearVote(a.ctx, a.name.Value())
	a.status = res.Message
	a.tally = a.poll.Tally(a.ctx)
}

func (a *App) barWidth() int {
	return max(minBarWidth, a.width-30)
}

func (a *App) View() string {
	s := a.styles
	var b strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		s.title.Render("How should humans and AI work together?"),
		"  ",
		s.muted.Render(fmt.Sprintf("%s %s", a.theme.Icon(), a.theme.Label())),
	)
	b.WriteString(header + "\n\n")

	b.WriteString(a.focusMark(focusSlider) + s.title.Render("Balance") + "\n")
	b.WriteString(a.viewBalance() + "\n\n")

	b.WriteString(a.focusMark(focusName) + s.title.Render("Name") + "  " + a.name.View() + "\n\n")

	b.WriteString(a.focusMark(focusChoices) + s.title.Render("Your view") + "\n")
	b.WriteString(a.viewPoll() + "\n")

	if a.status != "" {
		b.WriteString("\n" + s.accent.Render(a.status) + "\n")
	}

	b.WriteString("\n" + s.muted.Render("tab focus · ←/→ slide (shift ×10) · 1-3 choose · enter vote · x clear · t theme · q quit"))

	return s.box.Render(b.String())
}

func (a *App) focusMark(f focus) string {
	if a.focus == f {
		return a.styles.accent.Render("▸ ")
	}
	return "  "
}

func (a *App) viewBalance() string {
	s := a.styles
	snap := category.Snapshot(float64(a.balance))

	lines := []string{
		fmt.Sprintf("  %-10s %s", fmt.Sprintf("Human %d%%", snap.Human), s.humanBar.ViewAs(float64(snap.Human)/100)),
		fmt.Sprintf("  %-10s %s", fmt.Sprintf("AI %d%%", snap.AI), s.aiBar.ViewAs(float64(snap.AI)/100)),
		"  " + s.accent.Render(snap.Category.Title),
		"  " + s.muted.Render(snap.Category.Description),
	}
	return strings.Join(lines, "\n")
}

func (a *App) viewPoll() string {
	s := a.styles
	lines := make([]string, 0, len(poll.Choices)+1)
	for i, c := range poll.Choices {
		pct := poll.Percentage(a.tally, c)
		label := fmt.Sprintf("%d %s", i+1, c.Label())
		if c == a.choice {
			label = s.selected.Render(label)
		} else {
			label = s.text.Render(label)
		}
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			lipgloss.NewStyle().Width(12).Render(label),
			s.pollBar.ViewAs(float64(pct)/100),
			s.muted.Render(fmt.Sprintf("%d (%d%%)", a.tally.Count(c), pct)),
		))
	}
	lines = append(lines, "  "+s.muted.Render(a.tally.TotalText()))
	return strings.Join(lines, "\n")
}
