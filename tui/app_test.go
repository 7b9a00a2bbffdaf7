// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/danielhkuo/ai-partner/kvstore"
	"github.com/danielhkuo/ai-partner/poll"
	"github.com/danielhkuo/ai-partner/theme"
)

func newTestApp(t *testing.T, kv kvstore.Store, mode string) *App {
	t.Helper()
	app, err := NewApp(context.Background(), kv, mode, nil)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, app *App, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var model tea.Model
		model, cmd = app.Update(msg)
		if model != app {
			t.Fatalf("update must return the same app")
		}
	}
	return cmd
}

func TestSliderKeys(t *testing.T) {
	app := newTestApp(t, kvstore.NewMemory(), poll.ModeLedger)
	if app.balance != 50 {
		t.Fatalf("expected slider to start at 50, got %d", app.balance)
	}

	send(t, app, tea.KeyMsg{Type: tea.KeyRight})
	if app.balance != 51 {
		t.Fatalf("expected 51 after right, got %d", app.balance)
	}
	send(t, app, tea.KeyMsg{Type: tea.KeyShiftLeft}, tea.KeyMsg{Type: tea.KeyShiftLeft})
	if app.balance != 31 {
		t.Fatalf("expected 31 after two jumps left, got %d", app.balance)
	}
	for i := 0; i < 5; i++ {
		send(t, app, tea.KeyMsg{Type: tea.KeyShiftLeft})
	}
	if app.balance != 0 {
		t.Fatalf("expected slider clamped at 0, got %d", app.balance)
	}
	for i := 0; i < 12; i++ {
		send(t, app, tea.KeyMsg{Type: tea.KeyShiftRight})
	}
	if app.balance != 100 {
		t.Fatalf("expected slider clamped at 100, got %d", app.balance)
	}

	view := app.View()
	for _, want := range []string{"Human 0%", "AI 100%", "AI-led (risky)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestVoteFlow(t *testing.T) {
	kv := kvstore.NewMemory()
	app := newTestApp(t, kv, poll.ModeLedger)

	// slider -> name
	send(t, app, tea.KeyMsg{Type: tea.KeyTab})
	if app.focus != focusName {
		t.Fatalf("expected name focus, got %d", app.focus)
	}
	send(t, app, runes("Alice"))
	if got := app.name.Value(); got != "Alice" {
		t.Fatalf("expected typed name, got %q", got)
	}

	// Keys that are commands elsewhere are text in the name field
	send(t, app, runes("q"))
	if got := app.name.Value(); got != "Aliceq" {
		t.Fatalf("expected q to be typed, got %q", got)
	}
	send(t, app, tea.KeyMsg{Type: tea.KeyBackspace})

	// Voting without a choice
	send(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.status != "Please choose an option before voting." {
		t.Fatalf("unexpected status %q", app.status)
	}

	send(t, app, tea.KeyMsg{Type: tea.KeyTab}, runes("1"), tea.KeyMsg{Type: tea.KeyEnter})
	if app.choice != poll.Agree {
		t.Fatalf("expected agree selected, got %q", app.choice)
	}
	if app.status != "Thanks for voting, Alice! Your answer was saved on this device." {
		t.Fatalf("unexpected status %q", app.status)
	}
	if app.tally.Agree != 1 || app.tally.Total() != 1 {
		t.Fatalf("unexpected tally %+v", app.tally)
	}

	send(t, app, runes("3"), tea.KeyMsg{Type: tea.KeyEnter})
	if app.status != "Alice, your vote was changed from Agree to Disagree." {
		t.Fatalf("unexpected status %q", app.status)
	}
	if app.tally.Agree != 0 || app.tally.Disagree != 1 {
		t.Fatalf("unexpected tally %+v", app.tally)
	}
	if !strings.Contains(app.View(), "1 (100%)") {
		t.Errorf("view should show the disagree count and percentage")
	}

	send(t, app, runes("x"))
	if app.status != "Vote cleared for Alice." {
		t.Fatalf("unexpected status %q", app.status)
	}
	if app.tally.Total() != 0 {
		t.Fatalf("expected empty tally, got %+v", app.tally)
	}

	// A fresh app on the same store sees the persisted state
	send(t, app, runes("2"), tea.KeyMsg{Type: tea.KeyEnter})
	again := newTestApp(t, kv, poll.ModeLedger)
	if again.tally.Neutral != 1 {
		t.Fatalf("expected persisted neutral vote, got %+v", again.tally)
	}
}

func TestEmptyNameIsRejected(t *testing.T) {
	app := newTestApp(t, kvstore.NewMemory(), poll.ModeLedger)
	send(t, app, runes("2"), tea.KeyMsg{Type: tea.KeyEnter})
	if app.status != "Please enter your name before voting." {
		t.Fatalf("unexpected status %q", app.status)
	}
}

func TestCounterModeApp(t *testing.T) {
	app := newTestApp(t, kvstore.NewMemory(), poll.ModeCounter)
	send(t, app, runes("1"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	if app.tally.Agree != 2 {
		t.Fatalf("counter mode should count every vote, got %+v", app.tally)
	}
	send(t, app, runes("x"))
	if app.status != "Poll results cleared for this browser." || app.tally.Total() != 0 {
		t.Fatalf("unexpected state after clear: %q %+v", app.status, app.tally)
	}
}

func TestThemeToggle(t *testing.T) {
	kv := kvstore.NewMemory()
	app := newTestApp(t, kv, poll.ModeLedger)
	if app.theme != theme.Dark {
		t.Fatalf("expected dark default, got %s", app.theme)
	}
	if !strings.Contains(app.View(), "🌙 Dark") {
		t.Errorf("view should show the dark theme label")
	}

	send(t, app, runes("t"))
	if app.theme != theme.Light {
		t.Fatalf("expected light after toggle, got %s", app.theme)
	}
	if !strings.Contains(app.View(), "☀️ Light") {
		t.Errorf("view should show the light theme label")
	}

	if got := newTestApp(t, kv, poll.ModeLedger).theme; got != theme.Light {
		t.Fatalf("expected persisted light theme, got %s", got)
	}
}

func TestFocusCycle(t *testing.T) {
	app := newTestApp(t, kvstore.NewMemory(), poll.ModeLedger)
	expected := []focus{focusName, focusChoices, focusSlider}
	for _, want := range expected {
		send(t, app, tea.KeyMsg{Type: tea.KeyTab})
		if app.focus != want {
			t.Fatalf("expected focus %d, got %d", want, app.focus)
		}
	}
	send(t, app, tea.KeyMsg{Type: tea.KeyShiftTab})
	if app.focus != focusChoices {
		t.Fatalf("expected shift+tab to go back, got %d", app.focus)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		app := newTestApp(t, kvstore.NewMemory(), poll.ModeLedger)
		cmd := send(t, app, msg)
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", msg)
		}
	}
}

type downStore struct{}

func (downStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk unavailable")
}

func (downStore) Set(context.Context, string, string) error {
	return errors.New("disk unavailable")
}

func TestUnavailableStorageKeepsWorking(t *testing.T) {
	app := newTestApp(t, kvstore.Fallback(downStore{}), poll.ModeLedger)
	send(t, app, tea.KeyMsg{Type: tea.KeyTab}, runes("Bo"), tea.KeyMsg{Type: tea.KeyTab}, runes("2"), tea.KeyMsg{Type: tea.KeyEnter})
	if app.tally.Neutral != 1 {
		t.Fatalf("expected in-memory vote, got %+v", app.tally)
	}
	send(t, app, runes("t"))
	if app.theme != theme.Light {
		t.Fatalf("expected theme toggle to work in memory, got %s", app.theme)
	}
}

func TestNewAppRejectsUnknownMode(t *testing.T) {
	if _, err := NewApp(context.Background(), kvstore.NewMemory(), "plurality", nil); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
