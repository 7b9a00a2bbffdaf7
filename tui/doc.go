// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package tui is the terminal version of the ai-partner page: the
// human/AI balance slider, the agreement poll and the theme switch.
//
// It follows the Elm architecture of bubbletea. App holds all state,
// Update turns key presses into state changes and View renders it.
package tui
