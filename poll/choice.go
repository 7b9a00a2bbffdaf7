// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"errors"
	"strings"
)

// Choice is one of the fixed poll options
type Choice string

const (
	Agree    Choice = "agree"
	Neutral  Choice = "neutral"
	Disagree Choice = "disagree"
)

// Choices lists every option in display order
var Choices = []Choice{Agree, Neutral, Disagree}

var ErrUnknownChoice = errors.New("choice must be one of: agree, neutral, disagree")

// Valid reports whether c is one of Choices
func (c Choice) Valid() bool {
	switch c {
	case Agree, Neutral, Disagree:
		return true
	}
	return false
}

// Label is the display name, e.g. "Agree"
func (c Choice) Label() string {
	switch c {
	case Agree:
		return "Agree"
	case Neutral:
		return "Neutral"
	case Disagree:
		return "Disagree"
	}
	return string(c)
}

// ParseChoice accepts a choice in any letter case. An empty string parses to
// the zero Choice without error so callers can report MissingChoice.
func ParseChoice(s string) (Choice, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	c := Choice(s)
	if !c.Valid() {
		return "", ErrUnknownChoice
	}
	return c, nil
}

// NormalizeIdentity trims and case-folds a voter name into its ledger key
func NormalizeIdentity(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
