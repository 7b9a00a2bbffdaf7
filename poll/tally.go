// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Tally is a derived snapshot of per-choice counts. It is never persisted
// by the ledger store.
type Tally struct {
	Agree    int `json:"agree"`
	Neutral  int `json:"neutral"`
	Disagree int `json:"disagree"`
}

// Count returns the count for c, 0 for an unknown choice
func (t Tally) Count(c Choice) int {
	switch c {
	case Agree:
		return t.Agree
	case Neutral:
		return t.Neutral
	case Disagree:
		return t.Disagree
	}
	return 0
}

func (t Tally) Total() int {
	return t.Agree + t.Neutral + t.Disagree
}

// TotalText renders the total as "1 vote" or "1,234 votes"
func (t Tally) TotalText() string {
	n := t.Total()
	if n == 1 {
		return "1 vote"
	}
	return fmt.Sprintf("%s votes", humanize.Comma(int64(n)))
}

func (t *Tally) add(c Choice, n int) {
	switch c {
	case Agree:
		t.Agree += n
	case Neutral:
		t.Neutral += n
	case Disagree:
		t.Disagree += n
	}
}

// Percentage is round(100*count/total), or 0 for an empty tally.
// Every choice is rounded on its own, so the three values may sum to 99 or 101.
func Percentage(t Tally, c Choice) int {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(t.Count(c)) / float64(total)))
}
