// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"encoding/json"
	"fmt"
)

// Ledger maps a normalized identity to that voter's single choice.
// Tallies are always derived from it.
type Ledger map[string]Choice

// DecodeLedger parses the stored JSON object. Anything that is not a JSON
// object yields an empty ledger and a non-nil error so the caller can log the
// parse failure. Entries that are not a known choice string are dropped one
// by one; the rest of the ledger survives.
func DecodeLedger(raw string) (Ledger, error) {
	ledger := Ledger{}
	if raw == "" {
		return ledger, nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return ledger, fmt.Errorf("failed to parse vote ledger: %w", err)
	}

	for identity, value := range entries {
		var c Choice
		if err := json.Unmarshal(value, &c); err != nil {
			continue
		}
		if identity == "" || !c.Valid() {
			continue
		}
		ledger[identity] = c
	}
	return ledger, nil
}

// Encode serializes the ledger with sorted keys
func (l Ledger) Encode() (string, error) {
	if l == nil {
		l = Ledger{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("failed to encode vote ledger: %w", err)
	}
	return string(data), nil
}

// Tally counts ledger entries per choice
func (l Ledger) Tally() Tally {
	var t Tally
	for _, c := range l {
		t.add(c, 1)
	}
	return t
}

func (l Ledger) clone() Ledger {
	out := make(Ledger, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
