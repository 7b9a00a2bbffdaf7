// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielhkuo/ai-partner/kvstore"
)

// Store is the identity-keyed poll: one choice per normalized name, latest
// vote wins. The ledger is reloaded from kv before every operation and
// written back after every mutation without locking, so two sessions voting
// at the same moment can lose one update.
//
// A Store is not safe for concurrent use.
type Store struct {
	options
	kv kvstore.Store

	// last ledger seen; serves the session when kv is unavailable
	ledger Ledger
	// set while kv has never been read successfully; writes stay in memory
	// so a partial ledger never replaces the stored one
	degraded bool
}

func NewStore(kv kvstore.Store, opts ...Option) *Store {
	return &Store{options: newOptions(LedgerKey, opts), kv: kv}
}

// SubmitVote records choice for identity, replacing any earlier choice
func (s *Store) SubmitVote(ctx context.Context, identity string, choice Choice) VoteResult {
	name := strings.TrimSpace(identity)
	id := NormalizeIdentity(identity)
	if id == "" {
		return emptyIdentityVote()
	}
	if !choice.Valid() {
		return missingChoiceVote()
	}

	ledger := s.load(ctx)
	previous, voted := ledger[id]
	if voted && previous == choice {
		return alreadyRecordedVote(name, choice)
	}

	ledger[id] = choice
	s.save(ctx)

	s.logger.Info("vote recorded", "identity", id, "choice", choice, "previous", previous)
	return recordedVote(name, choice, previous)
}

// ClearVote removes the vote recorded for identity
func (s *Store) ClearVote(ctx context.Context, identity string) ClearResult {
	name := strings.TrimSpace(identity)
	id := NormalizeIdentity(identity)
	if id == "" {
		return ClearResult{Outcome: OutcomeEmptyIdentity, Message: msgEmptyIdentity}
	}

	ledger := s.load(ctx)
	if _, voted := ledger[id]; !voted {
		return ClearResult{
			Outcome: OutcomeNotFound,
			Message: fmt.Sprintf("No vote found for %s.", name),
		}
	}

	delete(ledger, id)
	s.save(ctx)

	s.logger.Info("vote cleared", "identity", id)
	return ClearResult{
		Outcome: OutcomeCleared,
		Message: fmt.Sprintf("Vote cleared for %s.", name),
	}
}

// Tally counts the current ledger
func (s *Store) Tally(ctx context.Context) Tally {
	return s.load(ctx).Tally()
}

// Ledger returns a copy of the current ledger
func (s *Store) Ledger(ctx context.Context) Ledger {
	return s.load(ctx).clone()
}

func (s *Store) load(ctx context.Context) Ledger {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("vote ledger unavailable, continuing in memory", "key", s.key, "error", err)
		if s.ledger == nil {
			s.ledger = Ledger{}
			s.degraded = true
		}
		return s.ledger
	}
	s.degraded = false
	if !ok {
		s.ledger = Ledger{}
		return s.ledger
	}

	ledger, err := DecodeLedger(raw)
	if err != nil {
		// replaced on the next successful write
		s.logger.Warn("discarding unreadable vote ledger", "key", s.key, "error", err)
	}
	s.ledger = ledger
	return s.ledger
}

func (s *Store) save(ctx context.Context) {
	if s.degraded {
		s.logger.Warn("vote ledger not loaded, keeping change in memory", "key", s.key)
		return
	}
	raw, err := s.ledger.Encode()
	if err != nil {
		s.logger.Error("failed to encode vote ledger", "error", err)
		return
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		s.logger.Warn("vote ledger not persisted, continuing in memory", "key", s.key, "error", err)
	}
}
