// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/ai-partner/kvstore"
)

// Storage keys
const (
	LedgerKey  = "aiPartnerVotes"
	CounterKey = "aiPartnerPoll"
)

// Modes
const (
	ModeLedger  = "ledger"
	ModeCounter = "counter"
)

// Poll is implemented by Store and Counter
type Poll interface {
	SubmitVote(ctx context.Context, identity string, choice Choice) VoteResult
	ClearVote(ctx context.Context, identity string) ClearResult
	Tally(ctx context.Context) Tally
}

type options struct {
	key    string
	logger *slog.Logger
}

type Option func(*options)

// WithKey overrides the storage key
func WithKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.key = key
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(key string, opts []Option) options {
	o := options{key: key, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns the Poll for mode backed by kv
func New(mode string, kv kvstore.Store, opts ...Option) (Poll, error) {
	switch mode {
	case ModeLedger, "":
		return NewStore(kv, opts...), nil
	case ModeCounter:
		return NewCounter(kv, opts...), nil
	}
	return nil, fmt.Errorf("unknown poll mode %q", mode)
}
