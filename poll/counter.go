// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"github.com/danielhkuo/ai-partner/kvstore"
)

// Counter is the anonymous poll mode: every vote increments its choice,
// there is no de-duplication, and clearing resets all counts. The name is
// only used to personalise the message.
//
// A Counter is not safe for concurrent use.
type Counter struct {
	options
	kv     kvstore.Store
	counts Tally
	// loaded is set once kv has been read; until then a read failure
	// makes the counter memory-only
	loaded   bool
	degraded bool
}

func NewCounter(kv kvstore.Store, opts ...Option) *Counter {
	return &Counter{options: newOptions(CounterKey, opts), kv: kv}
}

func (c *Counter) SubmitVote(ctx context.Context, identity string, choice Choice) VoteResult {
	if !choice.Valid() {
		return missingChoiceVote()
	}

	counts := c.load(ctx)
	counts.add(choice, 1)
	c.counts = counts
	c.save(ctx)

	c.logger.Info("anonymous vote counted", "choice", choice, "total", counts.Total())
	return recordedVote(strings.TrimSpace(identity), choice, "")
}

// ClearVote resets every count; identity is ignored
func (c *Counter) ClearVote(ctx context.Context, _ string) ClearResult {
	c.counts = Tally{}
	c.save(ctx)

	c.logger.Info("anonymous poll reset")
	return ClearResult{Outcome: OutcomeCleared, Message: msgCounterReset}
}

func (c *Counter) Tally(ctx context.Context) Tally {
	return c.load(ctx)
}

func (c *Counter) load(ctx context.Context) Tally {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		c.logger.Warn("poll counts unavailable, continuing in memory", "key", c.key, "error", err)
		if !c.loaded {
			c.degraded = true
		}
		return c.counts
	}
	c.loaded, c.degraded = true, false
	if !ok {
		c.counts = Tally{}
		return c.counts
	}
	c.counts = decodeCounts(raw)
	return c.counts
}

func (c *Counter) save(ctx context.Context) {
	if c.degraded {
		c.logger.Warn("poll counts not loaded, keeping change in memory", "key", c.key)
		return
	}
	data, err := json.Marshal(c.counts)
	if err != nil {
		c.logger.Error("failed to encode poll counts", "error", err)
		return
	}
	if err := c.kv.Set(ctx, c.key, string(data)); err != nil {
		c.logger.Warn("poll counts not persisted, continuing in memory", "key", c.key, "error", err)
	}
}

// decodeCounts reads {"agree":n,...}; malformed data and missing or
// non-numeric fields count as zero.
func decodeCounts(raw string) Tally {
	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return Tally{}
	}
	return Tally{
		Agree:    countField(fields["agree"]),
		Neutral:  countField(fields["neutral"]),
		Disagree: countField(fields["disagree"]),
	}
}

func countField(v interface{}) int {
	n, ok := v.(float64)
	if !ok || n <= 0 || math.IsInf(n, 0) || n > math.MaxInt32 {
		return 0
	}
	return int(n)
}
