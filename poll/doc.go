// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poll implements the agree/neutral/disagree poll.

# Ledger Mode

Store keeps one choice per voter. Names are trimmed and lower-cased, so
"Alice" and " alice " are the same voter:

	store := poll.NewStore(kv)
	res := store.SubmitVote(ctx, "Alice", poll.Agree)    // recorded
	res = store.SubmitVote(ctx, "alice", poll.Agree)     // already_recorded
	res = store.SubmitVote(ctx, "alice", poll.Disagree)  // recorded, Previous=agree

The ledger is stored under LedgerKey as a JSON object:

	{"alice":"disagree","bob":"neutral"}

Unreadable data is treated as an empty ledger and overwritten by the next vote.

# Counter Mode

Counter keeps anonymous counts under CounterKey, {"agree":3,"neutral":1,"disagree":0}.
Every vote increments and ClearVote resets all counts.

# Results

Validation problems are result variants, never errors:

  - empty_identity: name missing (ledger mode)
  - missing_choice: no valid choice
  - recorded / already_recorded
  - cleared / not_found

Every result carries a Message for display.

# Percentages

	pct := poll.Percentage(tally, poll.Agree)

Each choice is rounded independently; 1/1/1 shows 33/33/33.
*/
package poll
