// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import "fmt"

// Outcome names the result variant of a vote or clear action
type Outcome string

const (
	OutcomeRecorded        Outcome = "recorded"
	OutcomeAlreadyRecorded Outcome = "already_recorded"
	OutcomeCleared         Outcome = "cleared"
	OutcomeNotFound        Outcome = "not_found"
	OutcomeEmptyIdentity   Outcome = "empty_identity"
	OutcomeMissingChoice   Outcome = "missing_choice"
)

// Invalid reports whether the outcome is a user-input validation failure
func (o Outcome) Invalid() bool {
	return o == OutcomeEmptyIdentity || o == OutcomeMissingChoice
}

// VoteResult is returned by SubmitVote. Validation failures are variants,
// not errors; Message is ready to show to the voter.
type VoteResult struct {
	Outcome Outcome
	Choice  Choice
	// Previous is the replaced choice when a Recorded vote changed an earlier one
	Previous Choice
	Message  string
}

// ClearResult is returned by ClearVote
type ClearResult struct {
	Outcome Outcome
	Message string
}

const (
	msgEmptyIdentity = "Please enter your name before voting."
	msgMissingChoice = "Please choose an option before voting."
	msgCounterReset  = "Poll results cleared for this browser."
)

func emptyIdentityVote() VoteResult {
	return VoteResult{Outcome: OutcomeEmptyIdentity, Message: msgEmptyIdentity}
}

func missingChoiceVote() VoteResult {
	return VoteResult{Outcome: OutcomeMissingChoice, Message: msgMissingChoice}
}

func recordedVote(name string, choice, previous Choice) VoteResult {
	r := VoteResult{Outcome: OutcomeRecorded, Choice: choice, Previous: previous}
	switch {
	case previous != "":
		r.Message = fmt.Sprintf("%s, your vote was changed from %s to %s.", name, previous.Label(), choice.Label())
	case name == "":
		r.Message = "Thanks for voting!"
	default:
		r.Message = fmt.Sprintf("Thanks for voting, %s! Your answer was saved on this device.", name)
	}
	return r
}

func alreadyRecordedVote(name string, choice Choice) VoteResult {
	return VoteResult{
		Outcome: OutcomeAlreadyRecorded,
		Choice:  choice,
		Message: fmt.Sprintf("%s, you already voted %s.", name, choice.Label()),
	}
}
