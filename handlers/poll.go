// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ai-partner/cliparse"
	"github.com/danielhkuo/ai-partner/kvstore"
	"github.com/danielhkuo/ai-partner/middleware"
	"github.com/danielhkuo/ai-partner/models"
	"github.com/danielhkuo/ai-partner/poll"
)

type PollHandler struct {
	store kvstore.Store
	cfg   cliparse.Config
}

func NewPollHandler(store kvstore.Store, cfg cliparse.Config) *PollHandler {
	return &PollHandler{store: store, cfg: cfg}
}

func (h *PollHandler) mode() string {
	if h.cfg.PollMode == "" {
		return poll.ModeLedger
	}
	return h.cfg.PollMode
}

// open resolves the device scope and builds the configured poll on it
func (h *PollHandler) open(w http.ResponseWriter, r *http.Request) (poll.Poll, bool) {
	id, scoped, ok := deviceScope(w, r, h.store)
	if !ok {
		return nil, false
	}

	p, err := poll.New(h.mode(), scoped, poll.WithLogger(slog.Default().With("device", id)))
	if err != nil {
		slog.Error("failed to build poll", "mode", h.mode(), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Poll unavailable")
		return nil, false
	}
	return p, true
}

// Results handles GET /poll
func (h *PollHandler) Results(w http.ResponseWriter, r *http.Request) {
	p, ok := h.open(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, buildResults(h.mode(), p.Tally(r.Context())))
}

// SubmitVote handles POST /poll/votes
// 201 when the vote changed the tally, 200 when it repeated the stored choice
func (h *PollHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	p, ok := h.open(w, r)
	if !ok {
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// An unparseable choice is submitted as missing so identity is still checked first
	choice, parseErr := poll.ParseChoice(req.Choice)
	res := p.SubmitVote(r.Context(), req.Name, choice)

	if res.Outcome == poll.OutcomeMissingChoice && errors.Is(parseErr, poll.ErrUnknownChoice) {
		middleware.ErrorResponse(w, http.StatusBadRequest, parseErr.Error())
		return
	}

	status := http.StatusOK
	switch {
	case res.Outcome.Invalid():
		status = http.StatusBadRequest
	case res.Outcome == poll.OutcomeRecorded:
		status = http.StatusCreated
	}

	middleware.JSONResponse(w, status, models.VoteResponse{
		Outcome:  string(res.Outcome),
		Choice:   string(res.Choice),
		Previous: string(res.Previous),
		Message:  res.Message,
		Results:  buildResults(h.mode(), p.Tally(r.Context())),
	})
}

// ClearVote handles POST /poll/clear
func (h *PollHandler) ClearVote(w http.ResponseWriter, r *http.Request) {
	p, ok := h.open(w, r)
	if !ok {
		return
	}

	var req models.ClearVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	res := p.ClearVote(r.Context(), req.Name)

	status := http.StatusOK
	switch res.Outcome {
	case poll.OutcomeEmptyIdentity:
		status = http.StatusBadRequest
	case poll.OutcomeNotFound:
		status = http.StatusNotFound
	}

	middleware.JSONResponse(w, status, models.ClearResponse{
		Outcome: string(res.Outcome),
		Message: res.Message,
		Results: buildResults(h.mode(), p.Tally(r.Context())),
	})
}

func buildResults(mode string, t poll.Tally) models.PollResults {
	total := t.Total()
	options := make([]models.OptionResult, 0, len(poll.Choices))
	for _, c := range poll.Choices {
		options = append(options, models.OptionResult{
			Choice:  string(c),
			Label:   c.Label(),
			Count:   t.Count(c),
			Percent: poll.Percentage(t, c),
		})
	}

	return models.PollResults{
		Mode:      mode,
		Total:     total,
		TotalText: t.TotalText(),
		Options:   options,
	}
}
