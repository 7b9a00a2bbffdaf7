// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Platform constants
const (
	PlatformIOS      = "ios"
	PlatformMacOS    = "macos"
	PlatformAndroid  = "android"
	PlatformWeb      = "web"
	PlatformTerminal = "terminal"
)

// Request types

type SubmitVoteRequest struct {
	Name   string `json:"name"`
	Choice string `json:"choice"`
}

type ClearVoteRequest struct {
	Name string `json:"name"`
}

type RegisterDeviceRequest struct {
	Platform string `json:"platform"`
}

// Response types

type OptionResult struct {
	Choice  string `json:"choice"`
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

type PollResults struct {
	Mode      string         `json:"mode"`
	Total     int            `json:"total"`
	TotalText string         `json:"total_text"` // e.g. "1,204 votes"
	Options   []OptionResult `json:"options"`
}

type VoteResponse struct {
	Outcome  string      `json:"outcome"`
	Choice   string      `json:"choice,omitempty"`
	Previous string      `json:"previous,omitempty"`
	Message  string      `json:"message"`
	Results  PollResults `json:"results"`
}

type ClearResponse struct {
	Outcome string      `json:"outcome"`
	Message string      `json:"message"`
	Results PollResults `json:"results"`
}

type BalanceResponse struct {
	Value       float64 `json:"value"`
	HumanPct    int     `json:"human_pct"`
	AIPct       int     `json:"ai_pct"`
	HumanLabel  string  `json:"human_label"` // "Human 70%"
	AILabel     string  `json:"ai_label"`    // "AI 30%"
	Key         string  `json:"key"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

type RegisterDeviceResponse struct {
	DeviceID string `json:"device_id"`
	IsNew    bool   `json:"is_new"`
}

// Domain types

// Device is stored as JSON under devices/<uuid>
type Device struct {
	ID         string    `json:"id"`
	Platform   string    `json:"platform"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

type DeviceInfo struct {
	Device
	LastSeen string `json:"last_seen"` // humanized, e.g. "3 minutes ago"
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
