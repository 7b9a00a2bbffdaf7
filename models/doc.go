// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitVoteRequest: name, choice
  - ClearVoteRequest: name
  - RegisterDeviceRequest: platform

# Response Types

Types for JSON responses:

  - PollResults: mode, total, total_text, options (choice, label, count, percent)
  - VoteResponse: outcome, choice, previous, message, results
  - ClearResponse: outcome, message, results
  - BalanceResponse: slider percentages and category
  - ThemeResponse: theme, icon, label
  - RegisterDeviceResponse: device_id, is_new
  - ErrorResponse: error, message

# Domain Types

  - Device: a registered device; each device has its own poll and theme storage
  - DeviceInfo: Device plus a humanized last_seen

# Constants

Platforms:

	PlatformIOS      = "ios"
	PlatformMacOS    = "macos"
	PlatformAndroid  = "android"
	PlatformWeb      = "web"
	PlatformTerminal = "terminal"
*/
package models
