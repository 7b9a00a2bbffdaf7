// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ai-partner API.

# Handler Types

Each handler is a struct holding the key/value store it works on:

  - PollHandler: results, votes and clears for the agreement poll
  - BalanceHandler: human/AI split and category for a slider value
  - ThemeHandler: dark/light preference
  - DeviceHandler: device registration

Handlers are created via constructor functions:

	pollHandler := handlers.NewPollHandler(store, cfg)

# Device Scope

Poll and theme routes require the X-Device-UUID header. Each device sees
its own slice of the store, prefixed "device/<uuid>/", so one device's
votes and theme never mix with another's.

# Poll

	GET  /poll        → Results
	POST /poll/votes  → SubmitVote (201 recorded, 200 already recorded)
	POST /poll/clear  → ClearVote (404 when nothing was recorded)

cfg.PollMode selects the identity ledger ("ledger") or the anonymous
counter ("counter"). Every response carries a message for the voter and
the refreshed results.

# Devices

	POST /devices/register → Register
	GET  /devices/me       → GetMe

Device records are JSON under "devices/<uuid>".
*/
package handlers
