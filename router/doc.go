// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ai-partner API.

# Route Registration

NewRouter creates a http.ServeMux with all endpoints, wrapped in CORS:

	handler := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Poll (requires X-Device-UUID):

	GET  /poll       - Counts and percentages
	POST /poll/votes - Vote or change a vote
	POST /poll/clear - Remove a vote

Slider:

	GET /balance?value=N - Human/AI split and category

Theme (requires X-Device-UUID):

	GET  /theme        - Current theme
	POST /theme/toggle - Switch dark/light

Device management:

	POST /devices/register - Register device
	GET  /devices/me       - Get device info
*/
package router
