// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package category maps the human/AI balance slider (0-100, AI share) to one
// of five named buckets and computes the complementary human/AI percentages.
package category
