// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package llm holds the prompt templates and the Gemini completion client.
//
// Each chat turn makes two completions: one for the recipe, one for the
// nutrition estimate derived from that recipe. Calls are synchronous with
// no retry and no streaming; errors propagate to the view layer.
package llm
