// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages and saved
// recipes.
//
// The types here map one-to-one onto the persisted JSON documents: a chat
// transcript is a flat array of ChatMessage, and the recipe collection is a
// flat array of SavedRecipe. Neither carries identifiers or timestamps -
// the wire format is fixed and not migration-aware.
package model
