// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the live application state: the chat transcript and
// the saved recipe collection, backed by their JSON stores.
//
// # Key Types
//
//   - Session: Mutex-guarded state with persist-through mutations
//
// # Usage
//
// Create a session from the two stores:
//
//	sess, err := session.New(chatStore, recipeStore)
//
// Every mutation persists before it is committed to memory, so a failed
// write leaves the in-memory state untouched:
//
//	err := sess.AppendTurn(ingredients, recipe, nutrition)
//
// External edits to the data files are absorbed with ReloadChat and
// ReloadRecipes.
package session
