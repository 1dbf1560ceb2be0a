// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides flat-file JSON persistence for the chat
// transcript and the saved-recipe collection.
//
// Each collection lives in its own file as a single top-level JSON array,
// written in full on every mutation with 4-space indentation. There is no
// schema version field and no migration support. Writes go through an
// atomic temp-file-and-rename so a crash mid-write never truncates a file,
// but concurrent processes sharing the files remain last-writer-wins; the
// Watcher lets a session notice external rewrites and reload.
package storage
