// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"path/filepath"

	"github.com/chefgpt/chefgpt-tui/internal/model"
)

// File names within the data directory. Fixed - the on-disk format is part
// of the application's external interface.
const (
	ChatHistoryFile  = "chat_history.json"
	SavedRecipesFile = "saved_recipes.json"
)

// =============================================================================
// CHAT STORE
// =============================================================================

// ChatStore persists the chat transcript.
type ChatStore struct {
	path string
}

// NewChatStore creates a store backed by chat_history.json in dataDir.
func NewChatStore(dataDir string) *ChatStore {
	return &ChatStore{path: filepath.Join(dataDir, ChatHistoryFile)}
}

// Path returns the backing file path.
func (s *ChatStore) Path() string {
	return s.path
}

// Load reads the full transcript. A missing file yields an empty transcript.
func (s *ChatStore) Load() ([]model.ChatMessage, error) {
	return Load(s.path, []model.ChatMessage{})
}

// Save overwrites the transcript file with the given messages.
func (s *ChatStore) Save(messages []model.ChatMessage) error {
	return Save(s.path, messages)
}

// =============================================================================
// RECIPE STORE
// =============================================================================

// RecipeStore persists the saved-recipe collection.
type RecipeStore struct {
	path string
}

// NewRecipeStore creates a store backed by saved_recipes.json in dataDir.
func NewRecipeStore(dataDir string) *RecipeStore {
	return &RecipeStore{path: filepath.Join(dataDir, SavedRecipesFile)}
}

// Path returns the backing file path.
func (s *RecipeStore) Path() string {
	return s.path
}

// Load reads the full collection. A missing file yields an empty collection.
func (s *RecipeStore) Load() ([]model.SavedRecipe, error) {
	return Load(s.path, []model.SavedRecipe{})
}

// Save overwrites the recipe file with the given collection.
func (s *RecipeStore) Save(recipes []model.SavedRecipe) error {
	return Save(s.path, recipes)
}
