// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/chefgpt/chefgpt-tui/internal/model"
	"github.com/chefgpt/chefgpt-tui/internal/storage"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrIncompleteRecipe is returned by AddRecipe when any of the three
	// recipe fields is empty or whitespace.
	ErrIncompleteRecipe = errors.New("session: recipe requires a name, ingredients, and instructions")

	// ErrIndexOutOfRange is returned by DeleteRecipe for a position outside
	// the current collection.
	ErrIndexOutOfRange = errors.New("session: recipe index out of range")
)

// =============================================================================
// SESSION
// =============================================================================

// Session is the live application state. All mutations write to disk first
// and only commit to memory when the write succeeds, so memory never runs
// ahead of the files.
type Session struct {
	mu sync.Mutex

	chatStore   *storage.ChatStore
	recipeStore *storage.RecipeStore

	// onPersist, when set, is called with the data file's base name just
	// before each save. The watcher uses it to tell this session's writes
	// apart from external ones, so the mark must land before the write does.
	onPersist func(file string)

	messages []model.ChatMessage
	recipes  []model.SavedRecipe
}

// New creates a session by loading both data files. Missing files yield
// empty state; unreadable ones are a startup error.
func New(chatStore *storage.ChatStore, recipeStore *storage.RecipeStore) (*Session, error) {
	messages, err := chatStore.Load()
	if err != nil {
		return nil, fmt.Errorf("session: loading chat history: %w", err)
	}
	recipes, err := recipeStore.Load()
	if err != nil {
		return nil, fmt.Errorf("session: loading saved recipes: %w", err)
	}

	return &Session{
		chatStore:   chatStore,
		recipeStore: recipeStore,
		messages:    messages,
		recipes:     recipes,
	}, nil
}

// SetPersistHook registers a callback invoked with the data file's base name
// just before each save. Reloads do not trigger it.
func (s *Session) SetPersistHook(fn func(file string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPersist = fn
}

// notifyPersist runs the persist hook. Callers hold s.mu.
func (s *Session) notifyPersist(file string) {
	if s.onPersist != nil {
		s.onPersist(file)
	}
}

// =============================================================================
// READ ACCESS
// =============================================================================

// Messages returns a copy of the chat transcript in insertion order.
func (s *Session) Messages() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Recipes returns a copy of the saved recipe collection in insertion order.
func (s *Session) Recipes() []model.SavedRecipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.SavedRecipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// =============================================================================
// CHAT MUTATIONS
// =============================================================================

// AppendTurn records a completed chat turn: the user's ingredient list
// followed by the recipe and nutrition responses. The turn lands as a unit
// or not at all.
func (s *Session) AppendTurn(ingredients, recipe, nutrition string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.ChatMessage, 0, len(s.messages)+3)
	next = append(next, s.messages...)
	next = append(next,
		model.NewUserMessage(ingredients),
		model.NewBotMessage(recipe),
		model.NewBotMessage(nutrition),
	)

	s.notifyPersist(storage.ChatHistoryFile)
	if err := s.chatStore.Save(next); err != nil {
		return fmt.Errorf("session: saving chat history: %w", err)
	}
	s.messages = next
	return nil
}

// ClearChat empties the transcript and persists the empty state.
func (s *Session) ClearChat() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifyPersist(storage.ChatHistoryFile)
	if err := s.chatStore.Save([]model.ChatMessage{}); err != nil {
		return fmt.Errorf("session: clearing chat history: %w", err)
	}
	s.messages = nil
	return nil
}

// ReloadChat re-reads the transcript from disk, replacing the in-memory
// copy. Used when the data file changes underneath the running process.
func (s *Session) ReloadChat() error {
	messages, err := s.chatStore.Load()
	if err != nil {
		return fmt.Errorf("session: reloading chat history: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = messages
	return nil
}

// =============================================================================
// RECIPE MUTATIONS
// =============================================================================

// AddRecipe appends a recipe to the collection. Duplicates are permitted;
// incomplete recipes are not.
func (s *Session) AddRecipe(r model.SavedRecipe) error {
	if !r.IsComplete() {
		return ErrIncompleteRecipe
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.SavedRecipe, 0, len(s.recipes)+1)
	next = append(next, s.recipes...)
	next = append(next, r)

	s.notifyPersist(storage.SavedRecipesFile)
	if err := s.recipeStore.Save(next); err != nil {
		return fmt.Errorf("session: saving recipes: %w", err)
	}
	s.recipes = next
	return nil
}

// DeleteRecipe removes the recipe at position i, shifting later entries
// down. Deletion is by position, not by name, so duplicates are unaffected.
func (s *Session) DeleteRecipe(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.recipes) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(s.recipes))
	}

	next := make([]model.SavedRecipe, 0, len(s.recipes)-1)
	next = append(next, s.recipes[:i]...)
	next = append(next, s.recipes[i+1:]...)

	s.notifyPersist(storage.SavedRecipesFile)
	if err := s.recipeStore.Save(next); err != nil {
		return fmt.Errorf("session: saving recipes: %w", err)
	}
	s.recipes = next
	return nil
}

// ReloadRecipes re-reads the recipe collection from disk.
func (s *Session) ReloadRecipes() error {
	recipes, err := s.recipeStore.Load()
	if err != nil {
		return fmt.Errorf("session: reloading saved recipes: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = recipes
	return nil
}
