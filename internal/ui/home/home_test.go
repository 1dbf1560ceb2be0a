// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package home

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefgpt/chefgpt-tui/internal/model"
	"github.com/chefgpt/chefgpt-tui/internal/session"
	"github.com/chefgpt/chefgpt-tui/internal/storage"
	"github.com/chefgpt/chefgpt-tui/internal/ui/components"
	"github.com/chefgpt/chefgpt-tui/internal/ui/styles"
)

// fakeCompleter answers recipe and nutrition prompts from a script.
type fakeCompleter struct {
	calls []string
	err   error
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.calls = append(f.calls, prompt)
	if f.err != nil {
		return "", f.err
	}
	if strings.Contains(prompt, "professional Indian chef") {
		return "## Tomato Rice\n1. Cook.", nil
	}
	return "Approx. 300 kcal per serving", nil
}

func newTestModel(t *testing.T, completer Completer) (*Model, *session.Session) {
	t.Helper()
	dir := t.TempDir()
	sess, err := session.New(storage.NewChatStore(dir), storage.NewRecipeStore(dir))
	require.NoError(t, err)
	m := New(styles.NewTheme("dark"), sess, completer)
	m.Focus()
	return m, sess
}

// drain executes a command tree and returns every message it produces.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findTurnResult(msgs []tea.Msg) (turnResultMsg, bool) {
	for _, m := range msgs {
		if r, ok := m.(turnResultMsg); ok {
			return r, true
		}
	}
	return turnResultMsg{}, false
}

func submitIngredients(t *testing.T, m *Model, ingredients string) []tea.Msg {
	t.Helper()
	m.input.SetValue(ingredients)
	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "enter with input must start a turn")
	return drain(cmd)
}

func TestSubmit_RunsBothCompletionsInOrder(t *testing.T) {
	completer := &fakeCompleter{}
	m, _ := newTestModel(t, completer)

	msgs := submitIngredients(t, m, "tomato, rice")

	result, ok := findTurnResult(msgs)
	require.True(t, ok, "expected a turn result")
	assert.Equal(t, "tomato, rice", result.ingredients)
	assert.Contains(t, result.recipe, "Tomato Rice")
	assert.Contains(t, result.nutrition, "kcal")

	require.Len(t, completer.calls, 2)
	assert.Contains(t, completer.calls[0], "tomato, rice", "recipe prompt first")
	assert.Contains(t, completer.calls[1], "Tomato Rice", "nutrition prompt consumes the recipe")
}

func TestTurnResult_AppendsWholeTurn(t *testing.T) {
	m, sess := newTestModel(t, &fakeCompleter{})

	msgs := submitIngredients(t, m, "paneer")
	result, ok := findTurnResult(msgs)
	require.True(t, ok)

	m.Update(result)

	got := sess.Messages()
	require.Len(t, got, 3)
	assert.Equal(t, model.RoleUser, got[0].Role)
	assert.Equal(t, model.RoleBot, got[1].Role)
	assert.Equal(t, model.RoleBot, got[2].Role)
	assert.False(t, m.Generating())
}

func TestTurnError_DiscardsWholeTurn(t *testing.T) {
	wantErr := errors.New("rate limited")
	m, sess := newTestModel(t, &fakeCompleter{err: wantErr})

	msgs := submitIngredients(t, m, "okra")

	var gotErr turnErrorMsg
	found := false
	for _, msg := range msgs {
		if e, ok := msg.(turnErrorMsg); ok {
			gotErr = e
			found = true
		}
	}
	require.True(t, found, "expected a turn error")

	cmd := m.Update(gotErr)
	assert.Empty(t, sess.Messages(), "failed turn must not touch the transcript")
	assert.False(t, m.Generating())

	var banner *components.ErrorMsg
	for _, msg := range drain(cmd) {
		if e, ok := msg.(components.ErrorMsg); ok {
			banner = &e
		}
	}
	require.NotNil(t, banner, "error must be reported to the banner")
	assert.ErrorIs(t, banner.Err, wantErr)
}

func TestStaleTurnResultIgnoredAfterInvalidate(t *testing.T) {
	m, sess := newTestModel(t, &fakeCompleter{})

	msgs := submitIngredients(t, m, "lentils")
	result, ok := findTurnResult(msgs)
	require.True(t, ok)

	// The user clears the chat while the turn is still in flight.
	m.InvalidateTurn()
	m.Update(result)

	assert.Empty(t, sess.Messages(), "stale completion must be dropped")
}

func TestSubmit_IgnoresBlankAndConcurrentInput(t *testing.T) {
	m, _ := newTestModel(t, &fakeCompleter{})

	m.input.SetValue("   ")
	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		for _, msg := range drain(cmd) {
			if _, ok := msg.(turnResultMsg); ok {
				t.Fatal("blank input must not start a turn")
			}
		}
	}

	submitIngredients(t, m, "rice")
	require.True(t, m.Generating())
	m.input.SetValue("more rice")
	first := m.turnID
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, first, m.turnID, "a second submit while generating must be ignored")
}

func TestView_ShowsTranscriptLabels(t *testing.T) {
	m, sess := newTestModel(t, &fakeCompleter{})
	require.NoError(t, sess.AppendTurn("rice", "a recipe", "some nutrition"))
	m.SetSize(100, 30)

	view := m.View()

	assert.Contains(t, view, "You", "user label missing")
	assert.Contains(t, view, "Chef-GPT", "bot label missing")
}

func TestGenerateTurn_ErrorMessagePropagates(t *testing.T) {
	completer := &fakeCompleter{err: fmt.Errorf("llm: generating content: boom")}
	m, _ := newTestModel(t, completer)

	msgs := drain(m.generateTurn("id", "rice"))

	require.Len(t, msgs, 1)
	e, ok := msgs[0].(turnErrorMsg)
	require.True(t, ok)
	assert.Contains(t, e.err.Error(), "boom")
}
