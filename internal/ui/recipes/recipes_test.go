// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package recipes

import (
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

func newTestModel(t *testing.T) (*Model, *session.Session) {
	t.Helper()
	dir := t.TempDir()
	sess, err := session.New(storage.NewChatStore(dir), storage.NewRecipeStore(dir))
	require.NoError(t, err)
	m := New(styles.NewTheme("dark"), sess)
	m.Focus()
	return m, sess
}

func press(m *Model, key string) tea.Cmd {
	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		msg = tea.KeyMsg{Type: tea.KeyCtrlS}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	return m.Update(msg)
}

func TestSave_CompleteRecipe(t *testing.T) {
	m, sess := newTestModel(t)

	m.name.SetValue("Dal Tadka")
	m.ingredients.SetValue("toor dal, ghee, cumin")
	m.instructions.SetValue("Boil the dal, temper the spices.")

	cmd := press(m, "ctrl+s")

	assert.Nil(t, cmd, "successful save emits no error")
	got := sess.Recipes()
	require.Len(t, got, 1)
	assert.Equal(t, "Dal Tadka", got[0].Name)
	assert.Empty(t, m.name.Value(), "form must clear after save")
	assert.True(t, m.savedFlash)
}

func TestSave_IncompleteRecipeRejected(t *testing.T) {
	m, sess := newTestModel(t)

	m.name.SetValue("Dal")
	m.instructions.SetValue("boil")
	// Ingredients left empty.

	cmd := press(m, "ctrl+s")

	require.NotNil(t, cmd, "invalid save must report an error")
	msg, ok := cmd().(components.ErrorMsg)
	require.True(t, ok)
	assert.ErrorIs(t, msg.Err, session.ErrIncompleteRecipe)
	assert.Empty(t, sess.Recipes())
	assert.Equal(t, "Dal", m.name.Value(), "form must keep its values on rejection")
}

func TestTab_CyclesFocusThroughFormAndList(t *testing.T) {
	m, _ := newTestModel(t)

	require.Equal(t, focusName, m.focusIdx)
	press(m, "tab")
	require.Equal(t, focusIngredients, m.focusIdx)
	press(m, "tab")
	press(m, "tab")
	require.Equal(t, focusList, m.focusIdx)
	press(m, "tab")
	require.Equal(t, focusName, m.focusIdx, "tab wraps back to the name field")
}

func TestDelete_RemovesSelectedByPosition(t *testing.T) {
	m, sess := newTestModel(t)
	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, sess.AddRecipe(model.SavedRecipe{Name: name, Ingredients: "x", Instructions: "y"}))
	}
	m.Refresh()

	// Move to the list and select the second entry.
	m.focusIdx = focusList
	press(m, "down")
	cmd := press(m, "d")

	assert.Nil(t, cmd)
	got := sess.Recipes()
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "third", got[1].Name)
}

func TestDelete_EmptyListIsANoop(t *testing.T) {
	m, _ := newTestModel(t)
	m.focusIdx = focusList

	assert.Nil(t, press(m, "d"))
}

func TestRefresh_ClampsCursor(t *testing.T) {
	m, sess := newTestModel(t)
	for _, name := range []string{"a", "b"} {
		require.NoError(t, sess.AddRecipe(model.SavedRecipe{Name: name, Ingredients: "x", Instructions: "y"}))
	}
	m.Refresh()
	m.focusIdx = focusList
	press(m, "down")

	require.NoError(t, sess.DeleteRecipe(1))
	require.NoError(t, sess.DeleteRecipe(0))
	m.Refresh()

	assert.Equal(t, 0, m.cursor)
}

func TestView_ShowsCollection(t *testing.T) {
	m, sess := newTestModel(t)
	require.NoError(t, sess.AddRecipe(model.SavedRecipe{Name: "Kheer", Ingredients: "rice, milk", Instructions: "simmer"}))
	m.Refresh()
	m.SetSize(100, 40)

	view := m.View()

	assert.Contains(t, view, "Saved recipes (1)")
	assert.Contains(t, view, "Kheer")
}
