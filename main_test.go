// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefgpt/chefgpt-tui/internal/config"
	"github.com/chefgpt/chefgpt-tui/internal/llm"
	"github.com/chefgpt/chefgpt-tui/internal/session"
	"github.com/chefgpt/chefgpt-tui/internal/storage"
	"github.com/chefgpt/chefgpt-tui/internal/ui/components"
	"github.com/chefgpt/chefgpt-tui/internal/ui/home"
	"github.com/chefgpt/chefgpt-tui/internal/ui/styles"
)

func newTestApp(t *testing.T) *Model {
	t.Helper()
	dir := t.TempDir()

	sess, err := session.New(storage.NewChatStore(dir), storage.NewRecipeStore(dir))
	require.NoError(t, err)

	watcher, err := storage.NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { watcher.Close() })

	cfg := config.Default()
	cfg.DataDir = dir

	m := NewModel(styles.NewTheme("dark"), cfg, sess, watcher, llm.NewClient(llm.Config{}))
	m.resize(100, 30)
	return m
}

func pressKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func TestNewModel_StartsOnHomeWithSidebarFocused(t *testing.T) {
	m := newTestApp(t)

	assert.Equal(t, components.PageHome, m.sidebar.Active())
	assert.True(t, m.sidebar.Focused())
}

func TestDigitKeys_JumpToPage(t *testing.T) {
	m := newTestApp(t)

	pressKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})

	assert.Equal(t, components.PageRecipes, m.sidebar.Active())
	assert.False(t, m.sidebar.Focused(), "focus must move into the page")
}

func TestTab_MovesFocusIntoActivePage(t *testing.T) {
	m := newTestApp(t)

	pressKey(m, tea.KeyMsg{Type: tea.KeyTab})

	assert.False(t, m.sidebar.Focused())
}

func TestEsc_ReturnsFocusToSidebar(t *testing.T) {
	m := newTestApp(t)
	pressKey(m, tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, m.sidebar.Focused())

	pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.sidebar.Focused())
}

func TestErrorMsg_ShowsBannerUntilDismissed(t *testing.T) {
	m := newTestApp(t)

	m.Update(components.ErrorMsg{Err: errors.New("completion failed")})

	require.True(t, m.banner.Visible())
	assert.Equal(t, components.StatusError, m.statusBar.Status)
	assert.Contains(t, m.View(), "completion failed")

	// First esc dismisses the banner, not the page focus.
	pressKey(m, tea.KeyMsg{Type: tea.KeyTab})
	pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.banner.Visible())
	assert.False(t, m.sidebar.Focused())
	assert.Equal(t, components.StatusReady, m.statusBar.Status)
}

func TestGeneratingMsg_TogglesStatus(t *testing.T) {
	m := newTestApp(t)

	m.Update(home.GeneratingMsg{Active: true})
	assert.Equal(t, components.StatusGenerating, m.statusBar.Status)

	m.Update(home.GeneratingMsg{Active: false})
	assert.Equal(t, components.StatusReady, m.statusBar.Status)
}

func TestCtrlC_Quits(t *testing.T) {
	m := newTestApp(t)

	cmd := pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_RendersEveryRegion(t *testing.T) {
	m := newTestApp(t)

	view := m.View()

	assert.Contains(t, view, "Chef-GPT")
	assert.Contains(t, view, "Home")
	assert.Contains(t, view, "Recipes")
}
