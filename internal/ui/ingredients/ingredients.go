// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ingredients provides the pantry reference page. It is a static
// browsing aid; ingredient entry happens on the home page.
package ingredients

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chefgpt/chefgpt-tui/internal/ui/styles"
)

// pantry is a starter list of staples for Indian cooking, grouped loosely
// by how they are used.
var pantry = []struct {
	group string
	items []string
}{
	{"Grains & lentils", []string{"basmati rice", "toor dal", "chana dal", "atta flour"}},
	{"Spices", []string{"cumin seeds", "mustard seeds", "turmeric", "garam masala", "red chili powder"}},
	{"Aromatics", []string{"onion", "garlic", "ginger", "green chili", "curry leaves"}},
	{"Fats & dairy", []string{"ghee", "paneer", "yogurt"}},
}

// =============================================================================
// INGREDIENTS MODEL
// =============================================================================

// Model is the Bubble Tea model for the ingredients page.
type Model struct {
	theme   *styles.Theme
	width   int
	height  int
	focused bool
}

// New creates the ingredients page model.
func New(theme *styles.Theme) *Model {
	return &Model{
		theme:  theme,
		width:  80,
		height: 24,
	}
}

// Init is a no-op.
func (m *Model) Init() tea.Cmd {
	return nil
}

// SetSize updates the page dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focus gives the page keyboard focus.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return nil
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.focused = false
}

// Update ignores all messages; the page is static.
func (m *Model) Update(tea.Msg) tea.Cmd {
	return nil
}

// View renders the pantry reference.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.PageTitle.Render("Pantry staples"))
	b.WriteString("\n")
	b.WriteString(m.theme.ShortcutDesc.Render("Type any of these on the Home page to get a recipe."))
	b.WriteString("\n\n")

	for i, g := range pantry {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.theme.InputLabel.Render(g.group))
		b.WriteString("\n")
		b.WriteString(m.theme.MessageBody.Render(strings.Join(g.items, ", ")))
	}

	style := m.theme.Panel
	if m.focused {
		style = m.theme.PanelFocused
	}
	return style.Width(m.width).Height(m.height).Render(b.String())
}
