// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package recipes provides the recipe page: a save form and the browsable
// saved-recipe collection.
package recipes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chefgpt/chefgpt-tui/internal/model"
	"github.com/chefgpt/chefgpt-tui/internal/session"
	"github.com/chefgpt/chefgpt-tui/internal/ui/components"
	"github.com/chefgpt/chefgpt-tui/internal/ui/styles"
	"github.com/chefgpt/chefgpt-tui/internal/util"
)

// focus targets within the page, cycled with tab.
const (
	focusName = iota
	focusIngredients
	focusInstructions
	focusList
	focusCount
)

// =============================================================================
// RECIPES MODEL
// =============================================================================

// Model is the Bubble Tea model for the recipes page.
type Model struct {
	theme *styles.Theme
	sess  *session.Session

	// Save form
	name         textinput.Model
	ingredients  textarea.Model
	instructions textarea.Model

	// Collection list
	recipes []model.SavedRecipe
	cursor  int

	focusIdx   int
	savedFlash bool

	width   int
	height  int
	focused bool
}

// New creates the recipes page model.
func New(theme *styles.Theme, sess *session.Session) *Model {
	name := textinput.New()
	name.Placeholder = "Dish name"
	name.Prompt = ""
	name.PlaceholderStyle = theme.InputPlaceholder

	ingredients := textarea.New()
	ingredients.Placeholder = "Ingredients with quantities"
	ingredients.SetHeight(3)
	ingredients.ShowLineNumbers = false

	instructions := textarea.New()
	instructions.Placeholder = "Step-by-step instructions"
	instructions.SetHeight(4)
	instructions.ShowLineNumbers = false

	m := &Model{
		theme:        theme,
		sess:         sess,
		name:         name,
		ingredients:  ingredients,
		instructions: instructions,
		width:        80,
		height:       24,
	}
	m.Refresh()
	return m
}

// Init is a no-op; the page has no background work.
func (m *Model) Init() tea.Cmd {
	return nil
}

// SetSize updates the page dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	inner := maxInt(width-6, 20)
	m.name.Width = inner
	m.ingredients.SetWidth(inner)
	m.instructions.SetWidth(inner)
}

// Focus gives the page keyboard focus, starting at the name field.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.applyFocus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.focused = false
	m.name.Blur()
	m.ingredients.Blur()
	m.instructions.Blur()
}

// Refresh re-reads the collection from the session.
func (m *Model) Refresh() {
	m.recipes = m.sess.Recipes()
	if m.cursor >= len(m.recipes) {
		m.cursor = maxInt(len(m.recipes)-1, 0)
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles page messages.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m.updateInputs(msg)
	}

	switch key.String() {
	case "tab":
		m.focusIdx = (m.focusIdx + 1) % focusCount
		return m.applyFocus()
	case "shift+tab":
		m.focusIdx = (m.focusIdx + focusCount - 1) % focusCount
		return m.applyFocus()
	case "ctrl+s":
		return m.save()
	}

	if m.focusIdx == focusList {
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.recipes)-1 {
				m.cursor++
			}
		case "d", "delete":
			return m.deleteSelected()
		}
		return nil
	}

	m.savedFlash = false
	return m.updateInputs(msg)
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	cmds = append(cmds, cmd)
	m.ingredients, cmd = m.ingredients.Update(msg)
	cmds = append(cmds, cmd)
	m.instructions, cmd = m.instructions.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (m *Model) applyFocus() tea.Cmd {
	m.name.Blur()
	m.ingredients.Blur()
	m.instructions.Blur()

	switch m.focusIdx {
	case focusName:
		return m.name.Focus()
	case focusIngredients:
		return m.ingredients.Focus()
	case focusInstructions:
		return m.instructions.Focus()
	}
	return nil
}

// save validates the form and appends the recipe to the collection.
func (m *Model) save() tea.Cmd {
	recipe := model.SavedRecipe{
		Name:         strings.TrimSpace(m.name.Value()),
		Ingredients:  strings.TrimSpace(m.ingredients.Value()),
		Instructions: strings.TrimSpace(m.instructions.Value()),
	}

	if err := m.sess.AddRecipe(recipe); err != nil {
		return func() tea.Msg {
			return components.ErrorMsg{Err: err}
		}
	}

	m.name.Reset()
	m.ingredients.Reset()
	m.instructions.Reset()
	m.savedFlash = true
	m.Refresh()
	return nil
}

// deleteSelected removes the recipe under the cursor by position.
func (m *Model) deleteSelected() tea.Cmd {
	if len(m.recipes) == 0 {
		return nil
	}
	if err := m.sess.DeleteRecipe(m.cursor); err != nil {
		return func() tea.Msg {
			return components.ErrorMsg{Err: err}
		}
	}
	m.Refresh()
	return nil
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the recipes page.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.PageTitle.Render("Save a recipe"))
	b.WriteString("\n")

	b.WriteString(m.theme.InputLabel.Render("Name"))
	b.WriteString("\n")
	b.WriteString(m.name.View())
	b.WriteString("\n")
	b.WriteString(m.theme.InputLabel.Render("Ingredients"))
	b.WriteString("\n")
	b.WriteString(m.ingredients.View())
	b.WriteString("\n")
	b.WriteString(m.theme.InputLabel.Render("Instructions"))
	b.WriteString("\n")
	b.WriteString(m.instructions.View())
	b.WriteString("\n")

	if m.savedFlash {
		b.WriteString(m.theme.SuccessText.Render("Recipe saved"))
	} else {
		b.WriteString(m.theme.ShortcutDesc.Render("ctrl+s save - tab next field"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.theme.PageTitle.Render(fmt.Sprintf("Saved recipes (%d)", len(m.recipes))))
	b.WriteString("\n")
	b.WriteString(m.renderList())

	style := m.theme.Panel
	if m.focused {
		style = m.theme.PanelFocused
	}
	return style.Width(m.width).Height(m.height).Render(b.String())
}

func (m *Model) renderList() string {
	if len(m.recipes) == 0 {
		return m.theme.InputPlaceholder.Render("Nothing saved yet.")
	}

	var b strings.Builder
	for i, r := range m.recipes {
		line := fmt.Sprintf("%s - %s", r.Name, util.FirstLine(r.Ingredients))
		line = util.TruncateWidth(line, maxInt(m.width-6, 10))
		if i == m.cursor && m.focusIdx == focusList && m.focused {
			b.WriteString(m.theme.ListItemSelected.Render(line))
		} else {
			b.WriteString(m.theme.ListItem.Render(line))
		}
		if i < len(m.recipes)-1 {
			b.WriteString("\n")
		}
	}
	if m.focusIdx == focusList && m.focused {
		b.WriteString("\n")
		b.WriteString(m.theme.ShortcutDesc.Render("d delete selected"))
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
