// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chefgpt/chefgpt-tui/internal/ui/styles"
	"github.com/chefgpt/chefgpt-tui/internal/util"
)

// =============================================================================
// PAGES
// =============================================================================

// Page identifies one of the four application pages.
type Page int

const (
	PageHome Page = iota
	PageRecipes
	PageSavedChats
	PageIngredients
)

// Pages lists every page in sidebar order.
var Pages = []Page{PageHome, PageRecipes, PageSavedChats, PageIngredients}

// Title returns the sidebar label for the page.
func (p Page) Title() string {
	switch p {
	case PageHome:
		return "Home"
	case PageRecipes:
		return "Recipes"
	case PageSavedChats:
		return "Saved Chats"
	case PageIngredients:
		return "Ingredients"
	default:
		return "Unknown"
	}
}

// PageSelectedMsg is emitted when the user activates a sidebar entry.
type PageSelectedMsg struct {
	Page Page
}

// =============================================================================
// SIDEBAR COMPONENT
// =============================================================================

// Sidebar is the page navigation list. The cursor moves independently of the
// active page; enter activates the entry under the cursor.
type Sidebar struct {
	theme   *styles.Theme
	cursor  int
	active  Page
	focused bool
	width   int
	height  int
}

// NewSidebar creates a sidebar with Home active.
func NewSidebar(theme *styles.Theme) *Sidebar {
	return &Sidebar{
		theme:  theme,
		width:  22,
		height: 20,
	}
}

// SetSize updates the sidebar dimensions.
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Focus gives the sidebar keyboard focus.
func (s *Sidebar) Focus() { s.focused = true }

// Blur removes keyboard focus.
func (s *Sidebar) Blur() { s.focused = false }

// Focused reports whether the sidebar has keyboard focus.
func (s *Sidebar) Focused() bool { return s.focused }

// Active returns the currently active page.
func (s *Sidebar) Active() Page { return s.active }

// SetActive marks a page active and moves the cursor to it. Used for direct
// page jumps that bypass the sidebar.
func (s *Sidebar) SetActive(p Page) {
	s.active = p
	s.cursor = int(p)
}

// Update handles navigation keys while the sidebar is focused.
func (s *Sidebar) Update(msg tea.Msg) tea.Cmd {
	if !s.focused {
		return nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(Pages)-1 {
			s.cursor++
		}
	case "enter":
		page := Pages[s.cursor]
		s.active = page
		return func() tea.Msg {
			return PageSelectedMsg{Page: page}
		}
	}
	return nil
}

// View renders the sidebar.
func (s *Sidebar) View() string {
	var b strings.Builder
	b.WriteString(s.theme.HeaderTitle.Render("Chef-GPT"))
	b.WriteString("\n\n")

	// Labels are padded to a common width so the selected-row highlight
	// spans the full column, not just the word.
	labelWidth := s.width - 8
	for i, page := range Pages {
		label := util.PadRight(page.Title(), labelWidth)
		switch {
		case i == s.cursor && s.focused:
			label = s.theme.SidebarItemSelected.Render(label)
		case page == s.active:
			label = s.theme.SidebarItem.Bold(true).Render(label)
		default:
			label = s.theme.SidebarItem.Render(label)
		}
		b.WriteString(label)
		if i < len(Pages)-1 {
			b.WriteString("\n")
		}
	}

	style := s.theme.Sidebar
	if s.focused {
		style = s.theme.SidebarFocused
	}
	return style.Width(s.width).Height(s.height).Render(b.String())
}
