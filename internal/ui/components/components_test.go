// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chefgpt/chefgpt-tui/internal/ui/styles"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// =============================================================================
// SIDEBAR TESTS
// =============================================================================

func TestPage_Titles(t *testing.T) {
	want := []string{"Home", "Recipes", "Saved Chats", "Ingredients"}
	for i, page := range Pages {
		if page.Title() != want[i] {
			t.Errorf("Pages[%d].Title() = %q, want %q", i, page.Title(), want[i])
		}
	}
}

func TestSidebar_NavigateAndSelect(t *testing.T) {
	s := NewSidebar(styles.NewTheme("dark"))
	s.Focus()

	s.Update(keyMsg("down"))
	s.Update(keyMsg("down"))
	cmd := s.Update(keyMsg("enter"))

	if cmd == nil {
		t.Fatal("enter must produce a selection command")
	}
	msg, ok := cmd().(PageSelectedMsg)
	if !ok {
		t.Fatalf("command produced %T, want PageSelectedMsg", cmd())
	}
	if msg.Page != PageSavedChats {
		t.Errorf("selected page = %v, want PageSavedChats", msg.Page)
	}
	if s.Active() != PageSavedChats {
		t.Errorf("Active() = %v", s.Active())
	}
}

func TestSidebar_CursorStaysInBounds(t *testing.T) {
	s := NewSidebar(styles.NewTheme("dark"))
	s.Focus()

	for i := 0; i < 10; i++ {
		s.Update(keyMsg("up"))
	}
	if cmd := s.Update(keyMsg("enter")); cmd != nil {
		if msg := cmd().(PageSelectedMsg); msg.Page != PageHome {
			t.Errorf("cursor above the list selected %v", msg.Page)
		}
	}

	for i := 0; i < 10; i++ {
		s.Update(keyMsg("down"))
	}
	if cmd := s.Update(keyMsg("enter")); cmd != nil {
		if msg := cmd().(PageSelectedMsg); msg.Page != PageIngredients {
			t.Errorf("cursor below the list selected %v", msg.Page)
		}
	}
}

func TestSidebar_PadsLabelsToColumnWidth(t *testing.T) {
	s := NewSidebar(styles.NewTheme("dark"))
	s.SetSize(22, 20)

	// "Home" padded to the 14-column label width (22 minus chrome).
	if !strings.Contains(s.View(), "Home          ") {
		t.Error("labels must be padded so row highlights span the column")
	}
}

func TestSidebar_IgnoresKeysWhenBlurred(t *testing.T) {
	s := NewSidebar(styles.NewTheme("dark"))
	s.Blur()

	if cmd := s.Update(keyMsg("enter")); cmd != nil {
		t.Error("blurred sidebar must not react to keys")
	}
}

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusBar_ShowsStatusAndShortcuts(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme("dark"))
	sb.SetWidth(100)
	sb.Status = StatusGenerating
	sb.ModelName = "gemini-1.5-pro-002"

	view := sb.View()

	if !strings.Contains(view, "Generating...") {
		t.Error("status text missing")
	}
	if !strings.Contains(view, "ctrl+c") {
		t.Error("quit shortcut missing")
	}
}

// =============================================================================
// ERROR BANNER TESTS
// =============================================================================

func TestErrorBanner_ShowAndClear(t *testing.T) {
	b := NewErrorBanner(styles.NewTheme("dark"))
	b.SetWidth(80)

	if b.Visible() {
		t.Error("new banner must be hidden")
	}

	b.Show("generating content: rate limited")
	if !b.Visible() {
		t.Error("banner must be visible after Show")
	}
	if !strings.Contains(b.View(), "rate limited") {
		t.Errorf("banner view missing message: %q", b.View())
	}

	b.Clear()
	if b.Visible() || b.View() != "" {
		t.Error("cleared banner must render nothing")
	}
}

func TestErrorBanner_KeepsFirstLineOnly(t *testing.T) {
	b := NewErrorBanner(styles.NewTheme("dark"))
	b.SetWidth(80)

	b.Show("first line\nsecond line")

	if strings.Contains(b.View(), "second") {
		t.Error("banner must collapse multi-line errors to the first line")
	}
}

func TestErrorBanner_CapsStoredMessageLength(t *testing.T) {
	b := NewErrorBanner(styles.NewTheme("dark"))
	b.SetWidth(80)

	b.Show(strings.Repeat("x", 5000))

	if got := len([]rune(b.message)); got > maxMessageRunes {
		t.Errorf("stored message is %d runes, want at most %d", got, maxMessageRunes)
	}
}

// =============================================================================
// VIEWPORT TESTS
// =============================================================================

func TestWrapContent_ShortLinesUntouched(t *testing.T) {
	in := "one\ntwo three"
	if got := wrapContent(in, 40); got != in {
		t.Errorf("wrapContent = %q, want unchanged", got)
	}
}

func TestWrapContent_BreaksAtWordBoundaries(t *testing.T) {
	got := wrapContent("alpha beta gamma delta", 11)

	for _, line := range strings.Split(got, "\n") {
		if w := len(line); w > 11 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if !strings.Contains(got, "\n") {
		t.Error("expected at least one wrap")
	}
}

func TestTranscriptViewport_AutoScrollDisabledByScrollUp(t *testing.T) {
	tv := NewTranscriptViewport(styles.NewTheme("dark"))
	tv.SetSize(40, 5)
	tv.SetContent(strings.Repeat("line\n", 50))

	if !tv.AtBottom() {
		t.Fatal("new content must land at the bottom")
	}

	tv.Update(keyMsg("up"))
	tv.SetContent(strings.Repeat("line\n", 60))
	if tv.AtBottom() {
		t.Error("user scroll position must survive new content")
	}

	tv.GotoBottom()
	if !tv.AtBottom() {
		t.Error("GotoBottom must restore pinning")
	}
}
