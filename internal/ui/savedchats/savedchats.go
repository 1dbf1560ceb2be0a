// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package savedchats provides the chat history page: the persisted
// transcript with its clear-history control.
package savedchats

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chefgpt/chefgpt-tui/internal/model"
	"github.com/chefgpt/chefgpt-tui/internal/session"
	"github.com/chefgpt/chefgpt-tui/internal/ui/components"
	"github.com/chefgpt/chefgpt-tui/internal/ui/styles"
)

// ChatClearedMsg tells the root model the transcript was cleared, so any
// in-flight generation on the home page can be invalidated.
type ChatClearedMsg struct{}

// =============================================================================
// SAVED CHATS MODEL
// =============================================================================

// Model is the Bubble Tea model for the saved chats page.
type Model struct {
	theme *styles.Theme
	sess  *session.Session

	transcript *components.TranscriptViewport
	count      int

	width   int
	height  int
	focused bool
}

// New creates the saved chats page model.
func New(theme *styles.Theme, sess *session.Session) *Model {
	m := &Model{
		theme:      theme,
		sess:       sess,
		transcript: components.NewTranscriptViewport(theme),
		width:      80,
		height:     24,
	}
	m.Refresh()
	return m
}

// Init is a no-op.
func (m *Model) Init() tea.Cmd {
	return nil
}

// SetSize updates the page dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.transcript.SetSize(width, maxInt(height-4, 3))
	m.Refresh()
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

// Refresh re-renders the transcript from the session.
func (m *Model) Refresh() {
	messages := m.sess.Messages()
	m.count = len(messages)
	m.transcript.SetContent(renderTranscript(m.theme, messages))
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles page messages.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return nil
	}

	if key.String() == "c" {
		return m.clear()
	}
	return m.transcript.Update(msg)
}

// clear wipes the persisted transcript.
func (m *Model) clear() tea.Cmd {
	if err := m.sess.ClearChat(); err != nil {
		return func() tea.Msg {
			return components.ErrorMsg{Err: err}
		}
	}
	m.Refresh()
	return func() tea.Msg {
		return ChatClearedMsg{}
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the saved chats page.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.PageTitle.Render(fmt.Sprintf("Chat history (%d messages)", m.count)))
	b.WriteString("\n")
	b.WriteString(m.transcript.View())
	b.WriteString("\n")
	b.WriteString(m.theme.ShortcutDesc.Render("c clear history - up/down scroll"))

	style := m.theme.Panel
	if m.focused {
		style = m.theme.PanelFocused
	}
	return style.Width(m.width).Height(m.height).Render(b.String())
}

// renderTranscript renders messages with their display labels, verbatim.
func renderTranscript(theme *styles.Theme, messages []model.ChatMessage) string {
	if len(messages) == 0 {
		return theme.InputPlaceholder.Render("No chat history yet.")
	}

	var b strings.Builder
	for i, msg := range messages {
		if i > 0 {
			b.WriteString("\n")
		}
		label := theme.UserLabel
		if msg.Role == model.RoleBot {
			label = theme.BotLabel
		}
		b.WriteString(label.Render(msg.DisplayName()))
		b.WriteString("\n")
		b.WriteString(theme.MessageBody.Render(msg.Content))
		b.WriteString("\n")
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
