// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package home provides the chat page: ingredient input, recipe and
// nutrition generation, and the rendered transcript.
package home

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"

	"github.com/chefgpt/chefgpt-tui/internal/llm"
	"github.com/chefgpt/chefgpt-tui/internal/model"
	"github.com/chefgpt/chefgpt-tui/internal/session"
	"github.com/chefgpt/chefgpt-tui/internal/ui/components"
	"github.com/chefgpt/chefgpt-tui/internal/ui/styles"
)

// Completer is the single-prompt completion dependency. *llm.Client
// satisfies it; tests substitute fakes.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// =============================================================================
// MESSAGES
// =============================================================================

// turnResultMsg carries both completions of a finished turn.
type turnResultMsg struct {
	id          string
	ingredients string
	recipe      string
	nutrition   string
}

// turnErrorMsg reports a failed turn. Either completion failing discards
// the whole turn.
type turnErrorMsg struct {
	id  string
	err error
}

// GeneratingMsg tells the root model whether a turn is in flight, for the
// status bar.
type GeneratingMsg struct {
	Active bool
}

// =============================================================================
// HOME MODEL
// =============================================================================

// Model is the Bubble Tea model for the home page.
type Model struct {
	theme *styles.Theme

	sess      *session.Session
	completer Completer

	// UI components
	input      textinput.Model
	transcript *components.TranscriptViewport
	spin       spinner.Model

	// In-flight turn; only the matching result is accepted, so a clear
	// while generating drops the stale completion.
	generating bool
	turnID     string

	renderer *glamour.TermRenderer

	width   int
	height  int
	focused bool
}

// New creates the home page model.
func New(theme *styles.Theme, sess *session.Session, completer Completer) *Model {
	input := textinput.New()
	input.Placeholder = "tomato, onion, basmati rice..."
	input.Prompt = "> "
	input.PromptStyle = theme.InputLabel
	input.PlaceholderStyle = theme.InputPlaceholder
	input.CharLimit = 0

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = theme.Spinner

	m := &Model{
		theme:      theme,
		sess:       sess,
		completer:  completer,
		input:      input,
		transcript: components.NewTranscriptViewport(theme),
		spin:       spin,
		width:      80,
		height:     24,
	}
	m.initRenderer(78)
	m.Refresh()
	return m
}

// initRenderer builds the markdown renderer for the given wrap width.
// Rendering falls back to plain text when the renderer is unavailable.
func (m *Model) initRenderer(wrap int) {
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.renderer = nil
		return
	}
	m.renderer = renderer
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the page dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	// Title, input, and spinner rows are carved out of the height.
	m.transcript.SetSize(width, maxInt(height-5, 3))
	m.input.Width = maxInt(width-4, 10)
	m.initRenderer(width - 2)
	m.Refresh()
}

// Focus gives the page keyboard focus.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

// Generating reports whether a turn is in flight.
func (m *Model) Generating() bool {
	return m.generating
}

// Refresh re-renders the transcript from the session.
func (m *Model) Refresh() {
	m.transcript.SetContent(m.renderTranscript())
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles page messages.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.generating {
			return nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return cmd

	case turnResultMsg:
		if msg.id != m.turnID {
			return nil
		}
		m.generating = false
		m.turnID = ""
		if err := m.sess.AppendTurn(msg.ingredients, msg.recipe, msg.nutrition); err != nil {
			return reportError(err)
		}
		m.Refresh()
		m.transcript.GotoBottom()
		return announceGenerating(false)

	case turnErrorMsg:
		if msg.id != m.turnID {
			return nil
		}
		m.generating = false
		m.turnID = ""
		return tea.Batch(announceGenerating(false), reportError(msg.err))

	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		switch msg.String() {
		case "enter":
			return m.submit()
		case "pgup", "pgdown", "home", "end":
			return m.transcript.Update(msg)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// submit starts a new turn from the input field.
func (m *Model) submit() tea.Cmd {
	ingredients := strings.TrimSpace(m.input.Value())
	if ingredients == "" || m.generating {
		return nil
	}

	m.generating = true
	m.turnID = uuid.NewString()
	m.input.Reset()

	return tea.Batch(
		m.spin.Tick,
		announceGenerating(true),
		m.generateTurn(m.turnID, ingredients),
	)
}

// generateTurn runs both completions sequentially off the UI loop. The
// nutrition prompt consumes the recipe completion, so the calls cannot
// overlap.
func (m *Model) generateTurn(id, ingredients string) tea.Cmd {
	completer := m.completer
	return func() tea.Msg {
		ctx := context.Background()

		recipe, err := completer.Complete(ctx, llm.RecipePrompt(ingredients))
		if err != nil {
			return turnErrorMsg{id: id, err: err}
		}
		nutrition, err := completer.Complete(ctx, llm.NutritionPrompt(recipe))
		if err != nil {
			return turnErrorMsg{id: id, err: err}
		}

		return turnResultMsg{
			id:          id,
			ingredients: ingredients,
			recipe:      recipe,
			nutrition:   nutrition,
		}
	}
}

// InvalidateTurn discards any in-flight turn. Called when the transcript is
// cleared so a late completion cannot resurrect discarded context.
func (m *Model) InvalidateTurn() {
	m.generating = false
	m.turnID = ""
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the home page.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.PageTitle.Render("What's in your kitchen?"))
	b.WriteString("\n")
	b.WriteString(m.transcript.View())
	b.WriteString("\n")

	if m.generating {
		b.WriteString(m.spin.View())
		b.WriteString(m.theme.ThinkingText.Render(" Chef-GPT is cooking..."))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())

	style := m.theme.Panel
	if m.focused {
		style = m.theme.PanelFocused
	}
	return style.Width(m.width).Height(m.height).Render(b.String())
}

// renderTranscript builds the full transcript text. Bot messages render as
// markdown; user messages stay verbatim.
func (m *Model) renderTranscript() string {
	messages := m.sess.Messages()
	if len(messages) == 0 {
		return m.theme.InputPlaceholder.Render("Enter ingredients below to get a recipe.")
	}

	var b strings.Builder
	for i, msg := range messages {
		if i > 0 {
			b.WriteString("\n")
		}
		label := m.theme.UserLabel
		if msg.Role == model.RoleBot {
			label = m.theme.BotLabel
		}
		b.WriteString(label.Render(msg.DisplayName()))
		b.WriteString("\n")
		b.WriteString(m.renderBody(msg))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderBody(msg model.ChatMessage) string {
	if msg.Role != model.RoleBot || m.renderer == nil {
		return m.theme.MessageBody.Render(msg.Content)
	}
	rendered, err := m.renderer.Render(msg.Content)
	if err != nil {
		return m.theme.MessageBody.Render(msg.Content)
	}
	return strings.TrimRight(rendered, "\n")
}

// =============================================================================
// HELPERS
// =============================================================================

func reportError(err error) tea.Cmd {
	return func() tea.Msg {
		return components.ErrorMsg{Err: err}
	}
}

func announceGenerating(active bool) tea.Cmd {
	return func() tea.Msg {
		return GeneratingMsg{Active: active}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
