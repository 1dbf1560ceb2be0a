// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/chefgpt/chefgpt-tui/internal/ui/styles"
	"github.com/chefgpt/chefgpt-tui/internal/util"
)

// =============================================================================
// TRANSCRIPT VIEWPORT COMPONENT
// =============================================================================

// TranscriptViewport is a scrollable text area for the chat transcript.
// New content keeps the view pinned to the bottom until the user scrolls up;
// scrolling back to the bottom re-enables the pinning.
type TranscriptViewport struct {
	viewport   viewport.Model
	width      int
	height     int
	autoScroll bool
	theme      *styles.Theme
}

// NewTranscriptViewport creates an empty transcript viewport.
func NewTranscriptViewport(theme *styles.Theme) *TranscriptViewport {
	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle()

	return &TranscriptViewport{
		viewport:   vp,
		width:      80,
		height:     20,
		autoScroll: true,
		theme:      theme,
	}
}

// SetSize updates the viewport dimensions.
func (tv *TranscriptViewport) SetSize(width, height int) {
	tv.width = width
	tv.height = height
	tv.viewport.Width = width
	tv.viewport.Height = height
	if tv.autoScroll {
		tv.viewport.GotoBottom()
	}
}

// SetContent replaces the displayed text.
func (tv *TranscriptViewport) SetContent(content string) {
	tv.viewport.SetContent(wrapContent(content, tv.width))
	if tv.autoScroll {
		tv.viewport.GotoBottom()
	}
}

// AtBottom reports whether the view is scrolled to the bottom.
func (tv *TranscriptViewport) AtBottom() bool {
	return tv.viewport.AtBottom()
}

// GotoBottom scrolls to the bottom and re-enables auto-scroll.
func (tv *TranscriptViewport) GotoBottom() {
	tv.viewport.GotoBottom()
	tv.autoScroll = true
}

// Update handles scrolling keys.
func (tv *TranscriptViewport) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k", "pgup":
			tv.autoScroll = false
		case "end", "G":
			tv.GotoBottom()
			return nil
		}
	}

	var cmd tea.Cmd
	tv.viewport, cmd = tv.viewport.Update(msg)
	if tv.viewport.AtBottom() {
		tv.autoScroll = true
	}
	return cmd
}

// View renders the viewport with a "more below" hint when scrolled up.
func (tv *TranscriptViewport) View() string {
	out := tv.viewport.View()
	if !tv.viewport.AtBottom() {
		hint := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Width(tv.width).
			Align(lipgloss.Center).
			Render("v more below v")
		out += "\n" + hint
	}
	return out
}

// wrapContent wraps long lines to the given width using runewidth so wide
// characters and emoji labels count correctly.
func wrapContent(content string, width int) string {
	if width <= 0 {
		return content
	}

	var wrapped strings.Builder
	for i, line := range strings.Split(content, "\n") {
		if i > 0 {
			wrapped.WriteByte('\n')
		}
		if util.StringWidth(line) <= width {
			wrapped.WriteString(line)
			continue
		}
		wrapped.WriteString(wordWrap(line, width))
	}
	return wrapped.String()
}

// wordWrap wraps a single line, breaking at spaces when possible.
func wordWrap(line string, width int) string {
	var result strings.Builder
	var current strings.Builder
	currentWidth := 0

	flush := func() {
		if result.Len() > 0 {
			result.WriteByte('\n')
		}
		result.WriteString(strings.TrimRight(current.String(), " "))
		current.Reset()
		currentWidth = 0
	}

	for _, word := range strings.Split(line, " ") {
		w := util.StringWidth(word)
		if currentWidth > 0 && currentWidth+1+w > width {
			flush()
		}
		if currentWidth > 0 {
			current.WriteByte(' ')
			currentWidth++
		}
		// A single word longer than the width breaks mid-word.
		for w > width {
			runes := []rune(word)
			cut := 0
			cutWidth := 0
			for _, r := range runes {
				rw := runewidth.RuneWidth(r)
				if cutWidth+rw > width-currentWidth {
					break
				}
				cut++
				cutWidth += rw
			}
			if cut == 0 {
				break
			}
			current.WriteString(string(runes[:cut]))
			flush()
			word = string(runes[cut:])
			w = util.StringWidth(word)
		}
		current.WriteString(word)
		currentWidth += w
	}
	if current.Len() > 0 {
		flush()
	}
	return result.String()
}
