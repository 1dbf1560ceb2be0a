// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chefgpt/chefgpt-tui/internal/ui/styles"
	"github.com/chefgpt/chefgpt-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusReady Status = iota
	StatusGenerating
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusGenerating:
		return "Generating..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// StatusBar is the bottom status bar: current status and model on the left,
// key shortcuts on the right.
type StatusBar struct {
	Status    Status
	ModelName string
	Width     int
	theme     *styles.Theme
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Status: StatusReady,
		Width:  80,
		theme:  theme,
	}
}

// SetWidth updates the available width.
func (sb *StatusBar) SetWidth(width int) {
	sb.Width = width
}

// View renders the status bar.
func (sb *StatusBar) View() string {
	left := sb.Status.String()
	if sb.ModelName != "" {
		left += "  " + sb.theme.ShortcutDesc.Render(sb.ModelName)
	}

	shortcuts := []struct{ key, desc string }{
		{"tab", "focus"},
		{"1-4", "pages"},
		{"esc", "back"},
		{"ctrl+c", "quit"},
	}
	var parts []string
	for _, s := range shortcuts {
		parts = append(parts, sb.theme.ShortcutKey.Render(s.key)+" "+sb.theme.ShortcutDesc.Render(s.desc))
	}
	right := strings.Join(parts, "  ")

	gap := sb.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
		left = util.TruncateWidth(left, sb.Width-lipgloss.Width(right)-3)
	}

	return sb.theme.StatusBar.Width(sb.Width).Render(left + strings.Repeat(" ", gap) + right)
}
