// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/chefgpt/chefgpt-tui/internal/ui/styles"
	"github.com/chefgpt/chefgpt-tui/internal/util"
)

// =============================================================================
// ERROR BANNER COMPONENT
// =============================================================================

// ErrorBanner is a single-line error display above the status bar. Errors
// stick until dismissed or replaced; the chat transcript is never touched.
type ErrorBanner struct {
	message string
	width   int
	theme   *styles.Theme
}

// NewErrorBanner creates an empty error banner.
func NewErrorBanner(theme *styles.Theme) *ErrorBanner {
	return &ErrorBanner{
		width: 80,
		theme: theme,
	}
}

// SetWidth updates the available width.
func (b *ErrorBanner) SetWidth(width int) {
	b.width = width
}

// maxMessageRunes bounds the stored message. Provider errors can embed whole
// response bodies; one line of them is plenty.
const maxMessageRunes = 200

// Show replaces the banner content with a new error message.
func (b *ErrorBanner) Show(message string) {
	b.message = util.TruncateRunes(util.FirstLine(message), maxMessageRunes)
}

// Clear dismisses the banner.
func (b *ErrorBanner) Clear() {
	b.message = ""
}

// Visible reports whether an error is being shown.
func (b *ErrorBanner) Visible() bool {
	return b.message != ""
}

// View renders the banner, or an empty string when nothing is shown.
func (b *ErrorBanner) View() string {
	if b.message == "" {
		return ""
	}
	return b.theme.ErrorBanner.Width(b.width).Render(util.TruncateWidth("error: "+b.message, b.width-2))
}
