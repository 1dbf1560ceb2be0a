// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the chefgpt TUI.

This package contains styled, interactive components built on top of the
Bubble Tea and Lip Gloss libraries.

# Components

Sidebar (sidebar.go) - Page navigation list; emits PageSelectedMsg.
StatusBar (statusbar.go) - Bottom bar with status text and key shortcuts.
ErrorBanner (banner.go) - Dismissible error line shown above the status bar.
TranscriptViewport (viewport.go) - Scrollable chat transcript with
auto-scroll on new content.

# Theme Integration

All components accept a *styles.Theme for consistent styling:

	theme := styles.NewTheme("auto")
	sidebar := components.NewSidebar(theme)
	sidebar.SetSize(22, 30)
	view := sidebar.View()
*/
package components
