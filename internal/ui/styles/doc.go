// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the chefgpt TUI.

This package defines the color palette and the Theme type used throughout
the application. All colors use Lip Gloss AdaptiveColor for automatic
light/dark terminal detection; the configured theme ("dark", "light",
"auto") can pin the background assumption explicitly.

# Color System (colors.go)

  - Saffron - Primary accent for headers and selections
  - Cyan - User highlights and shortcut keys
  - Emerald - Success confirmations
  - Rose - Errors and delete confirmations

Surface and text tokens (Surface, SurfaceDim, Overlay, TextPrimary,
TextSecondary, TextMuted) provide the neutral layers.

# Theme (theme.go)

Theme bundles the pre-built lipgloss styles for the sidebar, page panels,
chat transcript, forms, status bar, and error banner:

	theme := styles.NewTheme(cfg.UI.Theme)
	theme.SetSize(width, height)
*/
package styles
