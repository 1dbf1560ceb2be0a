// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewTheme_HonorsExplicitThemes(t *testing.T) {
	if !NewTheme("dark").IsDark {
		t.Error("dark theme must set IsDark")
	}
	if NewTheme("light").IsDark {
		t.Error("light theme must not set IsDark")
	}
}

func TestSetSize(t *testing.T) {
	theme := NewTheme("dark")
	theme.SetSize(120, 40)

	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("SetSize stored %dx%d", theme.Width, theme.Height)
	}
}

func TestSidebarWidth_NarrowTerminals(t *testing.T) {
	theme := NewTheme("dark")

	theme.SetSize(50, 24)
	narrow := theme.SidebarWidth()
	theme.SetSize(120, 40)
	wide := theme.SidebarWidth()

	if narrow >= wide {
		t.Errorf("narrow sidebar (%d) should be smaller than wide (%d)", narrow, wide)
	}
}
