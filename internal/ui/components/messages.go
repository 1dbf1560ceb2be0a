// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

// ErrorMsg carries a failed operation up to the root model, which shows it
// in the error banner. Pages emit it instead of rendering errors themselves.
type ErrorMsg struct {
	Err error
}
