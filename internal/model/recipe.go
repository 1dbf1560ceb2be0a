// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "strings"

// SavedRecipe is one user-curated recipe.
//
// All three fields are free-form text; ingredients are not structured
// per-item. Names are not unique - duplicates are permitted.
type SavedRecipe struct {
	Name         string `json:"name"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}

// IsComplete reports whether every field is non-empty after trimming
// whitespace. The recipe form requires all three fields.
func (r SavedRecipe) IsComplete() bool {
	return strings.TrimSpace(r.Name) != "" &&
		strings.TrimSpace(r.Ingredients) != "" &&
		strings.TrimSpace(r.Instructions) != ""
}
