// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package llm

import "fmt"

// RecipePrompt returns the recipe-generation prompt for a comma-separated
// ingredient list. The input is embedded verbatim - no escaping.
func RecipePrompt(ingredients string) string {
	return fmt.Sprintf(recipePrompt, ingredients)
}

const recipePrompt = `You are a professional Indian chef. Given the following ingredients: %s, ` +
	`provide a detailed Indian recipe including the dish name, ingredients with quantities, ` +
	`and step-by-step cooking instructions.`

// NutritionPrompt returns the nutrition-estimation prompt for a full recipe
// text produced by a previous completion.
func NutritionPrompt(recipe string) string {
	return fmt.Sprintf(nutritionPrompt, recipe)
}

const nutritionPrompt = `Given the following recipe, provide approximate nutritional information per serving, ` +
	`including calories, protein, fat, carbohydrates, fiber, and sodium:` + "\n\n%s"
