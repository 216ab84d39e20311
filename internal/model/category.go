// Package model defines the core domain models used throughout the application.
package model

import "strings"

// Category labels a transaction. Transactions embed a value copy of the
// category they were filed under, so later edits to a category never
// rewrite history.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Slugify derives a stable category ID from a display name.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// IncomeCategory is the single category used for income transactions,
// including the ones posted automatically when a receivable payment is
// recorded.
func IncomeCategory() Category {
	return Category{ID: "income", Name: "Income", Icon: "💰"}
}

// FallbackCategory is used for expense transactions posted by payable
// payments when no "other" category exists in the current category set.
func FallbackCategory() Category {
	return Category{ID: "other", Name: "Others", Icon: "..."}
}

// DefaultCategories returns the built-in category set a fresh ledger
// starts with.
func DefaultCategories() []Category {
	return []Category{
		{ID: "fuel", Name: "Fuel", Icon: "⛽"},
		{ID: "food", Name: "Food", Icon: "🍔"},
		{ID: "maintenance", Name: "Car Maintenance", Icon: "🔧"},
		{ID: "toll", Name: "Toll", Icon: "🛃"},
		{ID: "recharge", Name: "Mobile Recharge", Icon: "📱"},
		{ID: "rent", Name: "Room Rent", Icon: "🏠"},
		{ID: "family", Name: "Family Cost", Icon: "👨‍👩‍👧‍👦"},
		{ID: "shopping", Name: "Shopping", Icon: "🛍️"},
		{ID: "health", Name: "Health", Icon: "❤️‍🩹"},
		{ID: "income", Name: "Income", Icon: "💰"},
		{ID: "other", Name: "Others", Icon: "..."},
	}
}
