package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single word", input: "Fuel", want: "fuel"},
		{name: "multiple words", input: "Car Maintenance", want: "car-maintenance"},
		{name: "surrounding whitespace", input: "  Toll  ", want: "toll"},
		{name: "already lowercase", input: "food", want: "food"},
		{name: "three words", input: "My Daily Cost", want: "my-daily-cost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	assert.Len(t, cats, 11)

	ids := make(map[string]bool, len(cats))
	for _, c := range cats {
		assert.NotEmpty(t, c.Name)
		assert.False(t, ids[c.ID], "duplicate category id %q", c.ID)
		ids[c.ID] = true
	}

	assert.True(t, ids["income"], "built-in set must contain the income category")
	assert.True(t, ids["other"], "built-in set must contain the other category")
}

func TestDefaultCategoriesReturnsFreshCopies(t *testing.T) {
	a := DefaultCategories()
	a[0].Name = "mutated"

	b := DefaultCategories()
	assert.Equal(t, "Fuel", b[0].Name)
}
