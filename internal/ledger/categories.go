package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/zunaidhosse/fare/internal/model"
)

// AddCategory creates a category whose id is a slug derived from its
// name. If a category with that slug already exists the call is a
// no-op and the existing category is returned unchanged.
func (l *Ledger) AddCategory(ctx context.Context, name, icon string) (model.Category, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cat := model.Category{ID: model.Slugify(name), Name: name, Icon: icon}

	idx := slices.IndexFunc(l.categories, func(c model.Category) bool { return c.ID == cat.ID })
	if idx >= 0 {
		slog.Debug("category already exists", "id", cat.ID)
		return l.categories[idx], nil
	}

	next := append(slices.Clone(l.categories), cat)
	if err := l.store.Save(ctx, keyCategories, next); err != nil {
		return model.Category{}, fmt.Errorf("failed to save categories: %w", err)
	}
	l.categories = next
	return cat, nil
}

// categoryByIDLocked returns the category with the given id, or false
// when no such category exists.
func (l *Ledger) categoryByIDLocked(id string) (model.Category, bool) {
	idx := slices.IndexFunc(l.categories, func(c model.Category) bool { return c.ID == id })
	if idx < 0 {
		return model.Category{}, false
	}
	return l.categories[idx], true
}
