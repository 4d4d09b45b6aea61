package repository

import (
	"context"

	"menuboard/internal/model"
)

// MenuItemRepository defines the interface for menu item data access operations.
type MenuItemRepository interface {
	// GetAll retrieves every menu item in storage order.
	GetAll(ctx context.Context) ([]model.MenuItem, error)

	// GetPriceByID retrieves the price of the first item matching the
	// external menu id. The boolean reports whether a match was found;
	// if several items share the id the choice among them is undefined.
	GetPriceByID(ctx context.Context, id int64) (string, bool, error)

	// UpdatePrice replaces the price of at most one item matching the
	// external menu id, leaving every other field untouched. Matching
	// zero items is not an error; the caller cannot distinguish the two
	// outcomes from the return value.
	UpdatePrice(ctx context.Context, id int64, price string) error

	// Count returns the total number of stored items.
	Count(ctx context.Context) (int64, error)

	// InsertMany inserts the given items. Used by the seeder.
	InsertMany(ctx context.Context, items []model.MenuItem) error
}
