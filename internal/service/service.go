package service

import (
	"context"

	"menuboard/internal/model"
)

// MenuService defines operations for menu management.
type MenuService interface {
	// List retrieves every menu item in storage order.
	List(ctx context.Context) ([]model.MenuItem, error)

	// GetPrice retrieves the price of the item with the given menu id.
	// Returns model.ErrMenuItemNotFound when no item matches.
	GetPrice(ctx context.Context, id int64) (string, error)

	// UpdatePrice replaces the price of the item with the given menu id.
	// Succeeds even when no item matches; callers cannot distinguish the
	// two outcomes from the return value.
	UpdatePrice(ctx context.Context, id int64, price string) error
}
