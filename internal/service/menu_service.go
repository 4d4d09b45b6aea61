package service

import (
	"context"
	"fmt"

	"menuboard/internal/model"
	"menuboard/internal/repository"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	menuRepo repository.MenuItemRepository
	logger   zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(menuRepo repository.MenuItemRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "menu").Logger(),
	}
}

// List retrieves every menu item.
func (s *menuService) List(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.menuRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list menu items")
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	s.logger.Debug().Int("count", len(items)).Msg("retrieved menu items")

	return items, nil
}

// GetPrice retrieves the price of a single item by its menu id.
func (s *menuService) GetPrice(ctx context.Context, id int64) (string, error) {
	price, found, err := s.menuRepo.GetPriceByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("menu_id", id).Msg("failed to get menu item price")
		return "", fmt.Errorf("failed to get menu item price: %w", err)
	}

	if !found {
		s.logger.Debug().Int64("menu_id", id).Msg("menu item not found")
		return "", model.ErrMenuItemNotFound
	}

	return price, nil
}

// UpdatePrice replaces the price of a single item by its menu id. The
// update reports success even when no item matched, which preserves the
// historical wire contract of this endpoint.
func (s *menuService) UpdatePrice(ctx context.Context, id int64, price string) error {
	if err := s.menuRepo.UpdatePrice(ctx, id, price); err != nil {
		s.logger.Error().Err(err).Int64("menu_id", id).Msg("failed to update menu item price")
		return fmt.Errorf("failed to update menu item price: %w", err)
	}

	s.logger.Info().
		Int64("menu_id", id).
		Str("price", price).
		Msg("menu item price updated")

	return nil
}
