package repository

import (
	"context"
	"fmt"

	"menuboard/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// menuItemRepository implements the MenuItemRepository interface using PostgreSQL.
//
// The table plays the role of a document collection: record_id is the
// internal row identity, while the external menu id column carries no
// uniqueness constraint.
type menuItemRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuItemRepository creates a new PostgreSQL-backed menu item repository.
func NewMenuItemRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuItemRepository {
	return &menuItemRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu_item").Logger(),
	}
}

// GetAll retrieves every menu item in storage order.
func (r *menuItemRepository) GetAll(ctx context.Context) ([]model.MenuItem, error) {
	query := `
		SELECT record_id, id, name, image, category, label, price, description
		FROM menu_items
		ORDER BY record_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		err := rows.Scan(
			&item.RecordID,
			&item.ID,
			&item.Name,
			&item.Image,
			&item.Category,
			&item.Label,
			&item.Price,
			&item.Description,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// GetPriceByID retrieves the price of the first item matching the menu id.
func (r *menuItemRepository) GetPriceByID(ctx context.Context, id int64) (string, bool, error) {
	query := `
		SELECT price
		FROM menu_items
		WHERE id = $1
		LIMIT 1
	`

	var price string
	err := r.pool.QueryRow(ctx, query, id).Scan(&price)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("menu_id", id).Msg("menu item not found")
			return "", false, nil
		}
		r.logger.Error().Err(err).Int64("menu_id", id).Msg("failed to query menu item price")
		return "", false, fmt.Errorf("failed to query menu item price: %w", err)
	}

	return price, true, nil
}

// UpdatePrice replaces the price of at most one item matching the menu id.
// A zero-match update is reported as success, mirroring a find-and-modify
// against a document store.
func (r *menuItemRepository) UpdatePrice(ctx context.Context, id int64, price string) error {
	query := `
		UPDATE menu_items
		SET price = $2
		WHERE record_id = (
			SELECT record_id FROM menu_items WHERE id = $1 LIMIT 1
		)
	`

	tag, err := r.pool.Exec(ctx, query, id, price)
	if err != nil {
		r.logger.Error().Err(err).Int64("menu_id", id).Msg("failed to update menu item price")
		return fmt.Errorf("failed to update menu item price: %w", err)
	}

	r.logger.Debug().
		Int64("menu_id", id).
		Int64("rows_affected", tag.RowsAffected()).
		Msg("menu item price update executed")

	return nil
}

// Count returns the total number of stored items.
func (r *menuItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count menu items")
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	return count, nil
}

// InsertMany inserts the given items.
func (r *menuItemRepository) InsertMany(ctx context.Context, items []model.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO menu_items (record_id, id, name, image, category, label, price, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, item := range items {
		_, err := r.pool.Exec(ctx, query,
			item.RecordID,
			item.ID,
			item.Name,
			item.Image,
			item.Category,
			item.Label,
			item.Price,
			item.Description,
		)
		if err != nil {
			r.logger.Error().Err(err).Int64("menu_id", item.ID).Msg("failed to insert menu item")
			return fmt.Errorf("failed to insert menu item %d: %w", item.ID, err)
		}
	}

	r.logger.Info().Int("count", len(items)).Msg("menu items inserted")

	return nil
}
