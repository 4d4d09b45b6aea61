package seed

import (
	"context"
	"fmt"

	"menuboard/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Seeder populates an empty item store from a seed document. A store
// that already holds items is left untouched, so restarting the server
// never duplicates or resets menu data.
type Seeder struct {
	repo   repository.MenuItemRepository
	loader Loader
	logger zerolog.Logger
}

// NewSeeder creates a new seeder.
func NewSeeder(repo repository.MenuItemRepository, loader Loader, logger zerolog.Logger) *Seeder {
	return &Seeder{
		repo:   repo,
		loader: loader,
		logger: logger.With().Str("component", "seeder").Logger(),
	}
}

// Run loads the seed document and inserts it when the store is empty.
// Returns the number of items inserted.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check store contents: %w", err)
	}

	if count > 0 {
		s.logger.Info().Int64("existing_items", count).Msg("store already populated, skipping seed")
		return 0, nil
	}

	items, err := s.loader.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load seed document: %w", err)
	}

	// Seed documents carry external menu ids only; record identity is
	// assigned here.
	for i := range items {
		items[i].RecordID = uuid.New()
	}

	if err := s.repo.InsertMany(ctx, items); err != nil {
		return 0, fmt.Errorf("failed to insert seed items: %w", err)
	}

	s.logger.Info().Int("count", len(items)).Msg("store seeded")

	return len(items), nil
}
