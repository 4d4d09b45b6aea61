package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"menuboard/internal/model"

	"github.com/rs/zerolog"
)

// Loader reads a menu seed document: a JSON array of menu items.
type Loader interface {
	Load(ctx context.Context) ([]model.MenuItem, error)
}

// fileLoader implements Loader for reading a seed file from local disk.
type fileLoader struct {
	path   string
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(path string, logger zerolog.Logger) Loader {
	return &fileLoader{
		path:   path,
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads and decodes the seed file.
func (l *fileLoader) Load(ctx context.Context) ([]model.MenuItem, error) {
	l.logger.Info().Str("file", l.path).Msg("loading menu seed file")

	data, err := os.ReadFile(l.path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", l.path).Msg("failed to read seed file")
		return nil, fmt.Errorf("failed to read seed file %s: %w", l.path, err)
	}

	items, err := decodeItems(data)
	if err != nil {
		l.logger.Error().Err(err).Str("file", l.path).Msg("failed to decode seed file")
		return nil, fmt.Errorf("failed to decode seed file %s: %w", l.path, err)
	}

	l.logger.Info().
		Str("file", l.path).
		Int("items_loaded", len(items)).
		Msg("menu seed file loaded successfully")

	return items, nil
}

// decodeItems parses a JSON array of menu items.
func decodeItems(data []byte) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}
