package client

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"menuboard/internal/model"

	"github.com/rs/zerolog"
)

// Notifier receives the user-facing alerts raised by the editor.
type Notifier interface {
	Alert(message string)
}

// SortOrder is the presentational sort state of a column.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortAsc
	SortDesc
)

// Editor drives the price-edit workflow over the fetched menu. At most
// one row is editable at a time, tracked by a single editing id owned
// here rather than per row; rows only ever observe it.
//
// Sorting is purely presentational: Rows returns an ordered view while
// the fetched collection keeps storage order.
type Editor struct {
	api      MenuAPI
	notifier Notifier
	logger   zerolog.Logger

	items     []model.MenuItem
	editingID int64
	editing   bool
	working   string

	sortColumn string
	sortOrder  SortOrder
}

// NewEditor creates an editor over the given API. Call Refresh before
// rendering.
func NewEditor(api MenuAPI, notifier Notifier, logger zerolog.Logger) *Editor {
	return &Editor{
		api:      api,
		notifier: notifier,
		logger:   logger.With().Str("component", "menu-editor").Logger(),
	}
}

// Refresh replaces the local item collection with a fresh list response.
func (e *Editor) Refresh(ctx context.Context) error {
	items, err := e.api.List(ctx)
	if err != nil {
		e.logger.Error().Err(err).Msg("error fetching menu items")
		return err
	}
	e.items = items
	return nil
}

// Items returns the fetched collection in storage order.
func (e *Editor) Items() []model.MenuItem {
	return e.items
}

// Editing reports the id of the row currently in the editing state, if any.
func (e *Editor) Editing() (int64, bool) {
	return e.editingID, e.editing
}

// WorkingValue returns the in-progress price text of the editing row.
func (e *Editor) WorkingValue() string {
	return e.working
}

// StartEdit moves the row with the given id into the editing state and
// reports whether such a row exists. Any other row currently editing
// reverts to viewing; the working value starts from the row's current
// price string.
func (e *Editor) StartEdit(id int64) bool {
	for _, item := range e.items {
		if item.ID == id {
			e.editingID = id
			e.editing = true
			e.working = item.Price
			return true
		}
	}
	return false
}

// Input replaces the working value while editing. No validation happens
// during typing.
func (e *Editor) Input(value string) {
	if !e.editing {
		return
	}
	e.working = value
}

// Save runs the validation pipeline and submits the price update.
//
// The pipeline short-circuits on first failure: a working value that is
// not a number (or parses to zero) is rejected locally; a working value
// whose raw string exactly equals the freshly re-fetched stored price is
// rejected as unchanged, which also catches formatting-only edits. Only
// then is the update submitted. A failed submission is logged and leaves
// the row in the editing state.
func (e *Editor) Save(ctx context.Context) error {
	if !e.editing {
		return nil
	}
	id := e.editingID

	// ParseFloat accepts "NaN", which is neither an error nor zero.
	number, err := strconv.ParseFloat(strings.TrimSpace(e.working), 64)
	if err != nil || number == 0 || math.IsNaN(number) {
		e.notifier.Alert("Price must be a number")
		return nil
	}

	oldPrice, err := e.api.GetPrice(ctx, id)
	if err != nil {
		e.logger.Error().Err(err).Int64("menu_id", id).Msg("error fetching current price")
		return err
	}
	if e.working == oldPrice {
		e.notifier.Alert("Price is the same as before.")
		return nil
	}

	if err := e.api.UpdatePrice(ctx, id, e.working); err != nil {
		// The save failure is deliberately not surfaced to the user,
		// matching the behaviour this editor reproduces; the row stays
		// in the editing state.
		e.logger.Error().Err(err).Int64("menu_id", id).Msg("error updating price")
		return err
	}

	e.notifier.Alert(fmt.Sprintf("Price updated for item with ID => %d", id))
	e.editing = false
	e.editingID = 0
	e.working = ""

	// The editing id changed, so the collection is re-fetched, exactly
	// as the table re-loads after a committed edit.
	return e.Refresh(ctx)
}

// SortBy cycles the sort state of the named column: unsorted to
// ascending to descending and back to unsorted. Selecting a different
// column starts it ascending.
func (e *Editor) SortBy(column string) {
	if e.sortColumn != column {
		e.sortColumn = column
		e.sortOrder = SortAsc
		return
	}
	switch e.sortOrder {
	case SortNone:
		e.sortOrder = SortAsc
	case SortAsc:
		e.sortOrder = SortDesc
	default:
		e.sortOrder = SortNone
		e.sortColumn = ""
	}
}

// SortState reports the current sort column and order.
func (e *Editor) SortState() (string, SortOrder) {
	return e.sortColumn, e.sortOrder
}

// Rows returns the items ordered for display. With no sort active the
// storage order is preserved.
func (e *Editor) Rows() []model.MenuItem {
	rows := make([]model.MenuItem, len(e.items))
	copy(rows, e.items)

	if e.sortOrder == SortNone || e.sortColumn == "" {
		return rows
	}

	column := e.sortColumn
	less := func(a, b model.MenuItem) bool {
		if column == "id" {
			return a.ID < b.ID
		}
		return columnValue(a, column) < columnValue(b, column)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if e.sortOrder == SortDesc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})

	return rows
}

// columnValue extracts the display string of a column.
func columnValue(item model.MenuItem, column string) string {
	switch column {
	case "name":
		return item.Name
	case "image":
		return item.Image
	case "category":
		return item.Category
	case "label":
		return item.Label
	case "price":
		return item.Price
	case "description":
		return item.Description
	default:
		return ""
	}
}
