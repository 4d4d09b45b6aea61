package model

import "github.com/google/uuid"

// MenuItem represents a single dish on the restaurant menu.
//
// RecordID is the storage-level identity of the row and never leaves the
// server. ID is the externally assigned menu number used for all targeted
// reads and updates; the storage layer does not enforce its uniqueness.
// Price is a string end-to-end so that formatting (trailing zeros, currency
// symbols) survives round trips; numeric validity is checked explicitly
// where it matters.
type MenuItem struct {
	RecordID    uuid.UUID `json:"-" db:"record_id"`
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Image       string    `json:"image" db:"image"`
	Category    string    `json:"category" db:"category"`
	Label       string    `json:"label" db:"label"`
	Price       string    `json:"price" db:"price"`
	Description string    `json:"description" db:"description"`
}

// PriceResponse is the body returned by the single-item price lookup.
type PriceResponse struct {
	Price string `json:"price"`
}

// UpdatePriceRequest is the body accepted by the price update endpoint.
// The service only requires the field to be present; numeric validation
// is the caller's responsibility.
type UpdatePriceRequest struct {
	Price string `json:"price" validate:"required"`
}
