package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"menuboard/internal/model"
	"menuboard/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// MenuHandler handles menu-related HTTP requests.
type MenuHandler struct {
	service  service.MenuService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With().Str("handler", "menu").Logger(),
	}
}

// List handles GET {prefix} requests and returns every menu item.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	// An empty collection serialises as [] rather than null.
	if items == nil {
		items = []model.MenuItem{}
	}

	writeJSON(w, http.StatusOK, items)
}

// GetPrice handles GET {prefix}/{id} requests and returns the matching
// item's price only. A non-numeric id is a lookup that matches nothing,
// reported as not-found rather than bad-request.
func (h *MenuHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.menuID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Menu item not found", h.logger)
		return
	}

	price, err := h.service.GetPrice(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrMenuItemNotFound) {
			writeError(w, http.StatusNotFound, "Menu item not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.PriceResponse{Price: price})
}

// UpdatePrice handles PUT {prefix}/{id} requests. The endpoint succeeds
// even when no item matched the id; a non-numeric id therefore updates
// nothing and still returns 200. The body must carry a price field, but
// numeric validity is deliberately left to the caller.
func (h *MenuHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	var req model.UpdatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrMissingPrice.Message, h.logger)
		return
	}

	id, ok := h.menuID(r)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := h.service.UpdatePrice(r.Context(), id, req.Price); err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// menuID parses the id path parameter as a number.
func (h *MenuHandler) menuID(r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.logger.Debug().Str("id", raw).Msg("non-numeric menu id")
		return 0, false
	}
	return id, true
}
