package api

import (
	"database/sql"
	"net/http"
	"sort"
	"strconv"

	"inventory/internal/model"
	"inventory/internal/store"
)

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

// requiredFields is the fixed field order for presence checks and
// validation; it determines which field an error names first.
var requiredFields = []string{"name", "quantity", "price", "category"}

// Create handles POST /items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeObject(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, errNotAnObject.Error())
		return
	}

	var missing []string
	for _, field := range requiredFields {
		if _, ok := payload[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		jsonErrorDetails(w, http.StatusBadRequest, "missing required fields", map[string]any{"missing": missing})
		return
	}

	name, err := stringField(payload["name"], "name", model.MaxNameLength)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := stringField(payload["category"], "category", model.MaxCategoryLength)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	quantity, err := intField(payload["quantity"], "quantity")
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if quantity < 0 {
		jsonError(w, http.StatusBadRequest, "field 'quantity' cannot be negative")
		return
	}

	price, err := decimalField(payload["price"], "price")
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if price.Sign() <= 0 {
		jsonError(w, http.StatusBadRequest, "field 'price' must be greater than zero")
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, name, quantity, price, category)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// List handles GET /items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	items, err := store.ListItems(r.Context(), h.DB, category)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Get handles GET /items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /items/{id}. Only the supplied fields change; they
// are validated and applied in the same fixed order as on create, and
// nothing is persisted unless every supplied field passes.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	payload, err := decodeObject(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, errNotAnObject.Error())
		return
	}

	allowed := map[string]bool{"name": true, "quantity": true, "price": true, "category": true}
	var unknown []string
	for key := range payload {
		if !allowed[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		jsonErrorDetails(w, http.StatusBadRequest, "unknown fields in request body", map[string]any{"unknown": unknown})
		return
	}

	if v, ok := payload["name"]; ok {
		name, err := stringField(v, "name", model.MaxNameLength)
		if err != nil {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		item.Name = name
	}

	if v, ok := payload["category"]; ok {
		category, err := stringField(v, "category", model.MaxCategoryLength)
		if err != nil {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		item.Category = category
	}

	if v, ok := payload["quantity"]; ok {
		quantity, err := intField(v, "quantity")
		if err != nil {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		if quantity < 0 {
			jsonError(w, http.StatusBadRequest, "field 'quantity' cannot be negative")
			return
		}
		item.Quantity = quantity
	}

	if v, ok := payload["price"]; ok {
		price, err := decimalField(v, "price")
		if err != nil {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		if price.Sign() <= 0 {
			jsonError(w, http.StatusBadRequest, "field 'price' must be greater than zero")
			return
		}
		item.Price = price
	}

	if err := store.UpdateItem(r.Context(), h.DB, item.ID, item.Name, item.Quantity, item.Price, item.Category); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	updated, err := store.GetItem(r.Context(), h.DB, item.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if updated == nil {
		// Lost a race with a delete.
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, updated)
}

// Delete handles DELETE /items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	deleted, err := store.DeleteItem(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}
	if !deleted {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
