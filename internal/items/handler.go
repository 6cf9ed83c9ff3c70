package items

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ayush/inventory-tracker/internal/auth"
	"github.com/ayush/inventory-tracker/internal/middleware"
	"github.com/ayush/inventory-tracker/internal/models"
	"github.com/ayush/inventory-tracker/internal/store"
	"github.com/ayush/inventory-tracker/internal/view"
)

// ItemStore defines the interface for item persistence.
type ItemStore interface {
	CreateItem(ctx context.Context, item *models.Item) (*models.Item, error)
	ListItemsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Item, error)
	GetItem(ctx context.Context, id string) (*models.Item, error)
	UpdateItem(ctx context.Context, id string, fields bson.M) error
	DeleteItem(ctx context.Context, id string) error
}

// Handler holds the item HTTP handlers.
type Handler struct {
	store    ItemStore
	identity *auth.Service
	views    *view.TemplateCache
}

func NewHandler(store ItemStore, identity *auth.Service, views *view.TemplateCache) *Handler {
	return &Handler{store: store, identity: identity, views: views}
}

// List renders the caller's items. This route is soft-gated: when the
// session cannot be resolved, or the store call fails, it renders the
// signup page instead of returning an error status.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, ok := h.userItems(r)
	if !ok {
		h.views.Render(w, "signup.html", nil)
		return
	}
	h.views.Render(w, "index.html", map[string]interface{}{"Items": items})
}

// userItems resolves the session cookie and loads the caller's items.
func (h *Handler) userItems(r *http.Request) ([]models.Item, bool) {
	cookie, err := r.Cookie(auth.SessionCookie)
	if err != nil {
		return nil, false
	}
	user, err := h.identity.Resolve(r.Context(), cookie.Value)
	if err != nil || user == nil {
		return nil, false
	}
	items, err := h.store.ListItemsByUser(r.Context(), user.ID)
	if err != nil {
		return nil, false
	}
	return items, true
}

// Form renders the item creation page.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, "form.html", nil)
}

// Create validates that every field is present, then inserts an item owned
// by the caller and redirects to the list.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	name := r.FormValue("name")
	description := r.FormValue("description")
	quantityRaw := r.FormValue("quantity")
	priceRaw := r.FormValue("price")
	if name == "" || description == "" || quantityRaw == "" || priceRaw == "" {
		http.Error(w, "All fields are required", http.StatusBadRequest)
		return
	}

	quantity, err := strconv.Atoi(quantityRaw)
	if err != nil {
		storeError(w, err)
		return
	}
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		storeError(w, err)
		return
	}

	_, err = h.store.CreateItem(r.Context(), &models.Item{
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Price:       price,
		UserID:      user.ID,
	})
	if err != nil {
		storeError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Update applies the submitted fields to an item the caller owns. A missing
// item and a foreign item are both answered with 403.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	item, err := h.store.GetItem(r.Context(), id)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		storeError(w, err)
		return
	}
	if item == nil || item.UserID != user.ID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	fields, err := updateFields(r)
	if err != nil {
		storeError(w, err)
		return
	}
	if err := h.store.UpdateItem(r.Context(), id, fields); err != nil {
		storeError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Delete removes an item the caller owns, with the same ownership check as
// Update.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	item, err := h.store.GetItem(r.Context(), id)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		storeError(w, err)
		return
	}
	if item == nil || item.UserID != user.ID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := h.store.DeleteItem(r.Context(), id); err != nil {
		storeError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// updateFields collects exactly the submitted fields. Absent fields stay
// untouched; present ones are applied without further validation.
func updateFields(r *http.Request) (bson.M, error) {
	fields := bson.M{}
	if v := r.FormValue("name"); v != "" {
		fields["name"] = v
	}
	if v := r.FormValue("description"); v != "" {
		fields["description"] = v
	}
	if v := r.FormValue("quantity"); v != "" {
		quantity, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		fields["quantity"] = quantity
	}
	if v := r.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		fields["price"] = price
	}
	return fields, nil
}

func storeError(w http.ResponseWriter, err error) {
	http.Error(w, "Error: "+err.Error(), http.StatusInternalServerError)
}
