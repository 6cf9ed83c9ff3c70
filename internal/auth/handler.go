package auth

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ayush/inventory-tracker/internal/models"
	"github.com/ayush/inventory-tracker/internal/store"
	"github.com/ayush/inventory-tracker/internal/view"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	CreateUser(ctx context.Context, email, username, password string) (*models.User, error)
	GetUserByCredentials(ctx context.Context, email, password string) (*models.User, error)
}

// ItemLister loads the item list rendered after a successful login.
type ItemLister interface {
	ListItemsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Item, error)
}

// Handler holds the signup and login HTTP handlers.
type Handler struct {
	users    UserStore
	items    ItemLister
	identity *Service
	views    *view.TemplateCache
}

func NewHandler(users UserStore, items ItemLister, identity *Service, views *view.TemplateCache) *Handler {
	return &Handler{users: users, items: items, identity: identity, views: views}
}

// SignupForm renders the signup page.
func (h *Handler) SignupForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, "signup.html", nil)
}

// Signup creates a new user, issues a session cookie and redirects to the
// login page. The password is stored exactly as submitted.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	username := r.FormValue("username")
	password := r.FormValue("password")
	if email == "" || username == "" || password == "" {
		http.Error(w, "All Fields are required", http.StatusBadRequest)
		return
	}

	user, err := h.users.CreateUser(r.Context(), email, username, password)
	if err != nil {
		storeError(w, err)
		return
	}

	if err := h.issueSession(w, r, user); err != nil {
		storeError(w, err)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

// LoginForm renders the login page.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, "login.html", nil)
}

// Login matches the submitted credentials against the users collection,
// issues a session cookie and renders the caller's item list directly.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")
	if email == "" || password == "" {
		http.Error(w, "All fields are required", http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUserByCredentials(r.Context(), email, password)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}

	if err := h.issueSession(w, r, user); err != nil {
		storeError(w, err)
		return
	}

	items, err := h.items.ListItemsByUser(r.Context(), user.ID)
	if err != nil {
		storeError(w, err)
		return
	}
	h.views.Render(w, "index.html", map[string]interface{}{"Items": items})
}

// issueSession registers a session for the user and sets the uid cookie.
// The cookie deliberately carries default attributes only.
func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, user *models.User) error {
	sid, err := h.identity.RegisterSession(r.Context(), user)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:  SessionCookie,
		Value: sid,
		Path:  "/",
	})
	return nil
}

func storeError(w http.ResponseWriter, err error) {
	http.Error(w, "Error: "+err.Error(), http.StatusInternalServerError)
}
