package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kiran/bookbazaar/pkg/api"
	"github.com/kiran/bookbazaar/pkg/mapping"
	"github.com/kiran/bookbazaar/pkg/storage"
	"github.com/kiran/bookbazaar/pkg/websockets"
)

// UsersHandler holds the dependencies for user, cart and wishlist handlers.
type UsersHandler struct {
	Store     storage.UserStore
	Publisher websockets.Publisher
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(store storage.UserStore, publisher websockets.Publisher) *UsersHandler {
	return &UsersHandler{Store: store, Publisher: publisher}
}

// CreateUser handles signup.
func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var newUser api.NewUser
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := newUser.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	createdUser, err := h.Store.CreateUser(r.Context(), mapping.ToDomainUser(&newUser))
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			http.Error(w, "User already exists", http.StatusConflict)
		} else {
			http.Error(w, fmt.Sprintf("Failed to create user: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiUser(createdUser)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetUserById handles retrieving a user's profile, cart and wishlist.
func (h *UsersHandler) GetUserById(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	user, err := h.Store.GetUser(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve user: %v", err), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiUser(user)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// AddAddress handles appending a shipping address to the user document.
func (h *UsersHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var address api.Address
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := address.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Store.AddAddress(r.Context(), userID, mapping.ToDomainAddress(&address)); err != nil {
		if errors.Is(err, storage.ErrAddressLimitReached) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to add address: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddToCart handles adding a book to the cart. Re-adding a book that is
// already there succeeds without changing anything.
func (h *UsersHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var req api.CartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BookId == "" {
		http.Error(w, "Request requires a book_id", http.StatusBadRequest)
		return
	}

	if err := h.Store.AddToCart(r.Context(), userID, req.BookId); err != nil {
		http.Error(w, fmt.Sprintf("Failed to add to cart: %v", err), http.StatusInternalServerError)
		return
	}

	h.publishCart(w, r, userID)
}

// RemoveFromCart handles removing a book from the cart.
func (h *UsersHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	bookID := chi.URLParam(r, "bookId")

	user, err := h.Store.GetUser(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve user: %v", err), http.StatusNotFound)
		return
	}

	if err := h.Store.RemoveFromCart(r.Context(), userID, withoutBook(user.Cart, bookID)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to remove from cart: %v", err), http.StatusInternalServerError)
		return
	}

	h.publishCart(w, r, userID)
}

// MoveToWishlist handles moving a book from the cart to the wishlist in one
// document update.
func (h *UsersHandler) MoveToWishlist(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	bookID := chi.URLParam(r, "bookId")

	user, err := h.Store.GetUser(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve user: %v", err), http.StatusNotFound)
		return
	}

	if err := h.Store.MoveToWishlist(r.Context(), userID, bookID, withoutBook(user.Cart, bookID)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to move to wishlist: %v", err), http.StatusInternalServerError)
		return
	}

	h.publishCart(w, r, userID)
}

// ToggleWishlist handles the wishlist heart button: add if absent, remove if
// present. The response reports where the book ended up.
func (h *UsersHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	bookID := chi.URLParam(r, "bookId")

	added, err := h.Store.ToggleWishlist(r.Context(), userID, bookID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to toggle wishlist: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]bool{"wishlisted": added}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// publishCart pushes the post-mutation cart state and writes the response.
// The mutation has already committed by the time this runs, so a failed
// re-read still answers 200, with a body reduced to the user id.
func (h *UsersHandler) publishCart(w http.ResponseWriter, r *http.Request, userID string) {
	user, err := h.Store.GetUser(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR: failed to get user for cart push: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(&api.User{UserId: userID, Cart: []string{}, Wishlist: []string{}}); err != nil {
			log.Printf("ERROR: failed to write response: %v", err)
		}
		return
	}

	msg := websockets.Message{
		Type: websockets.MessageTypeCartUpdate,
		Payload: websockets.CartUpdatePayload{
			UserID: userID,
			Cart:   user.Cart,
		},
	}
	if err := h.Publisher.Publish(r.Context(), msg); err != nil {
		log.Printf("ERROR: failed to publish cart update: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiUser(user)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// withoutBook returns the cart membership minus one book, order preserved.
func withoutBook(cart []string, bookID string) []string {
	remaining := make([]string, 0, len(cart))
	for _, id := range cart {
		if id != bookID {
			remaining = append(remaining, id)
		}
	}
	return remaining
}
