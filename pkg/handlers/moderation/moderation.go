package moderation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kiran/bookbazaar/pkg/mapping"
	"github.com/kiran/bookbazaar/pkg/models"
	"github.com/kiran/bookbazaar/pkg/storage"
	"github.com/kiran/bookbazaar/pkg/websockets"
)

// ModerationHandler holds the dependencies for admin moderation handlers.
type ModerationHandler struct {
	Store     storage.ModerationStore
	Publisher websockets.Publisher
}

// NewModerationHandler creates a new ModerationHandler.
func NewModerationHandler(store storage.ModerationStore, publisher websockets.Publisher) *ModerationHandler {
	return &ModerationHandler{Store: store, Publisher: publisher}
}

type transition func(ctx context.Context, bookID string) (*models.Book, error)

// ApproveBook moves a pending listing into the public catalogue.
func (h *ModerationHandler) ApproveBook(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.Store.ApproveBook, models.NotificationApproved)
}

// DeclineBook rejects a pending listing.
func (h *ModerationHandler) DeclineBook(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.Store.DeclineBook, models.NotificationDeclined)
}

// RemoveBook pulls an already-approved listing from the catalogue.
func (h *ModerationHandler) RemoveBook(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.Store.RemoveBook, models.NotificationRemoved)
}

// ReinstateBook restores a declined listing to the catalogue.
func (h *ModerationHandler) ReinstateBook(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.Store.ReinstateBook, models.NotificationApproved)
}

func (h *ModerationHandler) moderate(w http.ResponseWriter, r *http.Request, fn transition, status string) {
	bookID := chi.URLParam(r, "bookId")

	book, err := fn(r.Context(), bookID)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyModerated) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to moderate book: %v", err), http.StatusInternalServerError)
		return
	}

	// Push the seller's notification. The notification document itself was
	// created inside the moderation batch; this is delivery only.
	msg := websockets.Message{
		Type: websockets.MessageTypeNotification,
		Payload: websockets.NotificationPayload{
			SellerID: book.SellerId,
			Status:   status,
			Message:  fmt.Sprintf("Your book %q was %s.", book.Title, status),
		},
	}
	if err := h.Publisher.Publish(r.Context(), msg); err != nil {
		log.Printf("ERROR: failed to publish moderation notification: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiBook(book)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
