package notifications

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kiran/bookbazaar/pkg/api"
	"github.com/kiran/bookbazaar/pkg/mapping"
	"github.com/kiran/bookbazaar/pkg/storage"
)

// defaultLimit is how many notifications the feed returns when the client
// does not ask for a specific page size.
const defaultLimit = 20

// NotificationsHandler holds the dependencies for notification handlers.
type NotificationsHandler struct {
	Store storage.NotificationStore
}

// NewNotificationsHandler creates a new NotificationsHandler.
func NewNotificationsHandler(store storage.NotificationStore) *NotificationsHandler {
	return &NotificationsHandler{Store: store}
}

// ListNotificationsBySeller handles a seller's notification feed, newest first.
func (h *NotificationsHandler) ListNotificationsBySeller(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "userId")

	limit := int32(defaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 1 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = int32(parsed)
	}

	notifications, err := h.Store.ListNotificationsBySeller(r.Context(), sellerID, limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve notifications: %v", err), http.StatusInternalServerError)
		return
	}

	apiNotifications := make([]*api.Notification, len(notifications))
	for i := range notifications {
		apiNotifications[i] = mapping.ToApiNotification(&notifications[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiNotifications); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// MarkNotificationRead handles flipping the read flag on a notification.
func (h *NotificationsHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	notificationID := chi.URLParam(r, "notificationId")

	if err := h.Store.MarkNotificationRead(r.Context(), notificationID); err != nil {
		http.Error(w, fmt.Sprintf("Failed to mark notification read: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
