package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kiran/bookbazaar/pkg/api"
	"github.com/kiran/bookbazaar/pkg/mailer"
	"github.com/kiran/bookbazaar/pkg/mapping"
	"github.com/kiran/bookbazaar/pkg/models"
	"github.com/kiran/bookbazaar/pkg/storage"
)

// OrdersHandler holds the dependencies for order-related handlers. The
// store is the wider ApiStore because accept/cancel notices need the
// buyer's email.
type OrdersHandler struct {
	Store  storage.ApiStore
	Mailer mailer.Mailer
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(store storage.ApiStore, m mailer.Mailer) *OrdersHandler {
	return &OrdersHandler{Store: store, Mailer: m}
}

// GetOrderById handles retrieving an order by its ID.
func (h *OrdersHandler) GetOrderById(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	order, err := h.Store.GetOrder(r.Context(), orderID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve order: %v", err), http.StatusNotFound)
		return
	}

	h.writeOrder(w, order, http.StatusOK)
}

// ListOrdersBySeller handles a seller's order dashboard.
func (h *OrdersHandler) ListOrdersBySeller(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "userId")

	orders, err := h.Store.ListOrdersBySeller(r.Context(), sellerID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve orders: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeOrders(w, orders)
}

// ListOrdersByBuyer handles a buyer's purchase history.
func (h *OrdersHandler) ListOrdersByBuyer(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	orders, err := h.Store.ListOrdersByBuyer(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve orders: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeOrders(w, orders)
}

// AcceptOrder handles a seller confirming a pending order.
func (h *OrdersHandler) AcceptOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	order, err := h.Store.AcceptOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotPending) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to accept order: %v", err), http.StatusInternalServerError)
		return
	}

	h.emailBuyer(r, order, "Your order was accepted",
		fmt.Sprintf("<p>The seller accepted your order %s. It is on its way.</p>", order.Id))

	h.writeOrder(w, order, http.StatusOK)
}

// CancelOrder handles a seller cancelling a pending order. The reason is
// mandatory and is relayed to the buyer.
func (h *OrdersHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	var req api.CancelOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	order, err := h.Store.CancelOrder(r.Context(), orderID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrCancelReasonRequired):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, storage.ErrOrderNotPending):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, fmt.Sprintf("Failed to cancel order: %v", err), http.StatusInternalServerError)
		}
		return
	}

	h.emailBuyer(r, order, "Your order was cancelled",
		fmt.Sprintf("<p>The seller cancelled your order %s: %s</p>", order.Id, order.CancelReason))

	h.writeOrder(w, order, http.StatusOK)
}

// emailBuyer sends a best-effort status notice to the order's buyer.
func (h *OrdersHandler) emailBuyer(r *http.Request, order *models.Order, subject, body string) {
	buyer, err := h.Store.GetUser(r.Context(), order.UserId)
	if err != nil {
		log.Printf("ERROR: failed to get buyer %s for order email: %v", order.UserId, err)
		return
	}
	if err := h.Mailer.Send(r.Context(), buyer.Email, subject, body); err != nil {
		log.Printf("ERROR: failed to email buyer %s: %v", order.UserId, err)
	}
}

func (h *OrdersHandler) writeOrder(w http.ResponseWriter, order *models.Order, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(mapping.ToApiOrder(order)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

func (h *OrdersHandler) writeOrders(w http.ResponseWriter, orders []models.Order) {
	apiOrders := make([]*api.Order, len(orders))
	for i := range orders {
		apiOrders[i] = mapping.ToApiOrder(&orders[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiOrders); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
