package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kiran/bookbazaar/pkg/api"
	"github.com/kiran/bookbazaar/pkg/mailer"
	"github.com/kiran/bookbazaar/pkg/mapping"
	"github.com/kiran/bookbazaar/pkg/models"
	"github.com/kiran/bookbazaar/pkg/payments"
	"github.com/kiran/bookbazaar/pkg/scheduler"
	"github.com/kiran/bookbazaar/pkg/storage"
	"github.com/kiran/bookbazaar/pkg/websockets"
)

// CheckoutHandler holds the dependencies for both checkout paths.
type CheckoutHandler struct {
	Store     storage.ApiStore
	Gateway   payments.Client
	Scheduler scheduler.Scheduler
	Mailer    mailer.Mailer
	Publisher websockets.Publisher

	// ReturnURL is where the gateway sends the buyer after paying.
	ReturnURL string

	// WebsiteURL identifies the storefront to the gateway.
	WebsiteURL string
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(store storage.ApiStore, gateway payments.Client, sched scheduler.Scheduler, m mailer.Mailer, publisher websockets.Publisher, returnURL, websiteURL string) *CheckoutHandler {
	return &CheckoutHandler{
		Store:      store,
		Gateway:    gateway,
		Scheduler:  sched,
		Mailer:     m,
		Publisher:  publisher,
		ReturnURL:  returnURL,
		WebsiteURL: websiteURL,
	}
}

// PlaceOrder handles the immediate checkout path: one atomic batch placing
// the per-seller orders, delisting the books and trimming the cart.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req api.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.Store.PlaceOrder(r.Context(), mapping.ToDomainCheckout(&req))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrBookUnavailable):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, storage.ErrCheckoutTooLarge):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			log.Printf("ERROR: failed to place order: %v", err)
			http.Error(w, fmt.Sprintf("Failed to place order: %v", err), http.StatusInternalServerError)
		}
		return
	}

	// The orders are committed; everything after this is best-effort.
	h.notifySellers(r, summary.Orders)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiCheckoutSummary(summary)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// InitiatePayment handles the deferred checkout path: register the payment
// with the gateway, persist the intent, and hand the buyer the redirect URL.
// No storefront document is touched until the gateway confirms.
func (h *CheckoutHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req api.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	checkout := mapping.ToDomainCheckout(&req)

	var subtotal int64
	for _, item := range checkout.Items {
		subtotal += item.UnitPrice * int64(item.Quantity)
	}
	total := subtotal + checkout.ShippingFee + models.PlatformFee(subtotal)

	purchaseOrderID := uuid.New().String()
	initResp, err := h.Gateway.Initiate(r.Context(), &payments.InitiateRequest{
		PurchaseOrderId:   purchaseOrderID,
		PurchaseOrderName: fmt.Sprintf("bookbazaar order (%d items)", len(checkout.Items)),
		Amount:            total,
		ReturnUrl:         h.ReturnURL,
		WebsiteUrl:        h.WebsiteURL,
	})
	if err != nil {
		log.Printf("ERROR: gateway initiate failed: %v", err)
		http.Error(w, "Payment gateway unavailable", http.StatusBadGateway)
		return
	}

	intent := &models.PaymentIntent{
		PurchaseOrderId: purchaseOrderID,
		UserId:          checkout.UserId,
		Pidx:            initResp.Pidx,
		Items:           checkout.Items,
		ShippingFee:     checkout.ShippingFee,
		Amount:          total,
		Address:         checkout.Address,
	}
	if _, err := h.Store.SavePaymentIntent(r.Context(), intent); err != nil {
		log.Printf("CRITICAL: payment %s initiated at gateway but intent not saved: %v", initResp.Pidx, err)
		http.Error(w, "Failed to record payment intent", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	resp := api.InitiatePaymentResponse{
		PurchaseOrderId: purchaseOrderID,
		PaymentUrl:      initResp.PaymentUrl,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// PaymentCallback handles the gateway redirect. Nothing in it is trusted:
// the handler only enqueues a server-side verification and acknowledges.
func (h *CheckoutHandler) PaymentCallback(w http.ResponseWriter, r *http.Request) {
	job := &scheduler.VerificationJob{
		PurchaseOrderId: r.URL.Query().Get("purchase_order_id"),
		Pidx:            r.URL.Query().Get("pidx"),
	}
	if job.PurchaseOrderId == "" {
		var req api.PaymentCallbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PurchaseOrderId == "" {
			http.Error(w, "Callback requires purchase_order_id", http.StatusBadRequest)
			return
		}
		job.PurchaseOrderId = req.PurchaseOrderId
		job.Pidx = req.Pidx
	}

	if err := h.Scheduler.SchedulePaymentVerification(r.Context(), job, time.Duration(0)); err != nil {
		log.Printf("ERROR: failed to enqueue payment verification: %v", err)
		http.Error(w, "Failed to enqueue verification", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// notifySellers emails each seller and pushes a notification for every order
// in the batch. Failures are logged, never surfaced to the buyer.
func (h *CheckoutHandler) notifySellers(r *http.Request, orders []models.Order) {
	for _, order := range orders {
		msg := websockets.Message{
			Type: websockets.MessageTypeNotification,
			Payload: websockets.NotificationPayload{
				SellerID: order.SellerId,
				Status:   models.NotificationOrder,
				Message:  fmt.Sprintf("You received an order of %d book(s).", len(order.ProductDetails)),
			},
		}
		if err := h.Publisher.Publish(r.Context(), msg); err != nil {
			log.Printf("ERROR: failed to publish order notification: %v", err)
		}

		seller, err := h.Store.GetUser(r.Context(), order.SellerId)
		if err != nil {
			log.Printf("ERROR: failed to get seller %s for order email: %v", order.SellerId, err)
			continue
		}
		body := fmt.Sprintf("<p>You received a new order (%s) of %d book(s). Visit your dashboard to accept or cancel it.</p>", order.Id, len(order.ProductDetails))
		if err := h.Mailer.Send(r.Context(), seller.Email, "You have a new order", body); err != nil {
			log.Printf("ERROR: failed to email seller %s: %v", order.SellerId, err)
		}
	}
}
