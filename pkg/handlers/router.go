// Package handlers wires the storefront's HTTP surface. Each resource lives
// in its own sub-package; this package only assembles them onto one router.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kiran/bookbazaar/pkg/handlers/checkout"
	"github.com/kiran/bookbazaar/pkg/handlers/listings"
	"github.com/kiran/bookbazaar/pkg/handlers/moderation"
	"github.com/kiran/bookbazaar/pkg/handlers/notifications"
	"github.com/kiran/bookbazaar/pkg/handlers/orders"
	"github.com/kiran/bookbazaar/pkg/handlers/users"
	ws "github.com/kiran/bookbazaar/pkg/handlers/websockets"
	"github.com/kiran/bookbazaar/pkg/middleware"
)

// Handlers bundles every resource handler the router mounts.
type Handlers struct {
	Listings      *listings.ListingsHandler
	Moderation    *moderation.ModerationHandler
	Users         *users.UsersHandler
	Checkout      *checkout.CheckoutHandler
	Orders        *orders.OrdersHandler
	Notifications *notifications.NotificationsHandler
	Websockets    *ws.Handler
}

// NewRouter assembles the storefront API.
func NewRouter(h *Handlers, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.NewStructuredLogger(logger))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Public catalogue.
	router.Get("/books", h.Listings.ListBooks)
	router.Get("/books/{bookId}", h.Listings.GetBookById)

	// Moderation (admin surface).
	router.Route("/admin/books", func(r chi.Router) {
		r.Get("/pending", h.Listings.ListPendingBooks)
		r.Post("/{bookId}/approve", h.Moderation.ApproveBook)
		r.Post("/{bookId}/decline", h.Moderation.DeclineBook)
		r.Post("/{bookId}/remove", h.Moderation.RemoveBook)
		r.Post("/{bookId}/reinstate", h.Moderation.ReinstateBook)
	})

	// Users, carts and wishlists.
	router.Post("/users", h.Users.CreateUser)
	router.Route("/users/{userId}", func(r chi.Router) {
		r.Get("/", h.Users.GetUserById)
		r.Post("/addresses", h.Users.AddAddress)

		r.Post("/books", h.Listings.SubmitListing)

		r.Post("/cart", h.Users.AddToCart)
		r.Delete("/cart/{bookId}", h.Users.RemoveFromCart)
		r.Post("/cart/{bookId}/wishlist", h.Users.MoveToWishlist)
		r.Post("/wishlist/{bookId}", h.Users.ToggleWishlist)

		r.Get("/orders", h.Orders.ListOrdersByBuyer)
		r.Get("/sales", h.Orders.ListOrdersBySeller)
		r.Get("/notifications", h.Notifications.ListNotificationsBySeller)
	})

	// Checkout.
	router.Post("/checkout", h.Checkout.PlaceOrder)
	router.Post("/checkout/initiate", h.Checkout.InitiatePayment)
	router.HandleFunc("/checkout/callback", h.Checkout.PaymentCallback)

	// Orders.
	router.Route("/orders/{orderId}", func(r chi.Router) {
		r.Get("/", h.Orders.GetOrderById)
		r.Post("/accept", h.Orders.AcceptOrder)
		r.Post("/cancel", h.Orders.CancelOrder)
	})

	// Notifications.
	router.Post("/notifications/{notificationId}/read", h.Notifications.MarkNotificationRead)

	// Local development websocket endpoint.
	if h.Websockets != nil {
		router.Get("/ws", h.Websockets.ServeHTTP)
	}

	return router
}
