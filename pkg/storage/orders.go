package storage

import (
	"context"

	"github.com/kiran/bookbazaar/pkg/models"
)

// OrderReader defines the interface for reading order data.
type OrderReader interface {
	// GetOrder retrieves an order by its ID.
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)

	// ListOrdersBySeller retrieves all orders addressed to a seller.
	ListOrdersBySeller(ctx context.Context, sellerID string) ([]models.Order, error)

	// ListOrdersByBuyer retrieves all orders placed by a buyer.
	ListOrdersByBuyer(ctx context.Context, userID string) ([]models.Order, error)
}

// OrderManager defines the seller-side confirmation transitions. Both are
// single-document status updates conditioned on the order still being
// pending; accepted and cancelled are terminal.
type OrderManager interface {
	// AcceptOrder transitions a pending order to accepted.
	AcceptOrder(ctx context.Context, orderID string) (*models.Order, error)

	// CancelOrder transitions a pending order to cancelled. The reason is
	// mandatory; an empty reason fails before any write.
	CancelOrder(ctx context.Context, orderID, reason string) (*models.Order, error)
}

// OrderStore combines the reader and manager interfaces.
type OrderStore interface {
	OrderReader
	OrderManager
}
