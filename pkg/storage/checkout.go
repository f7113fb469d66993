package storage

import (
	"context"

	"github.com/kiran/bookbazaar/pkg/models"
)

// CheckoutStore defines the immediate order-placement path. PlaceOrder is
// the highest-stakes write in the system: one atomic batch that creates one
// order and one notification per distinct seller, delists every purchased
// book, and trims the purchased ids from the buyer's cart. Either all of it
// commits or none of it does.
type CheckoutStore interface {
	// PlaceOrder executes the seller-split checkout batch. It fails with
	// ErrBookUnavailable if any selected book is no longer purchasable and
	// mutates nothing in that case.
	PlaceOrder(ctx context.Context, checkout *models.Checkout) (*models.CheckoutSummary, error)
}
