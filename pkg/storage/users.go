package storage

import (
	"context"

	"github.com/kiran/bookbazaar/pkg/models"
)

// UserStore defines user-document operations, including the cart and
// wishlist mutations. All of these are atomic at the single-document level.
type UserStore interface {
	// CreateUser creates a new user document at signup.
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)

	// GetUser retrieves a user by their ID.
	GetUser(ctx context.Context, userID string) (*models.User, error)

	// AddToCart union-inserts a book id into the user's cart. Adding an id
	// that is already present is a no-op, not an error.
	AddToCart(ctx context.Context, userID, bookID string) error

	// RemoveFromCart replaces the cart with the complete remaining
	// membership computed by the caller.
	RemoveFromCart(ctx context.Context, userID string, remaining []string) error

	// MoveToWishlist removes a book from the cart and adds it to the
	// wishlist in one document update. The caller supplies the remaining
	// cart membership, as with RemoveFromCart.
	MoveToWishlist(ctx context.Context, userID, bookID string, remaining []string) error

	// ToggleWishlist adds the book to the wishlist if absent, removes it if
	// present, as a conditional update with no read-then-write window.
	// It reports whether the book ended up in the wishlist.
	ToggleWishlist(ctx context.Context, userID, bookID string) (bool, error)

	// AddAddress appends an address, rejecting the write once the user
	// already holds models.MaxAddresses of them.
	AddAddress(ctx context.Context, userID string, address models.Address) error
}
