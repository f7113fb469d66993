package storage

import (
	"context"

	"github.com/kiran/bookbazaar/pkg/models"
)

// ModerationStore defines the admin-only moderation transitions. A book's
// moderation state is the table it lives in; every transition is one atomic
// batch of destination-insert + source-delete + seller-notification-insert,
// so a book can never be visible in two states at once.
type ModerationStore interface {
	// ApproveBook moves a book from pending to approved and notifies the seller.
	ApproveBook(ctx context.Context, bookID string) (*models.Book, error)

	// DeclineBook moves a book from pending to declined and notifies the seller.
	DeclineBook(ctx context.Context, bookID string) (*models.Book, error)

	// RemoveBook moves an already-approved book to declined and notifies the seller.
	RemoveBook(ctx context.Context, bookID string) (*models.Book, error)

	// ReinstateBook moves a declined book back to approved and notifies the seller.
	ReinstateBook(ctx context.Context, bookID string) (*models.Book, error)
}
