package storage

import (
	"context"

	"github.com/kiran/bookbazaar/pkg/models"
)

// ListingReader defines the interface for reading book listings.
type ListingReader interface {
	// GetApprovedBook retrieves a publicly visible book by its ID.
	GetApprovedBook(ctx context.Context, bookID string) (*models.Book, error)

	// ListApprovedBooks retrieves the publicly visible catalogue.
	ListApprovedBooks(ctx context.Context) ([]models.Book, error)

	// ListPendingBooks retrieves listings awaiting moderation.
	ListPendingBooks(ctx context.Context) ([]models.Book, error)
}

// ListingSubmitter defines the interface for submitting new listings.
type ListingSubmitter interface {
	// SubmitListing creates the pending book document and applies the three
	// analytics counter increments (global-daily, user-daily, user profile)
	// in one atomic batch.
	SubmitListing(ctx context.Context, book *models.Book) (*models.Book, error)
}

// ListingStore combines the reader and submitter interfaces.
type ListingStore interface {
	ListingReader
	ListingSubmitter
}
