package storage

import (
	"context"
	"time"

	"github.com/kiran/bookbazaar/pkg/models"
)

// PaymentIntentWriter defines the non-privileged payment-intent operations
// used by the API when handing a checkout off to the external gateway.
type PaymentIntentWriter interface {
	// SavePaymentIntent persists the pending checkout payload before the
	// buyer is redirected to the gateway. No storefront document is
	// mutated at this point.
	SavePaymentIntent(ctx context.Context, intent *models.PaymentIntent) (*models.PaymentIntent, error)

	// GetPaymentIntent retrieves an intent by its purchase order id.
	GetPaymentIntent(ctx context.Context, purchaseOrderID string) (*models.PaymentIntent, error)
}

// SettlementStore defines the highly-privileged interface for finalizing a
// deferred payment. It should only be exposed to the component responsible
// for gateway verification (the payment worker and the reconciliation sweep).
type SettlementStore interface {
	PaymentIntentWriter

	// CompletePaymentIntent atomically writes the order-intent document and
	// marks the intent COMPLETED. It fails with ErrIntentNotPending if the
	// intent was already finalized.
	CompletePaymentIntent(ctx context.Context, intent *models.PaymentIntent, order *models.Order) error

	// FailPaymentIntent marks an intent FAILED after the gateway reported a
	// terminal non-completed status.
	FailPaymentIntent(ctx context.Context, purchaseOrderID string) error

	// GetStalePaymentIntents retrieves intents that have been PENDING for
	// longer than the specified duration.
	GetStalePaymentIntents(ctx context.Context, maxAge time.Duration) ([]models.PaymentIntent, error)
}
