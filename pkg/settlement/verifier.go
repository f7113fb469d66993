// Package settlement finalizes deferred payments. The gateway's verify
// endpoint is the only authority: a payment counts as made when, and only
// when, verification reports it completed.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/kiran/bookbazaar/pkg/models"
	"github.com/kiran/bookbazaar/pkg/payments"
	"github.com/kiran/bookbazaar/pkg/scheduler"
	"github.com/kiran/bookbazaar/pkg/storage"
)

// Verifier resolves one verification job against the gateway and the store.
type Verifier struct {
	Store   storage.SettlementStore
	Gateway payments.Client
}

// NewVerifier creates a new Verifier.
func NewVerifier(store storage.SettlementStore, gateway payments.Client) *Verifier {
	return &Verifier{Store: store, Gateway: gateway}
}

// VerifyIntent looks up the intent, asks the gateway for the authoritative
// payment status, and finalizes the intent accordingly. A job for a missing
// or already-finalized intent writes nothing. A still-pending gateway status
// also writes nothing; the reconciliation sweep will re-enqueue the job.
func (v *Verifier) VerifyIntent(ctx context.Context, job *scheduler.VerificationJob) error {
	intent, err := v.Store.GetPaymentIntent(ctx, job.PurchaseOrderId)
	if err != nil {
		log.Printf("verification skipped, no intent for purchase order %s: %v", job.PurchaseOrderId, err)
		return nil
	}
	if intent.Status != models.INTENT_PENDING {
		log.Printf("verification skipped, intent %s already %s", intent.PurchaseOrderId, intent.Status)
		return nil
	}

	pidx := job.Pidx
	if pidx == "" {
		pidx = intent.Pidx
	}

	result, err := v.Gateway.Verify(ctx, pidx)
	if err != nil {
		return fmt.Errorf("failed to verify payment %s: %w", pidx, err)
	}

	switch result.Status {
	case payments.StatusCompleted:
		if result.TotalAmount != intent.Amount {
			log.Printf("WARNING: gateway amount %d differs from intent amount %d for %s", result.TotalAmount, intent.Amount, intent.PurchaseOrderId)
		}
		order := orderFromIntent(intent, pidx)
		if err := v.Store.CompletePaymentIntent(ctx, intent, order); err != nil {
			if errors.Is(err, storage.ErrIntentNotPending) {
				// A concurrent delivery of the same job won the race.
				return nil
			}
			return fmt.Errorf("failed to complete intent %s: %w", intent.PurchaseOrderId, err)
		}
		return nil

	case payments.StatusPending:
		// Not finalized at the gateway yet; the stale-intent sweep retries.
		log.Printf("payment %s still pending at gateway", pidx)
		return nil

	default:
		if err := v.Store.FailPaymentIntent(ctx, intent.PurchaseOrderId); err != nil {
			return fmt.Errorf("failed to mark intent %s failed: %w", intent.PurchaseOrderId, err)
		}
		return nil
	}
}

// orderFromIntent builds the order-intent document written on completion.
// Its id is the purchase order id, so a duplicate completion attempt fails
// the insert condition instead of writing a second order.
func orderFromIntent(intent *models.PaymentIntent, pidx string) *models.Order {
	sellerID := ""
	if len(intent.Items) > 0 {
		sellerID = intent.Items[0].SellerId
	}
	now := time.Now()
	return &models.Order{
		Id:             intent.PurchaseOrderId,
		SellerId:       sellerID,
		UserId:         intent.UserId,
		ProductDetails: intent.Items,
		Amount:         intent.Amount,
		Status:         models.PENDING,
		PaymentRef:     pidx,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
