package scheduler

import (
	"context"
	"time"
)

// VerificationJob is the message enqueued for the payment worker. It carries
// just enough to look up the intent and ask the gateway about it.
type VerificationJob struct {
	PurchaseOrderId string `json:"purchase_order_id"`
	Pidx            string `json:"pidx"`
}

// Scheduler defines the interface for a component that enqueues a payment
// verification for asynchronous processing.
type Scheduler interface {
	// SchedulePaymentVerification enqueues a verification job, optionally
	// delayed. The gateway callback enqueues with no delay; the
	// reconciliation sweep re-enqueues stale intents the same way.
	SchedulePaymentVerification(ctx context.Context, job *VerificationJob, delay time.Duration) error
}
