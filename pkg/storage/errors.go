package storage

import "errors"

// ErrBookUnavailable is returned when a checkout includes a book that is
// delisted, already sold, or missing from the approved table.
var ErrBookUnavailable = errors.New("book no longer available for purchase")

// ErrAddressLimitReached is returned when adding an address to a user that
// already holds the maximum number of addresses.
var ErrAddressLimitReached = errors.New("address limit reached")

// ErrOrderNotPending is returned when accepting or cancelling an order that
// has already left the pending state.
var ErrOrderNotPending = errors.New("order not in a pending state")

// ErrCancelReasonRequired is returned when cancelling an order without a reason.
var ErrCancelReasonRequired = errors.New("cancellation requires a non-empty reason")

// ErrAlreadyModerated is returned when a moderation transition loses the race
// for a book, e.g. two admins approving the same pending listing.
var ErrAlreadyModerated = errors.New("book already moderated")

// ErrIntentNotPending is returned when finalizing a payment intent that has
// already been completed or failed.
var ErrIntentNotPending = errors.New("payment intent not in a pending state")

// ErrCheckoutTooLarge is returned when a checkout would exceed the write
// limit of a single atomic batch.
var ErrCheckoutTooLarge = errors.New("checkout exceeds the atomic batch size")
