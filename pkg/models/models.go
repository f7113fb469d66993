package models

import (
	"time"
)

// Availability defines how a book is offered on the marketplace.
type Availability string

const (
	DONATION Availability = "donation"
	SELL     Availability = "sell"
	RENT     Availability = "rent"
)

// Book represents the internal domain model for a book listing.
// Moderation state is not a field: it is encoded by which table the
// document lives in (pending_books, approved_books, declined_books).
type Book struct {
	Id           string       `dynamodbav:"id"`
	Title        string       `dynamodbav:"title"`
	Author       string       `dynamodbav:"author"`
	Category     string       `dynamodbav:"category"`
	Language     string       `dynamodbav:"language"`
	Edition      string       `dynamodbav:"edition"`
	PublishYear  int          `dynamodbav:"publish_year"`
	Description  string       `dynamodbav:"description,omitempty"`
	Availability Availability `dynamodbav:"availability"`

	// Prices are cents. Which fields are present depends on Availability:
	// sell carries original+selling, rent carries original+per_week,
	// donation carries none.
	OriginalPrice int64 `dynamodbav:"original_price,omitempty"`
	SellingPrice  int64 `dynamodbav:"selling_price,omitempty"`
	PerWeekPrice  int64 `dynamodbav:"per_week_price,omitempty"`

	Images     []string `dynamodbav:"images"`
	SellerId   string   `dynamodbav:"seller_id"`
	ListStatus bool     `dynamodbav:"list_status"`

	CreatedAt  time.Time  `dynamodbav:"created_at"`
	ApprovedAt *time.Time `dynamodbav:"approved_at,omitempty"`
	DeclinedAt *time.Time `dynamodbav:"declined_at,omitempty"`
	RemovedAt  *time.Time `dynamodbav:"removed_at,omitempty"`
}

// Address is an embedded shipping address on the user document.
// A user holds at most MaxAddresses of these.
type Address struct {
	Label    string `dynamodbav:"label,omitempty"`
	Street   string `dynamodbav:"street"`
	City     string `dynamodbav:"city"`
	District string `dynamodbav:"district,omitempty"`
	Phone    string `dynamodbav:"phone"`
}

// MaxAddresses caps the embedded address list on a user document.
const MaxAddresses = 5

// User represents the internal domain model for a marketplace user.
// Cart is an ordered list of book ids with no duplicates; Wishlist is a
// string set maintained exclusively through ADD/DELETE update expressions.
type User struct {
	UserId        string    `dynamodbav:"user_id"`
	Name          string    `dynamodbav:"name"`
	Email         string    `dynamodbav:"email"`
	CreditBalance int64     `dynamodbav:"credit_balance"`
	Cart          []string  `dynamodbav:"cart,omitempty"`
	Wishlist      []string  `dynamodbav:"wishlist,omitempty"`
	Addresses     []Address `dynamodbav:"addresses,omitempty"`

	TotalBooks          int64 `dynamodbav:"total_books"`
	SellingBooksUpload  int64 `dynamodbav:"selling_books_upload"`
	DonatingBooksUpload int64 `dynamodbav:"donating_books_upload"`
	RentingBooksUpload  int64 `dynamodbav:"renting_books_upload"`

	CreatedAt time.Time `dynamodbav:"created_at"`
}

// OrderStatus defines the possible states of an order.
type OrderStatus string

const (
	PENDING   OrderStatus = "pending"
	ACCEPTED  OrderStatus = "accepted"
	CANCELLED OrderStatus = "cancelled"
)

// OrderItem is a single purchased line item. Quantity is always 1 for a
// used book, but the field is persisted for the order summary contract.
type OrderItem struct {
	BookId    string `dynamodbav:"book_id"`
	Name      string `dynamodbav:"name"`
	Image     string `dynamodbav:"image,omitempty"`
	UnitPrice int64  `dynamodbav:"unit_price"`
	Quantity  int    `dynamodbav:"quantity"`
	SellerId  string `dynamodbav:"seller_id"`
}

// Order is scoped to exactly one seller. A checkout spanning several
// sellers produces one Order per seller; Amount is that seller's
// subtotal only, never the buyer's grand total.
type Order struct {
	Id             string      `dynamodbav:"id"`
	SellerId       string      `dynamodbav:"seller_id"`
	UserId         string      `dynamodbav:"user_id"`
	ProductDetails []OrderItem `dynamodbav:"product_details"`
	Amount         int64       `dynamodbav:"amount"`
	Status         OrderStatus `dynamodbav:"status"`
	CancelReason   string      `dynamodbav:"cancel_reason,omitempty"`
	CreatedAt      time.Time   `dynamodbav:"created_at"`
	UpdatedAt      time.Time   `dynamodbav:"updated_at"`
	Read           bool        `dynamodbav:"read"`

	// PaymentRef is set only on order-intent documents written by the
	// deferred gateway path; it holds the gateway transaction reference.
	PaymentRef string `dynamodbav:"payment_ref,omitempty"`
}

// Notification is addressed to a seller and created by the moderation
// pipeline and by checkout. Only the read flag mutates afterwards.
type Notification struct {
	Id        string    `dynamodbav:"id"`
	SellerId  string    `dynamodbav:"seller_id"`
	Message   string    `dynamodbav:"message"`
	Status    string    `dynamodbav:"status"`
	CreatedAt time.Time `dynamodbav:"created_at"`
	Read      bool      `dynamodbav:"read"`
}

// Notification status values emitted by the moderation pipeline and checkout.
const (
	NotificationApproved = "approved"
	NotificationDeclined = "declined"
	NotificationRemoved  = "removed"
	NotificationOrder    = "order"
)

// DailyStats holds the increment-only global counters for one day,
// keyed by date (YYYY-MM-DD). Written with ADD expressions only.
type DailyStats struct {
	Date          string `dynamodbav:"date"`
	Traffic       int64  `dynamodbav:"traffic"`
	TotalBooks    int64  `dynamodbav:"total_books"`
	SellingBooks  int64  `dynamodbav:"selling_books"`
	DonatingBooks int64  `dynamodbav:"donating_books"`
	RentingBooks  int64  `dynamodbav:"renting_books"`
}

// UserDailyStats mirrors DailyStats per user, keyed by "userId#date".
type UserDailyStats struct {
	Key           string `dynamodbav:"key"`
	UserId        string `dynamodbav:"user_id"`
	Date          string `dynamodbav:"date"`
	TotalBooks    int64  `dynamodbav:"total_books"`
	SellingBooks  int64  `dynamodbav:"selling_books"`
	DonatingBooks int64  `dynamodbav:"donating_books"`
	RentingBooks  int64  `dynamodbav:"renting_books"`
}

// PaymentIntentStatus defines the possible states of a deferred payment.
type PaymentIntentStatus string

const (
	INTENT_PENDING   PaymentIntentStatus = "PENDING"
	INTENT_COMPLETED PaymentIntentStatus = "COMPLETED"
	INTENT_FAILED    PaymentIntentStatus = "FAILED"
)

// PaymentIntent is the server-side record of a checkout that was handed
// off to the external payment gateway. It is written before the redirect
// and finalized only after the gateway confirms completion. An intent
// that never confirms stays PENDING until the reconciliation sweep
// re-enqueues it for verification.
type PaymentIntent struct {
	PurchaseOrderId string              `dynamodbav:"purchase_order_id"`
	UserId          string              `dynamodbav:"user_id"`
	Pidx            string              `dynamodbav:"pidx,omitempty"`
	Items           []OrderItem         `dynamodbav:"items"`
	ShippingFee     int64               `dynamodbav:"shipping_fee"`
	Amount          int64               `dynamodbav:"amount"`
	Address         Address             `dynamodbav:"address"`
	Status          PaymentIntentStatus `dynamodbav:"status"`
	CreatedAt       time.Time           `dynamodbav:"created_at"`
	UpdatedAt       time.Time           `dynamodbav:"updated_at"`
}

// Checkout is the validated input of the immediate order-placement path.
type Checkout struct {
	UserId      string
	Items       []OrderItem
	ShippingFee int64
	Address     Address
}

// CheckoutSummary is what a successful immediate checkout returns: the
// per-seller orders plus the derived amounts the order-success view shows.
type CheckoutSummary struct {
	Orders      []Order
	Subtotal    int64
	ShippingFee int64
	PlatformFee int64
	Total       int64
}

// PlatformFee is the marketplace cut: 10% of the item subtotal.
// Shipping is passed through and fees are never distributed to sellers.
func PlatformFee(subtotal int64) int64 {
	return subtotal * 10 / 100
}
