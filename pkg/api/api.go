// Package api defines the request and response payloads of the storefront
// HTTP API. These types are the wire contract; the domain models live in
// pkg/models and pkg/mapping converts between the two.
package api

import (
	"fmt"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Availability values accepted by the listing endpoints.
const (
	AvailabilityDonation = "donation"
	AvailabilitySell     = "sell"
	AvailabilityRent     = "rent"
)

// Price-ratio caps for priced listings, as percentages of the original price.
const (
	MaxSellingPricePct = 40
	MaxPerWeekPricePct = 6
)

// MinPublishYear is the oldest publish year a listing may carry.
const MinPublishYear = 1800

// NewListing is the request body for submitting a book listing.
// All prices are cents.
type NewListing struct {
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Category     string   `json:"category"`
	Language     string   `json:"language"`
	Edition      string   `json:"edition"`
	PublishYear  int      `json:"publish_year"`
	Description  *string  `json:"description,omitempty"`
	Availability string   `json:"availability"`
	Images       []string `json:"images,omitempty"`

	OriginalPrice *int64 `json:"original_price,omitempty"`
	SellingPrice  *int64 `json:"selling_price,omitempty"`
	PerWeekPrice  *int64 `json:"per_week_price,omitempty"`
}

// Validate checks the listing payload against the storefront's pricing and
// metadata rules. It is called before anything is written or uploaded.
func (l *NewListing) Validate() error {
	if l.Title == "" {
		return fmt.Errorf("title is required")
	}
	if l.Author == "" {
		return fmt.Errorf("author is required")
	}
	if l.Category == "" {
		return fmt.Errorf("category is required")
	}
	if l.Language == "" {
		return fmt.Errorf("language is required")
	}
	if l.Edition == "" {
		return fmt.Errorf("edition is required")
	}
	if l.PublishYear < MinPublishYear || l.PublishYear > time.Now().Year() {
		return fmt.Errorf("publish_year must be between %d and %d", MinPublishYear, time.Now().Year())
	}

	switch l.Availability {
	case AvailabilityDonation:
		return nil
	case AvailabilitySell:
		if l.OriginalPrice == nil || l.SellingPrice == nil {
			return fmt.Errorf("selling requires original_price and selling_price")
		}
		if *l.OriginalPrice < 0 || *l.SellingPrice < 0 {
			return fmt.Errorf("prices must be non-negative")
		}
		if *l.SellingPrice*100 > *l.OriginalPrice*MaxSellingPricePct {
			return fmt.Errorf("selling_price may not exceed %d%% of original_price", MaxSellingPricePct)
		}
	case AvailabilityRent:
		if l.OriginalPrice == nil || l.PerWeekPrice == nil {
			return fmt.Errorf("renting requires original_price and per_week_price")
		}
		if *l.OriginalPrice < 0 || *l.PerWeekPrice < 0 {
			return fmt.Errorf("prices must be non-negative")
		}
		if *l.PerWeekPrice*100 > *l.OriginalPrice*MaxPerWeekPricePct {
			return fmt.Errorf("per_week_price may not exceed %d%% of original_price", MaxPerWeekPricePct)
		}
	default:
		return fmt.Errorf("availability must be one of donation, sell, rent")
	}

	return nil
}

// Book is the public representation of a listing.
type Book struct {
	Id            string     `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Category      string     `json:"category"`
	Language      string     `json:"language,omitempty"`
	Edition       string     `json:"edition,omitempty"`
	PublishYear   int        `json:"publish_year"`
	Description   string     `json:"description,omitempty"`
	Availability  string     `json:"availability"`
	OriginalPrice *int64     `json:"original_price,omitempty"`
	SellingPrice  *int64     `json:"selling_price,omitempty"`
	PerWeekPrice  *int64     `json:"per_week_price,omitempty"`
	Images        []string   `json:"images,omitempty"`
	SellerId      string     `json:"seller_id"`
	ListStatus    bool       `json:"list_status"`
	CreatedAt     time.Time  `json:"created_at"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	DeclinedAt    *time.Time `json:"declined_at,omitempty"`
	RemovedAt     *time.Time `json:"removed_at,omitempty"`
}

// NewUser is the request body for creating a user at signup.
type NewUser struct {
	UserId string              `json:"user_id"`
	Name   string              `json:"name"`
	Email  openapi_types.Email `json:"email"`
}

// Validate checks the signup payload.
func (u *NewUser) Validate() error {
	if u.UserId == "" {
		return fmt.Errorf("user_id is required")
	}
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

// User is the public representation of a marketplace user.
type User struct {
	UserId              string              `json:"user_id"`
	Name                string              `json:"name"`
	Email               openapi_types.Email `json:"email"`
	Cart                []string            `json:"cart"`
	Wishlist            []string            `json:"wishlist"`
	Addresses           []Address           `json:"addresses"`
	TotalBooks          int64               `json:"total_books"`
	SellingBooksUpload  int64               `json:"selling_books_upload"`
	DonatingBooksUpload int64               `json:"donating_books_upload"`
	RentingBooksUpload  int64               `json:"renting_books_upload"`
	CreatedAt           time.Time           `json:"created_at"`
}

// Address is a shipping address embedded on the user document.
type Address struct {
	Label    *string `json:"label,omitempty"`
	Street   string  `json:"street"`
	City     string  `json:"city"`
	District *string `json:"district,omitempty"`
	Phone    string  `json:"phone"`
}

// Validate checks the address payload.
func (a *Address) Validate() error {
	if a.Street == "" || a.City == "" {
		return fmt.Errorf("street and city are required")
	}
	if a.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	return nil
}

// CartRequest is the request body for cart membership changes.
type CartRequest struct {
	BookId string `json:"book_id"`
}

// CheckoutItem is one line of a checkout payload.
type CheckoutItem struct {
	BookId    string `json:"book_id"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	SellerId  string `json:"seller_id"`
}

// CheckoutRequest is the request body for both checkout paths: the immediate
// path places the orders directly, the deferred path saves an intent and
// redirects to the payment gateway.
type CheckoutRequest struct {
	UserId      string         `json:"user_id"`
	Items       []CheckoutItem `json:"items"`
	ShippingFee int64          `json:"shipping_fee"`
	Address     Address        `json:"address"`
}

// Validate checks the checkout payload.
func (c *CheckoutRequest) Validate() error {
	if c.UserId == "" {
		return fmt.Errorf("user_id is required")
	}
	if len(c.Items) == 0 {
		return fmt.Errorf("checkout requires at least one item")
	}
	for _, item := range c.Items {
		if item.BookId == "" || item.SellerId == "" {
			return fmt.Errorf("every item requires book_id and seller_id")
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("unit_price must be non-negative")
		}
	}
	if c.ShippingFee < 0 {
		return fmt.Errorf("shipping_fee must be non-negative")
	}
	return nil
}

// OrderItem is one purchased line item on an order.
type OrderItem struct {
	BookId    string `json:"book_id"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	SellerId  string `json:"seller_id"`
}

// Order is the public representation of a seller-scoped order.
type Order struct {
	Id             string      `json:"id"`
	SellerId       string      `json:"seller_id"`
	UserId         string      `json:"user_id"`
	ProductDetails []OrderItem `json:"product_details"`
	Amount         int64       `json:"amount"`
	Status         string      `json:"status"`
	CancelReason   string      `json:"cancel_reason,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// CheckoutSummary is the response of a successful immediate checkout.
type CheckoutSummary struct {
	Orders      []Order `json:"orders"`
	Subtotal    int64   `json:"subtotal"`
	ShippingFee int64   `json:"shipping_fee"`
	PlatformFee int64   `json:"platform_fee"`
	Total       int64   `json:"total"`
}

// CancelOrderRequest carries the mandatory cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// Notification is an entry in a seller's notification feed.
type Notification struct {
	Id        string    `json:"id"`
	SellerId  string    `json:"seller_id"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// InitiatePaymentResponse is returned by the deferred checkout path; the
// client follows PaymentUrl to the gateway.
type InitiatePaymentResponse struct {
	PurchaseOrderId string `json:"purchase_order_id"`
	PaymentUrl      string `json:"payment_url"`
}

// PaymentCallbackRequest is what the gateway redirect delivers back to us.
// Nothing in it is trusted; verification happens against the gateway.
type PaymentCallbackRequest struct {
	PurchaseOrderId string `json:"purchase_order_id"`
	Pidx            string `json:"pidx"`
}
