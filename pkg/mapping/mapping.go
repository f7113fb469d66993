// Package mapping converts between the API wire types and the internal
// domain models. The API layer never touches dynamodbav-tagged structs
// directly and the storage layer never sees JSON payloads.
package mapping

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/kiran/bookbazaar/pkg/api"
	"github.com/kiran/bookbazaar/pkg/models"
)

// ToDomainBook converts a listing submission into the internal book model.
// The seller and cover image URL come from the handler, not the payload.
func ToDomainBook(l *api.NewListing, sellerID string) *models.Book {
	book := &models.Book{
		Title:        l.Title,
		Author:       l.Author,
		Category:     l.Category,
		Language:     l.Language,
		Edition:      l.Edition,
		PublishYear:  l.PublishYear,
		Availability: models.Availability(l.Availability),
		Images:       l.Images,
		SellerId:     sellerID,
	}
	if l.Description != nil {
		book.Description = *l.Description
	}
	switch book.Availability {
	case models.SELL:
		book.OriginalPrice = *l.OriginalPrice
		book.SellingPrice = *l.SellingPrice
	case models.RENT:
		book.OriginalPrice = *l.OriginalPrice
		book.PerWeekPrice = *l.PerWeekPrice
	}
	return book
}

// ToApiBook converts the internal book model to its API representation.
func ToApiBook(b *models.Book) *api.Book {
	apiBook := &api.Book{
		Id:           b.Id,
		Title:        b.Title,
		Author:       b.Author,
		Category:     b.Category,
		Language:     b.Language,
		Edition:      b.Edition,
		PublishYear:  b.PublishYear,
		Description:  b.Description,
		Availability: string(b.Availability),
		Images:       b.Images,
		SellerId:     b.SellerId,
		ListStatus:   b.ListStatus,
		CreatedAt:    b.CreatedAt,
		ApprovedAt:   b.ApprovedAt,
		DeclinedAt:   b.DeclinedAt,
		RemovedAt:    b.RemovedAt,
	}
	if b.OriginalPrice != 0 {
		apiBook.OriginalPrice = &b.OriginalPrice
	}
	if b.SellingPrice != 0 {
		apiBook.SellingPrice = &b.SellingPrice
	}
	if b.PerWeekPrice != 0 {
		apiBook.PerWeekPrice = &b.PerWeekPrice
	}
	return apiBook
}

// ToDomainUser converts a signup payload into the internal user model.
func ToDomainUser(u *api.NewUser) *models.User {
	return &models.User{
		UserId: u.UserId,
		Name:   u.Name,
		Email:  string(u.Email),
	}
}

// ToApiUser converts the internal user model to its API representation.
// Nil slices become empty ones so clients always see arrays.
func ToApiUser(u *models.User) *api.User {
	apiUser := &api.User{
		UserId:              u.UserId,
		Name:                u.Name,
		Email:               openapi_types.Email(u.Email),
		Cart:                u.Cart,
		Wishlist:            u.Wishlist,
		Addresses:           make([]api.Address, len(u.Addresses)),
		TotalBooks:          u.TotalBooks,
		SellingBooksUpload:  u.SellingBooksUpload,
		DonatingBooksUpload: u.DonatingBooksUpload,
		RentingBooksUpload:  u.RentingBooksUpload,
		CreatedAt:           u.CreatedAt,
	}
	if apiUser.Cart == nil {
		apiUser.Cart = []string{}
	}
	if apiUser.Wishlist == nil {
		apiUser.Wishlist = []string{}
	}
	for i, a := range u.Addresses {
		apiUser.Addresses[i] = *ToApiAddress(&a)
	}
	return apiUser
}

// ToDomainAddress converts an API address to the internal model.
func ToDomainAddress(a *api.Address) models.Address {
	addr := models.Address{
		Street: a.Street,
		City:   a.City,
		Phone:  a.Phone,
	}
	if a.Label != nil {
		addr.Label = *a.Label
	}
	if a.District != nil {
		addr.District = *a.District
	}
	return addr
}

// ToApiAddress converts an internal address to its API representation.
func ToApiAddress(a *models.Address) *api.Address {
	addr := &api.Address{
		Street: a.Street,
		City:   a.City,
		Phone:  a.Phone,
	}
	if a.Label != "" {
		addr.Label = &a.Label
	}
	if a.District != "" {
		addr.District = &a.District
	}
	return addr
}

// ToDomainCheckout converts a checkout payload into the internal model
// consumed by both the immediate and the deferred path.
func ToDomainCheckout(c *api.CheckoutRequest) *models.Checkout {
	checkout := &models.Checkout{
		UserId:      c.UserId,
		Items:       make([]models.OrderItem, len(c.Items)),
		ShippingFee: c.ShippingFee,
		Address:     ToDomainAddress(&c.Address),
	}
	for i, item := range c.Items {
		checkout.Items[i] = models.OrderItem{
			BookId:    item.BookId,
			Name:      item.Name,
			Image:     item.Image,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			SellerId:  item.SellerId,
		}
	}
	return checkout
}

// ToApiOrder converts the internal order model to its API representation.
func ToApiOrder(o *models.Order) *api.Order {
	apiOrder := &api.Order{
		Id:             o.Id,
		SellerId:       o.SellerId,
		UserId:         o.UserId,
		ProductDetails: make([]api.OrderItem, len(o.ProductDetails)),
		Amount:         o.Amount,
		Status:         string(o.Status),
		CancelReason:   o.CancelReason,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	for i, item := range o.ProductDetails {
		apiOrder.ProductDetails[i] = api.OrderItem{
			BookId:    item.BookId,
			Name:      item.Name,
			Image:     item.Image,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			SellerId:  item.SellerId,
		}
	}
	return apiOrder
}

// ToApiCheckoutSummary converts the checkout result to its API representation.
func ToApiCheckoutSummary(s *models.CheckoutSummary) *api.CheckoutSummary {
	summary := &api.CheckoutSummary{
		Orders:      make([]api.Order, len(s.Orders)),
		Subtotal:    s.Subtotal,
		ShippingFee: s.ShippingFee,
		PlatformFee: s.PlatformFee,
		Total:       s.Total,
	}
	for i, o := range s.Orders {
		summary.Orders[i] = *ToApiOrder(&o)
	}
	return summary
}

// ToApiNotification converts a notification to its API representation.
func ToApiNotification(n *models.Notification) *api.Notification {
	return &api.Notification{
		Id:        n.Id,
		SellerId:  n.SellerId,
		Message:   n.Message,
		Status:    n.Status,
		CreatedAt: n.CreatedAt,
		Read:      n.Read,
	}
}
