package controller

import (
	"time"

	"github.com/google/uuid"
	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/shopspring/decimal"
)

// Wire representations are mapped explicitly from the stored entities;
// computed fields (price_with_tax, totals, products_count) only ever exist
// here, never in the store.

type CollectionResponse struct {
	ID                uint   `json:"id"`
	Title             string `json:"title"`
	FeaturedProductID *uint  `json:"featured_product_id,omitempty"`
	ProductsCount     int64  `json:"products_count"`
}

func toCollectionResponse(c *model.Collection) CollectionResponse {
	return CollectionResponse{
		ID:                c.ID,
		Title:             c.Title,
		FeaturedProductID: c.FeaturedProductID,
		ProductsCount:     c.ProductsCount,
	}
}

type ProductResponse struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Description  *string         `json:"description,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	PriceWithTax decimal.Decimal `json:"price_with_tax"`
	Inventory    int             `json:"inventory"`
	Collection   uint            `json:"collection"`
	LastUpdate   time.Time       `json:"last_update"`
	Promotions   []uint          `json:"promotions"`
}

func toProductResponse(p *model.Product) ProductResponse {
	promotions := make([]uint, 0, len(p.Promotions))
	for _, promo := range p.Promotions {
		promotions = append(promotions, promo.ID)
	}
	return ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Description:  p.Description,
		UnitPrice:    p.UnitPrice,
		PriceWithTax: p.PriceWithTax(),
		Inventory:    p.Inventory,
		Collection:   p.CollectionID,
		LastUpdate:   p.LastUpdate,
		Promotions:   promotions,
	}
}

func toProductResponses(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

type ReviewResponse struct {
	ID          uint      `json:"id"`
	Date        time.Time `json:"date"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Product     uint      `json:"product"`
}

func toReviewResponse(r *model.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		Date:        r.Date,
		Name:        r.Name,
		Description: r.Description,
		Product:     r.ProductID,
	}
}

type CartItemResponse struct {
	ID         uint            `json:"id"`
	Product    ProductResponse `json:"product"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func toCartItemResponse(item *model.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:         item.ID,
		Product:    toProductResponse(&item.Product),
		Quantity:   item.Quantity,
		TotalPrice: item.TotalPrice(),
	}
}

type CartResponse struct {
	ID         uuid.UUID          `json:"id"`
	CreatedAt  time.Time          `json:"created_at"`
	Items      []CartItemResponse `json:"items"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

func toCartResponse(cart *model.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for i := range cart.Items {
		items = append(items, toCartItemResponse(&cart.Items[i]))
	}
	return CartResponse{
		ID:         cart.ID,
		CreatedAt:  cart.CreatedAt,
		Items:      items,
		TotalPrice: cart.TotalPrice(),
	}
}

type OrderItemResponse struct {
	ID        uint            `json:"id"`
	Product   uint            `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type OrderResponse struct {
	ID            uint                `json:"id"`
	PlacedAt      time.Time           `json:"placed_at"`
	PaymentStatus model.PaymentStatus `json:"payment_status"`
	Customer      uint                `json:"customer"`
	Items         []OrderItemResponse `json:"items"`
}

func toOrderResponse(o *model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.OrderItems))
	for _, item := range o.OrderItems {
		items = append(items, OrderItemResponse{
			ID:        item.ID,
			Product:   item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return OrderResponse{
		ID:            o.ID,
		PlacedAt:      o.PlacedAt,
		PaymentStatus: o.PaymentStatus,
		Customer:      o.CustomerID,
		Items:         items,
	}
}
