package structs

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required,min=5,max=200"`
	City    string `json:"city" validate:"required,min=2,max=100"`
	Zip     string `json:"zip" validate:"required,min=4,max=10"`
	Country string `json:"country,omitempty" validate:"omitempty,len=2"`
}

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

// Order is the checkout result: the cart's line items and totals frozen at
// the moment of purchase.
type Order struct {
	Id          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"order_number"`
	Status      OrderStatus     `json:"status"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	Zip         string          `json:"zip"`
	Country     string          `json:"country"`
	Items       []CartItem      `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Shipping    decimal.Decimal `json:"shipping"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=2,max=150"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}
