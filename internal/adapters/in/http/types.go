package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// IDResponse carries the identifier of a created or located resource.
type IDResponse struct {
	ID string `json:"id"`
}

// AddItemRequest is the body for adding a product to the actor's cart.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// RemoveItemResponse reports how a cart removal resolved.
type RemoveItemResponse struct {
	Result string `json:"result"`
}

// CreateProductRequest is the body for adding a catalog product.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Description  string          `json:"description"`
	CookID       *string         `json:"cook_id,omitempty"`
	IsVegetarian *bool           `json:"is_vegetarian,omitempty"`
}

// UpdateProductRequest is the body for editing a catalog product. Absent
// fields are left unchanged; clear_cook removes the cook assignment.
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Description  *string          `json:"description,omitempty"`
	CookID       *string          `json:"cook_id,omitempty"`
	ClearCook    bool             `json:"clear_cook,omitempty"`
	IsVegetarian *bool            `json:"is_vegetarian,omitempty"`
}

// ProductResponse represents one catalog product.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Description  string          `json:"description"`
	CookID       *string         `json:"cook_id,omitempty"`
	IsVegetarian *bool           `json:"is_vegetarian,omitempty"`
}

// OrderLineResponse represents one line of an order.
type OrderLineResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Prepared    int    `json:"prepared"`
	Complete    bool   `json:"complete"`
}

// OrderResponse represents one order with its lines.
type OrderResponse struct {
	ID          string              `json:"id"`
	Status      string              `json:"status"`
	ClientID    string              `json:"client_id"`
	ClientName  string              `json:"client_name"`
	ManagerName string              `json:"manager_name,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	FormedAt    *time.Time          `json:"formed_at,omitempty"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
	Lines       []OrderLineResponse `json:"lines"`
}

// PreparedResponse reports the line state after recording a prepared unit.
type PreparedResponse struct {
	Prepared  int  `json:"prepared"`
	Quantity  int  `json:"quantity"`
	Remaining int  `json:"remaining"`
	Complete  bool `json:"complete"`
}

// CookTaskResponse represents one unit of pending preparation work.
type CookTaskResponse struct {
	OrderID     string    `json:"order_id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Prepared    int       `json:"prepared"`
	Remaining   int       `json:"remaining"`
	FormedAt    time.Time `json:"formed_at"`
}
