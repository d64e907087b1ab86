package model

import "time"

// Role identifies the access level of a user account.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is a registered account as returned by the server.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginCredentials is the request body for an authentication attempt.
type LoginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult carries the bearer token and the authenticated user.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Product is a catalog entry with its current stock position.
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	SKU           string    `json:"sku"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stockQuantity"`
	MinStockLevel int       `json:"minStockLevel"`
	Supplier      string    `json:"supplier"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LowStock reports whether the product has fallen to or below its
// replenishment threshold.
func (p Product) LowStock() bool {
	return p.StockQuantity <= p.MinStockLevel
}

// CreateProductDTO is the shape sent when creating a product. The server
// assigns the id and timestamps.
type CreateProductDTO struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	SKU           string  `json:"sku"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	MinStockLevel int     `json:"minStockLevel"`
	Supplier      string  `json:"supplier"`
}

// UpdateProductDTO is a partial product update; nil fields are omitted
// from the request body and left unchanged by the server.
type UpdateProductDTO struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	SKU           *string  `json:"sku,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	StockQuantity *int     `json:"stockQuantity,omitempty"`
	MinStockLevel *int     `json:"minStockLevel,omitempty"`
	Supplier      *string  `json:"supplier,omitempty"`
}

// OrderStatus is the server-assigned lifecycle state of an order.
// Transitions are server-authoritative; unknown values round-trip
// untouched.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// Valid reports whether the status is one of the five known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order is a customer order with its line items. totalAmount and the
// per-item totals are computed server-side and transported as-is.
type Order struct {
	ID           int64       `json:"id"`
	OrderNumber  string      `json:"orderNumber"`
	CustomerID   int64       `json:"customerId"`
	CustomerName string      `json:"customerName"`
	OrderDate    time.Time   `json:"orderDate"`
	Status       OrderStatus `json:"status"`
	TotalAmount  float64     `json:"totalAmount"`
	Items        []OrderItem `json:"items"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// OrderItem is a line of an order. It has no lifecycle of its own.
type OrderItem struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
}

// CreateOrderItemDTO names a product and a quantity; the server resolves
// the product name and prices.
type CreateOrderItemDTO struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderDTO is the shape sent when placing an order.
type CreateOrderDTO struct {
	CustomerID   int64                `json:"customerId"`
	CustomerName string               `json:"customerName"`
	Items        []CreateOrderItemDTO `json:"items"`
}

// TransactionType classifies a stock movement.
type TransactionType string

const (
	StockIn    TransactionType = "STOCK_IN"
	StockOut   TransactionType = "STOCK_OUT"
	Adjustment TransactionType = "ADJUSTMENT"
)

// Transaction is an append-only stock movement record. The effect on
// Product.StockQuantity is applied server-side.
type Transaction struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Type        TransactionType `json:"type"`
	Quantity    int             `json:"quantity"`
	Reason      string          `json:"reason"`
	ReferenceID *int64          `json:"referenceId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CreateTransactionDTO is the shape sent when recording a stock
// movement. The server assigns the id and timestamp.
type CreateTransactionDTO struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Type        TransactionType `json:"type"`
	Quantity    int             `json:"quantity"`
	Reason      string          `json:"reason"`
	ReferenceID *int64          `json:"referenceId,omitempty"`
}
