package models

import "time"

// Order statuses. An order is created as pending and stays pending until its
// payment is reconciled; a failed or cancelled payment leaves it pending so
// the shopper can retry without creating a new order.
const (
	OrderStatusPending    = "pending"
	OrderStatusCompleted  = "completed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem represents a single artwork line within an order. Price is the
// decimal-string unit price frozen at order creation time.
type OrderItem struct {
	ArtworkID string `json:"artwork_id"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"` // Price at the time of order
}

// Order represents a purchase intent created from a cart snapshot at checkout
// submission time. Items and TotalAmount are fixed at creation; later cart
// mutations never touch an existing order.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string      `json:"user_id" gorm:"index;type:varchar(36)"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerAddress string      `json:"customer_address"`
	ShippingNotes   string      `json:"shipping_notes"`
	Items           []OrderItem `json:"items" gorm:"serializer:json"`
	TotalAmount     string      `json:"total_amount" gorm:"type:numeric(12,2)"`
	Currency        string      `json:"currency" gorm:"type:varchar(3)"`
	Status          string      `json:"status" gorm:"type:varchar(20)"`
	PaymentMethod   string      `json:"payment_method" gorm:"type:varchar(40)"`
	PaymentID       string      `json:"payment_id" gorm:"type:varchar(64)"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
