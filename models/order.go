package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending" // Order placed, awaiting payment confirmation
	OrderStatusPaid    OrderStatus = "paid"    // Payment completed
	OrderStatusShipped OrderStatus = "shipped" // Out for delivery
)

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Items       []OrderItem        `bson:"items" json:"items"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	UserEmail   string             `bson:"userEmail" json:"userEmail"`
	Status      OrderStatus        `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OrderItem is a snapshot of the catalog item at checkout time. Values are
// copied into the order and never resolved back to the live item.
type OrderItem struct {
	ItemID   string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Image    string  `bson:"image,omitempty" json:"image"`
}
