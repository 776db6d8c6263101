package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

type PaymentMethod string

const (
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodBank  PaymentMethod = "bank"
	PaymentMethodApple PaymentMethod = "apple"
	PaymentMethodCOD   PaymentMethod = "cod"
)

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID       string             `bson:"orderId" json:"orderId"`
	UserID        string             `bson:"userId" json:"userId"`
	Items         []CartItem         `bson:"items" json:"items"`
	Subtotal      float64            `bson:"subtotal" json:"subtotal"`
	Shipping      float64            `bson:"shipping" json:"shipping"`
	Total         float64            `bson:"total" json:"total"`
	Address       Address            `bson:"address" json:"address"`
	PaymentMethod PaymentMethod      `bson:"paymentMethod" json:"paymentMethod"`
	Status        OrderStatus        `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
