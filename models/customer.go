package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "admin"

type Address struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type       string             `bson:"type" json:"type"` // shipping/billing
	Street     string             `bson:"street" json:"street"`
	City       string             `bson:"city" json:"city"`
	State      string             `bson:"state" json:"state"`
	Country    string             `bson:"country" json:"country"`
	PostalCode string             `bson:"postalCode" json:"postalCode"`
	IsDefault  bool               `bson:"isDefault" json:"isDefault"`
}

// Customer is the per-user document. It also carries the cart and
// wishlist mirrors; every mutation overwrites the whole array.
type Customer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Role      string             `bson:"role" json:"role"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Addresses []Address          `bson:"addresses" json:"addresses"`
	Cart      []CartItem         `bson:"cart" json:"cart"`
	Wishlist  []WishlistItem     `bson:"wishlist" json:"wishlist"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CustomerRole is configuration storage for role-based pricing tiers.
type CustomerRole struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Discount    float64            `bson:"discount" json:"discount"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
