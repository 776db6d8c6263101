package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductType string

const (
	ProductTypeSimple   ProductType = "simple"
	ProductTypeVariable ProductType = "variable"
)

// Attribute is one axis of variation on a variable product,
// e.g. Color: [Red, Blue]. Value order is the declaration order.
type Attribute struct {
	Name   string   `bson:"name" json:"name"`
	Values []string `bson:"values" json:"values"`
}

// Variant is one purchasable SKU of a variable product. Combination
// assigns exactly one value per attribute declared on the parent.
type Variant struct {
	ID          string            `bson:"id" json:"id"`
	Combination map[string]string `bson:"combination" json:"combination"`
	Price       float64           `bson:"price" json:"price"`
	Stock       int               `bson:"stock" json:"stock"`
	SKU         string            `bson:"sku" json:"sku"`
	Image       string            `bson:"image,omitempty" json:"image,omitempty"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Category    string             `bson:"category" json:"category"`
	Brand       string             `bson:"brand" json:"brand"`
	Price       float64            `bson:"price" json:"price"`
	Stock       int                `bson:"stock" json:"stock"`
	Type        ProductType        `bson:"type" json:"type"`
	Attributes  []Attribute        `bson:"attributes,omitempty" json:"attributes,omitempty"`
	Variants    []Variant          `bson:"variants,omitempty" json:"variants,omitempty"`
	Images      []string           `bson:"images" json:"images"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
