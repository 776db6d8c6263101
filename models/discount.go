package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DiscountType string

const (
	DiscountTypeCoupon    DiscountType = "Coupon"
	DiscountTypeRoleBased DiscountType = "Role-based"
	DiscountTypeBOGO      DiscountType = "BOGO"
	DiscountTypeAutomatic DiscountType = "Automatic"
)

// Discount is configuration storage only. Nothing evaluates these
// against carts at checkout time.
type Discount struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type       DiscountType       `bson:"type" json:"type"`
	Code       string             `bson:"code,omitempty" json:"code,omitempty"`
	Value      float64            `bson:"value" json:"value"`
	Status     string             `bson:"status" json:"status"`
	UsageCount int                `bson:"usageCount" json:"usageCount"`
	UsageLimit int                `bson:"usageLimit,omitempty" json:"usageLimit,omitempty"`
	StartsAt   time.Time          `bson:"startsAt,omitempty" json:"startsAt,omitempty"`
	EndsAt     time.Time          `bson:"endsAt,omitempty" json:"endsAt,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
