package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Parent    string             `bson:"parent,omitempty" json:"parent,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Products  int                `bson:"products" json:"products"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Brand struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Website   string             `bson:"website,omitempty" json:"website,omitempty"`
	Logo      string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Products  int                `bson:"products" json:"products"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
