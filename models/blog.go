package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlogPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Slug      string             `bson:"slug" json:"slug"`
	Author    string             `bson:"author,omitempty" json:"author,omitempty"`
	Excerpt   string             `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Body      string             `bson:"body" json:"body"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
