package cart

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velora-labs/velora-backend-go/models"
)

// MongoMirror writes the cart/wishlist arrays onto the per-user
// document in the customers collection.
type MongoMirror struct {
	Collection *mongo.Collection
}

func NewMongoMirror(coll *mongo.Collection) *MongoMirror {
	return &MongoMirror{Collection: coll}
}

func (m *MongoMirror) SaveCart(ctx context.Context, userID string, items []models.CartItem) error {
	return m.save(ctx, userID, "cart", items)
}

func (m *MongoMirror) SaveWishlist(ctx context.Context, userID string, items []models.WishlistItem) error {
	return m.save(ctx, userID, "wishlist", items)
}

func (m *MongoMirror) save(ctx context.Context, userID, field string, items interface{}) error {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Whole-array $set: last writer wins, losers are silently clobbered.
	_, err = m.Collection.UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{field: items, "updatedAt": time.Now()}},
		options.Update().SetUpsert(true),
	)
	return err
}
