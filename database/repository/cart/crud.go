package cartRepo

import (
	"context"
	"errors"
	"time"

	"nestly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new cart line item and returns its ID.
func (r *mongoCartRepo) Create(ctx context.Context, item models.CartItem) (string, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}
	return item.ID, nil
}

// GetByUser fetches every cart item belonging to a user.
func (r *mongoCartRepo) GetByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CountByUser returns how many items a user's cart currently holds.
func (r *mongoCartRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// DeleteByID removes a cart item by ID.
func (r *mongoCartRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("cart item not found")
	}
	return nil
}
