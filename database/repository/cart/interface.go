package cartRepo

import (
	"context"

	"nestly/config"
	"nestly/database"
	"nestly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CartRepository is the cart collaborator the booking flow hands
// finished configurations to.
type CartRepository interface {
	Create(ctx context.Context, item models.CartItem) (string, error)
	GetByUser(ctx context.Context, userID string) ([]models.CartItem, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoCartRepo struct {
	coll *mongo.Collection
}

// NewMongoCartRepo returns a CartRepository backed by the cart_items
// collection.
func NewMongoCartRepo() CartRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoCartRepo{coll: db.Collection("cart_items")}
}
