package orderRepo

import (
	"context"

	"nestly/config"
	"nestly/database"
	"nestly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository stores finalized booking drafts and serves the
// recent-orders prefill source.
type OrderRepository interface {
	Create(ctx context.Context, draft models.BookingDraft) (string, error)
	GetByID(ctx context.Context, id string) (*models.BookingDraft, error)
	GetRecentByUser(ctx context.Context, userID, serviceID string) (*models.BookingDraft, error)
	ListByUser(ctx context.Context, userID string) ([]models.BookingDraft, error)
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo returns an OrderRepository backed by the bookings
// collection.
func NewMongoOrderRepo() OrderRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoOrderRepo{coll: db.Collection("bookings")}
}
