package orderRepo

import (
	"context"
	"time"

	"nestly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a finalized booking draft and returns its ID. The draft
// carries only the masked payment projection; raw payment fields never
// reach this layer.
func (r *mongoOrderRepo) Create(ctx context.Context, draft models.BookingDraft) (string, error) {
	if draft.ID == "" {
		draft.ID = uuid.New().String()
	}
	draft.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, draft)
	if err != nil {
		return "", err
	}
	return draft.ID, nil
}

// GetByID returns a booking draft by its ID.
func (r *mongoOrderRepo) GetByID(ctx context.Context, id string) (*models.BookingDraft, error) {
	var draft models.BookingDraft
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&draft)
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// GetRecentByUser returns the user's most recent booking for a service,
// or nil when they have none. Used to seed the prefill source.
func (r *mongoOrderRepo) GetRecentByUser(ctx context.Context, userID, serviceID string) (*models.BookingDraft, error) {
	opts := options.FindOne().SetSort(bson.M{"createdAt": -1})
	var draft models.BookingDraft
	err := r.coll.FindOne(ctx, bson.M{"userId": userID, "serviceId": serviceID}, opts).Decode(&draft)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// ListByUser fetches all bookings belonging to a user, newest first.
func (r *mongoOrderRepo) ListByUser(ctx context.Context, userID string) ([]models.BookingDraft, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var drafts []models.BookingDraft
	if err := cursor.All(ctx, &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}
