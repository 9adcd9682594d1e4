package tasks

import (
	"encoding/json"

	"nestly/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmed = "booking:confirmed"

// NewBookingConfirmedTask wraps a confirmed booking for the dispatch
// worker. The payload already holds only the masked payment projection.
func NewBookingConfirmedTask(draft models.BookingDraft) (*asynq.Task, error) {
	b, err := json.Marshal(draft)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmed, b), nil
}
