package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"nestly/config"
	"nestly/models"
	"nestly/services/tasks"
	"nestly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitConfirmationWorker runs the async worker that dispatches booking
// confirmations in the background.
func InitConfirmationWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmed, handleConfirmationTask)

	go func() {
		log.Println("[ConfirmationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ConfirmationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ConfirmationWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleConfirmationTask(ctx context.Context, task *asynq.Task) error {
	var draft models.BookingDraft
	if err := json.Unmarshal(task.Payload(), &draft); err != nil {
		log.Printf("[ConfirmationWorker] invalid payload: %v", err)
		return err
	}

	// Dispatch point for confirmation email/push once those channels are
	// wired. For now the confirmation is logged.
	utils.GetLogger().Info("booking confirmed",
		zap.String("bookingId", draft.ID),
		zap.String("serviceId", draft.ServiceID),
		zap.String("providerId", draft.ProviderID),
		zap.String("date", draft.ScheduledDate),
		zap.Float64("total", draft.Pricing.TotalPrice),
	)
	return nil
}
