package cron

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"

	"paintbook/config"
	"paintbook/models"
	"paintbook/services/notification"
	"paintbook/services/tasks"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload models.ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Printf("[ReminderWorker] malformed reminder payload: %v", err)
			return nil // do not retry a payload that cannot parse
		}
		if err := notifSvc.NotifyBookingReminder(ctx, payload); err != nil {
			log.Printf("[ReminderWorker] failed to deliver reminder for booking %s: %v", payload.BookingID, err)
			return err
		}
		return nil
	}
}
