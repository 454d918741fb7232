package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"paintbook/config"
	"paintbook/models"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds an asynq task that fires at the given instant.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues booking reminders on the shared Redis queue. It
// implements the booking service's ReminderScheduler capability.
type ReminderScheduler struct {
	Client   *asynq.Client
	LeadTime time.Duration
}

// NewReminderScheduler connects an asynq client to the reminder queue DB.
func NewReminderScheduler() *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	lead := time.Duration(config.AppConfig.ReminderLeadMins) * time.Minute
	return &ReminderScheduler{Client: client, LeadTime: lead}
}

// ScheduleBookingReminder schedules a reminder ahead of the booking start. A
// booking starting sooner than the lead time gets no reminder.
func (s *ReminderScheduler) ScheduleBookingReminder(ctx context.Context, booking models.Booking) error {
	fireAt := booking.Start.Add(-s.LeadTime)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:  booking.ID,
		UserID:     booking.CustomerID,
		ProviderID: booking.ProviderID,
		Start:      booking.Start,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}
