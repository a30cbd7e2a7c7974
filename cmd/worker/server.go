package main

import (
	"context"
	"log"

	"github.com/hibiken/asynq"

	"watchitup-backend/internal/config"
	notificationJob "watchitup-backend/internal/domains/notification/job"
	"watchitup-backend/internal/shared"
)

// setupAsynqServer builds the worker, registers task handlers and
// starts it in the background.
func setupAsynqServer(cfg *config.Config) *asynq.Server {
	mux := asynq.NewServeMux()
	mux.HandleFunc(shared.TypeNotificationSend, notificationJob.NewSendHandler().ProcessTask)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				shared.QueueNotifications: 10,
				"default":                 5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Printf("[Worker] Task failed - Type: %s, Error: %v", task.Type(), err)
			}),
		},
	)

	go func() {
		log.Println("[Worker] Starting...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[Worker] Failed: %v", err)
		}
	}()

	return srv
}
