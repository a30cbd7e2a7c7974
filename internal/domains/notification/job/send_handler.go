package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"watchitup-backend/internal/shared"
	"watchitup-backend/pkg/logger"
)

// SendHandler delivers queued user notifications. Delivery is currently
// a structured log line; the transport (email, push) plugs in here.
type SendHandler struct{}

func NewSendHandler() *SendHandler {
	return &SendHandler{}
}

// ProcessTask handles shared.TypeNotificationSend tasks.
func (h *SendHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.NotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// Malformed payloads can never succeed, skip the retry loop.
		return fmt.Errorf("unmarshal notification payload: %w: %w", err, asynq.SkipRetry)
	}

	logger.Info("notification delivered", map[string]interface{}{
		"user_id":    payload.UserID,
		"event_kind": payload.EventKind,
		"payload":    payload.Payload,
	})
	return nil
}
